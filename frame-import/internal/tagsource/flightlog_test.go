// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package tagsource

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/frameapp/core/core/logger"
)

func writeFlightLog(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "FLY042.LOG")
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	if err := os.WriteFile(path, []byte(encoded), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFlightLog(t *testing.T) {
	log := &logger.NullLogger{}

	path := writeFlightLog(t, `[telemetry]
TrueCourse: 182.4
GroundSpeed = 7.25
AltitudeMSL: 431.8
Yaw: -12.5
Pitch = 3.1
Roll: -0.4
`)

	data := ReadFlightLog(path, log)
	if data == nil {
		t.Fatal("expected flight log data")
	}

	got := fmt.Sprintf("%v %v %v %v %v %v",
		data.TrueCourse, data.GroundSpeed, data.MSLAltitude,
		data.PlatformYaw, data.PlatformPitch, data.PlatformRoll)
	want := "182.4 7.25 431.8 -12.5 3.1 -0.4"
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadFlightLogPartial(t *testing.T) {
	log := &logger.NullLogger{}

	// Only some fields present, rest stay 0
	path := writeFlightLog(t, "GroundSpeed: 4.5\nsome other line\n")

	data := ReadFlightLog(path, log)
	if data == nil {
		t.Fatal("expected flight log data")
	}
	if data.GroundSpeed != 4.5 {
		t.Errorf("GroundSpeed: got %v, want 4.5", data.GroundSpeed)
	}
	if data.TrueCourse != 0 || data.MSLAltitude != 0 || data.PlatformYaw != 0 {
		t.Errorf("missing fields should be 0: %+v", data)
	}
}

func TestReadFlightLogBad(t *testing.T) {
	log := &logger.MemoryLogger{}

	if data := ReadFlightLog("/no/such/file.LOG", log); data != nil {
		t.Errorf("missing file: got %+v, want nil", data)
	}

	// Not base64 at all
	path := filepath.Join(t.TempDir(), "garbage.LOG")
	if err := os.WriteFile(path, []byte("!!! not base64 !!!"), 0644); err != nil {
		t.Fatal(err)
	}
	if data := ReadFlightLog(path, log); data != nil {
		t.Errorf("undecodable file: got %+v, want nil", data)
	}

	if count := log.CountWithPrefix("ERROR"); count != 2 {
		t.Errorf("expected 2 error lines, got %v: %v", count, log.Lines)
	}
}
