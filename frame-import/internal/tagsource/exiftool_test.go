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
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/frameapp/core/core/logger"
)

// writeStubTool - a shell script standing in for the real binary, so the
// runner's spawn/decode path is tested without exiftool installed
func writeStubTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tool script requires a shell")
	}

	path := filepath.Join(t.TempDir(), "exiftool-stub")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExifToolRunnerQuery(t *testing.T) {
	log := &logger.NullLogger{}
	exe := writeStubTool(t, `echo '[{"GimbalYawDegree":-12.3,"GimbalPitchDegree":"-45.0"}]'`)

	tool := MakeExifToolRunner(exe, 0)
	resp := tool.QueryTags("whatever.jpg", GimbalTagNames, log)

	if val, ok := resp.GetFloat("GimbalYawDegree"); !ok || val != -12.3 {
		t.Errorf("GimbalYawDegree: got %v/%v", val, ok)
	}
	// String-valued numbers decode too
	if val, ok := resp.GetFloat("GimbalPitchDegree"); !ok || val != -45.0 {
		t.Errorf("GimbalPitchDegree: got %v/%v", val, ok)
	}
	if _, ok := resp.GetFloat("GimbalRollDegree"); ok {
		t.Errorf("GimbalRollDegree should be absent")
	}
}

func TestExifToolRunnerFailures(t *testing.T) {
	log := &logger.MemoryLogger{}

	// No binary configured at all
	tool := MakeExifToolRunner("", 0)
	if resp := tool.QueryTags("x.jpg", GimbalTagNames, log); len(resp) != 0 {
		t.Errorf("unconfigured tool: got %v", resp)
	}

	// Binary that emits garbage
	tool = MakeExifToolRunner(writeStubTool(t, `echo 'not json'`), 0)
	if resp := tool.QueryTags("x.jpg", GimbalTagNames, log); len(resp) != 0 {
		t.Errorf("garbage output: got %v", resp)
	}

	// Binary that fails outright
	tool = MakeExifToolRunner(writeStubTool(t, `exit 3`), 0)
	if resp := tool.QueryAll("x.jpg", log); len(resp) != 0 {
		t.Errorf("failing tool: got %v", resp)
	}

	// Empty JSON array means no objects, not an error worth ERROR level
	tool = MakeExifToolRunner(writeStubTool(t, `echo '[]'`), 0)
	if resp := tool.QueryAll("x.jpg", log); len(resp) != 0 {
		t.Errorf("empty array: got %v", resp)
	}

	if count := log.CountWithPrefix("ERROR"); count != 3 {
		t.Errorf("expected 3 error lines, got %v: %v", count, log.Lines)
	}
}
