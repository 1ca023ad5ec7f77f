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

package output

import (
	"fmt"
	"strings"
	"testing"

	"github.com/frameapp/core/core/fileaccess"
	"github.com/frameapp/core/frame-import/internal/frameModels"
)

func makeRecord() *frameModels.ImageRecord {
	lat, lon := 32.0, 34.8
	rec := &frameModels.ImageRecord{}
	rec.BasicData.ID = "DJI_0042"
	rec.BasicData.ImageFile = "DJI_0042.JPG"
	rec.BasicData.Width = 4000
	rec.BasicData.Height = 3000
	rec.BasicData.Resolution = 0.05
	rec.CameraPosition.GPSLatitude = &lat
	rec.CameraPosition.GPSLongitude = &lon
	return rec
}

func TestWriteRecord(t *testing.T) {
	fs := fileaccess.MakeMemFileAccess()

	recordPath, err := WriteRecord(fs, "session1", AcceptedDirName, "DJI_0042.JPG", makeRecord())
	if err != nil {
		t.Fatal(err)
	}
	if recordPath != "output/DJI_0042.json" {
		t.Errorf("record path: got %v", recordPath)
	}

	readBack := frameModels.ImageRecord{}
	if err := fs.ReadJSON("session1", recordPath, &readBack, false); err != nil {
		t.Fatal(err)
	}
	if readBack.BasicData.ID != "DJI_0042" || readBack.BasicData.Width != 4000 {
		t.Errorf("read back mismatch: %+v", readBack.BasicData)
	}
}

func TestWriteWorldFile(t *testing.T) {
	fs := fileaccess.MakeMemFileAccess()

	worldPath, err := WriteWorldFile(fs, "session1", AcceptedDirName, "DJI_0042.JPG", makeRecord())
	if err != nil {
		t.Fatal(err)
	}
	if worldPath != "output/DJI_0042.jpw" {
		t.Errorf("world path: got %v", worldPath)
	}

	data, err := fs.ReadObject("session1", worldPath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 coefficient lines, got %v: %q", len(lines), string(data))
	}
	// Rotation terms are always 0 for nadir-style georeferencing
	if lines[1] != "0" || lines[2] != "0" {
		t.Errorf("rotation terms: got %v, %v, want 0, 0", lines[1], lines[2])
	}
}

func TestWriteWorldFileRequiresPosition(t *testing.T) {
	fs := fileaccess.MakeMemFileAccess()

	rec := makeRecord()
	rec.CameraPosition.GPSLatitude = nil
	rec.CameraPosition.GPSLongitude = nil
	if _, err := WriteWorldFile(fs, "session1", AcceptedDirName, "DJI_0042.JPG", rec); err == nil {
		t.Errorf("expected error for unknown position")
	}

	rec = makeRecord()
	rec.BasicData.Resolution = 0
	if _, err := WriteWorldFile(fs, "session1", AcceptedDirName, "DJI_0042.JPG", rec); err == nil {
		t.Errorf("expected error for zero resolution")
	}
}

func TestWriteMercatorSidecar(t *testing.T) {
	fs := fileaccess.MakeMemFileAccess()

	sidecarPath, err := WriteMercatorSidecar(fs, "session1", AcceptedDirName, "DJI_0042.JPG", makeRecord())
	if err != nil {
		t.Fatal(err)
	}
	if sidecarPath != "output/DJI_0042.wld" {
		t.Errorf("sidecar path: got %v", sidecarPath)
	}

	// Same image never gets both conventions under one extension
	data, err := fs.ReadObject("session1", sidecarPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(strings.Split(strings.TrimRight(string(data), "\n"), "\n")) != 6 {
		t.Errorf("expected 6 coefficient lines: %q", string(data))
	}
}

func Example_writeSessionMarker() {
	fs := fileaccess.MakeMemFileAccess()

	stats := frameModels.SessionStats{TotalImages: 10, Ok: 7, Failed: 2, Skipped: 1}
	err := WriteSessionMarker(fs, "sessions", "20240615_103045", "/data/sessions/20240615_103045", stats)
	if err != nil {
		fmt.Println(err)
		return
	}

	data, _ := fs.ReadObject("sessions", "output/20240615_103045.fns")
	fmt.Print(string(data))

	// Output:
	// session=20240615_103045
	// base_dir=/data/sessions/20240615_103045
	// total_images=10
	// ok=7
	// failed=3
}

func TestStageForGIS(t *testing.T) {
	fs := fileaccess.MakeMemFileAccess()

	for _, p := range []string{"DJI_0042.JPG", "output/DJI_0042.json", "output/DJI_0042.jpw"} {
		if err := fs.WriteObject("session1", p, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	if err := StageForGIS(fs, "session1", "DJI_0042.JPG", "output/DJI_0042.json", "output/DJI_0042.jpw"); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{"TO_QGIS/DJI_0042.JPG", "TO_QGIS/DJI_0042.json", "TO_QGIS/DJI_0042.jpw"} {
		exists, err := fs.ObjectExists("session1", p)
		if err != nil {
			t.Fatal(err)
		}
		if !exists {
			t.Errorf("missing staged file %v", p)
		}
	}
}

func TestStageForGISNoWorldFile(t *testing.T) {
	fs := fileaccess.MakeMemFileAccess()

	for _, p := range []string{"DJI_0042.JPG", "output/DJI_0042.json"} {
		if err := fs.WriteObject("session1", p, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	if err := StageForGIS(fs, "session1", "DJI_0042.JPG", "output/DJI_0042.json", ""); err != nil {
		t.Fatal(err)
	}

	exists, err := fs.ObjectExists("session1", "TO_QGIS/DJI_0042.jpw")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Errorf("world file should not have been staged")
	}
}
