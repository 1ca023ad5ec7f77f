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

// Writers for the per-image and per-session artifacts. All IO goes through
// the FileAccess abstraction so artifacts can land on local disk or S3,
// and tests run fully in memory.
package output

import (
	"fmt"
	"path"

	"github.com/frameapp/core/core/fileaccess"
	"github.com/frameapp/core/core/utils"
	"github.com/frameapp/core/frame-import/internal/frameModels"
	"github.com/frameapp/core/frame-import/internal/geomath"
)

// Subdirectory names inside a session
const (
	AcceptedDirName = "output"
	RejectedDirName = "fail_output"
	GISStageDirName = "TO_QGIS"
)

// WriteRecord - the image's record as indented JSON beside its name, eg
// DJI_0042.JPG -> DJI_0042.json. Returns the path written.
func WriteRecord(fs fileaccess.FileAccess, root string, dir string, imageFile string, record *frameModels.ImageRecord) (string, error) {
	recordPath := path.Join(dir, utils.FileStem(imageFile)+".json")
	if err := fs.WriteJSON(root, recordPath, record); err != nil {
		return "", fmt.Errorf("Failed to write record for %v: %v", imageFile, err)
	}
	return recordPath, nil
}

// WriteWorldFile - the affine georeferencing sidecar (.jpw) for an image
// with a known position and a non-zero ground resolution. Caller is expected
// to have checked both, this fails loudly rather than writing a meaningless
// sidecar.
func WriteWorldFile(fs fileaccess.FileAccess, root string, dir string, imageFile string, rec *frameModels.ImageRecord) (string, error) {
	pos := rec.CameraPosition
	if pos.GPSLatitude == nil || pos.GPSLongitude == nil {
		return "", fmt.Errorf("No position for world file: %v", imageFile)
	}
	if rec.BasicData.Resolution <= 0 {
		return "", fmt.Errorf("No ground resolution for world file: %v", imageFile)
	}

	coeff := geomath.WorldFileFromCenter(
		rec.BasicData.Resolution,
		rec.BasicData.Width,
		rec.BasicData.Height,
		*pos.GPSLatitude,
		*pos.GPSLongitude,
	)

	worldPath := path.Join(dir, utils.FileStem(imageFile)+".jpw")
	if err := fs.WriteObject(root, worldPath, []byte(coeff.Lines())); err != nil {
		return "", fmt.Errorf("Failed to write world file for %v: %v", imageFile, err)
	}
	return worldPath, nil
}

// WriteMercatorSidecar - the Web-Mercator projected-meters sidecar (.wld),
// for consumers working in EPSG:3857 instead of degrees. Deliberately a
// different extension than the .jpw: the two conventions must never be
// confused for one another.
func WriteMercatorSidecar(fs fileaccess.FileAccess, root string, dir string, imageFile string, rec *frameModels.ImageRecord) (string, error) {
	pos := rec.CameraPosition
	if pos.GPSLatitude == nil || pos.GPSLongitude == nil {
		return "", fmt.Errorf("No position for Mercator sidecar: %v", imageFile)
	}
	if rec.BasicData.Resolution <= 0 {
		return "", fmt.Errorf("No ground resolution for Mercator sidecar: %v", imageFile)
	}

	coeff := geomath.WorldFileWebMercator(
		rec.BasicData.Resolution,
		rec.BasicData.Width,
		rec.BasicData.Height,
		*pos.GPSLatitude,
		*pos.GPSLongitude,
	)

	sidecarPath := path.Join(dir, utils.FileStem(imageFile)+".wld")
	if err := fs.WriteObject(root, sidecarPath, []byte(coeff.Lines())); err != nil {
		return "", fmt.Errorf("Failed to write Mercator sidecar for %v: %v", imageFile, err)
	}
	return sidecarPath, nil
}

// WriteSessionMarker - the session completion marker, a small key=value
// text file named after the session, placed in the accept dir. Written
// last, its presence tells downstream pollers the session is complete.
func WriteSessionMarker(fs fileaccess.FileAccess, root string, session string, baseDir string, stats frameModels.SessionStats) error {
	// Images we couldn't process at all count as failures here
	failed := stats.Failed + stats.Skipped

	marker := fmt.Sprintf("session=%v\nbase_dir=%v\ntotal_images=%v\nok=%v\nfailed=%v\n",
		session, baseDir, stats.TotalImages, stats.Ok, failed)

	markerPath := path.Join(AcceptedDirName, session+".fns")
	if err := fs.WriteObject(root, markerPath, []byte(marker)); err != nil {
		return fmt.Errorf("Failed to write session marker: %v", err)
	}
	return nil
}

// WriteFullMetadataDump - everything the external tool knows about the
// image, written beside the record for manual inspection
func WriteFullMetadataDump(fs fileaccess.FileAccess, root string, dir string, imageFile string, allTags frameModels.ExternalToolResponse) error {
	dumpPath := path.Join(dir, utils.FileStem(imageFile)+"_all_metadata_file.json")
	if err := fs.WriteJSON(root, dumpPath, allTags); err != nil {
		return fmt.Errorf("Failed to write metadata dump for %v: %v", imageFile, err)
	}
	return nil
}

// StageForGIS - copies a successful image with its record and world file
// into the GIS staging dir. The world file is optional (no position means
// no sidecar), the other two must exist.
func StageForGIS(fs fileaccess.FileAccess, root string, imagePath string, recordPath string, worldPath string) error {
	stage := func(srcPath string) error {
		return fs.CopyObject(root, srcPath, root, path.Join(GISStageDirName, path.Base(srcPath)))
	}

	if err := stage(imagePath); err != nil {
		return fmt.Errorf("Failed to stage image %v: %v", imagePath, err)
	}
	if err := stage(recordPath); err != nil {
		return fmt.Errorf("Failed to stage record %v: %v", recordPath, err)
	}
	if len(worldPath) > 0 {
		if err := stage(worldPath); err != nil {
			return fmt.Errorf("Failed to stage world file %v: %v", worldPath, err)
		}
	}
	return nil
}
