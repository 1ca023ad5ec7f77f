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

// The batch controller. Walks a session directory of drone images, runs
// each one through tag extraction, fusion and record assembly, and sorts
// the results into accept/reject dirs. One bad image never stops a batch,
// the only batch-fatal condition is not being able to see the session at
// all.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/frameapp/core/core/fileaccess"
	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/core/utils"
	"github.com/frameapp/core/frame-import/internal/frameModels"
	"github.com/frameapp/core/frame-import/internal/fusion"
	"github.com/frameapp/core/frame-import/internal/output"
	"github.com/frameapp/core/frame-import/internal/recordbuild"
	"github.com/frameapp/core/frame-import/internal/tagsource"
)

// Only these are put through the record pipeline
var recordImageExts = []string{".jpg", ".jpeg"}

// The full-metadata dump covers a wider net, raw and PNG included
var dumpImageExts = []string{".jpg", ".jpeg", ".png", ".dng"}

// Reason strings written into outcomes for rejected images
const (
	reasonMissingLOS    = "LOS fields (azimuth/pitch)"
	reasonMissingRelAlt = "relative altitude"
	reasonFault         = "processing fault"
)

// ImportParams - one batch invocation
type ImportParams struct {
	// Local directory holding the images and config.json. Also the root
	// all artifacts are written under.
	SessionDir string

	// Session name, used for the completion marker
	Session string

	// Concurrent image workers, <= 1 processes sequentially
	Workers int

	// Copy accepted image+record+world file into the GIS staging dir
	StageGIS bool

	// Write per-image full metadata dumps into the accept dir
	WriteDumps bool
}

// ImportSession - processes every image in a session. Returns per-image
// outcomes in directory order plus the aggregate stats, which are also
// written to the session completion marker.
func ImportSession(params ImportParams, fs fileaccess.FileAccess, tool tagsource.ExternalTagTool, log logger.ILogger) (frameModels.SessionStats, []frameModels.SessionOutcome, error) {
	stats := frameModels.SessionStats{}

	cfg := ReadSessionConfig(fs, params.SessionDir, log)
	log.Infof("Using platform name: %v", cfg.DroneType)

	var flightLog *frameModels.FlightLogData
	if len(cfg.LogPath) > 0 && !cfg.SkipLog {
		flightLog = tagsource.ReadFlightLog(cfg.LogPath, log)
	}

	names, err := listSessionImages(fs, params.SessionDir, recordImageExts)
	if err != nil {
		return stats, nil, fmt.Errorf("Failed to list session images: %v", err)
	}

	log.Infof("Found %v images in session %v", len(names), params.Session)
	stats.TotalImages = len(names)

	outcomes := make([]frameModels.SessionOutcome, len(names))

	if params.Workers > 1 {
		var wg sync.WaitGroup
		sem := make(chan bool, params.Workers)

		for i, name := range names {
			wg.Add(1)
			sem <- true

			go func(idx int, imageName string) {
				defer wg.Done()
				defer func() { <-sem }()
				outcomes[idx] = processImage(params, fs, tool, cfg, flightLog, imageName, log)
			}(i, name)
		}
		wg.Wait()
	} else {
		for i, name := range names {
			log.Infof("Processing: %v", name)
			outcomes[i] = processImage(params, fs, tool, cfg, flightLog, name, log)
		}
	}

	for _, outcome := range outcomes {
		switch {
		case outcome.Status == frameModels.OutcomeSuccess:
			stats.Ok++
		case len(outcome.RecordPath) == 0:
			// Not even a partial record could be written
			stats.Skipped++
		default:
			stats.Failed++
		}
	}

	if err := output.WriteSessionMarker(fs, params.SessionDir, params.Session, params.SessionDir, stats); err != nil {
		log.Errorf("%v", err)
	}

	if params.WriteDumps {
		writeMetadataDumps(params, fs, tool, log)
	}

	log.Infof("Session %v done: %v ok, %v failed, %v skipped of %v",
		params.Session, stats.Ok, stats.Failed, stats.Skipped, stats.TotalImages)

	return stats, outcomes, nil
}

// processImage - full pipeline for one image. Never returns a fault to the
// caller: a panic anywhere in extraction or assembly is recovered and the
// image retried with embedded tags only, so one poisoned file costs at most
// its own record.
func processImage(params ImportParams, fs fileaccess.FileAccess, tool tagsource.ExternalTagTool, cfg SessionConfig, flightLog *frameModels.FlightLogData, name string, log logger.ILogger) (outcome frameModels.SessionOutcome) {
	fullPath := filepath.Join(params.SessionDir, name)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Failed to process %v: %v", name, r)
			outcome = salvageImage(params, fs, cfg, name, fullPath, log)
		}
	}()

	tags := tagsource.ReadTagSet(fullPath, log)
	pos := tagsource.ExtractGeoPosition(tags, log)
	vendor := tagsource.ReadVendorMeta(fullPath)
	gimbal := tool.QueryTags(fullPath, tagsource.GimbalTagNames, log)
	flight := tool.QueryTags(fullPath, tagsource.FlightTagNames, log)

	fused := fusion.FuseFields(tags, vendor, gimbal, flight, flightLog, log)
	record := recordbuild.BuildRecord(name, tags, pos, fused, cfg.DroneType, log)

	missing := classifyRecord(fused)
	if len(missing) > 0 {
		log.Infof("Missing critical fields (%v): %v", strings.Join(missing, ", "), name)

		recordPath, err := output.WriteRecord(fs, params.SessionDir, output.RejectedDirName, name, &record)
		if err != nil {
			log.Errorf("%v", err)
		}
		return frameModels.SessionOutcome{
			ImageFile:      name,
			Status:         frameModels.OutcomeFailed,
			RecordPath:     recordPath,
			MissingReasons: missing,
		}
	}

	recordPath, err := output.WriteRecord(fs, params.SessionDir, output.AcceptedDirName, name, &record)
	if err != nil {
		log.Errorf("%v", err)
		return frameModels.SessionOutcome{
			ImageFile:      name,
			Status:         frameModels.OutcomeFailed,
			MissingReasons: []string{reasonFault},
		}
	}

	worldPath := ""
	if record.CameraPosition.GPSLatitude != nil && record.BasicData.Resolution > 0 {
		worldPath, err = output.WriteWorldFile(fs, params.SessionDir, output.AcceptedDirName, name, &record)
		if err != nil {
			log.Errorf("%v", err)
			worldPath = ""
		}
	}

	if params.StageGIS {
		if err := output.StageForGIS(fs, params.SessionDir, name, recordPath, worldPath); err != nil {
			log.Errorf("%v", err)
		}
	}

	log.Infof("Successfully extracted critical fields: %v", recordPath)
	return frameModels.SessionOutcome{
		ImageFile:  name,
		Status:     frameModels.OutcomeSuccess,
		RecordPath: recordPath,
	}
}

// salvageImage - best-effort second pass after a fault, using embedded tags
// only. A fault here too means the image is skipped entirely.
func salvageImage(params ImportParams, fs fileaccess.FileAccess, cfg SessionConfig, name string, fullPath string, log logger.ILogger) (outcome frameModels.SessionOutcome) {
	outcome = frameModels.SessionOutcome{
		ImageFile:      name,
		Status:         frameModels.OutcomeFailed,
		MissingReasons: []string{reasonFault},
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Could not create record for %v: %v", name, r)
			outcome.RecordPath = ""
		}
	}()

	tags := tagsource.ReadTagSet(fullPath, log)
	pos := tagsource.ExtractGeoPosition(tags, log)
	fused := fusion.FuseFields(tags, nil, frameModels.ExternalToolResponse{}, frameModels.ExternalToolResponse{}, nil, log)
	record := recordbuild.BuildRecord(name, tags, pos, fused, cfg.DroneType, log)

	recordPath, err := output.WriteRecord(fs, params.SessionDir, output.RejectedDirName, name, &record)
	if err != nil {
		log.Errorf("%v", err)
		return outcome
	}

	outcome.RecordPath = recordPath
	return outcome
}

// classifyRecord - the acceptance rule: line-of-sight azimuth+pitch and the
// relative altitude must all be non-zero. A genuine 0 reading fails this
// check too, we accept that false negative because a 0 in these fields is
// overwhelmingly an absent source.
func classifyRecord(fused frameModels.FusedFields) []string {
	missing := []string{}
	if fused.LosAzimuth == 0 || fused.LosPitch == 0 {
		missing = append(missing, reasonMissingLOS)
	}
	if fused.RelativeAltitude == 0 {
		missing = append(missing, reasonMissingRelAlt)
	}
	return missing
}

// listSessionImages - top-level files in the session dir with one of the
// wanted extensions, in sorted order
func listSessionImages(fs fileaccess.FileAccess, sessionRoot string, wantExts []string) ([]string, error) {
	all, err := fs.ListObjects(sessionRoot, "")
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, item := range all {
		// Anything in a subdirectory is not a session image
		if strings.ContainsRune(item, '/') {
			continue
		}
		if utils.ItemInSlice(strings.ToLower(filepath.Ext(item)), wantExts) {
			names = append(names, item)
		}
	}
	return names, nil
}

// writeMetadataDumps - one full-metadata JSON per image in the accept dir,
// covering raw formats the record pipeline skips. Failures are log-only.
func writeMetadataDumps(params ImportParams, fs fileaccess.FileAccess, tool tagsource.ExternalTagTool, log logger.ILogger) {
	names, err := listSessionImages(fs, params.SessionDir, dumpImageExts)
	if err != nil {
		log.Errorf("Could not list images for metadata dumps: %v", err)
		return
	}

	for _, name := range names {
		allTags := tool.QueryAll(filepath.Join(params.SessionDir, name), log)
		if len(allTags) == 0 {
			log.Infof("No metadata returned for %v, skipping dump", name)
			continue
		}
		if err := output.WriteFullMetadataDump(fs, params.SessionDir, output.AcceptedDirName, name, allTags); err != nil {
			log.Errorf("%v", err)
		}
	}
}
