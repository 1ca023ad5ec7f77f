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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/frameapp/core/core/fileaccess"
	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/core/timestamper"
	"github.com/frameapp/core/frame-import/importer"
)

func main() {
	fmt.Println("===============================")
	fmt.Println("=  Frame metadata importer    =")
	fmt.Println("===============================")

	var argSession = flag.String("session", "", "Existing session directory containing images and config.json")
	var argImages = flag.String("images", "", "Directory of images to copy into a new timestamped session under -base")
	var argBase = flag.String("base", ".", "Base directory new sessions are created under")
	var argDrone = flag.String("drone", "", "Platform name override (otherwise read from config.json)")
	var argExifTool = flag.String("exiftool", "", "Path to the exiftool binary (otherwise resolved from EXIFTOOL_PATH/PATH)")
	var argWorkers = flag.Int("workers", 1, "Concurrent image workers")
	var argStage = flag.Bool("stage", false, "Stage accepted artifacts into the GIS dir")
	var argDumps = flag.Bool("dumps", false, "Write per-image full metadata dumps")
	flag.Parse()

	jobLog := &logger.StdOutLogger{}
	jobLog.SetLogLevel(logger.LogInfo)
	defer logger.HandlePanicWithLog(jobLog)
	jobLog.Infof("Log level: %v", logger.GetLogLevelName(jobLog.GetLogLevel()))

	if dsn := os.Getenv("SENTRY_DSN"); len(dsn) > 0 {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: os.Getenv("ENVIRONMENT"),
		}); err != nil {
			jobLog.Errorf("Sentry initialization failed: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	fs := &fileaccess.FSAccess{}

	sessionDir := *argSession
	if len(sessionDir) == 0 {
		if len(*argImages) == 0 {
			fail(jobLog, "Need either -session or -images")
		}

		var err error
		sessionDir, err = makeSessionDir(fs, *argBase, *argImages, jobLog)
		if err != nil {
			fail(jobLog, "Failed to create session: %v", err)
		}
	}

	session := filepath.Base(filepath.Clean(sessionDir))
	jobLog.Infof("Session dir: %v", sessionDir)

	toolPath := *argExifTool
	if len(toolPath) == 0 {
		toolPath = importer.ResolveExifTool()
	}
	if len(toolPath) == 0 {
		jobLog.Errorf("exiftool not found, tool-sourced fields will default")
	} else {
		jobLog.Infof("Using exiftool: %v", toolPath)
	}
	tool := importer.MakeExifTool(toolPath, 0)

	if len(*argDrone) > 0 {
		// A command line override wins over config.json, write it there so
		// the session stays self-describing
		err := fs.WriteJSON(sessionDir, "config.json", importer.SessionConfig{DroneType: *argDrone})
		if err != nil {
			fail(jobLog, "Failed to write session config: %v", err)
		}
	}

	params := importer.ImportParams{
		SessionDir: sessionDir,
		Session:    session,
		Workers:    *argWorkers,
		StageGIS:   *argStage,
		WriteDumps: *argDumps,
	}

	stats, outcomes, err := importer.ImportSession(params, fs, tool, jobLog)
	if err != nil {
		sentry.CaptureException(err)
		fail(jobLog, "Import failed: %v", err)
	}

	fmt.Println("\nProcessing Statistics:")
	fmt.Printf("Total images processed: %v\n", stats.TotalImages)
	fmt.Printf("Successfully extracted all critical fields: %v\n", stats.Ok)
	fmt.Printf("Failed or missing critical fields: %v\n", stats.Failed+stats.Skipped)

	for _, outcome := range outcomes {
		if outcome.Status == importer.OutcomeFailed && len(outcome.MissingReasons) > 0 {
			jobLog.Infof("%v: %v", outcome.ImageFile, outcome.MissingReasons)
		}
	}
}

// makeSessionDir - creates a timestamped session dir under base and copies
// the images (and any config.json) into it
func makeSessionDir(fs *fileaccess.FSAccess, base string, imagesDir string, log logger.ILogger) (string, error) {
	session := timestamper.MakeSessionName(&timestamper.UnixTimeNowStamper{})
	sessionDir := filepath.Join(base, session)

	items, err := fs.ListObjects(imagesDir, "")
	if err != nil {
		return "", err
	}

	copied := 0
	for _, item := range items {
		if filepath.Dir(item) != "." {
			continue
		}
		if err := fs.CopyObject(imagesDir, item, sessionDir, item); err != nil {
			return "", err
		}
		copied++
	}

	log.Infof("Created session %v with %v files", session, copied)
	return sessionDir, nil
}

func fail(log logger.ILogger, format string, a ...interface{}) {
	log.Errorf(format, a...)
	sentry.Flush(2 * time.Second)
	os.Exit(1)
}
