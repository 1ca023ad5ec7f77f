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
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/frame-import/internal/frameModels"
)

// The two fixed tag query sets, one exiftool invocation each per image.
// Gimbal tags are the camera line-of-sight, Flight* tags are the airframe.
var (
	GimbalTagNames = []string{"GimbalYawDegree", "GimbalPitchDegree", "GimbalRollDegree"}
	FlightTagNames = []string{"GPSAltitude", "GPSAltitudeRef", "AbsoluteAltitude", "FlightYawDegree", "FlightPitchDegree", "FlightRollDegree"}
)

// ExternalTagTool - the query surface of the external tag-extraction tool.
// An interface so tests (and the best-effort retry path) can substitute a
// canned response instead of spawning processes.
type ExternalTagTool interface {
	// QueryTags - decoded values for the named tags. Empty on any failure.
	QueryTags(imagePath string, tagNames []string, log logger.ILogger) frameModels.ExternalToolResponse

	// QueryAll - every tag the tool knows for the image, unfiltered
	QueryAll(imagePath string, log logger.ILogger) frameModels.ExternalToolResponse
}

// ExifToolRunner - runs the real exiftool binary as a subprocess with
// numeric (-n) JSON output. The exe path is injected at construction so
// there's no ambient lookup buried in here.
type ExifToolRunner struct {
	exePath string
	timeout time.Duration
}

const defaultToolTimeout = 20 * time.Second

func MakeExifToolRunner(exePath string, timeout time.Duration) *ExifToolRunner {
	if timeout <= 0 {
		timeout = defaultToolTimeout
	}
	return &ExifToolRunner{exePath: exePath, timeout: timeout}
}

func (t *ExifToolRunner) QueryTags(imagePath string, tagNames []string, log logger.ILogger) frameModels.ExternalToolResponse {
	args := []string{"-n", "-json"}
	for _, name := range tagNames {
		args = append(args, "-"+name)
	}
	args = append(args, imagePath)

	return t.run(args, log)
}

func (t *ExifToolRunner) QueryAll(imagePath string, log logger.ILogger) frameModels.ExternalToolResponse {
	return t.run([]string{"-json", imagePath}, log)
}

// run - one tool invocation. Every failure mode (no exe configured, spawn
// failure, non-zero exit, timeout, bad JSON, empty array) collapses to an
// empty response with a single log line - nothing here is fatal to a batch.
func (t *ExifToolRunner) run(args []string, log logger.ILogger) frameModels.ExternalToolResponse {
	empty := frameModels.ExternalToolResponse{}

	if len(t.exePath) == 0 {
		log.Errorf("External tag tool not configured, returning no data")
		return empty
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, t.exePath, args...)
	stdout, err := cmd.Output()
	if err != nil {
		log.Errorf("Tag tool invocation failed: %v", errors.Wrapf(err, "%v %v", t.exePath, args))
		return empty
	}

	// The tool returns a JSON array with zero or one object
	decoded := []frameModels.ExternalToolResponse{}
	if err := json.Unmarshal(stdout, &decoded); err != nil {
		log.Errorf("Tag tool returned unparsable output: %v", err)
		return empty
	}
	if len(decoded) < 1 {
		log.Infof("Tag tool returned no objects for: %v", args[len(args)-1])
		return empty
	}

	return decoded[0]
}

// ResolveToolPath - finds the exiftool binary: EXIFTOOL_PATH env var, then
// PATH, then conventional locations beside the executable. Returns "" if
// nothing is found - the pipeline still runs, tool-sourced fields default.
func ResolveToolPath() string {
	if envPath := os.Getenv("EXIFTOOL_PATH"); len(envPath) > 0 {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	if found, err := exec.LookPath("exiftool"); err == nil {
		return found
	}

	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}

	for _, candidate := range []string{
		filepath.Join(exeDir, "exiftool"),
		filepath.Join(exeDir, "exiftool.exe"),
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
