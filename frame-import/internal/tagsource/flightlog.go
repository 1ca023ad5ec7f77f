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
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/frame-import/internal/frameModels"
)

// DJI flight controller .LOG files arrive base64-encoded. After decoding,
// platform telemetry appears as "Name: value" or "Name = value" text lines
// mixed with binary noise, so we scan for the fields we care about.
var (
	flightTrueCourseRegexp  = regexp.MustCompile(`TrueCourse\s*[:=]\s*([0-9.]+)`)
	flightGroundSpeedRegexp = regexp.MustCompile(`GroundSpeed\s*[:=]\s*([0-9.]+)`)
	flightMSLAltitudeRegexp = regexp.MustCompile(`AltitudeMSL\s*[:=]\s*([0-9.]+)`)
	flightYawRegexp         = regexp.MustCompile(`Yaw\s*[:=]\s*([0-9.\-]+)`)
	flightPitchRegexp       = regexp.MustCompile(`Pitch\s*[:=]\s*([0-9.\-]+)`)
	flightRollRegexp        = regexp.MustCompile(`Roll\s*[:=]\s*([0-9.\-]+)`)
)

// ReadFlightLog - reads the base64-encoded flight log at logPath and scans
// the decoded text for platform telemetry. Fields that can't be found come
// back 0, see frameModels.FlightLogData. Returns nil if the file can't be
// read or decoded, the caller then relies on embedded/tool sources alone.
func ReadFlightLog(logPath string, log logger.ILogger) *frameModels.FlightLogData {
	raw, err := os.ReadFile(logPath)
	if err != nil {
		log.Errorf("Failed to read flight log %v: %v", logPath, err)
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		log.Errorf("Failed to decode flight log %v: %v", logPath, err)
		return nil
	}

	text := string(decoded)
	return &frameModels.FlightLogData{
		TrueCourse:    scanFlightValue(flightTrueCourseRegexp, text),
		GroundSpeed:   scanFlightValue(flightGroundSpeedRegexp, text),
		MSLAltitude:   scanFlightValue(flightMSLAltitudeRegexp, text),
		PlatformYaw:   scanFlightValue(flightYawRegexp, text),
		PlatformPitch: scanFlightValue(flightPitchRegexp, text),
		PlatformRoll:  scanFlightValue(flightRollRegexp, text),
	}
}

func scanFlightValue(re *regexp.Regexp, text string) float64 {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	val, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return val
}
