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

// Assembles the six-section output record for one image from its embedded
// tags, its resolved position and its fused fields. Pure assembly, no IO.
package recordbuild

import (
	"time"

	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/core/utils"
	"github.com/frameapp/core/frame-import/internal/frameModels"
	"github.com/frameapp/core/frame-import/internal/geomath"
)

const (
	SensorName    = "Modash"
	SensorType    = "VIS"
	OperationUnit = "Padam"
	SensorState   = "0"

	// Camera horizontal/vertical fields of view in degrees. Fixed for the
	// sensor fleet, not read per-image.
	FoVXDegrees = 82.9
	FoVYDegrees = 52.5
)

// Timestamp layouts: embedded tags use the colon-separated EXIF form,
// records use a Zulu ISO form.
const (
	embeddedTimeLayout = "2006:01:02 15:04:05"
	recordTimeLayout   = "2006-01-02T15:04:05Z"
)

// BuildRecord - builds the complete record for one image. Every section is
// always present and every field set, sources that had nothing contribute
// their defaults via the fused fields.
func BuildRecord(filename string, tags frameModels.RawTagSet, pos frameModels.GeoPosition, fused frameModels.FusedFields, droneType string, log logger.ILogger) frameModels.ImageRecord {
	width := int(tags.GetFloat("PixelXDimension", 0))
	height := int(tags.GetFloat("PixelYDimension", 0))

	return frameModels.ImageRecord{
		BasicData:          buildBasicData(filename, tags, fused, width, height, log),
		CameraData:         buildCameraData(tags, width, height),
		CameraPosition:     buildCameraPosition(pos, fused),
		PlatformData:       buildPlatformData(fused, droneType),
		Operational:        frameModels.OperationalData{OperationUnit: OperationUnit},
		SensorSpecificData: frameModels.SensorSpecificData{State: SensorState},
	}
}

func buildBasicData(filename string, tags frameModels.RawTagSet, fused frameModels.FusedFields, width int, height int, log logger.ILogger) frameModels.BasicData {
	return frameModels.BasicData{
		ID:          utils.FileStem(filename),
		SensorName:  SensorName,
		SensorType:  SensorType,
		ImageFile:   filename,
		ImagingTime: convertImagingTime(tags.GetString("DateTimeOriginal"), log),
		Height:      height,
		Width:       width,
		Resolution:  geomath.GroundResolution(width, height, FoVXDegrees, FoVYDegrees, fused.RelativeAltitude),
	}
}

// convertImagingTime - embedded timestamp to record form, "" when the tag
// is absent or malformed
func convertImagingTime(embedded string, log logger.ILogger) string {
	if len(embedded) == 0 {
		return ""
	}
	parsed, err := time.Parse(embeddedTimeLayout, embedded)
	if err != nil {
		log.Infof("Could not format imaging time %v: %v", embedded, err)
		return ""
	}
	return parsed.Format(recordTimeLayout)
}

func buildCameraData(tags frameModels.RawTagSet, width int, height int) frameModels.CameraData {
	// Focal length in pixels from the 35mm-equivalent focal length scaled
	// by the full-frame sensor dimensions (36x24mm). Unknown focal length
	// leaves both at 0.
	fx, fy := 0.0, 0.0
	if focal35 := tags.GetFloat("FocalLengthIn35mmFilm", 0); focal35 > 0 {
		fx = utils.RoundTo(focal35/36.0*float64(width), 4)
		fy = utils.RoundTo(focal35/24.0*float64(height), 4)
	}

	return frameModels.CameraData{
		FocalLengthInPixelsX: fx,
		FocalLengthInPixelsY: fy,
		FoVX:                 FoVXDegrees,
		FoVY:                 FoVYDegrees,
		Cx:                   float64(width) / 2.0,
		Cy:                   float64(height) / 2.0,
		CameraMake:           tags.GetString("Make"),
		CameraModel:          tags.GetString("Model"),
	}
}

func buildCameraPosition(pos frameModels.GeoPosition, fused frameModels.FusedFields) frameModels.CameraPosition {
	return frameModels.CameraPosition{
		GPSLatitude:      pos.Latitude,
		GPSLongitude:     pos.Longitude,
		GPSAltitude:      pos.GPSAltitude,
		RelativeAltitude: fused.RelativeAltitude,
		LosAzimuth:       fused.LosAzimuth,
		LosPitch:         fused.LosPitch,
		LosRoll:          fused.LosRoll,
	}
}

func buildPlatformData(fused frameModels.FusedFields, droneType string) frameModels.PlatformData {
	return frameModels.PlatformData{
		PlatformName:  droneType,
		TrueCourse:    fused.TrueCourse,
		GroundSpeed:   fused.GroundSpeed,
		MSLAltitude:   fused.MSLAltitude,
		PlatformYaw:   fused.PlatformYaw,
		PlatformPitch: fused.PlatformPitch,
		PlatformRoll:  fused.PlatformRoll,
	}
}
