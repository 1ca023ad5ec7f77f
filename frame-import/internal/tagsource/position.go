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
	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/frame-import/internal/frameModels"
	"github.com/frameapp/core/frame-import/internal/geomath"
)

// ExtractGeoPosition - reads the GPS position out of an embedded tag set,
// converting DMS triples to WGS84 decimal degrees. If either coordinate is
// missing, unconvertible, or outside the valid range, BOTH are discarded
// (an "unknown" position), since half a coordinate is no position at all.
// GPS altitude is read independently and defaults to 0.
func ExtractGeoPosition(tags frameModels.RawTagSet, log logger.ILogger) frameModels.GeoPosition {
	pos := frameModels.GeoPosition{
		GPSAltitude: tags.GetFloat("GPSAltitude", 0.0),
	}

	latRats, okLat := tags.GetRationals("GPSLatitude")
	lonRats, okLon := tags.GetRationals("GPSLongitude")
	latRef := tags.GetString("GPSLatitudeRef")
	lonRef := tags.GetString("GPSLongitudeRef")

	if !okLat || !okLon || len(latRef) == 0 || len(lonRef) == 0 {
		log.Infof("Missing required GPS tags")
		return pos
	}

	lat, okLat := geomath.DecimalFromDMS(latRats, latRef)
	lon, okLon := geomath.DecimalFromDMS(lonRats, lonRef)
	if !okLat || !okLon {
		log.Infof("Failed to convert GPS coordinates")
		return pos
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		log.Infof("Invalid coordinate values: lat=%v, lon=%v", lat, lon)
		return pos
	}

	pos.Latitude = &lat
	pos.Longitude = &lon
	return pos
}
