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
	"fmt"

	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/frame-import/internal/frameModels"
)

func dmsTag(deg, min int64, secNum, secDen int64) frameModels.TagValue {
	return frameModels.TagValue{
		Kind: frameModels.TagRational,
		Rationals: []frameModels.Rational{
			{Num: deg, Den: 1},
			{Num: min, Den: 1},
			{Num: secNum, Den: secDen},
		},
	}
}

func strTag(s string) frameModels.TagValue {
	return frameModels.TagValue{Kind: frameModels.TagString, Str: s}
}

func printPos(pos frameModels.GeoPosition) {
	if !pos.Valid() {
		fmt.Printf("unknown, alt=%v\n", pos.GPSAltitude)
		return
	}
	fmt.Printf("lat=%v, lon=%v, alt=%v\n", *pos.Latitude, *pos.Longitude, pos.GPSAltitude)
}

func Example_extractGeoPosition() {
	log := &logger.NullLogger{}

	// Complete southern/eastern hemisphere position
	tags := frameModels.RawTagSet{
		"GPSLatitude":     dmsTag(32, 5, 1234, 100),
		"GPSLatitudeRef":  strTag("S"),
		"GPSLongitude":    dmsTag(34, 48, 0, 1),
		"GPSLongitudeRef": strTag("E"),
		"GPSAltitude": frameModels.TagValue{
			Kind:      frameModels.TagRational,
			Rationals: []frameModels.Rational{{Num: 18435, Den: 100}},
		},
	}
	printPos(ExtractGeoPosition(tags, log))

	// Missing longitude discards latitude too
	delete(tags, "GPSLongitude")
	printPos(ExtractGeoPosition(tags, log))

	// No GPS tags at all
	printPos(ExtractGeoPosition(frameModels.RawTagSet{}, log))

	// Zero-denominator seconds can't be converted
	bad := frameModels.RawTagSet{
		"GPSLatitude":     dmsTag(32, 5, 1, 0),
		"GPSLatitudeRef":  strTag("N"),
		"GPSLongitude":    dmsTag(34, 48, 0, 1),
		"GPSLongitudeRef": strTag("E"),
	}
	printPos(ExtractGeoPosition(bad, log))

	// Out-of-range latitude rejects the pair
	outOfRange := frameModels.RawTagSet{
		"GPSLatitude":     dmsTag(95, 0, 0, 1),
		"GPSLatitudeRef":  strTag("N"),
		"GPSLongitude":    dmsTag(34, 48, 0, 1),
		"GPSLongitudeRef": strTag("E"),
	}
	printPos(ExtractGeoPosition(outOfRange, log))

	// Output:
	// lat=-32.086761, lon=34.8, alt=184.35
	// unknown, alt=184.35
	// unknown, alt=0
	// unknown, alt=0
	// unknown, alt=0
}

func Example_extractGeoPosition_logging() {
	log := &logger.MemoryLogger{}

	ExtractGeoPosition(frameModels.RawTagSet{}, log)
	fmt.Println(log.Lines[len(log.Lines)-1])

	// Output:
	// INFO: Missing required GPS tags
}
