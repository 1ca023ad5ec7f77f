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

package geomath

import (
	"math"

	"github.com/frameapp/core/core/utils"
)

// GroundResolution - ground sample distance in meters/pixel for a nadir
// image taken at the given altitude (meters above ground) with the given
// horizontal/vertical fields of view (degrees). The ground footprint per
// axis is 2*altitude*tan(fov/2); each axis resolution is footprint/pixels
// and the result is their average, rounded to 5 decimal places.
//
// A zero pixel dimension makes that axis contribute 0 and the whole result
// 0.0 - there's never a division fault here.
func GroundResolution(width int, height int, fovXDeg float64, fovYDeg float64, altitude float64) float64 {
	groundWidth := 2 * altitude * math.Tan(fovXDeg*math.Pi/180.0/2)
	groundHeight := 2 * altitude * math.Tan(fovYDeg*math.Pi/180.0/2)

	resolutionX := 0.0
	if width != 0 {
		resolutionX = groundWidth / float64(width)
	}
	resolutionY := 0.0
	if height != 0 {
		resolutionY = groundHeight / float64(height)
	}

	if resolutionX == 0 || resolutionY == 0 {
		return 0.0
	}
	return utils.RoundTo((resolutionX+resolutionY)/2, 5)
}
