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

// Angle and coordinate conversions for drone telemetry. These are leaf
// functions with no dependencies so the fusion rules stay independently
// testable.
package geomath

import (
	"math"

	"github.com/frameapp/core/core/utils"
	"github.com/frameapp/core/frame-import/internal/frameModels"
)

// DecimalFromDMS - converts a degrees/minutes/seconds triple plus a
// hemisphere reference ("N"/"S"/"E"/"W") to decimal degrees, rounded to 6
// decimal places. Returns false if any rational component is missing or
// non-finite.
func DecimalFromDMS(dms []frameModels.Rational, ref string) (float64, bool) {
	if len(dms) < 3 {
		return 0, false
	}

	deg, okD := dms[0].Float()
	min, okM := dms[1].Float()
	sec, okS := dms[2].Float()
	if !okD || !okM || !okS {
		return 0, false
	}

	decimal := deg + min/60.0 + sec/3600.0
	if ref == "S" || ref == "W" {
		decimal = -decimal
	}
	return utils.RoundTo(decimal, 6), true
}

// NormalizeAzimuth - wraps an azimuth/yaw angle into [0,360). A single
// negative wrap is enough for sensor values, which sit in (-360,360).
func NormalizeAzimuth(a float64) float64 {
	if a < 0 {
		return a + 360.0
	}
	if a >= 360.0 {
		return math.Mod(a, 360.0)
	}
	return a
}

// NormalizePitch - wraps a pitch angle into (-180,180] then clamps to the
// gimbal's valid [-90,90] range. The wrap must happen before the clamp:
// 270 is physically -90 and has to wrap there, not clamp to +90.
func NormalizePitch(p float64) float64 {
	p = math.Mod(p+180.0, 360.0)
	if p < 0 {
		p += 360.0
	}
	p -= 180.0

	if p < -90.0 {
		return -90.0
	}
	if p > 90.0 {
		return 90.0
	}
	return p
}
