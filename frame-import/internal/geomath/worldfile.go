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
	"fmt"
	"math"
)

// WorldFileCoefficients - the affine sextuple of a world file, mapping
// pixel (col,row) to ground (x,y):
//
//	x = A*col + B*row + C
//	y = D*col + E*row + F
//
// We only emit north-up, non-rotated placements, so B and D are always 0.
type WorldFileCoefficients struct {
	A float64
	D float64
	B float64
	E float64
	C float64
	F float64
}

const metersPerDegreeLat = 111320.0

// Spherical Web-Mercator earth radius, meters
const webMercatorRadius = 6378137.0

// WorldFileFromCenter - derives world file coefficients in the flat-earth
// degrees convention: the meters/pixel resolution is converted to degrees
// using 111320*cos(latitude) meters per degree of longitude and 111320
// meters per degree of latitude, and the origin (C,F) is the image center
// shifted by half the footprint. This is the convention all .jpw output
// uses; see WorldFileWebMercator for the projected-meters alternative. The
// two write different units into the same slots, so one convention is
// chosen per output file type and never mixed.
func WorldFileFromCenter(resolution float64, width int, height int, centerLat float64, centerLon float64) WorldFileCoefficients {
	metersPerDegreeLon := metersPerDegreeLat * math.Cos(centerLat*math.Pi/180.0)

	a := resolution / metersPerDegreeLon
	e := -resolution / metersPerDegreeLat

	offsetXDeg := float64(width) / 2 * a
	offsetYDeg := float64(height) / 2 * math.Abs(e)

	return WorldFileCoefficients{
		A: a,
		D: 0.0,
		B: 0.0,
		E: e,
		C: centerLon - offsetXDeg,
		F: centerLat + offsetYDeg,
	}
}

// WorldFileWebMercator - the higher-fidelity variant: projects the center
// through spherical Web-Mercator (x=R*lon, y=R*ln(tan(pi/4+lat/2))) and
// keeps pixel size in projected meters rather than degrees. Not used for
// .jpw output - kept for consumers that want EPSG:3857 placement.
func WorldFileWebMercator(resolution float64, width int, height int, centerLat float64, centerLon float64) WorldFileCoefficients {
	x := webMercatorRadius * centerLon * math.Pi / 180.0
	y := webMercatorRadius * math.Log(math.Tan(math.Pi/4+centerLat*math.Pi/180.0/2))

	return WorldFileCoefficients{
		A: resolution,
		D: 0.0,
		B: 0.0,
		E: -resolution,
		C: x - float64(width)/2*resolution,
		F: y + float64(height)/2*resolution,
	}
}

// Apply - applies the affine to a pixel position, returning ground (x,y)
func (c WorldFileCoefficients) Apply(col float64, row float64) (float64, float64) {
	return c.A*col + c.B*row + c.C, c.D*col + c.E*row + c.F
}

// Lines - the six-line world file content, coefficients in the order
// A, D, B, E, C, F as GIS tools expect
func (c WorldFileCoefficients) Lines() string {
	return fmt.Sprintf("%v\n%v\n%v\n%v\n%v\n%v", c.A, c.D, c.B, c.E, c.C, c.F)
}
