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
	"strings"
	"testing"
)

func Example_groundResolution() {
	fmt.Println(GroundResolution(4000, 3000, 82.9, 52.5, 50))
	fmt.Println(GroundResolution(4000, 3000, 82.9, 52.5, 100))

	// Degenerate dimensions never fault, they yield 0
	fmt.Println(GroundResolution(0, 3000, 82.9, 52.5, 50))
	fmt.Println(GroundResolution(4000, 0, 82.9, 52.5, 50))
	fmt.Println(GroundResolution(0, 0, 82.9, 52.5, 50))

	// Zero altitude means zero footprint
	fmt.Println(GroundResolution(4000, 3000, 82.9, 52.5, 0))

	// Output:
	// 0.01926
	// 0.03852
	// 0
	// 0
	// 0
	// 0
}

func TestWorldFileCenterRoundTrip(t *testing.T) {
	const lat, lon = 32.0, 34.8
	const res = 0.05
	const width, height = 4000, 3000

	coef := WorldFileFromCenter(res, width, height, lat, lon)

	if coef.B != 0 || coef.D != 0 {
		t.Errorf("Expected no rotation terms, got B=%v D=%v", coef.B, coef.D)
	}
	if coef.E >= 0 {
		t.Errorf("Expected negative E (y decreases down the image), got %v", coef.E)
	}

	// Reapplying the affine at the center pixel must give back the center
	gotLon, gotLat := coef.Apply(float64(width)/2, float64(height)/2)
	if math.Abs(gotLon-lon) > 1e-9 {
		t.Errorf("Center longitude round trip: expected %v, got %v", lon, gotLon)
	}
	if math.Abs(gotLat-lat) > 1e-9 {
		t.Errorf("Center latitude round trip: expected %v, got %v", lat, gotLat)
	}

	// Upper-left corner must sit north-west of the center
	cornerLon, cornerLat := coef.Apply(0, 0)
	if cornerLon >= lon || cornerLat <= lat {
		t.Errorf("Corner (%v,%v) not north-west of center (%v,%v)", cornerLon, cornerLat, lon, lat)
	}
}

func TestWorldFileWebMercator(t *testing.T) {
	const lat, lon = 32.0, 34.8
	const res = 0.05
	const width, height = 4000, 3000

	coef := WorldFileWebMercator(res, width, height, lat, lon)

	// Pixel size stays in projected meters for this variant
	if coef.A != res || coef.E != -res {
		t.Errorf("Expected pixel size %v, got A=%v E=%v", res, coef.A, coef.E)
	}

	// Center pixel projects to the Web-Mercator center coordinates
	wantX := 6378137.0 * lon * math.Pi / 180.0
	wantY := 6378137.0 * math.Log(math.Tan(math.Pi/4+lat*math.Pi/180.0/2))
	gotX, gotY := coef.Apply(float64(width)/2, float64(height)/2)
	if math.Abs(gotX-wantX) > 1e-6 || math.Abs(gotY-wantY) > 1e-6 {
		t.Errorf("Center projection: expected (%v,%v), got (%v,%v)", wantX, wantY, gotX, gotY)
	}
}

func TestWorldFileLines(t *testing.T) {
	coef := WorldFileCoefficients{A: 0.5, D: 0, B: 0, E: -0.5, C: 34.8, F: 32.0}
	lines := strings.Split(coef.Lines(), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %v", len(lines))
	}
	want := []string{"0.5", "0", "0", "-0.5", "34.8", "32"}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("Line %v: expected %v, got %v", i, w, lines[i])
		}
	}
}
