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

package frameModels

import (
	"math"
	"strconv"
	"strings"
)

// parseToolFloat - parses a numeric string as written by drone firmware,
// which emits explicit positive signs like "+12.40"
func parseToolFloat(s string) (float64, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	val, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}
	return val, true
}

// Float - the relative altitude as a number, false if absent or unparsable
func (v *VendorMetadataBlock) Float() (float64, bool) {
	if v == nil || len(v.RelativeAltitude) == 0 {
		return 0, false
	}
	return parseToolFloat(v.RelativeAltitude)
}
