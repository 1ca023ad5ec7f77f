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

// Priority-based field fusion. Each output field has an ordered chain of
// candidate sources, the first one that yields a finite value wins, and a
// chain with no usable candidate resolves to its documented fallback.
// Candidate order is fixed per field and never depends on which sources
// happened to respond.
package fusion

import (
	"math"

	"github.com/frameapp/core/core/utils"
)

// candidate - one potential source for a fused field. extract returns
// (value, present); an absent or non-finite value passes to the next
// candidate in the chain.
type candidate struct {
	source  string
	extract func() (float64, bool)
}

// fieldChain - ordered candidates plus the normalization applied to the
// winning value and the fallback when nothing wins. The fallback is NOT
// normalized, it's already in output form.
type fieldChain struct {
	candidates []candidate
	normalize  func(float64) float64
	fallback   float64
}

// resolve - walks the chain, normalizes the winner and rounds to 4 decimal
// places. Rounding happens here and only here, the sources hand over raw
// values. Also returns the name of the winning source ("default" when the
// chain fell through) so callers can log provenance.
func (c fieldChain) resolve() (float64, string) {
	for _, cand := range c.candidates {
		val, ok := cand.extract()
		if !ok || math.IsNaN(val) || math.IsInf(val, 0) {
			continue
		}
		if c.normalize != nil {
			val = c.normalize(val)
		}
		return utils.RoundTo(val, 4), cand.source
	}
	return c.fallback, "default"
}

// nonZero - wraps an extractor so a 0 value counts as absent. Used for
// sources where 0 is the "field not found" marker rather than a reading.
func nonZero(extract func() (float64, bool)) func() (float64, bool) {
	return func() (float64, bool) {
		val, ok := extract()
		if !ok || val == 0 {
			return 0, false
		}
		return val, true
	}
}
