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

// Simple helper functions shared across the importer - stuff you'd expect
// to be part of the std lib but isn't
package utils

import (
	"math"
	"path"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PrettyPrintIndentForJSON - Pretty-print indenting of JSON
const PrettyPrintIndentForJSON = "    "

func ItemInSlice[T comparable](a T, list []T) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// GetSortedMapKeys - map keys in sorted order, for deterministic iteration
func GetSortedMapKeys[K constraints.Ordered, V any](theMap map[K]V) []K {
	keys := maps.Keys(theMap)
	slices.Sort(keys)
	return keys
}

// RoundTo - round to the given number of decimal places. All the metadata
// fields we emit have a documented precision, so this is used at each
// documented rounding boundary and nowhere else.
func RoundTo(val float64, decimals int) float64 {
	mult := math.Pow(10, float64(decimals))
	return math.Round(val*mult) / mult
}

// FileStem - file name without directory or extension, eg "a/b.jpg" -> "b"
func FileStem(filePath string) string {
	name := path.Base(filePath)
	return strings.TrimSuffix(name, path.Ext(name))
}
