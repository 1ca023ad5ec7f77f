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

package utils

import "fmt"

func Example_roundTo() {
	fmt.Println(RoundTo(1.23456789, 4))
	fmt.Println(RoundTo(1.23456789, 6))
	fmt.Println(RoundTo(-42.000049, 4))
	fmt.Println(RoundTo(0, 5))

	// Output:
	// 1.2346
	// 1.234568
	// -42
	// 0
}

func Example_fileStem() {
	fmt.Println(FileStem("DJI_0042.JPG"))
	fmt.Println(FileStem("some/dir/DJI_0042.jpeg"))
	fmt.Println(FileStem("noext"))

	// Output:
	// DJI_0042
	// DJI_0042
	// noext
}

func Example_getSortedMapKeys() {
	fmt.Println(GetSortedMapKeys(map[string]int{"b": 1, "a": 2, "c": 3}))

	// Output:
	// [a b c]
}
