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
	"bytes"
	"encoding/xml"
	"os"
	"regexp"

	"github.com/frameapp/core/frame-import/internal/frameModels"
)

const droneDJINamespace = "http://www.dji.com/drone-dji/1.0/"

// The vendor XMP packet sits in the raw JPEG bytes between these markers
var xmpRegionRegexp = regexp.MustCompile(`(?s)<x:xmpmeta[^>]*>.*?</x:xmpmeta>`)

// ReadVendorMeta - scans an image's raw bytes for the vendor XMP metadata
// region and pulls the relative-altitude attribute out of it. Absence at
// any level (unreadable file, no region, malformed XML, no attribute)
// yields nil with no error - the block is optional.
func ReadVendorMeta(imagePath string) *frameModels.VendorMetadataBlock {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil
	}

	val, ok := scanVendorMeta(data)
	if !ok {
		return nil
	}
	return &frameModels.VendorMetadataBlock{RelativeAltitude: val}
}

func scanVendorMeta(data []byte) (string, bool) {
	region := xmpRegionRegexp.Find(data)
	if region == nil {
		return "", false
	}

	decoder := xml.NewDecoder(bytes.NewReader(region))
	for {
		token, err := decoder.Token()
		if err != nil {
			// Includes io.EOF - no Description element found
			return "", false
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "Description" {
			continue
		}

		for _, attr := range start.Attr {
			if attr.Name.Space == droneDJINamespace && attr.Name.Local == "RelativeAltitude" {
				return attr.Value, true
			}
		}
		return "", false
	}
}
