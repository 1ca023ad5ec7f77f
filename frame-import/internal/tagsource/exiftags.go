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

// Readers for the metadata sources an image carries: the embedded EXIF tag
// block, the vendor XMP region, and the external exiftool process. Each one
// fails soft - a missing or unreadable source gives an empty result and a
// log line, and field-level defaulting happens later in fusion.
package tagsource

import (
	"image"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	// Dimension fallback can hit images goexif can't fully parse
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/frame-import/internal/frameModels"
)

type tagCollector struct {
	tags frameModels.RawTagSet
}

func (c *tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	val := frameModels.TagValue{}

	switch tag.Format() {
	case tiff.IntVal:
		n, err := tag.Int(0)
		if err != nil {
			return nil // skip unreadable tags, keep walking
		}
		val.Kind = frameModels.TagNumber
		val.Number = float64(n)
	case tiff.FloatVal:
		f, err := tag.Float(0)
		if err != nil {
			return nil
		}
		val.Kind = frameModels.TagNumber
		val.Number = f
	case tiff.RatVal:
		val.Kind = frameModels.TagRational
		for i := 0; i < int(tag.Count); i++ {
			num, den, err := tag.Rat2(i)
			if err != nil {
				return nil
			}
			val.Rationals = append(val.Rationals, frameModels.Rational{Num: num, Den: den})
		}
	default:
		val.Kind = frameModels.TagString
		val.Str = tag.String()
		if s, err := tag.StringVal(); err == nil {
			val.Str = s
		}
	}

	c.tags[string(name)] = val
	return nil
}

// ReadTagSet - reads the embedded tag block of an image into a RawTagSet.
// An unreadable file or missing tag block is a local failure: we log it and
// return an empty set, the batch carries on.
func ReadTagSet(imagePath string, log logger.ILogger) frameModels.RawTagSet {
	collector := &tagCollector{tags: frameModels.RawTagSet{}}

	file, err := os.Open(imagePath)
	if err != nil {
		log.Errorf("Failed to open %v for tag reading: %v", imagePath, err)
		return collector.tags
	}
	defer file.Close()

	exifData, err := exif.Decode(file)
	if err != nil {
		log.Infof("No readable tag block in %v: %v", imagePath, err)
		return collector.tags
	}

	// Walk never returns an error from our collector
	exifData.Walk(collector)

	ensureDimensions(imagePath, collector.tags, log)
	return collector.tags
}

// Some firmware writes images without the pixel dimension tags. Fall back
// to decoding the image header itself (jpeg/tiff/bmp registered).
func ensureDimensions(imagePath string, tags frameModels.RawTagSet, log logger.ILogger) {
	_, hasW := tags[string(exif.PixelXDimension)]
	_, hasH := tags[string(exif.PixelYDimension)]
	if hasW && hasH {
		return
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		log.Debugf("Dimension fallback failed for %v: %v", imagePath, err)
		return
	}

	tags[string(exif.PixelXDimension)] = frameModels.TagValue{Kind: frameModels.TagNumber, Number: float64(cfg.Width)}
	tags[string(exif.PixelYDimension)] = frameModels.TagValue{Kind: frameModels.TagNumber, Number: float64(cfg.Height)}
}
