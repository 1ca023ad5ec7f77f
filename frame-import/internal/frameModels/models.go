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

// Structures forming the in-memory representation of everything we know
// about one drone image, from the raw per-source snapshots through to the
// fused six-section record that gets written to disk.
package frameModels

import "math"

// TagKind - what kind of value an embedded tag holds
type TagKind int

const (
	TagString TagKind = iota
	TagNumber
	TagRational
)

// Rational - exact num/den pair as stored in embedded GPS tags
type Rational struct {
	Num int64
	Den int64
}

// Float - rational as float, false if the denominator is 0 or the result
// isn't finite
func (r Rational) Float() (float64, bool) {
	if r.Den == 0 {
		return 0, false
	}
	val := float64(r.Num) / float64(r.Den)
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}
	return val, true
}

// TagValue - one typed value from an image's embedded tag block
type TagValue struct {
	Kind      TagKind
	Str       string
	Number    float64
	Rationals []Rational
}

// Float - numeric view of the tag if it has one
func (t TagValue) Float() (float64, bool) {
	switch t.Kind {
	case TagNumber:
		return t.Number, true
	case TagRational:
		if len(t.Rationals) > 0 {
			return t.Rationals[0].Float()
		}
	}
	return 0, false
}

// RawTagSet - read-only snapshot of an image's embedded tag block, one per
// image, built once and never modified after that
type RawTagSet map[string]TagValue

// GetFloat - numeric value of the named tag, or the default
func (tags RawTagSet) GetFloat(name string, def float64) float64 {
	if tag, ok := tags[name]; ok {
		if val, ok := tag.Float(); ok {
			return val
		}
	}
	return def
}

// GetString - string value of the named tag, or empty
func (tags RawTagSet) GetString(name string) string {
	if tag, ok := tags[name]; ok {
		return tag.Str
	}
	return ""
}

// GetRationals - rational components of the named tag, eg DMS triples
func (tags RawTagSet) GetRationals(name string) ([]Rational, bool) {
	tag, ok := tags[name]
	if !ok || tag.Kind != TagRational {
		return nil, false
	}
	return tag.Rationals, true
}

// VendorMetadataBlock - the optional vendor XMP region embedded in the image
// bytes. When present it yields at most one relative-altitude value, stored
// here exactly as written in the file (may carry a leading "+").
type VendorMetadataBlock struct {
	RelativeAltitude string
}

// FlightLogData - platform telemetry scanned out of an optional flight
// controller log. Fields the log didn't contain are 0 and the fusion chains
// treat 0 as "no value", falling through to the image-derived sources.
type FlightLogData struct {
	TrueCourse    float64
	GroundSpeed   float64
	MSLAltitude   float64
	PlatformYaw   float64
	PlatformPitch float64
	PlatformRoll  float64
}

// ExternalToolResponse - decoded values by tag name from one exiftool
// invocation. A missing key means the tool had no value. A failed invocation
// yields an empty (never partial) response.
type ExternalToolResponse map[string]interface{}

// GetFloat - numeric value for a tag if the tool returned one. Handles the
// tool emitting numbers as JSON numbers or as strings (possibly with an
// explicit leading +).
func (r ExternalToolResponse) GetFloat(name string) (float64, bool) {
	val, ok := r[name]
	if !ok || val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case string:
		return parseToolFloat(v)
	}
	return 0, false
}

// GeoPosition - WGS84 position in decimal degrees/meters. Latitude and
// longitude are nil ("unknown") when the source coordinates were missing or
// out of range - they're discarded together, never one at a time.
type GeoPosition struct {
	Latitude    *float64
	Longitude   *float64
	GPSAltitude float64
}

// Valid - true when both coordinates are known
func (p GeoPosition) Valid() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// FusedFields - the output of the field fusion engine for one image. Every
// field is always set - absent sources fuse to the documented defaults, so
// nothing downstream ever sees a missing value.
type FusedFields struct {
	MSLAltitude      float64
	RelativeAltitude float64

	PlatformYaw   float64
	PlatformPitch float64
	PlatformRoll  float64 // roll is fused raw, see fusion package notes

	LosAzimuth float64
	LosPitch   float64
	LosRoll    float64

	TrueCourse  float64
	GroundSpeed float64
}

// The six record sections, matching the output JSON document exactly.
// Pointer fields are emitted as JSON null when nil.

type BasicData struct {
	ID              string  `json:"id"`
	SensorName      string  `json:"sensorName"`
	SensorType      string  `json:"sensorType"`
	ImageFile       string  `json:"imageFile"`
	ImagingTime     string  `json:"imagingTime"`
	PrevImagingTime *string `json:"prevImagingTime"`
	NextImagingTime *string `json:"nextImagingTime"`
	Height          int     `json:"height"`
	Width           int     `json:"width"`
	Resolution      float64 `json:"resolution"`
}

type CameraData struct {
	FocalLengthInPixelsX float64  `json:"focalLengthInPixelsX"`
	FocalLengthInPixelsY float64  `json:"focalLengthInPixelsY"`
	FoVX                 float64  `json:"foVX"`
	FoVY                 float64  `json:"foVY"`
	Cx                   float64  `json:"cx"`
	Cy                   float64  `json:"cy"`
	K1                   float64  `json:"k1"`
	K2                   float64  `json:"k2"`
	K3                   float64  `json:"k3"`
	P1                   float64  `json:"p1"`
	P2                   float64  `json:"p2"`
	Alpha                float64  `json:"alpha"`
	CameraMake           string   `json:"cameraMake"`
	CameraModel          string   `json:"cameraModel"`
	FocalID              *string  `json:"focalId"`
	ExposureDuration     *float64 `json:"exposureDuration"`
	FNumber              *float64 `json:"fnumber"`
}

type CameraPosition struct {
	GPSLatitude      *float64 `json:"gpsLatitude"`
	GPSLongitude     *float64 `json:"gpsLongitude"`
	GPSAltitude      float64  `json:"gpsAltitude"`
	RelativeAltitude float64  `json:"relativeAltitude"`
	LosAzimuth       float64  `json:"losAzimuth"`
	LosPitch         float64  `json:"losPitch"`
	LosRoll          float64  `json:"losRoll"`
}

type PlatformData struct {
	PlatformName  string  `json:"platformName"`
	PlatformID    *string `json:"platformId"`
	TrueCourse    float64 `json:"trueCourse"`
	GroundSpeed   float64 `json:"groundSpeed"`
	MSLAltitude   float64 `json:"mslAltitude"`
	PlatformYaw   float64 `json:"platformYaw"`
	PlatformPitch float64 `json:"platformPitch"`
	PlatformRoll  float64 `json:"platformRoll"`
}

type OperationalData struct {
	MissionNumber *string `json:"missionNumber"`
	OperationUnit string  `json:"operationUnit"`
}

type SensorSpecificData struct {
	State        string  `json:"state"`
	SixDofSource *string `json:"sixDofSource"`
	GroundRef    *string `json:"groundRef"`
}

// ImageRecord - the fused six-section output record for one image. Always
// fully populated, created once per image and immutable once written out.
type ImageRecord struct {
	BasicData          BasicData          `json:"BasicData"`
	CameraData         CameraData         `json:"CameraData"`
	CameraPosition     CameraPosition     `json:"CameraPosition"`
	PlatformData       PlatformData       `json:"PlatformData"`
	Operational        OperationalData    `json:"Operational"`
	SensorSpecificData SensorSpecificData `json:"SensorSpecificData"`
}

// OutcomeStatus - classification of one processed image
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "Success"
	OutcomeFailed  OutcomeStatus = "Failed"
)

// SessionOutcome - what happened to one image, and where its record went
type SessionOutcome struct {
	ImageFile  string
	Status     OutcomeStatus
	RecordPath string
	// Reasons the image was classified Failed (empty on success)
	MissingReasons []string
}

// SessionStats - aggregate counters for one batch run. Skipped images (both
// the build and the best-effort retry failed) are included in Failed when
// written to the session marker.
type SessionStats struct {
	TotalImages int
	Ok          int
	Failed      int
	Skipped     int
}
