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

package fusion

import (
	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/frame-import/internal/frameModels"
	"github.com/frameapp/core/frame-import/internal/geomath"
)

// Placeholder written when no source can supply a ground speed. Downstream
// consumers reject exactly-0 speeds, so the placeholder stays off 0.
const groundSpeedPlaceholder = 0.01

// FuseFields - resolves every fused field for one image from its source
// snapshots. Inputs that weren't available arrive as nil/empty and their
// candidates simply never win. The result always has every field set.
//
// The altitude chain is the subtle one: an embedded GPSAltitude whose
// embedded reference byte says "above sea level" (0) outranks everything
// the external tool reports, including AbsoluteAltitude.
func FuseFields(tags frameModels.RawTagSet, vendor *frameModels.VendorMetadataBlock, gimbal frameModels.ExternalToolResponse, flight frameModels.ExternalToolResponse, flightLog *frameModels.FlightLogData, log logger.ILogger) frameModels.FusedFields {
	fused := frameModels.FusedFields{}

	resolveInto(&fused.MSLAltitude, "mslAltitude", fieldChain{
		candidates: []candidate{
			{"flight log AltitudeMSL", nonZero(logFloat(flightLog, func(d *frameModels.FlightLogData) float64 { return d.MSLAltitude }))},
			{"embedded GPSAltitude (ref sea level)", func() (float64, bool) {
				ref, ok := embeddedFloat(tags, "GPSAltitudeRef")()
				if !ok || int(ref) != 0 {
					return 0, false
				}
				return embeddedFloat(tags, "GPSAltitude")()
			}},
			{"tool GPSAltitude (ref absent or sea level)", func() (float64, bool) {
				alt, ok := flight.GetFloat("GPSAltitude")
				if !ok {
					return 0, false
				}
				if ref, refOk := flight.GetFloat("GPSAltitudeRef"); refOk && int(ref) != 0 {
					return 0, false
				}
				return alt, true
			}},
			{"tool AbsoluteAltitude", toolFloat(flight, "AbsoluteAltitude")},
			{"embedded GPSAltitude", embeddedFloat(tags, "GPSAltitude")},
		},
	}, log)

	resolveInto(&fused.RelativeAltitude, "relativeAltitude", fieldChain{
		candidates: []candidate{
			{"vendor RelativeAltitude", vendor.Float},
		},
	}, log)

	resolveInto(&fused.PlatformYaw, "platformYaw", fieldChain{
		candidates: []candidate{
			{"flight log Yaw", nonZero(logFloat(flightLog, func(d *frameModels.FlightLogData) float64 { return d.PlatformYaw }))},
			{"tool FlightYawDegree", toolFloat(flight, "FlightYawDegree")},
		},
		normalize: geomath.NormalizeAzimuth,
	}, log)

	resolveInto(&fused.PlatformPitch, "platformPitch", fieldChain{
		candidates: []candidate{
			{"flight log Pitch", nonZero(logFloat(flightLog, func(d *frameModels.FlightLogData) float64 { return d.PlatformPitch }))},
			{"tool FlightPitchDegree", toolFloat(flight, "FlightPitchDegree")},
		},
		normalize: geomath.NormalizePitch,
	}, log)

	// Roll is passed through raw. The consumer's convention for roll sign
	// and range matches the airframe's, so wrapping it would corrupt it.
	resolveInto(&fused.PlatformRoll, "platformRoll", fieldChain{
		candidates: []candidate{
			{"flight log Roll", nonZero(logFloat(flightLog, func(d *frameModels.FlightLogData) float64 { return d.PlatformRoll }))},
			{"tool FlightRollDegree", toolFloat(flight, "FlightRollDegree")},
		},
	}, log)

	resolveInto(&fused.LosAzimuth, "losAzimuth", fieldChain{
		candidates: []candidate{
			{"tool GimbalYawDegree", toolFloat(gimbal, "GimbalYawDegree")},
		},
		normalize: geomath.NormalizeAzimuth,
	}, log)

	resolveInto(&fused.LosPitch, "losPitch", fieldChain{
		candidates: []candidate{
			{"tool GimbalPitchDegree", toolFloat(gimbal, "GimbalPitchDegree")},
		},
		normalize: geomath.NormalizePitch,
	}, log)

	resolveInto(&fused.LosRoll, "losRoll", fieldChain{
		candidates: []candidate{
			{"tool GimbalRollDegree", toolFloat(gimbal, "GimbalRollDegree")},
		},
	}, log)

	resolveInto(&fused.TrueCourse, "trueCourse", fieldChain{
		candidates: []candidate{
			{"flight log TrueCourse", nonZero(logFloat(flightLog, func(d *frameModels.FlightLogData) float64 { return d.TrueCourse }))},
			{"embedded GPSTrack", embeddedFloat(tags, "GPSTrack")},
		},
	}, log)

	resolveInto(&fused.GroundSpeed, "groundSpeed", fieldChain{
		candidates: []candidate{
			{"flight log GroundSpeed", nonZero(logFloat(flightLog, func(d *frameModels.FlightLogData) float64 { return d.GroundSpeed }))},
		},
		fallback: groundSpeedPlaceholder,
	}, log)

	return fused
}

func resolveInto(dst *float64, field string, chain fieldChain, log logger.ILogger) {
	val, source := chain.resolve()
	*dst = val
	log.Debugf("Fused %v=%v from %v", field, val, source)
}

func embeddedFloat(tags frameModels.RawTagSet, name string) func() (float64, bool) {
	return func() (float64, bool) {
		tag, ok := tags[name]
		if !ok {
			return 0, false
		}
		return tag.Float()
	}
}

func toolFloat(resp frameModels.ExternalToolResponse, name string) func() (float64, bool) {
	return func() (float64, bool) {
		return resp.GetFloat(name)
	}
}

func logFloat(data *frameModels.FlightLogData, pick func(*frameModels.FlightLogData) float64) func() (float64, bool) {
	return func() (float64, bool) {
		if data == nil {
			return 0, false
		}
		return pick(data), true
	}
}
