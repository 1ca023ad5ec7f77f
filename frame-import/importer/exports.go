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

package importer

import (
	"time"

	"github.com/frameapp/core/frame-import/internal/frameModels"
	"github.com/frameapp/core/frame-import/internal/tagsource"
)

// The public face of the pipeline for mains and other modules. The
// implementation packages are internal, these aliases and constructors are
// everything a caller needs.

type TagTool = tagsource.ExternalTagTool
type SessionStats = frameModels.SessionStats
type SessionOutcome = frameModels.SessionOutcome
type OutcomeStatus = frameModels.OutcomeStatus

const (
	OutcomeSuccess = frameModels.OutcomeSuccess
	OutcomeFailed  = frameModels.OutcomeFailed
)

// MakeExifTool - a tag tool backed by the exiftool binary at exePath.
// timeout 0 picks a sensible default.
func MakeExifTool(exePath string, timeout time.Duration) TagTool {
	return tagsource.MakeExifToolRunner(exePath, timeout)
}

// ResolveExifTool - finds the exiftool binary, "" if there isn't one
func ResolveExifTool() string {
	return tagsource.ResolveToolPath()
}
