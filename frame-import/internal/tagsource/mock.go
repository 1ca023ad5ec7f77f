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
	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/frame-import/internal/frameModels"
)

// FakeTagTool - canned responses keyed by image path, so tests never
// spawn a subprocess
type FakeTagTool struct {
	ByImage map[string]frameModels.ExternalToolResponse
}

func (f *FakeTagTool) QueryTags(imagePath string, tagNames []string, log logger.ILogger) frameModels.ExternalToolResponse {
	full, ok := f.ByImage[imagePath]
	if !ok {
		return frameModels.ExternalToolResponse{}
	}

	// Only hand back what was asked for, like the real tool does
	result := frameModels.ExternalToolResponse{}
	for _, name := range tagNames {
		if val, exists := full[name]; exists {
			result[name] = val
		}
	}
	return result
}

func (f *FakeTagTool) QueryAll(imagePath string, log logger.ILogger) frameModels.ExternalToolResponse {
	if full, ok := f.ByImage[imagePath]; ok {
		return full
	}
	return frameModels.ExternalToolResponse{}
}
