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
	"strings"

	"github.com/frameapp/core/core/fileaccess"
	"github.com/frameapp/core/core/logger"
)

const (
	configFileName = "config.json"

	// Used when no config names the platform
	DefaultDroneType = "Unknown platform"
)

// SessionConfig - per-session settings, read from a config.json colocated
// with the images
type SessionConfig struct {
	DroneType string `json:"drone_type"`
	LogPath   string `json:"log_path"`
	SkipLog   bool   `json:"skip_log"`
}

// ReadSessionConfig - reads the session config, tolerating a missing file
// and an empty/whitespace drone type. Anything unreadable degrades to the
// defaults with a log line, a bad config must not stop a batch.
func ReadSessionConfig(fs fileaccess.FileAccess, sessionRoot string, log logger.ILogger) SessionConfig {
	cfg := SessionConfig{}
	if err := fs.ReadJSON(sessionRoot, configFileName, &cfg, true); err != nil {
		log.Errorf("Could not read %v: %v", configFileName, err)
		cfg = SessionConfig{}
	}

	cfg.DroneType = strings.TrimSpace(cfg.DroneType)
	if len(cfg.DroneType) == 0 {
		cfg.DroneType = DefaultDroneType
	}
	return cfg
}
