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

// Lambda entry point for session import. Uploading a session's config.json
// to the sessions bucket triggers import of everything under that session
// prefix: the session is pulled down to local scratch, processed, and the
// artifact dirs pushed back beside the images.
package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/frameapp/core/core/awsutil"
	"github.com/frameapp/core/core/fileaccess"
	"github.com/frameapp/core/core/logger"
	"github.com/frameapp/core/frame-import/importer"
)

// Uploaded artifact dirs, relative to the session prefix
var uploadDirs = []string{"output", "fail_output"}

func HandleRequest(ctx context.Context, event events.S3Event) (string, error) {
	jobLog := &logger.StdOutLogger{}

	sess, err := awsutil.GetSession()
	if err != nil {
		return "", fmt.Errorf("Failed to create AWS session: %v", err)
	}
	s3svc, err := awsutil.GetS3(sess)
	if err != nil {
		return "", fmt.Errorf("Failed to create S3 connection: %v", err)
	}
	remote := fileaccess.MakeS3Access(s3svc)

	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key := record.S3.Object.Key

		// Only a config.json landing marks a session as ready
		if path.Base(key) != "config.json" {
			jobLog.Infof("Ignoring object: %v", key)
			continue
		}

		sessionPrefix := path.Dir(key)
		if sessionPrefix == "." {
			return "", fmt.Errorf("Session config must sit under a session prefix: %v", key)
		}

		if err := processSession(remote, bucket, sessionPrefix, jobLog); err != nil {
			return "", err
		}
	}

	return "Import complete", nil
}

func processSession(remote fileaccess.FileAccess, bucket string, sessionPrefix string, jobLog logger.ILogger) error {
	jobLog.Infof("Importing session %v from bucket %v", sessionPrefix, bucket)

	localDir, err := os.MkdirTemp("", "frame-import-")
	if err != nil {
		return fmt.Errorf("Failed to create scratch dir: %v", err)
	}
	defer os.RemoveAll(localDir)

	local := &fileaccess.FSAccess{}

	// Pull the whole session prefix down
	keys, err := remote.ListObjects(bucket, sessionPrefix+"/")
	if err != nil {
		return fmt.Errorf("Failed to list session %v: %v", sessionPrefix, err)
	}

	for _, key := range keys {
		rel := strings.TrimPrefix(key, sessionPrefix+"/")
		if len(rel) == 0 || strings.ContainsRune(rel, '/') {
			// Earlier artifacts from a rerun, not session input
			continue
		}
		data, err := remote.ReadObject(bucket, key)
		if err != nil {
			return fmt.Errorf("Failed to download %v: %v", key, err)
		}
		if err := local.WriteObject(localDir, rel, data); err != nil {
			return fmt.Errorf("Failed to store %v locally: %v", rel, err)
		}
	}

	toolPath := importer.ResolveExifTool()
	if len(toolPath) == 0 {
		jobLog.Errorf("exiftool not found in lambda image, tool-sourced fields will default")
	}

	params := importer.ImportParams{
		SessionDir: localDir,
		Session:    path.Base(sessionPrefix),
		WriteDumps: true,
	}

	stats, _, err := importer.ImportSession(params, local, importer.MakeExifTool(toolPath, 0), jobLog)
	if err != nil {
		return fmt.Errorf("Import of %v failed: %v", sessionPrefix, err)
	}

	// Push the artifact dirs back up beside the images
	for _, dir := range uploadDirs {
		artifacts, err := local.ListObjects(localDir, dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("Failed to list artifacts in %v: %v", dir, err)
		}

		for _, artifact := range artifacts {
			data, err := local.ReadObject(localDir, artifact)
			if err != nil {
				return fmt.Errorf("Failed to read artifact %v: %v", artifact, err)
			}
			remoteKey := path.Join(sessionPrefix, filepath.ToSlash(artifact))
			if err := remote.WriteObject(bucket, remoteKey, data); err != nil {
				return fmt.Errorf("Failed to upload %v: %v", remoteKey, err)
			}
		}
	}

	jobLog.Infof("Session %v imported: %v ok, %v failed of %v",
		sessionPrefix, stats.Ok, stats.Failed+stats.Skipped, stats.TotalImages)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
