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

package fileaccess

// Generic interface for reading/writing session artifacts. Sessions can sit
// on a local file system (command line tool) or in an S3 bucket (lambda), so
// all artifact IO is coded against this interface and we can implement it
// any way we like, including fully in-memory for unit tests.

// The first parameter is always the "root": a directory for the local
// implementation, a bucket for S3.

type FileAccess interface {
	ListObjects(root string, prefix string) ([]string, error)

	ObjectExists(root string, path string) (bool, error)

	ReadObject(root string, path string) ([]byte, error)
	WriteObject(root string, path string, data []byte) error

	ReadJSON(root string, path string, itemsPtr interface{}, emptyIfNotFound bool) error
	WriteJSON(root string, path string, itemsPtr interface{}) error

	CopyObject(srcRoot string, srcPath string, dstRoot string, dstPath string) error

	DeleteObject(root string, path string) error

	IsNotFoundError(err error) bool
}
