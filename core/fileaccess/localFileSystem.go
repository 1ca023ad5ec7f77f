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

import (
	"encoding/json"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/frameapp/core/core/utils"
)

// Implementation of file access using the local file system
type FSAccess struct {
}

func (fs *FSAccess) ListObjects(rootPath string, prefix string) ([]string, error) {
	result := []string{}

	rootOnly := path.Join(rootPath) // path.Join cleans off ./ for example, so it matches what Walk returns
	fullPath := fs.filePath(rootPath, prefix)

	err := filepath.Walk(fullPath, func(pathFound string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			// Paths are returned relative to the root, like S3 keys relative to a bucket
			toSave := pathFound
			if strings.HasPrefix(toSave, rootOnly) {
				toSave = toSave[len(rootOnly)+1:]
			}
			result = append(result, toSave)
		}
		return nil
	})

	return result, err
}

func (fs *FSAccess) ObjectExists(rootPath string, filePath string) (bool, error) {
	_, err := os.Stat(fs.filePath(rootPath, filePath))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (fs *FSAccess) ReadObject(rootPath string, filePath string) ([]byte, error) {
	return os.ReadFile(fs.filePath(rootPath, filePath))
}

func (fs *FSAccess) WriteObject(rootPath string, filePath string, data []byte) error {
	fullPath := fs.filePath(rootPath, filePath)

	// Ensure any subdirs in between are created
	err := os.MkdirAll(filepath.Dir(fullPath), 0777)
	if err != nil {
		return err
	}

	// Creates if needed, else truncates and writes
	return os.WriteFile(fullPath, data, 0777)
}

func (fs *FSAccess) ReadJSON(rootPath string, filePath string, itemsPtr interface{}, emptyIfNotFound bool) error {
	fileData, err := fs.ReadObject(rootPath, filePath)

	if err != nil {
		if emptyIfNotFound && fs.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(fileData, itemsPtr)
}

func (fs *FSAccess) WriteJSON(rootPath string, filePath string, itemsPtr interface{}) error {
	fileData, err := json.MarshalIndent(itemsPtr, "", utils.PrettyPrintIndentForJSON)
	if err != nil {
		return err
	}

	return fs.WriteObject(rootPath, filePath, fileData)
}

func (fs *FSAccess) CopyObject(srcRootPath string, srcPath string, dstRootPath string, dstPath string) error {
	fin, err := os.Open(fs.filePath(srcRootPath, srcPath))
	if err != nil {
		return err
	}
	defer fin.Close()

	dstFullPath := fs.filePath(dstRootPath, dstPath)
	err = os.MkdirAll(filepath.Dir(dstFullPath), 0777)
	if err != nil {
		return err
	}

	fout, err := os.Create(dstFullPath)
	if err != nil {
		return err
	}
	defer fout.Close()

	_, err = io.Copy(fout, fin)
	return err
}

func (fs *FSAccess) DeleteObject(rootPath string, filePath string) error {
	return os.Remove(fs.filePath(rootPath, filePath))
}

func (fs *FSAccess) IsNotFoundError(err error) bool {
	return os.IsNotExist(err)
}

func (fs *FSAccess) filePath(rootPath string, filePath string) string {
	return path.Join(rootPath, filePath)
}
