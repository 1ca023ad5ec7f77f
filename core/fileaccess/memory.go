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
	"fmt"
	"strings"

	"github.com/frameapp/core/core/utils"
)

// In-memory implementation of file access for unit tests. Stores everything
// in a map keyed by root+"/"+path so tests can inspect what got written
// without touching the real file system.
type MemFileAccess struct {
	files map[string][]byte
}

func MakeMemFileAccess() *MemFileAccess {
	return &MemFileAccess{files: map[string][]byte{}}
}

func (m *MemFileAccess) key(root string, path string) string {
	return root + "/" + path
}

func (m *MemFileAccess) ListObjects(root string, prefix string) ([]string, error) {
	result := []string{}
	for _, key := range utils.GetSortedMapKeys(m.files) {
		withRoot := root + "/"
		if strings.HasPrefix(key, withRoot+prefix) {
			result = append(result, key[len(withRoot):])
		}
	}
	return result, nil
}

func (m *MemFileAccess) ObjectExists(root string, path string) (bool, error) {
	_, ok := m.files[m.key(root, path)]
	return ok, nil
}

func (m *MemFileAccess) ReadObject(root string, path string) ([]byte, error) {
	data, ok := m.files[m.key(root, path)]
	if !ok {
		return nil, fmt.Errorf("%v not found in %v", path, root)
	}
	return data, nil
}

func (m *MemFileAccess) WriteObject(root string, path string, data []byte) error {
	m.files[m.key(root, path)] = data
	return nil
}

func (m *MemFileAccess) ReadJSON(root string, path string, itemsPtr interface{}, emptyIfNotFound bool) error {
	data, err := m.ReadObject(root, path)
	if err != nil {
		if emptyIfNotFound && m.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, itemsPtr)
}

func (m *MemFileAccess) WriteJSON(root string, path string, itemsPtr interface{}) error {
	data, err := json.MarshalIndent(itemsPtr, "", utils.PrettyPrintIndentForJSON)
	if err != nil {
		return err
	}
	return m.WriteObject(root, path, data)
}

func (m *MemFileAccess) CopyObject(srcRoot string, srcPath string, dstRoot string, dstPath string) error {
	data, err := m.ReadObject(srcRoot, srcPath)
	if err != nil {
		return err
	}
	return m.WriteObject(dstRoot, dstPath, data)
}

func (m *MemFileAccess) DeleteObject(root string, path string) error {
	key := m.key(root, path)
	if _, ok := m.files[key]; !ok {
		return fmt.Errorf("%v not found in %v", path, root)
	}
	delete(m.files, key)
	return nil
}

func (m *MemFileAccess) IsNotFoundError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found in")
}
