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
	"bytes"
	"encoding/json"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/frameapp/core/core/utils"
)

// Implementation of file access using AWS S3. Used when a session of images
// is dropped into a bucket and processed by the lambda.
type S3Access struct {
	s3Api s3iface.S3API
}

func MakeS3Access(s3Api s3iface.S3API) S3Access {
	return S3Access{s3Api: s3Api}
}

// ListObjects - calls AWS ListObjectsV2, looping on continuation tokens
// until the full listing has been read
func (s3Access S3Access) ListObjects(bucket string, prefix string) ([]string, error) {
	continuationToken := ""
	result := []string{}

	params := s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	for {
		if len(continuationToken) > 0 {
			params.ContinuationToken = aws.String(continuationToken)
		}

		listing, err := s3Access.s3Api.ListObjectsV2(&params)
		if err != nil {
			return []string{}, err
		}

		for _, item := range listing.Contents {
			if item.Key != nil {
				result = append(result, *item.Key)
			}
		}

		if listing.IsTruncated != nil && *listing.IsTruncated && listing.NextContinuationToken != nil {
			continuationToken = *listing.NextContinuationToken
		} else {
			break
		}
	}

	return result, nil
}

func (s3Access S3Access) ObjectExists(bucket string, path string) (bool, error) {
	_, err := s3Access.s3Api.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(path),
	})

	if err == nil {
		return true, nil
	}

	if aerr, ok := err.(awserr.Error); ok {
		if aerr.Code() == "NotFound" {
			return false, nil
		}
	}

	return false, err
}

func (s3Access S3Access) ReadObject(bucket string, path string) ([]byte, error) {
	result, err := s3Access.s3Api.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, err
	}

	defer result.Body.Close()
	return io.ReadAll(result.Body)
}

func (s3Access S3Access) WriteObject(bucket string, path string, data []byte) error {
	_, err := s3Access.s3Api.PutObject(&s3.PutObjectInput{
		Body:   bytes.NewReader(data),
		Bucket: aws.String(bucket),
		Key:    aws.String(path),
	})
	return err
}

func (s3Access S3Access) ReadJSON(bucket string, s3Path string, itemsPtr interface{}, emptyIfNotFound bool) error {
	fileData, err := s3Access.ReadObject(bucket, s3Path)

	if err != nil {
		if emptyIfNotFound && s3Access.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(fileData, itemsPtr)
}

func (s3Access S3Access) WriteJSON(bucket string, s3Path string, itemsPtr interface{}) error {
	fileData, err := json.MarshalIndent(itemsPtr, "", utils.PrettyPrintIndentForJSON)
	if err != nil {
		return err
	}

	return s3Access.WriteObject(bucket, s3Path, fileData)
}

func (s3Access S3Access) CopyObject(srcBucket string, srcPath string, dstBucket string, dstPath string) error {
	_, err := s3Access.s3Api.CopyObject(&s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(dstPath),
		CopySource: aws.String(srcBucket + "/" + srcPath),
	})
	return err
}

func (s3Access S3Access) DeleteObject(bucket string, path string) error {
	_, err := s3Access.s3Api.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(path),
	})
	return err
}

func (s3Access S3Access) IsNotFoundError(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		return aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == "NotFound"
	}
	return false
}
