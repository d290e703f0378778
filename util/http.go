// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

var sharedClient = &http.Client{}

// HTTPClient returns the shared HTTP client for all outbound requests
func HTTPClient() *http.Client {
	return sharedClient
}

// ReqByObjJSON performs a request whose body and response are both known JSON
// objects, marshaling input and unmarshaling output in one step
func ReqByObjJSON(method, url, auth string, input, output interface{}) (*http.Response, error) {
	var (
		requestBody []byte
		err         error
	)
	if input != nil {
		if requestBody, err = json.Marshal(input); err != nil {
			return nil, err
		}
	}

	request, err := http.NewRequest(method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	if auth != "" {
		request.Header.Set("Authorization", auth)
	}

	response, err := HTTPClient().Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBody, _ := ioutil.ReadAll(response.Body)
	if response.StatusCode >= 400 {
		return response, HTTPErr{Status: response.StatusCode, Message: fmt.Sprintf("%s %s failed: %s", method, url, response.Status)}
	}
	if output != nil {
		if err = json.Unmarshal(responseBody, output); err != nil {
			return response, Error{
				LogMsg:     "Failed to unmarshal JSON response: " + err.Error(),
				SimpleMsg:  "Remote service returned an unexpected response.",
				Response:   string(responseBody),
				URL:        url,
				HTTPStatus: response.StatusCode,
			}
		}
	}
	return response, nil
}
