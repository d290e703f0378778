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

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/andreaschandra/fishpond-validator/model"
	"github.com/andreaschandra/fishpond-validator/util"
)

// GetScenes returns the scene candidates matching the given search options
func GetScenes(options SearchOptions, context *Context) ([]model.SceneCandidate, error) {
	var (
		err          error
		response     *http.Response
		requestBody  []byte
		responseBody []byte
	)

	req := searchRequest{
		Collections: options.Collections,
		Bbox:        options.Bbox,
		Datetime:    options.DateRange,
		Limit:       options.Limit,
	}
	if requestBody, err = json.Marshal(req); err != nil {
		err = util.LogSimpleErr(context, fmt.Sprintf("Failed to marshal request object %#v.", req), err)
		return nil, err
	}
	if response, err = catalogRequest(catalogRequestInput{method: "POST", inputURL: "search", body: requestBody, contentType: "application/json"}, context); err != nil {
		err = util.LogSimpleErr(context, fmt.Sprintf("Failed to complete catalog search request %#v.", string(requestBody)), err)
		return nil, err
	}
	switch {
	case (response.StatusCode >= 400) && (response.StatusCode < 500):
		message := fmt.Sprintf("Failed to discover scenes from the catalog: %v. ", response.Status)
		err := util.HTTPErr{Status: response.StatusCode, Message: message}
		util.LogAlert(context, message)
		return nil, err
	case response.StatusCode >= 500:
		err = util.LogSimpleErr(context, "Failed to discover scenes from the catalog.", errors.New(response.Status))
		return nil, err
	default:
		//no op
	}

	defer response.Body.Close()
	responseBody, _ = ioutil.ReadAll(response.Body)

	return parseSearchResults(context, responseBody)
}

// SignAssetURL authorizes an asset href for direct fetching by appending a
// SAS token granted for the asset's collection. Tokens are cached on the
// Context per collection.
func SignAssetURL(context *Context, collection, href string) (string, error) {
	token, err := collectionToken(context, collection)
	if err != nil {
		return "", err
	}
	separator := "?"
	if strings.Contains(href, "?") {
		separator = "&"
	}
	return href + separator + token, nil
}

func collectionToken(context *Context, collection string) (string, error) {
	if collection == "" {
		return "", errors.New("cannot request a signing token without a collection")
	}
	if token, ok := context.sasTokens[collection]; ok {
		return token, nil
	}

	tokenURL := strings.TrimSuffix(context.BaseSignURL, "/") + "/token/" + collection
	util.LogAudit(context, util.LogAuditInput{Actor: "catalog/collectionToken", Action: "GET", Actee: tokenURL, Message: "Requesting SAS token", Severity: util.INFO})

	var grant sasTokenResponse
	if _, err := util.ReqByObjJSON("GET", tokenURL, "", nil, &grant); err != nil {
		return "", util.LogSimpleErr(context, fmt.Sprintf("Failed to obtain signing token for collection %v.", collection), err)
	}
	if grant.Token == "" {
		return "", util.LogSimpleErr(context, fmt.Sprintf("Signing endpoint returned an empty token for collection %v.", collection), errors.New("empty token"))
	}

	if context.sasTokens == nil {
		context.sasTokens = map[string]string{}
	}
	context.sasTokens[collection] = grant.Token
	return grant.Token, nil
}

// catalogRequest performs the request
func catalogRequest(input catalogRequestInput, context *Context) (*http.Response, error) {
	var (
		request   *http.Request
		parsedURL *url.URL
		inputURL  string
		err       error
	)
	inputURL = input.inputURL
	if !strings.Contains(inputURL, context.BaseCatalogURL) {
		baseURL, _ := url.Parse(strings.TrimSuffix(context.BaseCatalogURL, "/") + "/")
		parsedRelativeURL, _ := url.Parse(input.inputURL)
		resolvedURL := baseURL.ResolveReference(parsedRelativeURL)

		if parsedURL, err = url.Parse(resolvedURL.String()); err != nil {
			err = util.LogSimpleErr(context, fmt.Sprintf("Failed to parse %v into a URL.", resolvedURL.String()), err)
			return nil, err
		}
		inputURL = parsedURL.String()
	}
	if request, err = http.NewRequest(input.method, inputURL, bytes.NewBuffer(input.body)); err != nil {
		err = util.LogSimpleErr(context, fmt.Sprintf("Failed to make a new HTTP request for %v.", inputURL), err)
		return nil, err
	}
	if input.contentType != "" {
		request.Header.Set("Content-Type", input.contentType)
	}

	util.LogAudit(context, util.LogAuditInput{Actor: "catalog/doRequest", Action: input.method, Actee: inputURL, Message: "Requesting data from the imagery catalog", Severity: util.INFO})
	util.LogAudit(context, util.LogAuditInput{Actor: inputURL, Action: input.method + " response", Actee: "catalog/doRequest", Message: "Receiving data from the imagery catalog", Severity: util.INFO})
	return util.HTTPClient().Do(request)
}
