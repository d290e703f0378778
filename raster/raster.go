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

package raster

import (
	"fmt"
	"strings"

	"github.com/andreaschandra/fishpond-validator/catalog"
	"github.com/andreaschandra/fishpond-validator/model"
	"github.com/venicegeo/geojson-go/geojson"
)

// Cropper fetches and crops pixel data for a selected scene within a
// bounding box
type Cropper interface {
	Crop(scene model.SelectedScene, bbox geojson.BoundingBox) (*ImageArray, error)
}

// ForPlatform returns the cropper variant matching a scene's platform name
func ForPlatform(platform string, context *catalog.Context) Cropper {
	if strings.Contains(strings.ToLower(platform), "sentinel") {
		return SentinelCropper{Context: context}
	}
	return LandsatCropper{Context: context}
}

// ImageFetchError reports a failure to fetch or crop a scene's pixel data
type ImageFetchError struct {
	SceneID string
	Asset   string
	Err     error
}

// Error implements the error interface
func (e ImageFetchError) Error() string {
	return fmt.Sprintf("failed to fetch imagery for scene %s (asset %s): %v", e.SceneID, e.Asset, e.Err)
}

// Unwrap exposes the underlying cause
func (e ImageFetchError) Unwrap() error {
	return e.Err
}

// signAssetURL is substituted in tests
var signAssetURL = catalog.SignAssetURL
