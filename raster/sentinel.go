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
	"errors"

	"github.com/andreaschandra/fishpond-validator/catalog"
	"github.com/andreaschandra/fishpond-validator/model"
	"github.com/venicegeo/geojson-go/geojson"
)

// SentinelCropper crops Sentinel-2 scenes from their full-resolution visual
// asset. Values are returned as-is, with no rescaling.
type SentinelCropper struct {
	Context *catalog.Context
}

// Crop implements the Cropper interface
func (c SentinelCropper) Crop(scene model.SelectedScene, bbox geojson.BoundingBox) (*ImageArray, error) {
	href, ok := scene.Assets[model.AssetVisual]
	if !ok || href == "" {
		return nil, ImageFetchError{SceneID: scene.ID, Asset: model.AssetVisual, Err: errors.New("scene has no visual asset")}
	}

	signed, err := signAssetURL(c.Context, scene.Collection, href)
	if err != nil {
		return nil, ImageFetchError{SceneID: scene.ID, Asset: model.AssetVisual, Err: err}
	}

	array, err := fetchClippedAsset(signed, bbox)
	if err != nil {
		return nil, ImageFetchError{SceneID: scene.ID, Asset: model.AssetVisual, Err: err}
	}
	return array, nil
}
