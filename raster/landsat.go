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
	"fmt"

	"github.com/andreaschandra/fishpond-validator/catalog"
	"github.com/andreaschandra/fishpond-validator/model"
	"github.com/venicegeo/geojson-go/geojson"
)

var landsatRGBAssets = []string{model.AssetRed, model.AssetGreen, model.AssetBlue}

// LandsatCropper crops Landsat scenes by stacking the red, green and blue
// band assets, then min-max rescaling the stacked values into 0..255.
type LandsatCropper struct {
	Context *catalog.Context
}

// Crop implements the Cropper interface
func (c LandsatCropper) Crop(scene model.SelectedScene, bbox geojson.BoundingBox) (*ImageArray, error) {
	var stacked *ImageArray

	for i, assetKey := range landsatRGBAssets {
		href, ok := scene.Assets[assetKey]
		if !ok || href == "" {
			return nil, ImageFetchError{SceneID: scene.ID, Asset: assetKey, Err: errors.New("scene is missing band asset")}
		}

		signed, err := signAssetURL(c.Context, scene.Collection, href)
		if err != nil {
			return nil, ImageFetchError{SceneID: scene.ID, Asset: assetKey, Err: err}
		}

		band, err := fetchClippedAsset(signed, bbox)
		if err != nil {
			return nil, ImageFetchError{SceneID: scene.ID, Asset: assetKey, Err: err}
		}
		if band.Bands != 1 {
			return nil, ImageFetchError{SceneID: scene.ID, Asset: assetKey, Err: fmt.Errorf("expected a single-band asset, got %d bands", band.Bands)}
		}

		if stacked == nil {
			stacked = NewImageArray(len(landsatRGBAssets), band.Height, band.Width)
		} else if band.Height != stacked.Height || band.Width != stacked.Width {
			return nil, ImageFetchError{SceneID: scene.ID, Asset: assetKey,
				Err: fmt.Errorf("band shape %dx%d does not match stack shape %dx%d", band.Height, band.Width, stacked.Height, stacked.Width)}
		}
		copy(stacked.Pixels[i*band.Height*band.Width:], band.Pixels)
	}

	stacked.NormalizeMinMax(0, 255)
	return stacked, nil
}
