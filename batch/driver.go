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

package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andreaschandra/fishpond-validator/catalog"
	"github.com/andreaschandra/fishpond-validator/geo"
	"github.com/andreaschandra/fishpond-validator/model"
	"github.com/andreaschandra/fishpond-validator/raster"
	"github.com/andreaschandra/fishpond-validator/scene"
	"github.com/andreaschandra/fishpond-validator/util"
)

// NoCandidateSceneError reports that a location had no qualifying scene; it
// is a terminal per-location outcome, not a run failure
type NoCandidateSceneError struct {
	Location model.Location
}

// Error implements the error interface
func (e NoCandidateSceneError) Error() string {
	return fmt.Sprintf("no candidate scene for location %v", e.Location)
}

// Status is the per-location outcome of a run
type Status struct {
	Location   model.Location
	SceneID    string
	Platform   string
	OutputPath string
	Skipped    bool
	Err        error
}

// Driver runs the fetch-select-crop-save pipeline over all configured
// locations, sequentially
type Driver struct {
	Config  RunConfig
	Catalog *catalog.Context
}

// Substituted in tests
var cropperForPlatform = raster.ForPlatform
var getScenes = catalog.GetScenes

// Run processes every configured location and returns one Status per
// location. Failures are isolated per location: only the initial output
// directory creation can fail the run as a whole.
func (d *Driver) Run(logCtx util.LogContext) ([]Status, error) {
	if err := os.MkdirAll(d.Config.OutputDir, 0755); err != nil {
		return nil, util.LogSimpleErr(logCtx, fmt.Sprintf("Failed to create output directory %s.", d.Config.OutputDir), err)
	}

	statuses := make([]Status, len(d.Config.Locations))
	for i, location := range d.Config.Locations {
		statuses[i] = d.processLocation(logCtx, location)
		if statuses[i].Err != nil {
			util.LogAlert(logCtx, fmt.Sprintf("Location %v failed: %v", location, statuses[i].Err))
		}
	}
	return statuses, nil
}

func (d *Driver) processLocation(logCtx util.LogContext, location model.Location) Status {
	status := Status{Location: location}

	sampleDate, err := location.SampleDate()
	if err != nil {
		status.Err = err
		return status
	}
	if err = geo.ValidateCoordinate(location.Latitude, location.Longitude); err != nil {
		status.Err = err
		return status
	}

	searchBbox, err := geo.BufferedBoundingBox(location.Latitude, location.Longitude, d.Config.SearchBufferMeters)
	if err != nil {
		status.Err = err
		return status
	}

	candidates, err := getScenes(catalog.SearchOptions{
		Collections: d.Config.Collections,
		Bbox:        searchBbox,
		DateRange:   geo.SearchDateRange(sampleDate, d.Config.LookbackDays),
	}, d.Catalog)
	if err != nil {
		status.Err = err
		return status
	}

	// "no candidates" is terminal for this location; nothing below may run
	// against a missing selection
	selected := scene.SelectBestScene(candidates, sampleDate, location.Latitude, location.Longitude)
	if selected == nil {
		status.Skipped = true
		status.Err = NoCandidateSceneError{Location: location}
		return status
	}
	status.SceneID = selected.ID
	status.Platform = selected.Platform

	cropBbox, err := geo.BufferedBoundingBox(location.Latitude, location.Longitude, d.Config.CropBufferMeters)
	if err != nil {
		status.Err = err
		return status
	}

	cropper := cropperForPlatform(selected.Platform, d.Catalog)
	array, err := cropper.Crop(*selected, cropBbox)
	if err != nil {
		status.Err = err
		return status
	}

	outputPath := filepath.Join(d.Config.OutputDir, location.OutputFileName())
	if err = raster.SaveJPEG(array, outputPath); err != nil {
		status.Err = fmt.Errorf("failed to write %s: %v", outputPath, err)
		return status
	}

	status.OutputPath = outputPath
	util.LogInfo(logCtx, fmt.Sprintf("Saved image for %v from %s scene %s to %s", location, selected.Platform, selected.ID, outputPath))
	return status
}
