// Copyright 2016, RadiantBlue Technologies, Inc.
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
	"os"

	"github.com/joho/godotenv"
)

// Environment variables
const (
	STAC_API_URL    = "STAC_API_URL"
	SAS_API_URL     = "SAS_API_URL"
	IMAGE_ARRAY_DIR = "IMAGE_ARRAY_DIR"
)

const defaultSTACAPIURL = "https://planetarycomputer.microsoft.com/api/stac/v1"
const defaultSASAPIURL = "https://planetarycomputer.microsoft.com/api/sas/v1"
const defaultImageArrayDir = "data/image_arrays"

// LoadEnvFile loads a .env file into the environment when one is present;
// a missing file is not an error
func LoadEnvFile() {
	if err := godotenv.Load(); err == nil {
		LogInfo(&BasicLogContext{}, "Loaded environment from .env file")
	}
}

// GetSTACAPIURL returns the catalog search endpoint from the STAC_API_URL
// environment variable, or the Planetary Computer default
func GetSTACAPIURL() string {
	stacURL, ok := os.LookupEnv(STAC_API_URL)
	if !ok {
		LogInfo(&BasicLogContext{}, "Did not get STAC API URL from the environment. Using default catalog: "+defaultSTACAPIURL)
		stacURL = defaultSTACAPIURL
	}
	return stacURL
}

// GetSASAPIURL returns the asset signing endpoint from the SAS_API_URL
// environment variable, or the Planetary Computer default
func GetSASAPIURL() string {
	sasURL, ok := os.LookupEnv(SAS_API_URL)
	if !ok {
		LogInfo(&BasicLogContext{}, "Did not get SAS API URL from the environment. Using default signing endpoint: "+defaultSASAPIURL)
		sasURL = defaultSASAPIURL
	}
	return sasURL
}

// GetImageArrayDir returns the output directory for cropped imagery from the
// IMAGE_ARRAY_DIR environment variable, or the conventional default
func GetImageArrayDir() string {
	dir, ok := os.LookupEnv(IMAGE_ARRAY_DIR)
	if !ok {
		dir = defaultImageArrayDir
	}
	return dir
}
