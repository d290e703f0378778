package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/andreaschandra/fishpond-validator/model"
	"github.com/andreaschandra/fishpond-validator/util"
)

// Default query parameters, matching the original survey campaign
const (
	DefaultSearchBufferMeters = 50000
	DefaultCropBufferMeters   = 500
	DefaultLookbackDays       = 30
)

// DefaultCollections are the imagery sources searched when the run
// configuration does not name any
var DefaultCollections = []string{"sentinel-2-l2a", "landsat-c2-l2"}

// RunConfig is the external configuration for one batch run
type RunConfig struct {
	Locations          []model.Location `json:"locations"`
	SearchBufferMeters float64          `json:"search_buffer_meters"`
	CropBufferMeters   float64          `json:"crop_buffer_meters"`
	LookbackDays       int              `json:"lookback_days"`
	Collections        []string         `json:"collections"`
	OutputDir          string           `json:"output_dir"`
}

// LoadRunConfig reads and validates a run configuration file
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run configuration %s: %v", path, err)
	}

	var config RunConfig
	if err = json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse run configuration %s: %v", path, err)
	}
	config.applyDefaults()

	if len(config.Locations) == 0 {
		return nil, errors.New("run configuration contains no locations")
	}
	for _, location := range config.Locations {
		if _, err = location.SampleDate(); err != nil {
			return nil, err
		}
	}

	return &config, nil
}

func (c *RunConfig) applyDefaults() {
	if c.SearchBufferMeters == 0 {
		c.SearchBufferMeters = DefaultSearchBufferMeters
	}
	if c.CropBufferMeters == 0 {
		c.CropBufferMeters = DefaultCropBufferMeters
	}
	if c.LookbackDays == 0 {
		c.LookbackDays = DefaultLookbackDays
	}
	if len(c.Collections) == 0 {
		c.Collections = append([]string{}, DefaultCollections...)
	}
	if c.OutputDir == "" {
		c.OutputDir = util.GetImageArrayDir()
	}
}
