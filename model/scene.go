package model

import (
	"strings"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// Well-known asset keys on catalog items
const (
	AssetVisual = "visual"
	AssetRed    = "red"
	AssetGreen  = "green"
	AssetBlue   = "blue"
)

// SceneCandidate is one catalog item under consideration during scene
// selection. Assets maps asset keys to their unsigned hrefs.
type SceneCandidate struct {
	ID           string
	Collection   string
	Platform     string
	AcquiredDate time.Time
	Bbox         geojson.BoundingBox
	Assets       map[string]string
}

// Contains reports whether the candidate's bounding box strictly contains the
// point. A point exactly on an edge does not count as contained; downstream
// consumers depend on identical selections, so the strict bounds stay.
func (c SceneCandidate) Contains(latitude, longitude float64) bool {
	if len(c.Bbox) < 4 {
		return false
	}
	minLon, minLat, maxLon, maxLat := c.Bbox[0], c.Bbox[1], c.Bbox[2], c.Bbox[3]
	return minLat < latitude && latitude < maxLat && minLon < longitude && longitude < maxLon
}

// IsSentinel reports whether the candidate came from a Sentinel platform
func (c SceneCandidate) IsSentinel() bool {
	return strings.Contains(strings.ToLower(c.Platform), "sentinel")
}

// SelectedScene is the winning candidate of a scene selection
type SelectedScene struct {
	SceneCandidate
}
