package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

func TestLocation_OutputFileName(t *testing.T) {
	location := Location{Latitude: -7.675039, Longitude: 107.769191, Region: "jawa", Date: "2022-08-31", UID: 0}
	assert.Equal(t, "jawa_-7.675039_107.769191_0.jpg", location.OutputFileName())
}

func TestLocation_SampleDate(t *testing.T) {
	location := Location{Date: "2022-08-31"}
	date, err := location.SampleDate()
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2022, 8, 31, 0, 0, 0, 0, time.UTC), date)

	location.Date = "31/08/2022"
	_, err = location.SampleDate()
	assert.NotNil(t, err, "Non-ISO sample date did not cause an error")
}

func TestSceneCandidate_Contains(t *testing.T) {
	candidate := SceneCandidate{Bbox: geojson.BoundingBox{100, -10, 110, -5}}

	assert.True(t, candidate.Contains(-7.5, 105))
	assert.False(t, candidate.Contains(-12, 105), "point south of the box counted as contained")
	assert.False(t, candidate.Contains(-7.5, 115), "point east of the box counted as contained")
}

func TestSceneCandidate_Contains_EdgeIsExcluded(t *testing.T) {
	candidate := SceneCandidate{Bbox: geojson.BoundingBox{100, -10, 110, -5}}

	// strict bounds: a point exactly on an edge or corner never matches
	assert.False(t, candidate.Contains(-10, 105))
	assert.False(t, candidate.Contains(-5, 105))
	assert.False(t, candidate.Contains(-7.5, 100))
	assert.False(t, candidate.Contains(-7.5, 110))
	assert.False(t, candidate.Contains(-10, 100))
}

func TestSceneCandidate_Contains_DegenerateBbox(t *testing.T) {
	candidate := SceneCandidate{Bbox: geojson.BoundingBox{}}
	assert.False(t, candidate.Contains(0, 0))
}

func TestSceneCandidate_IsSentinel(t *testing.T) {
	assert.True(t, SceneCandidate{Platform: "Sentinel-2A"}.IsSentinel())
	assert.True(t, SceneCandidate{Platform: "SENTINEL-2B"}.IsSentinel())
	assert.False(t, SceneCandidate{Platform: "landsat-8"}.IsSentinel())
}

func TestParseSceneTime(t *testing.T) {
	inputs := []string{
		"2022-08-15T03:02:21.024000Z",
		"2022-08-15T03:02:21+00:00",
		"2022-08-15T03:02:21",
		"2022-08-15",
	}
	for _, input := range inputs {
		parsed, err := ParseSceneTime(input)
		assert.Nil(t, err, "failed to parse %s", input)
		assert.Equal(t, 2022, parsed.Year())
		assert.Equal(t, time.August, parsed.Month())
		assert.Equal(t, 15, parsed.Day())
	}

	_, err := ParseSceneTime("15 Aug 2022")
	assert.NotNil(t, err, "Unexpected time format did not cause an error")
}
