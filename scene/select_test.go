package scene

import (
	"testing"
	"time"

	"github.com/andreaschandra/fishpond-validator/model"
	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

const (
	pointLat = -7.675039
	pointLon = 107.769191
)

var targetDate = time.Date(2022, 8, 31, 0, 0, 0, 0, time.UTC)

var containingBbox = geojson.BoundingBox{107, -8, 108.5, -7}
var elsewhereBbox = geojson.BoundingBox{120, -6, 121, -5}

func daysBefore(days int) time.Time {
	return targetDate.AddDate(0, 0, -days)
}

func TestSelectBestScene_PrefersSentinel(t *testing.T) {
	// Mock
	candidates := []model.SceneCandidate{
		{ID: "A", Platform: "Sentinel-2A", AcquiredDate: daysBefore(2), Bbox: containingBbox},
		{ID: "B", Platform: "landsat-8", AcquiredDate: daysBefore(0), Bbox: containingBbox},
		{ID: "C", Platform: "Sentinel-2B", AcquiredDate: daysBefore(5), Bbox: elsewhereBbox},
	}

	// Tested code
	selected := SelectBestScene(candidates, targetDate, pointLat, pointLon)

	// Asserts
	assert.NotNil(t, selected)
	assert.Equal(t, "A", selected.ID, "Sentinel preference or containment filter not honored")
}

func TestSelectBestScene_FallsBackToLandsat(t *testing.T) {
	candidates := []model.SceneCandidate{
		{ID: "far", Platform: "landsat-8", AcquiredDate: daysBefore(20), Bbox: containingBbox},
		{ID: "near", Platform: "landsat-9", AcquiredDate: daysBefore(3), Bbox: containingBbox},
	}

	selected := SelectBestScene(candidates, targetDate, pointLat, pointLon)

	assert.NotNil(t, selected)
	assert.Equal(t, "near", selected.ID)
	assert.Equal(t, "landsat-9", selected.Platform)
}

func TestSelectBestScene_EmptyCandidates(t *testing.T) {
	selected := SelectBestScene(nil, targetDate, pointLat, pointLon)
	assert.Nil(t, selected)
}

func TestSelectBestScene_NoneContainPoint(t *testing.T) {
	candidates := []model.SceneCandidate{
		{ID: "C", Platform: "Sentinel-2B", AcquiredDate: daysBefore(1), Bbox: elsewhereBbox},
	}

	selected := SelectBestScene(candidates, targetDate, pointLat, pointLon)

	assert.Nil(t, selected, "candidate not containing the point was selected")
}

func TestSelectBestScene_EdgePointExcluded(t *testing.T) {
	// point exactly on the candidate's northern edge
	onEdge := geojson.BoundingBox{107, pointLat, 108.5, -7}
	candidates := []model.SceneCandidate{
		{ID: "edge", Platform: "Sentinel-2A", AcquiredDate: daysBefore(1), Bbox: onEdge},
	}

	selected := SelectBestScene(candidates, targetDate, pointLat, pointLon)

	assert.Nil(t, selected)
}

func TestSelectBestScene_TieKeepsInputOrder(t *testing.T) {
	candidates := []model.SceneCandidate{
		{ID: "first", Platform: "Sentinel-2A", AcquiredDate: daysBefore(4), Bbox: containingBbox},
		{ID: "second", Platform: "Sentinel-2B", AcquiredDate: daysBefore(4), Bbox: containingBbox},
	}

	selected := SelectBestScene(candidates, targetDate, pointLat, pointLon)

	assert.NotNil(t, selected)
	assert.Equal(t, "first", selected.ID)
}

func TestSelectBestScene_AbsoluteTimeDistance(t *testing.T) {
	candidates := []model.SceneCandidate{
		{ID: "after", Platform: "Sentinel-2A", AcquiredDate: targetDate.AddDate(0, 0, 1), Bbox: containingBbox},
		{ID: "before", Platform: "Sentinel-2B", AcquiredDate: daysBefore(3), Bbox: containingBbox},
	}

	selected := SelectBestScene(candidates, targetDate, pointLat, pointLon)

	assert.NotNil(t, selected)
	assert.Equal(t, "after", selected.ID)
}
