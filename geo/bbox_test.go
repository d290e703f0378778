package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testLat = -7.675039
	testLon = 107.769191
)

func TestBufferedBoundingBox_ContainsCenter(t *testing.T) {
	for _, buffer := range []float64{10, 500, 50000} {
		// Tested code
		bbox, err := BufferedBoundingBox(testLat, testLon, buffer)

		// Asserts
		assert.Nil(t, err)
		assert.Len(t, bbox, 4)
		assert.True(t, bbox[0] < testLon && testLon < bbox[2], "box does not strictly contain center longitude for buffer %v", buffer)
		assert.True(t, bbox[1] < testLat && testLat < bbox[3], "box does not strictly contain center latitude for buffer %v", buffer)
	}
}

func TestBufferedBoundingBox_GrowsWithBuffer(t *testing.T) {
	small, err := BufferedBoundingBox(testLat, testLon, 500)
	assert.Nil(t, err)
	large, err := BufferedBoundingBox(testLat, testLon, 50000)
	assert.Nil(t, err)

	assert.True(t, large[2]-large[0] > small[2]-small[0], "longitude extent did not grow with buffer")
	assert.True(t, large[3]-large[1] > small[3]-small[1], "latitude extent did not grow with buffer")
}

func TestBufferedBoundingBox_KnownExtent(t *testing.T) {
	// 500 m of ground distance spans roughly 0.00452 degrees of latitude
	bbox, err := BufferedBoundingBox(testLat, testLon, 500)

	assert.Nil(t, err)
	assert.InDelta(t, 0.00452, bbox[3]-testLat, 0.0005)
	assert.InDelta(t, 0.00452, testLat-bbox[1], 0.0005)
}

func TestBufferedBoundingBox_HighLatitudeLongitudeSpread(t *testing.T) {
	// The same ground distance must cover more degrees of longitude near the
	// poles than at the equator
	equator, err := BufferedBoundingBox(0, 0, 50000)
	assert.Nil(t, err)
	arctic, err := BufferedBoundingBox(70, 0, 50000)
	assert.Nil(t, err)

	equatorSpread := equator[2] - equator[0]
	arcticSpread := arctic[2] - arctic[0]
	assert.True(t, arcticSpread > 2*equatorSpread,
		"expected longitude spread at 70N (%v) to dwarf the equatorial spread (%v)", arcticSpread, equatorSpread)

	// latitude extent stays roughly the same
	assert.InDelta(t, equator[3]-equator[1], arctic[3]-arctic[1], 0.01)
}

func TestBufferedBoundingBox_InvalidCoordinates(t *testing.T) {
	cases := [][2]float64{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		_, err := BufferedBoundingBox(c[0], c[1], 500)
		assert.NotNil(t, err, "coordinates (%v, %v) did not cause an error", c[0], c[1])
		assert.IsType(t, InvalidCoordinateError{}, err)
	}
}

func TestValidateCoordinate_AcceptsBounds(t *testing.T) {
	assert.Nil(t, ValidateCoordinate(90, 180))
	assert.Nil(t, ValidateCoordinate(-90, -180))
	assert.Nil(t, ValidateCoordinate(0, 0))
}
