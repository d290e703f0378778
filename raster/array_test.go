package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMinMax_RescalesIntoRange(t *testing.T) {
	array := NewImageArray(1, 2, 2)
	copy(array.Pixels, []float64{1000, 3000, 2000, 9000})

	array.NormalizeMinMax(0, 255)

	for _, v := range array.Pixels {
		assert.True(t, v >= 0 && v <= 255, "value %v escaped the target range", v)
	}
	assert.Equal(t, 0.0, array.Pixels[0])
	assert.Equal(t, 255.0, array.Pixels[3])
}

func TestNormalizeMinMax_ConstantArray(t *testing.T) {
	array := NewImageArray(1, 2, 2)
	copy(array.Pixels, []float64{42, 42, 42, 42})

	array.NormalizeMinMax(0, 255)

	for _, v := range array.Pixels {
		assert.Equal(t, 0.0, v)
	}
}

func TestImageArray_AtSet(t *testing.T) {
	array := NewImageArray(3, 2, 4)
	array.Set(2, 1, 3, 17)
	assert.Equal(t, 17.0, array.At(2, 1, 3))
	assert.Equal(t, 0.0, array.At(0, 1, 3))
}

func TestToNRGBA_InterleavesBands(t *testing.T) {
	// band-major in, channel-last out
	array := NewImageArray(3, 1, 2)
	array.Set(0, 0, 0, 10) // R of pixel (0,0)
	array.Set(1, 0, 0, 20) // G
	array.Set(2, 0, 0, 30) // B
	array.Set(0, 0, 1, 40)

	img := array.ToNRGBA()

	pixel := img.NRGBAAt(0, 0)
	assert.Equal(t, uint8(10), pixel.R)
	assert.Equal(t, uint8(20), pixel.G)
	assert.Equal(t, uint8(30), pixel.B)
	assert.Equal(t, uint8(40), img.NRGBAAt(1, 0).R)
}

func TestToNRGBA_ClampsDisplayRange(t *testing.T) {
	array := NewImageArray(3, 1, 1)
	array.Set(0, 0, 0, -50)
	array.Set(1, 0, 0, 300)
	array.Set(2, 0, 0, 128)

	pixel := array.ToNRGBA().NRGBAAt(0, 0)

	assert.Equal(t, uint8(0), pixel.R)
	assert.Equal(t, uint8(255), pixel.G)
	assert.Equal(t, uint8(128), pixel.B)
}

func TestToNRGBA_SingleBandGrayscale(t *testing.T) {
	array := NewImageArray(1, 1, 1)
	array.Set(0, 0, 0, 77)

	pixel := array.ToNRGBA().NRGBAAt(0, 0)

	assert.Equal(t, uint8(77), pixel.R)
	assert.Equal(t, uint8(77), pixel.G)
	assert.Equal(t, uint8(77), pixel.B)
}

func TestSaveJPEG_WritesFile(t *testing.T) {
	array := NewImageArray(3, 8, 8)
	for i := range array.Pixels {
		array.Pixels[i] = float64(i % 256)
	}
	path := filepath.Join(t.TempDir(), "out.jpg")

	err := SaveJPEG(array, path)

	assert.Nil(t, err)
	info, statErr := os.Stat(path)
	assert.Nil(t, statErr)
	assert.True(t, info.Size() > 0, "output JPEG is empty")
}
