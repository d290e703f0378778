package raster

import (
	"image"
	"image/color"
)

// ImageArray is a cropped raster held as a band-major pixel cube
// (band, row, column), mirroring how the bands come off the wire.
type ImageArray struct {
	Bands  int
	Height int
	Width  int
	Pixels []float64
}

// NewImageArray allocates a zeroed array with the given shape
func NewImageArray(bands, height, width int) *ImageArray {
	return &ImageArray{
		Bands:  bands,
		Height: height,
		Width:  width,
		Pixels: make([]float64, bands*height*width),
	}
}

// At returns the value at (band, row, column)
func (a *ImageArray) At(band, row, col int) float64 {
	return a.Pixels[band*a.Height*a.Width+row*a.Width+col]
}

// Set stores a value at (band, row, column)
func (a *ImageArray) Set(band, row, col int, value float64) {
	a.Pixels[band*a.Height*a.Width+row*a.Width+col] = value
}

// NormalizeMinMax linearly rescales all pixel values into [lo, hi] in place,
// using the minimum and maximum across the whole array. A constant array maps
// to lo everywhere.
func (a *ImageArray) NormalizeMinMax(lo, hi float64) {
	if len(a.Pixels) == 0 {
		return
	}
	min, max := a.Pixels[0], a.Pixels[0]
	for _, v := range a.Pixels {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		for i := range a.Pixels {
			a.Pixels[i] = lo
		}
		return
	}
	scale := (hi - lo) / (max - min)
	for i, v := range a.Pixels {
		a.Pixels[i] = lo + (v-min)*scale
	}
}

// ToNRGBA interleaves the band-major cube into a (row, column, channel)
// image, clamping values to the displayable 0..255 range. Single-band arrays
// render as grayscale; arrays with three or more bands use the first three as
// R, G, B.
func (a *ImageArray) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, a.Width, a.Height))
	for row := 0; row < a.Height; row++ {
		for col := 0; col < a.Width; col++ {
			var r, g, b uint8
			if a.Bands >= 3 {
				r = clampByte(a.At(0, row, col))
				g = clampByte(a.At(1, row, col))
				b = clampByte(a.At(2, row, col))
			} else {
				r = clampByte(a.At(0, row, col))
				g, b = r, r
			}
			img.SetNRGBA(col, row, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
