package raster

import (
	"github.com/disintegration/imaging"
)

// SaveJPEG interleaves the array into channel-last pixel order and writes it
// to path as a JPEG
func SaveJPEG(array *ImageArray, path string) error {
	return imaging.Save(array.ToNRGBA(), path, imaging.JPEGQuality(95))
}
