package raster

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/venicegeo/geojson-go/geojson"
)

var registerDriversOnce sync.Once

// clipRemoteRaster opens a (signed) remote raster through GDAL's HTTP
// virtual filesystem and warps it to the EPSG:4326 bounding box, returning
// the clipped pixels band-major.
func clipRemoteRaster(signedURL string, bbox geojson.BoundingBox) (*ImageArray, error) {
	registerDriversOnce.Do(func() { godal.RegisterAll() })

	if len(bbox) < 4 {
		return nil, fmt.Errorf("bounding box must have four elements, got %d", len(bbox))
	}

	ds, err := godal.Open("/vsicurl/" + signedURL)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	clipped, err := ds.Warp("", []string{
		"-of", "MEM",
		"-t_srs", "EPSG:4326",
		"-te",
		formatCoord(bbox[0]), formatCoord(bbox[1]), formatCoord(bbox[2]), formatCoord(bbox[3]),
	})
	if err != nil {
		return nil, err
	}
	defer clipped.Close()

	structure := clipped.Structure()
	if structure.SizeX == 0 || structure.SizeY == 0 || structure.NBands == 0 {
		return nil, fmt.Errorf("clip produced an empty raster (%dx%dx%d)", structure.NBands, structure.SizeY, structure.SizeX)
	}

	array := NewImageArray(structure.NBands, structure.SizeY, structure.SizeX)
	for i, band := range clipped.Bands() {
		buffer := make([]float64, structure.SizeX*structure.SizeY)
		if err := band.Read(0, 0, buffer, structure.SizeX, structure.SizeY); err != nil {
			return nil, err
		}
		copy(array.Pixels[i*structure.SizeX*structure.SizeY:], buffer)
	}

	return array, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fetchClippedAsset is substituted in tests to avoid real GDAL I/O
var fetchClippedAsset = clipRemoteRaster
