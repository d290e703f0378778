package model

import (
	"fmt"
	"time"
)

// STAC catalogs are not uniform about datetime formatting: some emit full
// RFC3339 with offsets, some drop the offset or sub-second precision. Thus,
// we need lenient "multi-format" parsing functionality, implemented here.

var sceneTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseSceneTime is a drop-in replacement for time.Parse, but matching against
// multiple possible catalog datetime formats
func ParseSceneTime(sceneTime string) (time.Time, error) {
	for _, layout := range sceneTimeLayouts {
		if output, err := time.Parse(layout, sceneTime); err == nil {
			return output, nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", sceneTime)
}
