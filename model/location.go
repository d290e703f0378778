package model

import (
	"fmt"
	"strconv"
	"time"
)

// SampleDateLayout is the calendar-date format used for sample dates in run
// configuration files
const SampleDateLayout = "2006-01-02"

// Location is one configured point of interest to fetch imagery for
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Region    string  `json:"region"`
	Date      string  `json:"date"`
	UID       int     `json:"uid"`
}

// SampleDate parses the location's sample date
func (l Location) SampleDate() (time.Time, error) {
	date, err := time.Parse(SampleDateLayout, l.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid sample date for location %d: %v", l.UID, err)
	}
	return date, nil
}

// OutputFileName returns the deterministic output file name for this location
func (l Location) OutputFileName() string {
	return fmt.Sprintf("%s_%s_%s_%d.jpg",
		l.Region,
		strconv.FormatFloat(l.Latitude, 'f', -1, 64),
		strconv.FormatFloat(l.Longitude, 'f', -1, 64),
		l.UID)
}

// String identifies the location in logs and statuses
func (l Location) String() string {
	return fmt.Sprintf("%s#%d (%v, %v)", l.Region, l.UID, l.Latitude, l.Longitude)
}
