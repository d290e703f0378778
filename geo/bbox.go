// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package geo

import (
	"fmt"
	"math"

	"github.com/venicegeo/geojson-go/geojson"
)

// WGS84 ellipsoid parameters
const (
	semiMajorAxis = 6378137.0
	flattening    = 1.0 / 298.257223563
	semiMinorAxis = semiMajorAxis * (1.0 - flattening)
)

// Cardinal bearings, in degrees
const (
	bearingNorth = 0.0
	bearingEast  = 90.0
	bearingSouth = 180.0
	bearingWest  = 270.0
)

// InvalidCoordinateError reports a latitude/longitude outside the valid range
type InvalidCoordinateError struct {
	Latitude  float64
	Longitude float64
}

// Error implements the error interface
func (e InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: latitude=%v, longitude=%v", e.Latitude, e.Longitude)
}

// ValidateCoordinate checks that a point is a usable EPSG:4326 coordinate
func ValidateCoordinate(latitude, longitude float64) error {
	if math.IsNaN(latitude) || math.IsNaN(longitude) ||
		latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return InvalidCoordinateError{Latitude: latitude, Longitude: longitude}
	}
	return nil
}

// BufferedBoundingBox returns the [minLon, minLat, maxLon, maxLat] box whose
// edges pass through the four cardinal geodesic destination points at
// bufferMeters ground distance from the center. The geodesic is solved on the
// WGS84 ellipsoid so boxes stay accurate at high latitudes, where a degree of
// longitude covers far less ground than at the equator.
func BufferedBoundingBox(latitude, longitude, bufferMeters float64) (geojson.BoundingBox, error) {
	if err := ValidateCoordinate(latitude, longitude); err != nil {
		return nil, err
	}

	maxLat, _ := destination(latitude, longitude, bearingNorth, bufferMeters)
	minLat, _ := destination(latitude, longitude, bearingSouth, bufferMeters)
	_, maxLon := destination(latitude, longitude, bearingEast, bufferMeters)
	_, minLon := destination(latitude, longitude, bearingWest, bufferMeters)

	return geojson.BoundingBox{minLon, minLat, maxLon, maxLat}, nil
}

// destination solves the direct geodesic problem (Vincenty): the point
// reached by travelling distanceMeters from (latitude, longitude) along the
// initial bearing, on the WGS84 ellipsoid.
func destination(latitude, longitude, bearing, distanceMeters float64) (destLat, destLon float64) {
	phi1 := latitude * math.Pi / 180
	lambda1 := longitude * math.Pi / 180
	alpha1 := bearing * math.Pi / 180

	sinAlpha1 := math.Sin(alpha1)
	cosAlpha1 := math.Cos(alpha1)

	tanU1 := (1 - flattening) * math.Tan(phi1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	sigma1 := math.Atan2(tanU1, cosAlpha1)
	sinAlpha := cosU1 * sinAlpha1
	cosSqAlpha := 1 - sinAlpha*sinAlpha
	uSq := cosSqAlpha * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) / (semiMinorAxis * semiMinorAxis)
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	sigma := distanceMeters / (semiMinorAxis * bigA)
	var sinSigma, cosSigma, cos2SigmaM float64
	for i := 0; i < 100; i++ {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma = math.Sin(sigma)
		cosSigma = math.Cos(sigma)
		deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*
			(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
				bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
		sigmaPrime := sigma
		sigma = distanceMeters/(semiMinorAxis*bigA) + deltaSigma
		if math.Abs(sigma-sigmaPrime) < 1e-12 {
			break
		}
	}

	tmp := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	phi2 := math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1,
		(1-flattening)*math.Sqrt(sinAlpha*sinAlpha+tmp*tmp))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	c := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
	deltaLambda := lambda - (1-c)*flattening*sinAlpha*
		(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
	lambda2 := lambda1 + deltaLambda

	destLat = phi2 * 180 / math.Pi
	destLon = lambda2 * 180 / math.Pi
	// keep longitudes in [-180, 180)
	destLon = math.Mod(destLon+540, 360) - 180
	return
}
