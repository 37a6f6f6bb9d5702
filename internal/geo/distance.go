// Package geo provides the great-circle distance calculation shared by the
// relevance gate and the feed aggregator. Both must use the same constants so
// a place is never filtered with one distance and sorted with another.
package geo

import (
	"math"

	"github.com/spotlyvf/scout/internal/models"
)

// earthRadiusKm is the mean Earth radius. Haversine over a sphere is an
// approximation, not geodesic-exact, which is fine at feed scale.
const earthRadiusKm = 6371

// DistanceKm returns the haversine distance between two coordinates in
// kilometers. It is a pure, total function: any pair of coordinates yields a
// non-negative distance.
func DistanceKm(a, b models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
