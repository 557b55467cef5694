// Package coverage is the geo-coverage engine: great-circle distance,
// engineer/report matching and the authorization guard shared by the report
// and feedback lifecycles. Everything here is pure computation over the
// records the caller supplies; nothing is cached or persisted.
package coverage

import (
	"math"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
)

const (
	// EarthRadiusMeters is the spherical-Earth approximation used by the
	// haversine formula. Part of the observable contract.
	EarthRadiusMeters = 6371000.0

	// AdminRadiusMeters is the fixed system-wide radius the admin dashboard
	// matches with, regardless of each engineer's configured radius. The
	// engineer's own views and all authorization checks use the configured
	// radius instead; the asymmetry is intentional.
	AdminRadiusMeters = 40000.0
)

// Distance returns the haversine great-circle distance in meters between two
// coordinates. NaN inputs propagate NaN, which every caller treats as
// "no match"; callers pre-filter unlocated records.
func Distance(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Covers reports whether the engineer's own coverage circle contains loc.
// False when the engineer has no home coordinate, when loc is nil, or when
// the distance comes out NaN. This is the authorization guard: it uses the
// same geometry as the matcher, and engineer status is deliberately not
// consulted here (status only gates matching).
func Covers(e domain.Engineer, loc *domain.Coordinate) bool {
	if e.Home == nil || loc == nil {
		return false
	}
	d := Distance(*e.Home, *loc)
	return d <= float64(e.CoverageRadiusMeters) // NaN compares false
}
