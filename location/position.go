// location/position.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package location

import (
	vmath "github.com/missioncontrol/measure/math"
	"github.com/missioncontrol/measure/measure"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// Position is a geographic position in degrees with an elevation in
// meters.
type Position struct {
	Latitude  float64
	Longitude float64
	Elevation float64
}

// Point returns the position as an orb point (longitude, latitude).
func (p Position) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

func (p Position) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Latitude, p.Longitude)
}

// DistanceTo returns the great-circle distance between p and o on a
// spherical Earth; elevation is ignored.
func (p Position) DistanceTo(o Position) measure.Quantity[measure.Length] {
	angle := p.LatLng().Distance(o.LatLng())
	return measure.Of(angle.Radians()*vmath.EarthRadiusMeters, measure.Meter)
}
