// location/location.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package location

import (
	"fmt"

	vmath "github.com/missioncontrol/measure/math"
	"github.com/missioncontrol/measure/measure"

	"github.com/paulmach/orb"
)

// Location is a point given either by geographic coordinates (X is the
// latitude and Y the longitude, both angles) or by local cartesian
// coordinates (X and Y both lengths), with an optional altitude Z. The
// zero Location has no coordinates.
type Location struct {
	x, y measure.VariantQuantity
	z    measure.Quantity[measure.Length]
	hasZ bool
}

// Geographic returns the location at the given latitude and longitude.
func Geographic(lat, lon measure.Quantity[measure.Angle]) Location {
	return Location{x: lat.ToVariant(), y: lon.ToVariant()}
}

// Geographic3 is like Geographic but also sets the altitude.
func Geographic3(lat, lon measure.Quantity[measure.Angle], alt measure.Quantity[measure.Length]) Location {
	l := Geographic(lat, lon)
	l.SetZ(alt)
	return l
}

// Local returns the location at (x, y) in a local frame.
func Local(x, y measure.Quantity[measure.Length]) Location {
	return Location{x: x.ToVariant(), y: y.ToVariant()}
}

func Local3(x, y, z measure.Quantity[measure.Length]) Location {
	l := Local(x, y)
	l.SetZ(z)
	return l
}

// FromVariants returns the location with the given x and y, which must
// both be angles or both be lengths.
func FromVariants(x, y measure.VariantQuantity) (Location, error) {
	var l Location
	if err := l.SetXY(x, y); err != nil {
		return Location{}, err
	}
	return l, nil
}

// FromLatLon returns the location at the given latitude and longitude in
// degrees.
func FromLatLon(lat, lon float64) Location {
	return Geographic(measure.Of(lat, measure.Degree), measure.Of(lon, measure.Degree))
}

// FromPosition returns the geographic location of p, including its
// elevation.
func FromPosition(p Position) Location {
	return Geographic3(measure.Of(p.Latitude, measure.Degree), measure.Of(p.Longitude, measure.Degree),
		measure.Of(p.Elevation, measure.Meter))
}

// FromVec4 returns the local location of v, in meters.
func FromVec4(v vmath.Vec4) Location {
	return Local3(measure.Of(v.X(), measure.Meter), measure.Of(v.Y(), measure.Meter),
		measure.Of(v.Z(), measure.Meter))
}

// FromOrbPoint returns the geographic location of an orb point, which
// stores longitude first.
func FromOrbPoint(p orb.Point) Location {
	return FromLatLon(p.Lat(), p.Lon())
}

func (l Location) X() measure.VariantQuantity { return l.x }
func (l Location) Y() measure.VariantQuantity { return l.y }

// Z returns the altitude and whether one is set.
func (l Location) Z() (measure.Quantity[measure.Length], bool) { return l.z, l.hasZ }

// IsValid reports whether l has coordinates.
func (l Location) IsValid() bool { return l.x.Unit().IsValid() }

// Dimension returns the dimension shared by X and Y.
func (l Location) Dimension() measure.Dimension { return l.x.Dimension() }

func (l Location) IsGeographic() bool {
	return l.IsValid() && l.Dimension() == measure.DimensionAngle
}

// GetX returns X as a quantity of dimension D; it fails if the location
// does not use that dimension.
func GetX[D measure.Kind](l Location) (measure.Quantity[D], error) {
	return typed[D](l, l.x)
}

// GetY returns Y as a quantity of dimension D; it fails if the location
// does not use that dimension.
func GetY[D measure.Kind](l Location) (measure.Quantity[D], error) {
	return typed[D](l, l.y)
}

func typed[D measure.Kind](l Location, v measure.VariantQuantity) (measure.Quantity[D], error) {
	if !l.IsValid() {
		return measure.Quantity[D]{}, ErrInvalidLocation
	}
	return measure.Typed[D](v)
}

// SetXY replaces both horizontal coordinates. x and y must both be
// angles or both be lengths; l is left unchanged otherwise.
func (l *Location) SetXY(x, y measure.VariantQuantity) error {
	if !x.Unit().IsValid() || !y.Unit().IsValid() {
		return fmt.Errorf("%w: missing unit", ErrInvalidDimension)
	}
	if d := x.Dimension(); d != y.Dimension() || (d != measure.DimensionAngle && d != measure.DimensionLength) {
		return fmt.Errorf("%w: got %s and %s", ErrInvalidDimension, x.Dimension(), y.Dimension())
	}
	l.x, l.y = x, y
	return nil
}

func (l *Location) SetZ(z measure.Quantity[measure.Length]) {
	l.z, l.hasZ = z, true
}

func (l *Location) ClearZ() {
	l.z, l.hasZ = measure.Quantity[measure.Length]{}, false
}

// Clone returns a copy of l that may be modified independently.
func (l Location) Clone() Location { return l }

// Equal reports whether the coordinates of l and o are equal to display
// precision.
func (l Location) Equal(o Location) bool {
	if l.hasZ != o.hasZ || (l.hasZ && !l.z.Equal(o.z, false)) {
		return false
	}
	return l.x.Equal(o.x, false) && l.y.Equal(o.y, false)
}

// ToPosition returns the geographic position of l; altitude defaults to
// zero.
func (l Location) ToPosition() (Position, error) {
	if !l.IsValid() {
		return Position{}, ErrInvalidLocation
	} else if !l.IsGeographic() {
		return Position{}, fmt.Errorf("%w: %s coordinates are not geographic", ErrWrongCoordinateFamily, l.Dimension())
	}

	p := Position{
		Latitude:  measure.Degree.FromBase(l.x.BaseValue()),
		Longitude: measure.Degree.FromBase(l.y.BaseValue()),
	}
	if l.hasZ {
		p.Elevation = l.z.ConvertTo(measure.Meter).Value()
	}
	return p, nil
}

// ToVec4 returns the local coordinates of l in meters; Z defaults to zero.
func (l Location) ToVec4() (vmath.Vec4, error) {
	if !l.IsValid() {
		return vmath.Vec4{}, ErrInvalidLocation
	} else if l.Dimension() != measure.DimensionLength {
		return vmath.Vec4{}, fmt.Errorf("%w: %s coordinates are not local", ErrWrongCoordinateFamily, l.Dimension())
	}

	var z float64
	if l.hasZ {
		z = l.z.ConvertTo(measure.Meter).Value()
	}
	return vmath.MakeVec4(measure.Meter.FromBase(l.x.BaseValue()), measure.Meter.FromBase(l.y.BaseValue()), z), nil
}

// LocalDistanceTo returns the straight-line distance between two local
// locations; a missing Z counts as zero.
func (l Location) LocalDistanceTo(o Location) (measure.Quantity[measure.Length], error) {
	a, err := l.ToVec4()
	if err != nil {
		return measure.Quantity[measure.Length]{}, err
	}
	b, err := o.ToVec4()
	if err != nil {
		return measure.Quantity[measure.Length]{}, err
	}
	return measure.Of(vmath.Distance3(a, b), measure.Meter), nil
}

// String renders l in decimal degrees (or as X=/Y=/Z= for local
// coordinates).
func (l Location) String() string {
	if !l.IsValid() {
		return "(no location)"
	}
	return NewFormat(measure.DecimalDegrees).Format(l)
}
