// measure/unitinfo.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"fmt"
	"slices"
	"strings"
)

type SystemOfMeasurement int

const (
	Metric SystemOfMeasurement = iota
	Imperial
	ICAO
	numSystems
)

func (s SystemOfMeasurement) String() string {
	switch s {
	case Metric:
		return "Metric"
	case Imperial:
		return "Imperial"
	case ICAO:
		return "ICAO"
	default:
		return "Unknown"
	}
}

func ParseSystemOfMeasurement(s string) (SystemOfMeasurement, error) {
	for sys := Metric; sys < numSystems; sys++ {
		if strings.EqualFold(sys.String(), s) {
			return sys, nil
		}
	}
	return Metric, fmt.Errorf("%s: unknown system of measurement", s)
}

// UnitInfo lists, for each system of measurement, the units in which
// quantities of dimension D are presented. The first unit of each list is
// the preferred one; the others are alternates that the formatter may
// switch to so that values stay readable (e.g. 1.5 km rather than 1500 m).
type UnitInfo[D Kind] struct {
	units [numSystems][]Unit[D]
}

// AnyUnitInfo is the dimension-erased form of a UnitInfo.
type AnyUnitInfo interface {
	Dimension() Dimension
	PreferredAnyUnit(SystemOfMeasurement) AnyUnit
	AllowedAnyUnits(SystemOfMeasurement) []AnyUnit
}

// NewUnitInfo returns a UnitInfo with the given unit lists, all of which
// must be non-empty and contain only valid units.
func NewUnitInfo[D Kind](metric, imperial, icao []Unit[D]) (*UnitInfo[D], error) {
	info := &UnitInfo[D]{}
	for sys, units := range [numSystems][]Unit[D]{metric, imperial, icao} {
		if len(units) == 0 {
			return nil, fmt.Errorf("%w: no %s units", ErrInvalidUnitInfo, SystemOfMeasurement(sys))
		}
		if slices.ContainsFunc(units, func(u Unit[D]) bool { return !u.IsValid() }) {
			return nil, fmt.Errorf("%w: invalid %s unit", ErrInvalidUnitInfo, SystemOfMeasurement(sys))
		}
		info.units[sys] = slices.Clone(units)
	}
	return info, nil
}

func mustUnitInfo[D Kind](metric, imperial, icao []Unit[D]) *UnitInfo[D] {
	info, err := NewUnitInfo(metric, imperial, icao)
	if err != nil {
		panic(err)
	}
	return info
}

// invariantUnitInfo uses the same units for every system.
func invariantUnitInfo[D Kind](units ...Unit[D]) *UnitInfo[D] {
	return mustUnitInfo(units, units, units)
}

func (u *UnitInfo[D]) list(s SystemOfMeasurement) []Unit[D] {
	if s < 0 || s >= numSystems || len(u.units[s]) == 0 {
		return u.units[Metric]
	}
	return u.units[s]
}

func (u *UnitInfo[D]) Dimension() Dimension { return DimensionOf[D]() }

// PreferredUnit returns the preferred unit for the given system, falling
// back to the metric one for unknown systems.
func (u *UnitInfo[D]) PreferredUnit(s SystemOfMeasurement) Unit[D] {
	return u.list(s)[0]
}

func (u *UnitInfo[D]) AllowedUnits(s SystemOfMeasurement) []Unit[D] {
	return slices.Clone(u.list(s))
}

func (u *UnitInfo[D]) PreferredAnyUnit(s SystemOfMeasurement) AnyUnit {
	return u.PreferredUnit(s).Any()
}

func (u *UnitInfo[D]) AllowedAnyUnits(s SystemOfMeasurement) []AnyUnit {
	l := u.list(s)
	units := make([]AnyUnit, len(l))
	for i, unit := range l {
		units[i] = unit.Any()
	}
	return units
}

// UnitFromInfo returns the preferred unit of info for the given system as
// a Unit of dimension D, failing if info is for a different dimension.
func UnitFromInfo[D Kind](info AnyUnitInfo, s SystemOfMeasurement) (Unit[D], error) {
	if want := DimensionOf[D](); info.Dimension() != want {
		return Unit[D]{}, fmt.Errorf("%w: unit info is for %s, not %s", ErrIncompatibleDimension,
			info.Dimension(), want)
	}
	return TypedUnit[D](info.PreferredAnyUnit(s))
}

// Presets.
var (
	LocalizedLength = mustUnitInfo(
		[]Unit[Length]{Meter, Millimeter, Centimeter, Kilometer},
		[]Unit[Length]{Foot, Inch, Mile},
		[]Unit[Length]{Foot, NauticalMile})
	LocalizedLengthNoKm = mustUnitInfo(
		[]Unit[Length]{Meter, Millimeter, Centimeter},
		[]Unit[Length]{Foot, Inch},
		[]Unit[Length]{Foot})
	InvariantLength = invariantUnitInfo(Meter)
	LocalizedArea   = mustUnitInfo(
		[]Unit[Area]{SquareMeter, SquareCentimeter, Hectare, SquareKilometer},
		[]Unit[Area]{SquareFoot, SquareInch, Acre, SquareMile},
		[]Unit[Area]{SquareMeter, Hectare, SquareKilometer})
	LocalizedSpeed = mustUnitInfo(
		[]Unit[Speed]{MeterPerSecond, KilometerPerHour},
		[]Unit[Speed]{MilePerHour, FootPerSecond},
		[]Unit[Speed]{Knot})
	InvariantSpeedMPS   = invariantUnitInfo(MeterPerSecond)
	AngleDegrees        = invariantUnitInfo(Degree)
	AngularSpeedDegrees = invariantUnitInfo(DegreePerSecond, RadianPerSecond)
	TimeAuto            = invariantUnitInfo(Second, Millisecond, Minute, Hour)
	TimeSeconds         = invariantUnitInfo(Second)
	TimeMinutes         = invariantUnitInfo(Minute)
	PercentageInfo      = invariantUnitInfo(Percent)
	StorageInfo         = invariantUnitInfo(Byte, Kilobyte, Megabyte, Gigabyte, Terabyte)
	VoltageInfo         = invariantUnitInfo(Volt, Millivolt)
)

// Preset is a UnitInfo preset with its name.
type Preset struct {
	Name string
	Info AnyUnitInfo
}

// Presets returns the named presets in a stable order.
func Presets() []Preset {
	return []Preset{
		{"LocalizedLength", LocalizedLength},
		{"LocalizedLengthNoKm", LocalizedLengthNoKm},
		{"InvariantLength", InvariantLength},
		{"LocalizedArea", LocalizedArea},
		{"LocalizedSpeed", LocalizedSpeed},
		{"InvariantSpeedMPS", InvariantSpeedMPS},
		{"AngleDegrees", AngleDegrees},
		{"AngularSpeed", AngularSpeedDegrees},
		{"Time", TimeAuto},
		{"TimeSeconds", TimeSeconds},
		{"TimeMinutes", TimeMinutes},
		{"Percentage", PercentageInfo},
		{"Storage", StorageInfo},
		{"Voltage", VoltageInfo},
	}
}
