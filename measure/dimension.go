// measure/dimension.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import "strings"

// Dimension identifies a physical kind of measurement. Quantities may only
// be combined or compared if their dimensions are identical.
type Dimension int

const (
	DimensionLength Dimension = iota
	DimensionArea
	DimensionAngle
	DimensionSpeed
	DimensionAngularSpeed
	DimensionTime
	DimensionPercentage
	DimensionStorage
	DimensionVoltage
	numDimensions
)

var dimensionNames = [...]string{
	DimensionLength:       "Length",
	DimensionArea:         "Area",
	DimensionAngle:        "Angle",
	DimensionSpeed:        "Speed",
	DimensionAngularSpeed: "AngularSpeed",
	DimensionTime:         "Time",
	DimensionPercentage:   "Percentage",
	DimensionStorage:      "Storage",
	DimensionVoltage:      "Voltage",
}

func (d Dimension) String() string {
	if d < 0 || d >= numDimensions {
		return "Unknown"
	}
	return dimensionNames[d]
}

// Dimensions returns all known dimensions in declaration order.
func Dimensions() []Dimension {
	d := make([]Dimension, numDimensions)
	for i := range d {
		d[i] = Dimension(i)
	}
	return d
}

// ParseDimension returns the dimension with the given name, ignoring case.
func ParseDimension(s string) (Dimension, bool) {
	for i, n := range dimensionNames {
		if strings.EqualFold(n, s) {
			return Dimension(i), true
		}
	}
	return 0, false
}

// Kind is implemented by the zero-sized dimension markers that
// parameterize Quantity and Unit.
type Kind interface {
	Dimension() Dimension
}

type (
	Length       struct{}
	Area         struct{}
	Angle        struct{}
	Speed        struct{}
	AngularSpeed struct{}
	Time         struct{}
	Percentage   struct{}
	Storage      struct{}
	Voltage      struct{}
)

func (Length) Dimension() Dimension       { return DimensionLength }
func (Area) Dimension() Dimension         { return DimensionArea }
func (Angle) Dimension() Dimension        { return DimensionAngle }
func (Speed) Dimension() Dimension        { return DimensionSpeed }
func (AngularSpeed) Dimension() Dimension { return DimensionAngularSpeed }
func (Time) Dimension() Dimension         { return DimensionTime }
func (Percentage) Dimension() Dimension   { return DimensionPercentage }
func (Storage) Dimension() Dimension      { return DimensionStorage }
func (Voltage) Dimension() Dimension      { return DimensionVoltage }

// DimensionOf returns the dimension of the marker type D.
func DimensionOf[D Kind]() Dimension {
	var d D
	return d.Dimension()
}
