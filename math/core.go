// math/core.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

const (
	// EarthRadiusMeters is the mean radius used for great-circle distances.
	EarthRadiusMeters = 6371000

	MetersPerNauticalMile = 1852
	MetersPerFoot         = 0.3048
	MetersPerStatuteMile  = 1609.344
)

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// IntegerDigits returns the number of decimal digits in the integer part
// of v; zero has one digit.
func IntegerDigits(v float64) int {
	i := Abs(gomath.Trunc(v))
	if i < 1 {
		return 1
	}
	return int(gomath.Log10(i)) + 1
}

// Magnitude returns the number of digits of the integer part of |v|, or 0
// if |v| < 1. Unlike IntegerDigits it distinguishes values below one.
func Magnitude(v float64) int {
	i := Abs(gomath.Trunc(v))
	if i < 1 {
		return 0
	}
	return int(gomath.Floor(gomath.Log10(i))) + 1
}

// RoundSignificant rounds v to the given number of significant decimal
// digits.
func RoundSignificant(v float64, digits int) float64 {
	if v == 0 || gomath.IsInf(v, 0) || gomath.IsNaN(v) {
		return v
	}
	exp := int(gomath.Floor(gomath.Log10(Abs(v))))
	scale := gomath.Pow(10, float64(digits-1-exp))
	if gomath.IsInf(scale, 0) {
		return v
	}
	return gomath.Round(v*scale) / scale
}
