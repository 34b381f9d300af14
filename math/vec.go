// math/vec.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

///////////////////////////////////////////////////////////////////////////
// Vec4

// Vec4 is a homogeneous point in a local cartesian frame; W is 1 for
// points.
type Vec4 [4]float64

// MakeVec4 returns the point (x, y, z) with W=1.
func MakeVec4(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

func (v Vec4) X() float64 { return v[0] }
func (v Vec4) Y() float64 { return v[1] }
func (v Vec4) Z() float64 { return v[2] }
func (v Vec4) W() float64 { return v[3] }

// a-b; W is taken from a.
func (v Vec4) Sub(b Vec4) Vec4 {
	return Vec4{v[0] - b[0], v[1] - b[1], v[2] - b[2], v[3]}
}

// Length3 returns the euclidean length of the xyz part.
func (v Vec4) Length3() float64 {
	return gomath.Sqrt(Sqr(v[0]) + Sqr(v[1]) + Sqr(v[2]))
}

// Distance3 returns the euclidean distance between the xyz parts of a and
// b.
func Distance3(a, b Vec4) float64 {
	return a.Sub(b).Length3()
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v[0], v[1], v[2], v[3])
}
