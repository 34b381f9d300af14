// measure/compare.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	gomath "math"

	vmath "github.com/missioncontrol/measure/math"

	"github.com/mitchellh/hashstructure/v2"
)

const (
	comparisonDigits = 12
	zeroThreshold    = 1e-12
)

// quantize maps base values that differ only by conversion round-off to
// the same float, so equality, ordering and hashing agree.
func quantize(v float64) float64 {
	if gomath.Abs(v) < zeroThreshold {
		return 0
	}
	q := vmath.RoundSignificant(v, comparisonDigits)
	if q == 0 {
		// Normalize -0.
		return 0
	}
	return q
}

func compareBase(a, b float64) int {
	qa, qb := quantize(a), quantize(b)
	switch {
	case qa < qb:
		return -1
	case qa > qb:
		return 1
	default:
		return 0
	}
}

func closeEnough(a, b float64) bool {
	return compareBase(a, b) == 0
}

type hashKey struct {
	Dimension Dimension
	Base      float64
}

func hashBase(d Dimension, base float64) uint64 {
	h, err := hashstructure.Hash(hashKey{Dimension: d, Base: quantize(base)}, hashstructure.FormatV2, nil)
	if err != nil {
		// Only possible for unsupported types; hashKey has none.
		panic(err)
	}
	return h
}
