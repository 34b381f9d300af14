// measure/quantity.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	gomath "math"
)

// Quantity is an immutable value of dimension D expressed in a particular
// unit. It records both the value in that unit and the value in the
// dimension's base unit; arithmetic is performed on the latter and
// results carry the unit of the receiver.
//
// The zero Quantity has no unit; it is only useful as a placeholder.
type Quantity[D Kind] struct {
	value float64
	base  float64
	unit  Unit[D]
}

// Of returns a quantity with the given value expressed in unit.
func Of[D Kind](value float64, unit Unit[D]) Quantity[D] {
	return Quantity[D]{value: value, base: unit.ToBase(value), unit: unit}
}

// FromBase returns a quantity expressed in unit whose value in the
// dimension's base unit is base.
func FromBase[D Kind](base float64, unit Unit[D]) Quantity[D] {
	return Quantity[D]{value: unit.FromBase(base), base: base, unit: unit}
}

func (q Quantity[D]) Value() float64       { return q.value }
func (q Quantity[D]) BaseValue() float64   { return q.base }
func (q Quantity[D]) Unit() Unit[D]        { return q.unit }
func (q Quantity[D]) Dimension() Dimension { return DimensionOf[D]() }

// IsZero reports whether the quantity is (within round-off) zero.
func (q Quantity[D]) IsZero() bool { return quantize(q.base) == 0 }

// ConvertTo returns the quantity expressed in unit u.
func (q Quantity[D]) ConvertTo(u Unit[D]) Quantity[D] {
	if u == q.unit {
		return q
	}
	return FromBase(q.base, u)
}

func (q Quantity[D]) Add(o Quantity[D]) Quantity[D] {
	if o.unit == q.unit {
		return Of(q.value+o.value, q.unit)
	}
	return FromBase(q.base+o.base, q.unit)
}

func (q Quantity[D]) Subtract(o Quantity[D]) Quantity[D] {
	if o.unit == q.unit {
		return Of(q.value-o.value, q.unit)
	}
	return FromBase(q.base-o.base, q.unit)
}

// AddValue adds v, interpreted in the quantity's unit.
func (q Quantity[D]) AddValue(v float64) Quantity[D] { return Of(q.value+v, q.unit) }

// SubtractValue subtracts v, interpreted in the quantity's unit.
func (q Quantity[D]) SubtractValue(v float64) Quantity[D] { return Of(q.value-v, q.unit) }

func (q Quantity[D]) Multiply(f float64) Quantity[D] { return Of(q.value*f, q.unit) }
func (q Quantity[D]) Divide(f float64) Quantity[D]   { return Of(q.value/f, q.unit) }
func (q Quantity[D]) Negate() Quantity[D]            { return Of(-q.value, q.unit) }
func (q Quantity[D]) Abs() Quantity[D]               { return Of(gomath.Abs(q.value), q.unit) }

// Compare returns -1, 0, or 1 depending on whether q is less than, equal
// to, or greater than o. Values that differ only by conversion round-off
// compare equal.
func (q Quantity[D]) Compare(o Quantity[D]) int {
	return compareBase(q.base, o.base)
}

// Within reports whether q differs from o by no more than tolerance.
func (q Quantity[D]) Within(o, tolerance Quantity[D]) bool {
	return compareBase(gomath.Abs(q.base-o.base), gomath.Abs(tolerance.base)) <= 0
}

// Equal reports whether q and o represent the same amount. If exact is
// set, they must also be expressed in the same unit.
func (q Quantity[D]) Equal(o Quantity[D], exact bool) bool {
	if exact && q.unit != o.unit {
		return false
	}
	return closeEnough(q.base, o.base)
}

// Hash returns a hash consistent with Equal(o, false).
func (q Quantity[D]) Hash() uint64 {
	return hashBase(DimensionOf[D](), q.base)
}

// ToVariant returns the dimension-erased form of q.
func (q Quantity[D]) ToVariant() VariantQuantity {
	return VariantQuantity{value: q.value, base: q.base, unit: q.unit.Any()}
}

func (q Quantity[D]) String() string {
	return DefaultFormat.Format(q)
}
