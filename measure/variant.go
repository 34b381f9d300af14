// measure/variant.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"fmt"
	gomath "math"
)

// VariantQuantity is a quantity whose dimension is only known at runtime.
// It offers the same operations as Quantity, but those that combine two
// quantities check dimensions and return ErrIncompatibleDimension when
// they differ.
type VariantQuantity struct {
	value float64
	base  float64
	unit  AnyUnit
}

func VariantOf(value float64, unit AnyUnit) VariantQuantity {
	return VariantQuantity{value: value, base: unit.ToBase(value), unit: unit}
}

func VariantFromBase(base float64, unit AnyUnit) VariantQuantity {
	return VariantQuantity{value: unit.FromBase(base), base: base, unit: unit}
}

func (v VariantQuantity) Value() float64       { return v.value }
func (v VariantQuantity) BaseValue() float64   { return v.base }
func (v VariantQuantity) Unit() AnyUnit        { return v.unit }
func (v VariantQuantity) Dimension() Dimension { return v.unit.Dimension() }
func (v VariantQuantity) IsZero() bool         { return quantize(v.base) == 0 }

// ToVariant returns v; it lets VariantQuantity be used wherever a
// Formattable is expected.
func (v VariantQuantity) ToVariant() VariantQuantity { return v }

func (v VariantQuantity) check(d Dimension) error {
	if v.Dimension() != d {
		return fmt.Errorf("%w: %s and %s", ErrIncompatibleDimension, v.Dimension(), d)
	}
	return nil
}

func (v VariantQuantity) ConvertTo(u AnyUnit) (VariantQuantity, error) {
	if u == v.unit {
		return v, nil
	}
	if err := v.check(u.Dimension()); err != nil {
		return VariantQuantity{}, err
	}
	return VariantFromBase(v.base, u), nil
}

func (v VariantQuantity) Add(o VariantQuantity) (VariantQuantity, error) {
	if err := v.check(o.Dimension()); err != nil {
		return VariantQuantity{}, err
	}
	if o.unit == v.unit {
		return VariantOf(v.value+o.value, v.unit), nil
	}
	return VariantFromBase(v.base+o.base, v.unit), nil
}

func (v VariantQuantity) Subtract(o VariantQuantity) (VariantQuantity, error) {
	if err := v.check(o.Dimension()); err != nil {
		return VariantQuantity{}, err
	}
	if o.unit == v.unit {
		return VariantOf(v.value-o.value, v.unit), nil
	}
	return VariantFromBase(v.base-o.base, v.unit), nil
}

func (v VariantQuantity) AddValue(f float64) VariantQuantity      { return VariantOf(v.value+f, v.unit) }
func (v VariantQuantity) SubtractValue(f float64) VariantQuantity { return VariantOf(v.value-f, v.unit) }
func (v VariantQuantity) Multiply(f float64) VariantQuantity      { return VariantOf(v.value*f, v.unit) }
func (v VariantQuantity) Divide(f float64) VariantQuantity        { return VariantOf(v.value/f, v.unit) }
func (v VariantQuantity) Negate() VariantQuantity                 { return VariantOf(-v.value, v.unit) }
func (v VariantQuantity) Abs() VariantQuantity                    { return VariantOf(gomath.Abs(v.value), v.unit) }

func (v VariantQuantity) Compare(o VariantQuantity) (int, error) {
	if err := v.check(o.Dimension()); err != nil {
		return 0, err
	}
	return compareBase(v.base, o.base), nil
}

// Within is not supported for quantities of unknown dimension; convert
// with As first.
func (v VariantQuantity) Within(o, tolerance VariantQuantity) (bool, error) {
	return false, fmt.Errorf("%w: Within on a variant quantity", ErrUnsupportedOperation)
}

// Equal reports whether v and o have the same dimension and represent
// the same amount; if exact is set, they must also share the unit.
func (v VariantQuantity) Equal(o VariantQuantity, exact bool) bool {
	if v.Dimension() != o.Dimension() || (exact && v.unit != o.unit) {
		return false
	}
	return closeEnough(v.base, o.base)
}

// Hash returns a hash consistent with Equal(o, false). A VariantQuantity
// hashes the same as the Quantity it was created from.
func (v VariantQuantity) Hash() uint64 {
	return hashBase(v.Dimension(), v.base)
}

func (v VariantQuantity) String() string {
	return DefaultFormat.Format(v)
}

// As converts v to a statically-typed quantity expressed in unit.
func As[D Kind](v VariantQuantity, unit Unit[D]) (Quantity[D], error) {
	if err := v.check(DimensionOf[D]()); err != nil {
		return Quantity[D]{}, err
	}
	if v.unit == unit.Any() {
		return Quantity[D]{value: v.value, base: v.base, unit: unit}, nil
	}
	return FromBase(v.base, unit), nil
}

// Typed converts v to a statically-typed quantity, keeping its unit.
func Typed[D Kind](v VariantQuantity) (Quantity[D], error) {
	u, err := TypedUnit[D](v.unit)
	if err != nil {
		return Quantity[D]{}, err
	}
	return Quantity[D]{value: v.value, base: v.base, unit: u}, nil
}
