// measure/unit.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Symbol is a textual representation of a unit. Space records whether a
// (narrow, non-breaking) space separates a number from the symbol when
// the two are formatted together.
type Symbol struct {
	Text  string
	Space bool
}

type unitID uint16

type unitDef struct {
	name      string
	dim       Dimension
	factor    float64 // multiply by this to convert to the dimension's base unit
	neutral   []Symbol
	localized map[string][]Symbol // keyed by base language, e.g. "en"
}

// The registry is only appended to during package initialization; after
// that it is read-only and may be shared freely. Index 0 is the invalid
// unit carried by zero-valued quantities.
var (
	registry         = []unitDef{{name: "", factor: 1}}
	unitsByDimension [numDimensions][]unitID
	unitsByName      = make(map[string]unitID)
)

type symbolSpec struct {
	locale string
	sym    Symbol
}

func spaced(text string) symbolSpec { return symbolSpec{sym: Symbol{Text: text, Space: true}} }
func tight(text string) symbolSpec  { return symbolSpec{sym: Symbol{Text: text}} }
func english(text string) symbolSpec {
	return symbolSpec{locale: "en", sym: Symbol{Text: text, Space: true}}
}

func defineUnit[D Kind](name string, factor float64, symbols ...symbolSpec) Unit[D] {
	if _, ok := unitsByName[name]; ok {
		panic(name + ": unit defined twice")
	}

	def := unitDef{
		name:      name,
		dim:       DimensionOf[D](),
		factor:    factor,
		localized: make(map[string][]Symbol),
	}
	for _, s := range symbols {
		if s.locale == "" {
			def.neutral = append(def.neutral, s.sym)
		} else {
			def.localized[s.locale] = append(def.localized[s.locale], s.sym)
		}
	}
	if len(def.neutral) == 0 {
		panic(name + ": unit has no neutral symbol")
	}

	registry = append(registry, def)
	id := unitID(len(registry) - 1)
	unitsByDimension[def.dim] = append(unitsByDimension[def.dim], id)
	unitsByName[name] = id

	return Unit[D]{id: id}
}

func localeKey(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

///////////////////////////////////////////////////////////////////////////
// AnyUnit

// AnyUnit is a dimension-erased handle to a registered unit. Handles are
// interned, so two AnyUnits are the same unit exactly when they compare
// equal with ==.
type AnyUnit struct {
	id unitID
}

func (u AnyUnit) def() *unitDef { return &registry[u.id] }

// IsValid reports whether u refers to a registered unit; the zero AnyUnit
// does not.
func (u AnyUnit) IsValid() bool { return u.id != 0 }

// Name returns the unique, locale-independent name of the unit, e.g.
// "kilometer". It is used for serialization.
func (u AnyUnit) Name() string { return u.def().name }

func (u AnyUnit) Dimension() Dimension { return u.def().dim }

// ToBase converts a value expressed in u to the dimension's base unit.
func (u AnyUnit) ToBase(v float64) float64 { return v * u.def().factor }

// FromBase converts a value expressed in the dimension's base unit to u.
func (u AnyUnit) FromBase(v float64) float64 { return v / u.def().factor }

func (u AnyUnit) NeutralSymbols() []Symbol { return slices.Clone(u.def().neutral) }

// LocalizedSymbols returns the symbols specific to the language of tag;
// most units have none.
func (u AnyUnit) LocalizedSymbols(tag language.Tag) []Symbol {
	return slices.Clone(u.def().localized[localeKey(tag)])
}

// DisplaySymbol returns the symbol used when formatting quantities for
// the given locale: the first localized symbol if there is one and the
// first neutral symbol otherwise.
func (u AnyUnit) DisplaySymbol(tag language.Tag) Symbol {
	d := u.def()
	if loc := d.localized[localeKey(tag)]; len(loc) > 0 {
		return loc[0]
	}
	if len(d.neutral) == 0 {
		return Symbol{}
	}
	return d.neutral[0]
}

// symbols returns the localized symbols followed by the neutral ones.
func (u AnyUnit) symbols(tag language.Tag) []Symbol {
	d := u.def()
	return append(slices.Clone(d.localized[localeKey(tag)]), d.neutral...)
}

func (u AnyUnit) String() string {
	if !u.IsValid() {
		return "Unit [invalid]"
	}
	return fmt.Sprintf("Unit [symbol: %s, dimension: %s]", u.def().neutral[0].Text, u.Dimension())
}

///////////////////////////////////////////////////////////////////////////
// Unit

// Unit is a handle to a registered unit of dimension D. Like AnyUnit,
// handles are interned and comparable with ==.
type Unit[D Kind] struct {
	id unitID
}

// Any returns the dimension-erased handle for u.
func (u Unit[D]) Any() AnyUnit { return AnyUnit{id: u.id} }

func (u Unit[D]) IsValid() bool { return u.id != 0 }
func (u Unit[D]) Name() string { return u.Any().Name() }
func (u Unit[D]) Dimension() Dimension { return DimensionOf[D]() }
func (u Unit[D]) ToBase(v float64) float64 { return u.Any().ToBase(v) }
func (u Unit[D]) FromBase(v float64) float64 { return u.Any().FromBase(v) }
func (u Unit[D]) NeutralSymbols() []Symbol { return u.Any().NeutralSymbols() }
func (u Unit[D]) LocalizedSymbols(tag language.Tag) []Symbol { return u.Any().LocalizedSymbols(tag) }
func (u Unit[D]) DisplaySymbol(tag language.Tag) Symbol { return u.Any().DisplaySymbol(tag) }
func (u Unit[D]) String() string { return u.Any().String() }

// TypedUnit re-attaches a static dimension to u, failing if the
// dimension of u is not D.
func TypedUnit[D Kind](u AnyUnit) (Unit[D], error) {
	if want := DimensionOf[D](); u.Dimension() != want {
		return Unit[D]{}, fmt.Errorf("%w: unit %s is %s, not %s", ErrIncompatibleDimension,
			u.Name(), u.Dimension(), want)
	}
	return Unit[D]{id: u.id}, nil
}

///////////////////////////////////////////////////////////////////////////
// Lookup

// Units returns all units of the given dimension in registration order.
func Units(d Dimension) []AnyUnit {
	if d < 0 || d >= numDimensions {
		return nil
	}
	units := make([]AnyUnit, len(unitsByDimension[d]))
	for i, id := range unitsByDimension[d] {
		units[i] = AnyUnit{id: id}
	}
	return units
}

// UnitsOf returns all units of dimension D in registration order.
func UnitsOf[D Kind]() []Unit[D] {
	ids := unitsByDimension[DimensionOf[D]()]
	units := make([]Unit[D], len(ids))
	for i, id := range ids {
		units[i] = Unit[D]{id: id}
	}
	return units
}

// UnitByName returns the unit with the given Name.
func UnitByName(name string) (AnyUnit, bool) {
	id, ok := unitsByName[name]
	return AnyUnit{id: id}, ok
}

// ParseSymbol returns, for each of the given dimensions (or for all
// dimensions if none are given), the unit that has the given symbol. Both
// the localized symbols for tag and the neutral symbols are considered;
// an exact match is preferred to a case-insensitive one and among exact
// matches the first registered unit wins.
func ParseSymbol(symbol string, tag language.Tag, dims ...Dimension) ([]AnyUnit, error) {
	if symbol == "" {
		return nil, fmt.Errorf("%w: no unit symbol specified", ErrUnknownUnit)
	}
	if len(dims) == 0 {
		dims = Dimensions()
	}

	var result []AnyUnit
	for _, d := range dims {
		if u, ok := findSymbol(symbol, tag, d); ok {
			result = append(result, u)
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return result, nil
}

// ParseUnitSymbol returns the unit of dimension D with the given symbol.
func ParseUnitSymbol[D Kind](symbol string, tag language.Tag) (Unit[D], error) {
	units, err := ParseSymbol(symbol, tag, DimensionOf[D]())
	if err != nil {
		return Unit[D]{}, err
	}
	return Unit[D]{id: units[0].id}, nil
}

func findSymbol(text string, tag language.Tag, d Dimension) (AnyUnit, bool) {
	if d < 0 || d >= numDimensions {
		return AnyUnit{}, false
	}

	var folded AnyUnit
	for _, id := range unitsByDimension[d] {
		u := AnyUnit{id: id}
		for _, s := range u.symbols(tag) {
			if s.Text == text {
				return u, true
			} else if !folded.IsValid() && strings.EqualFold(s.Text, text) {
				folded = u
			}
		}
	}
	return folded, folded.IsValid()
}

// SymbolPattern returns a regular expression alternation (without
// enclosing parentheses) that matches any localized or neutral symbol of
// the given units. Symbols are quoted and ordered longest first so that
// e.g. "arcmin" is preferred to "am".
func SymbolPattern(tag language.Tag, units ...AnyUnit) string {
	var syms []string
	for _, u := range units {
		for _, s := range u.symbols(tag) {
			if !slices.Contains(syms, s.Text) {
				syms = append(syms, s.Text)
			}
		}
	}

	slices.SortStableFunc(syms, func(a, b string) int { return len(b) - len(a) })
	for i, s := range syms {
		syms[i] = regexp.QuoteMeta(s)
	}
	return strings.Join(syms, "|")
}

// DimensionSymbolPattern is like SymbolPattern but covers every unit of
// the dimension d.
func DimensionSymbolPattern(tag language.Tag, d Dimension) string {
	return SymbolPattern(tag, Units(d)...)
}
