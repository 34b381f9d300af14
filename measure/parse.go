// measure/parse.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Whitespace is a regular expression character class matching the
// whitespace that may appear in formatted quantities, including the
// no-break spaces the formatter emits.
const Whitespace = `[\s\x{00A0}\x{202F}]`

// Either '.' or ',' is accepted as the decimal separator, regardless of
// locale.
var numberPrefix = regexp.MustCompile(`^[-+]?(?:[0-9]+(?:[.,][0-9]*)?|[.,][0-9]+)`)

func parseNumber(s string) (v float64, n int, ok bool) {
	m := numberPrefix.FindString(s)
	if m == "" {
		return 0, 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(m, ",", ".", 1), 64)
	if err != nil {
		return 0, 0, false
	}
	return v, len(m), true
}

// ParseVariant parses a quantity such as "1.5 km". If the text has no
// unit symbol, implicit is used unless it is the zero AnyUnit. Only units
// of the given dimensions are considered; if none are given, the
// dimension of implicit (or, failing that, every dimension) is allowed.
//
// Besides number-and-symbol text, times may be given as h:m[:s], angles
// as degrees, minutes and seconds (e.g. 49° 30′ 12″), and any quantity as
// an arithmetic expression such as "1 km + 250 m" or "(3 + 4) * 2 ft".
func (f QuantityFormat) ParseVariant(input string, implicit AnyUnit, dims ...Dimension) (VariantQuantity, error) {
	if len(dims) == 0 {
		if implicit.IsValid() {
			dims = []Dimension{implicit.Dimension()}
		} else {
			dims = Dimensions()
		}
	}
	return f.parse(input, dims, implicit, false)
}

// ParseQuantity is the statically-typed form of ParseVariant; the result
// keeps the unit given in the text.
func ParseQuantity[D Kind](f QuantityFormat, input string, implicit Unit[D]) (Quantity[D], error) {
	v, err := f.ParseVariant(input, implicit.Any(), DimensionOf[D]())
	if err != nil {
		return Quantity[D]{}, err
	}
	return Typed[D](v)
}

func (f QuantityFormat) parse(input string, dims []Dimension, implicit AnyUnit, inExpression bool) (VariantQuantity, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return VariantQuantity{}, ErrEmptyInput
	}

	num, n, hasNumber := parseNumber(input)
	unitText := strings.TrimSpace(input[n:])
	if hasNumber && unitText == "" && implicit.IsValid() {
		return VariantOf(num, implicit), nil
	}

	units, err := ParseSymbol(unitText, f.Locale, dims...)
	if err == nil {
		if !hasNumber {
			return VariantQuantity{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, input)
		}
		return VariantOf(num, units[0]), nil
	}

	if slices.Contains(dims, DimensionTime) {
		if t, err := parseTime(input); err == nil {
			return t.ToVariant(), nil
		}
	}
	if slices.Contains(dims, DimensionAngle) {
		if a, err := f.parseAngle(input); err == nil {
			return a.ToVariant(), nil
		}
	}

	if !inExpression {
		v, exprErr := f.parseExpression(input, dims, implicit)
		if exprErr == nil {
			return v, nil
		} else if looksLikeExpression(input) {
			return VariantQuantity{}, exprErr
		}
	}

	if !hasNumber {
		return VariantQuantity{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, input)
	} else if unitText == "" {
		return VariantQuantity{}, fmt.Errorf("%w: no unit symbol in %q", ErrInvalidQuantity, input)
	}
	return VariantQuantity{}, err
}

func looksLikeExpression(s string) bool {
	return len(s) > 1 && (strings.ContainsAny(s[1:], "+-*()") || strings.HasPrefix(s, "("))
}

// parseTime parses [-]h:m[:s] into hours.
func parseTime(input string) (Quantity[Time], error) {
	parts := strings.Split(input, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Quantity[Time]{}, fmt.Errorf("%w: invalid time %q", ErrInvalidQuantity, input)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	negative := strings.HasPrefix(parts[0], "-")
	parts[0] = strings.TrimPrefix(parts[0], "-")

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return Quantity[Time]{}, fmt.Errorf("%w: invalid time %q", ErrInvalidQuantity, input)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 {
		return Quantity[Time]{}, fmt.Errorf("%w: invalid time %q", ErrInvalidQuantity, input)
	}
	var seconds float64
	if len(parts) == 3 {
		seconds, err = strconv.ParseFloat(parts[2], 64)
		if err != nil || seconds < 0 {
			return Quantity[Time]{}, fmt.Errorf("%w: invalid time %q", ErrInvalidQuantity, input)
		}
	}

	total := float64(hours) + float64(minutes)/60 + seconds/3600
	if negative {
		total = -total
	}
	return Of(total, Hour), nil
}

type anglePatterns struct {
	degMin, degSec, minSec, degMinSec *regexp.Regexp
}

var anglePatternCache sync.Map // localeKey -> *anglePatterns

func anglePatternsFor(tag language.Tag) *anglePatterns {
	key := localeKey(tag)
	if p, ok := anglePatternCache.Load(key); ok {
		return p.(*anglePatterns)
	}

	degSym := SymbolPattern(tag, Degree.Any())
	minSym := SymbolPattern(tag, Arcminute.Any())
	secSym := SymbolPattern(tag, Arcsecond.Any())

	const num = `[0-9]*[.,]?[0-9]+`
	// Leading fields must be followed by their symbol or by whitespace so
	// that e.g. "12" isn't read as 1° 2′.
	lead := func(sign, sym string) string {
		return `(` + sign + num + `(?:` + Whitespace + `*(?:` + sym + `)` + Whitespace + `*|` + Whitespace + `+))`
	}
	last := func(sym string) string {
		return `(` + num + Whitespace + `*(?:` + sym + `)?)`
	}

	p := &anglePatterns{
		degMin:    regexp.MustCompile(`^` + lead(`[-+]?`, degSym) + last(minSym) + `$`),
		degSec:    regexp.MustCompile(`^` + lead(`[-+]?`, degSym) + last(secSym) + `$`),
		minSec:    regexp.MustCompile(`^` + lead(``, minSym) + last(secSym) + `$`),
		degMinSec: regexp.MustCompile(`^` + lead(`[-+]?`, degSym) + lead(``, minSym) + last(secSym) + `$`),
	}
	actual, _ := anglePatternCache.LoadOrStore(key, p)
	return actual.(*anglePatterns)
}

func (f QuantityFormat) parseAngle(input string) (Quantity[Angle], error) {
	p := anglePatternsFor(f.Locale)

	if m := p.degMin.FindStringSubmatch(input); m != nil {
		return f.MakeAngle(m[1], m[2], "")
	} else if m := p.degSec.FindStringSubmatch(input); m != nil {
		return f.MakeAngle(m[1], "", m[2])
	} else if m := p.minSec.FindStringSubmatch(input); m != nil {
		return f.MakeAngle("", m[1], m[2])
	} else if m := p.degMinSec.FindStringSubmatch(input); m != nil {
		return f.MakeAngle(m[1], m[2], m[3])
	}
	return Quantity[Angle]{}, fmt.Errorf("%w: invalid angle %q", ErrInvalidQuantity, input)
}

// MakeAngle sums degree, arcminute and arcsecond fields, any of which may
// be empty. Fields without a symbol are taken to be in their respective
// units. A sign on the degree field applies to the whole angle, so
// "-49 30" is -49.5°.
func (f QuantityFormat) MakeAngle(deg, min, sec string) (Quantity[Angle], error) {
	negative := strings.HasPrefix(strings.TrimSpace(deg), "-")

	total := Of(0, Degree)
	for _, field := range []struct {
		text string
		unit Unit[Angle]
	}{{deg, Degree}, {min, Arcminute}, {sec, Arcsecond}} {
		text := strings.TrimSpace(field.text)
		if text == "" {
			continue
		}
		q, err := ParseQuantity(f, text, field.unit)
		if err != nil {
			return Quantity[Angle]{}, err
		}
		total = total.Add(q.Abs())
	}

	if negative {
		total = total.Negate()
	}
	return total, nil
}
