// measure/format.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"fmt"
	gomath "math"
	"strconv"
	"strings"

	vmath "github.com/missioncontrol/measure/math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

type AngleStyle int

const (
	DecimalDegrees AngleStyle = iota
	DegreeDecimalMinute
	DegreeMinuteSecond
)

func (s AngleStyle) String() string {
	switch s {
	case DecimalDegrees:
		return "DecimalDegrees"
	case DegreeDecimalMinute:
		return "DegreeDecimalMinute"
	case DegreeMinuteSecond:
		return "DegreeMinuteSecond"
	default:
		return "Unknown"
	}
}

// ParseAngleStyle accepts the style names returned by String as well as
// the abbreviations "dd", "dmm" and "dms".
func ParseAngleStyle(s string) (AngleStyle, error) {
	switch strings.ToLower(s) {
	case "dd", "decimaldegrees":
		return DecimalDegrees, nil
	case "dmm", "degreedecimalminute":
		return DegreeDecimalMinute, nil
	case "dms", "degreeminutesecond":
		return DegreeMinuteSecond, nil
	default:
		return DecimalDegrees, fmt.Errorf("%s: unknown angle style", s)
	}
}

type TimeStyle int

const (
	TimeDecimal TimeStyle = iota
	TimeHourMinuteSecond
)

// Formattable is implemented by Quantity and VariantQuantity.
type Formattable interface {
	ToVariant() VariantQuantity
}

// QuantityFormat converts quantities to and from text. It is a plain
// value: the With methods return modified copies, so a QuantityFormat may
// be shared between goroutines without locking.
type QuantityFormat struct {
	Locale     language.Tag
	System     SystemOfMeasurement
	AngleStyle AngleStyle
	TimeStyle  TimeStyle
	// Numbers are rendered with at most SignificantDigits digits, but
	// never with more than MaximumFractionDigits after the decimal point
	// and never with fewer digits than the integer part has.
	SignificantDigits     int
	MaximumFractionDigits int
}

// DefaultFormat is used by the String methods of quantities.
var DefaultFormat = NewQuantityFormat()

func NewQuantityFormat() QuantityFormat {
	return QuantityFormat{
		Locale:                language.English,
		System:                Metric,
		AngleStyle:            DecimalDegrees,
		TimeStyle:             TimeDecimal,
		SignificantDigits:     5,
		MaximumFractionDigits: 16,
	}
}

func (f QuantityFormat) WithLocale(tag language.Tag) QuantityFormat {
	f.Locale = tag
	return f
}

func (f QuantityFormat) WithSystem(s SystemOfMeasurement) QuantityFormat {
	f.System = s
	return f
}

func (f QuantityFormat) WithAngleStyle(s AngleStyle) QuantityFormat {
	f.AngleStyle = s
	return f
}

func (f QuantityFormat) WithTimeStyle(s TimeStyle) QuantityFormat {
	f.TimeStyle = s
	return f
}

func (f QuantityFormat) WithSignificantDigits(n int) QuantityFormat {
	f.SignificantDigits = n
	return f
}

func (f QuantityFormat) WithMaximumFractionDigits(n int) QuantityFormat {
	f.MaximumFractionDigits = n
	return f
}

// Format renders q in its own unit (angles and times may be rendered in
// sexagesimal notation, depending on AngleStyle and TimeStyle).
func (f QuantityFormat) Format(q Formattable) string {
	return f.FormatWith(q, nil)
}

// FormatWith is like Format, but if info is non-nil and matches the
// dimension of q, q is first converted to whichever of the units allowed
// by info for the format's system gives the most readable value.
func (f QuantityFormat) FormatWith(q Formattable, info AnyUnitInfo) string {
	v := q.ToVariant()

	switch {
	case v.Dimension() == DimensionAngle && f.AngleStyle != DecimalDegrees:
		return f.formatAngle(v)
	case v.Dimension() == DimensionTime && f.TimeStyle == TimeHourMinuteSecond:
		return f.formatTime(v)
	}

	if info != nil && info.Dimension() == v.Dimension() {
		v = f.adjustUnit(v, info)
	}
	return f.FormatNumber(v.value, v.unit)
}

// FormatNumber renders value followed by the display symbol of unit.
// No symbol is written if unit is the zero AnyUnit.
func (f QuantityFormat) FormatNumber(value float64, unit AnyUnit) string {
	digits := f.SignificantDigits - vmath.IntegerDigits(value)
	digits = vmath.Clamp(digits, 0, max(f.MaximumFractionDigits, 0))

	s := f.formatFloat(value, digits)
	if unit.IsValid() {
		s += f.formatSymbol(unit.DisplaySymbol(f.Locale))
	}
	return s
}

func (f QuantityFormat) formatFloat(v float64, digits int) string {
	if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return f.formatDecimal(decimal.NewFromFloat(v).RoundBank(int32(digits)))
}

// formatDecimal writes d without trailing fractional zeros, using the
// locale's decimal separator.
func (f QuantityFormat) formatDecimal(d decimal.Decimal) string {
	s := d.String()
	if sep := DecimalSeparator(f.Locale); sep != "." {
		s = strings.Replace(s, ".", sep, 1)
	}
	return s
}

func (f QuantityFormat) formatSymbol(s Symbol) string {
	if s.Text == "" {
		return ""
	}
	if s.Space {
		return "\u202f" + s.Text
	}
	return s.Text
}

// sexagesimalDigits is the number of fraction digits given to the last
// field of DMS and DMM renderings.
func (f QuantityFormat) sexagesimalDigits() int32 {
	return int32(vmath.Clamp(f.SignificantDigits-2, 0, max(f.MaximumFractionDigits, 0)))
}

var sixty = decimal.NewFromInt(60)

func (f QuantityFormat) formatAngle(v VariantQuantity) string {
	deg := Degree.FromBase(v.base)
	negative := deg < 0
	deg = gomath.Abs(deg)

	d := gomath.Floor(deg)
	minf := (deg - d) * 60

	degSym := f.formatSymbol(Degree.DisplaySymbol(f.Locale))
	minSym := f.formatSymbol(Arcminute.DisplaySymbol(f.Locale))

	var s string
	var zero bool
	if f.AngleStyle == DegreeMinuteSecond {
		m := gomath.Floor(minf)
		sec := decimal.NewFromFloat((minf - m) * 60).RoundBank(f.sexagesimalDigits())
		if sec.GreaterThanOrEqual(sixty) {
			sec = decimal.Zero
			m++
		}
		if m >= 60 {
			m = 0
			d++
		}
		zero = d == 0 && m == 0 && sec.IsZero()
		s = strconv.FormatFloat(d, 'f', 0, 64) + degSym + " " +
			strconv.FormatFloat(m, 'f', 0, 64) + minSym + " " +
			f.formatDecimal(sec) + f.formatSymbol(Arcsecond.DisplaySymbol(f.Locale))
	} else {
		m := decimal.NewFromFloat(minf).RoundBank(f.sexagesimalDigits())
		if m.GreaterThanOrEqual(sixty) {
			m = decimal.Zero
			d++
		}
		zero = d == 0 && m.IsZero()
		s = strconv.FormatFloat(d, 'f', 0, 64) + degSym + " " + f.formatDecimal(m) + minSym
	}

	if negative && !zero {
		return "-" + s
	}
	return s
}

func (f QuantityFormat) formatTime(v VariantQuantity) string {
	secs := Second.FromBase(v.base)
	sign := ""
	if secs < 0 {
		sign = "-"
		secs = -secs
	}

	total := int64(gomath.Round(secs))
	if total == 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, total/3600, total/60%60, total%60)
}

// adjustUnit picks, among the units allowed by info, the one in which v
// has the fewest (but at least one) integer digits; ties go to the unit
// giving the larger value. If v is below one in every allowed unit, the
// unit giving the largest value is used.
func (f QuantityFormat) adjustUnit(v VariantQuantity, info AnyUnitInfo) VariantQuantity {
	if !v.unit.IsValid() {
		return v
	}

	var best, fallback VariantQuantity
	bestMagnitude := 0
	for _, u := range info.AllowedAnyUnits(f.System) {
		c := v
		if u != v.unit {
			c = VariantFromBase(v.base, u)
		}

		abs := gomath.Abs(c.value)
		if mag := vmath.Magnitude(c.value); mag == 0 {
			if !fallback.unit.IsValid() || abs > gomath.Abs(fallback.value) {
				fallback = c
			}
		} else if bestMagnitude == 0 || mag < bestMagnitude ||
			(mag == bestMagnitude && abs > gomath.Abs(best.value)) {
			best, bestMagnitude = c, mag
		}
	}

	if bestMagnitude > 0 {
		return best
	} else if fallback.unit.IsValid() {
		return fallback
	}
	return v
}
