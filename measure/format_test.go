// measure/format_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"errors"
	"math"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

// nnbsp renders the separator as "_" so failures are readable.
func nnbsp(s string) string { return strings.ReplaceAll(s, "\u202f", "_") }

func TestFormat(t *testing.T) {
	f := NewQuantityFormat()
	dms := f.WithAngleStyle(DegreeMinuteSecond)
	dmm := f.WithAngleStyle(DegreeDecimalMinute)
	hms := f.WithTimeStyle(TimeHourMinuteSecond)

	for _, test := range []struct {
		f        QuantityFormat
		q        Formattable
		expected string
	}{
		{f, Of(1.23456789, Meter), "1.2346_m"},
		{f, Of(12345.678, Meter), "12346_m"},
		{f, Of(-12.5, Meter), "-12.5_m"},
		{f, Of(2, Kilometer), "2_km"},
		{f, Of(0.5, Percent), "0.5%"},
		{f, Of(3, Factor), "3x"},
		{f, Of(100, KilometerPerHour), "100_kph"},
		{f.WithLocale(language.French), Of(100, KilometerPerHour), "100_km/h"},
		{f, Of(49.0123, Degree), "49.012°"},
		{f.WithSignificantDigits(12).WithMaximumFractionDigits(3), Of(1.0/3, Meter), "0.333_m"},
		{dms, Of(49.0123, Degree), "49° 0′ 44.28″"},
		{dms, Of(-8.5, Degree), "-8° 30′ 0″"},
		{dms, Of(59.9999999, Degree), "60° 0′ 0″"},
		{dms, Of(-0.0000001, Degree), "0° 0′ 0″"},
		{dmm, Of(-8.5, Degree), "-8° 30′"},
		{dmm, Of(49.0123, Degree), "49° 0.738′"},
		{dms, Of(2, Meter), "2_m"},
		{hms, Of(1.5, Hour), "01:30:00"},
		{hms, Of(-90, Second), "-00:01:30"},
		{hms, Of(100000, Second), "27:46:40"},
		{f, Of(90, Second), "90_s"},
		{f, VariantOf(1.5, Gigabyte.Any()), "1.5_GB"},
	} {
		if s := nnbsp(test.f.Format(test.q)); s != test.expected {
			t.Errorf("%v: got %q, expected %q", test.q.ToVariant().Value(), s, test.expected)
		}
	}

	if s := nnbsp(Of(1.5, Kilometer).String()); s != "1.5_km" {
		t.Errorf("String: got %q", s)
	}
}

func TestFormatWithUnitInfo(t *testing.T) {
	f := NewQuantityFormat()
	for _, test := range []struct {
		sys      SystemOfMeasurement
		info     AnyUnitInfo
		q        Formattable
		expected string
	}{
		{Metric, LocalizedLength, Of(1000, Meter), "1_km"},
		{Metric, LocalizedLength, Of(1500, Meter), "1.5_km"},
		{Metric, LocalizedLength, Of(0.5, Meter), "50_cm"},
		{Metric, LocalizedLength, Of(5, Meter), "5_m"},
		{Metric, LocalizedLength, Of(0, Meter), "0_m"},
		{Metric, LocalizedLengthNoKm, Of(1500, Meter), "1500_m"},
		{Imperial, LocalizedLength, Of(1609.344, Meter), "1_mi"},
		{ICAO, LocalizedSpeed, Of(1.852, KilometerPerHour), "1_kn"},
		{Metric, StorageInfo, Of(2048, Byte), "2_KB"},
		// Mismatched dimensions leave the quantity alone.
		{Metric, LocalizedSpeed, Of(1000, Meter), "1000_m"},
	} {
		if s := nnbsp(f.WithSystem(test.sys).FormatWith(test.q, test.info)); s != test.expected {
			t.Errorf("%v in %s: got %q, expected %q", test.q.ToVariant().Value(), test.sys, s, test.expected)
		}
	}
}

func TestDecimalSeparator(t *testing.T) {
	for _, test := range []struct {
		tag      language.Tag
		expected string
	}{
		{language.English, "."},
		{language.German, ","},
		{language.French, ","},
	} {
		if sep := DecimalSeparator(test.tag); sep != test.expected {
			t.Errorf("%s: got %q, expected %q", test.tag, sep, test.expected)
		}
	}

	f := NewQuantityFormat().WithLocale(language.German)
	if s := nnbsp(f.Format(Of(2.5, Meter))); s != "2,5_m" {
		t.Errorf("German: got %q", s)
	}
}

func TestParse(t *testing.T) {
	f := NewQuantityFormat()
	for _, test := range []struct {
		input    string
		implicit AnyUnit
		dims     []Dimension
		value    float64
		unit     AnyUnit
	}{
		{"1.5 km", AnyUnit{}, nil, 1.5, Kilometer.Any()},
		{"1,5 km", AnyUnit{}, nil, 1.5, Kilometer.Any()},
		{"  -3ft ", AnyUnit{}, nil, -3, Foot.Any()},
		{"12", Meter.Any(), nil, 12, Meter.Any()},
		{"1.5 km", AnyUnit{}, nil, 1.5, Kilometer.Any()},
		{"10 sec", AnyUnit{}, []Dimension{DimensionTime}, 10, Second.Any()},
		{"10 sec", AnyUnit{}, []Dimension{DimensionAngle}, 10, Arcsecond.Any()},
		{"12:30", AnyUnit{}, []Dimension{DimensionTime}, 12.5, Hour.Any()},
		{"-1:30:36", AnyUnit{}, []Dimension{DimensionTime}, -1.51, Hour.Any()},
		{"49° 30′", AnyUnit{}, []Dimension{DimensionAngle}, 49.5, Degree.Any()},
		{"49 30 36", AnyUnit{}, []Dimension{DimensionAngle}, 49.51, Degree.Any()},
		{"-49 30", Degree.Any(), nil, -49.5, Degree.Any()},
		{"30′ 36″", AnyUnit{}, []Dimension{DimensionAngle}, 0.51, Degree.Any()},
		{"1 km + 250 m", AnyUnit{}, []Dimension{DimensionLength}, 1.25, Kilometer.Any()},
		{"(3 + 4) * 2 ft", AnyUnit{}, []Dimension{DimensionLength}, 14, Foot.Any()},
		{"(1 + 2) m", AnyUnit{}, nil, 3, Meter.Any()},
		{"1 + 2", Meter.Any(), nil, 3, Meter.Any()},
		{"2 * (1 m - 25 cm)", AnyUnit{}, nil, 1.5, Meter.Any()},
		{"10 km/h + 5", AnyUnit{}, []Dimension{DimensionSpeed}, 15, KilometerPerHour.Any()},
		{"2 + 3 * 4 m", AnyUnit{}, nil, 14, Meter.Any()},
		{"-(2 m)", AnyUnit{}, nil, -2, Meter.Any()},
	} {
		v, err := f.ParseVariant(test.input, test.implicit, test.dims...)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		if v.Unit() != test.unit {
			t.Errorf("%q: got unit %s, expected %s", test.input, v.Unit().Name(), test.unit.Name())
		}
		if math.Abs(v.Value()-test.value) > 1e-9 {
			t.Errorf("%q: got %.12g, expected %g", test.input, v.Value(), test.value)
		}
	}

	for _, test := range []struct {
		input    string
		implicit AnyUnit
		dims     []Dimension
		err      error
	}{
		{"", AnyUnit{}, nil, ErrEmptyInput},
		{"   ", Meter.Any(), nil, ErrEmptyInput},
		{"5 kg", AnyUnit{}, nil, ErrUnknownUnit},
		{"ft", Meter.Any(), nil, ErrInvalidQuantity},
		{"12", AnyUnit{}, nil, ErrInvalidQuantity},
		{"5 km", AnyUnit{}, []Dimension{DimensionAngle}, ErrUnknownUnit},
		{"2 m * 3 m", AnyUnit{}, nil, ErrUnsupportedOperation},
		{"2 m + 3 s", AnyUnit{}, nil, ErrIncompatibleDimension},
		{"(2 + 3", Meter.Any(), nil, ErrInvalidQuantity},
		{"1 + 2", AnyUnit{}, []Dimension{DimensionLength}, ErrInvalidQuantity},
	} {
		if _, err := f.ParseVariant(test.input, test.implicit, test.dims...); !errors.Is(err, test.err) {
			t.Errorf("%q: got error %v, expected %v", test.input, err, test.err)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	f := NewQuantityFormat()

	q, err := ParseQuantity(f, "250 m", Kilometer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Unit() != Meter || q.Value() != 250 {
		t.Errorf("got %v, expected 250 m", q)
	}

	if _, err := ParseQuantity(f, "250 s", Kilometer); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("time as length: got error %v, expected ErrUnknownUnit", err)
	}

	a, err := f.MakeAngle("-8°", "30'", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(a.Value()+8.5) > 1e-12 || a.Unit() != Degree {
		t.Errorf("MakeAngle: got %v, expected -8.5°", a.Value())
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, style := range []AngleStyle{DecimalDegrees, DegreeDecimalMinute, DegreeMinuteSecond} {
		f := NewQuantityFormat().WithAngleStyle(style).WithSignificantDigits(16).WithMaximumFractionDigits(6)
		for _, deg := range []float64{0, 1, -1, 49.0123, -122.4194, 179.999, 0.5} {
			s := f.Format(Of(deg, Degree))
			q, err := ParseQuantity(f, s, Degree)
			if err != nil {
				t.Errorf("%s %v: %q: unexpected error: %v", style, deg, s, err)
				continue
			}
			if d := q.ConvertTo(Degree).Value(); math.Abs(d-deg) > 1e-6 {
				t.Errorf("%s %v: %q parsed as %v", style, deg, s, d)
			}
		}
	}
}
