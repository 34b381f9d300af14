// measure/unit_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"errors"
	"regexp"
	"testing"

	"golang.org/x/text/language"
)

func TestRegistry(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Dimensions() {
		units := Units(d)
		if len(units) == 0 {
			t.Errorf("%s: no units registered", d)
		}
		for _, u := range units {
			if u.Dimension() != d {
				t.Errorf("%s: registered under %s", u.Name(), d)
			}
			if seen[u.Name()] {
				t.Errorf("%s: duplicate unit name", u.Name())
			}
			seen[u.Name()] = true

			if n, ok := UnitByName(u.Name()); !ok || n != u {
				t.Errorf("%s: UnitByName returned %v", u.Name(), n)
			}
			if len(u.NeutralSymbols()) == 0 {
				t.Errorf("%s: no neutral symbols", u.Name())
			}
		}
	}

	if len(UnitsOf[Angle]()) != len(Units(DimensionAngle)) {
		t.Errorf("UnitsOf and Units disagree")
	}
	if d, ok := ParseDimension("angularspeed"); !ok || d != DimensionAngularSpeed {
		t.Errorf("ParseDimension: got %v, %v", d, ok)
	}
	if (AnyUnit{}).IsValid() {
		t.Errorf("zero AnyUnit is valid")
	}
}

func TestParseSymbol(t *testing.T) {
	for _, test := range []struct {
		symbol   string
		tag      language.Tag
		dims     []Dimension
		expected []AnyUnit
	}{
		{"ft", language.English, []Dimension{DimensionLength}, []AnyUnit{Foot.Any()}},
		{"'", language.German, []Dimension{DimensionLength}, []AnyUnit{Foot.Any()}},
		{"'", language.German, []Dimension{DimensionAngle}, []AnyUnit{Arcminute.Any()}},
		{"KM", language.English, []Dimension{DimensionLength}, []AnyUnit{Kilometer.Any()}},
		{"M", language.English, []Dimension{DimensionLength}, []AnyUnit{Meter.Any()}},
		{"sec", language.English, nil, []AnyUnit{Arcsecond.Any(), Second.Any()}},
		{"sec", language.English, []Dimension{DimensionTime}, []AnyUnit{Second.Any()}},
		{"mph", language.English, []Dimension{DimensionSpeed}, []AnyUnit{MilePerHour.Any()}},
		{"mi/h", language.German, []Dimension{DimensionSpeed}, []AnyUnit{MilePerHour.Any()}},
		{"°/s", language.English, nil, []AnyUnit{DegreePerSecond.Any()}},
		{"TiB", language.English, nil, []AnyUnit{Tebibyte.Any()}},
		{"KiB", language.English, nil, []AnyUnit{Kibibyte.Any()}},
	} {
		units, err := ParseSymbol(test.symbol, test.tag, test.dims...)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.symbol, err)
			continue
		}
		if len(units) != len(test.expected) {
			t.Errorf("%q: got %v, expected %v", test.symbol, units, test.expected)
			continue
		}
		for i := range units {
			if units[i] != test.expected[i] {
				t.Errorf("%q: got %s, expected %s", test.symbol, units[i].Name(), test.expected[i].Name())
			}
		}
	}

	for _, test := range []struct {
		symbol string
		tag    language.Tag
		dims   []Dimension
	}{
		{"", language.English, nil},
		{"furlong", language.English, nil},
		{"mph", language.German, []Dimension{DimensionSpeed}},
		{"km", language.English, []Dimension{DimensionAngle}},
	} {
		if _, err := ParseSymbol(test.symbol, test.tag, test.dims...); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("%q: got error %v, expected ErrUnknownUnit", test.symbol, err)
		}
	}

	if u, err := ParseUnitSymbol[Speed]("kt", language.English); err != nil || u != Knot {
		t.Errorf("ParseUnitSymbol: got %v, %v", u, err)
	}
}

func TestDisplaySymbol(t *testing.T) {
	if s := KilometerPerHour.DisplaySymbol(language.English); s.Text != "kph" || !s.Space {
		t.Errorf("English km/h: got %+v", s)
	}
	if s := KilometerPerHour.DisplaySymbol(language.German); s.Text != "km/h" {
		t.Errorf("German km/h: got %+v", s)
	}
	if s := Degree.DisplaySymbol(language.English); s.Text != "°" || s.Space {
		t.Errorf("degree: got %+v", s)
	}
	if s := Inch.DisplaySymbol(language.AmericanEnglish); s.Text != "in" {
		t.Errorf("en-US inch: got %+v", s)
	}
}

func TestSymbolPattern(t *testing.T) {
	re := regexp.MustCompile(`^(?:` + SymbolPattern(language.English, Arcminute.Any(), Arcsecond.Any()) + `)$`)
	for _, s := range []string{"′", "'", "arcmin", "am", "″", "\"", "arcsec", "s"} {
		if !re.MatchString(s) {
			t.Errorf("%q: not matched", s)
		}
	}
	for _, s := range []string{"", "°", "arc", "a.m"} {
		if re.MatchString(s) {
			t.Errorf("%q: unexpectedly matched", s)
		}
	}
}
