// location/format_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package location

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/missioncontrol/measure/log"
	vmath "github.com/missioncontrol/measure/math"
	"github.com/missioncontrol/measure/measure"

	"golang.org/x/text/language"
)

func nnbsp(s string) string { return strings.ReplaceAll(s, "\u202f", "_") }

func latLon(t *testing.T, l Location) (float64, float64) {
	t.Helper()
	lat, err := GetX[measure.Angle](l)
	if err != nil {
		t.Fatalf("latitude: %v", err)
	}
	lon, err := GetY[measure.Angle](l)
	if err != nil {
		t.Fatalf("longitude: %v", err)
	}
	return lat.ConvertTo(measure.Degree).Value(), lon.ConvertTo(measure.Degree).Value()
}

func TestFormat(t *testing.T) {
	geo := Geographic3(measure.Of(49.0123, measure.Degree), measure.Of(-8.5, measure.Degree),
		measure.Of(100, measure.Meter))
	german := measure.NewQuantityFormat().WithLocale(language.German)
	french := measure.NewQuantityFormat().WithLocale(language.French)

	for _, test := range []struct {
		f        Format
		l        Location
		expected string
	}{
		{NewFormat(measure.DecimalDegrees), geo, "49.0123° N 8.5° W 100_m"},
		{NewFormat(measure.DegreeDecimalMinute), geo, "49° 0.738′ N 8° 30′ W 100_m"},
		{NewFormat(measure.DegreeMinuteSecond), geo, "49° 0′ 44.28″ N 8° 30′ 0″ W 100_m"},
		{NewFormat(measure.DecimalDegrees), FromLatLon(-0.5, 0), "0.5° S 0° E"},
		{NewFormat(measure.DecimalDegrees), FromLatLon(1.0/3, 2.0/3), "0.333333° N 0.666667° E"},
		{NewFormatFor(german, nil), FromLatLon(49.5, 8.25), "49,5° N 8,25° O"},
		{NewFormatFor(french, nil), FromLatLon(49.5, -8.25), "49,5° N 8,25° O"},
		{NewFormat(measure.DegreeMinuteSecond),
			Local3(measure.Of(10, measure.Meter), measure.Of(20.125, measure.Meter), measure.Of(-5, measure.Meter)),
			"X=10_m Y=20.12_m Z=-5_m"},
		{NewFormat(measure.DecimalDegrees), Location{}, ""},
	} {
		if s := nnbsp(test.f.Format(test.l)); s != test.expected {
			t.Errorf("%s: got %q, expected %q", test.f.AngleStyle(), s, test.expected)
		}
	}

	if parts := NewFormat(measure.DecimalDegrees).SplitFormat(geo); len(parts) != 3 || parts[1] != "8.5° W" {
		t.Errorf("SplitFormat: got %q", parts)
	}
	if s := FromLatLon(1, 2).String(); s != "1° N 2° E" {
		t.Errorf("String: got %q", s)
	}
	if f := NewFormat(measure.DecimalDegrees).WithAngleStyle(measure.DegreeMinuteSecond); f.AngleStyle() != measure.DegreeMinuteSecond {
		t.Errorf("WithAngleStyle: got %s", f.AngleStyle())
	}
}

func TestParse(t *testing.T) {
	english := NewFormat(measure.DecimalDegrees)
	german := NewFormatFor(measure.NewQuantityFormat().WithLocale(language.German), nil)
	french := NewFormatFor(measure.NewQuantityFormat().WithLocale(language.French), nil)

	for _, test := range []struct {
		f        Format
		input    string
		lat, lon float64
	}{
		{english, "8.5 E 49.0 N", 49, 8.5},
		{english, "49.0 N 8.5 E", 49, 8.5},
		{english, "49.0123 N 8.5432 E", 49.0123, 8.5432},
		{english, "  49.0123 8.5432 ", 49.0123, 8.5432},
		{english, "49.5,8.25", 49.5, 8.25},
		{english, "49.5; -8.25", 49.5, -8.25},
		{english, "49.5 S 8.25 W", -49.5, -8.25},
		{english, "8.25 W 49.5 S", -49.5, -8.25},
		{english, "-49.5 S 8.25 E", -49.5, 8.25},
		// The coordinates are only swapped on a leading W or a trailing N.
		{english, "8.5 E 49 S", 8.5, -49},
		{english, "49° 30′ 36″ N 8° 15′ 0″ E", 49.51, 8.25},
		{english, "49 30 36 N 8 15 0 E", 49.51, 8.25},
		{english, "49 30 36 8 15 0", 49.51, 8.25},
		{english, "-49° 30′ 36″, 8° 15′ 0″", -49.51, 8.25},
		{english, "49° 30.6′ N, 8° 15′ E", 49.51, 8.25},
		{english, "49 30.6 8 15", 49.51, 8.25},
		{english, "49deg 30arcmin 36arcsec N 8deg 15arcmin 0arcsec E", 49.51, 8.25},
		{german, "49,5 8,25", 49.5, 8.25},
		{german, "49,5 N 8,25 O", 49.5, 8.25},
		{german, "49,5, 8,25", 49.5, 8.25},
		{french, "49,5 N 8,25 O", 49.5, -8.25},
		{english, "N40.37.58.400, W073.46.17.000", 40.6328888, -73.7713888},
		{english, "S40.37.58.4,E073.46.17.0", -40.6328888, 73.7713888},
		{english, "+403758.400-0734617.000", 40.6328888, -73.7713888},
		{english, "-003758.400+0734617.000/", -0.6328888, 73.7713888},
	} {
		l, err := test.f.Parse(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		lat, lon := latLon(t, l)
		if math.Abs(lat-test.lat) > 1e-6 || math.Abs(lon-test.lon) > 1e-6 {
			t.Errorf("%q: got (%v, %v), expected (%v, %v)", test.input, lat, lon, test.lat, test.lon)
		}
		if _, ok := l.Z(); ok {
			t.Errorf("%q: unexpected altitude", test.input)
		}
	}

	for _, test := range []struct {
		input string
		err   error
	}{
		{"", ErrEmptyInput},
		{"   ", ErrEmptyInput},
		{"not a coordinate", ErrInvalidLocation},
		{"49.5", ErrInvalidLocation},
		{"49.5 N", ErrInvalidLocation},
		{"N40.37.58, W073.46.17.000", ErrInvalidLocation},
		{"+403758.400-0734617.000 extra", ErrInvalidLocation},
	} {
		if _, err := english.Parse(test.input); !errors.Is(err, test.err) {
			t.Errorf("%q: got error %v, expected %v", test.input, err, test.err)
		}
	}
}

func TestParseAltitudeAndLocal(t *testing.T) {
	f := NewFormat(measure.DecimalDegrees)

	for _, test := range []struct {
		input    string
		lat, lon float64
		alt      float64 // meters
	}{
		{"49.5 N 8.25 E 120 m", 49.5, 8.25, 120},
		{"49.5; 8.25; -12.5", 49.5, 8.25, -12.5},
		{"49.5 8.25 1000 ft", 49.5, 8.25, 304.8},
		{"49 30 N 8 15 E 2 km", 49.5, 8.25, 2000},
		{"49° 30′ 0″ N 8° 15′ 0″ E 10 m", 49.5, 8.25, 10},
	} {
		l, err := f.Parse(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		lat, lon := latLon(t, l)
		z, ok := l.Z()
		if !ok {
			t.Errorf("%q: no altitude", test.input)
			continue
		}
		if math.Abs(lat-test.lat) > 1e-9 || math.Abs(lon-test.lon) > 1e-9 ||
			math.Abs(z.ConvertTo(measure.Meter).Value()-test.alt) > 1e-9 {
			t.Errorf("%q: got (%v, %v, %v), expected (%v, %v, %v)", test.input, lat, lon, z.Value(),
				test.lat, test.lon, test.alt)
		}
	}

	for _, test := range []struct {
		input    string
		expected [3]float64
	}{
		{"X=10 m Y=20 m Z=5 m", [3]float64{10, 20, 5}},
		{"x: 10, y: 20, z: 5", [3]float64{10, 20, 5}},
		{"y: 20, x: 10, z: 5", [3]float64{10, 20, 5}},
		{"10 m 20 m 5 m", [3]float64{10, 20, 5}},
		{"10 ft; 20 ft; 1 km", [3]float64{3.048, 6.096, 1000}},
	} {
		l, err := f.Parse(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		v, err := l.ToVec4()
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		for i := range 3 {
			if math.Abs(v[i]-test.expected[i]) > 1e-9 {
				t.Errorf("%q: got %v, expected %v", test.input, v, test.expected)
				break
			}
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	alts := []float64{-100, 0, 1234.56, 10000}

	for _, style := range []measure.AngleStyle{measure.DecimalDegrees, measure.DegreeDecimalMinute,
		measure.DegreeMinuteSecond} {
		tolerance := 1e-6
		if style == measure.DegreeMinuteSecond {
			tolerance = 2e-6
		}

		for _, tag := range []language.Tag{language.English, language.German} {
			f := NewFormatFor(measure.NewQuantityFormat().WithLocale(tag).WithAngleStyle(style), nil)

			for _, lat := range []float64{-90, -45.123456, -0.5, 0, 12.345678, 49.0123, 89.9999999, 90} {
				for _, lon := range []float64{-180, -122.4194, -0.0001, 0, 8.5432, 179.99} {
					for i := -1; i < len(alts); i++ {
						l := FromLatLon(lat, lon)
						if i >= 0 {
							l.SetZ(measure.Of(alts[i], measure.Meter))
						}

						s := f.Format(l)
						p, err := f.Parse(s)
						if err != nil {
							t.Errorf("%s %s: %q: unexpected error: %v", tag, style, s, err)
							continue
						}

						plat, plon := latLon(t, p)
						if math.Abs(plat-lat) > tolerance || math.Abs(plon-lon) > tolerance {
							t.Errorf("%s %s: %q parsed as (%v, %v), expected (%v, %v)", tag, style, s,
								plat, plon, lat, lon)
						}

						z, ok := p.Z()
						if ok != (i >= 0) {
							t.Errorf("%s %s: %q: altitude presence %v", tag, style, s, ok)
						} else if ok && math.Abs(z.ConvertTo(measure.Meter).Value()-alts[i]) > 0.01 {
							t.Errorf("%s %s: %q: altitude %v, expected %v", tag, style, s, z.Value(), alts[i])
						}
					}
				}
			}
		}
	}
}

func TestLocalRoundTrip(t *testing.T) {
	f := NewFormat(measure.DecimalDegrees)
	for _, l := range []Location{
		Local3(measure.Of(10, measure.Meter), measure.Of(-20.5, measure.Meter), measure.Of(5, measure.Meter)),
		Local3(measure.Of(1.5, measure.Kilometer), measure.Of(3, measure.Foot), measure.Of(0, measure.Meter)),
		Local(measure.Of(10, measure.Meter), measure.Of(20, measure.Meter)),
		Local(measure.Of(1.5, measure.Kilometer), measure.Of(-3, measure.Foot)),
	} {
		s := f.Format(l)
		p, err := f.Parse(s)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", s, err)
			continue
		}
		if !p.Equal(l) {
			t.Errorf("%q: parsed as %v", s, p)
		}
		_, hasZ := l.Z()
		if _, ok := p.Z(); ok != hasZ {
			t.Errorf("%q: altitude presence %v, expected %v", s, ok, hasZ)
		}
	}

	for _, test := range []struct {
		input string
		x, y  float64
	}{
		{"X=10 m Y=20 m", 10, 20},
		{"y: 20 m; x: 10 m", 10, 20},
		{"10 m, 20 m", 10, 20},
	} {
		l, err := f.Parse(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		if _, ok := l.Z(); ok {
			t.Errorf("%q: unexpected altitude", test.input)
		}
		if v, err := l.ToVec4(); err != nil {
			t.Errorf("%q: %v", test.input, err)
		} else if v != (vmath.Vec4{test.x, test.y, 0, 1}) {
			t.Errorf("%q: got %v, expected (%v, %v)", test.input, v, test.x, test.y)
		}
	}
}

func TestParseLogging(t *testing.T) {
	var buf bytes.Buffer
	lg := log.NewWithWriter(&buf, "debug")
	f := NewFormatFor(measure.NewQuantityFormat(), lg)

	if _, err := f.Parse("49.5 N 8.25 E"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"grammar":"dd2"`) {
		t.Errorf("matched grammar not logged: %s", buf.String())
	}

	buf.Reset()
	if _, err := f.Parse("nowhere"); err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(buf.String(), "rejected location") {
		t.Errorf("rejected input not logged: %s", buf.String())
	}
}
