// location/grammar.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package location

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/missioncontrol/measure/measure"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
)

// grammar is one of the notations accepted by Format.Parse. Angular
// grammars capture, per coordinate, up to three sexagesimal fields and an
// optional hemisphere letter, then optionally an altitude.
type grammar struct {
	name   string
	re     *regexp.Regexp
	local  bool // lengths rather than angles
	fields int  // sexagesimal fields per angular coordinate
	alt    bool
	swapXY bool // local grammar giving y before x
}

// grammarSet is the list of grammars for one locale, in priority order.
type grammarSet struct {
	hemi     hemispheres
	grammars []grammar
}

var grammarCache = func() *lru.Cache[string, *grammarSet] {
	c, err := lru.New[string, *grammarSet](16)
	if err != nil {
		panic(err)
	}
	return c
}()

func grammarsFor(tag language.Tag) *grammarSet {
	key := tag.String()
	if gs, ok := grammarCache.Get(key); ok {
		return gs
	}
	gs := buildGrammars(tag)
	grammarCache.Add(key, gs)
	return gs
}

func buildGrammars(tag language.Tag) *grammarSet {
	const (
		ws  = measure.Whitespace
		num = `[0-9]*[.,]?[0-9]+`
	)
	hemi := hemispheresFor(tag)

	// With a decimal comma, a comma only separates coordinates if
	// whitespace follows it.
	comma := `,`
	if measure.DecimalSeparator(tag) == "," {
		comma = `,` + ws
	}

	degSym := measure.SymbolPattern(tag, measure.Degree.Any())
	minSym := measure.SymbolPattern(tag, measure.Arcminute.Any())
	secSym := measure.SymbolPattern(tag, measure.Arcsecond.Any())
	lenSym := measure.DimensionSymbolPattern(tag, measure.DimensionLength)

	var (
		// Leading sexagesimal fields are integers followed by their symbol
		// or by whitespace.
		deg    = `([-+]?[0-9]+` + ws + `*(?:` + degSym + `|` + ws + `+))`
		intMin = `([0-9]+` + ws + `*(?:` + minSym + `|` + ws + `+))`

		decDeg = `([-+]?` + num + ws + `*(?:` + degSym + `)?)`
		decMin = `(` + num + ws + `*(?:` + minSym + `)?)`
		decSec = `(` + num + ws + `*(?:` + secSym + `)?)`

		letter = ws + `*(` + hemi.pattern() + `)?`
		sep    = ws + `*(?:[;\s\x{00A0}\x{202F}]|` + comma + `)` + ws + `*`
		alt    = `([-+]?` + num + ws + `*(?:` + lenSym + `)?)`
		end    = ws + `*$`
	)

	angular := func(name string, fields int, coord string, withAlt bool) grammar {
		expr := `^` + ws + `*` + coord + letter + sep + coord + letter
		if withAlt {
			expr += sep + alt
		}
		return grammar{name: name, re: regexp.MustCompile(expr + end), fields: fields, alt: withAlt}
	}

	dms := deg + ws + `*` + intMin + ws + `*` + decSec
	dmm := deg + ws + `*` + decMin

	// Local coordinates are separated by ';', ',' or whitespace unless the
	// next one is labeled.
	localSep := func(label string) string {
		return `(?:` + ws + `*[;,]?` + ws + `*[` + label + strings.ToLower(label) + `]` + ws + `*[:=]` + ws + `*|` +
			ws + `*(?:;|` + comma + `)` + ws + `*|` + ws + `+)`
	}
	local := func(name string, first, second string, swap, withZ bool) grammar {
		expr := `^` + ws + `*(?:[` + first + strings.ToLower(first) + `]` + ws + `*[:=])?` + ws + `*` + alt +
			localSep(second) + alt
		if withZ {
			expr += localSep("Z") + alt
		}
		return grammar{name: name, re: regexp.MustCompile(expr + end), local: true, alt: withZ, swapXY: swap}
	}

	return &grammarSet{
		hemi: hemi,
		grammars: []grammar{
			angular("dms3", 3, dms, true),
			angular("dmm3", 2, dmm, true),
			angular("dd3", 1, decDeg, true),
			angular("dms2", 3, dms, false),
			angular("dmm2", 2, dmm, false),
			angular("dd2", 1, decDeg, false),
			local("xyz", "X", "Y", false, true),
			local("yxz", "Y", "X", true, true),
			// Two-component local coordinates, as written for locations
			// without an altitude.
			local("xy", "X", "Y", false, false),
			local("yx", "Y", "X", true, false),
		},
	}
}

// build constructs the location from the submatches of g.
func (g grammar) build(f Format, hemi hemispheres, m []string) (Location, error) {
	if g.local {
		var q [3]measure.Quantity[measure.Length]
		n := 2
		if g.alt {
			n = 3
		}
		for i := range n {
			var err error
			if q[i], err = measure.ParseQuantity(f.qf, m[i+1], measure.Meter); err != nil {
				return Location{}, err
			}
		}
		if g.swapXY {
			q[0], q[1] = q[1], q[0]
		}
		if !g.alt {
			return Local(q[0], q[1]), nil
		}
		return Local3(q[0], q[1], q[2]), nil
	}

	var coords [2]measure.Quantity[measure.Angle]
	var letters [2]string
	for i := range coords {
		start := 1 + i*(g.fields+1)
		var fields [3]string
		copy(fields[:], m[start:start+g.fields])

		var err error
		if coords[i], err = f.qf.MakeAngle(fields[0], fields[1], fields[2]); err != nil {
			return Location{}, err
		}
		letters[i] = m[start+g.fields]
		if hemi.negative(letters[i]) {
			coords[i] = coords[i].Abs().Negate()
		}
	}

	lat, lon := coords[0], coords[1]
	if letters[0] == hemi.W || letters[1] == hemi.N {
		lat, lon = lon, lat
	}

	l := Geographic(lat, lon)
	if g.alt {
		z, err := measure.ParseQuantity(f.qf, m[1+2*(g.fields+1)], measure.Meter)
		if err != nil {
			return Location{}, err
		}
		l.SetZ(z)
	}
	return l, nil
}

///////////////////////////////////////////////////////////////////////////
// Aviation notations

// Waypoints of the form "N40.37.58.400, W073.46.17.000".
func tryParseDotted(s string) (Location, bool) {
	if len(s) == 0 || (s[0] != 'N' && s[0] != 'S') {
		return Location{}, false
	}
	negateLatitude := s[0] == 'S'

	latitude, n, ok := tryParseDottedNumbers(s[1:])
	if !ok {
		return Location{}, false
	}
	s = s[1+n:]

	if len(s) == 0 || s[0] != ',' {
		return Location{}, false
	}
	s = strings.TrimLeft(s[1:], " ")

	if len(s) == 0 || (s[0] != 'E' && s[0] != 'W') {
		return Location{}, false
	}
	negateLongitude := s[0] == 'W'

	longitude, n, ok := tryParseDottedNumbers(s[1:])
	if !ok || 1+n != len(s) {
		return Location{}, false
	}

	if negateLatitude {
		latitude = -latitude
	}
	if negateLongitude {
		longitude = -longitude
	}
	return FromLatLon(latitude, longitude), true
}

// tryParseDottedNumbers parses ddd.mm.ss.fff, returning degrees and the
// number of bytes consumed.
func tryParseDottedNumbers(s string) (float64, int, bool) {
	scales := [4]float64{1, 60, 3600, 3600000}

	var ll float64
	n := 0
	for i := range 4 {
		end := strings.IndexAny(s, ".,")
		if end == -1 || i == 3 {
			end = strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
			if end == -1 {
				end = len(s)
			}
		}
		if end == 0 {
			return 0, 0, false
		}

		value := 0
		for _, ch := range s[:end] {
			if ch < '0' || ch > '9' {
				return 0, 0, false
			}
			value = 10*value + int(ch-'0')
		}
		if i == 3 {
			// The last group is a fraction, so .1 is handled like .100.
			for j := end; j < 3; j++ {
				value *= 10
			}
		}

		ll += float64(value) / scales[i]
		n += end
		s = s[end:]

		if i < 3 {
			if len(s) == 0 {
				return 0, 0, false
			}
			s = s[1:]
			n++
		}
	}
	return ll, n, true
}

// https://en.wikipedia.org/wiki/ISO_6709#String_expression_(Annex_H)
// e.g. +403527.580-0734452.955
var reISO6709H = regexp.MustCompile(`^([-+][0-9][0-9])([0-9][0-9])([0-9][0-9])\.([0-9][0-9][0-9])` +
	`([-+][0-9][0-9][0-9])([0-9][0-9])([0-9][0-9])\.([0-9][0-9][0-9])/?$`)

func tryParseISO6709(s string) (Location, bool, error) {
	strs := reISO6709H.FindStringSubmatch(s)
	if len(strs) != 9 {
		return Location{}, false, nil
	}

	parse := func(deg, min, sec, frac string) (float64, error) {
		var v [4]int
		for i, f := range []string{deg[1:], min, sec, frac} {
			var err error
			if v[i], err = strconv.Atoi(f); err != nil {
				return 0, err
			}
		}
		ll := float64(v[0]) + float64(v[1])/60 + float64(v[2])/3600 + float64(v[3])/3600000
		if deg[0] == '-' {
			ll = -ll
		}
		return ll, nil
	}

	lat, err := parse(strs[1], strs[2], strs[3], strs[4])
	if err != nil {
		return Location{}, true, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	lon, err := parse(strs[5], strs[6], strs[7], strs[8])
	if err != nil {
		return Location{}, true, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	return FromLatLon(lat, lon), true, nil
}
