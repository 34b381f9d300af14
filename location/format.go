// location/format.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package location

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/missioncontrol/measure/log"
	"github.com/missioncontrol/measure/measure"
)

// Format converts between locations and text. It is an immutable value
// and may be shared between goroutines.
type Format struct {
	qf measure.QuantityFormat
	lg *log.Logger
}

// NewFormat returns a Format for the default locale and the given angle
// style.
func NewFormat(style measure.AngleStyle) Format {
	return NewFormatFor(measure.DefaultFormat.WithAngleStyle(style), nil)
}

// NewFormatFor returns a Format that takes its locale, system of
// measurement and angle style from qf. Altitudes and local coordinates
// are written with up to two fraction digits. lg may be nil.
func NewFormatFor(qf measure.QuantityFormat, lg *log.Logger) Format {
	return Format{
		qf: qf.WithSignificantDigits(16).WithMaximumFractionDigits(2),
		lg: lg,
	}
}

func (f Format) AngleStyle() measure.AngleStyle { return f.qf.AngleStyle }

func (f Format) WithAngleStyle(s measure.AngleStyle) Format {
	f.qf = f.qf.WithAngleStyle(s)
	return f
}

// QuantityFormat returns the format used for the individual coordinates.
func (f Format) QuantityFormat() measure.QuantityFormat { return f.qf }

// angleDigits gives the number of fraction digits of the last field of an
// angle; each gives a resolution of roughly 10cm at the equator.
func angleDigits(s measure.AngleStyle) int {
	switch s {
	case measure.DegreeMinuteSecond:
		return 2
	case measure.DegreeDecimalMinute:
		return 4
	default:
		return 6
	}
}

// SplitFormat returns the text of each coordinate of l: latitude and
// longitude with their hemisphere letters, or X= and Y= for local
// coordinates, followed by the altitude if l has one.
func (f Format) SplitFormat(l Location) []string {
	if !l.IsValid() {
		return nil
	}

	var parts []string
	if l.IsGeographic() {
		hemi := hemispheresFor(f.qf.Locale)
		af := f.qf.WithMaximumFractionDigits(angleDigits(f.qf.AngleStyle))

		coord := func(v measure.VariantQuantity, pos, neg string) string {
			if v.Value() < 0 {
				return af.Format(v.Negate()) + " " + neg
			}
			return af.Format(v) + " " + pos
		}
		parts = append(parts, coord(l.x, hemi.N, hemi.S), coord(l.y, hemi.E, hemi.W))
		if z, ok := l.Z(); ok {
			parts = append(parts, f.qf.Format(z))
		}
	} else {
		parts = append(parts, "X="+f.qf.Format(l.x), "Y="+f.qf.Format(l.y))
		if z, ok := l.Z(); ok {
			parts = append(parts, "Z="+f.qf.Format(z))
		}
	}
	return parts
}

func (f Format) Format(l Location) string {
	return strings.Join(f.SplitFormat(l), " ")
}

// Parse parses a location. The notations accepted, tried in order, are:
// degrees, minutes and seconds, degrees and decimal minutes, and decimal
// degrees, each with an altitude and then each without; then local X Y Z
// and Y X Z coordinates (optionally labeled as in "X=1 m"), then the same
// without Z. Finally the aviation notations "N40.37.58.400, W073.46.17.000"
// and ISO 6709 "+403758.400-0734617.000" are accepted.
//
// Angular coordinates may carry hemisphere letters; S and W make the
// coordinate negative. A leading W or a trailing N means the longitude was
// given first.
func (f Format) Parse(input string) (Location, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Location{}, ErrEmptyInput
	}

	gs := grammarsFor(f.qf.Locale)
	var buildErr error
	for _, g := range gs.grammars {
		m := g.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}

		l, err := g.build(f, gs.hemi, m)
		if err != nil {
			f.lg.Debug("location grammar matched with invalid fields", slog.String("grammar", g.name),
				slog.String("input", s), slog.Any("error", err))
			buildErr = err
			continue
		}
		f.lg.Debug("parsed location", slog.String("grammar", g.name), slog.String("input", s))
		return l, nil
	}

	if l, ok := tryParseDotted(s); ok {
		f.lg.Debug("parsed location", slog.String("grammar", "dotted"), slog.String("input", s))
		return l, nil
	}
	if l, ok, err := tryParseISO6709(s); ok {
		if err == nil {
			f.lg.Debug("parsed location", slog.String("grammar", "iso6709"), slog.String("input", s))
		}
		return l, err
	}

	f.lg.Debug("rejected location", slog.String("input", s))
	if buildErr != nil {
		return Location{}, fmt.Errorf("%w %q: %w", ErrInvalidLocation, input, buildErr)
	}
	return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, input)
}
