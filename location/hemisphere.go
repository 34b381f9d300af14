// location/hemisphere.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package location

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// hemispheres holds the letters used to mark the hemisphere of a
// coordinate in a given language.
type hemispheres struct {
	N, S, E, W string
}

var hemisphereLetters = map[string]hemispheres{
	"en": {N: "N", S: "S", E: "E", W: "W"},
	"de": {N: "N", S: "S", E: "O", W: "W"},
	"fr": {N: "N", S: "S", E: "E", W: "O"},
}

func hemispheresFor(tag language.Tag) hemispheres {
	base, _ := tag.Base()
	if h, ok := hemisphereLetters[base.String()]; ok {
		return h
	}
	return hemisphereLetters["en"]
}

// pattern returns a regular expression alternation matching any of the
// letters.
func (h hemispheres) pattern() string {
	var letters []string
	for _, l := range []string{h.N, h.S, h.E, h.W} {
		l = regexp.QuoteMeta(l)
		if !slices.Contains(letters, l) {
			letters = append(letters, l)
		}
	}
	return strings.Join(letters, "|")
}

// negative reports whether the letter marks a southern or western
// coordinate.
func (h hemispheres) negative(letter string) bool {
	return letter != "" && (letter == h.S || letter == h.W)
}
