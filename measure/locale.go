// measure/locale.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var decimalSeparators sync.Map // localeKey -> string

// DecimalSeparator returns the decimal separator used for numbers in the
// given locale, e.g. "." for English and "," for German.
func DecimalSeparator(tag language.Tag) string {
	key := localeKey(tag)
	if sep, ok := decimalSeparators.Load(key); ok {
		return sep.(string)
	}

	s := message.NewPrinter(tag).Sprintf("%.1f", 1.5)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
	if s == "" {
		s = "."
	}

	decimalSeparators.Store(key, s)
	return s
}
