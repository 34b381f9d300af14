// measure/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import "errors"

var (
	ErrEmptyInput            = errors.New("Empty input")
	ErrIncompatibleDimension = errors.New("Incompatible dimension")
	ErrInvalidQuantity       = errors.New("Invalid quantity")
	ErrInvalidUnitInfo       = errors.New("Invalid unit info")
	ErrUnknownUnit           = errors.New("Unknown unit symbol")
	ErrUnsupportedOperation  = errors.New("Unsupported operation")
)
