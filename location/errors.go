// location/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package location

import "errors"

var (
	ErrEmptyInput            = errors.New("Empty location text")
	ErrInvalidDimension      = errors.New("Coordinates must both be angles or both be lengths")
	ErrInvalidLocation       = errors.New("Invalid location")
	ErrWrongCoordinateFamily = errors.New("Wrong coordinate family")
)
