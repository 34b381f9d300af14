// cmd/coordfmt/format.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/missioncontrol/measure/location"
	"github.com/missioncontrol/measure/measure"

	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	var optLocal bool

	cmd := &cobra.Command{
		Use:   "format <lat> <lon> [altitude]",
		Short: "Format a location given as numbers",
		Long: `Format a location given as decimal degrees of latitude and longitude,
or as X and Y in meters with --local. Each argument is parsed as a
quantity in the configured locale, so "8,5" works with --locale=de and the
altitude may carry its own unit (e.g. "1200 ft"); it defaults to meters.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.locationFromArgs(args, optLocal)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.lf.Format(l))
			return nil
		},
	}

	cmd.Flags().BoolVar(&optLocal, "local", false, "the arguments are local X, Y and Z coordinates")
	return cmd
}

func (a *app) locationFromArgs(args []string, local bool) (location.Location, error) {
	var l location.Location
	if local {
		x, err := measure.ParseQuantity(a.qf, args[0], measure.Meter)
		if err != nil {
			return l, fmt.Errorf("x: %w", err)
		}
		y, err := measure.ParseQuantity(a.qf, args[1], measure.Meter)
		if err != nil {
			return l, fmt.Errorf("y: %w", err)
		}
		l = location.Local(x, y)
	} else {
		lat, err := measure.ParseQuantity(a.qf, args[0], measure.Degree)
		if err != nil {
			return l, fmt.Errorf("latitude: %w", err)
		}
		lon, err := measure.ParseQuantity(a.qf, args[1], measure.Degree)
		if err != nil {
			return l, fmt.Errorf("longitude: %w", err)
		}
		l = location.Geographic(lat, lon)
	}

	if len(args) == 3 {
		z, err := measure.ParseQuantity(a.qf, args[2], measure.Meter)
		if err != nil {
			return l, fmt.Errorf("altitude: %w", err)
		}
		l.SetZ(z)
	}
	return l, nil
}
