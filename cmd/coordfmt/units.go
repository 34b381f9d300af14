// cmd/coordfmt/units.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"

	"github.com/missioncontrol/measure/measure"
	"github.com/missioncontrol/measure/util"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units [dimension]",
		Short: "List the unit presets",
		Long: `Print the unit presets as JSON, in their usual order, with the preferred
and allowed units of each for the configured system of measurement and
locale. An optional dimension (e.g. length or angle) limits the list to
presets of that dimension.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := measure.Presets()
			if len(args) == 1 {
				d, ok := measure.ParseDimension(args[0])
				if !ok {
					return fmt.Errorf("%s: unknown dimension", args[0])
				}
				presets = util.FilterSlice(presets, func(p measure.Preset) bool {
					return p.Info.Dimension() == d
				})
			}

			table := orderedmap.New()
			for _, p := range presets {
				table.Set(p.Name, unitsEntry(p.Info, a.qf.System, a.qf.Locale))
			}
			table.SetEscapeHTML(false)

			b, err := json.MarshalIndent(table, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func unitsEntry(info measure.AnyUnitInfo, sys measure.SystemOfMeasurement, tag language.Tag) *orderedmap.OrderedMap {
	symbol := func(u measure.AnyUnit) string { return u.DisplaySymbol(tag).Text }

	e := orderedmap.New()
	e.Set("dimension", info.Dimension().String())
	e.Set("preferred", symbol(info.PreferredAnyUnit(sys)))
	e.Set("allowed", util.MapSlice(info.AllowedAnyUnits(sys), symbol))
	return e
}
