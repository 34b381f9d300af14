// cmd/coordfmt/parse.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"strings"

	"github.com/missioncontrol/measure/location"

	"github.com/goforj/godump"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var optDump, optSplit bool

	cmd := &cobra.Command{
		Use:   "parse <location>...",
		Short: "Parse locations and print them in the configured notation",
		Long: `Parse each argument as a location and print it back in the configured
locale and angle style. With --dump the decoded position (or the local
X/Y/Z vector) is printed as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			var failed int
			for _, arg := range args {
				l, err := a.lf.Parse(arg)
				if err != nil {
					a.lg.Warn("unable to parse location", "input", arg, "error", err)
					fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
					failed++
					continue
				}

				if optSplit {
					fmt.Fprintln(w, strings.Join(a.lf.SplitFormat(l), "\n"))
				} else {
					fmt.Fprintln(w, a.lf.Format(l))
				}
				if optDump {
					dumpLocation(cmd, l)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d locations could not be parsed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&optDump, "dump", false, "dump the decoded coordinates")
	cmd.Flags().BoolVar(&optSplit, "split", false, "print each coordinate on its own line")
	return cmd
}

func dumpLocation(cmd *cobra.Command, l location.Location) {
	if l.IsGeographic() {
		if p, err := l.ToPosition(); err == nil {
			godump.Fdump(cmd.OutOrStdout(), p)
			return
		}
	}
	if v, err := l.ToVec4(); err == nil {
		godump.Fdump(cmd.OutOrStdout(), v)
	}
}
