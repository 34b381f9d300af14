// cmd/coordfmt/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// coordfmt parses, formats and converts geographic coordinates and lists
// the unit presets known to the measure package.
//
// Settings may be given as flags, as COORDFMT_* environment variables, or
// in a coordfmt.yaml file in the current directory or the user's config
// directory.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"github.com/missioncontrol/measure/location"
	"github.com/missioncontrol/measure/log"
	"github.com/missioncontrol/measure/measure"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// app holds the state shared by the subcommands; it is filled in once
// the flags and configuration have been read.
type app struct {
	v  *viper.Viper
	lg *log.Logger
	qf measure.QuantityFormat
	lf location.Format
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "coordfmt",
		Short: "Parse, format and convert coordinates",
		Long: `coordfmt reads geographic and local coordinates in the notations
accepted by the location package (decimal degrees, degrees and minutes,
degrees minutes and seconds, X/Y/Z, aviation dotted and ISO 6709) and
writes them in the notation and locale that is asked for.

Coordinates may start with a minus sign ("coordfmt format -33.9 18.4");
flags must then be given before them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	pFlags := rootCmd.PersistentFlags()
	pFlags.String("config", "", "configuration file (default coordfmt.yaml)")
	pFlags.String("locale", "en", "locale for numbers, symbols and hemisphere letters (e.g. en, de, fr)")
	pFlags.String("system", measure.Metric.String(), "system of measurement: metric, imperial or icao")
	pFlags.String("angle-style", "dd", "angle notation: dd, dmm or dms")
	pFlags.String("log-level", "info", "logging level: debug, info, warn, error")
	pFlags.String("log-dir", "", "log file directory")
	pFlags.Int("jobs", runtime.NumCPU(), "number of files to convert in parallel")

	rootCmd.AddCommand(newParseCmd(a), newFormatCmd(a), newConvertCmd(a), newUnitsCmd(a))
	return rootCmd
}

// configure merges the flags, the environment and the configuration file
// and builds the formats used by the subcommands.
func (a *app) configure(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix("COORDFMT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if fn := a.v.GetString("config"); fn != "" {
		a.v.SetConfigFile(fn)
	} else {
		a.v.SetConfigName("coordfmt")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(dir, "coordfmt"))
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("%s: %w", a.v.ConfigFileUsed(), err)
		}
	}

	tag, err := language.Parse(a.v.GetString("locale"))
	if err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	system, err := measure.ParseSystemOfMeasurement(a.v.GetString("system"))
	if err != nil {
		return err
	}
	style, err := measure.ParseAngleStyle(a.v.GetString("angle-style"))
	if err != nil {
		return err
	}

	a.lg = log.New(a.v.GetString("log-level"), a.v.GetString("log-dir"))
	a.qf = measure.NewQuantityFormat().WithLocale(tag).WithSystem(system).WithAngleStyle(style)
	a.lf = location.NewFormatFor(a.qf, a.lg)

	a.lg.Debug("configured", "locale", tag.String(), "system", system.String(), "angle-style", style.String(),
		"config", a.v.ConfigFileUsed())
	return nil
}

// flagChanged reports whether a local flag was given on the command line.
func flagChanged(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// negativeNumber matches arguments such as "-33.9" or "-8,5 E" that pflag
// would otherwise take for shorthand flags.
var negativeNumber = regexp.MustCompile(`^-[0-9]*[.,]?[0-9]`)

// escapeNegativeNumbers inserts "--" before the first argument that starts
// with a negative number, so it and everything after it are positional.
func escapeNegativeNumbers(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		} else if negativeNumber.MatchString(arg) {
			return slices.Concat(args[:i:i], []string{"--"}, args[i:])
		}
	}
	return args
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(escapeNegativeNumbers(args))
	return root.Execute()
}

func main() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
