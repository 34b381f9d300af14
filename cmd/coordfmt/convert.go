// cmd/coordfmt/convert.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/missioncontrol/measure/location"
	"github.com/missioncontrol/measure/measure"
	"github.com/missioncontrol/measure/util"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// convertedFile is the result of converting one input file.
type convertedFile struct {
	name  string
	lines []string
	e     util.ErrorLogger
}

func newConvertCmd(a *app) *cobra.Command {
	var optTo string

	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "Convert files of locations to another notation",
		Long: `Read files with one location per line and write them to standard output
in the configured locale, using the angle style given with --to (or
--angle-style). Blank lines and lines starting with # are copied as they
are. Lines that cannot be parsed are reported at the end and the command
fails, but the remaining lines are still converted. Files ending in .zst
are decompressed first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.lf
			if flagChanged(cmd.Flags(), "to") {
				style, err := measure.ParseAngleStyle(optTo)
				if err != nil {
					return err
				}
				out = out.WithAngleStyle(style)
			}

			start := time.Now()
			files := make([]convertedFile, len(args))
			var eg errgroup.Group
			eg.SetLimit(max(1, a.v.GetInt("jobs")))
			for i, name := range args {
				eg.Go(func() error {
					files[i] = a.convertFile(name, out)
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			var e util.ErrorLogger
			var n int
			w := cmd.OutOrStdout()
			for _, f := range files {
				for _, line := range f.lines {
					fmt.Fprintln(w, line)
				}
				n += len(f.lines)
				e.Merge(&f.e)
			}

			a.lg.Info("converted locations", "files", len(files), "lines", n, "errors", e.Count(),
				"elapsed", time.Since(start).Round(time.Millisecond))
			if e.HaveErrors() {
				e.PrintErrors(cmd.ErrOrStderr(), a.lg)
				return fmt.Errorf("%s lines could not be converted", humanize.Comma(int64(e.Count())))
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "converted %s lines in %d files\n", humanize.Comma(int64(n)), len(files))
			return nil
		},
	}

	cmd.Flags().StringVar(&optTo, "to", "dms", "angle notation to write: dd, dmm or dms")
	return cmd
}

func (a *app) convertFile(name string, lf location.Format) convertedFile {
	cf := convertedFile{name: name}
	defer cf.e.CheckDepth(cf.e.CurrentDepth())
	cf.e.Push(name)
	defer cf.e.Pop()

	f, err := os.Open(name)
	if err != nil {
		cf.e.Error(err)
		return cf
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(name) == ".zst" {
		zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(0))
		if err != nil {
			cf.e.Error(err)
			return cf
		}
		defer zr.Close()
		r = zr
	}

	cf.lines, err = convertLines(r, lf, &cf.e)
	if err != nil {
		cf.e.Error(err)
	}
	a.lg.Debug("converted file", "file", name, "lines", len(cf.lines), "errors", cf.e.Count())
	return cf
}

// convertLines converts the locations of r one line at a time; lines that
// fail to parse are recorded in e and left out of the result.
func convertLines(r io.Reader, lf location.Format, e *util.ErrorLogger) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if t := strings.TrimSpace(line); t == "" || strings.HasPrefix(t, "#") {
			lines = append(lines, line)
			continue
		}

		l, err := lf.Parse(line)
		if err != nil {
			e.Push(fmt.Sprintf("line %d", lineno))
			e.Error(err)
			e.Pop()
			continue
		}
		lines = append(lines, lf.Format(l))
	}
	return lines, scanner.Err()
}
