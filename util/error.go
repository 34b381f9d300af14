// util/error.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/missioncontrol/measure/log"
)

// ErrorLogger is a small utility class used to accumulate errors when
// processing batches of input. It tracks context about what is currently
// being processed (e.g. a file and a line within it) so that processing
// can continue after an error and all of them reported at the end.
//
// An ErrorLogger is not safe for concurrent use; concurrent workers should
// each use their own and Merge them afterward.
type ErrorLogger struct {
	// Tracked via Push()/Pop() calls to remember what we're looking at if
	// an error is found.
	hierarchy []string
	// Actual error messages to report.
	errors []string
}

func (e *ErrorLogger) Push(s string) {
	e.hierarchy = append(e.hierarchy, s)
}

func (e *ErrorLogger) Pop() {
	e.hierarchy = e.hierarchy[:len(e.hierarchy)-1]
}

func (e *ErrorLogger) ErrorString(s string, args ...any) {
	e.errors = append(e.errors, e.prefix()+fmt.Sprintf(s, args...))
}

func (e *ErrorLogger) Error(err error) {
	e.errors = append(e.errors, e.prefix()+err.Error())
}

func (e *ErrorLogger) prefix() string {
	if len(e.hierarchy) == 0 {
		return ""
	}
	return strings.Join(e.hierarchy, " / ") + ": "
}

// Merge appends the errors accumulated by other.
func (e *ErrorLogger) Merge(other *ErrorLogger) {
	if other != nil {
		e.errors = append(e.errors, other.errors...)
	}
}

func (e *ErrorLogger) HaveErrors() bool {
	return e != nil && len(e.errors) > 0
}

func (e *ErrorLogger) Count() int {
	if e == nil {
		return 0
	}
	return len(e.errors)
}

// PrintErrors writes the errors to w, one per line, and also logs them if
// lg is non-nil.
func (e *ErrorLogger) PrintErrors(w io.Writer, lg *log.Logger) {
	// Two loops so they aren't interleaved with logging output
	if lg != nil {
		for _, err := range e.errors {
			lg.Errorf("%+v", err)
		}
	}
	for _, err := range e.errors {
		fmt.Fprintln(w, err)
	}
}

func (e *ErrorLogger) String() string {
	return strings.Join(e.errors, "\n")
}

// CheckDepth panics if the Push/Pop nesting differs from d; it is meant
// to be deferred at the start of a function that pushes context.
func (e *ErrorLogger) CheckDepth(d int) {
	if e == nil || e.CurrentDepth() == d {
		return
	}

	if r := recover(); r != nil {
		// Don't hide the original panic.
		panic(r)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "initial ErrorLogger depth %d, final %d\n", d, e.CurrentDepth())
	for _, f := range log.Callstack(nil) {
		fmt.Fprintf(&sb, "%15s:%d %s\n", f.File, f.Line, f.Function)
	}
	panic(sb.String())
}

func (e *ErrorLogger) CurrentDepth() int {
	if e == nil {
		return 0
	}
	return len(e.hierarchy)
}
