// Package cmdutil holds the small amount of glue shared by both command-line
// tools: wrapping run functions into cobra handlers and mapping errors to
// process exit codes.
package cmdutil

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Exit codes shared by both tools. Scripts that wrap these binaries branch on
// the code, so the values are part of the CLI contract.
const (
	ExitSuccess  = 0
	ExitFailure  = 1 // merge failed, write failed, unreadable path
	ExitUsage    = 2 // bad flags or an invalid mode
	ExitNoWork   = 3 // no matching files / no subdirectories
	ExitInternal = 4
)

// Coder is implemented by errors that carry a semantic exit code.
type Coder interface {
	ExitCode() int
}

// Run makes a cobra run function that wraps the given function.
func Run(run func(args []string) error) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, args []string) {
		if err := run(args); err != nil {
			ErrorAndExit(err)
		}
	}
}

// ErrorAndExit prints the error to stderr and exits with its semantic code,
// or ExitFailure when the error carries none.
func ErrorAndExit(err error) {
	if s := strings.TrimSpace(err.Error()); s != "" {
		fmt.Fprintf(os.Stderr, "%s\n", s)
	}
	code := ExitFailure
	var c Coder
	if errors.As(err, &c) {
		code = c.ExitCode()
	}
	os.Exit(code)
}
