package jobscript

import (
	"fmt"

	"github.com/pkg/errors"

	"ntuplemerge/internal/cmdutil"
)

var (
	// ErrNoSubdirectories means the storage root had nothing to generate
	// jobs for; no artifact is written.
	ErrNoSubdirectories = errors.New("no subdirectories found")

	// ErrInvalidMode means the mode flag was not one of the known variants.
	// Rejected before any filesystem access.
	ErrInvalidMode = errors.New("invalid mode")
)

// GenerateError wraps a sentinel with context and a semantic exit code.
type GenerateError struct {
	Kind error
	Msg  string
}

func (e *GenerateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *GenerateError) Unwrap() error { return e.Kind }

// ExitCode satisfies cmdutil.Coder.
func (e *GenerateError) ExitCode() int {
	switch {
	case errors.Is(e.Kind, ErrInvalidMode):
		return cmdutil.ExitUsage
	case errors.Is(e.Kind, ErrNoSubdirectories):
		return cmdutil.ExitNoWork
	default:
		return cmdutil.ExitFailure
	}
}

func invalidModef(format string, args ...any) error {
	return &GenerateError{Kind: ErrInvalidMode, Msg: fmt.Sprintf(format, args...)}
}

func noSubdirsf(format string, args ...any) error {
	return &GenerateError{Kind: ErrNoSubdirectories, Msg: fmt.Sprintf(format, args...)}
}
