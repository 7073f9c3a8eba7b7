package merge

import (
	"fmt"

	"github.com/pkg/errors"

	"ntuplemerge/internal/cmdutil"
)

var (
	// ErrNoMatchingFiles means discovery found nothing; the merge utility is
	// never invoked in that case.
	ErrNoMatchingFiles = errors.New("no files matched the pattern")

	// ErrMergeFailed means the utility exited non-zero, or the output file
	// was missing or empty afterwards.
	ErrMergeFailed = errors.New("merge failed")

	// ErrPathUnreadable means the search directory could not be read at all.
	ErrPathUnreadable = errors.New("path unreadable")
)

// DriverError wraps a sentinel with context and a semantic exit code for the
// CLI layer.
type DriverError struct {
	Kind error
	Msg  string
}

func (e *DriverError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *DriverError) Unwrap() error { return e.Kind }

// ExitCode satisfies cmdutil.Coder.
func (e *DriverError) ExitCode() int {
	if errors.Is(e.Kind, ErrNoMatchingFiles) {
		return cmdutil.ExitNoWork
	}
	return cmdutil.ExitFailure
}

func noMatchf(format string, args ...any) error {
	return &DriverError{Kind: ErrNoMatchingFiles, Msg: fmt.Sprintf(format, args...)}
}

func mergeFailedf(format string, args ...any) error {
	return &DriverError{Kind: ErrMergeFailed, Msg: fmt.Sprintf(format, args...)}
}

func unreadablef(format string, args ...any) error {
	return &DriverError{Kind: ErrPathUnreadable, Msg: fmt.Sprintf(format, args...)}
}
