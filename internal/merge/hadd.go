package merge

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// FileMerger consolidates an ordered list of container files into one output
// file. The production implementation shells out to ROOT's hadd; tests
// substitute their own.
type FileMerger interface {
	Merge(ctx context.Context, inputs []string, output string) error
}

// HaddMerger invokes the external hadd utility. hadd takes the output path
// first and overwrites it when given -f, which matches the driver's
// idempotent-regeneration contract.
type HaddMerger struct {
	// Executable is the hadd binary to run. Defaults to "hadd" on PATH.
	Executable string
}

func (m *HaddMerger) executable() string {
	if m.Executable != "" {
		return m.Executable
	}
	return "hadd"
}

// Merge runs `hadd -f output inputs...` and blocks until it exits. On a
// non-zero exit the returned error carries whatever diagnostic text the
// utility wrote to stderr.
func (m *HaddMerger) Merge(ctx context.Context, inputs []string, output string) error {
	args := append([]string{"-f", output}, inputs...)
	cmd := exec.CommandContext(ctx, m.executable(), args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		diag := bytes.TrimSpace(stderr.Bytes())
		if len(diag) > 0 {
			return errors.Errorf("%s exited with code %d: %s", m.executable(), exitErr.ExitCode(), diag)
		}
		return errors.Errorf("%s exited with code %d", m.executable(), exitErr.ExitCode())
	}
	// The process never started (binary missing, permission denied).
	return errors.Wrapf(err, "starting %s", m.executable())
}
