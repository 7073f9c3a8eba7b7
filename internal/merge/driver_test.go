package merge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeMerger stands in for hadd. It records what it was asked to merge and
// either writes the output or fails after leaving a partial file behind.
type fakeMerger struct {
	calls   int
	inputs  []string
	output  string
	fail    bool
	partial bool
	content []byte
}

func (m *fakeMerger) Merge(_ context.Context, inputs []string, output string) error {
	m.calls++
	m.inputs = inputs
	m.output = output
	if m.fail {
		if m.partial {
			_ = os.WriteFile(output, []byte("partial"), 0o644)
		}
		return errors.New("hadd exited with code 1: Error in <TFileMerger::Merge>")
	}
	content := m.content
	if content == nil {
		content = []byte("merged")
	}
	return os.WriteFile(output, content, 0o644)
}

func TestRun_CountsAndByteSumExact(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "out_a.root"), 10*1024*1024)
	writeFile(t, filepath.Join(root, "out_b.root"), 20*1024*1024)
	writeFile(t, filepath.Join(root, "out_c.root"), 5*1024*1024)

	merger := &fakeMerger{}
	driver := NewDriver(merger, zaptest.NewLogger(t))
	out := filepath.Join(root, "merged.root")

	outcome, err := driver.Run(context.Background(), Request{
		Dir: root, Pattern: "out_*.root", OutputPath: out,
	})
	require.NoError(t, err)
	require.True(t, outcome.Success)
	require.Equal(t, 3, outcome.FilesConsidered)
	require.Equal(t, int64(36700160), outcome.TotalEstimatedBytes)
	require.Equal(t, 1, merger.calls)
	require.Equal(t, []string{
		filepath.Join(root, "out_a.root"),
		filepath.Join(root, "out_b.root"),
		filepath.Join(root, "out_c.root"),
	}, merger.inputs)
	require.Equal(t, out, merger.output)
	require.Equal(t, int64(6), outcome.MergedBytes)
}

func TestRun_EmptySetNeverInvokesMerger(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "unrelated.txt"), 1)

	merger := &fakeMerger{}
	driver := NewDriver(merger, zaptest.NewLogger(t))

	_, err := driver.Run(context.Background(), Request{
		Dir: root, Pattern: "out_*.root", OutputPath: filepath.Join(root, "merged.root"),
	})
	require.ErrorIs(t, err, ErrNoMatchingFiles)
	require.Zero(t, merger.calls)
}

func TestRun_FailureLeavesPartialOutput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "out_a.root"), 100)

	merger := &fakeMerger{fail: true, partial: true}
	driver := NewDriver(merger, zaptest.NewLogger(t))
	out := filepath.Join(root, "merged.root")

	outcome, err := driver.Run(context.Background(), Request{
		Dir: root, Pattern: "out_*.root", OutputPath: out,
	})
	require.ErrorIs(t, err, ErrMergeFailed)
	require.False(t, outcome.Success)
	require.Contains(t, outcome.ErrorDetail, "TFileMerger")

	// Operator inspection contract: the partial file stays.
	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	require.Equal(t, "partial", string(data))
}

func TestRun_EmptyOutputIsFailure(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "out_a.root"), 100)

	merger := &fakeMerger{content: []byte{}}
	driver := NewDriver(merger, zaptest.NewLogger(t))

	outcome, err := driver.Run(context.Background(), Request{
		Dir: root, Pattern: "out_*.root", OutputPath: filepath.Join(root, "merged.root"),
	})
	require.ErrorIs(t, err, ErrMergeFailed)
	require.False(t, outcome.Success)
	require.Contains(t, outcome.ErrorDetail, "empty")
}

func TestRun_MissingDirIsFailure(t *testing.T) {
	driver := NewDriver(&fakeMerger{}, zaptest.NewLogger(t))
	_, err := driver.Run(context.Background(), Request{
		Dir: filepath.Join(t.TempDir(), "nope"), Pattern: "out_*.root", OutputPath: "merged.root",
	})
	require.ErrorIs(t, err, ErrPathUnreadable)
}

func TestDriverError_ExitCodes(t *testing.T) {
	require.Equal(t, 3, noMatchf("x").(*DriverError).ExitCode())
	require.Equal(t, 1, mergeFailedf("x").(*DriverError).ExitCode())
}

func TestFormatElapsed(t *testing.T) {
	require.Equal(t, "125.30s (2 minutes and 5.30 seconds)", formatElapsed(125300*1000*1000))
}
