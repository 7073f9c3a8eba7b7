// Package merge discovers container files under a directory tree and drives
// the external merge utility that consolidates them into one output file.
//
// The package owns no byte-level merge logic. Its contract is discovery,
// size accounting, timing, and framing the utility's result into an Outcome;
// the log lines it emits (counts, byte sums, elapsed minutes and seconds) are
// part of that contract because operators and scrapers read them.
package merge

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Request describes one merge invocation. Immutable once built.
type Request struct {
	// Dir is the root of the recursive search.
	Dir string

	// Pattern is a shell glob matched against basenames, e.g. "out_*.root".
	Pattern string

	// OutputPath is where the consolidated file is written. The parent
	// directory must exist.
	OutputPath string
}

// Outcome is the result of one merge invocation, produced whether or not the
// merge succeeded and consumed only for logging and exit-code decisions.
type Outcome struct {
	FilesConsidered     int
	TotalEstimatedBytes int64
	MergedBytes         int64
	Elapsed             time.Duration
	Success             bool
	ErrorDetail         string
}

// Driver orchestrates discovery, the merge call, and outcome framing.
type Driver struct {
	Merger FileMerger
	Log    *zap.Logger
}

// NewDriver returns a Driver using the given merger and logger.
func NewDriver(merger FileMerger, logger *zap.Logger) *Driver {
	return &Driver{Merger: merger, Log: logger}
}

// Run executes one merge. The returned error is non-nil exactly when
// Outcome.Success is false, and distinguishes "nothing to merge"
// (ErrNoMatchingFiles) from a failed merge (ErrMergeFailed) so operators can
// triage from the log alone. A partial output file is never deleted.
func (d *Driver) Run(ctx context.Context, req Request) (Outcome, error) {
	if _, err := os.Stat(req.Dir); err != nil {
		return Outcome{}, unreadablef("directory %q: %v", req.Dir, err)
	}

	set, err := Discover(req.Dir, req.Pattern)
	if err != nil {
		return Outcome{}, unreadablef("discovering files: %v", err)
	}
	if len(set.Files) == 0 {
		d.Log.Info("no files matched",
			zap.String("dir", req.Dir),
			zap.String("pattern", req.Pattern))
		return Outcome{}, noMatchf("pattern %q under %q", req.Pattern, req.Dir)
	}

	d.logDiscovery(set)

	outcome := Outcome{
		FilesConsidered:     len(set.Files),
		TotalEstimatedBytes: set.TotalBytes(),
	}

	d.Log.Info("starting merge",
		zap.Int("files", outcome.FilesConsidered),
		zap.String("output", req.OutputPath))
	start := time.Now()
	mergeErr := d.Merger.Merge(ctx, set.Paths(), req.OutputPath)
	outcome.Elapsed = time.Since(start)

	if mergeErr == nil {
		mergeErr = verifyOutput(req.OutputPath)
	}
	if mergeErr != nil {
		outcome.ErrorDetail = mergeErr.Error()
		d.Log.Error("merge failed",
			zap.String("output", req.OutputPath),
			zap.String("detail", outcome.ErrorDetail),
			zap.String("elapsed", formatElapsed(outcome.Elapsed)))
		// Leave any partial output in place for inspection.
		return outcome, mergeFailedf("%s", outcome.ErrorDetail)
	}

	info, err := os.Stat(req.OutputPath)
	if err == nil {
		outcome.MergedBytes = info.Size()
	}
	outcome.Success = true

	d.Log.Info("merge completed",
		zap.String("output", req.OutputPath),
		zap.String("size", humanize.IBytes(uint64(outcome.MergedBytes))),
		zap.Int64("size_bytes", outcome.MergedBytes),
		zap.Int64("estimate_delta_bytes", outcome.MergedBytes-outcome.TotalEstimatedBytes),
		zap.String("elapsed", formatElapsed(outcome.Elapsed)))
	return outcome, nil
}

// logDiscovery writes the pre-merge accounting: per-directory counts, each
// file's size, and the byte-exact total estimate.
func (d *Driver) logDiscovery(set *FileSet) {
	dirs := make([]string, 0, len(set.ByDir))
	for dir := range set.ByDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		d.Log.Info("found matching files",
			zap.String("dir", dir),
			zap.Int("count", len(set.ByDir[dir])))
	}
	for _, f := range set.Files {
		d.Log.Info("input file",
			zap.String("path", f.Path),
			zap.String("size", humanize.IBytes(uint64(f.Size))),
			zap.Int64("size_bytes", f.Size))
	}
	total := set.TotalBytes()
	d.Log.Info("estimated total size before merging",
		zap.String("size", humanize.IBytes(uint64(total))),
		zap.Int64("size_bytes", total))
}

// verifyOutput enforces the success invariant: the utility reporting success
// is not enough, the output must exist and be non-empty.
func verifyOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("output file %q is empty", path)
	}
	return nil
}

// formatElapsed renders a duration both as seconds and as minutes+seconds,
// e.g. "125.30s (2 minutes and 5.30 seconds)".
func formatElapsed(d time.Duration) string {
	secs := d.Seconds()
	mins := int(secs) / 60
	rem := secs - float64(mins*60)
	return fmt.Sprintf("%.2fs (%d minutes and %.2f seconds)", secs, mins, rem)
}
