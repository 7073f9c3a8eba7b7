// Package cmds wires the merge driver into its command-line surface.
package cmds

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ntuplemerge/internal/cmdutil"
	"ntuplemerge/internal/log"
	"ntuplemerge/internal/merge"
)

// Root returns the mergeoutput command.
func Root() *cobra.Command {
	var (
		dir         string
		pattern     string
		output      string
		haddPath    string
		summaryPath string
	)

	cmd := &cobra.Command{
		Use:   "mergeoutput",
		Short: "Merge matching container files under a directory into one output file",
		Long: `mergeoutput recursively collects files matching a basename glob under a
directory, logs their count and sizes, and invokes hadd to consolidate them
into a single output file. Exit code 0 means the merged file exists and is
non-empty; "no matching files" and "merge failed" exit with distinct codes.`,
		Run: cmdutil.Run(func([]string) error {
			logger := log.NewConsole()
			defer logger.Sync() //nolint:errcheck

			driver := merge.NewDriver(&merge.HaddMerger{Executable: haddPath}, logger)
			req := merge.Request{Dir: dir, Pattern: pattern, OutputPath: output}

			outcome, runErr := driver.Run(context.Background(), req)
			if summaryPath != "" {
				if err := merge.WriteSummary(summaryPath, req, outcome); err != nil {
					logger.Error("writing summary failed", zap.Error(err))
				}
			}
			return runErr
		}),
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Base directory to search")
	cmd.Flags().StringVar(&pattern, "pat", "out_*.root", "Basename glob to match")
	cmd.Flags().StringVar(&output, "out", "merged.root", "Merged output file")
	cmd.Flags().StringVar(&haddPath, "hadd", "", "hadd executable (default: hadd on PATH)")
	cmd.Flags().StringVar(&summaryPath, "summary", "", "Write a JSON merge summary to this path")
	return cmd
}
