// Package cmds wires the job-script generator into its command-line surface.
package cmds

import (
	"github.com/spf13/cobra"

	"ntuplemerge/internal/cmdutil"
	"ntuplemerge/internal/jobscript"
	"ntuplemerge/internal/log"
)

// Root returns the jobscriptgen command. Only the mode is a runtime
// parameter; everything else comes from the compiled-in defaults, optionally
// overlaid with a YAML config file.
func Root() *cobra.Command {
	var (
		rawMode    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "jobscriptgen",
		Short: "Generate merge job artifacts from a storage root's subdirectories",
		Long: `jobscriptgen lists the immediate subdirectories of the configured storage
root and writes either a sequential local shell script (--mode local) or an
HTCondor submission file (--mode condor), one merge job per subdirectory.
Nothing is executed or submitted; the artifact is written and the tool exits.`,
		Run: cmdutil.Run(func([]string) error {
			mode, err := jobscript.ParseMode(rawMode)
			if err != nil {
				return err
			}

			cfg := jobscript.DefaultConfig()
			if configPath != "" {
				cfg, err = jobscript.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			logger := log.NewConsole()
			defer logger.Sync() //nolint:errcheck

			_, err = jobscript.Generate(cfg, mode, logger)
			return err
		}),
	}

	cmd.Flags().StringVar(&rawMode, "mode", "", "Artifact to generate: local|condor (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config overriding the built-in defaults")
	cobra.CheckErr(cmd.MarkFlagRequired("mode"))
	return cmd
}
