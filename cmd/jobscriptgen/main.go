package main

import (
	"os"

	"ntuplemerge/internal/cmdutil"
	"ntuplemerge/internal/jobscript/cmds"
)

func main() {
	if err := cmds.Root().Execute(); err != nil {
		os.Exit(cmdutil.ExitUsage)
	}
}
