package jobscript

import (
	"fmt"
	"strings"
)

// RenderLocal produces the sequential shell script. One driver invocation per
// job, in job order; a failing invocation reports its exit status and the
// script moves on to the next line. The output is a pure function of cfg and
// jobs, so regeneration over an unchanged tree is byte-identical.
func RenderLocal(cfg Config, jobs []Job) []byte {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	fmt.Fprintf(&b, "MERGE_DIR=%q\n", cfg.StorageRoot)
	b.WriteString("echo \"  -- merger script -- > Set ntuple path [ ${MERGE_DIR} ]\"\n")
	b.WriteString("\n")

	for _, job := range jobs {
		fmt.Fprintf(&b, "echo \"Processing directory: %s\"\n", job.Name)
		b.WriteString(shellInvocation(cfg.DriverExecutable, job.Args))
		b.WriteString("\n")
		fmt.Fprintf(&b, "echo \"  -- merger script -- > %s finished with exit status $?\"\n", job.Name)
		b.WriteString("\n")
	}

	b.WriteString("echo \"All merge jobs completed.\"\n")
	return []byte(b.String())
}

// RenderCondor produces the submission file: shared directives first, then
// one stanza per job. Each stanza carries only the per-job argument list and
// its log destinations; the batch system owns scheduling and ordering.
func RenderCondor(cfg Config, jobs []Job) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Executable      = %s\n", cfg.DriverExecutable)
	fmt.Fprintf(&b, "getenv          = %s\n", condorBool(cfg.Condor.GetEnv))
	fmt.Fprintf(&b, "should_transfer_files = %s\n", cfg.Condor.ShouldTransferFiles)
	fmt.Fprintf(&b, "+JobFlavour      = %q\n", cfg.Condor.JobFlavour)
	b.WriteString("\n")

	for _, job := range jobs {
		fmt.Fprintf(&b, "arguments = %s\n", strings.Join(job.Args, " "))
		fmt.Fprintf(&b, "Output          = %s/%s_$(Cluster)_$(Process).out\n", cfg.CondorLogDir, job.Name)
		fmt.Fprintf(&b, "Error           = %s/%s_$(Cluster)_$(Process).err\n", cfg.CondorLogDir, job.Name)
		fmt.Fprintf(&b, "Log             = %s/%s_$(Cluster).log\n", cfg.CondorLogDir, job.Name)
		b.WriteString("queue\n")
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// shellInvocation renders one driver command line with every argument
// double-quoted, so paths with spaces survive the shell.
func shellInvocation(executable string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, executable)
	for _, a := range args {
		if strings.HasPrefix(a, "--") {
			parts = append(parts, a)
		} else {
			parts = append(parts, fmt.Sprintf("%q", a))
		}
	}
	return strings.Join(parts, " ")
}

func condorBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
