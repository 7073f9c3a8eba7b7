// Package jobscript turns the subdirectory layout of a storage root into
// execution artifacts: a sequential local shell script, or an HTCondor
// submission file with one independent job per subdirectory. It only writes
// artifacts; nothing is executed or submitted from here.
package jobscript

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Mode selects which artifact Generate emits.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeCondor Mode = "condor"
)

// ParseMode validates a raw mode string. Anything but the two known variants
// is rejected here, before any filesystem access.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeLocal:
		return ModeLocal, nil
	case ModeCondor:
		return ModeCondor, nil
	default:
		return "", invalidModef("%q (expected local|condor)", raw)
	}
}

// CondorDirectives are the shared header lines of the submission file.
type CondorDirectives struct {
	GetEnv              bool   `yaml:"getenv"`
	ShouldTransferFiles string `yaml:"shouldTransferFiles"`
	JobFlavour          string `yaml:"jobFlavour"`
}

// Config is the generation surface. Historically all of this was hardwired in
// the generator with only the mode on the command line; it is a struct so
// tests and deployments can swap values without editing code, but the CLI
// still exposes nothing beyond --mode and an optional config file.
type Config struct {
	// StorageRoot is the directory whose immediate subdirectories each
	// become one merge job.
	StorageRoot string `yaml:"storageRoot"`

	// Pattern is the glob handed to every generated driver invocation.
	Pattern string `yaml:"pattern"`

	// OutputTemplate names the merged file for a subdirectory; the literal
	// "{subdir}" is replaced by the subdirectory name. Relative paths are
	// resolved under StorageRoot.
	OutputTemplate string `yaml:"outputTemplate"`

	// DriverExecutable is the mergeoutput binary path used in generated
	// invocations.
	DriverExecutable string `yaml:"driverExecutable"`

	// LocalScriptPath and CondorSubmitPath are where the artifacts land.
	// Existing files are overwritten.
	LocalScriptPath  string `yaml:"localScriptPath"`
	CondorSubmitPath string `yaml:"condorSubmitPath"`

	// CondorLogDir receives per-job stdout/stderr/log files. Created on
	// demand in condor mode.
	CondorLogDir string `yaml:"condorLogDir"`

	Condor CondorDirectives `yaml:"condor"`
}

// DefaultConfig carries the values the tool ships with.
func DefaultConfig() Config {
	return Config{
		Pattern:          "out_*.root",
		OutputTemplate:   "{subdir}.root",
		DriverExecutable: "mergeoutput",
		LocalScriptPath:  "merge_locally.sh",
		CondorSubmitPath: "merge_using_condor.sub",
		CondorLogDir:     "merge_condor_logs",
		Condor: CondorDirectives{
			GetEnv:              true,
			ShouldTransferFiles: "No",
			JobFlavour:          "tomorrow",
		},
	}
}

// LoadConfig overlays a YAML file onto the defaults. Unset keys keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, nil
}

// OutputFor resolves the merged-file path for one subdirectory.
func (c Config) OutputFor(subdir string) string {
	name := strings.ReplaceAll(c.OutputTemplate, "{subdir}", subdir)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.StorageRoot, name)
}
