package jobscript

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Generate scans cfg.StorageRoot and writes the artifact for mode. Exactly
// one file is written per call, and only after the scan and render succeed;
// a run that fails with ErrNoSubdirectories leaves nothing behind. Existing
// artifacts are overwritten, so regeneration is idempotent.
func Generate(cfg Config, mode Mode, logger *zap.Logger) (string, error) {
	switch mode {
	case ModeLocal, ModeCondor:
	default:
		return "", invalidModef("%q", mode)
	}

	jobs, err := BuildJobs(cfg)
	if err != nil {
		return "", err
	}

	var path string
	var content []byte
	var perm os.FileMode
	switch mode {
	case ModeLocal:
		path = cfg.LocalScriptPath
		content = RenderLocal(cfg, jobs)
		perm = 0o755 // the script is run directly
	case ModeCondor:
		if err := os.MkdirAll(cfg.CondorLogDir, 0o755); err != nil {
			return "", errors.Wrapf(err, "creating log dir %q", cfg.CondorLogDir)
		}
		path = cfg.CondorSubmitPath
		content = RenderCondor(cfg, jobs)
		perm = 0o644
	}

	if err := os.WriteFile(path, content, perm); err != nil {
		return "", errors.Wrapf(err, "writing artifact %q", path)
	}
	// WriteFile only applies perm on create; force it on overwrite too so
	// a regenerated local script stays executable.
	if err := os.Chmod(path, perm); err != nil {
		return "", errors.Wrapf(err, "chmod %q", path)
	}

	logger.Info("artifact generated",
		zap.String("mode", string(mode)),
		zap.String("path", path),
		zap.Int("jobs", len(jobs)))
	return path, nil
}
