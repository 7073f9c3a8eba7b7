package jobscript

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// Job is one merge invocation bound to a subdirectory. Pure data; it lives
// only until it is rendered into an artifact.
type Job struct {
	// Name is the subdirectory name, used as the condor job identity and in
	// log file names.
	Name string

	// Dir is the absolute (or root-relative) directory the driver scans.
	Dir string

	// OutputPath is the merged file this job produces.
	OutputPath string

	// Args is the full driver argument list.
	Args []string
}

// ListSubdirs returns the names of the immediate subdirectories of root,
// lexicographically sorted so regeneration is reproducible. Non-directory
// entries are ignored.
func ListSubdirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "reading storage root %q", root)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// BuildJobs scans cfg.StorageRoot and binds one Job per subdirectory.
func BuildJobs(cfg Config) ([]Job, error) {
	subdirs, err := ListSubdirs(cfg.StorageRoot)
	if err != nil {
		return nil, err
	}
	if len(subdirs) == 0 {
		return nil, noSubdirsf("under %q", cfg.StorageRoot)
	}

	jobs := make([]Job, 0, len(subdirs))
	for _, name := range subdirs {
		dir := filepath.Join(cfg.StorageRoot, name)
		out := cfg.OutputFor(name)
		jobs = append(jobs, Job{
			Name:       name,
			Dir:        dir,
			OutputPath: out,
			Args: []string{
				"--dir", dir,
				"--pat", cfg.Pattern,
				"--out", out,
			},
		})
	}
	return jobs, nil
}
