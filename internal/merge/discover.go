package merge

import (
	"io/fs"
	"path/filepath"
	"sort"

	globlib "github.com/pachyderm/ohmyglob"
	"github.com/pkg/errors"
)

// File is one discovered input with its size at discovery time. The size is
// an estimate of its contribution to the merged output; the container format
// restructures itself on merge, so the true output size will differ.
type File struct {
	Path string
	Size int64
}

// FileSet is the result of one discovery pass. Files is sorted
// lexicographically by path, so two runs over the same tree always hand the
// merge utility the same ordered list. ByDir groups basenames by containing
// directory for the per-directory log lines.
type FileSet struct {
	Files []File
	ByDir map[string][]string
}

// TotalBytes is the sum of all discovered file sizes.
func (s *FileSet) TotalBytes() int64 {
	var total int64
	for _, f := range s.Files {
		total += f.Size
	}
	return total
}

// Discover walks dir recursively and collects every regular file whose
// basename matches pattern. Matching is case-sensitive and applies to the
// basename only, never the full path.
func Discover(dir, pattern string) (*FileSet, error) {
	g, err := globlib.Compile(pattern, '/')
	if err != nil {
		return nil, errors.Wrapf(err, "compiling pattern %q", pattern)
	}

	set := &FileSet{ByDir: make(map[string][]string)}
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !g.Match(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return errors.Wrapf(err, "stat %q", path)
		}
		set.Files = append(set.Files, File{Path: path, Size: info.Size()})
		parent := filepath.Dir(path)
		set.ByDir[parent] = append(set.ByDir[parent], d.Name())
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "walking %q", dir)
	}

	// WalkDir order is lexical per directory but we sort the flat list
	// anyway: the merge input order must not depend on tree shape.
	sort.Slice(set.Files, func(i, j int) bool {
		return set.Files[i].Path < set.Files[j].Path
	})
	for _, names := range set.ByDir {
		sort.Strings(names)
	}
	return set, nil
}

// Paths returns the ordered path list handed to the merge utility.
func (s *FileSet) Paths() []string {
	paths := make([]string, len(s.Files))
	for i, f := range s.Files {
		paths[i] = f.Path
	}
	return paths
}
