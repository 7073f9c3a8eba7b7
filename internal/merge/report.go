package merge

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Summary is the machine-readable record of one merge, written next to the
// output when the operator asks for it. Field names are stable; dashboards
// parse these files.
type Summary struct {
	GeneratedAt         time.Time `json:"generatedAt"`
	Dir                 string    `json:"dir"`
	Pattern             string    `json:"pattern"`
	OutputPath          string    `json:"outputPath"`
	FilesConsidered     int       `json:"filesConsidered"`
	TotalEstimatedBytes int64     `json:"totalEstimatedBytes"`
	MergedBytes         int64     `json:"mergedBytes"`
	ElapsedSeconds      float64   `json:"elapsedSeconds"`
	Success             bool      `json:"success"`
	ErrorDetail         string    `json:"errorDetail,omitempty"`
}

// WriteSummary serializes the outcome of req to path, overwriting any
// previous summary.
func WriteSummary(path string, req Request, outcome Outcome) error {
	s := Summary{
		GeneratedAt:         time.Now().UTC(),
		Dir:                 req.Dir,
		Pattern:             req.Pattern,
		OutputPath:          req.OutputPath,
		FilesConsidered:     outcome.FilesConsidered,
		TotalEstimatedBytes: outcome.TotalEstimatedBytes,
		MergedBytes:         outcome.MergedBytes,
		ElapsedSeconds:      outcome.Elapsed.Seconds(),
		Success:             outcome.Success,
		ErrorDetail:         outcome.ErrorDetail,
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding summary")
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing summary %q", path)
	}
	return nil
}
