package merge

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	req := Request{Dir: "/data/run1", Pattern: "out_*.root", OutputPath: "/data/run1.root"}
	outcome := Outcome{
		FilesConsidered:     3,
		TotalEstimatedBytes: 36700160,
		MergedBytes:         30000000,
		Elapsed:             90 * time.Second,
		Success:             true,
	}
	require.NoError(t, WriteSummary(path, req, outcome))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var s Summary
	require.NoError(t, json.Unmarshal(data, &s))
	require.Equal(t, 3, s.FilesConsidered)
	require.Equal(t, int64(36700160), s.TotalEstimatedBytes)
	require.Equal(t, 90.0, s.ElapsedSeconds)
	require.True(t, s.Success)
	require.Empty(t, s.ErrorDetail)
	require.False(t, s.GeneratedAt.IsZero())
}
