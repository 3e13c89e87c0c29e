package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunManifest verifies scan output can be filtered again.
func TestRunManifest(t *testing.T) {
	resetConfig(t)
	root := t.TempDir()
	for _, v := range []string{"S1_R1.fastq.gz", "S1_R2.fastq.gz"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, v), nil, 0644))
	}
	out := filepath.Join(t.TempDir(), "samples.tsv")

	require.NoError(t, runManifestScan(getManifestScanCmd(), root, out))
	scanned, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(scanned), "sample\tR1\tR2\nS1\t")

	filtered := filepath.Join(t.TempDir(), "filtered.tsv")
	require.NoError(t, runManifestFilter(getManifestFilterCmd(), out, filtered))
	content, err := os.ReadFile(filtered)
	require.NoError(t, err)
	assert.Equal(t, string(scanned), string(content),
		"manifest without quality columns passes unchanged")
}
