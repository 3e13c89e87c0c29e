package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunSubset verifies selected rows go to the command output.
func TestRunSubset(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	list := filepath.Join(dir, "samples.tsv")
	labels := filepath.Join(dir, "labels.tsv")
	writeLines(t, list,
		"sample\tR1\tR2",
		"BOX001_R\ta1\tb1",
		"BOX0010\ta2\tb2",
		"ABOX001\ta3\tb3",
	)
	writeLines(t, labels,
		"BOX001\tMalaise trap",
		"BOX002\tSoil core",
	)

	cmd := getSubsetCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	err := runSubset(cmd, list, labels, "malaise", true)
	require.NoError(t, err)
	assert.Equal(t,
		"sample\tR1\tR2\nBOX001_R\ta1\tb1\nBOX0010\ta2\tb2\n",
		buf.String())
}

// TestRunSubset_NoMatch verifies zero label matches is an error.
func TestRunSubset_NoMatch(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	list := filepath.Join(dir, "samples.tsv")
	labels := filepath.Join(dir, "labels.tsv")
	writeLines(t, list, "sample\tR1\tR2", "BOX001_R\ta1\tb1")
	writeLines(t, labels, "BOX001\tMalaise trap")

	cmd := getSubsetCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	err := runSubset(cmd, list, labels, "pitfall", false)
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
