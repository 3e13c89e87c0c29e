package ioextract_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnbarcode/internal/ioextract"
	"github.com/gnames/gnbarcode/pkg/bold"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCurateScratchDir(filepath.Join(t.TempDir(), "scratch")),
	})
	return cfg
}

func specRow(id, phylum string) string {
	fields := []string{
		id, "", "", "", "ext", "", "",
		phylum, "Insecta", "Diptera", "Culicidae", "Aedes", "",
	}
	return strings.Join(fields, "\t")
}

func TestExtractTaxa(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bold_info.tsv")
	out := filepath.Join(dir, "ids.txt")
	content := strings.Join([]string{
		specRow("A1", "Arthropoda"),
		specRow("C1", "Chordata"),
		"short\trow",
		specRow("A2", "Arthropoda"),
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(in, []byte(content), 0644))

	ex := ioextract.New(testConfig(t), bold.ExtractTaxa, "Arthropoda")
	n, err := ex.Extract(context.Background(), in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	res, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "A1\nA2\n", string(res))
}

func TestExtractSeqs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bold_seqs.tsv")
	out := filepath.Join(dir, "seqs.fasta")
	content := "A1\tCOI-5P\tACGT\n" +
		"A2\tmatK\tGGGG\n" +
		"A3\tCOI-5P\n" +
		"A4 COI-5P  TTNN \n" +
		"A5\tCOI-5P\tAC GT\n"
	require.NoError(t, os.WriteFile(in, []byte(content), 0644))

	ex := ioextract.New(testConfig(t), bold.ExtractSeqs, "COI-5P")
	n, err := ex.Extract(context.Background(), in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	res, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, ">A1 COI-5P\nACGT\n>A4 COI-5P\nTTNN\n", string(res))
}

func TestExtractMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "ids.txt")
	ex := ioextract.New(testConfig(t), bold.ExtractTaxa, "Arthropoda")
	_, err := ex.Extract(context.Background(), filepath.Join(dir, "none"), out)
	require.Error(t, err)
	_, err = os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
