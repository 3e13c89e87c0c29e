package samples_test

import (
	"testing"

	"github.com/gnames/gnbarcode/pkg/pattern"
	"github.com/gnames/gnbarcode/pkg/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest(t *testing.T) {
	m := samples.NewManifest([]string{"sample", "R1", "R2"})
	m.Set([]string{"s1", "a1", "a2"})
	m.Set([]string{"s2", "b1", "b2"})
	m.Set([]string{"s1", "c1", "c2"})
	m.Set(nil)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"s1", "s2"}, m.IDs(),
		"replaced id keeps its first position")
	row, ok := m.Get("s1")
	require.True(t, ok)
	assert.Equal(t, []string{"s1", "c1", "c2"}, row, "last write wins")
	assert.Equal(t, [][]string{
		{"s1", "c1", "c2"},
		{"s2", "b1", "b2"},
	}, m.Rows())

	_, ok = m.Get("s3")
	assert.False(t, ok)
}

func TestParseReadFile(t *testing.T) {
	tests := []struct {
		path   string
		ok     bool
		sample string
		read   int
	}{
		{"/data/P1_101_R1_001.fastq.gz", true, "P1_101", 1},
		{"/data/P1_101_R2_001.fastq.gz", true, "P1_101", 2},
		{"run/S1_R1.fastq.gz", true, "S1", 1},
		{"S1__R2.fastq.gz", true, "S1", 2},
		{"_S1_R1.fastq.gz", true, "S1", 1},
		{"A_R1_B_R2_001.fastq.gz", true, "A_R1_B", 2},
		{"S1_R3.fastq.gz", false, "", 0},
		{"S1_R1.fastq", false, "", 0},
		{"S1_R1x.fastq.gz", false, "", 0},
		{"S1R1.fastq.gz", false, "", 0},
		{"_R1.fastq.gz", false, "", 0},
		{"README.md", false, "", 0},
	}

	for _, v := range tests {
		res, ok := samples.ParseReadFile(v.path)
		assert.Equal(t, v.ok, ok, v.path)
		if !v.ok {
			continue
		}
		assert.Equal(t, v.sample, res.SampleID, v.path)
		assert.Equal(t, v.read, res.Read, v.path)
		assert.Equal(t, v.path, res.Path, v.path)
	}
}

func readFiles(t *testing.T, paths ...string) []samples.ReadFile {
	var res []samples.ReadFile
	for _, v := range paths {
		rf, ok := samples.ParseReadFile(v)
		require.True(t, ok, v)
		res = append(res, rf)
	}
	return res
}

func TestPairReads(t *testing.T) {
	r1 := readFiles(t, "d/S2_R1.fastq.gz", "d/S1_R1.fastq.gz")
	r2 := readFiles(t, "d/S1_R2.fastq.gz", "d/S2_R2.fastq.gz")

	p := samples.PairReads(r1, r2)
	assert.Empty(t, p.Unpaired)
	assert.Empty(t, p.Mismatched)
	assert.Equal(t, []samples.SampleEntry{
		{SampleID: "S1", Read1: "d/S1_R1.fastq.gz", Read2: "d/S1_R2.fastq.gz"},
		{SampleID: "S2", Read1: "d/S2_R1.fastq.gz", Read2: "d/S2_R2.fastq.gz"},
	}, p.Entries)
}

func TestPairReadsByPosition(t *testing.T) {
	// S2 has no reverse file, positional pairing mispairs S2 with S3
	// and leaves S3 forward file without a partner.
	r1 := readFiles(t, "d/S1_R1.fastq.gz", "d/S2_R1.fastq.gz", "d/S3_R1.fastq.gz")
	r2 := readFiles(t, "d/S1_R2.fastq.gz", "d/S3_R2.fastq.gz")

	p := samples.PairReads(r1, r2)
	require.Len(t, p.Entries, 2)
	assert.Equal(t, "S2", p.Entries[1].SampleID)
	assert.Equal(t, "d/S3_R2.fastq.gz", p.Entries[1].Read2)
	assert.Equal(t, []string{"S2"}, p.Mismatched)
	assert.Equal(t, []string{"d/S3_R1.fastq.gz"}, p.Unpaired)
}

func TestScanManifestDuplicates(t *testing.T) {
	r1 := readFiles(t, "a/S1_R1.fastq.gz", "b/S1_R1.fastq.gz")
	r2 := readFiles(t, "a/S1_R2.fastq.gz", "b/S1_R2.fastq.gz")

	m := samples.ScanManifest(samples.PairReads(r1, r2))
	assert.Equal(t, 1, m.Len())
	row, _ := m.Get("S1")
	assert.Equal(t, []string{"S1", "b/S1_R1.fastq.gz", "b/S1_R2.fastq.gz"}, row)
	assert.Equal(t, samples.ScanHeader, m.Header())
}

func TestFilterQuality(t *testing.T) {
	t.Run("all columns", func(t *testing.T) {
		header := []string{"sample", "R1", "R2", "R1_type", "R2_type",
			"R1_exists", "R2_exists"}
		rows := [][]string{
			{"s1", "a", "b", "string", "string", "yes", "yes"},
			{"s2", "a", "b", "float", "string", "yes", "yes"},
			{"s3", "a", "b", "string", "string", "yes", "no"},
			{"s4", "a", "b", "string", "string", "yes", "yes"},
		}
		m := samples.FilterQuality(header, rows)
		assert.Equal(t, []string{"s1", "s4"}, m.IDs())
		assert.Equal(t, header, m.Header())
	})

	t.Run("absent columns do not constrain", func(t *testing.T) {
		header := []string{"sample", "R1", "R1_exists"}
		rows := [][]string{
			{"s1", "float", "yes"},
			{"s2", "a", "no"},
		}
		m := samples.FilterQuality(header, rows)
		assert.Equal(t, []string{"s1"}, m.IDs())
	})

	t.Run("no quality columns", func(t *testing.T) {
		header := []string{"sample", "R1", "R2"}
		rows := [][]string{{"s1", "a", "b"}, {"s1", "c", "d"}}
		m := samples.FilterQuality(header, rows)
		assert.Equal(t, [][]string{{"s1", "c", "d"}}, m.Rows())
	})
}

func TestSubsetAnchored(t *testing.T) {
	labels := []samples.Label{
		{ExternalID: "BOX001", Text: "Malaise trap 2019"},
		{ExternalID: "BOX002", Text: "Soil core"},
	}
	rows := [][]string{
		{"BOX001_R", "x"},
		{"BOX0010", "y"},
		{"ABOX001", "z"},
		{"BOX002_S", "w"},
	}
	search, err := pattern.Compile("malaise", true)
	require.NoError(t, err)

	ids, res, err := samples.Subset(labels, rows, search)
	require.NoError(t, err)
	assert.Equal(t, []string{"BOX001"}, ids)
	assert.Equal(t, [][]string{{"BOX001_R", "x"}, {"BOX0010", "y"}}, res)
}

func TestSubsetNoExternalMatch(t *testing.T) {
	labels := []samples.Label{{ExternalID: "BOX001", Text: "Malaise"}}
	search, err := pattern.Compile("Pitfall", false)
	require.NoError(t, err)

	ids, res, err := samples.Subset(labels, [][]string{{"BOX001"}}, search)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Nil(t, res)
}

func TestSubsetNoLocalMatch(t *testing.T) {
	labels := []samples.Label{{ExternalID: "BOX001", Text: "Malaise"}}
	search, err := pattern.Compile("Malaise", false)
	require.NoError(t, err)

	ids, res, err := samples.Subset(labels, [][]string{{"BOX002"}}, search)
	require.NoError(t, err)
	assert.Equal(t, []string{"BOX001"}, ids)
	assert.Empty(t, res)
}

func TestMatchLabelsDedup(t *testing.T) {
	labels := []samples.Label{
		{ExternalID: "B", Text: "trap"},
		{ExternalID: "A", Text: "trap"},
		{ExternalID: "B", Text: "trap again"},
	}
	search, err := pattern.Compile("trap", false)
	require.NoError(t, err)

	ids, err := samples.MatchLabels(labels, search)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, ids)
}
