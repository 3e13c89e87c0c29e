package bold_test

import (
	"strings"
	"testing"

	"github.com/gnames/gnbarcode/pkg/bold"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specimen(id, phylum, species string) bold.SpecimenRecord {
	return bold.SpecimenRecord{
		RecordID:   id,
		ExternalID: "ext-" + id,
		Phylum:     phylum,
		Class:      "Insecta",
		Order:      "Diptera",
		Family:     "Culicidae",
		Genus:      "Aedes",
		Species:    species,
	}
}

func TestNewSpecimenRecord(t *testing.T) {
	fields := []string{
		"ABC001-19", "", "", "", "BIOUG001", "", "",
		"Arthropoda", "Insecta", "", "Culicidae", "Aedes", "",
	}
	rec := bold.NewSpecimenRecord(fields)
	assert.Equal(t, "ABC001-19", rec.RecordID)
	assert.Equal(t, "BIOUG001", rec.ExternalID)
	assert.Equal(t, "Arthropoda", rec.Phylum)
	assert.Equal(t, "", rec.Order, "missing value becomes empty string")
	assert.Equal(t, "", rec.Species)

	short := bold.NewSpecimenRecord([]string{"X1"})
	assert.Equal(t, "X1", short.RecordID)
	assert.Equal(t, "", short.Species)
}

func TestNewSequenceRecord(t *testing.T) {
	rec := bold.NewSequenceRecord([]string{"ABC001-19", "COI-5P", "ACGT-N\r"})
	assert.Equal(t, bold.SequenceRecord{
		RecordID: "ABC001-19", Gene: "COI-5P", Sequence: "ACGT-N",
	}, rec)
}

func TestJoin(t *testing.T) {
	specs := []bold.SpecimenRecord{
		specimen("r1", "Arthropoda", "Aedes aegypti"),
		specimen("r2", "Chordata", "Homo sapiens"),
		specimen("r3", "Arthropoda", "Aedes albopictus"),
		specimen("r4", "Arthropoda", "Culex pipiens"),
	}
	seqs := []bold.SequenceRecord{
		{RecordID: "r3", Gene: "COI-5P", Sequence: "AAA"},
		{RecordID: "r1", Gene: "COI-5P", Sequence: "CCC"},
		{RecordID: "r1", Gene: "matK", Sequence: "GGG"},
		{RecordID: "r2", Gene: "COI-5P", Sequence: "TTT"},
		{RecordID: "r9", Gene: "COI-5P", Sequence: "ACG"},
	}

	phyla := bold.NewAllowList([]string{"Arthropoda"})
	genes := bold.NewAllowList([]string{"COI-5P"})

	fSpecs := bold.FilterSpecimens(specs, phyla)
	fSeqs := bold.FilterSequences(seqs, genes)
	joined := bold.Join(fSpecs, fSeqs)

	t.Run("records on both sides only", func(t *testing.T) {
		var ids []string
		for _, v := range joined {
			ids = append(ids, v.RecordID)
		}
		// r2 is filtered by phylum, r4 has no sequence, r9 no specimen,
		// matK of r1 is filtered by gene.
		assert.Equal(t, []string{"r1", "r3"}, ids)
	})

	t.Run("joined rows pass both filters", func(t *testing.T) {
		for _, v := range joined {
			assert.True(t, phyla.Has(v.Phylum))
			assert.True(t, genes.Has(v.Gene))
		}
	})

	t.Run("joined row carries both sides", func(t *testing.T) {
		want := bold.JoinedRecord{
			SpecimenRecord: specimen("r1", "Arthropoda", "Aedes aegypti"),
			Gene:           "COI-5P",
			Sequence:       "CCC",
		}
		if diff := cmp.Diff(want, joined[0]); diff != "" {
			t.Errorf("joined record mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("several genes of one specimen", func(t *testing.T) {
		all := bold.NewAllowList([]string{"COI-5P", "matK"})
		res := bold.Join(fSpecs, bold.FilterSequences(seqs, all))
		require.Len(t, res, 3)
		assert.Equal(t, "COI-5P", res[0].Gene)
		assert.Equal(t, "matK", res[1].Gene)
		assert.Equal(t, "r3", res[2].RecordID)
	})
}

func TestEmptyAllowLists(t *testing.T) {
	specs := []bold.SpecimenRecord{specimen("r1", "Arthropoda", "A b")}
	seqs := []bold.SequenceRecord{{RecordID: "r1", Gene: "COI-5P", Sequence: "A"}}

	empty := bold.NewAllowList(nil)
	assert.Empty(t, bold.FilterSpecimens(specs, empty))
	assert.Empty(t, bold.FilterSequences(seqs, empty))
	assert.Empty(t, bold.Join(bold.FilterSpecimens(specs, empty), seqs))
}

func TestCleanSequence(t *testing.T) {
	tests := []struct {
		msg, seq, res string
		ok            bool
	}{
		{"plain", "ACGT", "ACGT", true},
		{"internal gaps", "AC--G-T", "ACGT", true},
		{"leading and trailing N", "NNACGTNN", "ACGT", true},
		{"N behind gaps", "-N-NAC-GTN--", "ACGT", true},
		{"internal N", "ACNGT", "ACNGT", false},
		{"internal N after trim", "NNACNGTNN", "ACNGT", false},
		{"only N", "NNNN", "", true},
		{"empty", "", "", true},
		{"lower case n is not ambiguous", "nACGTn", "nACGTn", true},
	}

	for _, v := range tests {
		res, ok := bold.CleanSequence(v.seq)
		assert.Equal(t, v.res, res, v.msg)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.NotContains(t, res, "-", v.msg)
		if res != "" {
			assert.False(t, strings.HasPrefix(res, "N"), v.msg)
			assert.False(t, strings.HasSuffix(res, "N"), v.msg)
		}
	}
}

func TestSortBySpecies(t *testing.T) {
	recs := []bold.JoinedRecord{
		{SpecimenRecord: specimen("r1", "P", "Culex pipiens")},
		{SpecimenRecord: specimen("r2", "P", "Aedes aegypti")},
		{SpecimenRecord: specimen("r3", "P", "Culex pipiens")},
		{SpecimenRecord: specimen("r4", "P", "")},
		{SpecimenRecord: specimen("r5", "P", "Aedes aegypti")},
	}
	res := bold.SortBySpecies(recs)

	var ids []string
	for _, v := range res {
		ids = append(ids, v.RecordID)
	}
	assert.Equal(t, []string{"r4", "r2", "r5", "r1", "r3"}, ids)
	assert.Equal(t, "r1", recs[0].RecordID, "input is not modified")
}

func TestFastaEntries(t *testing.T) {
	recs := []bold.JoinedRecord{
		{
			SpecimenRecord: specimen("r1", "Arthropoda", "Culex pipiens"),
			Gene:           "COI-5P",
			Sequence:       "NN-AC-GTNN",
		},
		{
			SpecimenRecord: specimen("r2", "Arthropoda", "Aedes aegypti"),
			Gene:           "COI-5P",
			Sequence:       "ACNNGT",
		},
		{
			SpecimenRecord: specimen("r3", "Arthropoda", "Aedes aegypti"),
			Gene:           "COI-5P",
			Sequence:       "TTTT",
		},
	}

	res, dropped := bold.FastaEntries(recs)
	assert.Equal(t, 1, dropped)
	want := []bold.FastaEntry{
		{
			Header:   "r3 Arthropoda;Insecta;Diptera;Culicidae;Aedes;Aedes aegypti",
			Sequence: "TTTT",
		},
		{
			Header:   "r1 Arthropoda;Insecta;Diptera;Culicidae;Aedes;Culex pipiens",
			Sequence: "ACGT",
		},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("FASTA entries mismatch (-want +got):\n%s", diff)
	}
}

func TestFastaHeaderEmptyRanks(t *testing.T) {
	rec := bold.JoinedRecord{
		SpecimenRecord: bold.SpecimenRecord{RecordID: "r1", Phylum: "Mollusca"},
	}
	assert.Equal(t, "r1 Mollusca;;;;;", bold.FastaHeader(rec))
}

func TestInfoRow(t *testing.T) {
	rec := bold.JoinedRecord{
		SpecimenRecord: specimen("r1", "Arthropoda", "Aedes aegypti"),
		Gene:           "COI-5P",
		Sequence:       "ACGT",
	}
	row := rec.InfoRow()
	require.Len(t, row, len(bold.InfoHeader))
	assert.Equal(t, "r1", row[0])
	assert.Equal(t, "COI-5P", row[len(row)-1])
	assert.NotContains(t, row, "ACGT")
}

func TestSummary(t *testing.T) {
	specs := []bold.SpecimenRecord{specimen("r1", "P", "s"), specimen("r2", "P", "s")}
	seqs := []bold.SequenceRecord{{RecordID: "r1"}}
	joined := []bold.JoinedRecord{{}}
	s := bold.NewSummary(specs, specs[:1], seqs, seqs, joined, nil, 1)
	assert.Equal(t, bold.Summary{
		Specimens:         2,
		SpecimensFiltered: 1,
		Sequences:         1,
		SequencesFiltered: 1,
		Joined:            1,
		FastaWritten:      0,
		FastaDropped:      1,
	}, s)
}

func TestSeqStats(t *testing.T) {
	stats := []bold.SeqStats{
		bold.CountBases("ACGTN-"),
		bold.CountBases("aaAA"),
		bold.CountBases(""),
	}
	assert.Equal(t, bold.SeqStats{Sequences: 1, BasePairs: 4}, stats[0])
	assert.Equal(t, bold.SeqStats{Sequences: 1, BasePairs: 2}, stats[1])
	assert.Equal(t, bold.SeqStats{Sequences: 3, BasePairs: 6},
		bold.FoldStats(stats))
	assert.Equal(t, bold.SeqStats{}, bold.FoldStats(nil))
}

func TestReferenceTables(t *testing.T) {
	t.Run("countries are copied", func(t *testing.T) {
		c := bold.Countries()
		require.NotEmpty(t, c)
		assert.Contains(t, c, "Sweden")
		assert.Contains(t, c, "Cote d'Ivoire")
		c[0] = "Atlantis"
		assert.NotEqual(t, "Atlantis", bold.Countries()[0])
	})

	t.Run("domain phyla are copied", func(t *testing.T) {
		p := bold.Animals.Phyla()
		assert.Contains(t, p, "Arthropoda")
		p[0] = "Nothing"
		assert.NotEqual(t, "Nothing", bold.Animals.Phyla()[0])
	})

	t.Run("every domain has phyla", func(t *testing.T) {
		for _, d := range bold.Domains() {
			assert.NotEmpty(t, d.Phyla(), d.String())
		}
	})
}

func TestParseDomains(t *testing.T) {
	ds, err := bold.ParseDomains([]string{"Plants", "fungi"})
	require.NoError(t, err)
	assert.Equal(t, []bold.Domain{bold.Plants, bold.Fungi}, ds)

	ds, err = bold.ParseDomains([]string{"animals", "all"})
	require.NoError(t, err)
	assert.Equal(t, bold.Domains(), ds)

	_, err = bold.ParseDomains([]string{"bacteria"})
	assert.Error(t, err)
}

func TestExtractMode(t *testing.T) {
	for _, m := range []bold.ExtractMode{bold.ExtractTaxa, bold.ExtractSeqs} {
		res, err := bold.ParseExtractMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, res)
	}
	_, err := bold.ParseExtractMode("genes")
	assert.Error(t, err)
}

func TestTaxonRecordID(t *testing.T) {
	fields := make([]string, bold.SpecimenMinFields)
	fields[bold.ColRecordID] = "r1"
	fields[bold.ColPhylum] = "Chordata"

	id, ok := bold.TaxonRecordID(fields, "Chordata")
	assert.True(t, ok)
	assert.Equal(t, "r1", id)

	_, ok = bold.TaxonRecordID(fields, "Mollusca")
	assert.False(t, ok)

	_, ok = bold.TaxonRecordID(fields[:5], "Chordata")
	assert.False(t, ok)
}

func TestGeneEntry(t *testing.T) {
	e, ok := bold.GeneEntry("r1\tCOI-5P\tACGT", "COI-5P")
	assert.True(t, ok)
	assert.Equal(t, bold.FastaEntry{Header: "r1 COI-5P", Sequence: "ACGT"}, e)

	_, ok = bold.GeneEntry("r1\tmatK\tACGT", "COI-5P")
	assert.False(t, ok)

	_, ok = bold.GeneEntry("r1\tCOI-5P", "COI-5P")
	assert.False(t, ok, "row without sequence is skipped")
}
