package bold

import (
	"cmp"
	"slices"
	"strings"
)

const (
	gapChar       = "-"
	ambiguousBase = "N"
)

// CleanSequence removes every gap character and trims runs of ambiguous
// bases from both ends. The second value is false when an ambiguous base
// is left inside the cleaned sequence; such a sequence must not go to
// FASTA output.
func CleanSequence(seq string) (string, bool) {
	res := strings.ReplaceAll(seq, gapChar, "")
	res = strings.Trim(res, ambiguousBase)
	return res, !strings.Contains(res, ambiguousBase)
}

// SortBySpecies returns a copy of records ordered by species name.
// Records with the same species keep their relative order.
func SortBySpecies(recs []JoinedRecord) []JoinedRecord {
	res := slices.Clone(recs)
	slices.SortStableFunc(res, func(a, b JoinedRecord) int {
		return cmp.Compare(a.Species, b.Species)
	})
	return res
}

// FastaHeader creates the definition line of a record without the
// leading '>'.
func FastaHeader(rec JoinedRecord) string {
	return rec.RecordID + " " + strings.Join(rec.Lineage(), ";")
}

// FastaEntry is one record ready for FASTA output.
type FastaEntry struct {
	Header   string
	Sequence string
}

// FastaEntries sorts joined records by species, cleans their sequences
// and drops records whose cleaned sequence still has an ambiguous base.
// The second value is the number of dropped records.
func FastaEntries(recs []JoinedRecord) ([]FastaEntry, int) {
	var dropped int
	sorted := SortBySpecies(recs)
	res := make([]FastaEntry, 0, len(sorted))
	for _, v := range sorted {
		seq, ok := CleanSequence(v.Sequence)
		if !ok {
			dropped++
			continue
		}
		res = append(res, FastaEntry{Header: FastaHeader(v), Sequence: seq})
	}
	return res, dropped
}
