package bold

import "strings"

// Summary keeps record counts of every stage of a curation run.
type Summary struct {
	Specimens         int
	SpecimensFiltered int
	Sequences         int
	SequencesFiltered int
	Joined            int
	FastaWritten      int
	FastaDropped      int
}

// NewSummary computes stage counts of a curation run.
func NewSummary(
	specs, specsFiltered []SpecimenRecord,
	seqs, seqsFiltered []SequenceRecord,
	joined []JoinedRecord,
	fasta []FastaEntry,
	dropped int,
) Summary {
	return Summary{
		Specimens:         len(specs),
		SpecimensFiltered: len(specsFiltered),
		Sequences:         len(seqs),
		SequencesFiltered: len(seqsFiltered),
		Joined:            len(joined),
		FastaWritten:      len(fasta),
		FastaDropped:      dropped,
	}
}

// SeqStats counts sequences and unambiguous base pairs.
type SeqStats struct {
	Sequences int
	BasePairs int
}

// Add returns the sum of two stats.
func (s SeqStats) Add(o SeqStats) SeqStats {
	return SeqStats{
		Sequences: s.Sequences + o.Sequences,
		BasePairs: s.BasePairs + o.BasePairs,
	}
}

// CountBases returns stats of one sequence. Only upper-case A, C, G and
// T are counted as base pairs.
func CountBases(seq string) SeqStats {
	var bp int
	for _, b := range []string{"A", "C", "G", "T"} {
		bp += strings.Count(seq, b)
	}
	return SeqStats{Sequences: 1, BasePairs: bp}
}

// FoldStats reduces a list of stats to their total.
func FoldStats(stats []SeqStats) SeqStats {
	var res SeqStats
	for _, v := range stats {
		res = res.Add(v)
	}
	return res
}
