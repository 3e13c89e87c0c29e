package bold

import (
	"fmt"
	"strings"
)

// ExtractMode selects what is pulled out of a BOLD dump by a single
// extraction run.
type ExtractMode int

const (
	// ExtractTaxa lists record ids of one phylum from a specimen dump.
	ExtractTaxa ExtractMode = iota
	// ExtractSeqs converts sequences of one gene from a sequence dump
	// to FASTA.
	ExtractSeqs
)

// String returns the name of the mode.
func (m ExtractMode) String() string {
	switch m {
	case ExtractTaxa:
		return "taxa"
	case ExtractSeqs:
		return "seqs"
	}
	return fmt.Sprintf("ExtractMode(%d)", int(m))
}

// ParseExtractMode converts a name to ExtractMode.
func ParseExtractMode(s string) (ExtractMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "taxa":
		return ExtractTaxa, nil
	case "seqs":
		return ExtractSeqs, nil
	}
	return 0, fmt.Errorf("unknown extraction mode '%s'", s)
}

// TaxonRecordID returns the record id of a specimen row if the row
// belongs to the phylum.
func TaxonRecordID(fields []string, phylum string) (string, bool) {
	if len(fields) < SpecimenMinFields {
		return "", false
	}
	rec := NewSpecimenRecord(fields)
	if rec.Phylum != phylum {
		return "", false
	}
	return rec.RecordID, true
}

// GeneEntry converts a line of a sequence dump to a FASTA entry if the
// line has exactly three whitespace-separated fields and the gene
// matches. Other lines are ignored.
func GeneEntry(line, gene string) (FastaEntry, bool) {
	var res FastaEntry
	fields := strings.Fields(line)
	if len(fields) != SequenceFields {
		return res, false
	}
	if fields[1] != gene {
		return res, false
	}
	res.Header = fields[0] + " " + fields[1]
	res.Sequence = fields[2]
	return res, true
}
