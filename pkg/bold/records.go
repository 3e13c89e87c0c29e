// Package bold contains pure logic for curating BOLD barcode dumps:
// record types, allow-list filters, the inner join of specimen and
// sequence records, sequence cleaning and FASTA formatting.
//
// The package does no I/O. Loading and writing happen in
// internal/iocurate.
package bold

import "strings"

// Ordinal columns of the specimen taxonomy dump.
const (
	ColRecordID   = 0
	ColExternalID = 4
	ColPhylum     = 7
	ColClass      = 8
	ColOrder      = 9
	ColFamily     = 10
	ColGenus      = 11
	ColSpecies    = 12

	// SpecimenMinFields is the smallest width of a specimen row that
	// still holds all recognized columns.
	SpecimenMinFields = ColSpecies + 1

	// SequenceFields is the exact width of a sequence row.
	SequenceFields = 3
)

// InfoHeader is the column order of the info table. It is the join
// schema without the sequence payload.
var InfoHeader = []string{
	"record_id", "external_id", "phylum", "class", "order",
	"family", "genus", "species", "gene",
}

// SpecimenRecord is one row of the taxonomy dump. Missing values are
// empty strings.
type SpecimenRecord struct {
	RecordID   string
	ExternalID string
	Phylum     string
	Class      string
	Order      string
	Family     string
	Genus      string
	Species    string
}

// SequenceRecord is one gene sequence of a specimen. Several records
// can share RecordID when more than one marker was sequenced.
type SequenceRecord struct {
	RecordID string
	Gene     string
	Sequence string
}

// JoinedRecord combines a specimen with one of its sequences.
type JoinedRecord struct {
	SpecimenRecord
	Gene     string
	Sequence string
}

// NewSpecimenRecord builds a record from a row of the taxonomy dump.
// Values are kept verbatim, an absent column becomes an empty string.
func NewSpecimenRecord(fields []string) SpecimenRecord {
	get := func(i int) string {
		if i >= len(fields) {
			return ""
		}
		return fields[i]
	}
	return SpecimenRecord{
		RecordID:   get(ColRecordID),
		ExternalID: get(ColExternalID),
		Phylum:     get(ColPhylum),
		Class:      get(ColClass),
		Order:      get(ColOrder),
		Family:     get(ColFamily),
		Genus:      get(ColGenus),
		Species:    get(ColSpecies),
	}
}

// NewSequenceRecord builds a record from a row of the sequence dump.
func NewSequenceRecord(fields []string) SequenceRecord {
	var res SequenceRecord
	if len(fields) < SequenceFields {
		return res
	}
	res.RecordID = fields[0]
	res.Gene = fields[1]
	res.Sequence = strings.TrimSpace(fields[2])
	return res
}

// Lineage returns taxonomy ranks from phylum to species.
func (s SpecimenRecord) Lineage() []string {
	return []string{
		s.Phylum, s.Class, s.Order, s.Family, s.Genus, s.Species,
	}
}

// InfoRow returns values of the record in InfoHeader order.
func (j JoinedRecord) InfoRow() []string {
	return []string{
		j.RecordID, j.ExternalID, j.Phylum, j.Class, j.Order,
		j.Family, j.Genus, j.Species, j.Gene,
	}
}
