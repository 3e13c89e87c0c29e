package bold

// AllowList is a closed set of permitted values. An empty AllowList
// permits nothing.
type AllowList map[string]struct{}

// NewAllowList creates an AllowList from given values.
func NewAllowList(vals []string) AllowList {
	res := make(AllowList, len(vals))
	for _, v := range vals {
		res[v] = struct{}{}
	}
	return res
}

// Has reports if s is in the list.
func (a AllowList) Has(s string) bool {
	_, ok := a[s]
	return ok
}

// FilterSpecimens keeps specimens with a phylum from the allow-list.
// The order of records is preserved.
func FilterSpecimens(recs []SpecimenRecord, phyla AllowList) []SpecimenRecord {
	res := make([]SpecimenRecord, 0, len(recs))
	for _, v := range recs {
		if phyla.Has(v.Phylum) {
			res = append(res, v)
		}
	}
	return res
}

// FilterSequences keeps sequences of a gene from the allow-list.
// The order of records is preserved.
func FilterSequences(recs []SequenceRecord, genes AllowList) []SequenceRecord {
	res := make([]SequenceRecord, 0, len(recs))
	for _, v := range recs {
		if genes.Has(v.Gene) {
			res = append(res, v)
		}
	}
	return res
}

// Join performs an inner join of specimens and sequences on RecordID.
// Output follows the order of specimens, and for one specimen the
// order of its sequences. Records present on only one side are dropped,
// not every specimen has every gene sequenced.
func Join(specs []SpecimenRecord, seqs []SequenceRecord) []JoinedRecord {
	byID := make(map[string][]SequenceRecord)
	for _, v := range seqs {
		byID[v.RecordID] = append(byID[v.RecordID], v)
	}

	var res []JoinedRecord
	for _, sp := range specs {
		for _, sq := range byID[sp.RecordID] {
			res = append(res, JoinedRecord{
				SpecimenRecord: sp,
				Gene:           sq.Gene,
				Sequence:       sq.Sequence,
			})
		}
	}
	return res
}
