// Package samples contains pure logic of sequencing-sample manifests:
// pairing of paired-end read files, filtering of manifest tables by
// quality columns and selection of sample subsets.
package samples

import "slices"

// ScanHeader is the header of a manifest created from a directory scan.
var ScanHeader = []string{"sample", "R1", "R2"}

// SampleEntry is a sample with its paired-end read files.
type SampleEntry struct {
	SampleID string
	Read1    string
	Read2    string
}

// Row returns the entry in ScanHeader order.
func (e SampleEntry) Row() []string {
	return []string{e.SampleID, e.Read1, e.Read2}
}

// Manifest is a table keyed by sample id, the first column of every
// row. Setting an existing id replaces its row but keeps the position
// where the id first appeared.
type Manifest struct {
	header []string
	ids    []string
	rows   map[string][]string
}

// NewManifest creates an empty manifest with the given header.
func NewManifest(header []string) *Manifest {
	return &Manifest{
		header: slices.Clone(header),
		rows:   make(map[string][]string),
	}
}

// Set adds a row or replaces the row with the same sample id.
// Rows without fields are ignored.
func (m *Manifest) Set(row []string) {
	if len(row) == 0 {
		return
	}
	id := row[0]
	if _, ok := m.rows[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.rows[id] = slices.Clone(row)
}

// Get returns the row of a sample.
func (m *Manifest) Get(id string) ([]string, bool) {
	row, ok := m.rows[id]
	return slices.Clone(row), ok
}

// Len returns the number of samples.
func (m *Manifest) Len() int {
	return len(m.ids)
}

// Header returns a copy of the header.
func (m *Manifest) Header() []string {
	return slices.Clone(m.header)
}

// IDs returns sample ids in manifest order.
func (m *Manifest) IDs() []string {
	return slices.Clone(m.ids)
}

// Rows returns rows in manifest order.
func (m *Manifest) Rows() [][]string {
	res := make([][]string, len(m.ids))
	for i, id := range m.ids {
		res[i] = slices.Clone(m.rows[id])
	}
	return res
}
