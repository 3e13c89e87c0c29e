package samples

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// FastqExt is the extension of read files.
const FastqExt = ".fastq.gz"

// readFileRe matches {prefix}_R{1|2}{suffix}.fastq.gz, where suffix is
// empty or starts with an underscore. Prefix is greedy, so the last
// read marker of a name wins.
var readFileRe = regexp.MustCompile(`^(.+)_R([12])(_[^/]*)?\.fastq\.gz$`)

// ReadFile is a paired-end read file found during a directory scan.
type ReadFile struct {
	Path     string
	SampleID string
	// Read is 1 for forward and 2 for reverse reads.
	Read int
}

// ParseReadFile checks if the file name follows the paired-end naming
// convention. Sample id is the part of the name before the read marker
// with surrounding underscores removed.
func ParseReadFile(path string) (ReadFile, bool) {
	res := ReadFile{Path: path}
	m := readFileRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return res, false
	}
	res.SampleID = strings.Trim(m[1], "_")
	if res.SampleID == "" {
		return res, false
	}
	res.Read = 1
	if m[2] == "2" {
		res.Read = 2
	}
	return res, true
}

// Pairing is the result of matching forward and reverse read files.
type Pairing struct {
	// Entries are samples in the order of sorted forward read paths.
	Entries []SampleEntry
	// Unpaired are paths left when one list is longer than the other.
	Unpaired []string
	// Mismatched are sample ids whose reverse file has a different
	// prefix than the forward one.
	Mismatched []string
}

// PairReads sorts forward and reverse files by path independently and
// pairs them by position. Sample ids come from forward files.
//
// Pairing by position silently mispairs samples when the two lists are
// not isomorphic. Such cases are reported in Mismatched and Unpaired,
// but the pairing itself is kept as is, downstream steps depend on it.
func PairReads(r1, r2 []ReadFile) Pairing {
	byPath := func(a, b ReadFile) int { return strings.Compare(a.Path, b.Path) }
	r1 = slices.Clone(r1)
	r2 = slices.Clone(r2)
	slices.SortFunc(r1, byPath)
	slices.SortFunc(r2, byPath)

	var res Pairing
	n := min(len(r1), len(r2))
	for i := range n {
		e := SampleEntry{
			SampleID: r1[i].SampleID,
			Read1:    r1[i].Path,
			Read2:    r2[i].Path,
		}
		if r2[i].SampleID != r1[i].SampleID {
			res.Mismatched = append(res.Mismatched, e.SampleID)
		}
		res.Entries = append(res.Entries, e)
	}
	for _, v := range r1[n:] {
		res.Unpaired = append(res.Unpaired, v.Path)
	}
	for _, v := range r2[n:] {
		res.Unpaired = append(res.Unpaired, v.Path)
	}
	return res
}

// ScanManifest converts a pairing to a manifest. Entries with the same
// sample id overwrite earlier ones.
func ScanManifest(p Pairing) *Manifest {
	res := NewManifest(ScanHeader)
	for _, v := range p.Entries {
		res.Set(v.Row())
	}
	return res
}
