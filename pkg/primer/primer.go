// Package primer validates PCR primers and reports their lengths.
// Primer lengths are needed to set read trimming parameters for
// amplicon samples.
package primer

import (
	"strings"
	"unicode/utf8"
)

// iupac contains nucleotide codes accepted in primers, including
// inosine.
const iupac = "ACGTURYSWKMBDHVNI"

// Parse splits comma-separated primers, upper-cases them and validates
// every character against IUPAC nucleotide codes.
func Parse(s string) ([]string, error) {
	var res []string
	for _, v := range strings.Split(s, ",") {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if i := strings.IndexFunc(v, func(r rune) bool {
			return !strings.ContainsRune(iupac, r)
		}); i >= 0 {
			r, _ := utf8.DecodeRuneInString(v[i:])
			return nil, PrimerInvalidError(v, r, utf8.RuneCountInString(v[:i])+1)
		}
		res = append(res, v)
	}
	return res, nil
}

// MaxLen returns the length of the longest primer, or 0 for an empty
// list.
func MaxLen(primers []string) int {
	var res int
	for _, v := range primers {
		res = max(res, len(v))
	}
	return res
}

// Lengths parses forward and reverse primers and returns the longest
// length of each group.
func Lengths(fwd, rev string) (int, int, error) {
	f, err := Parse(fwd)
	if err != nil {
		return 0, 0, err
	}
	r, err := Parse(rev)
	if err != nil {
		return 0, 0, err
	}
	return MaxLen(f), MaxLen(r), nil
}
