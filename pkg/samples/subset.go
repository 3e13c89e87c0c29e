package samples

import (
	"github.com/gnames/gnbarcode/pkg/pattern"
)

// Label connects an external sample id to free text supplied by a
// sequencing facility user.
type Label struct {
	ExternalID string
	Text       string
}

// MatchLabels returns unique external ids whose label contains a match
// of m, in the order of labels.
func MatchLabels(labels []Label, m *pattern.Matcher) ([]string, error) {
	var res []string
	seen := make(map[string]struct{})
	for _, v := range labels {
		ok, err := m.Match(v.Text)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if _, dup := seen[v.ExternalID]; dup {
			continue
		}
		seen[v.ExternalID] = struct{}{}
		res = append(res, v.ExternalID)
	}
	return res, nil
}

// SelectRows returns rows whose first column matches m. The order of
// rows is preserved. Rows without fields are skipped.
func SelectRows(rows [][]string, m *pattern.Matcher) ([][]string, error) {
	var res [][]string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		ok, err := m.Match(row[0])
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, row)
		}
	}
	return res, nil
}

// Subset selects rows of a local manifest whose sample id starts with
// an external id matched by the search. The first value holds matched
// external ids. An empty list of external ids is returned without
// error; deciding if it is fatal is up to the caller.
func Subset(
	labels []Label,
	rows [][]string,
	search *pattern.Matcher,
) ([]string, [][]string, error) {
	ids, err := MatchLabels(labels, search)
	if err != nil || len(ids) == 0 {
		return ids, nil, err
	}
	prefix, err := pattern.AnchoredPrefix(ids)
	if err != nil {
		return ids, nil, err
	}
	res, err := SelectRows(rows, prefix)
	return ids, res, err
}
