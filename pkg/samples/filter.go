package samples

const (
	// TypeMarker is the value of a type column for a valid read file.
	TypeMarker = "string"
	// ExistsMarker is the value of an existence column for a read file
	// found on disk.
	ExistsMarker = "yes"
)

// qualityColumns maps optional manifest columns to the only value that
// keeps a row.
var qualityColumns = map[string]string{
	"R1_type":   TypeMarker,
	"R2_type":   TypeMarker,
	"R1_exists": ExistsMarker,
	"R2_exists": ExistsMarker,
}

// QualityColumns returns positions of quality columns present in the
// header with their required values.
func QualityColumns(header []string) map[int]string {
	res := make(map[int]string)
	for i, v := range header {
		if want, ok := qualityColumns[v]; ok {
			res[i] = want
		}
	}
	return res
}

// FilterQuality keeps rows whose quality columns hold required values.
// Columns absent from the header do not constrain rows. The caller
// guarantees every row is as wide as the header.
func FilterQuality(header []string, rows [][]string) *Manifest {
	cols := QualityColumns(header)
	res := NewManifest(header)
	for _, row := range rows {
		if passes(row, cols) {
			res.Set(row)
		}
	}
	return res
}

func passes(row []string, cols map[int]string) bool {
	for i, want := range cols {
		if i >= len(row) || row[i] != want {
			return false
		}
	}
	return true
}
