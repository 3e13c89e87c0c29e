// Package iotable reads and writes tab-separated tables.
//
// Fields are separated by single tabs and never quoted, which is how
// BOLD dumps and sample manifests are written. Files with the ".gz"
// extension are decompressed on the fly.
package iotable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// maxLine limits the length of a table line. Sequence tables keep whole
// genomic fragments on one line.
const maxLine = 64 << 20

// Shape describes allowed widths of table rows.
type Shape struct {
	// MinFields is the smallest allowed number of fields.
	MinFields int
	// MaxFields is the largest allowed number of fields, 0 means no
	// limit.
	MaxFields int
	// Fixed requires every row to be as wide as the first one.
	Fixed bool
}

func (s Shape) String() string {
	switch {
	case s.MinFields == s.MaxFields:
		return fmt.Sprintf("%d", s.MinFields)
	case s.MaxFields > 0:
		return fmt.Sprintf("%d to %d", s.MinFields, s.MaxFields)
	default:
		return fmt.Sprintf("at least %d", s.MinFields)
	}
}

func (s Shape) fits(n int) bool {
	return n >= s.MinFields && (s.MaxFields == 0 || n <= s.MaxFields)
}

// Open opens a file for reading. Files ending with ".gz" are
// decompressed.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, TableOpenError(path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := pgzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, TableOpenError(path, err)
	}
	return &gzFile{Reader: gz, f: f}, nil
}

type gzFile struct {
	*pgzip.Reader
	f *os.File
}

func (g *gzFile) Close() error {
	err := g.Reader.Close()
	if ferr := g.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// ScanLines calls fn for every non-empty line of the file with its
// 1-based line number. Trailing carriage returns are removed.
func ScanLines(path string, fn func(n int, line string) error) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	return ScanReader(r, path, fn)
}

// ScanReader works as ScanLines for data from r. The name identifies
// the source in errors.
func ScanReader(r io.Reader, name string, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var n int
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return TableOpenError(name, err)
	}
	return nil
}

// ScanRows splits non-empty lines into fields, checks them against
// shape and calls fn for every row.
func ScanRows(
	path string,
	shape Shape,
	fn func(n int, fields []string) error,
) error {
	width := -1
	return ScanLines(path, func(n int, line string) error {
		fields := strings.Split(line, "\t")
		if !shape.fits(len(fields)) {
			return TableFieldCountError(path, n, len(fields), shape.String())
		}
		if shape.Fixed {
			if width < 0 {
				width = len(fields)
			}
			if len(fields) != width {
				return TableFieldCountError(
					path, n, len(fields), fmt.Sprintf("%d", width),
				)
			}
		}
		return fn(n, fields)
	})
}

// ReadRows reads all rows of a table without header.
func ReadRows(path string, shape Shape) ([][]string, error) {
	var res [][]string
	err := ScanRows(path, shape, func(_ int, fields []string) error {
		res = append(res, fields)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReadTable reads a table whose first row is a header. Every row must
// be as wide as the header.
func ReadTable(path string) ([]string, [][]string, error) {
	rows, err := ReadRows(path, Shape{MinFields: 1, Fixed: true})
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, TableHeaderError(path)
	}
	return rows[0], rows[1:], nil
}

// WriteRows writes an optional header and rows as tab-separated lines.
func WriteRows(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	if len(header) > 0 {
		if err := writeRow(bw, header); err != nil {
			return TableWriteError(err)
		}
	}
	for _, row := range rows {
		if err := writeRow(bw, row); err != nil {
			return TableWriteError(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return TableWriteError(err)
	}
	return nil
}

func writeRow(w *bufio.Writer, row []string) error {
	_, err := w.WriteString(strings.Join(row, "\t") + "\n")
	return err
}
