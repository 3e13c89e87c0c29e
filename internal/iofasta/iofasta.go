// Package iofasta reads FASTA data with biogo and writes curated FASTA
// records.
package iofasta

import (
	"bufio"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/gnames/gnbarcode/pkg/bold"
)

// Record is a FASTA record. ID is the first word of the definition
// line, Desc is the rest of it.
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// Scan calls fn for every record in r.
func Scan(r io.Reader, fn func(Record) error) error {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		rec := Record{ID: s.ID, Desc: s.Desc, Seq: letters(s.Seq)}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return sc.Error()
}

func letters(ls alphabet.Letters) string {
	bs := make([]byte, len(ls))
	for i, v := range ls {
		bs[i] = byte(v)
	}
	return string(bs)
}

// IDs returns identifiers of all records in r in file order.
func IDs(r io.Reader) ([]string, error) {
	var res []string
	err := Scan(r, func(rec Record) error {
		res = append(res, rec.ID)
		return nil
	})
	return res, err
}

// Stats folds sequence and base pair counts of all records in r.
func Stats(r io.Reader) (bold.SeqStats, error) {
	var res bold.SeqStats
	err := Scan(r, func(rec Record) error {
		res = res.Add(bold.CountBases(rec.Seq))
		return nil
	})
	return res, err
}

// Write writes entries as two-line FASTA records, the sequence is not
// wrapped.
func Write(w io.Writer, entries []bold.FastaEntry) error {
	bw := bufio.NewWriter(w)
	for _, v := range entries {
		if err := WriteEntry(bw, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteEntry writes a single FASTA record.
func WriteEntry(w io.StringWriter, e bold.FastaEntry) error {
	for _, s := range []string{">", e.Header, "\n", e.Sequence, "\n"} {
		if _, err := w.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}
