// Package iosubset implements SubsetExtractor. It finds samples whose
// external labels match a search text and prints their rows from a
// local sample manifest.
package iosubset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gnbarcode/internal/iotable"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/lifecycle"
	"github.com/gnames/gnbarcode/pkg/pattern"
	"github.com/gnames/gnbarcode/pkg/samples"
)

type extractor struct {
	cfg    *config.Config
	stderr io.Writer
}

// New creates a SubsetExtractor for paths and search settings in
// cfg.Samples.
func New(cfg *config.Config) lifecycle.SubsetExtractor {
	return &extractor{cfg: cfg, stderr: os.Stderr}
}

// Extract writes header and selected rows of the sample list to w and
// returns the number of selected rows. Nothing is written if no external
// label matches the search text.
func (e *extractor) Extract(ctx context.Context, w io.Writer) (int, error) {
	s := e.cfg.Samples

	search, err := pattern.Compile(s.Text, s.IgnoreCase)
	if err != nil {
		return 0, SubsetPatternError(s.Text, err)
	}

	labels, err := readLabels(s.LabelTable)
	if err != nil {
		return 0, err
	}
	header, rows, err := iotable.ReadTable(s.SampleList)
	if err != nil {
		return 0, err
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	ids, selected, err := samples.Subset(labels, rows, search)
	if err != nil {
		return 0, SubsetPatternError(s.Text, err)
	}
	fmt.Fprintf(e.stderr, "Matched %d samples in %s using %s\n",
		len(ids), s.LabelTable, s.Text)
	if len(ids) == 0 {
		return 0, SubsetNoMatchError(s.Text, s.LabelTable)
	}
	fmt.Fprintf(e.stderr, "Matched %d samples in sample list %s\n",
		len(selected), s.SampleList)
	slog.Info("Extracted samples",
		"text", s.Text, "external", len(ids), "selected", len(selected))

	if err = iotable.WriteRows(w, header, selected); err != nil {
		return 0, err
	}
	return len(selected), nil
}

// readLabels reads external ids and labels from the first two columns of
// a headerless table. Other columns are ignored.
func readLabels(path string) ([]samples.Label, error) {
	var res []samples.Label
	shape := iotable.Shape{MinFields: 2}
	err := iotable.ScanRows(path, shape, func(_ int, fields []string) error {
		res = append(res, samples.Label{ExternalID: fields[0], Text: fields[1]})
		return nil
	})
	return res, err
}
