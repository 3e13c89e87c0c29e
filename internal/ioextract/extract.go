// Package ioextract implements Extractor for the two extraction modes of
// BOLD dumps: record ids of a phylum and FASTA sequences of a gene.
package ioextract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/iofasta"
	"github.com/gnames/gnbarcode/internal/iofs"
	"github.com/gnames/gnbarcode/internal/iotable"
	"github.com/gnames/gnbarcode/pkg/bold"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/lifecycle"
)

// checkEvery sets how often, in lines, cancellation is checked.
const checkEvery = 100_000

type extractor struct {
	cfg   *config.Config
	mode  bold.ExtractMode
	value string
}

// New creates an Extractor. For ExtractTaxa value is a phylum, for
// ExtractSeqs it is a gene marker.
func New(cfg *config.Config, mode bold.ExtractMode, value string) lifecycle.Extractor {
	return &extractor{cfg: cfg, mode: mode, value: value}
}

// Extract reads the dump in and writes extracted data to out through
// a staged file. It returns the number of extracted records.
func (e *extractor) Extract(ctx context.Context, in, out string) (int, error) {
	var count int
	var convert func(string) (string, bool)

	switch e.mode {
	case bold.ExtractTaxa:
		convert = e.taxon
	case bold.ExtractSeqs:
		convert = e.sequence
	default:
		return 0, fmt.Errorf("unsupported extraction mode %s", e.mode)
	}

	err := iofs.WriteOutput(e.cfg.StagingDir(), out, os.Stdout,
		func(w io.Writer) error {
			return iotable.ScanLines(in, func(n int, line string) error {
				if n%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				res, ok := convert(line)
				if !ok {
					return nil
				}
				count++
				_, err := io.WriteString(w, res)
				return err
			})
		})
	if err != nil {
		return 0, err
	}

	slog.Info("Extraction finished", "mode", e.mode.String(),
		"value", e.value, "input", in, "records", count)
	gn.Info("Extracted <em>%s</em> records of %s from %s",
		humanize.Comma(int64(count)), e.value, in)
	return count, nil
}

func (e *extractor) taxon(line string) (string, bool) {
	id, ok := bold.TaxonRecordID(strings.Split(line, "\t"), e.value)
	if !ok {
		return "", false
	}
	return id + "\n", true
}

func (e *extractor) sequence(line string) (string, bool) {
	entry, ok := bold.GeneEntry(line, e.value)
	if !ok {
		return "", false
	}
	var sb strings.Builder
	_ = iofasta.WriteEntry(&sb, entry)
	return sb.String(), true
}
