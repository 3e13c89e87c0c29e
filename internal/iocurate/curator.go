// Package iocurate implements Curator for BOLD dumps. It loads specimen
// and sequence tables, filters and joins them with pkg/bold and writes
// the info table and FASTA file through staged files.
package iocurate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/iofasta"
	"github.com/gnames/gnbarcode/internal/iofs"
	"github.com/gnames/gnbarcode/internal/iotable"
	"github.com/gnames/gnbarcode/pkg/bold"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/lifecycle"
	"github.com/gnames/gnfmt"
)

var (
	errNoPath   = errors.New("path is not set")
	errSamePath = errors.New("outputs point to the same file")
)

type curator struct {
	cfg *config.Config
}

// New creates a Curator. Input and output paths come from
// cfg.Curate.
func New(cfg *config.Config) lifecycle.Curator {
	return &curator{cfg: cfg}
}

// Curate runs the join-filter-clean pipeline. Outputs are replaced only
// when both of them are complete; a failure leaves destinations as they
// were before the run.
func (c *curator) Curate(ctx context.Context) (bold.Summary, error) {
	var res bold.Summary
	start := time.Now()
	cur := c.cfg.Curate

	if err := c.validate(); err != nil {
		return res, err
	}

	specs, err := LoadSpecimens(cur.SpecimensPath)
	if err != nil {
		return res, err
	}
	specsFiltered := bold.FilterSpecimens(specs, bold.NewAllowList(cur.Phyla))
	if err = ctx.Err(); err != nil {
		return res, err
	}

	seqs, err := LoadSequences(cur.SequencesPath)
	if err != nil {
		return res, err
	}
	seqsFiltered := bold.FilterSequences(seqs, bold.NewAllowList(cur.Genes))
	if err = ctx.Err(); err != nil {
		return res, err
	}

	joined := bold.Join(specsFiltered, seqsFiltered)
	fasta, dropped := bold.FastaEntries(joined)
	res = bold.NewSummary(
		specs, specsFiltered, seqs, seqsFiltered, joined, fasta, dropped,
	)

	if err = c.write(joined, fasta); err != nil {
		return res, err
	}

	slog.Info("Curation finished",
		"specimens", res.Specimens,
		"sequences", res.Sequences,
		"joined", res.Joined,
		"fasta", res.FastaWritten,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	report(res, time.Since(start))
	return res, nil
}

func (c *curator) validate() error {
	cur := c.cfg.Curate
	if cur.SpecimensPath == "" {
		return CurateSpecimensError("", errNoPath)
	}
	if cur.SequencesPath == "" {
		return CurateSequencesError("", errNoPath)
	}
	if cur.InfoPath == "" || cur.FastaPath == "" {
		return CurateOutputError(cur.InfoPath, cur.FastaPath, errNoPath)
	}
	if filepath.Clean(cur.InfoPath) == filepath.Clean(cur.FastaPath) {
		return CurateOutputError(cur.InfoPath, cur.FastaPath, errSamePath)
	}
	return nil
}

// write stages both outputs and commits them as a group.
func (c *curator) write(
	joined []bold.JoinedRecord,
	fasta []bold.FastaEntry,
) error {
	cur := c.cfg.Curate
	scratch := c.cfg.StagingDir()

	info, err := iofs.NewStage(scratch, cur.InfoPath)
	if err != nil {
		return err
	}
	defer info.Discard()

	seqs, err := iofs.NewStage(scratch, cur.FastaPath)
	if err != nil {
		return err
	}
	defer seqs.Discard()

	if err = WriteInfo(info, joined); err != nil {
		return CurateOutputError(cur.InfoPath, cur.FastaPath, err)
	}
	if err = iofasta.Write(seqs, fasta); err != nil {
		return CurateOutputError(cur.InfoPath, cur.FastaPath, err)
	}

	return iofs.CommitAll(info, seqs)
}

func report(s bold.Summary, dur time.Duration) {
	gn.Info(`Curation complete
Specimens: %s read, %s kept after phylum filter.
Sequences: %s read, %s kept after gene filter.
Joined records: <em>%s</em>.
FASTA records: <em>%s</em>, %s dropped with ambiguous bases.
Elapsed time: %s
`,
		comma(s.Specimens), comma(s.SpecimensFiltered),
		comma(s.Sequences), comma(s.SequencesFiltered),
		comma(s.Joined),
		comma(s.FastaWritten), comma(s.FastaDropped),
		gnfmt.TimeString(dur.Seconds()),
	)
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

// LoadSpecimens reads a headerless specimen table. Every row must have
// the same number of fields, at least bold.SpecimenMinFields, and a
// unique record id.
func LoadSpecimens(path string) ([]bold.SpecimenRecord, error) {
	var res []bold.SpecimenRecord
	seen := make(map[string]struct{})
	shape := iotable.Shape{MinFields: bold.SpecimenMinFields, Fixed: true}
	err := iotable.ScanRows(path, shape, func(n int, fields []string) error {
		rec := bold.NewSpecimenRecord(fields)
		if _, ok := seen[rec.RecordID]; ok {
			return iotable.TableDuplicateIDError(path, n, rec.RecordID)
		}
		seen[rec.RecordID] = struct{}{}
		res = append(res, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded specimens", "path", path, "records", len(res))
	return res, nil
}

// LoadSequences reads a headerless sequence table with exactly
// bold.SequenceFields fields per row.
func LoadSequences(path string) ([]bold.SequenceRecord, error) {
	var res []bold.SequenceRecord
	shape := iotable.Shape{
		MinFields: bold.SequenceFields,
		MaxFields: bold.SequenceFields,
	}
	err := iotable.ScanRows(path, shape, func(_ int, fields []string) error {
		res = append(res, bold.NewSequenceRecord(fields))
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded sequences", "path", path, "records", len(res))
	return res, nil
}

// WriteInfo writes joined records as an info table.
func WriteInfo(w io.Writer, joined []bold.JoinedRecord) error {
	rows := make([][]string, len(joined))
	for i := range joined {
		rows[i] = joined[i].InfoRow()
	}
	return iotable.WriteRows(w, bold.InfoHeader, rows)
}
