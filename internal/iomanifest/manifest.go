// Package iomanifest implements ManifestBuilder. It creates sample
// manifests from directories with paired-end reads or from existing
// manifest tables.
package iomanifest

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/iofs"
	"github.com/gnames/gnbarcode/internal/iotable"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/lifecycle"
	"github.com/gnames/gnbarcode/pkg/samples"
)

type builder struct {
	cfg    *config.Config
	out    string
	stdout io.Writer
}

// New creates a ManifestBuilder that writes to out. An empty out or "-"
// sends the manifest to stdout.
func New(cfg *config.Config, out string) lifecycle.ManifestBuilder {
	return &builder{cfg: cfg, out: out, stdout: os.Stdout}
}

// Scan walks root recursively, pairs forward and reverse read files
// and writes a "sample R1 R2" manifest.
func (b *builder) Scan(ctx context.Context, root string) (int, error) {
	r1, r2, err := findReads(ctx, root)
	if err != nil {
		return 0, err
	}

	p := samples.PairReads(r1, r2)
	for _, v := range p.Mismatched {
		slog.Warn("Forward and reverse files belong to different samples",
			"sample", v)
		gn.Warn("Reverse read file of <em>%s</em> has a different sample name", v)
	}
	if len(p.Unpaired) > 0 {
		slog.Warn("Read files without a pair", "files", p.Unpaired)
		gn.Warn("%d read files have no pair: %s",
			len(p.Unpaired), strings.Join(p.Unpaired, ", "))
	}

	m := samples.ScanManifest(p)
	if err = b.write(m); err != nil {
		return 0, err
	}
	gn.Info("Found <em>%s</em> samples in %s",
		humanize.Comma(int64(m.Len())), root)
	return m.Len(), nil
}

func findReads(
	ctx context.Context,
	root string,
) ([]samples.ReadFile, []samples.ReadFile, error) {
	var r1, r2 []samples.ReadFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), samples.FastqExt) {
			slog.Debug("Skipping file", "path", path)
			return nil
		}
		rf, ok := samples.ParseReadFile(path)
		if !ok {
			slog.Warn("Read file does not follow naming convention", "path", path)
			gn.Warn("Skipping <em>%s</em>: name does not follow "+
				"{sample}_R1|R2[_suffix].fastq.gz", path)
			return nil
		}
		if rf.Read == 1 {
			r1 = append(r1, rf)
		} else {
			r2 = append(r2, rf)
		}
		return nil
	})
	if err != nil {
		return nil, nil, ManifestScanError(root, err)
	}
	return r1, r2, nil
}

// Filter reads a manifest table with a header and keeps rows whose
// type and existence columns mark valid read files.
func (b *builder) Filter(ctx context.Context, path string) (int, error) {
	header, rows, err := iotable.ReadTable(path)
	if err != nil {
		return 0, err
	}
	if err = checkColumns(path, header); err != nil {
		return 0, err
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	m := samples.FilterQuality(header, rows)
	if err = b.write(m); err != nil {
		return 0, err
	}
	slog.Info("Filtered manifest", "path", path,
		"rows", len(rows), "samples", m.Len())
	gn.Info("Kept <em>%s</em> of %s rows from %s",
		humanize.Comma(int64(m.Len())), humanize.Comma(int64(len(rows))), path)
	return m.Len(), nil
}

func checkColumns(path string, header []string) error {
	seen := make(map[string]struct{}, len(header))
	for _, v := range header {
		if _, ok := seen[v]; ok {
			return ManifestColumnError(path, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func (b *builder) write(m *samples.Manifest) error {
	return iofs.WriteOutput(
		b.cfg.StagingDir(), b.out, b.stdout,
		func(w io.Writer) error {
			return iotable.WriteRows(w, m.Header(), m.Rows())
		},
	)
}
