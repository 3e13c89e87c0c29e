package iobold

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/iofasta"
	"github.com/gnames/gnbarcode/internal/iofs"
	"github.com/gnames/gnbarcode/pkg/bold"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/lifecycle"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"golang.org/x/sync/errgroup"
)

type downloader struct {
	client
	outDir string
}

// NewDownloader creates a Downloader that saves FASTA files to outDir.
func NewDownloader(cfg *config.Config, outDir string) lifecycle.Downloader {
	return &downloader{client: newClient(cfg), outDir: outDir}
}

// FileName returns the path of the FASTA file for a taxon and a
// country. Spaces in the country become underscores, apostrophes are
// removed.
func FileName(outDir, taxon, country string) string {
	c := strings.ReplaceAll(country, " ", "_")
	c = strings.ReplaceAll(c, "'", "")
	return filepath.Join(outDir, taxon+"-"+c+".fasta")
}

type task struct {
	taxon   string
	country string
}

// Download saves sequences of every taxon for every country, running
// at most JobsNumber requests at a time. Empty geo means all countries.
// It returns totals over all saved files.
func (d *downloader) Download(
	ctx context.Context,
	taxa, geo []string,
) (bold.SeqStats, error) {
	var res bold.SeqStats
	start := time.Now()
	defer d.http.CloseIdleConnections()

	if len(geo) == 0 {
		geo = bold.Countries()
	}
	if err := gnsys.MakeDir(d.outDir); err != nil {
		return res, iofs.CreateDirError(d.outDir, err)
	}

	tasks := make([]task, 0, len(taxa)*len(geo))
	for _, t := range taxa {
		for _, c := range geo {
			tasks = append(tasks, task{taxon: t, country: c})
		}
	}
	slog.Info("Downloading BOLD sequences",
		"taxa", len(taxa), "locations", len(geo), "files", len(tasks))

	stats := make([]bold.SeqStats, len(tasks))
	bar := pb.Full.Start(len(tasks))
	bar.Set("prefix", "Downloading: ")
	bar.Set(pb.CleanOnFinish, true)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.cfg.JobsNumber, 1))
	for i, t := range tasks {
		g.Go(func() error {
			st, err := d.fetch(ctx, t)
			if err != nil {
				return err
			}
			stats[i] = st
			bar.Increment()
			return nil
		})
	}
	err := g.Wait()
	bar.Finish()
	if err != nil {
		return res, err
	}

	res = bold.FoldStats(stats)
	gn.Info(`Download complete
<em>%s</em> sequences downloaded, %s bp total.
Elapsed time: %s
`,
		humanize.Comma(int64(res.Sequences)),
		humanize.Comma(int64(res.BasePairs)),
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res, nil
}

// fetch saves sequences of one taxon and country and counts them.
func (d *downloader) fetch(ctx context.Context, t task) (bold.SeqStats, error) {
	var res bold.SeqStats
	q := url.Values{"taxon": {t.taxon}, "geo": {t.country}}
	u := d.endpointURL(sequenceEndpoint, q)
	path := FileName(d.outDir, t.taxon, t.country)

	body, err := d.get(ctx, u)
	if err != nil {
		return res, err
	}
	defer body.Close()

	err = iofs.WriteFile(d.cfg.StagingDir(), path, func(w io.Writer) error {
		if _, err := io.Copy(w, body); err != nil {
			return BoldRequestError(u, err)
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	f, err := os.Open(path)
	if err != nil {
		return res, iofs.ReadFileError(path, err)
	}
	defer f.Close()
	if res, err = iofasta.Stats(f); err != nil {
		return res, BoldFastaError(path, err)
	}

	slog.Info("Wrote sequences", "file", path,
		"sequences", res.Sequences, "bp", res.BasePairs)
	return res, nil
}
