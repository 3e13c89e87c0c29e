package iobold

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/iofasta"
	"github.com/gnames/gnbarcode/internal/iofs"
	"github.com/gnames/gnbarcode/internal/iotable"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/lifecycle"
)

// SeqIDColumn replaces the name of the first column of specimen data.
const SeqIDColumn = "seq_id"

type infoFetcher struct {
	client
}

// NewInfoFetcher creates an InfoFetcher. Ids are requested in chunks of
// cfg.Download.ChunkSize.
func NewInfoFetcher(cfg *config.Config) lifecycle.InfoFetcher {
	return &infoFetcher{client: newClient(cfg)}
}

// Fetch reads sequence ids from fastaPath, requests their specimen data
// and appends it to out. If resume is given, ids already present in the
// first column of that table are skipped. The header is written only if
// out is new or empty. It returns the number of appended rows.
func (f *infoFetcher) Fetch(
	ctx context.Context,
	fastaPath, out, resume string,
) (int, error) {
	defer f.http.CloseIdleConnections()

	ids, err := readIDs(fastaPath)
	if err != nil {
		return 0, err
	}
	if resume != "" {
		if ids, err = skipExisting(resume, ids); err != nil {
			return 0, err
		}
	}

	writeHeader, err := isEmpty(out)
	if err != nil {
		return 0, err
	}
	file, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return 0, iotable.TableWriteError(err)
	}
	defer file.Close()

	size := max(f.cfg.Download.ChunkSize, 1)
	chunks := slices.Collect(slices.Chunk(ids, size))
	gn.Info("Fetching data for <em>%s</em> records (%d records/chunk)",
		humanize.Comma(int64(len(ids))), size)

	bar := pb.Full.Start(len(chunks))
	bar.Set("prefix", "Fetching: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var count int
	for _, chunk := range chunks {
		header, rows, err := f.specimens(ctx, chunk)
		if err != nil {
			return count, err
		}
		if !writeHeader {
			header = nil
		}
		if len(header) > 0 {
			writeHeader = false
		}
		if err = iotable.WriteRows(file, header, rows); err != nil {
			return count, err
		}
		count += len(rows)
		bar.Increment()
	}

	if err = file.Close(); err != nil {
		return count, iotable.TableWriteError(err)
	}
	slog.Info("Fetched specimen data", "ids", len(ids), "rows", count)
	return count, nil
}

// specimens requests a TSV table for process ids of sequence ids. The
// first column of the header is renamed to SeqIDColumn.
func (f *infoFetcher) specimens(
	ctx context.Context,
	ids []string,
) ([]string, [][]string, error) {
	keys := make([]string, len(ids))
	for i, v := range ids {
		keys[i] = processID(v)
	}
	q := url.Values{"ids": {strings.Join(keys, "|")}, "format": {"tsv"}}
	u := f.endpointURL(specimenEndpoint, q)
	body, err := f.get(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	defer body.Close()

	var header []string
	var rows [][]string
	err = iotable.ScanReader(body, u, func(_ int, line string) error {
		fields := strings.Split(line, "\t")
		if header == nil {
			header = fields
			header[0] = SeqIDColumn
			return nil
		}
		rows = append(rows, fields)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

func readIDs(path string) ([]string, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer r.Close()
	ids, err := iofasta.IDs(r)
	if err != nil {
		return nil, BoldFastaError(path, err)
	}
	slog.Debug("Read sequence ids", "path", path, "ids", len(ids))
	return ids, nil
}

// skipExisting removes ids whose part before the first '|' is in the
// first column of the resume table. The first row of that table is its
// header.
func skipExisting(resume string, ids []string) ([]string, error) {
	done := make(map[string]struct{})
	var header bool
	err := iotable.ScanRows(resume, iotable.Shape{MinFields: 1},
		func(_ int, fields []string) error {
			if !header {
				header = true
				return nil
			}
			done[fields[0]] = struct{}{}
			return nil
		})
	if err != nil {
		return nil, err
	}

	res := make([]string, 0, len(ids))
	for _, v := range ids {
		if _, ok := done[processID(v)]; !ok {
			res = append(res, v)
		}
	}
	gn.Info("Removed %d already existing records", len(ids)-len(res))
	return res, nil
}

// processID returns the part of a BOLD sequence id before the first
// '|'. The rest of the id holds taxon, marker and accession.
func processID(id string) string {
	res, _, _ := strings.Cut(id, "|")
	return res
}

func isEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, iofs.ReadFileError(path, err)
	}
	return info.Size() == 0, nil
}
