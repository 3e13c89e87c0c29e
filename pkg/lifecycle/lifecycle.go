// Package lifecycle defines the stages of gnbarcode workflows. Config is
// provided to implementations during construction.
package lifecycle

import (
	"context"
	"io"

	"github.com/gnames/gnbarcode/pkg/bold"
)

// Curator joins a BOLD specimen dump with a sequence dump, filters both
// by allow-lists and writes an info table with a cleaned FASTA file.
// Running it twice on the same inputs produces identical outputs.
type Curator interface {
	Curate(ctx context.Context) (bold.Summary, error)
}

// ManifestBuilder creates a sample manifest and returns the number of
// samples in it.
type ManifestBuilder interface {
	// Scan finds paired-end read files under a directory.
	Scan(ctx context.Context, root string) (int, error)

	// Filter keeps rows of an existing manifest that pass quality
	// columns.
	Filter(ctx context.Context, path string) (int, error)
}

// SubsetExtractor selects manifest rows of samples whose external
// labels match a search text. The selected table goes to w.
type SubsetExtractor interface {
	Extract(ctx context.Context, w io.Writer) (int, error)
}

// Extractor pulls one kind of data out of a BOLD dump.
type Extractor interface {
	Extract(ctx context.Context, in, out string) (int, error)
}

// Downloader saves BOLD sequences for taxa and countries as FASTA files.
type Downloader interface {
	Download(ctx context.Context, taxa, geo []string) (bold.SeqStats, error)
}

// InfoFetcher retrieves BOLD specimen data for sequences of a FASTA file.
type InfoFetcher interface {
	Fetch(ctx context.Context, fastaPath, out, resume string) (int, error)
}
