// Package config provides configuration management for gnbarcode.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Curate: phyla, genes, scratch_dir
//   - Download: base_url, chunk_size
//   - Samples: forward_primer, reverse_primer
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Curate.SpecimensPath, SequencesPath, InfoPath, FastaPath
//   - Samples.SampleList, LabelTable, Text, IgnoreCase
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNBARCODE_ prefix with underscores for nesting:
//
//	GNBARCODE_CURATE_PHYLA=Arthropoda,Chordata
//	GNBARCODE_CURATE_GENES=COI-5P
//	GNBARCODE_LOG_LEVEL=info
//	GNBARCODE_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gnbarcode configuration.
type Config struct {
	// Curate contains settings of the join-filter-clean pipeline.
	Curate CurateConfig `mapstructure:"curate" yaml:"curate"`

	// Samples contains settings for manifests and subset extraction.
	Samples SamplesConfig `mapstructure:"samples" yaml:"samples"`

	// Download contains settings of BOLD public API access.
	Download DownloadConfig `mapstructure:"download" yaml:"download"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent BOLD requests.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// CurateConfig contains settings for joining specimen and sequence tables.
type CurateConfig struct {
	// Phyla is the phylum allow-list. An empty list is valid and
	// produces empty outputs.
	Phyla []string `mapstructure:"phyla" yaml:"phyla"`

	// Genes is the gene marker allow-list. An empty list is valid and
	// produces empty outputs.
	Genes []string `mapstructure:"genes" yaml:"genes"`

	// ScratchDir keeps staged output files until they are complete.
	// When empty, the cache directory is used.
	ScratchDir string `mapstructure:"scratch_dir" yaml:"scratch_dir"`

	// SpecimensPath is the taxonomy dump (tab-delimited, no header).
	SpecimensPath string `yaml:"-"`

	// SequencesPath is the per-gene sequence dump
	// (record_id, gene, sequence).
	SequencesPath string `yaml:"-"`

	// InfoPath is the destination of the joined table without sequences.
	InfoPath string `yaml:"-"`

	// FastaPath is the destination of cleaned sequences.
	FastaPath string `yaml:"-"`
}

// SamplesConfig contains settings for sample manifests.
type SamplesConfig struct {
	// ForwardPrimer is one or more comma-separated forward primers.
	ForwardPrimer string `mapstructure:"forward_primer" yaml:"forward_primer"`

	// ReversePrimer is one or more comma-separated reverse primers.
	ReversePrimer string `mapstructure:"reverse_primer" yaml:"reverse_primer"`

	// SampleList is a local manifest, the first column is a sample id.
	SampleList string `yaml:"-"`

	// LabelTable maps external ids (first column) to free-text labels
	// (second column).
	LabelTable string `yaml:"-"`

	// Text is a regular expression searched for in labels.
	Text string `yaml:"-"`

	// IgnoreCase makes Text case-insensitive.
	IgnoreCase bool `yaml:"-"`
}

// DownloadConfig contains settings for BOLD public API.
type DownloadConfig struct {
	// BaseURL of BOLD public API.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// ChunkSize is the number of record ids sent in one specimen request.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Curate: CurateConfig{
			Phyla: []string{"Arthropoda"},
			Genes: []string{"COI-5P"},
		},
		Download: DownloadConfig{
			BaseURL:   "http://boldsystems.org/index.php/API_Public",
			ChunkSize: 10,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
