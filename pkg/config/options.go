package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptCuratePhyla sets the phylum allow-list.
// Unlike most options an empty list is accepted, it yields empty outputs.
// A nil slice leaves the current value unchanged.
func OptCuratePhyla(ss []string) Option {
	return func(c *Config) {
		if ss != nil {
			c.Curate.Phyla = cleanList(ss)
		}
	}
}

// OptCurateGenes sets the gene marker allow-list.
// Unlike most options an empty list is accepted, it yields empty outputs.
// A nil slice leaves the current value unchanged.
func OptCurateGenes(ss []string) Option {
	return func(c *Config) {
		if ss != nil {
			c.Curate.Genes = cleanList(ss)
		}
	}
}

// OptCurateScratchDir sets the directory for staged output files.
func OptCurateScratchDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Scratch Directory", s) {
			c.Curate.ScratchDir = s
		}
	}
}

// OptCurateSpecimensPath sets the path to the specimen taxonomy dump.
// Runtime-only field - not in ToOptions().
func OptCurateSpecimensPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Specimens Path", s) {
			c.Curate.SpecimensPath = s
		}
	}
}

// OptCurateSequencesPath sets the path to the sequence dump.
// Runtime-only field - not in ToOptions().
func OptCurateSequencesPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sequences Path", s) {
			c.Curate.SequencesPath = s
		}
	}
}

// OptCurateInfoPath sets the destination of the info table.
// Runtime-only field - not in ToOptions().
func OptCurateInfoPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Info Path", s) {
			c.Curate.InfoPath = s
		}
	}
}

// OptCurateFastaPath sets the destination of the FASTA file.
// Runtime-only field - not in ToOptions().
func OptCurateFastaPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("FASTA Path", s) {
			c.Curate.FastaPath = s
		}
	}
}

// OptSamplesForwardPrimer sets comma-separated forward primers.
func OptSamplesForwardPrimer(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Forward Primer", s) {
			c.Samples.ForwardPrimer = s
		}
	}
}

// OptSamplesReversePrimer sets comma-separated reverse primers.
func OptSamplesReversePrimer(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reverse Primer", s) {
			c.Samples.ReversePrimer = s
		}
	}
}

// OptSamplesSampleList sets the path to the local sample manifest.
// Runtime-only field - not in ToOptions().
func OptSamplesSampleList(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sample List", s) {
			c.Samples.SampleList = s
		}
	}
}

// OptSamplesLabelTable sets the path to the external label table.
// Runtime-only field - not in ToOptions().
func OptSamplesLabelTable(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Label Table", s) {
			c.Samples.LabelTable = s
		}
	}
}

// OptSamplesText sets the search pattern for labels.
// The pattern is kept verbatim, surrounding spaces can be significant.
// Runtime-only field - not in ToOptions().
func OptSamplesText(s string) Option {
	return func(c *Config) {
		if isValidString("Search Text", s) {
			c.Samples.Text = s
		}
	}
}

// OptSamplesIgnoreCase makes the label search case-insensitive.
// Runtime-only field - not in ToOptions().
func OptSamplesIgnoreCase(b bool) Option {
	return func(c *Config) {
		c.Samples.IgnoreCase = b
	}
}

// OptDownloadBaseURL sets the BOLD public API location.
func OptDownloadBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidURL("Download Base URL", s) {
			c.Download.BaseURL = s
		}
	}
}

// OptDownloadChunkSize sets the number of ids per specimen request.
func OptDownloadChunkSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Chunk Size", i) {
			c.Download.ChunkSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent BOLD requests.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

// cleanList trims items and removes empty ones. It never returns nil,
// so an explicitly empty allow-list stays distinguishable from an
// unset one.
func cleanList(ss []string) []string {
	res := make([]string, 0, len(ss))
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
