// Package gnbarcode curates BOLD DNA-barcode dumps into filtered tables and
// FASTA files, and maintains sequencing-sample manifests.
package gnbarcode

var (
	// Version of gnbarcode. It is set by build flags.
	Version = "v0.1.0"
	// Build timestamp. It is set by build flags.
	Build = "n/a"
)
