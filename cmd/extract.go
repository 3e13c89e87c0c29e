/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/ioextract"
	"github.com/gnames/gnbarcode/pkg/bold"
	"github.com/spf13/cobra"
)

// getExtractCmd returns the extract command with one subcommand per
// extraction mode.
func getExtractCmd() *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract record ids or sequences from BOLD dumps",
		Long: `Extract data of a single phylum or gene from BOLD dumps.

Examples:
  # Record ids of a phylum from a specimen dump
  gnbarcode extract taxa --phylum Arthropoda taxa.tsv.gz arthropoda.txt

  # FASTA sequences of a gene from a sequence dump
  gnbarcode extract seqs --gene COI-5P seqs.tsv.gz coi.fasta

Use "-" as OUT to print to stdout.`,
	}

	extractCmd.AddCommand(
		getExtractModeCmd(bold.ExtractTaxa, "phylum",
			"Extract record ids of a phylum",
			"phylum to extract (case-sensitive)"),
		getExtractModeCmd(bold.ExtractSeqs, "gene",
			"Extract sequences of a gene to FASTA",
			"gene marker to extract (case-sensitive)"),
	)
	return extractCmd
}

func getExtractModeCmd(
	mode bold.ExtractMode,
	flag, short, usage string,
) *cobra.Command {
	var (
		value      string
		scratchDir string
	)

	modeCmd := &cobra.Command{
		Use:   mode.String() + " IN OUT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExtract(cmd, value, args[0], args[1], scratchDir)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	modeCmd.Flags().StringVar(&value, flag, "", usage)
	_ = modeCmd.MarkFlagRequired(flag)
	scratchDirFlag(modeCmd, &scratchDir)
	return modeCmd
}

func runExtract(
	cmd *cobra.Command,
	value, in, out, scratchDir string,
) error {
	mode, err := bold.ParseExtractMode(cmd.Name())
	if err != nil {
		return err
	}
	updateConfig(scratchDirOpts(cmd, scratchDir))

	_, err = ioextract.New(cfg, mode, value).Extract(cmdContext(cmd), in, out)
	return err
}
