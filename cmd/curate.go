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
	"github.com/gnames/gnbarcode/internal/iocurate"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/spf13/cobra"
)

// getCurateCmd returns the curate command.
func getCurateCmd() *cobra.Command {
	var (
		specimens  string
		sequences  string
		info       string
		fasta      string
		phyla      []string
		genes      []string
		scratchDir string
	)

	curateCmd := &cobra.Command{
		Use:   "curate",
		Short: "Join BOLD specimens with sequences and clean them",
		Long: `Join a BOLD specimen dump with a per-gene sequence dump.

This command:
  1. Reads specimens (tab-delimited, no header, 13 columns)
  2. Keeps specimens of allowed phyla
  3. Reads sequences (record_id, gene, sequence)
  4. Keeps sequences of allowed genes
  5. Joins both tables by record id
  6. Writes the joined table without sequences to --info
  7. Writes cleaned sequences sorted by species to --fasta

Gzipped inputs (.gz) are read transparently. Outputs are staged in the
scratch directory and moved to their place only after both are complete.
If either destination cannot be replaced, both keep their old content.

Allow-lists default to config values (curate.phyla, curate.genes).

Examples:
  gnbarcode curate --specimens taxa.tsv --sequences seqs.tsv \
    --info info.tsv --fasta clean.fasta

  gnbarcode curate -s taxa.tsv.gz -q seqs.tsv.gz -i info.tsv -f clean.fa \
    --phyla Arthropoda,Chordata --genes COI-5P`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCurate(
				cmd, specimens, sequences, info, fasta,
				phyla, genes, scratchDir,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	curateCmd.Flags().StringVarP(
		&specimens, "specimens", "s", "",
		"specimen dump (taxonomy table)",
	)
	curateCmd.Flags().StringVarP(
		&sequences, "sequences", "q", "",
		"sequence dump (record_id, gene, sequence)",
	)
	curateCmd.Flags().StringVarP(
		&info, "info", "i", "",
		"output table of joined records",
	)
	curateCmd.Flags().StringVarP(
		&fasta, "fasta", "f", "",
		"output FASTA file",
	)
	curateCmd.Flags().StringSliceVarP(
		&phyla, "phyla", "p", nil,
		"allowed phyla (default from config)",
	)
	curateCmd.Flags().StringSliceVarP(
		&genes, "genes", "g", nil,
		"allowed gene markers (default from config)",
	)
	scratchDirFlag(curateCmd, &scratchDir)

	for _, v := range []string{"specimens", "sequences", "info", "fasta"} {
		_ = curateCmd.MarkFlagRequired(v)
	}

	return curateCmd
}

func runCurate(
	cmd *cobra.Command,
	specimens, sequences, info, fasta string,
	phyla, genes []string,
	scratchDir string,
) error {
	curateOpts := []config.Option{
		config.OptCurateSpecimensPath(specimens),
		config.OptCurateSequencesPath(sequences),
		config.OptCurateInfoPath(info),
		config.OptCurateFastaPath(fasta),
	}
	if cmd.Flags().Changed("phyla") {
		curateOpts = append(curateOpts, config.OptCuratePhyla(phyla))
	}
	if cmd.Flags().Changed("genes") {
		curateOpts = append(curateOpts, config.OptCurateGenes(genes))
	}
	curateOpts = append(curateOpts, scratchDirOpts(cmd, scratchDir)...)
	updateConfig(curateOpts)

	_, err := iocurate.New(cfg).Curate(cmdContext(cmd))
	return err
}
