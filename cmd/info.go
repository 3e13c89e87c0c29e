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
	"github.com/gnames/gnbarcode/internal/iobold"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/spf13/cobra"
)

// getInfoCmd returns the info command.
func getInfoCmd() *cobra.Command {
	var (
		resume  string
		numRecs int
	)

	infoCmd := &cobra.Command{
		Use:   "info IN OUT",
		Short: "Fetch BOLD specimen data for sequences of a FASTA file",
		Long: `Read sequence ids from the FASTA file IN and append their specimen
data from the BOLD public API to the tab-delimited file OUT.

Ids are sent in chunks of --num-recs. The first column of the header is
renamed to seq_id. The header is written only when OUT is new or empty.

With --resume ids already present in the first column of a previous
output are skipped. Only the part of an id before the first "|" is
compared.

Examples:
  gnbarcode info coi.fasta coi_info.tsv

  gnbarcode info coi.fasta coi_info.tsv --resume coi_info.tsv -n 50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runInfo(cmd, args[0], args[1], resume, numRecs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	infoCmd.Flags().StringVarP(
		&resume, "resume", "r", "",
		"skip ids found in this table",
	)
	infoCmd.Flags().IntVarP(
		&numRecs, "num-recs", "n", 10,
		"number of ids per request",
	)

	return infoCmd
}

func runInfo(
	cmd *cobra.Command,
	in, out, resume string,
	numRecs int,
) error {
	var infoOpts []config.Option
	if cmd.Flags().Changed("num-recs") {
		infoOpts = append(infoOpts, config.OptDownloadChunkSize(numRecs))
	}
	updateConfig(infoOpts)

	_, err := iobold.NewInfoFetcher(cfg).Fetch(cmdContext(cmd), in, out, resume)
	return err
}
