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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/primer"
	"github.com/spf13/cobra"
)

// getPrimersCmd returns the primers command.
func getPrimersCmd() *cobra.Command {
	var fwd, rev string

	primersCmd := &cobra.Command{
		Use:   "primers",
		Short: "Print maximum lengths of forward and reverse primers",
		Long: `Validate PCR primers and print the length of the longest forward and
the longest reverse primer. The lengths are used to trim primers from
reads.

Several primers are separated by commas. IUPAC nucleotide codes and
inosine (I) are accepted. Without flags primers come from config
(samples.forward_primer, samples.reverse_primer).

Output is tab-delimited: "forward<TAB>reverse".

Examples:
  gnbarcode primers --fwd GGDACWGGWTGAACWGTWTAYCCHCC \
    --rev TANACYTCNGGRTGNCCRAARAAYCA`,
		Annotations: stdoutData,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPrimers(cmd, fwd, rev)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	primersCmd.Flags().StringVarP(
		&fwd, "fwd", "f", "",
		"forward primers (default from config)",
	)
	primersCmd.Flags().StringVarP(
		&rev, "rev", "r", "",
		"reverse primers (default from config)",
	)

	return primersCmd
}

func runPrimers(cmd *cobra.Command, fwd, rev string) error {
	var primerOpts []config.Option
	if cmd.Flags().Changed("fwd") {
		primerOpts = append(primerOpts, config.OptSamplesForwardPrimer(fwd))
	}
	if cmd.Flags().Changed("rev") {
		primerOpts = append(primerOpts, config.OptSamplesReversePrimer(rev))
	}
	updateConfig(primerOpts)

	f, r, err := primer.Lengths(
		cfg.Samples.ForwardPrimer, cfg.Samples.ReversePrimer,
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", f, r)
	return err
}
