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
	"github.com/gnames/gnbarcode/internal/iosubset"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/spf13/cobra"
)

// getSubsetCmd returns the subset command.
func getSubsetCmd() *cobra.Command {
	var (
		sampleList string
		infoFile   string
		text       string
		ignoreCase bool
	)

	subsetCmd := &cobra.Command{
		Use:   "subset",
		Short: "Select samples whose labels match a text",
		Long: `Select rows of a local sample list by searching labels of an
external table.

The info file is a headerless table of external sample ids (first
column) and free-text labels (second column). External ids of labels
matching --text (a regular expression) select rows of the sample list
whose sample id starts with one of them.

Selected rows are printed to stdout with the header of the sample list.
Matching statistics go to stderr. The command fails when no label
matches the text.

Examples:
  gnbarcode subset --sample-list samples.tsv --info-file labels.tsv \
    --text "malaise trap" -i > malaise.tsv`,
		Annotations: stdoutData,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSubset(cmd, sampleList, infoFile, text, ignoreCase)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	subsetCmd.Flags().StringVarP(
		&sampleList, "sample-list", "l", "",
		"local sample manifest with a header",
	)
	subsetCmd.Flags().StringVarP(
		&infoFile, "info-file", "f", "",
		"external table of sample ids and labels",
	)
	subsetCmd.Flags().StringVarP(
		&text, "text", "t", "",
		"regular expression to search in labels",
	)
	subsetCmd.Flags().BoolVarP(
		&ignoreCase, "ignore-case", "i", false,
		"case-insensitive search",
	)
	for _, v := range []string{"sample-list", "info-file", "text"} {
		_ = subsetCmd.MarkFlagRequired(v)
	}

	return subsetCmd
}

func runSubset(
	cmd *cobra.Command,
	sampleList, infoFile, text string,
	ignoreCase bool,
) error {
	updateConfig([]config.Option{
		config.OptSamplesSampleList(sampleList),
		config.OptSamplesLabelTable(infoFile),
		config.OptSamplesText(text),
		config.OptSamplesIgnoreCase(ignoreCase),
	})

	_, err := iosubset.New(cfg).Extract(cmdContext(cmd), cmd.OutOrStdout())
	return err
}
