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
	"github.com/gnames/gnbarcode/internal/iomanifest"
	"github.com/spf13/cobra"
)

// getManifestCmd returns the manifest command with scan and filter
// subcommands.
func getManifestCmd() *cobra.Command {
	manifestCmd := &cobra.Command{
		Use:   "manifest",
		Short: "Create or filter sample manifests",
		Long: `Create or filter tab-delimited sample manifests.

A manifest has a sample id in its first column. When the same sample
appears several times, the last row wins.

Examples:
  # Pair *_R1*.fastq.gz and *_R2*.fastq.gz files found in a directory
  gnbarcode manifest scan runs/2024-03 -o samples.tsv

  # Keep rows whose R1_type/R2_type are "string" and
  # R1_exists/R2_exists are "yes"
  gnbarcode manifest filter checked.tsv -o samples.tsv`,
	}

	manifestCmd.AddCommand(getManifestScanCmd(), getManifestFilterCmd())
	return manifestCmd
}

func getManifestScanCmd() *cobra.Command {
	var output string

	scanCmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Build a manifest from paired-end read files",
		Long: `Walk DIR recursively and pair forward and reverse read files.

Read files are named {sample}_R1[_suffix].fastq.gz and
{sample}_R2[_suffix].fastq.gz. Forward and reverse files are sorted by
path and paired by position. Pairs with different sample names and files
without a pair are reported as warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runManifestScan(cmd, args[0], output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	scanCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"output manifest (default is stdout)",
	)
	return scanCmd
}

func getManifestFilterCmd() *cobra.Command {
	var output string

	filterCmd := &cobra.Command{
		Use:   "filter FILE",
		Short: "Keep manifest rows with valid read files",
		Long: `Read a manifest with a header and keep rows whose quality columns
have expected values: R1_type and R2_type must be "string", R1_exists
and R2_exists must be "yes". Absent columns do not constrain rows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runManifestFilter(cmd, args[0], output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	filterCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"output manifest (default is stdout)",
	)
	return filterCmd
}

func runManifestScan(cmd *cobra.Command, root, output string) error {
	updateConfig(nil)
	_, err := iomanifest.New(cfg, output).Scan(cmdContext(cmd), root)
	return err
}

func runManifestFilter(cmd *cobra.Command, path, output string) error {
	updateConfig(nil)
	_, err := iomanifest.New(cfg, output).Filter(cmdContext(cmd), path)
	return err
}
