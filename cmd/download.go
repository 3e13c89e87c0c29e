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
	"errors"
	"slices"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/iobold"
	"github.com/gnames/gnbarcode/pkg/bold"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/spf13/cobra"
)

// getDownloadCmd returns the download command.
func getDownloadCmd() *cobra.Command {
	var (
		taxa    []string
		domains []string
		geo     []string
		outDir  string
		jobs    int
	)

	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download BOLD sequences of taxa per country",
		Long: `Download sequences from the BOLD public API.

Every taxon is downloaded separately for every location and saved to
{outdir}/{taxon}-{location}.fasta. Spaces in locations become
underscores, apostrophes are removed. Responses are converted from
windows-1252 to UTF-8.

Taxa come from --taxa, from --domains (all, animals, plants, fungi,
protists), or from both. Without --geo all countries known to BOLD are
used.

Examples:
  gnbarcode download --taxa Arthropoda --geo Canada,"United States" -o bold

  gnbarcode download --domains fungi,plants -o bold -j 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDownload(cmd, taxa, domains, geo, outDir, jobs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	downloadCmd.Flags().StringSliceVarP(
		&taxa, "taxa", "t", nil,
		"taxa to download",
	)
	downloadCmd.Flags().StringSliceVarP(
		&domains, "domains", "d", nil,
		"domains to download (all|animals|plants|fungi|protists)",
	)
	downloadCmd.Flags().StringSliceVarP(
		&geo, "geo", "g", nil,
		"locations to download (default all countries)",
	)
	downloadCmd.Flags().StringVarP(
		&outDir, "outdir", "o", ".",
		"directory for downloaded FASTA files",
	)
	downloadCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of concurrent requests (default from config)",
	)

	return downloadCmd
}

func runDownload(
	cmd *cobra.Command,
	taxa, domains, geo []string,
	outDir string,
	jobs int,
) error {
	var downloadOpts []config.Option
	if cmd.Flags().Changed("jobs") {
		downloadOpts = append(downloadOpts, config.OptJobsNumber(jobs))
	}
	updateConfig(downloadOpts)

	names, err := downloadTaxa(taxa, domains)
	if err != nil {
		return err
	}

	_, err = iobold.NewDownloader(cfg, outDir).
		Download(cmdContext(cmd), names, geo)
	return err
}

// downloadTaxa merges explicit taxa with phyla of domains, keeping the
// first occurrence of each name.
func downloadTaxa(taxa, domains []string) ([]string, error) {
	ds, err := bold.ParseDomains(domains)
	if err != nil {
		return nil, err
	}
	res := slices.Clone(taxa)
	for _, d := range ds {
		res = append(res, d.Phyla()...)
	}

	var uniq []string
	for _, v := range res {
		if v != "" && !slices.Contains(uniq, v) {
			uniq = append(uniq, v)
		}
	}
	if len(uniq) == 0 {
		gn.Warn("Use <em>--taxa</em> or <em>--domains</em> to select taxa")
		return nil, errors.New("no taxa to download")
	}
	return uniq, nil
}
