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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/iofs"
	"github.com/gnames/gnbarcode/internal/iologger"
	app "github.com/gnames/gnbarcode/pkg"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	homeDir   string
	opts      []config.Option
	cfg       *config.Config
	logCloser io.Closer
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnbarcode",
		Short:   "gnbarcode curates BOLD barcodes and sequencing sample manifests",
		Long: `gnbarcode prepares DNA barcode reference data and sample lists for
metabarcoding workflows.

BOLD data:
  - curate: join specimen and sequence dumps, filter them by phyla and
    genes, write an info table and a cleaned FASTA file
  - extract: pull record ids of a phylum or sequences of a gene out of
    BOLD dumps
  - download: save BOLD sequences of taxa per country
  - info: fetch BOLD specimen data for sequences of a FASTA file

Samples:
  - manifest: build a sample manifest from a directory with reads or
    filter an existing one
  - subset: select samples whose external labels match a text
  - primers: report lengths of PCR primers

Without a subcommand the effective configuration is printed as YAML.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNBARCODE_*)
  3. Config file (~/.config/gnbarcode/config.yaml)
  4. Built-in defaults

Environment variables use underscores for nesting, for example
GNBARCODE_CURATE_PHYLA, GNBARCODE_LOG_LEVEL, GNBARCODE_JOBS_NUMBER.`,
		PersistentPreRunE:  bootstrap,
		PersistentPostRunE: shutdown,
		RunE:               runRoot,
		Annotations:        stdoutData,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	// Remove the automatic "gnbarcode version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnbarcode")

	rootCmd.AddCommand(
		getCurateCmd(),
		getManifestCmd(),
		getSubsetCmd(),
		getExtractCmd(),
		getDownloadCmd(),
		getInfoCmd(),
		getPrimersCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	logOut := iologger.Output{
		LogDir:       config.LogDir(homeDir),
		DataOnStdout: dataOnStdout(cmd, args),
	}
	logCloser, err = iologger.Init(logOut, cfg.Log)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.CommandPath(),
	)
	return nil
}

func shutdown(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}

// runRoot prints the effective configuration.
func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return printConfig(cmd.OutOrStdout(), cfg)
}

func printConfig(w io.Writer, c *config.Config) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# config file: %s\n", config.ConfigFilePath(c.HomeDir))
	_, err = w.Write(out)
	return err
}

// Execute runs the root command. Interrupt signal cancels the context
// of running commands.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := getRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound one by one, so it is clear which of
	// them are allowed. They match fields of config.ToOptions().
	v.SetEnvPrefix("GNBARCODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Curation
	v.BindEnv("curate.phyla", "GNBARCODE_CURATE_PHYLA")
	v.BindEnv("curate.genes", "GNBARCODE_CURATE_GENES")
	v.BindEnv("curate.scratch_dir", "GNBARCODE_CURATE_SCRATCH_DIR")

	// BOLD API
	v.BindEnv("download.base_url", "GNBARCODE_DOWNLOAD_BASE_URL")
	v.BindEnv("download.chunk_size", "GNBARCODE_DOWNLOAD_CHUNK_SIZE")

	// Samples
	v.BindEnv("samples.forward_primer", "GNBARCODE_SAMPLES_FORWARD_PRIMER")
	v.BindEnv("samples.reverse_primer", "GNBARCODE_SAMPLES_REVERSE_PRIMER")

	// Log configuration
	v.BindEnv("log.level", "GNBARCODE_LOG_LEVEL")
	v.BindEnv("log.format", "GNBARCODE_LOG_FORMAT")
	v.BindEnv("log.destination", "GNBARCODE_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNBARCODE_JOBS_NUMBER")

	v.AutomaticEnv()
}
