package cmd

import (
	"context"
	"fmt"
	"os"

	app "github.com/gnames/gnbarcode/pkg"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

// cmdContext returns the context of a running command, commands created
// in tests might have none.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// updateConfig applies options to the global config. Bootstrap is
// skipped when run functions are called directly, then defaults are used.
func updateConfig(opts []config.Option) {
	if cfg == nil {
		cfg = config.New()
	}
	if len(opts) > 0 {
		cfg.Update(opts)
	}
}

// scratchDirFlag adds the flag for the directory of staged outputs.
func scratchDirFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVar(
		dir, "scratch-dir", "",
		"directory for unfinished output files (default is cache dir)",
	)
}

func scratchDirOpts(cmd *cobra.Command, dir string) []config.Option {
	if !cmd.Flags().Changed("scratch-dir") {
		return nil
	}
	return []config.Option{config.OptCurateScratchDir(dir)}
}

// stdoutData annotates commands that always print their results to
// stdout.
var stdoutData = map[string]string{"stdout": "data"}

// dataOnStdout tells if the command is going to print its results to
// stdout, so nothing else may be written there.
func dataOnStdout(cmd *cobra.Command, args []string) bool {
	if cmd.Annotations["stdout"] == "data" {
		return true
	}
	if f := cmd.Flags().Lookup("output"); f != nil {
		return isStdout(f.Value.String())
	}
	if p := cmd.Parent(); p != nil && p.Name() == "extract" && len(args) == 2 {
		return isStdout(args[1])
	}
	return false
}

func isStdout(path string) bool {
	return path == "" || path == "-"
}
