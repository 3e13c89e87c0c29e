// Package iologger sets up the default slog logger of gnbarcode.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnbarcode/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "gnbarcode.log"

// Output describes where a command keeps its logs.
type Output struct {
	// LogDir holds LogFile for the "file" destination.
	LogDir string
	// Append adds to earlier logs instead of rewriting the log file.
	Append bool
	// DataOnStdout is set for commands that print their results to
	// stdout. The "stdout" destination then goes to stderr.
	DataOnStdout bool
}

// Init installs the default slog logger according to cfg. The returned
// closer releases the log file and is never nil.
func Init(out Output, cfg config.LogConfig) (io.Closer, error) {
	w, closer, err := openLog(out, cfg)
	if err != nil {
		return closer, err
	}
	slog.SetDefault(slog.New(NewHandler(w, cfg)))
	if cfg.Destination == "stdout" && w == os.Stderr {
		slog.Debug("Logs go to stderr, stdout carries command output")
	}
	return closer, nil
}

func openLog(out Output, cfg config.LogConfig) (io.Writer, io.Closer, error) {
	var closer io.Closer = nopCloser{}

	switch cfg.Destination {
	case "stdout":
		if out.DataOnStdout {
			return os.Stderr, closer, nil
		}
		return os.Stdout, closer, nil
	case "file":
		path := filepath.Join(out.LogDir, LogFile)
		flag, mode := os.O_CREATE|os.O_WRONLY|os.O_TRUNC, "rewrite"
		if out.Append {
			flag, mode = os.O_CREATE|os.O_WRONLY|os.O_APPEND, "append"
		}
		f, err := os.OpenFile(path, flag, 0644)
		if err != nil {
			return nil, closer, LogFileError(path, mode, err)
		}
		return f, f, nil
	default:
		return os.Stderr, closer, nil
	}
}

// NewHandler creates a JSON or text handler writing to w at the level
// from cfg. The "tint" format is written as text.
func NewHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	switch cfg.Format {
	case "text", "tint":
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
