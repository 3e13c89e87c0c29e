package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

// LogFileError is returned when the log file cannot be opened. Mode is
// "append" or "rewrite".
func LogFileError(path, mode string, err error) error {
	msg := "Cannot open log file <em>%s</em> (%s), check permissions of the log directory"
	vars := []any{path, mode}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.LogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: open %s for %s: %w", fn, path, mode, err),
	}
}
