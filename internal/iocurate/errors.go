package iocurate

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

func CurateSpecimensError(path string, err error) error {
	msg := "Cannot use specimen table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CurateSpecimensError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: specimen table %q: %w", fn, path, err),
	}
}

func CurateSequencesError(path string, err error) error {
	msg := "Cannot use sequence table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CurateSequencesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: sequence table %q: %w", fn, path, err),
	}
}

func CurateOutputError(info, fasta string, err error) error {
	msg := "Cannot write info table <em>%s</em> and FASTA <em>%s</em>"
	vars := []any{info, fasta}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CurateOutputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: outputs %q, %q: %w", fn, info, fasta, err),
	}
}
