package iobold

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

func BoldRequestError(url string, err error) error {
	msg := "Cannot reach BOLD at <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.BoldRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: request %s: %w", fn, url, err),
	}
}

func BoldResponseError(url string, status int) error {
	msg := "BOLD returned status %d for <em>%s</em>"
	vars := []any{status, url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.BoldResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: status %d from %s", fn, status, url),
	}
}

func BoldFastaError(path string, err error) error {
	msg := "Cannot parse FASTA file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.BoldFastaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: parse %s: %w", fn, path, err),
	}
}
