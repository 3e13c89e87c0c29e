package iosubset

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

func SubsetPatternError(text string, err error) error {
	msg := "Cannot use <em>%s</em> as a search pattern"
	vars := []any{text}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.SubsetPatternError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad pattern %q: %w", fn, text, err),
	}
}

func SubsetNoMatchError(text, labelTable string) error {
	msg := "No samples matched <em>%s</em> in %s"
	vars := []any{text, labelTable}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.SubsetNoMatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no labels in %s match %q",
			fn, labelTable, text),
	}
}
