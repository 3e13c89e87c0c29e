package iotable

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

func TableOpenError(path string, err error) error {
	msg := "Cannot read table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.TableOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func TableFieldCountError(path string, line, got int, want string) error {
	msg := "Line %d of <em>%s</em> has %d fields, expected %s"
	vars := []any{line, path, got, want}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.TableFieldCountError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s:%d: %d fields instead of %s",
			fn, path, line, got, want),
	}
}

func TableDuplicateIDError(path string, line int, id string) error {
	msg := "Line %d of <em>%s</em> repeats record id <em>%s</em>"
	vars := []any{line, path, id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.TableDuplicateIDError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s:%d: duplicate id %q",
			fn, path, line, id),
	}
}

func TableHeaderError(path string) error {
	msg := "Table <em>%s</em> has no header"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.TableHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: empty table %s", fn, path),
	}
}

func TableWriteError(err error) error {
	msg := "Cannot write table"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.TableWriteError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot write table: %w", fn, err),
	}
}
