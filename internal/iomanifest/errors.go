package iomanifest

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

func ManifestScanError(root string, err error) error {
	msg := "Cannot scan <em>%s</em> for read files"
	vars := []any{root}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ManifestScanError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot scan %s: %w", fn, root, err),
	}
}

func ManifestColumnError(path, column string) error {
	msg := "Column <em>%s</em> appears more than once in <em>%s</em>"
	vars := []any{column, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ManifestColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: duplicate column %q in %s", fn, column, path),
	}
}
