package primer

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

// PrimerInvalidError reports a non-IUPAC character at a 1-based
// character position of a primer.
func PrimerInvalidError(primer string, char rune, pos int) error {
	msg := "Primer <em>%s</em> has invalid character '%c' at %d"
	vars := []any{primer, char, pos}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.PrimerInvalidError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: primer %s has invalid character '%c' at %d",
			fn, primer, char, pos),
	}
}
