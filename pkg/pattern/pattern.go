// Package pattern compiles user-supplied search expressions and builds
// anchored-prefix alternations from matched identifiers.
//
// Expressions use Perl/Python compatible syntax (lookarounds,
// backreferences) through regexp2, because search text is written by
// people used to the workflow's scripting tools.
package pattern

import (
	"errors"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout guards against catastrophic backtracking of
// user-supplied expressions.
const matchTimeout = 5 * time.Second

// Matcher finds an expression anywhere inside a string.
type Matcher struct {
	re *regexp2.Regexp
}

// Compile creates a Matcher from a regular expression. If ignoreCase is
// true, the expression is case-insensitive.
func Compile(expr string, ignoreCase bool) (*Matcher, error) {
	opts := regexp2.None
	if ignoreCase {
		opts = regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = matchTimeout
	return &Matcher{re: re}, nil
}

// AnchoredPrefix builds an alternation where every alternative is one
// of ids anchored to the start of a string. Ids are matched literally.
func AnchoredPrefix(ids []string) (*Matcher, error) {
	if len(ids) == 0 {
		return nil, errors.New("cannot build a pattern from empty id list")
	}
	alts := make([]string, len(ids))
	for i, v := range ids {
		alts[i] = "^" + regexp2.Escape(v)
	}
	return Compile(strings.Join(alts, "|"), false)
}

// String returns the source expression.
func (m *Matcher) String() string {
	return m.re.String()
}

// Match reports whether the expression is found anywhere in s.
func (m *Matcher) Match(s string) (bool, error) {
	return m.re.MatchString(s)
}
