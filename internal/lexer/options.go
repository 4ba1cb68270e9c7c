package lexer

import (
	"langfront/internal/diag"
	"langfront/internal/source"
)

// Options configures a lex run. Reporter may be nil, in which case
// diagnostics are silently discarded (used by tests that only check token
// shape).
type Options struct {
	Reporter diag.Reporter
}

func (lx *lexState) errLex(code diag.Code, sp source.Span, format string, args ...any) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.Error(lx.opts.Reporter, code, sp, format, args...)
}
