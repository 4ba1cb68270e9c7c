package lexer

import (
	"langfront/internal/diag"
	"langfront/internal/token"
)

// scanChar scans '...' with the same escapes as string literals, producing
// exactly one decoded rune.
func (lx *lexState) scanChar(start Mark) {
	lx.cursor.Bump() // opening quote

	if lx.cursor.EOF() || lx.cursor.Peek() == '\'' {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "empty character literal")
		lx.out.Add(token.Invalid, sp)
		if lx.cursor.Peek() == '\'' {
			lx.cursor.Bump()
		}
		return
	}

	var r rune
	ok := true
	if lx.cursor.Peek() == '\\' {
		lx.cursor.Bump()
		r, ok = lx.scanEscape(start)
	} else {
		var sz int
		r, sz = lx.peekRune()
		if sz == 0 {
			ok = false
		} else {
			for i := 0; i < sz; i++ {
				lx.cursor.Bump()
			}
		}
	}

	if lx.cursor.Peek() != '\'' {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		lx.out.Add(token.Invalid, sp)
		return
	}
	lx.cursor.Bump() // closing quote

	sp := lx.cursor.SpanFrom(start)
	if !ok {
		lx.out.Add(token.Invalid, sp)
		return
	}
	lx.out.AddChar(sp, r)
}
