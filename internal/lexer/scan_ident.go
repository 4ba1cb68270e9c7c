package lexer

import "langfront/internal/token"

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* (plus Unicode letters in
// continuation position) and maps it through the keyword table.
func (lx *lexState) scanIdentOrKeyword() {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		lx.out.Add(token.Invalid, sp)
		return
	}

	if r < utf8RuneSelf {
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if k, ok := token.LookupKeyword(text); ok {
		lx.out.Add(k, sp)
		return
	}
	if text == "_" {
		lx.out.Add(token.Underscore, sp)
		return
	}
	lx.out.Add(token.Ident, sp)
}
