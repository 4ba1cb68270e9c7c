package lexer

import (
	"strconv"

	"langfront/internal/diag"
	"langfront/internal/token"
)

// scanNumber scans a run of ASCII digits, promoting to a float literal on a
// '.' that does not start a range operator ('..', '..=', '..<'); digits
// after the '.' are optional ("1." is a float). A leading dot (".5") is
// only reached via isNumberAfterDot and always promotes.
func (lx *lexState) scanNumber(start Mark) {
	isFloat := false

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		isFloat = true
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.emitNumber(start, isFloat)
		return
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		rangeOperator := ok && b0 == '.' && (b1 == '.' || b1 == '=' || b1 == '<')
		if !rangeOperator {
			lx.cursor.Bump()
			isFloat = true
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	lx.emitNumber(start, isFloat)
}

func (lx *lexState) emitNumber(start Mark, isFloat bool) {
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			lx.errLex(diag.LexMalformedNumber, sp, "malformed float literal %q", text)
			lx.out.Add(token.Invalid, sp)
			return
		}
		lx.out.AddFloat(sp, v)
		return
	}

	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		lx.errLex(diag.LexMalformedNumber, sp, "malformed integer literal %q", text)
		lx.out.Add(token.Invalid, sp)
		return
	}
	lx.out.AddInt(token.IntLit, sp, v)
}
