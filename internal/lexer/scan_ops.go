package lexer

import (
	"langfront/internal/diag"
	"langfront/internal/token"
)

// scanOperatorOrPunct lexes punctuation and operators by maximal munch:
// try a 3-char glue, then 2-char, then fall back to a single byte.
func (lx *lexState) scanOperatorOrPunct(start Mark) {
	emit := func(k token.Kind) {
		lx.out.Add(k, lx.cursor.SpanFrom(start))
	}

	switch {
	case lx.try3('<', '<', '='):
		emit(token.ShlAssign)
		return
	case lx.try3('>', '>', '='):
		emit(token.ShrAssign)
		return
	case lx.try3('.', '.', '='):
		emit(token.DotDotEq)
		return
	case lx.try3('.', '.', '<'):
		emit(token.DotDotLt)
		return
	}

	switch {
	case lx.try2('+', '='):
		emit(token.PlusAssign)
		return
	case lx.try2('-', '='):
		emit(token.MinusAssign)
		return
	case lx.try2('*', '='):
		emit(token.StarAssign)
		return
	case lx.try2('/', '='):
		emit(token.SlashAssign)
		return
	case lx.try2('%', '='):
		emit(token.PercentAssign)
		return
	case lx.try2('&', '='):
		emit(token.AmpAssign)
		return
	case lx.try2('|', '='):
		emit(token.PipeAssign)
		return
	case lx.try2('^', '='):
		emit(token.CaretAssign)
		return
	case lx.try2(':', '='):
		emit(token.ColonAssign)
		return
	case lx.try2(':', ':'):
		emit(token.ColonColon)
		return
	case lx.try2('-', '>'):
		emit(token.Arrow)
		return
	case lx.try2('=', '>'):
		emit(token.FatArrow)
		return
	case lx.try2('&', '&'):
		emit(token.AndAnd)
		return
	case lx.try2('|', '|'):
		emit(token.OrOr)
		return
	case lx.try2('?', '?'):
		emit(token.QuestionQuestion)
		return
	case lx.try2('=', '='):
		emit(token.EqEq)
		return
	case lx.try2('!', '='):
		emit(token.BangEq)
		return
	case lx.try2('<', '='):
		emit(token.LtEq)
		return
	case lx.try2('>', '='):
		emit(token.GtEq)
		return
	case lx.try2('<', '<'):
		emit(token.Shl)
		return
	case lx.try2('>', '>'):
		emit(token.Shr)
		return
	case lx.try2('.', '.'):
		emit(token.DotDot)
		return
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		emit(token.Plus)
	case '-':
		emit(token.Minus)
	case '*':
		emit(token.Star)
	case '/':
		emit(token.Slash)
	case '%':
		emit(token.Percent)
	case '=':
		emit(token.Assign)
	case '!':
		emit(token.Bang)
	case '<':
		emit(token.Lt)
	case '>':
		emit(token.Gt)
	case '&':
		emit(token.Amp)
	case '|':
		emit(token.Pipe)
	case '^':
		emit(token.Caret)
	case '?':
		emit(token.Question)
	case ':':
		emit(token.Colon)
	case ';':
		emit(token.Semicolon)
	case ',':
		emit(token.Comma)
	case '.':
		emit(token.Dot)
	case '(':
		emit(token.LParen)
	case ')':
		emit(token.RParen)
	case '{':
		emit(token.LBrace)
	case '}':
		emit(token.RBrace)
	case '[':
		emit(token.LBracket)
	case ']':
		emit(token.RBracket)
	case '@':
		emit(token.At)
	case '#':
		emit(token.Hash)
	case '_':
		emit(token.Underscore)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character %q", ch)
		lx.out.Add(token.Invalid, sp)
	}
}
