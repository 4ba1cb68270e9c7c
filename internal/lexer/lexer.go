package lexer

import (
	"fortio.org/safecast"

	"langfront/internal/diag"
	"langfront/internal/source"
	"langfront/internal/token"
)

// maxTokenLength bounds a single token's byte length to avoid pathological
// input (e.g. a multi-gigabyte unterminated string) spinning forever.
const maxTokenLength = 64 * 1024

// lexState carries the mutable state threaded through one file's scan.
type lexState struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	interner *source.Interner
	out      *token.Stream
}

// Lex scans file eagerly into a token.Stream. Lexing never aborts: invalid
// input produces an Invalid token and a diagnostic, then scanning resumes.
func Lex(file *source.File, interner *source.Interner, opts Options) *token.Stream {
	lx := &lexState{
		file:     file,
		cursor:   NewCursor(file),
		opts:     opts,
		interner: interner,
		out:      token.NewStream(len(file.Content)/4 + 1),
	}

	for !lx.cursor.EOF() {
		lx.skipWhitespaceAndComments()
		if lx.cursor.EOF() {
			break
		}
		lx.scanOne()
	}

	eofSpan := source.Span{File: file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
	lx.out.Add(token.EOF, eofSpan)
	return lx.out
}

func (lx *lexState) skipWhitespaceAndComments() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
			continue
		case '/':
			b0, b1, ok := lx.cursor.Peek2()
			if ok && b0 == '/' && b1 == '/' {
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				continue
			}
			if ok && b0 == '/' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				for !lx.cursor.EOF() {
					if lx.cursor.Peek() == '*' {
						if b, c, ok := lx.cursor.Peek2(); ok && b == '*' && c == '/' {
							lx.cursor.Bump()
							lx.cursor.Bump()
							break
						}
					}
					lx.cursor.Bump()
				}
				continue
			}
			return
		default:
			return
		}
	}
}

func (lx *lexState) scanOne() {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch {
	case isIdentStartByte(ch):
		lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		r, _ := lx.peekRune()
		if isIdentStartRune(r) {
			lx.scanIdentOrKeyword()
		} else {
			lx.scanOperatorOrPunct(start)
		}
	case isDec(ch):
		lx.scanNumber(start)
	case ch == '.' && lx.isNumberAfterDot():
		lx.scanNumber(start)
	case ch == '\'':
		lx.scanChar(start)
	case ch == '"':
		lx.scanString(start)
	default:
		lx.scanOperatorOrPunct(start)
	}

	lx.enforceTokenLength(start)
}

const utf8RuneSelf = 0x80

func (lx *lexState) enforceTokenLength(start Mark) {
	i := lx.out.Len() - 1
	if i < 0 {
		return
	}
	sp := lx.out.Spans[i]
	length := sp.End - sp.Start
	if length <= maxTokenLength {
		return
	}
	lx.errLex(diag.LexTokenTooLong, sp, "token length %d exceeds limit %d", length, maxTokenLength)
	lx.out.Kinds[i] = token.Invalid
	if off, err := safecast.Conv[uint32](len(lx.file.Content)); err == nil {
		lx.cursor.Off = off
	}
}
