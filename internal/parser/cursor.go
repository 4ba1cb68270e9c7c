package parser

import (
	"langfront/internal/source"
	"langfront/internal/token"
)

// cursor walks a token.Stream by index. Unlike the teacher's pull-based
// lexer.Lexer (Peek/Next with internal lookahead buffering), lexing has
// already happened eagerly (see internal/lexer), so the parser only needs
// simple random-access indexing into the resulting vectors.
type cursor struct {
	stream *token.Stream
	file   *source.File
	pos    int
}

func newCursor(stream *token.Stream, file *source.File) *cursor {
	return &cursor{stream: stream, file: file}
}

// kind returns the kind of the current token.
func (c *cursor) kind() token.Kind { return c.stream.Kinds[c.pos] }

// kindAt returns the kind offset tokens ahead of the current position,
// clamped to the final (EOF) token.
func (c *cursor) kindAt(offset int) token.Kind {
	i := c.pos + offset
	if i >= c.stream.Len() {
		i = c.stream.Len() - 1
	}
	return c.stream.Kinds[i]
}

// span returns the span of the current token.
func (c *cursor) span() source.Span { return c.stream.Spans[c.pos] }

// text returns the raw source text of the current token.
func (c *cursor) text() string {
	sp := c.span()
	return string(c.file.Content[sp.Start:sp.End])
}

// atEOF reports whether the cursor is on the trailing EOF token.
func (c *cursor) atEOF() bool { return c.kind() == token.EOF }

func (c *cursor) intValue() uint64        { return c.stream.Int(c.pos) }
func (c *cursor) floatValue() float64     { return c.stream.Float(c.pos) }
func (c *cursor) charValue() rune         { return c.stream.Char(c.pos) }
func (c *cursor) stringValue() source.StringID { return c.stream.String(c.pos) }
func (c *cursor) isCString() bool         { return c.stream.IsCString(c.pos) }

// advance consumes and returns the current token's span, then moves the
// cursor forward by one (never past the final EOF token).
func (c *cursor) advance() source.Span {
	sp := c.span()
	if !c.atEOF() {
		c.pos++
	}
	return sp
}
