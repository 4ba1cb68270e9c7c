package token

import "langfront/internal/source"

// noLiteral marks a token index with no associated literal payload.
const noLiteral uint32 = ^uint32(0)

// Stream is the lexer's output: parallel vectors of Kind and Span indexed
// by token position, plus side-tables holding decoded literal payloads for
// the tokens that carry one.
type Stream struct {
	Kinds []Kind
	Spans []source.Span

	literalIdx []uint32 // parallel to Kinds; index into the matching side-table, or noLiteral

	ints    []uint64
	floats  []float64
	chars   []rune
	strings []source.StringID
	cstring []bool // parallel to strings: true if the literal carried a C-string (NUL-terminated) suffix
}

// NewStream creates an empty Stream with capacity hinted by cap.
func NewStream(cap int) *Stream {
	return &Stream{
		Kinds:      make([]Kind, 0, cap),
		Spans:      make([]source.Span, 0, cap),
		literalIdx: make([]uint32, 0, cap),
	}
}

// Len returns the number of tokens in the stream, including the trailing EOF.
func (s *Stream) Len() int { return len(s.Kinds) }

func (s *Stream) push(k Kind, span source.Span, lit uint32) {
	s.Kinds = append(s.Kinds, k)
	s.Spans = append(s.Spans, span)
	s.literalIdx = append(s.literalIdx, lit)
}

// Add appends a non-literal token.
func (s *Stream) Add(k Kind, span source.Span) {
	s.push(k, span, noLiteral)
}

// AddInt appends an integer literal token (IntLit or UintLit).
func (s *Stream) AddInt(k Kind, span source.Span, value uint64) {
	idx := uint32(len(s.ints))
	s.ints = append(s.ints, value)
	s.push(k, span, idx)
}

// AddFloat appends a FloatLit token.
func (s *Stream) AddFloat(span source.Span, value float64) {
	idx := uint32(len(s.floats))
	s.floats = append(s.floats, value)
	s.push(FloatLit, span, idx)
}

// AddChar appends a CharLit token.
func (s *Stream) AddChar(span source.Span, value rune) {
	idx := uint32(len(s.chars))
	s.chars = append(s.chars, value)
	s.push(CharLit, span, idx)
}

// AddString appends a StringLit token, recording whether it was a
// C-string (NUL-terminated) form.
func (s *Stream) AddString(span source.Span, id source.StringID, cstr bool) {
	idx := uint32(len(s.strings))
	s.strings = append(s.strings, id)
	s.cstring = append(s.cstring, cstr)
	s.push(StringLit, span, idx)
}

// Int returns the decoded integer payload for the token at i.
func (s *Stream) Int(i int) uint64 { return s.ints[s.literalIdx[i]] }

// Float returns the decoded float payload for the token at i.
func (s *Stream) Float(i int) float64 { return s.floats[s.literalIdx[i]] }

// Char returns the decoded rune payload for the token at i.
func (s *Stream) Char(i int) rune { return s.chars[s.literalIdx[i]] }

// String returns the interned string payload for the token at i.
func (s *Stream) String(i int) source.StringID { return s.strings[s.literalIdx[i]] }

// IsCString reports whether the string literal at i carried a C-string suffix.
func (s *Stream) IsCString(i int) bool { return s.cstring[s.literalIdx[i]] }

// IsLiteral reports whether the token at i is a literal kind.
func (s *Stream) IsLiteral(i int) bool {
	switch s.Kinds[i] {
	case KwNothing, KwNull, KwTrue, KwFalse, IntLit, UintLit, FloatLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}
