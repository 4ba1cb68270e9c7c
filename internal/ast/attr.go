package ast

import "langfront/internal/source"

// Attr is a single `#[name(args...)]` attribute attached to an item.
type Attr struct {
	Name source.StringID
	Args []ExprID
	Span source.Span
}
