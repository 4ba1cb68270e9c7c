package ast

import "langfront/internal/source"

// PathPrefix is the optional leading keyword of a qualified path.
type PathPrefix uint8

const (
	// PrefixNone means the path starts in the current scope.
	PrefixNone PathPrefix = iota
	// PrefixSuper climbs to the parent scope before resolving segments.
	PrefixSuper
	// PrefixPackage jumps to the package-root scope before resolving segments.
	PrefixPackage
)

// Path is an ordered sequence of identifiers, optionally preceded by
// `super` or `package`.
type Path struct {
	Prefix       PathPrefix
	PrefixSpan   source.Span
	Segments     []source.StringID
	SegmentSpans []source.Span
	Span         source.Span
}

// Last returns the final identifier of the path, if any.
func (p Path) Last() (source.StringID, bool) {
	if len(p.Segments) == 0 {
		return source.NoStringID, false
	}
	return p.Segments[len(p.Segments)-1], true
}
