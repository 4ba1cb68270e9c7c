package parser

import (
	"langfront/internal/ast"
	"langfront/internal/token"
)

// parsePath parses an optional `super`/`package` prefix followed by one or
// more `::`-separated identifier segments.
func (p *Parser) parsePath() ast.Path {
	var path ast.Path
	start := p.c.span()

	switch p.c.kind() {
	case token.KwSuper:
		path.Prefix = ast.PrefixSuper
		path.PrefixSpan = p.advance()
		p.eat(token.ColonColon)
	case token.KwPackage:
		path.Prefix = ast.PrefixPackage
		path.PrefixSpan = p.advance()
		p.eat(token.ColonColon)
	}

	for {
		name, sp, ok := p.parseIdent()
		if !ok {
			break
		}
		path.Segments = append(path.Segments, name)
		path.SegmentSpans = append(path.SegmentSpans, sp)
		if !p.eat(token.ColonColon) {
			break
		}
	}

	end := p.c.span()
	if len(path.SegmentSpans) > 0 {
		end = path.SegmentSpans[len(path.SegmentSpans)-1]
	}
	path.Span = start.Cover(end)
	return path
}
