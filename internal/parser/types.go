package parser

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/token"
)

// parseType parses a type-syntax node: `&T`, `&mut T`, `[]T`, `[]mut T`,
// `[N]T`, or a named path like `s32` or `foo::Bar`.
func (p *Parser) parseType() ast.TypeID {
	switch p.c.kind() {
	case token.Amp:
		start := p.advance()
		mut := p.eat(token.KwMut)
		inner := p.parseType()
		span := start.Cover(p.b.Tree.Types.Get(inner).Span)
		return p.b.Tree.Types.NewReference(mut, inner, span)
	case token.LBracket:
		start := p.advance()
		if p.eat(token.RBracket) {
			mut := p.eat(token.KwMut)
			elem := p.parseType()
			span := start.Cover(p.b.Tree.Types.Get(elem).Span)
			return p.b.Tree.Types.NewSlice(mut, elem, span)
		}
		length := p.parseExpr()
		p.expect(token.RBracket)
		elem := p.parseType()
		span := start.Cover(p.b.Tree.Types.Get(elem).Span)
		return p.b.Tree.Types.NewArray(elem, length, span)
	case token.Ident:
		path := p.parsePath()
		return p.b.Tree.Types.NewNamed(path, path.Span)
	default:
		sp := p.c.span()
		p.errf(diag.SynUnexpectedToken, sp, "expected a type, found %s", p.c.kind())
		return p.b.Tree.Types.NewError(sp)
	}
}
