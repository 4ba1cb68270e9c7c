package parser

import (
	"langfront/internal/ast"
	"langfront/internal/source"
	"langfront/internal/token"
)

// parseOptionalAttr parses a single leading `#[name(arg, ...)]` attribute,
// if present. Only one attribute may precede an item; it always attaches
// to whichever item is parsed next (first-fit), matching the ambiguity
// original_source leaves unresolved.
func (p *Parser) parseOptionalAttr() (ast.AttrID, source.Span, bool) {
	if !p.at(token.Hash) {
		return ast.NoAttrID, p.c.span(), false
	}
	start := p.advance()
	p.expect(token.LBracket)

	name, _, _ := p.parseIdent()

	var args []ast.ExprID
	if p.eat(token.LParen) {
		for !p.at(token.RParen) && !p.c.atEOF() {
			args = append(args, p.parseExpr())
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RParen)
	}

	end, _ := p.expect(token.RBracket)
	span := start.Cover(end)
	id := p.b.Tree.Items.NewAttr(ast.Attr{Name: name, Args: args, Span: span})
	return id, span, true
}
