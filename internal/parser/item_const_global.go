package parser

import (
	"langfront/internal/ast"
	"langfront/internal/token"
)

// parseConstItem parses `const NAME[: Type] = value;`. The type annotation
// is optional (internal/sema infers the type from the value when it is
// absent); there is no bodyless form: constants always carry a value.
func (p *Parser) parseConstItem(attr ast.AttrID, pub bool) (ast.ItemID, bool) {
	start := p.advance() // 'const'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	typ := ast.NoTypeID
	if p.eat(token.Colon) {
		typ = p.parseType()
	}

	p.expect(token.Assign)
	value := p.parseExpr()
	end, _ := p.expect(token.Semicolon)

	item := ast.ConstItem{Name: name, NameSpan: nameSpan, Type: typ, Value: value}
	id := p.b.Tree.Items.NewConst(item, attr, pub, start.Cover(end))
	return id, true
}

// parseGlobalItem parses `global [mut] NAME: Type = value;`.
func (p *Parser) parseGlobalItem(attr ast.AttrID, pub bool) (ast.ItemID, bool) {
	start := p.advance() // 'global'
	mut := p.eat(token.KwMut)
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	p.expect(token.Colon)
	typ := p.parseType()

	p.expect(token.Assign)
	value := p.parseExpr()
	end, _ := p.expect(token.Semicolon)

	item := ast.GlobalItem{Name: name, NameSpan: nameSpan, Mut: mut, Type: typ, Value: value}
	id := p.b.Tree.Items.NewGlobal(item, attr, pub, start.Cover(end))
	return id, true
}
