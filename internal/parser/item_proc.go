package parser

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/token"
)

// parseProcItem parses `proc NAME(params) -> T { body }`. A trailing
// `,..` after the last parameter marks the procedure variadic. Both the
// return type and the body are optional: a bodyless proc is a forward
// declaration for external linkage; one without an attribute is
// diagnosed here as missing its body.
func (p *Parser) parseProcItem(attr ast.AttrID, pub bool) (ast.ItemID, bool) {
	start := p.advance() // 'proc'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	p.expect(token.LParen)
	var params []ast.Param
	variadic := false
	for !p.at(token.RParen) && !p.c.atEOF() {
		if p.at(token.DotDot) {
			p.advance()
			variadic = true
			break
		}
		pStart := p.c.span()
		pname, _, ok := p.parseIdent()
		if !ok {
			break
		}
		p.expect(token.Colon)
		ptyp := p.parseType()
		params = append(params, ast.Param{Name: pname, NameSpan: pStart, Type: ptyp, Span: pStart.Cover(p.typeSpan(ptyp))})
		if !p.eat(token.Comma) {
			break
		}
	}
	end, _ := p.expect(token.RParen)

	retType := ast.NoTypeID
	if p.eat(token.Arrow) {
		retType = p.parseType()
	}

	body := ast.NoExprID
	if p.at(token.LBrace) {
		body = p.parseBlock()
		end = p.exprSpan(body)
	} else {
		p.eat(token.Semicolon)
	}

	if !body.IsValid() && attr == ast.NoAttrID {
		p.errf(diag.TypeMissingBody, nameSpan, "procedure has no body and no external-call attribute")
	}

	paramsStart, paramsCount := p.b.Tree.Items.NewParams(params)
	item := ast.ProcItem{
		Name: name, NameSpan: nameSpan,
		ParamsStart: paramsStart, ParamsCount: paramsCount,
		Variadic: variadic, ReturnType: retType, Body: body,
	}
	id := p.b.Tree.Items.NewProc(item, attr, pub, start.Cover(end))
	return id, true
}
