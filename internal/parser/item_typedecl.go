package parser

import (
	"langfront/internal/ast"
	"langfront/internal/token"
)

// parseEnumItem parses `enum NAME [BaseType] { variant [= value]; ... }`.
// Unlike struct/union field types, the base type is a bare basic-type
// keyword directly after the name (no leading `:`); an explicit variant
// value is optional, with omitted values assigned sequentially during HIR
// lowering. Each variant is terminated by `;`, not separated by `,`.
func (p *Parser) parseEnumItem(attr ast.AttrID, pub bool) (ast.ItemID, bool) {
	start := p.advance() // 'enum'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	base := ast.NoTypeID
	if !p.at(token.LBrace) {
		base = p.parseType()
	}

	p.expect(token.LBrace)
	var variants []ast.Variant
	for !p.at(token.RBrace) && !p.c.atEOF() {
		vStart := p.c.span()
		vname, vspan, ok := p.parseIdent()
		if !ok {
			break
		}
		value := ast.NoExprID
		if p.eat(token.Assign) {
			value = p.parseExpr()
		}
		vEnd, _ := p.expect(token.Semicolon)
		variants = append(variants, ast.Variant{Name: vname, NameSpan: vspan, Value: value, Span: vStart.Cover(vEnd)})
	}
	end, _ := p.expect(token.RBrace)

	variantsStart, variantsCount := p.b.Tree.Items.NewVariants(variants)
	item := ast.EnumItem{
		Name: name, NameSpan: nameSpan, BaseType: base,
		VariantsStart: variantsStart, VariantsCount: variantsCount,
	}
	id := p.b.Tree.Items.NewEnum(item, attr, pub, start.Cover(end))
	return id, true
}

// parseUnionItem parses `union NAME { member: Type; ... }`. Unlike structs,
// every member shares the same storage, so each must carry an explicit
// type; there is no field-default or shorthand form.
func (p *Parser) parseUnionItem(attr ast.AttrID, pub bool) (ast.ItemID, bool) {
	start := p.advance() // 'union'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	p.expect(token.LBrace)
	var members []ast.Member
	for !p.at(token.RBrace) && !p.c.atEOF() {
		mStart := p.c.span()
		mname, mspan, ok := p.parseIdent()
		if !ok {
			break
		}
		p.expect(token.Colon)
		mtyp := p.parseType()
		mEnd, _ := p.expect(token.Semicolon)
		members = append(members, ast.Member{Name: mname, NameSpan: mspan, Type: mtyp, Span: mStart.Cover(mEnd)})
	}
	end, _ := p.expect(token.RBrace)

	membersStart, membersCount := p.b.Tree.Items.NewMembers(members)
	item := ast.UnionItem{
		Name: name, NameSpan: nameSpan,
		MembersStart: membersStart, MembersCount: membersCount,
	}
	id := p.b.Tree.Items.NewUnion(item, attr, pub, start.Cover(end))
	return id, true
}

// parseStructItem parses `struct NAME { field: Type; ... }`.
func (p *Parser) parseStructItem(attr ast.AttrID, pub bool) (ast.ItemID, bool) {
	start := p.advance() // 'struct'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	p.expect(token.LBrace)
	var fields []ast.Field
	for !p.at(token.RBrace) && !p.c.atEOF() {
		fStart := p.c.span()
		fname, fspan, ok := p.parseIdent()
		if !ok {
			break
		}
		p.expect(token.Colon)
		ftyp := p.parseType()
		fEnd, _ := p.expect(token.Semicolon)
		fields = append(fields, ast.Field{Name: fname, NameSpan: fspan, Type: ftyp, Span: fStart.Cover(fEnd)})
	}
	end, _ := p.expect(token.RBrace)

	fieldsStart, fieldsCount := p.b.Tree.Items.NewFields(fields)
	item := ast.StructItem{
		Name: name, NameSpan: nameSpan,
		FieldsStart: fieldsStart, FieldsCount: fieldsCount,
	}
	id := p.b.Tree.Items.NewStruct(item, attr, pub, start.Cover(end))
	return id, true
}

