package parser

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/source"
	"langfront/internal/token"
)

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.b.Tree.Exprs.Get(id).Span
}

func (p *Parser) typeSpan(id ast.TypeID) source.Span {
	return p.b.Tree.Types.Get(id).Span
}

// parseExpr parses a full expression, including a trailing assignment.
func (p *Parser) parseExpr() ast.ExprID {
	if p.exprDepth >= maxExprDepth {
		sp := p.c.span()
		p.errf(diag.SynUnexpectedToken, sp, "expression nested too deeply")
		return p.b.Tree.Exprs.NewError(sp)
	}
	p.exprDepth++
	defer func() { p.exprDepth-- }()
	return p.parseAssign()
}

// parseAssign parses a binary-precedence expression, then an optional
// trailing `=`/compound-assign, right-associatively.
func (p *Parser) parseAssign() ast.ExprID {
	lhs := p.parseBinary(1)
	if op, ok := assignOp(p.c.kind()); ok {
		p.advance()
		rhs := p.parseAssign()
		span := p.exprSpan(lhs).Cover(p.exprSpan(rhs))
		return p.b.Tree.Exprs.NewAssign(op, lhs, rhs, span)
	}
	return lhs
}

// parseBinary implements precedence-climbing over spec.md §4.E's six
// levels (range operators excluded; they are handled entirely inside
// parseIndexOrSlice).
func (p *Parser) parseBinary(minPrec int) ast.ExprID {
	lhs := p.parseUnary()
	for {
		prec, ok := binaryPrec(p.c.kind())
		if !ok || prec < minPrec {
			return lhs
		}
		opKind := p.c.kind()
		p.advance()
		rhs := p.parseBinary(prec + 1)
		span := p.exprSpan(lhs).Cover(p.exprSpan(rhs))
		lhs = p.b.Tree.Exprs.NewBinary(binaryOp(opKind), lhs, rhs, span)
	}
}

// parseUnary parses prefix `-`, `!`, `&`, and `&mut`.
func (p *Parser) parseUnary() ast.ExprID {
	switch p.c.kind() {
	case token.Minus, token.Bang:
		opKind := p.c.kind()
		start := p.advance()
		operand := p.parseUnary()
		op, _ := unaryOp(opKind)
		span := start.Cover(p.exprSpan(operand))
		return p.b.Tree.Exprs.NewUnary(op, operand, span)
	case token.Amp:
		start := p.advance()
		mut := p.eat(token.KwMut)
		operand := p.parseUnary()
		span := start.Cover(p.exprSpan(operand))
		return p.b.Tree.Exprs.NewRef(mut, operand, span)
	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses a primary expression followed by any chain of
// `.field`, `[index|slice]`, `(args)`. A trailing `as T` cast terminates
// the chain, per spec.md §4.E.
func (p *Parser) parsePostfix() ast.ExprID {
	expr := p.parsePrimary()
	for {
		switch p.c.kind() {
		case token.Dot:
			dotSpan := p.advance()
			if p.at(token.LBrace) && p.b.Tree.Exprs.Get(expr).Kind == ast.ExprPath {
				expr = p.parseStructLitTail(expr)
				continue
			}
			name, nameSpan, ok := p.parseIdent()
			if !ok {
				return expr
			}
			span := p.exprSpan(expr).Cover(nameSpan)
			_ = dotSpan
			expr = p.b.Tree.Exprs.NewField(expr, name, nameSpan, span)
		case token.LBracket:
			expr = p.parseIndexOrSlice(expr)
		case token.LParen:
			expr = p.parseCall(expr)
		case token.KwAs:
			p.advance()
			target := p.parseType()
			span := p.exprSpan(expr).Cover(p.typeSpan(target))
			return p.b.Tree.Exprs.NewCast(expr, target, span)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCall(callee ast.ExprID) ast.ExprID {
	start := p.advance() // '('
	var args []ast.ExprID
	for !p.at(token.RParen) && !p.c.atEOF() {
		args = append(args, p.parseExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	end, _ := p.expect(token.RParen)
	span := p.exprSpan(callee).Cover(start).Cover(end)
	return p.b.Tree.Exprs.NewCall(callee, args, span)
}

// parseIndexOrSlice parses `[index]` or one of the six slice forms.
func (p *Parser) parseIndexOrSlice(operand ast.ExprID) ast.ExprID {
	start := p.advance() // '['

	mut := p.eat(token.KwMut)

	if isSliceRangeStart(p.c.kind()) {
		s := ast.SliceExpr{Operand: operand, Mut: mut, Low: ast.NoExprID, High: ast.NoExprID, Upper: ast.BoundAbsent}
		p.finishSliceFromRange(&s)
		end, _ := p.expect(token.RBracket)
		span := p.exprSpan(operand).Cover(start).Cover(end)
		return p.b.Tree.Exprs.NewSlice(s, span)
	}

	index := p.parseExpr()

	switch p.c.kind() {
	case token.DotDot, token.DotDotEq, token.DotDotLt:
		s := ast.SliceExpr{Operand: operand, Mut: mut, Low: index, High: ast.NoExprID, Upper: ast.BoundAbsent}
		p.finishSliceFromRange(&s)
		end, _ := p.expect(token.RBracket)
		span := p.exprSpan(operand).Cover(start).Cover(end)
		return p.b.Tree.Exprs.NewSlice(s, span)
	default:
		if mut {
			p.errf(diag.SynUnexpectedToken, start, "'mut' in an index expression requires a range")
		}
		end, _ := p.expect(token.RBracket)
		span := p.exprSpan(operand).Cover(start).Cover(end)
		return p.b.Tree.Exprs.NewIndex(operand, index, span)
	}
}

func isSliceRangeStart(k token.Kind) bool {
	return k == token.DotDot || k == token.DotDotEq || k == token.DotDotLt
}

// finishSliceFromRange consumes a `..`, `..=`, or `..<` operator (already
// confirmed present) and an optional upper bound, filling s.High/s.Upper.
func (p *Parser) finishSliceFromRange(s *ast.SliceExpr) {
	switch p.c.kind() {
	case token.DotDot:
		p.advance()
		if !p.at(token.RBracket) {
			s.High = p.parseExpr()
			s.Upper = ast.BoundExclusive
		}
	case token.DotDotEq:
		p.advance()
		s.High = p.parseExpr()
		s.Upper = ast.BoundInclusive
	case token.DotDotLt:
		p.advance()
		s.High = p.parseExpr()
		s.Upper = ast.BoundExclusive
	}
}

// parsePrimary parses literals, paths, parenthesized expressions, array
// literals, blocks, if, and match.
func (p *Parser) parsePrimary() ast.ExprID {
	sp := p.c.span()
	switch p.c.kind() {
	case token.IntLit, token.UintLit:
		v := p.c.intValue()
		p.advance()
		return p.b.Tree.Exprs.NewIntLit(v, sp)
	case token.FloatLit:
		v := p.c.floatValue()
		p.advance()
		return p.b.Tree.Exprs.NewFloatLit(v, sp)
	case token.CharLit:
		v := p.c.charValue()
		p.advance()
		return p.b.Tree.Exprs.NewCharLit(v, sp)
	case token.StringLit:
		v := p.c.stringValue()
		cstr := p.c.isCString()
		p.advance()
		return p.b.Tree.Exprs.NewStringLit(v, cstr, sp)
	case token.KwTrue:
		p.advance()
		return p.b.Tree.Exprs.NewBoolLit(true, sp)
	case token.KwFalse:
		p.advance()
		return p.b.Tree.Exprs.NewBoolLit(false, sp)
	case token.KwNull:
		p.advance()
		return p.b.Tree.Exprs.NewNullLit(sp)
	case token.KwNothing:
		p.advance()
		return p.b.Tree.Exprs.NewNothingLit(sp)
	case token.Ident, token.KwSuper, token.KwPackage:
		path := p.parsePath()
		return p.b.Tree.Exprs.NewPath(path, path.Span)
	case token.LParen:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RParen)
		return inner
	case token.LBracket:
		return p.parseArrayLit()
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwMatch:
		return p.parseMatch()
	default:
		p.errf(diag.SynUnexpectedToken, sp, "expected expression, found %s", p.c.kind())
		if !p.c.atEOF() {
			p.advance()
		}
		return p.b.Tree.Exprs.NewError(sp)
	}
}

// parseArrayLit parses `[e; n]` (repeat) or `[e, e, ...]` (list).
func (p *Parser) parseArrayLit() ast.ExprID {
	start := p.advance() // '['
	if p.at(token.RBracket) {
		end := p.advance()
		return p.b.Tree.Exprs.NewArrayList(nil, start.Cover(end))
	}

	first := p.parseExpr()
	if p.eat(token.Semicolon) {
		count := p.parseExpr()
		end, _ := p.expect(token.RBracket)
		return p.b.Tree.Exprs.NewArrayRepeat(first, count, start.Cover(end))
	}

	elems := []ast.ExprID{first}
	for p.eat(token.Comma) {
		if p.at(token.RBracket) {
			break
		}
		elems = append(elems, p.parseExpr())
	}
	end, _ := p.expect(token.RBracket)
	return p.b.Tree.Exprs.NewArrayList(elems, start.Cover(end))
}

// parseStructLitTail parses the `.{ field: expr, short, ... }` tail
// after an already-parsed path expression.
func (p *Parser) parseStructLitTail(pathExpr ast.ExprID) ast.ExprID {
	path := *p.b.Tree.Exprs.Path(p.b.Tree.Exprs.Get(pathExpr))
	start := p.advance() // '{'

	var fields []ast.StructLitField
	for !p.at(token.RBrace) && !p.c.atEOF() {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			break
		}
		if p.eat(token.Colon) {
			value := p.parseExpr()
			fields = append(fields, ast.StructLitField{Name: name, NameSpan: nameSpan, Value: value, Span: nameSpan})
		} else {
			shorthand := p.b.Tree.Exprs.NewPath(ast.Path{Segments: []source.StringID{name}, SegmentSpans: []source.Span{nameSpan}, Span: nameSpan}, nameSpan)
			fields = append(fields, ast.StructLitField{Name: name, NameSpan: nameSpan, Value: shorthand, Shorthand: true, Span: nameSpan})
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	end, _ := p.expect(token.RBrace)
	span := path.Span.Cover(start).Cover(end)
	return p.b.Tree.Exprs.NewStructLit(path, fields, span)
}

// parseBlock parses `{ stmt* tail? }`.
func (p *Parser) parseBlock() ast.ExprID {
	start := p.advance() // '{'
	stmts, tail := p.parseBlockBody()
	end, _ := p.expect(token.RBrace)
	return p.b.Tree.Exprs.NewBlock(stmts, tail, start.Cover(end))
}

func (p *Parser) parseIf() ast.ExprID {
	start := p.advance() // 'if'
	cond := p.parseExpr()
	then := p.parseBlock()
	var els ast.ExprID = ast.NoExprID
	if p.eat(token.KwElse) {
		if p.at(token.KwIf) {
			els = p.parseIf()
		} else {
			els = p.parseBlock()
		}
	}
	end := p.exprSpan(then)
	if els.IsValid() {
		end = p.exprSpan(els)
	}
	return p.b.Tree.Exprs.NewIf(cond, then, els, start.Cover(end))
}

// parseMatch parses `match expr { pattern -> expr, ..., _ -> expr }`.
// A single trailing wildcard arm is permitted, per spec.md's exhaustiveness
// model (no full pattern matching, just value-equality arms plus `_`).
func (p *Parser) parseMatch() ast.ExprID {
	start := p.advance() // 'match'
	scrutinee := p.parseExpr()
	p.expect(token.LBrace)

	var arms []ast.MatchArm
	for !p.at(token.RBrace) && !p.c.atEOF() {
		armStart := p.c.span()
		var arm ast.MatchArm
		if p.at(token.Underscore) {
			p.advance()
			arm.Wildcard = true
			arm.Pattern = ast.NoExprID
		} else {
			arm.Pattern = p.parseExpr()
		}
		p.expect(token.Arrow)
		arm.Body = p.parseExpr()
		arm.Span = armStart.Cover(p.exprSpan(arm.Body))
		arms = append(arms, arm)
		if !p.eat(token.Comma) {
			break
		}
	}
	end, _ := p.expect(token.RBrace)
	return p.b.Tree.Exprs.NewMatch(scrutinee, arms, start.Cover(end))
}
