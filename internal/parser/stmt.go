package parser

import (
	"langfront/internal/ast"
	"langfront/internal/token"
)

// parseBlockBody parses the statement sequence inside a block, up to but
// not including the closing `}`. The final statement is treated as the
// block's tail expression when it is a bare expression not terminated by
// `;` and not itself an expression whose last effect is already captured
// by a statement form (let/for/return/...).
func (p *Parser) parseBlockBody() ([]ast.StmtID, ast.ExprID) {
	var stmts []ast.StmtID
	tail := ast.NoExprID

	for !p.at(token.RBrace) && !p.c.atEOF() {
		if s, expr, isTail := p.parseStmt(); isTail {
			tail = expr
			break
		} else if s.IsValid() {
			stmts = append(stmts, s)
		}
	}
	return stmts, tail
}

// parseStmt parses one statement. When the statement is a bare trailing
// expression (no semicolon, followed directly by `}`), it is reported as
// the block's tail instead of a StmtID.
func (p *Parser) parseStmt() (ast.StmtID, ast.ExprID, bool) {
	switch p.c.kind() {
	case token.KwLet, token.KwMut:
		return p.parseLetStmt(), ast.NoExprID, false
	case token.KwWhile:
		return p.parseWhileStmt(), ast.NoExprID, false
	case token.KwFor:
		return p.parseForStmt(), ast.NoExprID, false
	case token.KwBreak:
		sp := p.advance()
		p.eat(token.Semicolon)
		return p.b.Tree.Stmts.NewBreak(sp), ast.NoExprID, false
	case token.KwContinue:
		sp := p.advance()
		p.eat(token.Semicolon)
		return p.b.Tree.Stmts.NewContinue(sp), ast.NoExprID, false
	case token.KwReturn:
		start := p.advance()
		value := ast.NoExprID
		if !p.at(token.Semicolon) && !p.at(token.RBrace) {
			value = p.parseExpr()
		}
		end, _ := p.expect(token.Semicolon)
		return p.b.Tree.Stmts.NewReturn(value, start.Cover(end)), ast.NoExprID, false
	case token.KwDefer:
		start := p.advance()
		inner, tailExpr, isTail := p.parseStmt()
		if isTail {
			inner = p.b.Tree.Stmts.NewExpr(tailExpr, p.exprSpan(tailExpr))
		}
		span := start
		if inner.IsValid() {
			span = start.Cover(p.b.Tree.Stmts.Get(inner).Span)
		}
		return p.b.Tree.Stmts.NewDefer(inner, span), ast.NoExprID, false
	default:
		expr := p.parseExpr()
		if p.eat(token.Semicolon) {
			span := p.exprSpan(expr)
			return p.b.Tree.Stmts.NewExpr(expr, span), ast.NoExprID, false
		}
		if p.at(token.RBrace) {
			return ast.NoStmtID, expr, true
		}
		// Missing semicolon: treat as a statement anyway and keep parsing,
		// matching the teacher's forced-progress recovery strategy.
		span := p.exprSpan(expr)
		return p.b.Tree.Stmts.NewExpr(expr, span), ast.NoExprID, false
	}
}

// parseLetStmt parses a local-variable declaration, which begins with
// either `let` (immutable) or `mut` (mutable) — the two never combine.
func (p *Parser) parseLetStmt() ast.StmtID {
	mut := p.at(token.KwMut)
	start := p.advance() // 'let' or 'mut'
	name, nameSpan, _ := p.parseIdent()

	typ := ast.NoTypeID
	if p.eat(token.Colon) {
		typ = p.parseType()
	}

	init := ast.NoExprID
	if p.eat(token.Assign) {
		init = p.parseExpr()
	}
	end, _ := p.expect(token.Semicolon)

	return p.b.Tree.Stmts.NewLet(ast.LetStmt{
		Mut: mut, Name: name, NameSpan: nameSpan, Type: typ, Init: init,
	}, start.Cover(end))
}

// parseWhileStmt desugars `while cond { body }` to the same ForWhile node
// the `for cond { ... }` form produces.
func (p *Parser) parseWhileStmt() ast.StmtID {
	start := p.advance() // 'while'
	cond := p.parseExpr()
	body := p.parseBlock()
	span := start.Cover(p.exprSpan(body))
	return p.b.Tree.Stmts.NewFor(ast.ForStmt{Kind: ast.ForWhile, Cond: cond, Body: body}, span)
}

// parseForStmt disambiguates the three for-loop forms on the token
// immediately following `for`: `{` is infinite, `let`/`mut` is C-style,
// anything else starts a while-style condition expression.
func (p *Parser) parseForStmt() ast.StmtID {
	start := p.advance() // 'for'

	switch p.c.kind() {
	case token.LBrace:
		body := p.parseBlock()
		span := start.Cover(p.exprSpan(body))
		return p.b.Tree.Stmts.NewFor(ast.ForStmt{Kind: ast.ForInfinite, Body: body}, span)
	case token.KwLet, token.KwMut:
		init := p.parseLetStmt()
		cond := ast.NoExprID
		if !p.at(token.Semicolon) {
			cond = p.parseExpr()
		}
		p.expect(token.Semicolon)
		post := ast.NoStmtID
		if !p.at(token.LBrace) {
			expr := p.parseExpr()
			post = p.b.Tree.Stmts.NewExpr(expr, p.exprSpan(expr))
		}
		body := p.parseBlock()
		span := start.Cover(p.exprSpan(body))
		return p.b.Tree.Stmts.NewFor(ast.ForStmt{Kind: ast.ForCStyle, Init: init, Cond: cond, Post: post, Body: body}, span)
	default:
		cond := p.parseExpr()
		body := p.parseBlock()
		span := start.Cover(p.exprSpan(body))
		return p.b.Tree.Stmts.NewFor(ast.ForStmt{Kind: ast.ForWhile, Cond: cond, Body: body}, span)
	}
}
