package sema

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/hir"
)

// checkBlock type-checks a block expression's statements in order, then
// its optional tail expression against expected, per spec.md §4.I: "block
// type = tail-expr type or unit". It owns the ProcScope frame for the
// block's own local declarations.
func (ec *exprChecker) checkBlock(flags BlockFlags, id ast.ExprID, expected *hir.Type) *hir.Type {
	expr := ec.tree.Exprs.Get(id)
	block := ec.tree.Exprs.Block(expr)

	ec.ps.enterBlock()
	for _, stmtID := range block.Stmts {
		ec.checkStmt(flags, stmtID)
	}

	var tailTy *hir.Type
	tailSpan := expr.Span
	if block.Tail.IsValid() {
		tailTy = ec.checkExpr(flags, block.Tail, expected)
		tailSpan = ec.tree.Exprs.Get(block.Tail).Span
	} else {
		tailTy = hir.Unit
	}
	ec.ps.leaveBlock()

	if expected != nil {
		ec.expectMatch(expected, tailTy, tailSpan)
	}
	return tailTy
}

func (ec *exprChecker) checkStmt(flags BlockFlags, id ast.StmtID) {
	stmt := ec.tree.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtError:
		return

	case ast.StmtLet:
		ec.checkLet(flags, stmt)

	case ast.StmtExpr:
		es := ec.tree.Stmts.ExprOf(stmt)
		ec.checkExpr(flags, es.Value, nil)

	case ast.StmtFor:
		ec.checkFor(flags, stmt)

	case ast.StmtBreak:
		if !flags.InLoop {
			diag.Error(ec.reporter, diag.TypeBreakOutsideLoop, stmt.Span, "cannot use `break` outside of a loop")
		}

	case ast.StmtContinue:
		if !flags.InLoop {
			diag.Error(ec.reporter, diag.TypeContinueOutsideLoop, stmt.Span, "cannot use `continue` outside of a loop")
		}

	case ast.StmtReturn:
		ec.checkReturn(flags, stmt)

	case ast.StmtDefer:
		ec.checkDefer(flags, stmt)
	}
}

// checkLet type-checks a `let`/`mut` declaration and binds the name
// into the innermost ProcScope frame. Shadowing a name already bound in
// the same block, or colliding with a package-level item visible from
// this scope, is a redefinition; shadowing an outer block's local or a
// parameter is allowed.
func (ec *exprChecker) checkLet(flags BlockFlags, stmt *ast.Stmt) {
	l := ec.tree.Stmts.Let(stmt)

	if ec.ps.declaredInCurrentBlock(l.Name) {
		diag.Error(ec.reporter, diag.NameRedefinition, l.NameSpan, "name %q is defined multiple times", ec.interner.MustLookup(l.Name))
	} else if symID, ok := ec.table.Lookup(ec.scope, l.Name); ok {
		sym := ec.table.Symbol(symID)
		ec.reporter.Report(diag.Errorf(diag.NameRedefinition, l.NameSpan, "name %q is defined multiple times", ec.interner.MustLookup(l.Name)).
			WithNote(sym.Span, "first defined here"))
	}

	var declTy *hir.Type
	if l.Type.IsValid() {
		declTy = ec.resolveType(ec.scope, ec.tree.Types.Get(l.Type))
	}

	var valTy *hir.Type
	if l.Init.IsValid() {
		valTy = ec.checkExpr(flags, l.Init, declTy)
		if declTy != nil {
			ec.expectMatch(declTy, valTy, ec.tree.Exprs.Get(l.Init).Span)
		}
	}

	finalTy := declTy
	if finalTy == nil {
		finalTy = valTy
	}
	if finalTy == nil {
		finalTy = hir.Error
	}
	ec.ps.declare(Binding{Name: l.Name, Type: finalTy, Mut: l.Mut})
}

func (ec *exprChecker) checkFor(flags BlockFlags, stmt *ast.Stmt) {
	f := ec.tree.Stmts.For(stmt)

	ec.ps.enterBlock()
	if f.Init.IsValid() {
		ec.checkStmt(flags, f.Init)
	}
	if f.Cond.IsValid() {
		condTy := ec.checkExpr(flags, f.Cond, hir.Basic(hir.BasicBool))
		ec.expectMatch(hir.Basic(hir.BasicBool), condTy, ec.tree.Exprs.Get(f.Cond).Span)
	}
	if f.Post.IsValid() {
		ec.checkStmt(flags, f.Post)
	}
	ec.checkExpr(flags.enterLoop(), f.Body, nil)
	ec.ps.leaveBlock()
}

func (ec *exprChecker) checkReturn(flags BlockFlags, stmt *ast.Stmt) {
	r := ec.tree.Stmts.Return(stmt)
	if flags.InDefer {
		diag.Error(ec.reporter, diag.TypeReturnInDefer, stmt.Span, "cannot use `return` inside the defer block")
	}
	if r.Value.IsValid() {
		ty := ec.checkExpr(flags, r.Value, ec.procReturn)
		ec.expectMatch(ec.procReturn, ty, ec.tree.Exprs.Get(r.Value).Span)
	} else {
		ec.expectMatch(ec.procReturn, hir.Unit, stmt.Span)
	}
}

func (ec *exprChecker) checkDefer(flags BlockFlags, stmt *ast.Stmt) {
	d := ec.tree.Stmts.Defer(stmt)
	if flags.InDefer {
		diag.Error(ec.reporter, diag.TypeNestedDefer, stmt.Span, "cannot nest `defer` blocks")
		return
	}
	ec.checkStmt(flags.enterDefer(), d.Body)
}
