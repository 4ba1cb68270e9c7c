// Package sema type-checks procedure bodies and const/global initializers
// against the signatures internal/hir already lowered, implementing the
// bidirectional checker spec.md §4.I describes: expected types flow
// top-down so untyped literals can adopt them, and every check either
// produces a concrete type or degrades to hir.Error while still reporting
// the diagnostic that caused the degradation.
package sema

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/hir"
	"langfront/internal/source"
	"langfront/internal/symbols"
)

// Check walks every procedure body, const initializer, and global
// initializer in tree/tables and reports every type error it finds to
// reporter. Nothing is written back to tables except a const's inferred
// Type when its declaration omitted one (ConstData.Type's documented
// "inferred later if absent" contract).
func Check(tree *ast.Tree, tables *hir.Tables, table *symbols.Table, interner *source.Interner, root symbols.ScopeID, reporter diag.Reporter) {
	c := &checker{
		tree: tree, tables: tables, table: table, interner: interner, root: root, reporter: reporter,
	}
	c.checkProcs()
	c.checkConsts()
	c.checkGlobals()
}

type checker struct {
	tree     *ast.Tree
	tables   *hir.Tables
	table    *symbols.Table
	interner *source.Interner
	root     symbols.ScopeID
	reporter diag.Reporter
}

// exprChecker carries one procedure (or initializer)'s type-checking
// state: the static context shared with checker, plus the declaring
// scope expressions resolve against, the local-variable stack, and the
// return type `return` statements must match.
type exprChecker struct {
	*checker
	scope      symbols.ScopeID
	ps         *ProcScope
	procReturn *hir.Type
}

func (c *checker) checkProcs() {
	n := c.tables.Procs.Len()
	for i := uint32(1); i <= n; i++ {
		c.checkProc(c.tables.Procs.Get(i))
	}
}

func (c *checker) checkProc(row *hir.ProcData) {
	item := c.tree.Items.Get(row.Item)
	p := c.tree.Items.Proc(item)
	if !p.Body.IsValid() {
		// External/forward-declared proc; the parser already diagnosed a
		// missing body where one was required.
		return
	}

	params := make([]Binding, len(row.Params))
	for i, prm := range row.Params {
		params[i] = Binding{Name: prm.Name, Type: prm.Type}
	}

	ec := &exprChecker{checker: c, scope: row.Scope, ps: newProcScope(params), procReturn: row.Return}
	ec.checkBlock(BlockFlags{}, p.Body, row.Return)
}

func (c *checker) checkConsts() {
	n := c.tables.Consts.Len()
	for i := uint32(1); i <= n; i++ {
		row := c.tables.Consts.Get(i)
		item := c.tree.Items.Get(row.Item)
		cst := c.tree.Items.Const(item)

		ec := &exprChecker{checker: c, scope: row.Scope, ps: newProcScope(nil)}
		if row.Type == nil {
			row.Type = ec.checkExpr(BlockFlags{}, cst.Value, nil)
			continue
		}
		valTy := ec.checkExpr(BlockFlags{}, cst.Value, row.Type)
		ec.expectMatch(row.Type, valTy, c.tree.Exprs.Get(cst.Value).Span)
	}
}

func (c *checker) checkGlobals() {
	n := c.tables.Globals.Len()
	for i := uint32(1); i <= n; i++ {
		row := c.tables.Globals.Get(i)
		item := c.tree.Items.Get(row.Item)
		g := c.tree.Items.Global(item)

		ec := &exprChecker{checker: c, scope: row.Scope, ps: newProcScope(nil)}
		valTy := ec.checkExpr(BlockFlags{}, g.Value, row.Type)
		ec.expectMatch(row.Type, valTy, c.tree.Exprs.Get(g.Value).Span)
	}
}

// expectMatch reports a type-mismatch diagnostic at span unless want and
// got are equivalent or either side is already hir.Error.
func (ec *exprChecker) expectMatch(want, got *hir.Type, span source.Span) {
	if want == nil || got == nil || want.Tag == hir.TyError || got.Tag == hir.TyError {
		return
	}
	if !hir.Equal(want, got) {
		diag.Error(ec.reporter, diag.TypeMismatch, span, "type mismatch: expected `%s`, found `%s`", want, got)
	}
}
