package sema

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/hir"
	"langfront/internal/source"
	"langfront/internal/symbols"
)

func isNumeric(t *hir.Type) bool {
	return t.Tag == hir.TyBasic && (t.Basic.IsInteger() || t.Basic.IsFloat())
}

func isInteger(t *hir.Type) bool {
	return t.Tag == hir.TyBasic && t.Basic.IsInteger()
}

func isPlaceExpr(e *ast.Expr) bool {
	switch e.Kind {
	case ast.ExprPath, ast.ExprField, ast.ExprIndex:
		return true
	default:
		return false
	}
}

// checkExpr type-checks expr, optionally against an expected type flowing
// down from its surrounding context, and returns the expression's
// resolved type. On any mismatch the specific diagnostic is reported and
// hir.Error is returned so the failure doesn't cascade into callers.
func (ec *exprChecker) checkExpr(flags BlockFlags, id ast.ExprID, expected *hir.Type) *hir.Type {
	expr := ec.tree.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprError:
		return hir.Error

	case ast.ExprIntLit, ast.ExprUintLit:
		if expected != nil && expected.Tag == hir.TyBasic && (expected.Basic.IsInteger() || expected.Basic.IsFloat()) {
			return expected
		}
		return hir.Basic(hir.BasicS32)

	case ast.ExprFloatLit:
		if expected != nil && expected.Tag == hir.TyBasic && expected.Basic.IsFloat() {
			return expected
		}
		return hir.Basic(hir.BasicF64)

	case ast.ExprCharLit:
		return hir.Basic(hir.BasicChar)

	case ast.ExprStringLit:
		return hir.Reference(false, hir.Slice(false, hir.Basic(hir.BasicU8)))

	case ast.ExprBoolLit:
		return hir.Basic(hir.BasicBool)

	case ast.ExprNullLit:
		return hir.Basic(hir.BasicRawptr)

	case ast.ExprNothingLit:
		return hir.Unit

	case ast.ExprPath:
		return ec.checkPath(ec.tree.Exprs.Path(expr), expr)

	case ast.ExprUnary:
		return ec.checkUnary(flags, expr, expected)

	case ast.ExprBinary:
		return ec.checkBinary(flags, expr)

	case ast.ExprRef:
		r := ec.tree.Exprs.Ref(expr)
		var inner *hir.Type
		if expected != nil && expected.Tag == hir.TyReference {
			inner = ec.checkExpr(flags, r.Operand, expected.Inner)
		} else {
			inner = ec.checkExpr(flags, r.Operand, nil)
		}
		return hir.Reference(r.Mut, inner)

	case ast.ExprCall:
		return ec.checkCall(flags, expr)

	case ast.ExprField:
		return ec.checkField(flags, expr)

	case ast.ExprIndex:
		return ec.checkIndex(flags, expr)

	case ast.ExprSlice:
		return ec.checkSlice(flags, expr)

	case ast.ExprCast:
		return ec.checkCast(flags, expr)

	case ast.ExprStructLit:
		return ec.checkStructLit(flags, expr)

	case ast.ExprArrayList:
		return ec.checkArrayList(flags, expr, expected)

	case ast.ExprArrayRepeat:
		return ec.checkArrayRepeat(flags, expr, expected)

	case ast.ExprIf:
		return ec.checkIf(flags, expr, expected)

	case ast.ExprMatch:
		return ec.checkMatch(flags, expr, expected)

	case ast.ExprBlock:
		return ec.checkBlock(flags, id, expected)

	case ast.ExprAssign:
		return ec.checkAssign(flags, expr)

	default:
		return hir.Error
	}
}

// checkPath resolves a value-position path: a local variable first (proc
// bodies track those entirely outside symbols.Table), then a two-segment
// `Enum::Variant` reference (symbols.ResolvePath explicitly leaves that
// hop to callers), and finally an ordinary qualified proc/const/global
// reference.
func (ec *exprChecker) checkPath(path *ast.Path, expr *ast.Expr) *hir.Type {
	if path.Prefix == ast.PrefixNone && len(path.Segments) == 1 {
		if b, ok := ec.ps.findVariable(path.Segments[0]); ok {
			return b.Type
		}
	}

	if len(path.Segments) == 2 {
		startScope := ec.scope
		switch path.Prefix {
		case ast.PrefixSuper:
			startScope = ec.table.Scope(ec.scope).Parent
		case ast.PrefixPackage:
			startScope = ec.root
		}
		if startScope.IsValid() {
			if symID, ok := ec.table.Lookup(startScope, path.Segments[0]); ok {
				defSymID, sym := ec.resolveDefined(symID)
				if sym.Kind == symbols.SymbolEnum {
					ref, ok := ec.tables.BySymbol[defSymID]
					if ok && ref.Kind == hir.ItemRefEnum {
						enumData := ec.tables.Enums.Get(uint32(ref.Enum))
						variantName := path.Segments[1]
						for _, v := range enumData.Variants {
							if v.Name == variantName {
								return hir.NamedEnumType(ref.Enum)
							}
						}
						diag.Error(ec.reporter, diag.NameUnknownVariant, path.SegmentSpans[1],
							"no variant named %q on enum %q", ec.interner.MustLookup(variantName), ec.interner.MustLookup(enumData.Name))
						return hir.Error
					}
				}
			}
		}
	}

	res := symbols.ResolvePath(ec.table, ec.interner, ec.root, ec.scope, path, symbols.AsValue, ec.reporter)
	if !res.OK {
		return hir.Error
	}
	symID, _ := ec.resolveDefined(res.Symbol)
	ref, ok := ec.tables.BySymbol[symID]
	if !ok {
		return hir.Error
	}
	switch ref.Kind {
	case hir.ItemRefConst:
		return ec.tables.Consts.Get(uint32(ref.Const)).Type
	case hir.ItemRefGlobal:
		return ec.tables.Globals.Get(uint32(ref.Global)).Type
	default:
		// A bare proc name outside call position has no modelled value
		// type; leave it unchecked rather than inventing one.
		return hir.Error
	}
}

func (ec *exprChecker) checkUnary(flags BlockFlags, expr *ast.Expr, expected *hir.Type) *hir.Type {
	u := ec.tree.Exprs.Unary(expr)
	switch u.Op {
	case ast.UnNeg:
		ty := ec.checkExpr(flags, u.Operand, expected)
		if ty.Tag == hir.TyError {
			return hir.Error
		}
		if !isNumeric(ty) {
			diag.Error(ec.reporter, diag.TypeMismatch, expr.Span, "cannot negate a value of type `%s`", ty)
			return hir.Error
		}
		return ty
	default: // UnNot
		ty := ec.checkExpr(flags, u.Operand, hir.Basic(hir.BasicBool))
		ec.expectMatch(hir.Basic(hir.BasicBool), ty, expr.Span)
		return hir.Basic(hir.BasicBool)
	}
}

func (ec *exprChecker) checkBinary(flags BlockFlags, expr *ast.Expr) *hir.Type {
	b := ec.tree.Exprs.Binary(expr)
	rhsSpan := ec.tree.Exprs.Get(b.Rhs).Span

	switch b.Op {
	case ast.BinAndAnd, ast.BinOrOr:
		lhsTy := ec.checkExpr(flags, b.Lhs, hir.Basic(hir.BasicBool))
		rhsTy := ec.checkExpr(flags, b.Rhs, hir.Basic(hir.BasicBool))
		ec.expectMatch(hir.Basic(hir.BasicBool), lhsTy, ec.tree.Exprs.Get(b.Lhs).Span)
		ec.expectMatch(hir.Basic(hir.BasicBool), rhsTy, rhsSpan)
		return hir.Basic(hir.BasicBool)

	case ast.BinEq, ast.BinNe, ast.BinLt, ast.BinLe, ast.BinGt, ast.BinGe:
		lhsTy := ec.checkExpr(flags, b.Lhs, nil)
		rhsTy := ec.checkExpr(flags, b.Rhs, lhsTy)
		ec.expectMatch(lhsTy, rhsTy, rhsSpan)
		return hir.Basic(hir.BasicBool)

	case ast.BinBitAnd, ast.BinBitOr, ast.BinBitXor, ast.BinShl, ast.BinShr:
		lhsTy := ec.checkExpr(flags, b.Lhs, nil)
		rhsTy := ec.checkExpr(flags, b.Rhs, lhsTy)
		ec.expectMatch(lhsTy, rhsTy, rhsSpan)
		if lhsTy.Tag != hir.TyError && !isInteger(lhsTy) {
			diag.Error(ec.reporter, diag.TypeMismatch, expr.Span, "expected an integer type, found `%s`", lhsTy)
			return hir.Error
		}
		return lhsTy

	default: // arithmetic
		lhsTy := ec.checkExpr(flags, b.Lhs, nil)
		rhsTy := ec.checkExpr(flags, b.Rhs, lhsTy)
		ec.expectMatch(lhsTy, rhsTy, rhsSpan)
		if lhsTy.Tag != hir.TyError && !isNumeric(lhsTy) {
			diag.Error(ec.reporter, diag.TypeMismatch, expr.Span, "expected a numeric type, found `%s`", lhsTy)
			return hir.Error
		}
		return lhsTy
	}
}

func (ec *exprChecker) checkCall(flags BlockFlags, expr *ast.Expr) *hir.Type {
	call := ec.tree.Exprs.Call(expr)
	callee := ec.tree.Exprs.Get(call.Callee)

	if callee.Kind != ast.ExprPath {
		ec.checkExpr(flags, call.Callee, nil)
		return hir.Error
	}
	path := ec.tree.Exprs.Path(callee)
	res := symbols.ResolvePath(ec.table, ec.interner, ec.root, ec.scope, path, symbols.AsValue, ec.reporter)
	if !res.OK {
		for _, a := range call.Args {
			ec.checkExpr(flags, a, nil)
		}
		return hir.Error
	}
	symID, sym := ec.resolveDefined(res.Symbol)
	if sym.Kind != symbols.SymbolProc {
		diag.Error(ec.reporter, diag.TypeMismatch, callee.Span, "%q is not callable", ec.interner.MustLookup(sym.Name))
		for _, a := range call.Args {
			ec.checkExpr(flags, a, nil)
		}
		return hir.Error
	}
	ref, ok := ec.tables.BySymbol[symID]
	if !ok || ref.Kind != hir.ItemRefProc {
		return hir.Error
	}
	proc := ec.tables.Procs.Get(uint32(ref.Proc))

	want := len(proc.Params)
	got := len(call.Args)
	if (proc.Variadic && got < want) || (!proc.Variadic && got != want) {
		diag.Error(ec.reporter, diag.TypeMismatch, expr.Span, "expected %d argument(s), found %d", want, got)
	}
	for i, a := range call.Args {
		if i < len(proc.Params) {
			argTy := ec.checkExpr(flags, a, proc.Params[i].Type)
			ec.expectMatch(proc.Params[i].Type, argTy, ec.tree.Exprs.Get(a).Span)
		} else {
			ec.checkExpr(flags, a, nil)
		}
	}
	return proc.Return
}

// derefOnce transparently unwraps one reference level, the auto-deref
// rule spec.md §4.I gives field access and indexing alike.
func derefOnce(t *hir.Type) *hir.Type {
	if t.Tag == hir.TyReference {
		return t.Inner
	}
	return t
}

func (ec *exprChecker) checkField(flags BlockFlags, expr *ast.Expr) *hir.Type {
	f := ec.tree.Exprs.Field(expr)
	opTy := derefOnce(ec.checkExpr(flags, f.Operand, nil))

	if opTy.Tag == hir.TyError {
		return hir.Error
	}
	if opTy.Tag != hir.TyNamed {
		diag.Error(ec.reporter, diag.TypeFieldNotFound, f.NameSpan, "value of type `%s` has no fields", opTy)
		return hir.Error
	}
	switch opTy.NamedKind {
	case hir.NamedStruct:
		s := ec.tables.Structs.Get(uint32(opTy.StructID))
		for _, field := range s.Fields {
			if field.Name == f.Name {
				return field.Type
			}
		}
	case hir.NamedUnion:
		u := ec.tables.Unions.Get(uint32(opTy.UnionID))
		for _, m := range u.Members {
			if m.Name == f.Name {
				return m.Type
			}
		}
	default:
		diag.Error(ec.reporter, diag.TypeFieldNotFound, f.NameSpan, "value of type `%s` has no fields", opTy)
		return hir.Error
	}
	diag.Error(ec.reporter, diag.TypeFieldNotFound, f.NameSpan, "no field named %q on `%s`", ec.interner.MustLookup(f.Name), opTy)
	return hir.Error
}

func (ec *exprChecker) checkIndex(flags BlockFlags, expr *ast.Expr) *hir.Type {
	idx := ec.tree.Exprs.Index(expr)
	opTy := derefOnce(ec.checkExpr(flags, idx.Operand, nil))
	indexTy := ec.checkExpr(flags, idx.Index, hir.Basic(hir.BasicUsize))
	ec.expectMatch(hir.Basic(hir.BasicUsize), indexTy, ec.tree.Exprs.Get(idx.Index).Span)

	if opTy.Tag == hir.TyError {
		return hir.Error
	}
	if opTy.Tag != hir.TySlice && opTy.Tag != hir.TyArray {
		diag.Error(ec.reporter, diag.TypeCannotIndex, expr.Span, "cannot index a value of type `%s`", opTy)
		return hir.Error
	}
	return opTy.Inner
}

func (ec *exprChecker) checkSlice(flags BlockFlags, expr *ast.Expr) *hir.Type {
	s := ec.tree.Exprs.Slice(expr)
	opTy := derefOnce(ec.checkExpr(flags, s.Operand, nil))
	if s.Low.IsValid() {
		lowTy := ec.checkExpr(flags, s.Low, hir.Basic(hir.BasicUsize))
		ec.expectMatch(hir.Basic(hir.BasicUsize), lowTy, ec.tree.Exprs.Get(s.Low).Span)
	}
	if s.High.IsValid() {
		highTy := ec.checkExpr(flags, s.High, hir.Basic(hir.BasicUsize))
		ec.expectMatch(hir.Basic(hir.BasicUsize), highTy, ec.tree.Exprs.Get(s.High).Span)
	}

	if opTy.Tag == hir.TyError {
		return hir.Error
	}
	if opTy.Tag != hir.TySlice && opTy.Tag != hir.TyArray {
		diag.Error(ec.reporter, diag.TypeCannotIndex, expr.Span, "cannot slice a value of type `%s`", opTy)
		return hir.Error
	}
	return hir.Slice(s.Mut, opTy.Inner)
}

func (ec *exprChecker) checkCast(flags BlockFlags, expr *ast.Expr) *hir.Type {
	c := ec.tree.Exprs.Cast(expr)
	operandTy := ec.checkExpr(flags, c.Operand, nil)
	target := ec.resolveType(ec.scope, ec.tree.Types.Get(c.Target))

	if operandTy.Tag == hir.TyError || target.Tag == hir.TyError {
		return target
	}
	if operandTy.Tag != hir.TyBasic && target.Tag != hir.TyBasic {
		diag.Error(ec.reporter, diag.TypeBadCast, expr.Span, "cannot cast `%s` to `%s`", operandTy, target)
		return hir.Error
	}
	return target
}

func (ec *exprChecker) checkStructLit(flags BlockFlags, expr *ast.Expr) *hir.Type {
	lit := ec.tree.Exprs.StructLit(expr)
	fields := ec.tree.Exprs.StructLitFieldsOf(lit)

	res := symbols.ResolvePath(ec.table, ec.interner, ec.root, ec.scope, &lit.Path, symbols.AsType, ec.reporter)
	if !res.OK {
		for _, f := range fields {
			ec.checkExpr(flags, f.Value, nil)
		}
		return hir.Error
	}
	symID, _ := ec.resolveDefined(res.Symbol)
	ref, ok := ec.tables.BySymbol[symID]
	if !ok {
		return hir.Error
	}

	switch ref.Kind {
	case hir.ItemRefStruct:
		s := ec.tables.Structs.Get(uint32(ref.Struct))
		for _, f := range fields {
			fieldTy := ec.lookupStructField(s, f.Name, f.NameSpan)
			valTy := ec.checkExpr(flags, f.Value, fieldTy)
			if fieldTy != nil {
				ec.expectMatch(fieldTy, valTy, ec.tree.Exprs.Get(f.Value).Span)
			}
		}
		return hir.NamedStructType(ref.Struct)

	case hir.ItemRefUnion:
		u := ec.tables.Unions.Get(uint32(ref.Union))
		for _, f := range fields {
			var memberTy *hir.Type
			found := false
			for _, m := range u.Members {
				if m.Name == f.Name {
					memberTy, found = m.Type, true
					break
				}
			}
			if !found {
				diag.Error(ec.reporter, diag.TypeFieldNotFound, f.NameSpan, "no member named %q on union", ec.interner.MustLookup(f.Name))
			}
			valTy := ec.checkExpr(flags, f.Value, memberTy)
			if found {
				ec.expectMatch(memberTy, valTy, ec.tree.Exprs.Get(f.Value).Span)
			}
		}
		return hir.NamedUnionType(ref.Union)

	case hir.ItemRefEnum:
		e := ec.tables.Enums.Get(uint32(ref.Enum))
		for _, f := range fields {
			found := false
			for _, v := range e.Variants {
				if v.Name == f.Name {
					found = true
					break
				}
			}
			if !found {
				diag.Error(ec.reporter, diag.NameUnknownVariant, f.NameSpan, "no variant named %q on enum %q", ec.interner.MustLookup(f.Name), ec.interner.MustLookup(e.Name))
			}
		}
		return hir.NamedEnumType(ref.Enum)

	default:
		return hir.Error
	}
}

func (ec *exprChecker) lookupStructField(s *hir.StructData, name source.StringID, span source.Span) *hir.Type {
	for _, field := range s.Fields {
		if field.Name == name {
			return field.Type
		}
	}
	diag.Error(ec.reporter, diag.TypeFieldNotFound, span, "no field named %q on struct", ec.interner.MustLookup(name))
	return nil
}

func (ec *exprChecker) checkArrayList(flags BlockFlags, expr *ast.Expr, expected *hir.Type) *hir.Type {
	a := ec.tree.Exprs.ArrayList(expr)
	var hint *hir.Type
	if expected != nil && (expected.Tag == hir.TyArray || expected.Tag == hir.TySlice) {
		hint = expected.Inner
	}

	elemTy := hir.Unit
	for i, el := range a.Elems {
		ty := ec.checkExpr(flags, el, hint)
		if i == 0 {
			elemTy = ty
			if hint == nil {
				hint = ty
			}
		} else {
			ec.expectMatch(hint, ty, ec.tree.Exprs.Get(el).Span)
		}
	}
	if len(a.Elems) == 0 && hint != nil {
		elemTy = hint
	}
	return hir.Array(elemTy, hir.ConstExprNone)
}

func (ec *exprChecker) checkArrayRepeat(flags BlockFlags, expr *ast.Expr, expected *hir.Type) *hir.Type {
	a := ec.tree.Exprs.ArrayRepeat(expr)
	var hint *hir.Type
	if expected != nil && (expected.Tag == hir.TyArray || expected.Tag == hir.TySlice) {
		hint = expected.Inner
	}
	valTy := ec.checkExpr(flags, a.Value, hint)
	countTy := ec.checkExpr(flags, a.Count, hir.Basic(hir.BasicUsize))
	ec.expectMatch(hir.Basic(hir.BasicUsize), countTy, ec.tree.Exprs.Get(a.Count).Span)
	return hir.Array(valTy, hir.ConstExprNone)
}

func (ec *exprChecker) checkIf(flags BlockFlags, expr *ast.Expr, expected *hir.Type) *hir.Type {
	ifExpr := ec.tree.Exprs.If(expr)
	condTy := ec.checkExpr(flags, ifExpr.Cond, hir.Basic(hir.BasicBool))
	ec.expectMatch(hir.Basic(hir.BasicBool), condTy, ec.tree.Exprs.Get(ifExpr.Cond).Span)

	thenTy := ec.checkExpr(flags, ifExpr.Then, expected)
	if !ifExpr.Else.IsValid() {
		return hir.Unit
	}
	elseTy := ec.checkExpr(flags, ifExpr.Else, expected)
	if expected != nil {
		return expected
	}
	ec.expectMatch(thenTy, elseTy, ec.tree.Exprs.Get(ifExpr.Else).Span)
	return thenTy
}

func (ec *exprChecker) checkMatch(flags BlockFlags, expr *ast.Expr, expected *hir.Type) *hir.Type {
	m := ec.tree.Exprs.Match(expr)
	arms := ec.tree.Exprs.ArmsOf(m)
	if len(arms) == 0 {
		diag.Error(ec.reporter, diag.TypeEmptyMatch, expr.Span, "match requires at least one arm")
		return hir.Error
	}

	scrutTy := ec.checkExpr(flags, m.Scrutinee, nil)
	var resultTy *hir.Type
	for _, arm := range arms {
		if !arm.Wildcard {
			patTy := ec.checkExpr(flags, arm.Pattern, scrutTy)
			ec.expectMatch(scrutTy, patTy, ec.tree.Exprs.Get(arm.Pattern).Span)
		}
		bodyTy := ec.checkExpr(flags, arm.Body, expected)
		if resultTy == nil {
			resultTy = bodyTy
		} else {
			ec.expectMatch(resultTy, bodyTy, ec.tree.Exprs.Get(arm.Body).Span)
		}
	}
	if expected != nil {
		return expected
	}
	return resultTy
}

func (ec *exprChecker) checkAssign(flags BlockFlags, expr *ast.Expr) *hir.Type {
	a := ec.tree.Exprs.Assign(expr)
	targetExpr := ec.tree.Exprs.Get(a.Target)
	targetTy := ec.checkExpr(flags, a.Target, nil)

	if !isPlaceExpr(targetExpr) {
		diag.Error(ec.reporter, diag.TypeBadAssignTarget, targetExpr.Span, "assignment target must be a variable, field, or index expression")
	} else if targetExpr.Kind == ast.ExprPath {
		path := ec.tree.Exprs.Path(targetExpr)
		if path.Prefix == ast.PrefixNone && len(path.Segments) == 1 {
			if b, ok := ec.ps.findVariable(path.Segments[0]); ok && !b.Mut {
				diag.Error(ec.reporter, diag.TypeBadAssignTarget, targetExpr.Span, "cannot assign to immutable variable %q", ec.interner.MustLookup(b.Name))
			}
		}
	}

	valTy := ec.checkExpr(flags, a.Value, targetTy)
	if a.Op != ast.AssignPlain && targetTy.Tag != hir.TyError && !isNumeric(targetTy) {
		diag.Error(ec.reporter, diag.TypeMismatch, targetExpr.Span, "compound assignment requires a numeric type, found `%s`", targetTy)
	}
	ec.expectMatch(targetTy, valTy, ec.tree.Exprs.Get(a.Value).Span)
	return hir.Unit
}
