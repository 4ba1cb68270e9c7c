package parser

import (
	"langfront/internal/ast"
	"langfront/internal/token"
)

// Binary operator precedence, spec.md §4.E's six-level table. Higher
// binds tighter. Range operators are excluded: they only ever occur
// inside `[...]` and are parsed directly by parseIndexOrSlice, never
// through this Pratt loop.
const (
	precOrOr = iota + 1
	precAndAnd
	precRelational
	precAdditive // + - |
	precMultiplicative // * / % & ^ << >>
)

func binaryPrec(k token.Kind) (int, bool) {
	switch k {
	case token.OrOr:
		return precOrOr, true
	case token.AndAnd:
		return precAndAnd, true
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precRelational, true
	case token.Plus, token.Minus, token.Pipe:
		return precAdditive, true
	case token.Star, token.Slash, token.Percent, token.Amp, token.Caret, token.Shl, token.Shr:
		return precMultiplicative, true
	default:
		return 0, false
	}
}

func binaryOp(k token.Kind) ast.BinaryOp {
	switch k {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.Percent:
		return ast.BinMod
	case token.Amp:
		return ast.BinBitAnd
	case token.Pipe:
		return ast.BinBitOr
	case token.Caret:
		return ast.BinBitXor
	case token.Shl:
		return ast.BinShl
	case token.Shr:
		return ast.BinShr
	case token.AndAnd:
		return ast.BinAndAnd
	case token.OrOr:
		return ast.BinOrOr
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNe
	case token.Lt:
		return ast.BinLt
	case token.LtEq:
		return ast.BinLe
	case token.Gt:
		return ast.BinGt
	case token.GtEq:
		return ast.BinGe
	default:
		return ast.BinAdd
	}
}

func unaryOp(k token.Kind) (ast.UnaryOp, bool) {
	switch k {
	case token.Minus:
		return ast.UnNeg, true
	case token.Bang:
		return ast.UnNot, true
	default:
		return 0, false
	}
}

// assignOp maps a compound-assignment token to its AssignOp, or reports
// AssignPlain for bare `=`.
func assignOp(k token.Kind) (ast.AssignOp, bool) {
	switch k {
	case token.Assign:
		return ast.AssignPlain, true
	case token.PlusAssign:
		return ast.AssignAdd, true
	case token.MinusAssign:
		return ast.AssignSub, true
	case token.StarAssign:
		return ast.AssignMul, true
	case token.SlashAssign:
		return ast.AssignDiv, true
	case token.PercentAssign:
		return ast.AssignMod, true
	case token.AmpAssign:
		return ast.AssignBitAnd, true
	case token.PipeAssign:
		return ast.AssignBitOr, true
	case token.CaretAssign:
		return ast.AssignBitXor, true
	case token.ShlAssign:
		return ast.AssignShl, true
	case token.ShrAssign:
		return ast.AssignShr, true
	default:
		return 0, false
	}
}
