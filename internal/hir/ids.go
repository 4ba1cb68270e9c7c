// Package hir lowers a checked AST into item-level type information: the
// signatures, field lists, and constant-expression slots every procedure
// body is checked against. It does not lower procedure bodies themselves —
// that is internal/sema's job, operating directly on the AST with this
// package's tables as its source of expected types.
package hir

// ProcID identifies a lowered procedure in the Tables.Procs arena.
type ProcID uint32

// EnumID identifies a lowered enum in the Tables.Enums arena.
type EnumID uint32

// UnionID identifies a lowered union in the Tables.Unions arena.
type UnionID uint32

// StructID identifies a lowered struct in the Tables.Structs arena.
type StructID uint32

// ConstID identifies a lowered const item in the Tables.Consts arena.
type ConstID uint32

// GlobalID identifies a lowered global item in the Tables.Globals arena.
type GlobalID uint32

// ConstExprID identifies a constant-expression slot — an array length or
// enum discriminant awaiting resolution.
type ConstExprID uint32

const (
	NoProcID      ProcID      = 0
	NoEnumID      EnumID      = 0
	NoUnionID     UnionID     = 0
	NoStructID    StructID    = 0
	NoConstID     ConstID     = 0
	NoGlobalID    GlobalID    = 0
	NoConstExprID ConstExprID = 0

	// ConstExprNone (spec's CONST_EXPR_NONE sentinel) is distinct from
	// NoConstExprID: NoConstExprID means "no length expression here",
	// ConstExprNone means "a length whose value is unknown" (instant-mode
	// folding failed, or a placeholder). Neither indexes Tables.ConstExprs.
	ConstExprNone ConstExprID = 1<<32 - 1
)

func (id ProcID) IsValid() bool      { return id != NoProcID }
func (id EnumID) IsValid() bool      { return id != NoEnumID }
func (id UnionID) IsValid() bool     { return id != NoUnionID }
func (id StructID) IsValid() bool    { return id != NoStructID }
func (id ConstID) IsValid() bool     { return id != NoConstID }
func (id GlobalID) IsValid() bool    { return id != NoGlobalID }
func (id ConstExprID) IsValid() bool { return id != NoConstExprID }
