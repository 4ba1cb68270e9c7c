package ast

import "langfront/internal/source"

// StmtKind tags a statement node.
type StmtKind uint8

const (
	// StmtError marks a statement that failed to parse.
	StmtError StmtKind = iota
	// StmtLet is `let name [: T] = expr;` or `mut name [: T] = expr;`.
	StmtLet
	// StmtExpr is a bare expression used as a statement (`f();`), including
	// assignments, which spec.md treats as expressions with unit type.
	StmtExpr
	// StmtFor covers all three for-loop forms: infinite, C-style, while.
	StmtFor
	// StmtBreak is `break;`.
	StmtBreak
	// StmtContinue is `continue;`.
	StmtContinue
	// StmtReturn is `return;` or `return expr;`.
	StmtReturn
	// StmtDefer is `defer stmt;`.
	StmtDefer
)

// ForKind distinguishes the three for-loop forms spec.md's grammar allows.
type ForKind uint8

const (
	// ForInfinite is `for { ... }`.
	ForInfinite ForKind = iota
	// ForCStyle is `for let|mut ...; cond; post { ... }`.
	ForCStyle
	// ForWhile is `for cond { ... }` (also reachable via the `while`
	// keyword, which desugars to the same node).
	ForWhile
)

// Stmt is a single statement node.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// LetStmt is the payload of a StmtLet node.
type LetStmt struct {
	Mut     bool
	Name    source.StringID
	Type    TypeID // NoTypeID if the annotation was omitted
	Init    ExprID
	NameSpan source.Span
}

// ExprStmt is the payload of a StmtExpr node.
type ExprStmt struct {
	Value ExprID
}

// ForStmt is the payload of a StmtFor node.
type ForStmt struct {
	Kind ForKind
	Init StmtID // NoStmtID unless Kind == ForCStyle
	Cond ExprID // NoExprID for ForInfinite
	Post StmtID // NoStmtID unless Kind == ForCStyle
	Body ExprID // an ExprBlock
}

// ReturnStmt is the payload of a StmtReturn node.
type ReturnStmt struct {
	Value ExprID // NoExprID for a bare `return;`
}

// DeferStmt is the payload of a StmtDefer node.
type DeferStmt struct {
	Body StmtID
}

// Stmts manages allocation of statement nodes and their payloads.
type Stmts struct {
	Arena *Arena[Stmt]

	Lets    *Arena[LetStmt]
	Exprs   *Arena[ExprStmt]
	Fors    *Arena[ForStmt]
	Returns *Arena[ReturnStmt]
	Defers  *Arena[DeferStmt]
}

// NewStmts creates a Stmts container with capHint-sized arenas.
func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Lets:    NewArena[LetStmt](capHint / 4),
		Exprs:   NewArena[ExprStmt](capHint / 2),
		Fors:    NewArena[ForStmt](capHint / 8),
		Returns: NewArena[ReturnStmt](capHint / 8),
		Defers:  NewArena[DeferStmt](capHint / 16),
	}
}

// Get returns the statement node for id.
func (s *Stmts) Get(id StmtID) *Stmt { return s.Arena.Get(uint32(id)) }

func (s *Stmts) alloc(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

// NewError allocates a StmtError placeholder.
func (s *Stmts) NewError(span source.Span) StmtID { return s.alloc(StmtError, span, NoPayloadID) }

// NewLet allocates a StmtLet node.
func (s *Stmts) NewLet(l LetStmt, span source.Span) StmtID {
	return s.alloc(StmtLet, span, PayloadID(s.Lets.Allocate(l)))
}

// Let returns the payload of a StmtLet node.
func (s *Stmts) Let(stmt *Stmt) *LetStmt { return s.Lets.Get(uint32(stmt.Payload)) }

// NewExpr allocates a StmtExpr node.
func (s *Stmts) NewExpr(value ExprID, span source.Span) StmtID {
	return s.alloc(StmtExpr, span, PayloadID(s.Exprs.Allocate(ExprStmt{Value: value})))
}

// ExprOf returns the payload of a StmtExpr node.
func (s *Stmts) ExprOf(stmt *Stmt) *ExprStmt { return s.Exprs.Get(uint32(stmt.Payload)) }

// NewFor allocates a StmtFor node.
func (s *Stmts) NewFor(f ForStmt, span source.Span) StmtID {
	return s.alloc(StmtFor, span, PayloadID(s.Fors.Allocate(f)))
}

// For returns the payload of a StmtFor node.
func (s *Stmts) For(stmt *Stmt) *ForStmt { return s.Fors.Get(uint32(stmt.Payload)) }

// NewBreak allocates a StmtBreak node.
func (s *Stmts) NewBreak(span source.Span) StmtID { return s.alloc(StmtBreak, span, NoPayloadID) }

// NewContinue allocates a StmtContinue node.
func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.alloc(StmtContinue, span, NoPayloadID)
}

// NewReturn allocates a StmtReturn node.
func (s *Stmts) NewReturn(value ExprID, span source.Span) StmtID {
	return s.alloc(StmtReturn, span, PayloadID(s.Returns.Allocate(ReturnStmt{Value: value})))
}

// Return returns the payload of a StmtReturn node.
func (s *Stmts) Return(stmt *Stmt) *ReturnStmt { return s.Returns.Get(uint32(stmt.Payload)) }

// NewDefer allocates a StmtDefer node.
func (s *Stmts) NewDefer(body StmtID, span source.Span) StmtID {
	return s.alloc(StmtDefer, span, PayloadID(s.Defers.Allocate(DeferStmt{Body: body})))
}

// Defer returns the payload of a StmtDefer node.
func (s *Stmts) Defer(stmt *Stmt) *DeferStmt { return s.Defers.Get(uint32(stmt.Payload)) }
