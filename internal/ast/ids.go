package ast

type (
	// ItemID identifies a top-level item (proc, enum, union, struct,
	// const, global, import).
	ItemID uint32
	// StmtID identifies a statement.
	StmtID uint32
	// ExprID identifies an expression.
	ExprID uint32
	// TypeID identifies a type-syntax node.
	TypeID uint32
	// PayloadID indexes a kind-specific item payload.
	PayloadID uint32
	// ParamID identifies a procedure parameter.
	ParamID uint32
	// FieldID identifies a struct field.
	FieldID uint32
	// VariantID identifies an enum variant.
	VariantID uint32
	// MemberID identifies a union member.
	MemberID uint32
	// AttrID identifies an item attribute.
	AttrID uint32
	// ImportSymbolID identifies one listed symbol of an import statement.
	ImportSymbolID uint32
	// ConstExprID identifies a const-expr slot used for array lengths.
	ConstExprID uint32
	// ArmID identifies a match arm.
	ArmID uint32
)

const (
	NoItemID         ItemID         = 0
	NoStmtID         StmtID         = 0
	NoExprID         ExprID         = 0
	NoTypeID         TypeID         = 0
	NoPayloadID      PayloadID      = 0
	NoParamID        ParamID        = 0
	NoFieldID        FieldID        = 0
	NoVariantID      VariantID      = 0
	NoMemberID       MemberID       = 0
	NoAttrID         AttrID         = 0
	NoImportSymbolID ImportSymbolID = 0
	NoArmID          ArmID          = 0
)

// ConstExprNone marks a const-expr slot intentionally never resolved
// (spec.md §3's CONST_EXPR_NONE sentinel).
const ConstExprNone ConstExprID = ^ConstExprID(0)

func (id ItemID) IsValid() bool         { return id != NoItemID }
func (id StmtID) IsValid() bool         { return id != NoStmtID }
func (id ExprID) IsValid() bool         { return id != NoExprID }
func (id TypeID) IsValid() bool         { return id != NoTypeID }
func (id PayloadID) IsValid() bool      { return id != NoPayloadID }
func (id ParamID) IsValid() bool        { return id != NoParamID }
func (id FieldID) IsValid() bool        { return id != NoFieldID }
func (id VariantID) IsValid() bool      { return id != NoVariantID }
func (id MemberID) IsValid() bool       { return id != NoMemberID }
func (id AttrID) IsValid() bool         { return id != NoAttrID }
func (id ImportSymbolID) IsValid() bool { return id != NoImportSymbolID }
func (id ArmID) IsValid() bool          { return id != NoArmID }
func (id ConstExprID) IsValid() bool    { return id != ConstExprNone }
