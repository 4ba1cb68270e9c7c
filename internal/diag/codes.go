package diag

// Code classifies a diagnostic by its taxonomy entry (spec.md §7).
type Code string

const (
	// Lexical
	LexUnterminatedChar   Code = "lex-unterminated-char"
	LexUnterminatedString Code = "lex-unterminated-string"
	LexInvalidEscape      Code = "lex-invalid-escape"
	LexUnknownChar        Code = "lex-unknown-char"
	LexTokenTooLong       Code = "lex-token-too-long"
	LexMalformedNumber    Code = "lex-malformed-number"

	// Syntactic
	SynUnexpectedToken Code = "syn-unexpected-token"

	// Name resolution
	NameNotFound           Code = "name-not-found"
	NameRedefinition       Code = "name-redefinition"
	NameModuleFileMissing  Code = "name-module-file-missing"
	NameModuleFileAmbig    Code = "name-module-file-ambiguous"
	NameModuleFileClaimed  Code = "name-module-file-already-claimed"
	NameModuleCyclic       Code = "name-module-cyclic-target"
	NamePrivateAccess      Code = "name-private-symbol-access"
	NameSuperFromRoot      Code = "name-super-from-root"
	NameImportUnresolved   Code = "name-import-unresolved"
	NameImportRedundant    Code = "name-import-redundant-self"
	NameDuplicateInList    Code = "name-duplicate-in-list"
	NameUnknownVariant     Code = "name-unknown-variant"
	NameMainProcMissing    Code = "name-main-proc-missing"
	NameMainProcSignature  Code = "name-main-proc-signature"
	NamePubOnImport        Code = "name-pub-on-import"

	// Type
	TypeMismatch           Code = "type-mismatch"
	TypeFieldNotFound      Code = "type-field-not-found"
	TypeCannotIndex        Code = "type-cannot-index"
	TypeBadCast            Code = "type-bad-cast"
	TypeBreakOutsideLoop   Code = "type-break-outside-loop"
	TypeContinueOutsideLoop Code = "type-continue-outside-loop"
	TypeReturnInDefer      Code = "type-return-in-defer"
	TypeNestedDefer        Code = "type-nested-defer"
	TypeUnknownAttribute   Code = "type-unknown-attribute"
	TypeMissingBody        Code = "type-missing-body"
	TypeBadAssignTarget    Code = "type-bad-assign-target"
	TypeCyclicConstDep     Code = "type-cyclic-const-dependency"
	TypeEmptyMatch         Code = "type-empty-match"
)
