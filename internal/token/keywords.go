package token

var keywords = map[string]Kind{
	"proc":     KwProc,
	"enum":     KwEnum,
	"union":    KwUnion,
	"struct":   KwStruct,
	"const":    KwConst,
	"global":   KwGlobal,
	"import":   KwImport,
	"pub":      KwPub,
	"mod":      KwMod,
	"super":    KwSuper,
	"package":  KwPackage,
	"let":      KwLet,
	"mut":      KwMut,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"for":      KwFor,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"defer":    KwDefer,
	"match":    KwMatch,
	"as":       KwAs,
	"true":     KwTrue,
	"false":    KwFalse,
	"null":     KwNull,
	"nothing":  KwNothing,
}

// LookupKeyword reports the reserved Kind for ident, if any. Keyword
// matching is case-sensitive: only the lowercase spelling is recognised.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
