// Package parser builds an ast.Tree from a token.Stream by recursive
// descent, with a Pratt expression parser for the six-level precedence
// table spec.md §4.E defines.
package parser

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/source"
	"langfront/internal/token"
)

// Options configures a single file's parse.
type Options struct {
	Reporter diag.Reporter
}

// Result is the outcome of parsing one file.
type Result struct {
	Module *ast.Module
}

// Parser holds the mutable state threaded through one file's parse.
type Parser struct {
	c       *cursor
	b       *ast.Builder
	file    *source.File
	opts    Options
	exprDepth int
}

// maxExprDepth guards against stack overflow on deeply nested or malformed
// expressions (e.g. thousands of unmatched '(' chars).
const maxExprDepth = 256

// ParseFile parses one file's already-lexed token stream into b's Tree,
// recording the resulting Module.
func ParseFile(file *source.File, stream *token.Stream, b *ast.Builder, opts Options) Result {
	p := &Parser{
		c:    newCursor(stream, file),
		b:    b,
		file: file,
		opts: opts,
	}
	start := p.c.span()
	items := p.parseItems()
	end := p.c.span()
	mod := p.b.FinishModule(file.ID, start.Cover(end), items)
	return Result{Module: mod}
}

func (p *Parser) at(k token.Kind) bool  { return p.c.kind() == k }
func (p *Parser) atAny(ks ...token.Kind) bool {
	cur := p.c.kind()
	for _, k := range ks {
		if cur == k {
			return true
		}
	}
	return false
}

func (p *Parser) advance() source.Span { return p.c.advance() }

// eat consumes the current token if it matches k and reports whether it did.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it matches k, otherwise reports a
// diagnostic and leaves the cursor in place for the caller's recovery.
func (p *Parser) expect(k token.Kind) (source.Span, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errf(diag.SynUnexpectedToken, p.c.span(), "expected %s, found %s", k, p.c.kind())
	return p.c.span(), false
}

func (p *Parser) errf(code diag.Code, span source.Span, format string, args ...any) {
	if p.opts.Reporter == nil {
		return
	}
	diag.Error(p.opts.Reporter, code, span, format, args...)
}

// intern interns the current token's raw text.
func (p *Parser) internCurrent() source.StringID {
	return p.b.Intern(p.c.text())
}

// parseIdent consumes an identifier, interning its text.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if !p.at(token.Ident) {
		p.errf(diag.SynUnexpectedToken, p.c.span(), "expected identifier, found %s", p.c.kind())
		return source.NoStringID, p.c.span(), false
	}
	name := p.internCurrent()
	sp := p.advance()
	return name, sp, true
}

// parseItems parses every top-level item until EOF, synchronising past
// malformed ones so a single bad item doesn't abort the whole file.
func (p *Parser) parseItems() []ast.ItemID {
	var items []ast.ItemID
	for !p.c.atEOF() {
		before := p.c.pos
		id, ok := p.parseItem()
		if ok {
			items = append(items, id)
		} else {
			p.resyncTop()
		}
		if p.c.pos == before && !p.c.atEOF() {
			p.advance()
		}
	}
	return items
}

// itemStarters are the token kinds that may begin a top-level item,
// after an optional `#[attr]` and optional `pub`.
func isItemStarter(k token.Kind) bool {
	switch k {
	case token.KwProc, token.KwEnum, token.KwUnion, token.KwStruct,
		token.KwConst, token.KwGlobal, token.KwImport:
		return true
	default:
		return false
	}
}

// parseItem dispatches on the keyword following an optional attribute and
// an optional `pub`.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	attr, attrSpan, hasAttr := p.parseOptionalAttr()

	pub := false
	var pubSpan source.Span
	if p.at(token.KwPub) {
		pub = true
		pubSpan = p.advance()
	}

	switch p.c.kind() {
	case token.KwProc:
		return p.parseProcItem(attr, pub)
	case token.KwEnum:
		return p.parseEnumItem(attr, pub)
	case token.KwUnion:
		return p.parseUnionItem(attr, pub)
	case token.KwStruct:
		return p.parseStructItem(attr, pub)
	case token.KwConst:
		return p.parseConstItem(attr, pub)
	case token.KwGlobal:
		return p.parseGlobalItem(attr, pub)
	case token.KwImport:
		if pub {
			p.errf(diag.NamePubOnImport, pubSpan, "import declarations cannot be 'pub'")
		}
		return p.parseImportItem(attr)
	default:
		if hasAttr {
			p.errf(diag.SynUnexpectedToken, attrSpan, "attribute must precede an item")
		}
		p.errf(diag.SynUnexpectedToken, p.c.span(), "expected a top-level item, found %s", p.c.kind())
		return ast.NoItemID, false
	}
}

// resyncTop skips tokens until the next likely item starter, a
// semicolon, or EOF.
func (p *Parser) resyncTop() {
	for !p.c.atEOF() {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		if p.at(token.At) || p.at(token.KwPub) || isItemStarter(p.c.kind()) {
			return
		}
		p.advance()
	}
}
