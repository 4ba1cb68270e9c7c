package parser

import (
	"langfront/internal/ast"
	"langfront/internal/source"
	"langfront/internal/token"
)

// parseImportItem parses `import [super|package] seg/seg/... [.{ sym [as
// alias], ... }] ;`. Path segments are separated by `/` (matching the
// on-disk module layout Pass 1 discovers), not the `::` separator used by
// qualified value/type paths elsewhere. A bare import with no `.{...}`
// list brings only the module itself into scope; listed symbols are
// individually aliasable.
func (p *Parser) parseImportItem(attr ast.AttrID) (ast.ItemID, bool) {
	start := p.advance() // 'import'

	var prefix ast.PathPrefix
	var prefixSpan source.Span
	switch p.c.kind() {
	case token.KwSuper:
		prefix = ast.PrefixSuper
		prefixSpan = p.advance()
		p.eat(token.Slash)
	case token.KwPackage:
		prefix = ast.PrefixPackage
		prefixSpan = p.advance()
		p.eat(token.Slash)
	}

	var segments []source.StringID
	var spans []source.Span
	for {
		name, sp, ok := p.parseIdent()
		if !ok {
			break
		}
		segments = append(segments, name)
		spans = append(spans, sp)
		if !p.eat(token.Slash) {
			break
		}
	}

	var symbols []ast.ImportSymbol
	end := p.c.span()
	if len(spans) > 0 {
		end = spans[len(spans)-1]
	}

	if p.at(token.Dot) && p.c.kindAt(1) == token.LBrace {
		p.advance() // '.'
		p.advance() // '{'
		for !p.at(token.RBrace) && !p.c.atEOF() {
			symStart := p.c.span()
			sname, sspan, ok := p.parseIdent()
			if !ok {
				break
			}
			alias := source.NoStringID
			if p.eat(token.KwAs) {
				alias, _, _ = p.parseIdent()
			}
			symbols = append(symbols, ast.ImportSymbol{Name: sname, NameSpan: sspan, Alias: alias, Span: symStart.Cover(p.c.span())})
			if !p.eat(token.Comma) {
				break
			}
		}
		end, _ = p.expect(token.RBrace)
		p.eat(token.Semicolon)
	} else {
		end, _ = p.expect(token.Semicolon)
	}

	symbolsStart, symbolsCount := p.b.Tree.Items.NewImportSymbols(symbols)
	item := ast.ImportItem{
		Prefix: prefix, PrefixSpan: prefixSpan,
		PathSegments: segments, PathSpans: spans,
		SymbolsStart: symbolsStart, SymbolsCount: symbolsCount,
	}
	id := p.b.Tree.Items.NewImport(item, attr, start.Cover(end))
	return id, true
}
