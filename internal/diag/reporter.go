package diag

import "langfront/internal/source"

// Reporter is how lexer, parser, symbols, hir, and sema stages emit
// diagnostics without owning a Bag directly.
type Reporter interface {
	Report(d *Diagnostic)
}

// Report implements Reporter directly on a Bag, so a Bag can be passed
// anywhere a Reporter is expected.
func (b *Bag) Report(d *Diagnostic) { b.Add(d) }

// Error reports a new error-severity diagnostic.
func Error(r Reporter, code Code, primary source.Span, format string, args ...any) {
	r.Report(Errorf(code, primary, format, args...))
}

// Warn reports a new warning-severity diagnostic.
func Warn(r Reporter, code Code, primary source.Span, format string, args ...any) {
	r.Report(Warnf(code, primary, format, args...))
}

// Info reports a new info-severity diagnostic.
func Info(r Reporter, code Code, primary source.Span, format string, args ...any) {
	r.Report(Infof(code, primary, format, args...))
}
