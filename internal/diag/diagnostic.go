package diag

import (
	"fmt"

	"langfront/internal/source"
)

// Note attaches a secondary span and message to a Diagnostic, used for
// "defined here" / "expected because of this" style annotations.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single compiler message anchored at a primary span, with
// zero or more secondary notes. It carries no fix/edit payload: rendering
// and remediation are external concerns.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// New constructs a Diagnostic with no notes attached.
func New(sev Severity, code Code, primary source.Span, message string) *Diagnostic {
	return &Diagnostic{Severity: sev, Code: code, Message: message, Primary: primary}
}

// WithNote appends a secondary note and returns the same Diagnostic, so
// callers can chain construction.
func (d *Diagnostic) WithNote(span source.Span, msg string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Span: span, Msg: msg})
	return d
}

// Errorf builds an error-severity diagnostic.
func Errorf(code Code, primary source.Span, format string, args ...any) *Diagnostic {
	return New(SevError, code, primary, fmt.Sprintf(format, args...))
}

// Warnf builds a warning-severity diagnostic.
func Warnf(code Code, primary source.Span, format string, args ...any) *Diagnostic {
	return New(SevWarning, code, primary, fmt.Sprintf(format, args...))
}

// Infof builds an info-severity diagnostic.
func Infof(code Code, primary source.Span, format string, args ...any) *Diagnostic {
	return New(SevInfo, code, primary, fmt.Sprintf(format, args...))
}
