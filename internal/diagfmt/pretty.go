// Package diagfmt renders a diag.Bag for a terminal: one line per
// diagnostic giving file:line:col, severity, code and message, followed
// by the offending source line with a caret underline beneath the span,
// then any attached notes.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"langfront/internal/diag"
	"langfront/internal/source"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const tabWidth = source.TabWidth

// PrettyOpts configures Pretty's output.
type PrettyOpts struct {
	// Color enables ANSI colouring; callers gate this on an isatty check.
	Color bool
	// PathMode controls how each file's path is displayed.
	PathMode source.PathMode
	// Context is how many lines of source to show before/after the
	// primary line. Values below 1 are treated as 1.
	Context int
	// ShowNotes prints each diagnostic's attached Notes beneath it.
	ShowNotes bool
}

// visualWidthUpTo computes the on-screen column width of s up to byteCol
// (1-based byte offset), expanding tabs to the next tabWidth stop and
// counting wide runes (e.g. CJK) as two columns.
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visualPos := 0, 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}

// Pretty writes every diagnostic in bag to w in report order. Callers that
// want severity/position ordering should call bag.SortBySeverityThenPosition
// first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prevNoColor := color.NoColor
	defer func() { color.NoColor = prevNoColor }()
	color.NoColor = !opts.Color

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}
		renderOne(w, d, fs, opts, errorColor, warningColor, infoColor, pathColor, codeColor, lineNumColor, underlineColor)
	}
}

func renderOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts,
	errorColor, warningColor, infoColor, pathColor, codeColor, lineNumColor, underlineColor *color.Color,
) {
	start, end := fs.Resolve(d.Primary)
	f := fs.Get(d.Primary.File)
	path := f.FormatPath(opts.PathMode, fs.BaseDir())

	var sevColored string
	switch d.Severity {
	case diag.SevError:
		sevColored = errorColor.Sprint(d.Severity.String())
	case diag.SevWarning:
		sevColored = warningColor.Sprint(d.Severity.String())
	default:
		sevColored = infoColor.Sprint(d.Severity.String())
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		pathColor.Sprint(path), start.Line, start.Col, sevColored, codeColor.Sprint(string(d.Code)), d.Message)

	context := opts.Context
	if context <= 0 {
		context = 1
	}
	totalLines := uint32(len(f.LineIdx)) + 1
	if len(f.LineIdx) == 0 && len(f.Content) > 0 {
		totalLines = 1
	}

	startLine := start.Line
	if uint32(context) < start.Line {
		startLine = start.Line - uint32(context)
	} else {
		startLine = 1
	}
	endLine := start.Line + uint32(context)
	if endLine > totalLines {
		endLine = totalLines
	}
	if startLine > 1 {
		fmt.Fprintln(w, "...")
	}

	lineNumWidth := len(fmt.Sprintf("%d", endLine))
	if lineNumWidth < 3 {
		lineNumWidth = 3
	}

	for lineNum := startLine; lineNum <= endLine; lineNum++ {
		lineText := f.GetLine(lineNum)
		gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(fmt.Sprintf("%*d", lineNumWidth, lineNum)))
		fmt.Fprintf(w, "%s%s\n", gutter, lineText)

		if lineNum != start.Line {
			continue
		}
		startCol, endCol := start.Col, end.Col
		if end.Line > start.Line {
			endCol = uint32(len(lineText)) + 1
		}
		visualStart := visualWidthUpTo(lineText, startCol, tabWidth)
		visualEnd := visualWidthUpTo(lineText, endCol, tabWidth)

		var underline strings.Builder
		for range lineNumWidth + 3 {
			underline.WriteByte(' ')
		}
		for range visualStart {
			underline.WriteByte(' ')
		}
		spanLen := visualEnd - visualStart
		if spanLen <= 0 {
			underline.WriteByte('^')
		} else {
			for i := range spanLen {
				if i == spanLen-1 {
					underline.WriteByte('^')
				} else {
					underline.WriteByte('~')
				}
			}
		}
		fmt.Fprintln(w, underlineColor.Sprint(underline.String()))
	}

	if endLine < totalLines {
		fmt.Fprintln(w, "...")
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nf := fs.Get(note.Span.File)
			notePath := nf.FormatPath(opts.PathMode, fs.BaseDir())
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				infoColor.Sprint("note"), pathColor.Sprint(notePath), noteStart.Line, noteStart.Col, note.Msg)
		}
	}
}
