package source

import (
	"path/filepath"
	"sort"
)

// normalizeCRLF rewrites "\r\n" to "\n", leaving lone "\r" untouched.
// Returns the (possibly unmodified) content and whether any replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	changed := false
	for _, b := range content {
		if b == '\r' {
			changed = true
			break
		}
	}
	if !changed {
		return content, false
	}
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i++
			continue
		}
		out = append(out, content[i])
	}
	return out, true
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// buildLineIndex records the byte offset of every '\n' in content.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol converts a byte offset into a 1-based (line, col) pair by
// binary-searching the line index, per spec.md §4.A.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	i := sort.Search(len(lineIdx), func(k int) bool { return lineIdx[k] > off })
	if i == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	last := lineIdx[i-1]
	if off == last {
		var start uint32
		if i-1 == 0 {
			start = 0
		} else {
			start = lineIdx[i-2] + 1
		}
		return LineCol{Line: uint32(i), Col: last - start + 1}
	}
	start := last + 1
	return LineCol{Line: uint32(i + 1), Col: off - start + 1}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the absolute, slash-normalized form of path.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	return normalizePath(abs), nil
}

// RelativePath returns path relative to base, falling back to the
// normalized absolute path if no relative form exists.
func RelativePath(path, base string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return normalizePath(absPath), nil
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return normalizePath(absPath), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the final path element.
func BaseName(path string) string {
	return normalizePath(filepath.Base(path))
}

// VisualColumn converts a 1-based byte column within line into a
// 1-based visual column, expanding tabs to TabWidth, per spec.md §4.A.
func VisualColumn(line string, byteCol uint32) uint32 {
	if byteCol <= 1 {
		return 1
	}
	bytePos := 0
	visual := uint32(0)
	for _, r := range line {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visual = (visual/TabWidth + 1) * TabWidth
		} else {
			visual++
		}
		bytePos += len(string(r))
	}
	return visual + 1
}
