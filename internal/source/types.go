// Package source owns file content, line-index tables, and the string
// intern pool shared by every later compiler stage.
package source

// FileID uniquely identifies a source file within a FileSet.
type FileID uint32

// FileFlags encodes metadata discovered while loading a source file.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, generated).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 byte-order mark was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF line endings were normalized to LF.
	FileNormalizedCRLF
)

// TabWidth is the fixed visual width assigned to a tab character when
// computing caret columns for diagnostics.
const TabWidth = 2

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of every '\n', 0-based
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable, 1-based position in a source file.
type LineCol struct {
	Line uint32
	Col  uint32
}
