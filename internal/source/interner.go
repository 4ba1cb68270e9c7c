package source

// StringID is an opaque, dense handle into an Interner's string table.
type StringID uint32

// NoStringID marks the absence of an interned string.
const NoStringID StringID = 0

// Interner is a content-addressed string table: identical byte
// sequences always map to the same StringID, and distinct sequences
// always map to distinct IDs. The core pipeline is single-threaded
// (spec §5), so no locking is needed here.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner creates an empty pool. Index 0 is reserved for NoStringID.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the canonical ID for s, inserting it if not already present.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	// Copy so the pool never retains a slice of a caller-owned buffer.
	cpy := string([]byte(s))
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes is Intern without requiring the caller to allocate a string first.
func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

// Lookup returns the string for id, or ("", false) if id is out of range.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) < 0 || int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup panics if id is not valid; used where the caller already
// proved validity (e.g. IDs obtained from the parser itself).
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid StringID")
	}
	return s
}

// TryGetID is a membership test: it returns the ID for s without interning it.
func (in *Interner) TryGetID(s string) (StringID, bool) {
	id, ok := in.index[s]
	return id, ok
}

// Has reports whether id refers to an allocated string.
func (in *Interner) Has(id StringID) bool {
	return int(id) >= 0 && int(id) < len(in.byID)
}

// Len returns the number of strings in the pool, including NoStringID.
func (in *Interner) Len() int { return len(in.byID) }
