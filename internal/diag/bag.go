package diag

import "sort"

// DefaultMaxDiagnostics bounds how many diagnostics a single session emits
// before emission is capped, matching the CLI's --max-diagnostics default.
const DefaultMaxDiagnostics = 200

// Bag collects diagnostics emitted across every compiler stage for a single
// session, in the order they were reported.
type Bag struct {
	items   []*Diagnostic
	max     int
	dropped int
}

// NewBag creates a Bag with no capacity limit.
func NewBag() *Bag {
	return &Bag{max: 0}
}

// NewBagWithLimit creates a Bag that silently drops diagnostics past max,
// tracking how many were dropped so the CLI can report a truncation notice.
func NewBagWithLimit(max int) *Bag {
	return &Bag{max: max}
}

// Add appends d to the bag, unless the configured limit has been reached.
func (b *Bag) Add(d *Diagnostic) {
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return
	}
	b.items = append(b.items, d)
}

// Dropped reports how many diagnostics were discarded once the limit was
// reached.
func (b *Bag) Dropped() int { return b.dropped }

// Items returns every collected diagnostic, in report order.
func (b *Bag) Items() []*Diagnostic { return b.items }

// Len reports how many diagnostics are currently held.
func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any diagnostic carries SevError.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// Counts tallies diagnostics by severity.
func (b *Bag) Counts() (errors, warnings, infos int) {
	for _, d := range b.items {
		switch d.Severity {
		case SevError:
			errors++
		case SevWarning:
			warnings++
		case SevInfo:
			infos++
		}
	}
	return
}

// SortByPosition stable-sorts diagnostics by file then start offset,
// preserving report order for ties.
func (b *Bag) SortByPosition() {
	sort.SliceStable(b.items, func(i, j int) bool {
		a, c := b.items[i].Primary, b.items[j].Primary
		if a.File != c.File {
			return a.File < c.File
		}
		return a.Start < c.Start
	})
}

// SortBySeverityThenPosition stable-sorts diagnostics with warnings ordered
// ahead of errors within the batch, and position-ordered within each
// severity, matching how the CLI renders a single batch.
func (b *Bag) SortBySeverityThenPosition() {
	rank := func(s Severity) int {
		switch s {
		case SevWarning:
			return 0
		case SevInfo:
			return 1
		case SevError:
			return 2
		default:
			return 3
		}
	}
	sort.SliceStable(b.items, func(i, j int) bool {
		ri, rj := rank(b.items[i].Severity), rank(b.items[j].Severity)
		if ri != rj {
			return ri < rj
		}
		a, c := b.items[i].Primary, b.items[j].Primary
		if a.File != c.File {
			return a.File < c.File
		}
		return a.Start < c.Start
	})
}
