// Package castmap records, for every Cast node the Standardization Engine
// inserts, the pre-map source type it replaced, so downstream passes know
// what was cast from: a plain Go map guarded by the owning pass, no
// package-global state.
package castmap

import "hif/internal/ir"

// CastMap is keyed by the NodeID of the inserted Cast, not the value it
// wraps: a value can be cast more than once across repairs (e.g. a bound
// first rebased, then narrowed for a condition), and each Cast needs its own
// record of what it replaced.
type CastMap struct {
	entries map[ir.NodeID]Entry
}

// Entry describes one inserted Cast: the type the operand originally had
// before SemD.map_type ran, and the semantics-qualified name of the source
// semantics that type came from (for diagnostics).
type Entry struct {
	OriginalType ir.NodeID
	SourceSemantics string
}

// New returns an empty CastMap.
func New() *CastMap {
	return &CastMap{entries: make(map[ir.NodeID]Entry)}
}

// Record stores the original type that cast replaced.
func (m *CastMap) Record(cast ir.NodeID, original ir.NodeID, sourceSemantics string) {
	m.entries[cast] = Entry{OriginalType: original, SourceSemantics: sourceSemantics}
}

// Lookup returns the recorded entry for cast, if any.
func (m *CastMap) Lookup(cast ir.NodeID) (Entry, bool) {
	e, ok := m.entries[cast]
	return e, ok
}

// Forget drops cast's entry, e.g. when the Cast Manager replaces the Cast
// node with an idiomatic expression and the map entry no longer refers to
// anything.
func (m *CastMap) Forget(cast ir.NodeID) {
	delete(m.entries, cast)
}

// Len reports how many casts are currently tracked.
func (m *CastMap) Len() int { return len(m.entries) }
