// Package refmap builds and maintains the Reference Map: the reverse index
// from a declaration node to every Symbol-feature node (Identifier,
// FunctionCall, ProcedureCall, TypeReferenceDecl, TypeViewReference, ...)
// that resolves to it, so that every use of a declaration can be found
// without re-walking the whole tree. It is a standalone index: none of the
// passes in this module (Symbol Mapper, Process Splitter, ...) imports it.
//
// The map is built in one AncestorVisitor walk over the Symbol feature,
// which is exactly the set of payload kinds this map indexes.
package refmap

import "hif/internal/ir"

// Map is declaration NodeID -> the set of Symbol nodes resolving to it.
type Map struct {
	uses map[ir.NodeID][]ir.NodeID
	decl map[ir.NodeID]ir.NodeID // reverse: symbol node -> its declaration, for O(1) unbind
}

// Build walks tree from root and indexes every Symbol-feature node.
func Build(tree *ir.Tree, root ir.NodeID) *Map {
	m := &Map{uses: make(map[ir.NodeID][]ir.NodeID), decl: make(map[ir.NodeID]ir.NodeID)}
	ir.WalkAncestor(tree, root, &collector{tree: tree, m: m})
	return m
}

type collector struct {
	ir.NoOpAncestorVisitor
	tree *ir.Tree
	m    *Map
}

func (c *collector) VisitSymbol(_ *ir.Tree, id ir.NodeID, f ir.Symbol) {
	decl := f.ResolvesTo()
	if !decl.IsValid() {
		return
	}
	c.m.uses[decl] = append(c.m.uses[decl], id)
	c.m.decl[id] = decl
}

// UsesOf returns every Symbol node currently resolving to decl.
func (m *Map) UsesOf(decl ir.NodeID) []ir.NodeID {
	return m.uses[decl]
}

// DeclarationOf returns the declaration a previously-indexed Symbol node
// resolves to, if it was seen during Build/Rebind.
func (m *Map) DeclarationOf(symbol ir.NodeID) (ir.NodeID, bool) {
	d, ok := m.decl[symbol]
	return d, ok
}

// Rebind updates the map after a pass retargets symbol to point at a new
// declaration (e.g. the Symbol Mapper's MAP_KEEP rename, or the Process
// Splitter's variable promotion). It is the caller's job to also call
// Symbol.SetResolvesTo on the node itself; Rebind only keeps the index
// consistent with that change.
func (m *Map) Rebind(symbol ir.NodeID, newDecl ir.NodeID) {
	if old, ok := m.decl[symbol]; ok {
		m.uses[old] = removeID(m.uses[old], symbol)
	}
	m.decl[symbol] = newDecl
	m.uses[newDecl] = append(m.uses[newDecl], symbol)
}

// Forget removes symbol from the index entirely, e.g. when the node housing
// it is deleted.
func (m *Map) Forget(symbol ir.NodeID) {
	if old, ok := m.decl[symbol]; ok {
		m.uses[old] = removeID(m.uses[old], symbol)
		delete(m.decl, symbol)
	}
}

func removeID(list []ir.NodeID, id ir.NodeID) []ir.NodeID {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
