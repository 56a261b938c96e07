package procsplit

import "hif/internal/ir"

// liftLocalVariables moves every local Variable declared in std's
// Declarations list up into parent's own Declarations list. When parent has a
// name, each is renamed <parent>_<process>_<name> to avoid clashing with
// whatever parent already declares; under an unnamed parent names are kept. Because every reference to a
// declaration is a weak NodeID link rather than a name
// lookup, the move needs no reference rewriting: Identifiers elsewhere in
// the tree already point at the same NodeID and simply follow it to its new
// home. Returns the lifted NodeIDs so later steps can promote/demote them.
func liftLocalVariables(tree *ir.Tree, parent ir.NodeID, std *ir.StateTableData) []ir.NodeID {
	parentDecls, ok := declarationsListOf(tree, parent)
	if !ok {
		// No enclosing scope with a Declarations list (e.g. splitting at the
		// tree root): leave the variables where they are: newStateTable
		// still reaches them by NodeID since they are never physically
		// copied, only referenced.
		return nil
	}

	var lifted []ir.NodeID
	n := tree.Node(parent)
	prefix := ""
	if named, ok := ir.AsNamed(n); ok {
		prefix = named.GetName()
	}

	count := std.Declarations.Len()
	ids := make([]ir.NodeID, count)
	for i := 0; i < count; i++ {
		ids[i] = std.Declarations.At(i)
	}
	for _, id := range ids {
		vn := tree.Node(id)
		if vn == nil || vn.Kind != ir.ClassVariable {
			continue
		}
		if named, ok := ir.AsNamed(vn); ok && prefix != "" {
			named.SetName(prefix + "_" + std.Name + "_" + named.GetName())
		}
		lifted = append(lifted, id)
	}
	tree.ListClear(&std.Declarations)
	for _, id := range lifted {
		tree.ListPushBack(parentDecls, id)
	}
	return lifted
}

// declarationsListOf returns the "Declarations" BList of n's payload, if it
// has one (every scope kind embedding scopeBase does).
func declarationsListOf(tree *ir.Tree, n ir.NodeID) (*ir.BList, bool) {
	node := tree.Node(n)
	if node == nil {
		return nil, false
	}
	for _, l := range node.Data.Lists() {
		if l.Name == "Declarations" {
			return l.List, true
		}
	}
	return nil, false
}

// stateTablesListOf returns the "StateTables" BList of n's payload, the
// sibling list new processes are spliced into (the replacements
// become ordinary siblings of where the mixed process used to live).
func stateTablesListOf(tree *ir.Tree, n ir.NodeID) (*ir.BList, bool) {
	node := tree.Node(n)
	if node == nil {
		return nil, false
	}
	for _, l := range node.Data.Lists() {
		if l.Name == "StateTables" {
			return l.List, true
		}
	}
	return nil, false
}
