package procsplit

import "hif/internal/ir"

// collectWriteTargets walks state's body collecting, in first-appearance
// order, the base declaration every Assign ultimately targets. Each
// distinct target becomes one new process in step 3.
func collectWriteTargets(tree *ir.Tree, state *ir.StateData) []ir.NodeID {
	var targets []ir.NodeID
	seen := make(map[ir.NodeID]bool)
	var walk func([]ir.NodeID)
	walk = func(actions []ir.NodeID) {
		for _, id := range actions {
			n := tree.Node(id)
			if n == nil {
				continue
			}
			switch d := n.Data.(type) {
			case *ir.AssignData:
				if decl := baseDeclOf(tree, d.Target); decl.IsValid() && !seen[decl] {
					seen[decl] = true
					targets = append(targets, decl)
				}
			case *ir.IfData:
				for i := 0; i < d.Alts.Len(); i++ {
					alt := tree.Node(d.Alts.At(i)).Data.(*ir.IfAltData)
					walk(actionsOf(alt.Body))
				}
				walk(actionsOf(d.ElseBody))
			case *ir.SwitchData:
				for i := 0; i < d.Alts.Len(); i++ {
					alt := tree.Node(d.Alts.At(i)).Data.(*ir.SwitchAltData)
					walk(actionsOf(alt.Body))
				}
				walk(actionsOf(d.Default))
			}
		}
	}
	walk(actionIDs(state.Actions))
	return targets
}

func actionsOf(list ir.BList) []ir.NodeID {
	return actionIDs(list)
}

// baseDeclOf resolves an assignment target's underlying declaration,
// unwrapping Slice/Member/FieldReference prefixes, mirroring
// internal/procanalysis's unexported helper of the same name (each package
// keeps its own copy rather than exporting kernel-adjacent plumbing across
// a package boundary neither other owns).
func baseDeclOf(tree *ir.Tree, target ir.NodeID) ir.NodeID {
	n := tree.Node(target)
	if n == nil {
		return ir.NoNode
	}
	switch d := n.Data.(type) {
	case *ir.SliceData:
		return baseDeclOf(tree, d.Prefix)
	case *ir.MemberData:
		return baseDeclOf(tree, d.Prefix)
	case *ir.FieldReferenceData:
		return baseDeclOf(tree, d.Prefix)
	}
	if sym, ok := ir.AsSymbol(n); ok {
		return sym.ResolvesTo()
	}
	return ir.NoNode
}

// pruneForTarget reconstructs the minimal logic cone that leads to target:
// every Assign that writes it, plus every branch condition needed to reach
// that Assign, clones of the originals ("the splitter
// clones condition nodes verbatim and merges paths per target"). Actions
// that are not on any path to target are dropped; an If/Switch whose
// branches are all empty after pruning is dropped entirely.
func pruneForTarget(tree *ir.Tree, actions []ir.NodeID, target ir.NodeID) []ir.NodeID {
	var out []ir.NodeID
	for _, id := range actions {
		n := tree.Node(id)
		if n == nil {
			continue
		}
		switch d := n.Data.(type) {
		case *ir.AssignData:
			if baseDeclOf(tree, d.Target) == target {
				out = append(out, tree.CloneSubtree(id))
			}
		case *ir.IfData:
			if cloned, ok := pruneIf(tree, d, target); ok {
				out = append(out, cloned)
			}
		case *ir.SwitchData:
			if cloned, ok := pruneSwitch(tree, d, target); ok {
				out = append(out, cloned)
			}
		}
	}
	return out
}

// setParent reparents child to owner by writing its Parent field directly;
// the counterpart of the private adopt() tree_ops.go uses internally, needed
// here because the pruned nodes this package builds are assembled before
// their container's NodeID exists.
func setParent(tree *ir.Tree, child, owner ir.NodeID) {
	if !child.IsValid() {
		return
	}
	if n := tree.Node(child); n != nil {
		n.Parent = owner
	}
}

func pruneIf(tree *ir.Tree, d *ir.IfData, target ir.NodeID) (ir.NodeID, bool) {
	type builtAlt struct {
		condClone ir.NodeID
		body      []ir.NodeID
	}
	var alts []builtAlt
	any := false
	for i := 0; i < d.Alts.Len(); i++ {
		alt := tree.Node(d.Alts.At(i)).Data.(*ir.IfAltData)
		body := pruneForTarget(tree, actionsOf(alt.Body), target)
		if len(body) == 0 {
			continue
		}
		any = true
		alts = append(alts, builtAlt{condClone: tree.CloneSubtree(alt.Condition), body: body})
	}
	elseBody := pruneForTarget(tree, actionsOf(d.ElseBody), target)
	if len(elseBody) > 0 {
		any = true
	}
	if !any {
		return ir.NoNode, false
	}

	newIf := &ir.IfData{}
	ifID := tree.Alloc(ir.Node{Kind: ir.ClassIf, Data: newIf})
	newIf.Alts.Owner = ifID
	newIf.ElseBody.Owner = ifID

	for _, a := range alts {
		newAlt := &ir.IfAltData{Condition: a.condClone}
		altID := tree.Alloc(ir.Node{Kind: ir.ClassIfAlt, Data: newAlt})
		setParent(tree, a.condClone, altID)
		newAlt.Body.Owner = altID
		for _, act := range a.body {
			newAlt.Body.Items = append(newAlt.Body.Items, act)
			setParent(tree, act, altID)
		}
		newIf.Alts.Items = append(newIf.Alts.Items, altID)
		setParent(tree, altID, ifID)
	}
	for _, act := range elseBody {
		newIf.ElseBody.Items = append(newIf.ElseBody.Items, act)
		setParent(tree, act, ifID)
	}
	return ifID, true
}

func pruneSwitch(tree *ir.Tree, d *ir.SwitchData, target ir.NodeID) (ir.NodeID, bool) {
	type builtAlt struct {
		conds []ir.NodeID
		body  []ir.NodeID
	}
	var alts []builtAlt
	any := false
	for i := 0; i < d.Alts.Len(); i++ {
		alt := tree.Node(d.Alts.At(i)).Data.(*ir.SwitchAltData)
		body := pruneForTarget(tree, actionsOf(alt.Body), target)
		if len(body) == 0 {
			continue
		}
		any = true
		var conds []ir.NodeID
		for j := 0; j < alt.Conditions.Len(); j++ {
			conds = append(conds, tree.CloneSubtree(alt.Conditions.At(j)))
		}
		alts = append(alts, builtAlt{conds: conds, body: body})
	}
	def := pruneForTarget(tree, actionsOf(d.Default), target)
	if len(def) > 0 {
		any = true
	}
	if !any {
		return ir.NoNode, false
	}

	newSw := &ir.SwitchData{Case: d.Case}
	swID := tree.Alloc(ir.Node{Kind: ir.ClassSwitch, Data: newSw})
	newSw.Condition = tree.CloneSubtree(d.Condition)
	setParent(tree, newSw.Condition, swID)
	newSw.Alts.Owner = swID
	newSw.Default.Owner = swID

	for _, a := range alts {
		newAlt := &ir.SwitchAltData{}
		altID := tree.Alloc(ir.Node{Kind: ir.ClassSwitchAlt, Data: newAlt})
		newAlt.Conditions.Owner = altID
		newAlt.Body.Owner = altID
		for _, c := range a.conds {
			newAlt.Conditions.Items = append(newAlt.Conditions.Items, c)
			setParent(tree, c, altID)
		}
		for _, act := range a.body {
			newAlt.Body.Items = append(newAlt.Body.Items, act)
			setParent(tree, act, altID)
		}
		newSw.Alts.Items = append(newSw.Alts.Items, altID)
		setParent(tree, altID, swID)
	}
	for _, act := range def {
		newSw.Default.Items = append(newSw.Default.Items, act)
		setParent(tree, act, swID)
	}
	return swID, true
}

// collectReads walks a pruned action list and returns every Signal/Port
// declaration referenced within it (conditions and assignment sources
// alike), the sensitivity list of the process synthesized around this cone
// ("populate its sensitivity list only with the
// signals actually read by that action").
func collectReads(tree *ir.Tree, actions []ir.NodeID) []ir.NodeID {
	var reads []ir.NodeID
	seen := make(map[ir.NodeID]bool)
	v := &readWalker{tree: tree, seen: seen, out: &reads}
	for _, id := range actions {
		ir.WalkAncestor(tree, id, v)
	}
	return reads
}

type readWalker struct {
	ir.NoOpAncestorVisitor
	tree *ir.Tree
	seen map[ir.NodeID]bool
	out  *[]ir.NodeID
}

func (w *readWalker) VisitSymbol(tree *ir.Tree, id ir.NodeID, f ir.Symbol) {
	decl := f.ResolvesTo()
	if !decl.IsValid() || w.seen[decl] {
		return
	}
	n := tree.Node(decl)
	if n == nil {
		return
	}
	if n.Kind == ir.ClassSignal || n.Kind == ir.ClassPort {
		w.seen[decl] = true
		*w.out = append(*w.out, decl)
	}
}
