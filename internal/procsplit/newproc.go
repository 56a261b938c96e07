package procsplit

import (
	"fmt"

	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/procanalysis"
)

// newStateTable synthesizes one new process carrying
// body as its sole State's Actions, with its sensitivity list populated only
// from reads: the signals/ports this particular logic cone actually uses
// ("populate its sensitivity list only with the signals
// actually read by that action"). A read that was edge-sensitive in std's
// own header (the process's clock or reset) keeps its edge in the new
// process; every other read becomes an ordinary level-sensitivity entry.
// Re-classification (step 4) then reads this header back to decide the new
// process's Kind.
func newStateTable(tree *ir.Tree, std *ir.StateTableData, body []ir.NodeID, reads []ir.NodeID) ir.NodeID {
	rising := make(map[ir.NodeID]bool, std.SensitivityPos.Len())
	for i := 0; i < std.SensitivityPos.Len(); i++ {
		rising[declOfIdentifier(tree, std.SensitivityPos.At(i))] = true
	}
	falling := make(map[ir.NodeID]bool, std.SensitivityNeg.Len())
	for i := 0; i < std.SensitivityNeg.Len(); i++ {
		falling[declOfIdentifier(tree, std.SensitivityNeg.At(i))] = true
	}

	newStd := &ir.StateTableData{
		Name:           std.Name + "_" + nextSplitSuffix(),
		Flavor:         std.Flavor,
		DontInitialize: std.DontInitialize,
	}
	tableID := tree.Alloc(ir.Node{Kind: ir.ClassStateTable, Data: newStd})
	newStd.Sensitivity.Owner = tableID
	newStd.SensitivityPos.Owner = tableID
	newStd.SensitivityNeg.Owner = tableID
	newStd.Declarations.Owner = tableID

	f := ir.NewFactory(tree)
	for _, decl := range reads {
		name := ""
		if named, ok := ir.AsNamed(tree.Node(decl)); ok {
			name = named.GetName()
		}
		switch {
		case rising[decl]:
			tree.ListPushBack(&newStd.SensitivityPos, f.Identifier(name, decl))
		case falling[decl]:
			tree.ListPushBack(&newStd.SensitivityNeg, f.Identifier(name, decl))
		default:
			tree.ListPushBack(&newStd.Sensitivity, f.Identifier(name, decl))
		}
	}

	state := &ir.StateData{Name: "s0"}
	stateID := tree.Alloc(ir.Node{Kind: ir.ClassState, Data: state})
	state.Actions.Owner = stateID
	for _, a := range body {
		state.Actions.Items = append(state.Actions.Items, a)
		setParent(tree, a, stateID)
	}
	tree.ListPushBack(&newStd.States, stateID)
	setParent(tree, stateID, tableID)

	return tableID
}

var splitCounter int

// nextSplitSuffix hands out a distinct name suffix per synthesized process so
// the splitter never collides two new processes' names within one scope.
// Counting rather than hashing keeps output deterministic across runs of the
// same tree.
func nextSplitSuffix() string {
	splitCounter++
	return fmt.Sprintf("split%d", splitCounter)
}

// reclassifyOne re-runs the Process Analyzer's classification over a single
// already-built process. It does not touch the
// ProcessMap directly: the caller decides when a freshly classified process
// is ready to be recorded.
func reclassifyOne(ctx *hifctx.Context, tree *ir.Tree, id ir.NodeID, opts procanalysis.AnalyzeOptions) *procanalysis.ProcessInfos {
	n := tree.Node(id)
	if n == nil {
		return &procanalysis.ProcessInfos{}
	}
	std, ok := n.Data.(*ir.StateTableData)
	if !ok {
		return &procanalysis.ProcessInfos{}
	}
	return procanalysis.ClassifyForSplit(tree, std, opts)
}

// trimSynchronousSensitivity narrows a synchronous process's sensitivity list
// down to its clock (and reset, if asynchronous) once classification has
// identified them, dropping every other signal the process no longer needs
// to be woken by now that it only carries one write target's logic cone.
func trimSynchronousSensitivity(tree *ir.Tree, id ir.NodeID, info *procanalysis.ProcessInfos) {
	std, ok := tree.Node(id).Data.(*ir.StateTableData)
	if !ok {
		return
	}
	keep := func(list *ir.BList) {
		var kept []ir.NodeID
		for i := 0; i < list.Len(); i++ {
			item := list.At(i)
			decl := declOfIdentifier(tree, item)
			if decl == info.Clock || (info.ResetKind == procanalysis.ResetAsynchronous && decl == info.Reset) {
				kept = append(kept, item)
				continue
			}
			setParent(tree, item, ir.NoNode)
		}
		list.Items = kept
	}
	keep(&std.Sensitivity)
	keep(&std.SensitivityPos)
	keep(&std.SensitivityNeg)
}

func declOfIdentifier(tree *ir.Tree, id ir.NodeID) ir.NodeID {
	n := tree.Node(id)
	if n == nil {
		return ir.NoNode
	}
	if sym, ok := ir.AsSymbol(n); ok {
		return sym.ResolvesTo()
	}
	return ir.NoNode
}

// extractResetCompanion pulls the reset branch out of a synchronous process
// with an asynchronous reset into its own asynchronous companion process
// tagged SKIP_FROM_SYNCH_CONE: most HDL
// targets require the reset assignment to live in a process sensitive only
// to the reset edge, not folded into the clocked process's body. The
// synchronous process keeps its full body (the reset branch is an ordinary
// If at the top of it); the companion exists so downstream passes that
// expect one write per asynchronous process have something to act on.
func extractResetCompanion(tree *ir.Tree, id ir.NodeID, info *procanalysis.ProcessInfos) ir.NodeID {
	std, ok := tree.Node(id).Data.(*ir.StateTableData)
	if !ok || std.States.Len() == 0 {
		return ir.NoNode
	}
	state, ok := tree.Node(std.States.At(0)).Data.(*ir.StateData)
	if !ok {
		return ir.NoNode
	}

	resetActions := resetBranchActions(tree, actionIDs(state.Actions), info.Reset)
	if len(resetActions) == 0 {
		return ir.NoNode
	}

	compStd := &ir.StateTableData{
		Name:           std.Name + "_areset",
		Flavor:         std.Flavor,
		DontInitialize: std.DontInitialize,
	}
	compID := tree.Alloc(ir.Node{Kind: ir.ClassStateTable, Data: compStd})
	compStd.Declarations.Owner = compID
	compStd.Sensitivity.Owner = compID
	compStd.SensitivityPos.Owner = compID
	compStd.SensitivityNeg.Owner = compID

	resetClone := tree.CloneSubtree(info.Reset)
	if info.Phase == procanalysis.PhaseLow {
		tree.ListPushBack(&compStd.SensitivityNeg, resetClone)
	} else {
		tree.ListPushBack(&compStd.SensitivityPos, resetClone)
	}

	compState := &ir.StateData{Name: "s0"}
	compStateID := tree.Alloc(ir.Node{Kind: ir.ClassState, Data: compState})
	compState.Actions.Owner = compStateID
	for _, a := range resetActions {
		cloned := tree.CloneSubtree(a)
		compState.Actions.Items = append(compState.Actions.Items, cloned)
		setParent(tree, cloned, compStateID)
	}
	tree.ListPushBack(&compStd.States, compStateID)
	setParent(tree, compStateID, compID)

	if n := tree.Node(compID); n != nil {
		n.Props.Set(ir.PropSkipFromSynchCone)
	}
	return compID
}

// resetBranchActions returns the Assigns inside the outermost If whose
// condition tests reset, if the body's shape matches the conventional
// "if (reset) ... else ..." idiom the splitter expects from a synchronous
// process with an asynchronous reset.
func resetBranchActions(tree *ir.Tree, actions []ir.NodeID, reset ir.NodeID) []ir.NodeID {
	for _, id := range actions {
		n := tree.Node(id)
		if n == nil {
			continue
		}
		ifd, ok := n.Data.(*ir.IfData)
		if !ok || ifd.Alts.Len() == 0 {
			continue
		}
		alt, ok := tree.Node(ifd.Alts.At(0)).Data.(*ir.IfAltData)
		if !ok {
			continue
		}
		if conditionReferencesDecl(tree, alt.Condition, reset) {
			return actionsOf(alt.Body)
		}
	}
	return nil
}

func conditionReferencesDecl(tree *ir.Tree, cond ir.NodeID, decl ir.NodeID) bool {
	n := tree.Node(cond)
	if n == nil {
		return false
	}
	if sym, ok := ir.AsSymbol(n); ok && sym.ResolvesTo() == decl {
		return true
	}
	for _, f := range n.Data.Fields() {
		if conditionReferencesDecl(tree, f.Get(), decl) {
			return true
		}
	}
	for _, l := range n.Data.Lists() {
		for i := 0; i < l.List.Len(); i++ {
			if conditionReferencesDecl(tree, l.List.At(i), decl) {
				return true
			}
		}
	}
	return false
}
