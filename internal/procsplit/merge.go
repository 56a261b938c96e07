package procsplit

import (
	"hif/internal/ir"
	"hif/internal/procanalysis"
)

// spliceIntoScope replaces oldProcessID in parent's StateTables list with
// newProcs, in order, at the position the original process occupied. If the
// original is not in that list, newProcs are appended at its end; if parent
// carries no StateTables list at all, nothing is spliced in.
func spliceIntoScope(tree *ir.Tree, parent, oldProcessID ir.NodeID, newProcs []ir.NodeID) {
	list, ok := stateTablesListOf(tree, parent)
	if !ok {
		return
	}
	idx := list.IndexOf(oldProcessID)
	if idx < 0 {
		for _, id := range newProcs {
			tree.ListPushBack(list, id)
		}
		return
	}
	tree.ListRemove(list, idx)
	for i, id := range newProcs {
		tree.ListInsert(list, idx+i, id)
	}
}

// sortByDependency builds the write->read/write->write graph over procs'
// lifted variables and signals and returns a
// topological order, using each process's ProcessInfos read/write sets as
// computed by the Process Analyzer.
func sortByDependency(procs []ir.NodeID, infos map[ir.NodeID]*procanalysis.ProcessInfos) ([]ir.NodeID, bool) {
	g := newDepGraph(procs)

	writers := make(map[ir.NodeID][]ir.NodeID)
	readers := make(map[ir.NodeID][]ir.NodeID)
	for _, p := range procs {
		info := infos[p]
		if info == nil {
			continue
		}
		for _, d := range info.WrittenVariables.Items() {
			writers[d] = append(writers[d], p)
		}
		for _, d := range info.WrittenSignals.Items() {
			writers[d] = append(writers[d], p)
		}
		for _, d := range info.ReadVariables.Items() {
			readers[d] = append(readers[d], p)
		}
		for _, d := range info.ReadSignals.Items() {
			readers[d] = append(readers[d], p)
		}
	}

	for decl, ws := range writers {
		for _, w := range ws {
			for _, r := range readers[decl] {
				g.addEdge(w, r)
			}
			for _, w2 := range ws {
				g.addEdge(w, w2)
			}
		}
	}
	return g.topoSort()
}

// groupSynchronous buckets the synchronous processes of order by identical
// clock, reset declaration, reset kind and edge (// "merge synchronous processes sharing clock+reset+edge"), preserving the
// step-5 order within and across buckets. Asynchronous and derived processes
// are left for the caller's asynchronous-tail handling.
func groupSynchronous(order []ir.NodeID, infos map[ir.NodeID]*procanalysis.ProcessInfos) [][]ir.NodeID {
	type key struct {
		clock, reset ir.NodeID
		resetKind    procanalysis.ResetKind
		edge         procanalysis.WorkingEdge
	}
	groupIndex := make(map[key]int)
	var groups [][]ir.NodeID

	for _, id := range order {
		info := infos[id]
		if info == nil || info.Kind != procanalysis.KindSynchronous {
			continue
		}
		k := key{clock: info.Clock, reset: info.Reset, resetKind: info.ResetKind, edge: info.Edge}
		if idx, ok := groupIndex[k]; ok {
			groups[idx] = append(groups[idx], id)
			continue
		}
		groupIndex[k] = len(groups)
		groups = append(groups, []ir.NodeID{id})
	}
	return groups
}

// dropDeadCones removes from order any process whose classification shows no
// write at all ("dropping dead cones with no observable
// output"): the pruning in step 1 can leave a cone that only reads signals
// on a path that never reaches an Assign once other targets claimed it.
func dropDeadCones(order []ir.NodeID, infos map[ir.NodeID]*procanalysis.ProcessInfos) []ir.NodeID {
	var out []ir.NodeID
	for _, id := range order {
		info := infos[id]
		if info == nil {
			continue
		}
		if info.WrittenSignals.Len() == 0 && info.WrittenVariables.Len() == 0 {
			continue
		}
		out = append(out, id)
	}
	return out
}

// mergeGroup folds group's processes into a single new StateTable, splicing
// their State bodies in step-5 order and unioning their sensitivity lists by
// underlying declaration. A singleton group is
// returned unchanged.
func mergeGroup(tree *ir.Tree, std *ir.StateTableData, group []ir.NodeID, infos map[ir.NodeID]*procanalysis.ProcessInfos, isAsync bool) ir.NodeID {
	if len(group) == 0 {
		return ir.NoNode
	}
	if len(group) == 1 {
		return group[0]
	}

	suffix := "sync"
	if isAsync {
		suffix = "async"
	}
	first := tree.Node(group[0]).Data.(*ir.StateTableData)
	merged := &ir.StateTableData{
		Name:           std.Name + "_" + suffix + "_" + nextSplitSuffix(),
		Flavor:         first.Flavor,
		DontInitialize: first.DontInitialize,
	}
	mergedID := tree.Alloc(ir.Node{Kind: ir.ClassStateTable, Data: merged})
	merged.Sensitivity.Owner = mergedID
	merged.SensitivityPos.Owner = mergedID
	merged.SensitivityNeg.Owner = mergedID
	merged.Declarations.Owner = mergedID

	mergedState := &ir.StateData{Name: "s0"}
	mergedStateID := tree.Alloc(ir.Node{Kind: ir.ClassState, Data: mergedState})
	mergedState.Actions.Owner = mergedStateID
	tree.ListPushBack(&merged.States, mergedStateID)
	setParent(tree, mergedStateID, mergedID)

	seen := make(map[ir.NodeID]bool)
	mergeSensitivity := func(src *ir.BList, dst *ir.BList) {
		for i := 0; i < src.Len(); i++ {
			item := src.At(i)
			decl := declOfIdentifier(tree, item)
			if decl.IsValid() && seen[decl] {
				continue
			}
			if decl.IsValid() {
				seen[decl] = true
			}
			tree.ListPushBack(dst, item)
		}
	}

	mergedInfo := &procanalysis.ProcessInfos{}
	if info := infos[group[0]]; info != nil {
		mergedInfo.Kind, mergedInfo.ResetKind = info.Kind, info.ResetKind
		mergedInfo.Edge, mergedInfo.Phase = info.Edge, info.Phase
		mergedInfo.Clock, mergedInfo.Reset = info.Clock, info.Reset
	}
	union := func(dst *procanalysis.NodeSet, src *procanalysis.NodeSet) {
		for _, id := range src.Items() {
			dst.Add(id)
		}
	}

	for _, procID := range group {
		p := tree.Node(procID).Data.(*ir.StateTableData)
		mergeSensitivity(&p.Sensitivity, &merged.Sensitivity)
		mergeSensitivity(&p.SensitivityPos, &merged.SensitivityPos)
		mergeSensitivity(&p.SensitivityNeg, &merged.SensitivityNeg)
		if info := infos[procID]; info != nil {
			union(&mergedInfo.ReadSignals, &info.ReadSignals)
			union(&mergedInfo.WrittenSignals, &info.WrittenSignals)
			union(&mergedInfo.ReadVariables, &info.ReadVariables)
			union(&mergedInfo.WrittenVariables, &info.WrittenVariables)
		}
		if p.States.Len() == 0 {
			continue
		}
		state, ok := tree.Node(p.States.At(0)).Data.(*ir.StateData)
		if !ok {
			continue
		}
		for _, a := range actionIDs(state.Actions) {
			tree.ListPushBack(&mergedState.Actions, a)
		}
	}
	infos[mergedID] = mergedInfo

	return mergedID
}

// promoteOrDemote walks every lifted variable and promotes it to a Signal
// when it is written or read from more than one of the
// final processes, the only case where simple-variable semantics (value
// visible immediately within the same process, lost at the next trigger of
// another) would silently break the dependency the splitter just computed.
// A variable confined to a single final process is left as-is: an ordinary
// local variable of the enclosing scope.
func promoteOrDemote(tree *ir.Tree, lifted []ir.NodeID, finalProcs []ir.NodeID, infos map[ir.NodeID]*procanalysis.ProcessInfos) {
	if len(lifted) == 0 {
		return
	}
	users := make(map[ir.NodeID]map[ir.NodeID]bool, len(lifted))
	for _, v := range lifted {
		users[v] = make(map[ir.NodeID]bool)
	}
	for _, p := range finalProcs {
		info := infos[p]
		if info == nil {
			continue
		}
		mark := func(set *procanalysis.NodeSet) {
			for _, d := range set.Items() {
				if u, ok := users[d]; ok {
					u[p] = true
				}
			}
		}
		mark(&info.WrittenVariables)
		mark(&info.ReadVariables)
	}
	for _, v := range lifted {
		if len(users[v]) <= 1 {
			continue
		}
		if n := tree.Node(v); n != nil {
			ir.PromoteVariableToSignal(n)
		}
	}
}
