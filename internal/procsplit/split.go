// Package procsplit implements the Process Splitter: it
// rewrites every StateTable the Process Analyzer (internal/procanalysis)
// classified MIXED or DERIVED_MIXED into a group of single-kind processes,
// preserving read/write dependencies via a topological sort over the
// processes' lifted variables.
//
// The pipeline runs in nine steps: logic-cone extraction, variable
// lifting, one-process-per-target synthesis, re-classification,
// synchronous/asynchronous merge, and variable demotion/promotion. Logic
// cones are rebuilt from clones of the original actions and conditions; the
// other steps edit the tree in place (renaming and moving lifted variables,
// trimming sensitivity lists, splicing the new processes into the scope).
package procsplit

import (
	"fmt"
	"sort"

	"hif/internal/diag"
	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/procanalysis"
	"hif/internal/semantics"
	"hif/internal/source"
)

// Split runs the Process Splitter over every MIXED/DERIVED_MIXED process
// recorded in pm, reachable from root, replacing each with its
// single-kind successors. It returns true if any process was split.
//
// Grounded on the `split_mixed_processes(&mut ProcessMap, sem,
// &AnalyzeOptions) -> bool` entry point.
func Split(ctx *hifctx.Context, root ir.NodeRef, pm *procanalysis.ProcessMap, sem semantics.Language, opts procanalysis.AnalyzeOptions) (bool, error) {
	if !root.IsValid() {
		return false, fmt.Errorf("procsplit: invalid root")
	}
	defer ctx.FlushTypeCache()
	defer ctx.FlushInstanceCache()
	tree := root.Tree

	var mixed []ir.NodeID
	for _, id := range pm.Processes() {
		info, ok := pm.Get(id)
		if !ok {
			continue
		}
		if info.Kind == procanalysis.KindMixed || info.Kind == procanalysis.KindDerivedMixed {
			mixed = append(mixed, id)
		}
	}
	if len(mixed) == 0 {
		return false, nil
	}

	for _, processID := range mixed {
		if err := splitOne(ctx, tree, processID, pm, sem, opts); err != nil {
			return false, err
		}
	}
	return true, nil
}

// splitOne runs the full nine-step pipeline over a single
// mixed process.
func splitOne(ctx *hifctx.Context, tree *ir.Tree, processID ir.NodeID, pm *procanalysis.ProcessMap, sem semantics.Language, opts procanalysis.AnalyzeOptions) error {
	n := tree.Node(processID)
	if n == nil {
		return nil
	}
	std, ok := n.Data.(*ir.StateTableData)
	if !ok {
		return nil
	}
	if std.States.Len() != 1 {
		// Nothing a single logic-cone extraction can do with zero or
		// several State bodies; leave the process untouched.
		warnUnsupported(ctx, diag.ProcMixedStyleConflict, n.Code.Span, "process %q has %d states, the splitter expects exactly one", std.Name, std.States.Len())
		return nil
	}
	state, ok := tree.Node(std.States.At(0)).Data.(*ir.StateData)
	if !ok {
		return nil
	}

	parent := tree.Parent(processID)

	// Step 1: refine logic cones, one pruned action tree per write target.
	targets := collectWriteTargets(tree, state)
	if len(targets) == 0 {
		return nil
	}

	// Step 2: lift local variables referenced by any cone to the enclosing
	// scope with fresh names, so the new processes (siblings of each other,
	// not nested) can all reach them.
	renamed := liftLocalVariables(tree, parent, std)

	// Step 3: create one new process per target.
	type newProc struct {
		id     ir.NodeID
		target ir.NodeID
	}
	var created []newProc
	for _, target := range targets {
		body := pruneForTarget(tree, actionIDs(state.Actions), target)
		if len(body) == 0 {
			continue
		}
		reads := collectReads(tree, body)
		newID := newStateTable(tree, std, body, reads)
		created = append(created, newProc{id: newID, target: target})
	}
	if len(created) == 0 {
		return nil
	}

	// Step 4: re-classify each new process, trimming synchronous sensitivity
	// to clock(+reset), and duplicating an asynchronous-reset branch into a
	// companion process tagged SKIP_FROM_SYNCH_CONE.
	infos := make(map[ir.NodeID]*procanalysis.ProcessInfos, len(created))
	var companions []ir.NodeID
	for _, cp := range created {
		info := reclassifyOne(ctx, tree, cp.id, opts)
		infos[cp.id] = info
		if info.Kind == procanalysis.KindSynchronous {
			trimSynchronousSensitivity(tree, cp.id, info)
			if info.ResetKind == procanalysis.ResetAsynchronous {
				if comp := extractResetCompanion(tree, cp.id, info); comp.IsValid() {
					companions = append(companions, comp)
					infos[comp] = reclassifyOne(ctx, tree, comp, opts)
				}
			}
		}
	}
	allProcs := make([]ir.NodeID, 0, len(created)+len(companions))
	for _, cp := range created {
		allProcs = append(allProcs, cp.id)
	}
	allProcs = append(allProcs, companions...)

	// Step 5: topologically sort the new processes over the write -> read /
	// write -> write dependency graph on lifted (and promoted) variables.
	order, acyclic := sortByDependency(allProcs, infos)
	if !acyclic {
		warnUnsupported(ctx, diag.ProcCyclicDependency, n.Code.Span, "process %q splits into a cyclic variable dependency graph; keeping best-effort discovery order", std.Name)
	}

	// Step 6/7: merge synchronous processes sharing clock+reset+edge,
	// splicing writers ahead of readers per the step-5 order so the merged
	// body observes the dependency it was computed from.
	syncGroups := groupSynchronous(order, infos)
	var syncMerged []ir.NodeID
	for _, group := range syncGroups {
		syncMerged = append(syncMerged, mergeGroup(tree, std, group, infos, false))
	}

	// Step 8: merge the remaining (asynchronous) processes from the end of
	// the list into one asynchronous tail, dropping cones with no
	// observable output.
	var asyncOrder []ir.NodeID
	grouped := make(map[ir.NodeID]bool)
	for _, g := range syncGroups {
		for _, id := range g {
			grouped[id] = true
		}
	}
	for _, id := range order {
		if !grouped[id] {
			asyncOrder = append(asyncOrder, id)
		}
	}
	asyncOrder = dropDeadCones(asyncOrder, infos)
	var asyncMerged ir.NodeID
	if len(asyncOrder) > 0 {
		asyncMerged = mergeGroup(tree, std, asyncOrder, infos, true)
	}

	// Step 9: demote/promote lifted variables depending on whether they end
	// up read-and-written in one kept process or split across several.
	final := syncMerged
	if asyncMerged.IsValid() {
		final = append(final, asyncMerged)
	}
	promoteOrDemote(tree, renamed, final, infos)

	// Splice the new processes in as siblings of the original and delete it.
	spliceIntoScope(tree, parent, processID, final)
	trash := tree.DeleteSubtree(processID)
	ctx.Discard(trash...)
	pm.Delete(processID)
	for _, id := range final {
		if info, ok := infos[id]; ok {
			pm.Set(id, info)
		}
	}
	return nil
}

// warnUnsupported appends a non-fatal diagnostic to ctx's bag: the process
// is kept as is and the caller decides, rather than aborting the whole run.
func warnUnsupported(ctx *hifctx.Context, code diag.Code, span source.Span, format string, args ...any) {
	d := diag.New(diag.SevWarning, code, span, fmt.Sprintf(format, args...))
	ctx.Bag.Add(&d)
}

func actionIDs(list ir.BList) []ir.NodeID {
	out := make([]ir.NodeID, list.Len())
	for i := range out {
		out[i] = list.At(i)
	}
	return out
}

func sortNodeIDs(ids []ir.NodeID) []ir.NodeID {
	out := append([]ir.NodeID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
