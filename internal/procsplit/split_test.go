package procsplit

import (
	"strings"
	"testing"

	"hif/internal/diag"
	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/procanalysis"
	"hif/internal/semantics"
	"hif/internal/source"
)

// buildMixedProcess assembles one ContentsData scope owning a single
// StateTable process that writes three distinct targets from one State body:
// a plain combinational assign (outA <= inSig), a variable computed the same
// way (tmp := inSig2) and a clocked assign guarded by an If on clk (outB <=
// tmp). The shape is MIXED: some assigns belong to an asynchronous
// cone, one belongs to a synchronous cone, and they currently share one
// process header.
func buildMixedProcess(t *testing.T) (*ir.Tree, ir.NodeID, ir.NodeID, ir.NodeID) {
	t.Helper()
	tree := ir.NewTree(64)
	f := ir.NewFactory(tree)

	contents := &ir.ContentsData{}
	contentsID := tree.Alloc(ir.Node{Kind: ir.ClassContents, Data: contents})
	tree.SetRoot(contentsID)
	contents.Declarations.Owner = contentsID
	contents.StateTables.Owner = contentsID

	declare := func(kind ir.ClassID, data ir.Payload, name string) ir.NodeID {
		id := tree.Alloc(ir.Node{Kind: kind, Data: data})
		if named, ok := ir.AsNamed(tree.Node(id)); ok {
			named.SetName(name)
		}
		tree.ListPushBack(&contents.Declarations, id)
		return id
	}

	clk := declare(ir.ClassPort, &ir.PortData{Direction: ir.PortDirIn}, "clk")
	inSig := declare(ir.ClassSignal, &ir.SignalData{}, "inSig")
	inSig2 := declare(ir.ClassSignal, &ir.SignalData{}, "inSig2")
	outA := declare(ir.ClassSignal, &ir.SignalData{}, "outA")
	outB := declare(ir.ClassSignal, &ir.SignalData{}, "outB")

	std := &ir.StateTableData{Name: "proc0", Flavor: ir.FlavorHDL}
	tableID := tree.Alloc(ir.Node{Kind: ir.ClassStateTable, Data: std})

	std.Sensitivity.Owner = tableID
	std.SensitivityPos.Owner = tableID
	std.SensitivityNeg.Owner = tableID
	std.Declarations.Owner = tableID

	pushSens := func(list *ir.BList, decl ir.NodeID, name string) {
		tree.ListPushBack(list, f.Identifier(name, decl))
	}
	pushSens(&std.Sensitivity, inSig, "inSig")
	pushSens(&std.Sensitivity, inSig2, "inSig2")
	pushSens(&std.SensitivityPos, clk, "clk")

	tmp := tree.Alloc(ir.Node{Kind: ir.ClassVariable, Data: &ir.VariableData{}})
	if named, ok := ir.AsNamed(tree.Node(tmp)); ok {
		named.SetName("tmp")
	}
	tree.ListPushBack(&std.Declarations, tmp)

	state := &ir.StateData{Name: "s0"}
	stateID := tree.Alloc(ir.Node{Kind: ir.ClassState, Data: state})
	state.Actions.Owner = stateID

	act0 := f.Assign(f.Identifier("tmp", tmp), f.Identifier("inSig2", inSig2), false)
	act1 := f.Assign(f.Identifier("outA", outA), f.Identifier("inSig", inSig), false)

	ifData := &ir.IfData{}
	ifID := tree.Alloc(ir.Node{Kind: ir.ClassIf, Data: ifData})
	altData := &ir.IfAltData{Condition: f.Identifier("clk", clk)}
	altID := tree.Alloc(ir.Node{Kind: ir.ClassIfAlt, Data: altData})
	altData.Body.Owner = altID
	act2 := f.Assign(f.Identifier("outB", outB), f.Identifier("tmp", tmp), false)
	tree.ListPushBack(&altData.Body, act2)
	setParent(tree, altData.Condition, altID)
	ifData.Alts.Owner = ifID
	ifData.ElseBody.Owner = ifID
	tree.ListPushBack(&ifData.Alts, altID)
	setParent(tree, altID, ifID)

	tree.ListPushBack(&state.Actions, act0)
	tree.ListPushBack(&state.Actions, act1)
	tree.ListPushBack(&state.Actions, ifID)

	std.States.Owner = tableID
	tree.ListPushBack(&std.States, stateID)

	tree.ListPushBack(&contents.StateTables, tableID)

	return tree, tableID, clk, outB
}

func newTestContext() *hifctx.Context {
	return hifctx.New(source.NewFileSet(), diag.NewBag(100))
}

func TestSplitRewritesMixedProcess(t *testing.T) {
	tree, tableID, clk, _ := buildMixedProcess(t)
	root := ir.NodeRef{Tree: tree, Node: tree.Root()}

	pm := procanalysis.NewProcessMap()
	pm.Set(tableID, &procanalysis.ProcessInfos{Kind: procanalysis.KindMixed})

	opts := procanalysis.AnalyzeOptions{Clocks: []ir.NodeID{clk}}
	var sem semantics.Language = semantics.NewRTL()
	ctx := newTestContext()

	changed, err := Split(ctx, root, pm, sem, opts)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if !changed {
		t.Fatalf("Split reported no change for a MIXED process")
	}

	for _, id := range pm.Processes() {
		info, ok := pm.Get(id)
		if !ok {
			continue
		}
		if info.Kind == procanalysis.KindMixed || info.Kind == procanalysis.KindDerivedMixed {
			t.Fatalf("process %d is still classified %s after splitting", id, info.Kind)
		}
	}

	contents := tree.Node(root.Node).Data.(*ir.ContentsData)
	if contents.StateTables.IndexOf(tableID) >= 0 {
		t.Fatalf("original mixed process %d is still wired into the scope", tableID)
	}
	if contents.StateTables.Len() == 0 {
		t.Fatalf("splitting produced no replacement processes")
	}
}

func TestSplitIsIdempotent(t *testing.T) {
	tree, tableID, clk, _ := buildMixedProcess(t)
	root := ir.NodeRef{Tree: tree, Node: tree.Root()}

	pm := procanalysis.NewProcessMap()
	pm.Set(tableID, &procanalysis.ProcessInfos{Kind: procanalysis.KindMixed})

	opts := procanalysis.AnalyzeOptions{Clocks: []ir.NodeID{clk}}
	var sem semantics.Language = semantics.NewRTL()
	ctx := newTestContext()

	if _, err := Split(ctx, root, pm, sem, opts); err != nil {
		t.Fatalf("first Split returned error: %v", err)
	}

	changedAgain, err := Split(ctx, root, pm, sem, opts)
	if err != nil {
		t.Fatalf("second Split returned error: %v", err)
	}
	if changedAgain {
		t.Fatalf("Split is not idempotent: second run still reports a change")
	}
}

func TestSplitLiftsLocalVariable(t *testing.T) {
	tree, tableID, clk, _ := buildMixedProcess(t)
	root := ir.NodeRef{Tree: tree, Node: tree.Root()}

	pm := procanalysis.NewProcessMap()
	pm.Set(tableID, &procanalysis.ProcessInfos{Kind: procanalysis.KindMixed})

	opts := procanalysis.AnalyzeOptions{Clocks: []ir.NodeID{clk}}
	var sem semantics.Language = semantics.NewRTL()
	ctx := newTestContext()

	if _, err := Split(ctx, root, pm, sem, opts); err != nil {
		t.Fatalf("Split returned error: %v", err)
	}

	contents := tree.Node(root.Node).Data.(*ir.ContentsData)
	found := false
	for i := 0; i < contents.Declarations.Len(); i++ {
		n := tree.Node(contents.Declarations.At(i))
		if n == nil || (n.Kind != ir.ClassVariable && n.Kind != ir.ClassSignal) {
			continue
		}
		named, ok := ir.AsNamed(n)
		if !ok {
			continue
		}
		if strings.Contains(named.GetName(), "tmp") {
			found = true
		}
	}
	if !found {
		t.Fatalf("local variable tmp was not lifted into the enclosing scope's declarations")
	}
}
