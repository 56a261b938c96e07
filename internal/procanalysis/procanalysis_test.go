package procanalysis

import (
	"testing"

	"hif/internal/diag"
	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/semantics"
	"hif/internal/source"
)

// procFixture is one Contents scope with declared ports/signals and a single
// process whose sensitivity buckets and body the individual tests fill in.
type procFixture struct {
	tree    *ir.Tree
	root    ir.NodeID
	std     *ir.StateTableData
	tableID ir.NodeID
	state   *ir.StateData
	clk     ir.NodeID
	rst     ir.NodeID
	d       ir.NodeID
	q       ir.NodeID
}

func newProcFixture(t *testing.T) *procFixture {
	t.Helper()
	tree := ir.NewTree(64)

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

	fx := &procFixture{tree: tree, root: contentsID}
	fx.clk = declare(ir.ClassPort, &ir.PortData{Direction: ir.PortDirIn}, "clk")
	fx.rst = declare(ir.ClassPort, &ir.PortData{Direction: ir.PortDirIn}, "rst")
	fx.d = declare(ir.ClassSignal, &ir.SignalData{}, "d")
	fx.q = declare(ir.ClassSignal, &ir.SignalData{}, "q")

	fx.std = &ir.StateTableData{Name: "proc0", Flavor: ir.FlavorHDL}
	fx.tableID = tree.Alloc(ir.Node{Kind: ir.ClassStateTable, Data: fx.std})
	fx.std.Sensitivity.Owner = fx.tableID
	fx.std.SensitivityPos.Owner = fx.tableID
	fx.std.SensitivityNeg.Owner = fx.tableID
	fx.std.Declarations.Owner = fx.tableID
	fx.std.States.Owner = fx.tableID

	fx.state = &ir.StateData{Name: "s0"}
	stateID := tree.Alloc(ir.Node{Kind: ir.ClassState, Data: fx.state})
	fx.state.Actions.Owner = stateID
	tree.ListPushBack(&fx.std.States, stateID)

	tree.ListPushBack(&contents.StateTables, fx.tableID)
	return fx
}

func (fx *procFixture) sense(list *ir.BList, decl ir.NodeID, name string) {
	f := ir.NewFactory(fx.tree)
	fx.tree.ListPushBack(list, f.Identifier(name, decl))
}

func (fx *procFixture) analyze(t *testing.T, opts AnalyzeOptions) *ProcessInfos {
	t.Helper()
	ctx := hifctx.New(source.NewFileSet(), diag.NewBag(50))
	root := ir.NodeRef{Tree: fx.tree, Node: fx.root}
	var sem semantics.Language = semantics.NewRTL()
	pm, _, err := AnalyzeProcesses(ctx, root, sem, opts)
	if err != nil {
		t.Fatalf("AnalyzeProcesses: %v", err)
	}
	info, ok := pm.Get(fx.tableID)
	if !ok {
		t.Fatalf("process %d was not classified", fx.tableID)
	}
	return info
}

func TestClassifyLevelSensitiveIsAsynchronous(t *testing.T) {
	fx := newProcFixture(t)
	f := ir.NewFactory(fx.tree)

	fx.sense(&fx.std.Sensitivity, fx.d, "d")
	fx.tree.ListPushBack(&fx.state.Actions,
		f.Assign(f.Identifier("q", fx.q), f.Identifier("d", fx.d), true))

	info := fx.analyze(t, AnalyzeOptions{Clocks: []ir.NodeID{fx.clk}})
	if info.Kind != KindAsynchronous {
		t.Fatalf("kind %s, want ASYNCHRONOUS", info.Kind)
	}
	if info.Edge != EdgeNone {
		t.Fatalf("edge %s, want NO_EDGE", info.Edge)
	}
	if !info.ReadSignals.Has(fx.d) || !info.WrittenSignals.Has(fx.q) {
		t.Fatal("read/write sets do not reflect the body")
	}
}

func TestClassifyClockedProcessIsSynchronous(t *testing.T) {
	fx := newProcFixture(t)
	f := ir.NewFactory(fx.tree)

	fx.sense(&fx.std.SensitivityPos, fx.clk, "clk")

	ifData := &ir.IfData{}
	ifID := fx.tree.Alloc(ir.Node{Kind: ir.ClassIf, Data: ifData})
	ifData.Alts.Owner = ifID
	ifData.ElseBody.Owner = ifID
	altData := &ir.IfAltData{Condition: f.Identifier("clk", fx.clk)}
	altID := fx.tree.Alloc(ir.Node{Kind: ir.ClassIfAlt, Data: altData})
	altData.Body.Owner = altID
	fx.tree.ListPushBack(&altData.Body,
		f.Assign(f.Identifier("q", fx.q), f.Identifier("d", fx.d), true))
	fx.tree.ListPushBack(&ifData.Alts, altID)
	fx.tree.ListPushBack(&fx.state.Actions, ifID)

	info := fx.analyze(t, AnalyzeOptions{Clocks: []ir.NodeID{fx.clk}})
	if info.Kind != KindSynchronous {
		t.Fatalf("kind %s, want SYNCHRONOUS", info.Kind)
	}
	if info.Clock != fx.clk {
		t.Fatalf("clock %d, want %d", info.Clock, fx.clk)
	}
	if info.Edge != EdgeRising {
		t.Fatalf("edge %s, want RISING_EDGE", info.Edge)
	}
}

func TestClassifyAsyncResetPhase(t *testing.T) {
	fx := newProcFixture(t)
	f := ir.NewFactory(fx.tree)

	fx.sense(&fx.std.SensitivityPos, fx.clk, "clk")
	fx.sense(&fx.std.SensitivityNeg, fx.rst, "rst")
	fx.tree.ListPushBack(&fx.state.Actions,
		f.Assign(f.Identifier("q", fx.q), f.Identifier("d", fx.d), true))

	info := fx.analyze(t, AnalyzeOptions{
		Clocks: []ir.NodeID{fx.clk},
		Resets: []ir.NodeID{fx.rst},
	})
	if info.ResetKind != ResetAsynchronous {
		t.Fatalf("reset kind %s, want ASYNCHRONOUS_RESET", info.ResetKind)
	}
	if info.Phase != PhaseLow {
		t.Fatalf("reset phase %s, want LOW_PHASE", info.Phase)
	}
	if info.Reset != fx.rst {
		t.Fatalf("reset decl %d, want %d", info.Reset, fx.rst)
	}
}

func TestClassifyTwoUnknownEdgesIsMixed(t *testing.T) {
	fx := newProcFixture(t)
	f := ir.NewFactory(fx.tree)

	// Two edge-sensitive signals and no recognized clock: the analyzer
	// cannot pick a derived clock, so the process stays MIXED.
	fx.sense(&fx.std.SensitivityPos, fx.d, "d")
	fx.sense(&fx.std.SensitivityPos, fx.q, "q")
	fx.tree.ListPushBack(&fx.state.Actions,
		f.Assign(f.Identifier("q", fx.q), f.Identifier("d", fx.d), true))

	info := fx.analyze(t, AnalyzeOptions{Clocks: []ir.NodeID{fx.clk}})
	if info.Kind != KindMixed {
		t.Fatalf("kind %s, want MIXED", info.Kind)
	}
}

func TestClassifySingleUnknownEdgeIsDerivedSynchronous(t *testing.T) {
	fx := newProcFixture(t)
	f := ir.NewFactory(fx.tree)

	fx.sense(&fx.std.SensitivityPos, fx.d, "d")
	// A While matches none of the six canonical styles, so the body-shape
	// phase contributes nothing and the sensitivity verdict stands.
	whileData := &ir.WhileData{}
	whileID := fx.tree.Alloc(ir.Node{Kind: ir.ClassWhile, Data: whileData})
	whileData.Body.Owner = whileID
	whileData.Condition = f.Identifier("d", fx.d)
	fx.tree.ListPushBack(&whileData.Body,
		f.Assign(f.Identifier("q", fx.q), f.Identifier("d", fx.d), true))
	fx.tree.ListPushBack(&fx.state.Actions, whileID)

	info := fx.analyze(t, AnalyzeOptions{})
	if info.Kind != KindDerivedSynchronous {
		t.Fatalf("kind %s, want DERIVED_SYNCHRONOUS", info.Kind)
	}
	if info.Clock != fx.d {
		t.Fatalf("derived clock %d, want %d", info.Clock, fx.d)
	}
}

func TestAnalyzeRejectsWait(t *testing.T) {
	fx := newProcFixture(t)

	waitID := fx.tree.Alloc(ir.Node{Kind: ir.ClassWait, Data: &ir.WaitData{}})
	fx.tree.ListPushBack(&fx.state.Actions, waitID)

	ctx := hifctx.New(source.NewFileSet(), diag.NewBag(50))
	root := ir.NodeRef{Tree: fx.tree, Node: fx.root}
	var sem semantics.Language = semantics.NewRTL()
	if _, _, err := AnalyzeProcesses(ctx, root, sem, AnalyzeOptions{}); err == nil {
		t.Fatal("AnalyzeProcesses accepted a process containing Wait")
	}
	if !ctx.Bag.HasErrors() {
		t.Fatal("wait rejection was not recorded in the diagnostic bag")
	}
}
