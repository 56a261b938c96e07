package symbolmap

import (
	"testing"

	"hif/internal/diag"
	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/semantics"
	"hif/internal/source"
)

func newTestContext() *hifctx.Context {
	return hifctx.New(source.NewFileSet(), diag.NewBag(100))
}

// buildRisingEdgeCall builds a call to
// ieee.std_logic_1164.rising_edge(clk) under RTL, with the declaration it
// resolves to sitting inside a standard LibraryDef so enclosingStandardLibrary
// can key the lookup.
func buildRisingEdgeCall(t *testing.T) (*ir.Tree, ir.NodeID, ir.NodeID) {
	t.Helper()
	tree := ir.NewTree(32)
	f := ir.NewFactory(tree)

	sys := &ir.SystemData{}
	sysID := tree.Alloc(ir.Node{Kind: ir.ClassSystem, Data: sys})
	tree.SetRoot(sysID)

	lib := &ir.LibraryDefData{Standard: true}
	lib.SetName("ieee.std_logic_1164")
	libID := tree.Alloc(ir.Node{Kind: ir.ClassLibraryDef, Data: lib})
	lib.Declarations.Owner = libID
	risingEdgeDecl := tree.Alloc(ir.Node{Kind: ir.ClassFunction, Data: &ir.FunctionData{}})
	if named, ok := ir.AsNamed(tree.Node(risingEdgeDecl)); ok {
		named.SetName("rising_edge")
	}
	tree.ListPushBack(&lib.Declarations, risingEdgeDecl)
	tree.ListPushBack(&sys.Libraries, libID)

	clk := tree.Alloc(ir.Node{Kind: ir.ClassPort, Data: &ir.PortData{Direction: ir.PortDirIn}})
	if named, ok := ir.AsNamed(tree.Node(clk)); ok {
		named.SetName("clk")
	}
	tree.ListPushBack(&sys.Declarations, clk)

	call := &ir.FunctionCallData{Name: "rising_edge", Declaration: risingEdgeDecl}
	callID := tree.Alloc(ir.Node{Kind: ir.ClassFunctionCall, Data: call})
	argAssign := &ir.ParameterAssignData{}
	argID := tree.Alloc(ir.Node{Kind: ir.ClassParameterAssign, Data: argAssign})
	tree.SetChild(argID, "Value", f.Identifier("clk", clk))
	tree.ListPushBack(&call.ParameterAssigns, argID)

	// Wire the call as the source of a top-level variable so it is
	// reachable (and replaceable) from the System root.
	holder := tree.Alloc(ir.Node{Kind: ir.ClassVariable, Data: &ir.VariableData{}})
	if named, ok := ir.AsNamed(tree.Node(holder)); ok {
		named.SetName("edge")
	}
	tree.SetChild(holder, "Value", callID)
	tree.ListPushBack(&sys.Declarations, holder)

	return tree, sysID, callID
}

func TestSymbolMapSimplifiesRisingEdge(t *testing.T) {
	tree, sysID, callID := buildRisingEdgeCall(t)
	root := ir.NodeRef{Tree: tree, Node: sysID}
	ctx := newTestContext()

	if err := MapStandardSymbols(ctx, root, semantics.NewRTL(), semantics.NewTLM()); err != nil {
		t.Fatalf("MapStandardSymbols returned error: %v", err)
	}

	if n := tree.Node(callID); n != nil {
		t.Fatalf("original rising_edge call is still present in the tree at %d", callID)
	}

	sys := tree.Node(sysID).Data.(*ir.SystemData)
	var holder *ir.VariableData
	for i := 0; i < sys.Declarations.Len(); i++ {
		n := tree.Node(sys.Declarations.At(i))
		if vd, ok := n.Data.(*ir.VariableData); ok {
			holder = vd
		}
	}
	if holder == nil {
		t.Fatalf("lost the declaration holding the call's replacement")
	}
	replNode := tree.Node(holder.Value)
	if replNode == nil {
		t.Fatalf("replacement value is missing")
	}
	exprData, ok := replNode.Data.(*ir.ExpressionData)
	if !ok || exprData.Op != ir.OpEq {
		t.Fatalf("expected rising_edge(clk) to simplify into clk == true, got %T", replNode.Data)
	}

	// No lingering symbol reference to the old declaration should survive:
	// nothing in the tree may resolve to risingEdgeDecl's FunctionCall kind
	// anymore since the call node itself was replaced wholesale.
	for i := 0; i < sys.Libraries.Len(); i++ {
		n := tree.Node(sys.Libraries.At(i))
		if ld, ok := n.Data.(*ir.LibraryDefData); ok && ld.GetName() == "ieee.std_logic_1164" {
			t.Fatalf("RTL's std_logic_1164 include should not survive a SIMPLIFIED resolution")
		}
	}
}
