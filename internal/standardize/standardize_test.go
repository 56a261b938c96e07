package standardize

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

// buildBitvectorAssign builds the classic cross-semantics case: a 4-bit
// std_logic_vector signal x assigned x <= x + "0001" under RTL, wired as a
// single concurrent GlobalAction so the Assign is reachable from a System
// root without a full process.
func buildBitvectorAssign(t *testing.T) *ir.System {
	t.Helper()
	tree := ir.NewTree(32)
	f := ir.NewFactory(tree)

	contents := &ir.ContentsData{}
	contentsID := tree.Alloc(ir.Node{Kind: ir.ClassContents, Data: contents})
	tree.SetRoot(contentsID)

	span := buildSpanFixture(f, 3, 0)
	vecType := f.SimpleType(ir.ClassTypeBitvector, span, false, false)

	xDecl := tree.Alloc(ir.Node{Kind: ir.ClassSignal, Data: &ir.SignalData{}})
	if named, ok := ir.AsNamed(tree.Node(xDecl)); ok {
		named.SetName("x")
	}
	tree.SetChild(xDecl, "Type", vecType)
	tree.ListPushBack(&contents.Declarations, xDecl)

	literal := tree.Alloc(ir.Node{Kind: ir.ClassBitvectorValue, Data: &ir.BitvectorValueData{Value: "0001"}})

	expr := f.Expression(ir.OpPlus, f.Identifier("x", xDecl), literal)
	assign := f.Assign(f.Identifier("x", xDecl), expr, false)

	ga := &ir.GlobalActionData{}
	gaID := tree.Alloc(ir.Node{Kind: ir.ClassGlobalAction, Data: ga})
	tree.ListPushBack(&ga.Actions, assign)
	tree.ListPushBack(&contents.GlobalActions, gaID)

	return ir.NewSystem(tree)
}

func buildSpanFixture(f *ir.Factory, left, right int64) ir.NodeID {
	intType := f.SimpleType(ir.ClassTypeInt, ir.NoNode, false, true)
	l := f.IntConst(left, intType)
	r := f.IntConst(right, intType)
	return f.Span(l, r, ir.DirDownto)
}

func TestStandardizeBitvectorArithmeticRTLtoTLM(t *testing.T) {
	src := buildBitvectorAssign(t)
	ctx := newTestContext()

	res, err := Standardize(ctx, src, semantics.NewRTL(), semantics.NewTLM())
	if err != nil {
		t.Fatalf("Standardize returned error: %v", err)
	}

	dst := res.System.Tree
	contents := dst.Node(dst.Root()).Data.(*ir.ContentsData)

	if contents.Declarations.Len() == 0 {
		t.Fatalf("destination tree has no declarations")
	}
	xID := contents.Declarations.At(0)
	xType := dst.Node(xID).Data.(*ir.SignalData).Type
	tn := dst.Node(xType)
	if tn.Kind != ir.ClassTypeBitvector {
		t.Fatalf("expected x's type to remain a Bitvector kind under TLM, got %s", tn.Kind)
	}
	spanned, ok := ir.AsTypeSpanned(tn)
	if !ok {
		t.Fatalf("mapped type does not carry a span")
	}
	w, min, ok := spanWidthFixture(dst, spanned.SpanRange())
	if !ok || w != 4 || min != 0 {
		t.Fatalf("expected a rebased 4-bit span starting at 0, got width=%d min=%d ok=%v", w, min, ok)
	}

	if contents.GlobalActions.Len() == 0 {
		t.Fatalf("destination tree lost its global action")
	}
	gaID := contents.GlobalActions.At(0)
	gaData := dst.Node(gaID).Data.(*ir.GlobalActionData)
	if gaData.Actions.Len() == 0 {
		t.Fatalf("global action lost its assign")
	}
	assignID := gaData.Actions.At(0)
	assignData := dst.Node(assignID).Data.(*ir.AssignData)
	exprNode := dst.Node(assignData.Source)
	exprData, ok := exprNode.Data.(*ir.ExpressionData)
	if !ok {
		t.Fatalf("expected the assign's source to remain a plain Expression (no wrapping cast needed), got %s", exprNode.Kind)
	}
	if exprData.Op != ir.OpPlus {
		t.Fatalf("operator was remapped unexpectedly: got %s", exprData.Op)
	}

	litNode := dst.Node(exprData.Op2)
	litData, ok := litNode.Data.(*ir.BitvectorValueData)
	if !ok {
		t.Fatalf("expected the literal operand to remain a BitvectorValue, got %s", litNode.Kind)
	}
	if !litData.Type.IsValid() {
		t.Fatalf("literal has no syntactic type after standardization")
	}
	litTypeNode := dst.Node(litData.Type)
	wantType := semantics.NewTLM().TypeForConstant(dst, exprData.Op2)
	wantNode := dst.Node(wantType)
	if litTypeNode.Kind != wantNode.Kind {
		t.Fatalf("literal syntactic type kind %s does not match TLM.TypeForConstant's %s", litTypeNode.Kind, wantNode.Kind)
	}
}

// spanWidthFixture duplicates semantics' unexported spanWidth just enough
// for the test to inspect a destination Range without reaching into an
// internal package; it exercises the same constant-folding path
// semantics.spanWidth does (IntValue operands directly).
func spanWidthFixture(tree *ir.Tree, rangeID ir.NodeID) (width int, min int64, ok bool) {
	n := tree.Node(rangeID)
	if n == nil {
		return 0, 0, false
	}
	rd, isRange := n.Data.(*ir.RangeData)
	if !isRange {
		return 0, 0, false
	}
	left := tree.Node(rd.LeftBound).Data.(*ir.IntValueData).Value
	right := tree.Node(rd.RightBound).Data.(*ir.IntValueData).Value
	if right < left {
		left, right = right, left
	}
	return int(right-left) + 1, left, true
}

// TestStandardizeLiteralGetsSyntacticType checks literal typing:
// an IntValue literal with no syntactic type under RTL (which does not
// require one eagerly) must carry TLM's canonical Int, marked constexpr,
// after standardization targets a semantics that requires syntactic types
// on every constant.
func TestStandardizeLiteralGetsSyntacticType(t *testing.T) {
	tree := ir.NewTree(16)

	contents := &ir.ContentsData{}
	contentsID := tree.Alloc(ir.Node{Kind: ir.ClassContents, Data: contents})
	tree.SetRoot(contentsID)

	lit := tree.Alloc(ir.Node{Kind: ir.ClassIntValue, Data: &ir.IntValueData{Value: 5}})
	k := tree.Alloc(ir.Node{Kind: ir.ClassConst, Data: &ir.ConstData{}})
	if named, ok := ir.AsNamed(tree.Node(k)); ok {
		named.SetName("k")
	}
	tree.SetChild(k, "Value", lit)
	tree.ListPushBack(&contents.Declarations, k)

	src := ir.NewSystem(tree)
	ctx := newTestContext()

	res, err := Standardize(ctx, src, semantics.NewRTL(), semantics.NewTLM())
	if err != nil {
		t.Fatalf("Standardize returned error: %v", err)
	}

	dst := res.System.Tree
	dstContents := dst.Node(dst.Root()).Data.(*ir.ContentsData)
	kID := dstContents.Declarations.At(0)
	kData := dst.Node(kID).Data.(*ir.ConstData)
	litNode := dst.Node(kData.Value)
	litData := litNode.Data.(*ir.IntValueData)
	if !litData.Type.IsValid() {
		t.Fatalf("IntValue(5) has no syntactic type after standardization")
	}
	typeNode := dst.Node(litData.Type)
	if typeNode.Kind != ir.ClassTypeInt {
		t.Fatalf("expected destination's canonical Int, got %s", typeNode.Kind)
	}
	scalars, ok := typeNode.Data.(ir.SimpleTypeScalars)
	if !ok || !scalars.Constexpr() {
		t.Fatalf("destination literal type is not marked constexpr")
	}
}

// TestStandardizeSortsCallArguments wires a two-parameter function and a
// call supplying its actuals by name in reverse order; after standardization
// the actuals must sit in formal order and resolve to the destination tree's
// own Parameter twins.
func TestStandardizeSortsCallArguments(t *testing.T) {
	tree := ir.NewTree(64)
	f := ir.NewFactory(tree)

	contents := &ir.ContentsData{}
	contentsID := tree.Alloc(ir.Node{Kind: ir.ClassContents, Data: contents})
	tree.SetRoot(contentsID)

	intType := func() ir.NodeID { return f.SimpleType(ir.ClassTypeInt, ir.NoNode, true, false) }

	fd := &ir.FunctionData{}
	fnID := tree.Alloc(ir.Node{Kind: ir.ClassFunction, Data: fd})
	fd.SetName("sum")
	tree.SetChild(fnID, "ReturnType", intType())

	param := func(name string) ir.NodeID {
		id := tree.Alloc(ir.Node{Kind: ir.ClassParameter, Data: &ir.ParameterData{Direction: ir.PortDirIn}})
		if named, ok := ir.AsNamed(tree.Node(id)); ok {
			named.SetName(name)
		}
		tree.SetChild(id, "Type", intType())
		tree.ListPushBack(&fd.Parameters, id)
		return id
	}
	paramA := param("a")
	paramB := param("b")
	tree.ListPushBack(&contents.Declarations, fnID)

	call := &ir.FunctionCallData{Name: "sum", Declaration: fnID}
	callID := tree.Alloc(ir.Node{Kind: ir.ClassFunctionCall, Data: call})
	mkAssign := func(name string, decl ir.NodeID, v int64) ir.NodeID {
		pa := &ir.ParameterAssignData{Name: name, Declaration: decl}
		id := tree.Alloc(ir.Node{Kind: ir.ClassParameterAssign, Data: pa})
		value := f.IntConst(v, ir.NoNode)
		tree.SetChild(id, "Value", value)
		return id
	}
	// Deliberately supplied b-first.
	tree.ListPushBack(&call.ParameterAssigns, mkAssign("b", paramB, 2))
	tree.ListPushBack(&call.ParameterAssigns, mkAssign("a", paramA, 1))

	k := tree.Alloc(ir.Node{Kind: ir.ClassConst, Data: &ir.ConstData{}})
	if named, ok := ir.AsNamed(tree.Node(k)); ok {
		named.SetName("k")
	}
	tree.SetChild(k, "Value", callID)
	tree.ListPushBack(&contents.Declarations, k)

	src := ir.NewSystem(tree)
	ctx := newTestContext()

	res, err := Standardize(ctx, src, semantics.NewRTL(), semantics.NewTLM())
	if err != nil {
		t.Fatalf("Standardize returned error: %v", err)
	}

	dst := res.System.Tree
	dstContents := dst.Node(dst.Root()).Data.(*ir.ContentsData)

	dstFn, ok := dst.Node(dstContents.Declarations.At(0)).Data.(*ir.FunctionData)
	if !ok {
		t.Fatalf("first destination declaration is not the function")
	}
	dstK := dst.Node(dstContents.Declarations.At(1)).Data.(*ir.ConstData)
	dstCall, ok := dst.Node(dstK.Value).Data.(*ir.FunctionCallData)
	if !ok {
		t.Fatalf("const value is not a FunctionCall in the destination tree")
	}

	if dstCall.ParameterAssigns.Len() != 2 {
		t.Fatalf("call has %d parameter assigns, want 2", dstCall.ParameterAssigns.Len())
	}
	var names []string
	for i := 0; i < dstCall.ParameterAssigns.Len(); i++ {
		pa := dst.Node(dstCall.ParameterAssigns.At(i)).Data.(*ir.ParameterAssignData)
		names = append(names, pa.Name)

		decl := dst.Node(pa.Declaration)
		if decl == nil || decl.Kind != ir.ClassParameter {
			t.Fatalf("assign %q does not resolve to a destination Parameter", pa.Name)
		}
		named, _ := ir.AsNamed(decl)
		if named.GetName() != pa.Name {
			t.Fatalf("assign %q bound to formal %q", pa.Name, named.GetName())
		}
		if dstFn.Parameters.IndexOf(pa.Declaration) < 0 {
			t.Fatalf("assign %q's formal is not owned by the destination function", pa.Name)
		}
	}
	if names[0] != "a" || names[1] != "b" {
		t.Fatalf("actuals not sorted into formal order: %v", names)
	}

	if dstFnID := dstCall.Declaration; !dstFnID.IsValid() || dst.Node(dstFnID).Data != dstFn {
		t.Fatalf("call's declaration pointer was not remapped into the destination tree")
	}
}

// TestStandardizeAggregateElementCasts wires an aggregate whose first alt is
// a bit literal and whose "others" default is an int literal; under TLM the
// bit element collapses to bool, so the mismatched default must come out
// wrapped in a cast to the mapped element type.
func TestStandardizeAggregateElementCasts(t *testing.T) {
	tree := ir.NewTree(32)
	f := ir.NewFactory(tree)

	contents := &ir.ContentsData{}
	contentsID := tree.Alloc(ir.Node{Kind: ir.ClassContents, Data: contents})
	tree.SetRoot(contentsID)

	agg := &ir.AggregateData{}
	aggID := tree.Alloc(ir.Node{Kind: ir.ClassAggregate, Data: agg})
	agg.Alts.Owner = aggID

	alt := &ir.AggregateAltData{Value: f.BitConst(ir.Bit1, ir.NoNode)}
	altID := tree.Alloc(ir.Node{Kind: ir.ClassAggregateAlt, Data: alt})
	alt.Indices.Owner = altID
	tree.ListPushBack(&alt.Indices, f.IntConst(0, ir.NoNode))
	tree.ListPushBack(&agg.Alts, altID)

	agg.Others = f.IntConst(0, ir.NoNode)

	k := tree.Alloc(ir.Node{Kind: ir.ClassConst, Data: &ir.ConstData{}})
	if named, ok := ir.AsNamed(tree.Node(k)); ok {
		named.SetName("init")
	}
	tree.SetChild(k, "Value", aggID)
	tree.ListPushBack(&contents.Declarations, k)

	res, err := Standardize(newTestContext(), ir.NewSystem(tree), semantics.NewRTL(), semantics.NewTLM())
	if err != nil {
		t.Fatalf("Standardize returned error: %v", err)
	}

	dst := res.System.Tree
	dstContents := dst.Node(dst.Root()).Data.(*ir.ContentsData)
	dstK := dst.Node(dstContents.Declarations.At(0)).Data.(*ir.ConstData)
	dstAgg, ok := dst.Node(dstK.Value).Data.(*ir.AggregateData)
	if !ok {
		t.Fatalf("const value is not an Aggregate in the destination tree")
	}

	othersNode := dst.Node(dstAgg.Others)
	cast, ok := othersNode.Data.(*ir.CastData)
	if !ok {
		t.Fatalf("others default was not cast to the element type, got %s", othersNode.Kind)
	}
	tn := dst.Node(cast.Type)
	if tn == nil || tn.Kind != ir.ClassTypeBool {
		t.Fatalf("others default cast targets node %d, want the mapped bool element type", cast.Type)
	}

	dstAlt := dst.Node(dstAgg.Alts.At(0)).Data.(*ir.AggregateAltData)
	if vn := dst.Node(dstAlt.Value); vn.Kind == ir.ClassCast {
		t.Fatalf("matching alt value was needlessly cast")
	}
}

// TestStandardizeSortsTypeReferenceTemplates mirrors the call-sorting test
// for a TypeReference: a TypeDef with two template value parameters and a
// reference supplying them by name in reverse order.
func TestStandardizeSortsTypeReferenceTemplates(t *testing.T) {
	tree := ir.NewTree(64)
	f := ir.NewFactory(tree)

	contents := &ir.ContentsData{}
	contentsID := tree.Alloc(ir.Node{Kind: ir.ClassContents, Data: contents})
	tree.SetRoot(contentsID)

	td := &ir.TypeDefData{Name: "word"}
	tdID := tree.Alloc(ir.Node{Kind: ir.ClassTypeDef, Data: td})
	td.TemplateParams.Owner = tdID
	tree.SetChild(tdID, "Type", f.SimpleType(ir.ClassTypeBitvector, buildSpanFixture(f, 7, 0), false, false))

	tp := func(name string) ir.NodeID {
		id := tree.Alloc(ir.Node{Kind: ir.ClassValueTP, Data: &ir.ValueTPData{}})
		if named, ok := ir.AsNamed(tree.Node(id)); ok {
			named.SetName(name)
		}
		tree.ListPushBack(&td.TemplateParams, id)
		return id
	}
	tpW := tp("width")
	tpD := tp("depth")
	tree.ListPushBack(&contents.Declarations, tdID)

	ref := &ir.TypeReferenceDeclData{Name: "word", Declaration: tdID}
	refID := tree.Alloc(ir.Node{Kind: ir.ClassTypeReferenceDecl, Data: ref})
	mkTPAssign := func(name string, decl ir.NodeID, v int64) ir.NodeID {
		pa := &ir.ValueTPAssignData{Name: name, Declaration: decl}
		id := tree.Alloc(ir.Node{Kind: ir.ClassValueTPAssign, Data: pa})
		tree.SetChild(id, "Value", f.IntConst(v, ir.NoNode))
		return id
	}
	// Deliberately supplied depth-first.
	tree.ListPushBack(&ref.TemplateAssigns, mkTPAssign("depth", tpD, 16))
	tree.ListPushBack(&ref.TemplateAssigns, mkTPAssign("width", tpW, 8))

	sig := tree.Alloc(ir.Node{Kind: ir.ClassSignal, Data: &ir.SignalData{}})
	if named, ok := ir.AsNamed(tree.Node(sig)); ok {
		named.SetName("mem")
	}
	tree.SetChild(sig, "Type", refID)
	tree.ListPushBack(&contents.Declarations, sig)

	res, err := Standardize(newTestContext(), ir.NewSystem(tree), semantics.NewRTL(), semantics.NewTLM())
	if err != nil {
		t.Fatalf("Standardize returned error: %v", err)
	}

	dst := res.System.Tree
	dstContents := dst.Node(dst.Root()).Data.(*ir.ContentsData)
	dstTd, ok := dst.Node(dstContents.Declarations.At(0)).Data.(*ir.TypeDefData)
	if !ok {
		t.Fatalf("first destination declaration is not the TypeDef")
	}
	dstSig := dst.Node(dstContents.Declarations.At(1)).Data.(*ir.SignalData)
	dstRef, ok := dst.Node(dstSig.Type).Data.(*ir.TypeReferenceDeclData)
	if !ok {
		t.Fatalf("signal's type is not a TypeReference in the destination tree")
	}

	if dstRef.TemplateAssigns.Len() != 2 {
		t.Fatalf("reference has %d template assigns, want 2", dstRef.TemplateAssigns.Len())
	}
	var names []string
	for i := 0; i < dstRef.TemplateAssigns.Len(); i++ {
		pa := dst.Node(dstRef.TemplateAssigns.At(i)).Data.(*ir.ValueTPAssignData)
		names = append(names, pa.Name)
		if dstTd.TemplateParams.IndexOf(pa.Declaration) < 0 {
			t.Fatalf("assign %q's formal is not owned by the destination TypeDef", pa.Name)
		}
	}
	if names[0] != "width" || names[1] != "depth" {
		t.Fatalf("template assigns not sorted into formal order: %v", names)
	}
}
