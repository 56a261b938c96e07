package semantics

import "hif/internal/ir"

// TLM is the SystemC transaction-level-modeling semantics: vectors rebase to
// a zero-based span regardless of their declared direction (RebasesTypes and
// RebasesSlices both true), booleans are native, and std_logic_1164's
// rising_edge has no TLM counterpart: sc_signal's value-change has no
// standalone "edge" predicate, so a reference to it is SIMPLIFIED into an
// inline comparison rather than kept as a library call.
//
// One semantics struct per destination, no shared base class.
type TLM struct {
	libs map[*ir.Tree]map[string]ir.NodeID
}

// NewTLM returns the TLM semantics.
func NewTLM() *TLM { return &TLM{libs: make(map[*ir.Tree]map[string]ir.NodeID)} }

func (s *TLM) Name() string { return "TLM" }

func (s *TLM) RebasesTypes() bool  { return true }
func (s *TLM) RebasesSlices() bool { return true }

func (s *TLM) TypeForConstant(tree *ir.Tree, value ir.NodeID) ir.NodeID {
	n := tree.Node(value)
	if n == nil {
		return ir.NoNode
	}
	f := ir.NewFactory(tree)
	switch d := n.Data.(type) {
	case *ir.BitValueData:
		return f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, true)
	case *ir.BoolValueData:
		return f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, true)
	case *ir.IntValueData:
		return f.SimpleType(ir.ClassTypeInt, ir.NoNode, true, true)
	case *ir.BitvectorValueData:
		return f.SimpleType(ir.ClassTypeBitvector, buildSpan(f, len(d.Value)), false, true)
	case *ir.RealValueData:
		return f.SimpleType(ir.ClassTypeReal, ir.NoNode, true, true)
	case *ir.CharValueData:
		return f.SimpleType(ir.ClassTypeChar, ir.NoNode, false, true)
	case *ir.StringValueData:
		return f.SimpleType(ir.ClassTypeString, ir.NoNode, false, true)
	case *ir.TimeValueData:
		return f.SimpleType(ir.ClassTypeTime, ir.NoNode, false, true)
	default:
		return ir.NoNode
	}
}

// MapType canonicalizes t into TLM's vocabulary: std_logic's 9-valued Bit
// collapses onto bool (sc_signal<bool>), and every vector kind rebases its
// span to [width-1 downto 0] regardless of how it was originally indexed
// (the "Type" repair under a rebasing semantics).
func (s *TLM) MapType(tree *ir.Tree, t ir.NodeID) ir.NodeID {
	n := tree.Node(t)
	if n == nil {
		return ir.NoNode
	}
	f := ir.NewFactory(tree)
	switch n.Data.ClassID() {
	case ir.ClassTypeBit:
		return f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, false)
	case ir.ClassTypeBitvector, ir.ClassTypeSigned, ir.ClassTypeUnsigned:
		w, _, ok := spanWidth(tree, mustSpan(tree, n))
		if !ok {
			return t
		}
		signed := isSignedType(tree, t)
		kind := ir.ClassTypeBitvector
		if signed {
			kind = ir.ClassTypeSigned
		} else if n.Data.ClassID() == ir.ClassTypeUnsigned {
			kind = ir.ClassTypeUnsigned
		}
		return f.SimpleType(kind, buildSpan(f, w), signed, false)
	default:
		return t
	}
}

func mustSpan(tree *ir.Tree, n *ir.Node) ir.NodeID {
	spanned, ok := ir.AsTypeSpanned(n)
	if !ok {
		return ir.NoNode
	}
	return spanned.SpanRange()
}

func (s *TLM) ExprType(tree *ir.Tree, op1 ir.NodeID, op ir.Operator, op2 ir.NodeID, ctx ExprContext) ExprTypeResult {
	t1 := tree.Node(op1)
	if t1 == nil {
		return ExprTypeResult{}
	}
	switch {
	case op.IsRelational():
		return ExprTypeResult{Type: s.boolType(tree), Precision: 1, OK: true}
	case op.IsLogical():
		if ctx != ContextCondition && op != ir.OpNot {
			// TLM requires both operands of && / || to already be bool;
			// a bit-logic AND in a non-condition position is rejected so
			// the engine falls back to SuggestedTypeForOp.
			return ExprTypeResult{}
		}
		return ExprTypeResult{Type: s.boolType(tree), Precision: 1, OK: true}
	case op.IsShiftOrRotate(), op.IsUnary():
		return ExprTypeResult{Type: op1, Precision: widthOf(tree, t1.Data), OK: true}
	default:
		p1 := widthOf(tree, t1.Data)
		p2 := 0
		if n2 := tree.Node(op2); n2 != nil {
			p2 = widthOf(tree, n2.Data)
		}
		p := p1
		if p2 > p {
			p = p2
		}
		return ExprTypeResult{Type: op1, Precision: p, OK: true}
	}
}

func (s *TLM) boolType(tree *ir.Tree) ir.NodeID {
	return ir.NewFactory(tree).SimpleType(ir.ClassTypeBool, ir.NoNode, false, false)
}

func (s *TLM) MapOperator(op ir.Operator, op1, op2, mapped1, mapped2 ir.NodeID) ir.Operator {
	return op
}

func (s *TLM) SuggestedTypeForOp(tree *ir.Tree, precision int, op ir.Operator, other ir.NodeID, ctx ExprContext, isOperand1 bool) ir.NodeID {
	f := ir.NewFactory(tree)
	if op.IsRelational() || op.IsLogical() {
		return f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, false)
	}
	return f.SimpleType(ir.ClassTypeBitvector, buildSpan(f, precision), false, false)
}

func (s *TLM) CheckCondition(tree *ir.Tree, t ir.NodeID, ctx ExprContext) bool {
	n := tree.Node(t)
	if n == nil {
		return false
	}
	// TLM's if()/sc_assert condition is strictly bool; unlike RTL it never
	// accepts a raw Bit-logic ternary.
	return n.Data.ClassID() == ir.ClassTypeBool
}

func (s *TLM) ExplicitCast(tree *ir.Tree, value, target, source ir.NodeID) ir.NodeID {
	tn := tree.Node(target)
	if tn == nil {
		return ir.NoNode
	}
	if tn.Data.ClassID() == ir.ClassTypeBool {
		return s.ExplicitBoolConversion(tree, value)
	}
	return ir.NewFactory(tree).Cast(value, target)
}

func (s *TLM) ExplicitBoolConversion(tree *ir.Tree, value ir.NodeID) ir.NodeID {
	vn := tree.Node(value)
	if vn == nil {
		return ir.NoNode
	}
	f := ir.NewFactory(tree)
	zero := zeroValue(f, tree, typeOf(vn.Data))
	if !zero.IsValid() {
		return ir.NoNode
	}
	return f.Expression(ir.OpNeq, value, zero)
}

func (s *TLM) TypeDefaultValue(tree *ir.Tree, typ ir.NodeID, ctx ExprContext) ir.NodeID {
	return zeroValue(ir.NewFactory(tree), tree, typ)
}

func (s *TLM) IsTypeAllowedAsPort(tree *ir.Tree, t ir.NodeID) (ir.NodeID, bool) {
	n := tree.Node(t)
	if n == nil {
		return ir.NoNode, false
	}
	if n.Data.ClassID() == ir.ClassTypeFile {
		return ir.NoNode, false
	}
	return t, true
}

func (s *TLM) IsTypeAllowedAsBound(tree *ir.Tree, t ir.NodeID) (ir.NodeID, bool) {
	n := tree.Node(t)
	if n == nil {
		return ir.NoNode, false
	}
	if n.Data.ClassID() == ir.ClassTypeInt {
		return t, true
	}
	return ir.NewFactory(tree).SimpleType(ir.ClassTypeInt, ir.NoNode, true, true), true
}

// tlmEdgeLib is a synthetic home for the symbols TLM simplifies away rather
// than maps 1:1; it carries no real members, only a name for diagnostics and
// Library-include bookkeeping.
const tlmEdgeLib = "tlm.edge_compat"

func (s *TLM) StandardLibrary(tree *ir.Tree, name string) ir.NodeID {
	if name != tlmEdgeLib {
		return ir.NoNode
	}
	cache, ok := s.libs[tree]
	if !ok {
		cache = make(map[string]ir.NodeID)
		s.libs[tree] = cache
	}
	if id, ok := cache[name]; ok {
		return id
	}
	id := tree.Alloc(ir.Node{Kind: ir.ClassLibraryDef, Data: &ir.LibraryDefData{Standard: true}})
	cache[name] = id
	return id
}

// MapStandardSymbol handles the standard-library surface: a reference to
// ieee.std_logic_1164.rising_edge originating from RTL has no TLM library
// counterpart (TLM processes are scheduled off sc_signal value-change
// events, not a syntactic edge test), so the mapper simplifies the call
// itself rather than resolving it to a kept or deleted symbol.
func (s *TLM) MapStandardSymbol(tree *ir.Tree, decl ir.NodeID, key SymbolKey, srcSem Language) (SymbolMapping, SymbolAction) {
	if key.Library == rtlStdLogic1164 && key.Name == "rising_edge" {
		return SymbolMapping{MappedName: key.Name, Action: ActionSimplified}, ActionSimplified
	}
	if key.Library == rtlStdLogic1164 && key.Name == "falling_edge" {
		return SymbolMapping{MappedName: key.Name, Action: ActionSimplified}, ActionSimplified
	}
	if key.Library == rtlStdLogic1164 {
		// Everything else in std_logic_1164 (resolution functions, 'X'/'Z'
		// comparisons) has no TLM meaning once Bit has collapsed to bool.
		return SymbolMapping{Action: ActionUnsupported}, ActionUnsupported
	}
	return SymbolMapping{}, ActionUnknown
}

// SimplifiedSymbol builds the inline replacement for a rising_edge(clk) /
// falling_edge(clk) call: clk == true / clk == false, since TLM represents
// the clock as a plain sc_signal<bool> and the "edge" has already been
// consumed by the process's sensitivity (the analyzer records this as a
// positive/negative-edge StateTable rather than a runtime check).
func (s *TLM) SimplifiedSymbol(tree *ir.Tree, key SymbolKey, srcNode ir.NodeID) ir.NodeID {
	n := tree.Node(srcNode)
	if n == nil {
		return ir.NoNode
	}
	call, ok := n.Data.(*ir.FunctionCallData)
	if !ok {
		return ir.NoNode
	}
	if len(call.ParameterAssigns.Items) == 0 {
		return ir.NoNode
	}
	argAssignNode := tree.Node(call.ParameterAssigns.Items[0])
	if argAssignNode == nil {
		return ir.NoNode
	}
	argAssign, ok := argAssignNode.Data.(*ir.ParameterAssignData)
	if !ok {
		return ir.NoNode
	}
	f := ir.NewFactory(tree)
	boolT := f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, false)
	want := true
	if key.Name == "falling_edge" {
		want = false
	}
	return f.Expression(ir.OpEq, argAssign.Value, f.BoolConst(want, boolT))
}

func (s *TLM) MapStandardFilename(lib string) string {
	if lib == tlmEdgeLib {
		return "" // synthetic library: never emitted as an include
	}
	return lib
}

func (s *TLM) TypeSize(tree *ir.Tree, t ir.NodeID) (int, bool) {
	n := tree.Node(t)
	if n == nil {
		return 0, false
	}
	switch n.Data.ClassID() {
	case ir.ClassTypeBool:
		return 1, true
	case ir.ClassTypeBitvector, ir.ClassTypeSigned, ir.ClassTypeUnsigned, ir.ClassTypeArray:
		spanned, ok := ir.AsTypeSpanned(n)
		if !ok {
			return 0, false
		}
		w, _, ok := spanWidth(tree, spanned.SpanRange())
		return w, ok
	case ir.ClassTypeInt:
		return 32, true
	}
	return 0, false
}

func (s *TLM) TypeSigned(tree *ir.Tree, t ir.NodeID) bool {
	return isSignedType(tree, t)
}
