package semantics

import "hif/internal/ir"

// RTL is the register-transfer-level semantics family (VHDL/Verilog,
// pre-elaboration): vector indices keep their declared left bound
// (RebasesTypes/RebasesSlices both false), bit logic is 9-valued, and the
// bundled standard library models IEEE std_logic_1164's rising_edge.
//
// One concrete semantics struct per dialect rather than a class hierarchy;
// RTL holds no tree state of its own beyond a lazily-built standard
// library cache.
type RTL struct {
	libs map[*ir.Tree]map[string]ir.NodeID
}

// NewRTL returns the RTL semantics.
func NewRTL() *RTL { return &RTL{libs: make(map[*ir.Tree]map[string]ir.NodeID)} }

func (s *RTL) Name() string { return "RTL" }

func (s *RTL) RebasesTypes() bool  { return false }
func (s *RTL) RebasesSlices() bool { return false }

func (s *RTL) TypeForConstant(tree *ir.Tree, value ir.NodeID) ir.NodeID {
	n := tree.Node(value)
	if n == nil {
		return ir.NoNode
	}
	f := ir.NewFactory(tree)
	switch n.Data.(type) {
	case *ir.BitValueData:
		return f.SimpleType(ir.ClassTypeBit, ir.NoNode, false, true)
	case *ir.BoolValueData:
		return f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, true)
	case *ir.IntValueData:
		return f.SimpleType(ir.ClassTypeInt, ir.NoNode, true, true)
	case *ir.BitvectorValueData:
		d := n.Data.(*ir.BitvectorValueData)
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

// MapType canonicalizes t into RTL's own vocabulary: Bool becomes a new Bit
// type; every other type, span-bearing ones included, is returned as the same
// node with its bounds untouched, since RTL does not rebase.
func (s *RTL) MapType(tree *ir.Tree, t ir.NodeID) ir.NodeID {
	n := tree.Node(t)
	if n == nil {
		return ir.NoNode
	}
	f := ir.NewFactory(tree)
	switch n.Data.ClassID() {
	case ir.ClassTypeBool:
		// RTL has no native boolean signal; std_logic_1164's Bit stands in.
		return f.SimpleType(ir.ClassTypeBit, ir.NoNode, false, false)
	default:
		// RTL does not rebase, so every other kind (including the
		// span-bearing Signed/Unsigned/Bitvector family) passes through
		// with its bounds exactly as cloned: there is nothing to canonicalize.
		return t
	}
}

func (s *RTL) ExprType(tree *ir.Tree, op1 ir.NodeID, op ir.Operator, op2 ir.NodeID, ctx ExprContext) ExprTypeResult {
	t1 := tree.Node(op1)
	if t1 == nil {
		return ExprTypeResult{}
	}
	switch {
	case op.IsRelational():
		return ExprTypeResult{Type: s.boolType(tree), Precision: 1, OK: true}
	case op.IsLogical():
		return ExprTypeResult{Type: s.bitType(tree), Precision: 1, OK: true}
	case op.IsShiftOrRotate(), op.IsUnary():
		p := widthOf(tree, t1.Data)
		return ExprTypeResult{Type: op1, Precision: p, OK: true}
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

func widthOf(tree *ir.Tree, p ir.Payload) int {
	spanned, ok := p.(ir.TypeSpanned)
	if !ok {
		return 1
	}
	w, _, ok := spanWidth(tree, spanned.SpanRange())
	if !ok {
		return 1
	}
	return w
}

func (s *RTL) boolType(tree *ir.Tree) ir.NodeID {
	return ir.NewFactory(tree).SimpleType(ir.ClassTypeBool, ir.NoNode, false, false)
}
func (s *RTL) bitType(tree *ir.Tree) ir.NodeID {
	return ir.NewFactory(tree).SimpleType(ir.ClassTypeBit, ir.NoNode, false, false)
}

// MapOperator is mostly identity: the unified Operator enum already names
// the same ~45 operations across every semantics, so the only retargeting a
// semantics ever performs is onto an operator outside its own vocabulary.
// RTL never rejects an operator outright, so this is the identity map;
// rendering an operator to its source-language spelling (e.g. sll -> "<<")
// is the concern of a textual backend this module does not implement.
func (s *RTL) MapOperator(op ir.Operator, op1, op2, mapped1, mapped2 ir.NodeID) ir.Operator {
	return op
}

func (s *RTL) SuggestedTypeForOp(tree *ir.Tree, precision int, op ir.Operator, other ir.NodeID, ctx ExprContext, isOperand1 bool) ir.NodeID {
	f := ir.NewFactory(tree)
	if op.IsRelational() || op.IsLogical() {
		return f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, false)
	}
	return f.SimpleType(ir.ClassTypeBitvector, buildSpan(f, precision), false, false)
}

func (s *RTL) CheckCondition(tree *ir.Tree, t ir.NodeID, ctx ExprContext) bool {
	n := tree.Node(t)
	if n == nil {
		return false
	}
	// RTL's If/When condition accepts either a Bool or, in Verilog-style
	// logic, a single Bit treated as a ternary (leave-untouched case of
	// the condition repair).
	switch n.Data.ClassID() {
	case ir.ClassTypeBool, ir.ClassTypeBit:
		return true
	}
	return false
}

func (s *RTL) ExplicitCast(tree *ir.Tree, value, target, source ir.NodeID) ir.NodeID {
	tn := tree.Node(target)
	if tn == nil {
		return ir.NoNode
	}
	if tn.Data.ClassID() == ir.ClassTypeBool {
		return s.ExplicitBoolConversion(tree, value)
	}
	return ir.NewFactory(tree).Cast(value, target)
}

func (s *RTL) ExplicitBoolConversion(tree *ir.Tree, value ir.NodeID) ir.NodeID {
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

func typeOf(p ir.Payload) ir.NodeID {
	for _, fl := range p.Fields() {
		if fl.Name == "Type" {
			return fl.Get()
		}
	}
	return ir.NoNode
}

func (s *RTL) TypeDefaultValue(tree *ir.Tree, typ ir.NodeID, ctx ExprContext) ir.NodeID {
	return zeroValue(ir.NewFactory(tree), tree, typ)
}

func (s *RTL) IsTypeAllowedAsPort(tree *ir.Tree, t ir.NodeID) (ir.NodeID, bool) {
	n := tree.Node(t)
	if n == nil {
		return ir.NoNode, false
	}
	switch n.Data.ClassID() {
	case ir.ClassTypeFile, ir.ClassTypePointer:
		return ir.NoNode, false
	}
	return t, true
}

func (s *RTL) IsTypeAllowedAsBound(tree *ir.Tree, t ir.NodeID) (ir.NodeID, bool) {
	n := tree.Node(t)
	if n == nil {
		return ir.NoNode, false
	}
	if n.Data.ClassID() == ir.ClassTypeInt {
		return t, true
	}
	return ir.NewFactory(tree).SimpleType(ir.ClassTypeInt, ir.NoNode, true, true), true
}

// rtlStdLogic1164 is the one bundled library this semantics simplifies
// symbols for/against: ieee.std_logic_1164, home of rising_edge/falling_edge.
const rtlStdLogic1164 = "ieee.std_logic_1164"

func (s *RTL) StandardLibrary(tree *ir.Tree, name string) ir.NodeID {
	if name != rtlStdLogic1164 {
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
	id := tree.Alloc(ir.Node{Kind: ir.ClassLibraryDef, Data: &ir.LibraryDefData{
		Standard: true,
	}})
	cache[name] = id
	return id
}

func (s *RTL) MapStandardSymbol(tree *ir.Tree, decl ir.NodeID, key SymbolKey, srcSem Language) (SymbolMapping, SymbolAction) {
	if key.Library == rtlStdLogic1164 {
		// A reference to RTL's own bundled library coming from RTL needs
		// no mapping at all; callers only route here cross-semantics.
		return SymbolMapping{MappedName: key.Name, Action: ActionMapKeep, LibrariesToInclude: []string{rtlStdLogic1164}}, ActionMapKeep
	}
	return SymbolMapping{}, ActionUnknown
}

func (s *RTL) SimplifiedSymbol(tree *ir.Tree, key SymbolKey, srcNode ir.NodeID) ir.NodeID {
	return ir.NoNode
}

func (s *RTL) MapStandardFilename(lib string) string {
	if lib == rtlStdLogic1164 {
		return "std_logic_1164.vhd"
	}
	return lib
}

func (s *RTL) TypeSize(tree *ir.Tree, t ir.NodeID) (int, bool) {
	n := tree.Node(t)
	if n == nil {
		return 0, false
	}
	switch n.Data.ClassID() {
	case ir.ClassTypeBit, ir.ClassTypeBool:
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

func (s *RTL) TypeSigned(tree *ir.Tree, t ir.NodeID) bool {
	return isSignedType(tree, t)
}
