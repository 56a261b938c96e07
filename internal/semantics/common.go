package semantics

import "hif/internal/ir"

// evalConstInt extracts a compile-time integer value from id, recognizing
// plain IntValue literals and IntValues wrapped in a Cast (the shape the
// Standardization Engine itself produces). Anything else is not a constant
// this package can reason about (the bound-handling repairs only
// ever operate on literal bounds).
func evalConstInt(tree *ir.Tree, id ir.NodeID) (int64, bool) {
	n := tree.Node(id)
	if n == nil {
		return 0, false
	}
	switch d := n.Data.(type) {
	case *ir.IntValueData:
		return d.Value, true
	case *ir.CastData:
		return evalConstInt(tree, d.Value)
	default:
		return 0, false
	}
}

// spanWidth computes a Range node's bit width (|right-left|+1) and its
// minimum bound. RTL and TLM use it for TypeSize (the precision comparator's
// "size" of a span-bearing type), RTL for its expression widths, and TLM's
// MapType for rebasing spans.
func spanWidth(tree *ir.Tree, rangeID ir.NodeID) (width int, min int64, ok bool) {
	n := tree.Node(rangeID)
	if n == nil {
		return 0, 0, false
	}
	rd, isRange := n.Data.(*ir.RangeData)
	if !isRange {
		return 0, 0, false
	}
	left, lok := evalConstInt(tree, rd.LeftBound)
	right, rok := evalConstInt(tree, rd.RightBound)
	if !lok || !rok {
		return 0, 0, false
	}
	if right < left {
		left, right = right, left
	}
	w := right - left + 1
	if w < 0 {
		return 0, 0, false
	}
	return int(w), left, true
}

// spanOf returns the Range child of t, if t carries one via the
// TypeSpanned feature.
func spanOf(tree *ir.Tree, t ir.NodeID) (ir.NodeID, bool) {
	n := tree.Node(t)
	if n == nil {
		return ir.NoNode, false
	}
	spanned, ok := ir.AsTypeSpanned(n)
	if !ok {
		return ir.NoNode, false
	}
	span := spanned.SpanRange()
	return span, span.IsValid()
}

// isSignedType reports t's simpleTypeBase-embedded Signed flag, for the
// kinds that carry one. Non-simple types are reported unsigned.
func isSignedType(tree *ir.Tree, t ir.NodeID) bool {
	n := tree.Node(t)
	if n == nil {
		return false
	}
	switch d := n.Data.(type) {
	case *ir.TypeIntData:
		return d.Signed()
	case *ir.TypeSignedData:
		return true
	case *ir.TypeUnsignedData:
		return false
	case *ir.TypeBitvectorData:
		return d.Signed()
	}
	return false
}

// buildSpan allocates a Range [0, width-1] downto, the canonical rebased
// shape a rebasing semantics gives every vector type it maps.
func buildSpan(f *ir.Factory, width int) ir.NodeID {
	if width <= 0 {
		return ir.NoNode
	}
	intType := f.SimpleType(ir.ClassTypeInt, ir.NoNode, false, true)
	left := f.IntConst(int64(width-1), intType)
	right := f.IntConst(0, intType)
	return f.Span(left, right, ir.DirDownto)
}

// zeroValue builds a default/zero literal matching typ's concrete kind,
// shared by both semantics' TypeDefaultValue and ExplicitBoolConversion.
func zeroValue(f *ir.Factory, tree *ir.Tree, typ ir.NodeID) ir.NodeID {
	n := tree.Node(typ)
	if n == nil {
		return ir.NoNode
	}
	switch n.Data.ClassID() {
	case ir.ClassTypeBool:
		return f.BoolConst(false, typ)
	case ir.ClassTypeBit:
		return f.BitConst(ir.Bit0, typ)
	case ir.ClassTypeInt, ir.ClassTypeSigned, ir.ClassTypeUnsigned, ir.ClassTypeBitvector:
		return f.IntConst(0, typ)
	default:
		return ir.NoNode
	}
}
