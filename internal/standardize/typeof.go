package standardize

import (
	"hif/internal/ir"
	"hif/internal/semantics"
)

// typeOf resolves the type of an already-cloned destination-tree value
// node. Unlike a full inference pass this
// only ever needs to answer "what type does this already-standardized
// operand have", so it walks the handful of node kinds repair() actually
// casts or compares: literals carry their own syntactic type, references
// resolve through their declaration, and compound value shapes recurse into
// whichever child determines the whole's type.
func (e *Engine) typeOf(id ir.NodeID) ir.NodeID {
	n := e.dstTree.Node(id)
	if n == nil {
		return ir.NoNode
	}
	switch d := n.Data.(type) {
	case *ir.BitValueData:
		return firstValid(d.Type, e.dstSem.TypeForConstant(e.dstTree, id))
	case *ir.BitvectorValueData:
		return firstValid(d.Type, e.dstSem.TypeForConstant(e.dstTree, id))
	case *ir.BoolValueData:
		return firstValid(d.Type, e.dstSem.TypeForConstant(e.dstTree, id))
	case *ir.CharValueData:
		return firstValid(d.Type, e.dstSem.TypeForConstant(e.dstTree, id))
	case *ir.IntValueData:
		return firstValid(d.Type, e.dstSem.TypeForConstant(e.dstTree, id))
	case *ir.RealValueData:
		return firstValid(d.Type, e.dstSem.TypeForConstant(e.dstTree, id))
	case *ir.StringValueData:
		return firstValid(d.Type, e.dstSem.TypeForConstant(e.dstTree, id))
	case *ir.TimeValueData:
		return firstValid(d.Type, e.dstSem.TypeForConstant(e.dstTree, id))
	case *ir.CastData:
		return d.Type
	case *ir.IdentifierData:
		return e.declaredType(d.Declaration)
	case *ir.FunctionCallData:
		return e.declaredType(d.Declaration)
	case *ir.MemberData:
		return e.elementTypeOf(e.typeOf(d.Prefix))
	case *ir.SliceData:
		return e.slicedTypeOf(d)
	case *ir.FieldReferenceData:
		return e.fieldTypeOf(e.typeOf(d.Prefix), d.Name)
	case *ir.ExpressionData:
		op1 := e.typeOf(d.Op1)
		op2 := ir.NoNode
		if d.Op2.IsValid() {
			op2 = e.typeOf(d.Op2)
		}
		res := e.dstSem.ExprType(e.dstTree, op1, d.Op, op2, semantics.ContextNone)
		if res.OK {
			return res.Type
		}
		return ir.NoNode
	case *ir.WhenData:
		if d.Default.IsValid() {
			return e.typeOf(d.Default)
		}
		if d.Alts.Len() > 0 {
			return e.typeOf(e.altValue(d.Alts.At(0)))
		}
	case *ir.WithData:
		if d.Default.IsValid() {
			return e.typeOf(d.Default)
		}
		if d.Alts.Len() > 0 {
			return e.typeOf(e.altValue(d.Alts.At(0)))
		}
	case *ir.AggregateData:
		if d.Others.IsValid() {
			return e.typeOf(e.altValue(d.Others))
		}
		if d.Alts.Len() > 0 {
			return e.typeOf(e.altValue(d.Alts.At(0)))
		}
	}
	return ir.NoNode
}

func firstValid(a, b ir.NodeID) ir.NodeID {
	if a.IsValid() {
		return a
	}
	return b
}

// declaredType returns decl's declared/return Type field, recognizing both
// a DataDeclaration's Type field and a Function's ReturnType.
func (e *Engine) declaredType(decl ir.NodeID) ir.NodeID {
	n := e.dstTree.Node(decl)
	if n == nil {
		return ir.NoNode
	}
	if fd, ok := n.Data.(*ir.FunctionData); ok {
		return fd.ReturnType
	}
	if f, ok := findField(n.Data, "Type"); ok {
		return f.Get()
	}
	return ir.NoNode
}

func (e *Engine) elementTypeOf(t ir.NodeID) ir.NodeID {
	n := e.dstTree.Node(t)
	if n == nil {
		return ir.NoNode
	}
	switch d := n.Data.(type) {
	case *ir.TypeArrayData:
		return d.ElementType
	case *ir.TypeBitvectorData, *ir.TypeSignedData, *ir.TypeUnsignedData:
		return ir.NewFactory(e.dstTree).SimpleType(ir.ClassTypeBit, ir.NoNode, false, false)
	}
	return ir.NoNode
}

// slicedTypeOf gives a Slice the same concrete kind as its prefix's type,
// with a fresh span taken from the slice's own range rather than the
// prefix's, used only as an operand type probe, never installed as a
// node's stored Type.
func (e *Engine) slicedTypeOf(d *ir.SliceData) ir.NodeID {
	prefixType := e.typeOf(d.Prefix)
	n := e.dstTree.Node(prefixType)
	if n == nil {
		return ir.NoNode
	}
	switch td := n.Data.(type) {
	case *ir.TypeBitvectorData:
		return ir.NewFactory(e.dstTree).SimpleType(ir.ClassTypeBitvector, d.Span, td.Signed(), td.Constexpr())
	case *ir.TypeSignedData:
		return ir.NewFactory(e.dstTree).SimpleType(ir.ClassTypeSigned, d.Span, true, td.Constexpr())
	case *ir.TypeUnsignedData:
		return ir.NewFactory(e.dstTree).SimpleType(ir.ClassTypeUnsigned, d.Span, false, td.Constexpr())
	case *ir.TypeArrayData:
		probe := &ir.TypeArrayData{ElementType: td.ElementType, Span: d.Span, Signed: td.Signed, Constexpr: td.Constexpr}
		return e.dstTree.Alloc(ir.Node{Kind: ir.ClassTypeArray, Data: probe})
	}
	return prefixType
}

func (e *Engine) fieldTypeOf(recType ir.NodeID, name string) ir.NodeID {
	n := e.dstTree.Node(recType)
	if n == nil {
		return ir.NoNode
	}
	rd, ok := n.Data.(*ir.TypeRecordData)
	if !ok {
		return ir.NoNode
	}
	for i := 0; i < rd.Fields_.Len(); i++ {
		fn := e.dstTree.Node(rd.Fields_.At(i))
		if fn == nil {
			continue
		}
		named, ok := ir.AsNamed(fn)
		if !ok || named.GetName() != name {
			continue
		}
		if f, ok := findField(fn.Data, "Type"); ok {
			return f.Get()
		}
	}
	return ir.NoNode
}

// altValue extracts the scalar Value field carried by an AggregateAlt,
// WhenAlt or WithAlt, the three Alt kinds whose "value" repair.go and
// typeOf both need without caring which kind of Alt it is.
func (e *Engine) altValue(alt ir.NodeID) ir.NodeID {
	n := e.dstTree.Node(alt)
	if n == nil {
		return ir.NoNode
	}
	switch d := n.Data.(type) {
	case *ir.AggregateAltData:
		return d.Value
	case *ir.WhenAltData:
		return d.Value
	case *ir.WithAltData:
		return d.Value
	}
	return alt
}

func findField(p ir.Payload, name string) (ir.FieldSlot, bool) {
	for _, f := range p.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return ir.FieldSlot{}, false
}
