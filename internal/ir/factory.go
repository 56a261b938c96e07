package ir

import "hif/internal/source"

// Factory is a per-kind construction surface over a Tree (Span, IntConst,
// Cast, Assign, ...): flat constructor methods that wrap Tree.Alloc and wire
// the Object envelope.
// The Standardization Engine, Cast Manager and Symbol Mapper use it to
// synthesize casts, default values and rebased spans without manually
// wiring every Object field by hand.
type Factory struct {
	Tree *Tree
}

// NewFactory returns a Factory writing into tree.
func NewFactory(tree *Tree) *Factory { return &Factory{Tree: tree} }

func (f *Factory) alloc(kind ClassID, data Payload) NodeID {
	return f.Tree.Alloc(Node{Kind: kind, Data: data})
}

// Span builds a Range node covering [left, right] with the given direction.
func (f *Factory) Span(left, right NodeID, dir Direction) NodeID {
	id := f.alloc(ClassRange, &RangeData{LeftBound: left, RightBound: right, Dir: dir})
	f.adopt(id, left, right)
	return id
}

func (f *Factory) adopt(parent NodeID, children ...NodeID) {
	for _, c := range children {
		if c.IsValid() {
			if n := f.Tree.Node(c); n != nil {
				n.Parent = parent
			}
		}
	}
}

// IntConst builds a plain IntValue literal of the given width-agnostic value.
func (f *Factory) IntConst(v int64, typ NodeID) NodeID {
	id := f.alloc(ClassIntValue, &IntValueData{Value: v, Type: typ})
	f.adopt(id, typ)
	return id
}

// BoolConst builds a BoolValue literal.
func (f *Factory) BoolConst(v bool, typ NodeID) NodeID {
	id := f.alloc(ClassBoolValue, &BoolValueData{Value: v, Type: typ})
	f.adopt(id, typ)
	return id
}

// BitConst builds a BitValue literal carrying one 9-valued bit.
func (f *Factory) BitConst(v BitConstant, typ NodeID) NodeID {
	id := f.alloc(ClassBitValue, &BitValueData{Value: v, Type: typ})
	f.adopt(id, typ)
	return id
}

// SimpleType allocates one of the SimpleType leaves (Bit, Bool, Int, ...).
// kind must satisfy ClassID.IsSimpleType; span may be NoNode for scalar
// kinds. This is the constructor the Standardization Engine's type-remap
// repair calls when a destination semantics requires a plain substitute type
// rather than a structural rebuild.
func (f *Factory) SimpleType(kind ClassID, span NodeID, signed, constexpr bool) NodeID {
	base := simpleTypeBase{Span: span, Signed_: signed, Constexpr_: constexpr, Variant_: VariantInferred}
	var data Payload
	switch kind {
	case ClassTypeBit:
		data = &TypeBitData{base}
	case ClassTypeBool:
		data = &TypeBoolData{base}
	case ClassTypeChar:
		data = &TypeCharData{base}
	case ClassTypeInt:
		data = &TypeIntData{base}
	case ClassTypeReal:
		data = &TypeRealData{base}
	case ClassTypeTime:
		data = &TypeTimeData{base}
	case ClassTypeEvent:
		data = &TypeEventData{base}
	case ClassTypeString:
		data = &TypeStringData{base}
	case ClassTypeSigned:
		data = &TypeSignedData{base}
	case ClassTypeUnsigned:
		data = &TypeUnsignedData{base}
	case ClassTypeBitvector:
		data = &TypeBitvectorData{base}
	default:
		panic("ir: Factory.SimpleType called with non-simple kind " + kind.String())
	}
	id := f.alloc(kind, data)
	f.adopt(id, span)
	return id
}

// Cast wraps value in a Cast to destType. This is the single synthesis point
// the Cast Manager and Standardization Engine use for every inserted cast;
// callers are expected to record the pre-cast source type in a
// castmap.CastMap keyed by the returned NodeID.
func (f *Factory) Cast(value, destType NodeID) NodeID {
	id := f.alloc(ClassCast, &CastData{Type: destType, Value: value})
	f.adopt(id, destType, value)
	return id
}

// Expression builds a binary or unary Expression node. op2 may be NoNode for
// a unary operator (e.g. OpNot, OpBitNot, OpAbs).
func (f *Factory) Expression(op Operator, op1, op2 NodeID) NodeID {
	id := f.alloc(ClassExpression, &ExpressionData{Op: op, Op1: op1, Op2: op2})
	f.adopt(id, op1, op2)
	return id
}

// Identifier builds a reference to decl by name.
func (f *Factory) Identifier(name string, decl NodeID) NodeID {
	return f.alloc(ClassIdentifier, &IdentifierData{Name: name, Declaration: decl})
}

// Assign builds a target := source action.
func (f *Factory) Assign(target, source NodeID, delta bool) NodeID {
	id := f.alloc(ClassAssign, &AssignData{Target: target, Source: source, Delta: delta})
	f.adopt(id, target, source)
	return id
}

// TypeReferenceDecl builds a reference to a user TypeDef, optionally prefixed
// by a library chain.
func (f *Factory) TypeReferenceDecl(name, library string, decl NodeID) NodeID {
	return f.alloc(ClassTypeReferenceDecl, &TypeReferenceDeclData{Name: name, Library: library, Declaration: decl})
}

// WithSpan attaches a CodeInfo (file/line/column provenance) to an already
// allocated node. Synthesized nodes default to a zero CodeInfo; passes that
// want diagnostics to point at the originating source construct call this
// with the span of whatever node triggered the synthesis.
func (f *Factory) WithSpan(id NodeID, span source.Span, line, column uint32) NodeID {
	if n := f.Tree.Node(id); n != nil {
		n.Code = CodeInfo{Span: span, Line: line, Column: column}
	}
	return id
}
