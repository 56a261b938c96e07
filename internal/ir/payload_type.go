package ir

// TypeVariant further tags a Type's role: a literal's syntactic type and a
// semantics-cache type both use the same node kinds, but in a structural
// tree position a Type always carries a variant explaining how it was
// produced (declared, inferred, a bound probe, ...).
type TypeVariant uint8

const (
	VariantDeclared TypeVariant = iota
	VariantInferred
	VariantBoundProbe
)

// simpleTypeBase is embedded by every SimpleType leaf; all share the same
// shape (a Span for bit-vector-like kinds, a Constexpr flag, a signedness
// flag meaningful only for Int/Signed/Unsigned).
type simpleTypeBase struct {
	Span        NodeID // a Range node; NoNode for scalar kinds (Bool, Char, Event, Time)
	Constexpr_  bool
	Signed_     bool
	Variant_    TypeVariant
}

func (b *simpleTypeBase) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Span", Get: func() NodeID { return b.Span }, Set: func(id NodeID) { b.Span = id }}}
}
func (b *simpleTypeBase) Lists() []ListSlot      { return nil }
func (b *simpleTypeBase) SpanRange() NodeID       { return b.Span }
func (b *simpleTypeBase) SetSpanRange(id NodeID)  { b.Span = id }

// SimpleTypeScalars exposes the scalar fields every SimpleType leaf shares
// through simpleTypeBase, so code outside this package (the XML codec) can
// read/write them without a type switch over all eleven leaf types.
type SimpleTypeScalars interface {
	Constexpr() bool
	SetConstexpr(bool)
	Signed() bool
	SetSigned(bool)
	Variant() TypeVariant
	SetVariant(TypeVariant)
}

func (b *simpleTypeBase) Constexpr() bool             { return b.Constexpr_ }
func (b *simpleTypeBase) SetConstexpr(v bool)         { b.Constexpr_ = v }
func (b *simpleTypeBase) Signed() bool                { return b.Signed_ }
func (b *simpleTypeBase) SetSigned(v bool)             { b.Signed_ = v }
func (b *simpleTypeBase) Variant() TypeVariant         { return b.Variant_ }
func (b *simpleTypeBase) SetVariant(v TypeVariant)     { b.Variant_ = v }

type TypeBitData struct{ simpleTypeBase }

func (d *TypeBitData) ClassID() ClassID { return ClassTypeBit }

type TypeBoolData struct{ simpleTypeBase }

func (d *TypeBoolData) ClassID() ClassID { return ClassTypeBool }

type TypeCharData struct{ simpleTypeBase }

func (d *TypeCharData) ClassID() ClassID { return ClassTypeChar }

type TypeIntData struct{ simpleTypeBase }

func (d *TypeIntData) ClassID() ClassID { return ClassTypeInt }

type TypeRealData struct{ simpleTypeBase }

func (d *TypeRealData) ClassID() ClassID { return ClassTypeReal }

type TypeTimeData struct{ simpleTypeBase }

func (d *TypeTimeData) ClassID() ClassID { return ClassTypeTime }

type TypeEventData struct{ simpleTypeBase }

func (d *TypeEventData) ClassID() ClassID { return ClassTypeEvent }

type TypeStringData struct{ simpleTypeBase }

func (d *TypeStringData) ClassID() ClassID { return ClassTypeString }

type TypeSignedData struct{ simpleTypeBase }

func (d *TypeSignedData) ClassID() ClassID { return ClassTypeSigned }

type TypeUnsignedData struct{ simpleTypeBase }

func (d *TypeUnsignedData) ClassID() ClassID { return ClassTypeUnsigned }

type TypeBitvectorData struct{ simpleTypeBase }

func (d *TypeBitvectorData) ClassID() ClassID { return ClassTypeBitvector }

// CompositeType family.

// TypeArrayData is an array of ElementType with a Span giving its bounds.
type TypeArrayData struct {
	ElementType NodeID
	Span        NodeID
	Signed      bool
	Constexpr   bool
}

func (d *TypeArrayData) ClassID() ClassID { return ClassTypeArray }
func (d *TypeArrayData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "ElementType", Get: func() NodeID { return d.ElementType }, Set: func(id NodeID) { d.ElementType = id }},
		{Name: "Span", Get: func() NodeID { return d.Span }, Set: func(id NodeID) { d.Span = id }},
	}
}
func (d *TypeArrayData) Lists() []ListSlot     { return nil }
func (d *TypeArrayData) SpanRange() NodeID      { return d.Span }
func (d *TypeArrayData) SetSpanRange(id NodeID) { d.Span = id }

// TypeFileData is a file-of-ElementType type.
type TypeFileData struct {
	ElementType NodeID
}

func (d *TypeFileData) ClassID() ClassID { return ClassTypeFile }
func (d *TypeFileData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "ElementType", Get: func() NodeID { return d.ElementType }, Set: func(id NodeID) { d.ElementType = id }}}
}
func (d *TypeFileData) Lists() []ListSlot { return nil }

// TypePointerData is a pointer-to-ElementType type.
type TypePointerData struct {
	ElementType NodeID
}

func (d *TypePointerData) ClassID() ClassID { return ClassTypePointer }
func (d *TypePointerData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "ElementType", Get: func() NodeID { return d.ElementType }, Set: func(id NodeID) { d.ElementType = id }}}
}
func (d *TypePointerData) Lists() []ListSlot { return nil }

// TypeReferenceData (the composite "Reference" kind, C++ T&) wraps ElementType.
type TypeReferenceData struct {
	ElementType NodeID
}

func (d *TypeReferenceData) ClassID() ClassID { return ClassTypeReference }
func (d *TypeReferenceData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "ElementType", Get: func() NodeID { return d.ElementType }, Set: func(id NodeID) { d.ElementType = id }}}
}
func (d *TypeReferenceData) Lists() []ListSlot { return nil }

// ScopedType family.

// TypeEnumData is an enumeration naming its EnumValue declarations.
type TypeEnumData struct {
	Name   string
	Values BList // of EnumValue
}

func (d *TypeEnumData) ClassID() ClassID { return ClassTypeEnum }
func (d *TypeEnumData) GetName() string  { return d.Name }
func (d *TypeEnumData) SetName(n string) { d.Name = n }
func (d *TypeEnumData) Fields() []FieldSlot { return nil }
func (d *TypeEnumData) Lists() []ListSlot   { return []ListSlot{{Name: "Values", List: &d.Values}} }

// TypeRecordData is a record/struct naming its Field declarations.
type TypeRecordData struct {
	Name   string
	Fields_ BList // of Field (named Fields_ to avoid clashing with the Fields() method)
	Packed bool
}

func (d *TypeRecordData) ClassID() ClassID     { return ClassTypeRecord }
func (d *TypeRecordData) GetName() string      { return d.Name }
func (d *TypeRecordData) SetName(n string)     { d.Name = n }
func (d *TypeRecordData) Fields() []FieldSlot  { return nil }
func (d *TypeRecordData) Lists() []ListSlot    { return []ListSlot{{Name: "Fields", List: &d.Fields_}} }

// ReferencedType family.

// TypeLibraryData names an imported Library (standard or user); matches the
// "Library" node used both as an include and as a type-position reference.
type TypeLibraryData struct {
	Name       string
	Standard   bool
	System_    bool // "system" library convention, e.g. angle-bracket include
	Declaration NodeID
}

func (d *TypeLibraryData) ClassID() ClassID       { return ClassTypeLibrary }
func (d *TypeLibraryData) GetName() string        { return d.Name }
func (d *TypeLibraryData) SetName(n string)       { d.Name = n }
func (d *TypeLibraryData) ResolvesTo() NodeID      { return d.Declaration }
func (d *TypeLibraryData) SetResolvesTo(id NodeID) { d.Declaration = id }
func (d *TypeLibraryData) Fields() []FieldSlot     { return nil }
func (d *TypeLibraryData) Lists() []ListSlot       { return nil }

// TypeReferenceDeclData names a TypeDef elsewhere in the tree (or a standard
// library's bundled type).
type TypeReferenceDeclData struct {
	Name        string
	Library     string // prefix chain, e.g. "AA::BB"
	Declaration NodeID
	TemplateAssigns BList
}

func (d *TypeReferenceDeclData) ClassID() ClassID       { return ClassTypeReferenceDecl }
func (d *TypeReferenceDeclData) GetName() string        { return d.Name }
func (d *TypeReferenceDeclData) SetName(n string)       { d.Name = n }
func (d *TypeReferenceDeclData) ResolvesTo() NodeID      { return d.Declaration }
func (d *TypeReferenceDeclData) SetResolvesTo(id NodeID) { d.Declaration = id }
func (d *TypeReferenceDeclData) Fields() []FieldSlot     { return nil }
func (d *TypeReferenceDeclData) Lists() []ListSlot {
	return []ListSlot{{Name: "TemplateAssigns", List: &d.TemplateAssigns}}
}

// TypeViewReferenceData names a View (component/entity architecture) used as
// the type of an Instance.
type TypeViewReferenceData struct {
	Name            string
	DesignUnit      string
	Declaration     NodeID
	TemplateAssigns BList
}

func (d *TypeViewReferenceData) ClassID() ClassID       { return ClassTypeViewReference }
func (d *TypeViewReferenceData) GetName() string        { return d.Name }
func (d *TypeViewReferenceData) SetName(n string)       { d.Name = n }
func (d *TypeViewReferenceData) ResolvesTo() NodeID      { return d.Declaration }
func (d *TypeViewReferenceData) SetResolvesTo(id NodeID) { d.Declaration = id }
func (d *TypeViewReferenceData) Fields() []FieldSlot     { return nil }
func (d *TypeViewReferenceData) Lists() []ListSlot {
	return []ListSlot{{Name: "TemplateAssigns", List: &d.TemplateAssigns}}
}
