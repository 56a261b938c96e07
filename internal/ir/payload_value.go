package ir

// ConstValue leaves. Each carries an optional *syntactic* Type node
// (either Type is NoNode, or typeForConstant(c) under the
// current semantics equals it, up to span).

// BitValueData is a single-bit literal.
type BitValueData struct {
	Value BitConstant
	Type  NodeID
}

func (d *BitValueData) ClassID() ClassID { return ClassBitValue }
func (d *BitValueData) Fields() []FieldSlot {
	return []FieldSlot{typeField(&d.Type)}
}
func (d *BitValueData) Lists() []ListSlot { return nil }

// BitvectorValueData is a bit-vector literal, e.g. VHDL's "0001".
type BitvectorValueData struct {
	Value string // e.g. "0001", msb-first
	Type  NodeID
}

func (d *BitvectorValueData) ClassID() ClassID        { return ClassBitvectorValue }
func (d *BitvectorValueData) Fields() []FieldSlot      { return []FieldSlot{typeField(&d.Type)} }
func (d *BitvectorValueData) Lists() []ListSlot        { return nil }

// BoolValueData is a boolean literal.
type BoolValueData struct {
	Value bool
	Type  NodeID
}

func (d *BoolValueData) ClassID() ClassID   { return ClassBoolValue }
func (d *BoolValueData) Fields() []FieldSlot { return []FieldSlot{typeField(&d.Type)} }
func (d *BoolValueData) Lists() []ListSlot   { return nil }

// CharValueData is a character literal.
type CharValueData struct {
	Value rune
	Type  NodeID
}

func (d *CharValueData) ClassID() ClassID   { return ClassCharValue }
func (d *CharValueData) Fields() []FieldSlot { return []FieldSlot{typeField(&d.Type)} }
func (d *CharValueData) Lists() []ListSlot   { return nil }

// IntValueData is an integer literal.
type IntValueData struct {
	Value int64
	Type  NodeID
}

func (d *IntValueData) ClassID() ClassID   { return ClassIntValue }
func (d *IntValueData) Fields() []FieldSlot { return []FieldSlot{typeField(&d.Type)} }
func (d *IntValueData) Lists() []ListSlot   { return nil }

// RealValueData is a floating-point literal.
type RealValueData struct {
	Value float64
	Type  NodeID
}

func (d *RealValueData) ClassID() ClassID   { return ClassRealValue }
func (d *RealValueData) Fields() []FieldSlot { return []FieldSlot{typeField(&d.Type)} }
func (d *RealValueData) Lists() []ListSlot   { return nil }

// StringValueData is a string literal.
type StringValueData struct {
	Value    string
	IsPlain  bool // not a HIF-internal generated literal
	Type     NodeID
}

func (d *StringValueData) ClassID() ClassID   { return ClassStringValue }
func (d *StringValueData) Fields() []FieldSlot { return []FieldSlot{typeField(&d.Type)} }
func (d *StringValueData) Lists() []ListSlot   { return nil }

// TimeValueData is a simulation-time literal.
type TimeValueData struct {
	Value float64
	Unit  string // e.g. "ns", "ps"
	Type  NodeID
}

func (d *TimeValueData) ClassID() ClassID   { return ClassTimeValue }
func (d *TimeValueData) Fields() []FieldSlot { return []FieldSlot{typeField(&d.Type)} }
func (d *TimeValueData) Lists() []ListSlot   { return nil }

func typeField(slot *NodeID) FieldSlot {
	return FieldSlot{
		Name: "Type",
		Get:  func() NodeID { return *slot },
		Set:  func(id NodeID) { *slot = id },
	}
}

// PrefixedReference family: FieldReference, Member, Slice. All share a
// Prefix (the value being indexed/sliced/field-accessed).

// FieldReferenceData is record-field access: prefix.FieldName.
type FieldReferenceData struct {
	Name   string
	Prefix NodeID
}

func (d *FieldReferenceData) ClassID() ClassID { return ClassFieldReference }
func (d *FieldReferenceData) GetName() string  { return d.Name }
func (d *FieldReferenceData) SetName(n string) { d.Name = n }
func (d *FieldReferenceData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Prefix", Get: func() NodeID { return d.Prefix }, Set: func(id NodeID) { d.Prefix = id }}}
}
func (d *FieldReferenceData) Lists() []ListSlot { return nil }

// MemberData is array/vector indexing: prefix[index].
type MemberData struct {
	Prefix NodeID
	Index  NodeID
}

func (d *MemberData) ClassID() ClassID { return ClassMember }
func (d *MemberData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Prefix", Get: func() NodeID { return d.Prefix }, Set: func(id NodeID) { d.Prefix = id }},
		{Name: "Index", Get: func() NodeID { return d.Index }, Set: func(id NodeID) { d.Index = id }},
	}
}
func (d *MemberData) Lists() []ListSlot { return nil }

// SliceData is a range slice: prefix[span].
type SliceData struct {
	Prefix NodeID
	Span   NodeID // a Range node
}

func (d *SliceData) ClassID() ClassID { return ClassSlice }
func (d *SliceData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Prefix", Get: func() NodeID { return d.Prefix }, Set: func(id NodeID) { d.Prefix = id }},
		{Name: "Span", Get: func() NodeID { return d.Span }, Set: func(id NodeID) { d.Span = id }},
	}
}
func (d *SliceData) Lists() []ListSlot      { return nil }
func (d *SliceData) SpanRange() NodeID      { return d.Span }
func (d *SliceData) SetSpanRange(id NodeID) { d.Span = id }

// IdentifierData names a symbol reference resolving to a Declaration.
type IdentifierData struct {
	Name       string
	Declaration NodeID // weak; resolved/cached by the Reference Map
}

func (d *IdentifierData) ClassID() ClassID      { return ClassIdentifier }
func (d *IdentifierData) GetName() string       { return d.Name }
func (d *IdentifierData) SetName(n string)      { d.Name = n }
func (d *IdentifierData) ResolvesTo() NodeID     { return d.Declaration }
func (d *IdentifierData) SetResolvesTo(id NodeID) { d.Declaration = id }
func (d *IdentifierData) Fields() []FieldSlot    { return nil }
func (d *IdentifierData) Lists() []ListSlot      { return nil }

// InstanceData instantiates a component/view/function via referenced assigns.
type InstanceData struct {
	Name            string
	ReferencedType  NodeID // a TypeReference or ViewReference naming the instantiated design unit
	PortAssigns     BList
	ParameterAssigns BList
}

func (d *InstanceData) ClassID() ClassID { return ClassInstance }
func (d *InstanceData) GetName() string  { return d.Name }
func (d *InstanceData) SetName(n string) { d.Name = n }
func (d *InstanceData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "ReferencedType", Get: func() NodeID { return d.ReferencedType }, Set: func(id NodeID) { d.ReferencedType = id }}}
}
func (d *InstanceData) Lists() []ListSlot {
	return []ListSlot{{Name: "PortAssigns", List: &d.PortAssigns}, {Name: "ParameterAssigns", List: &d.ParameterAssigns}}
}

// AggregateData is an array/vector constructor value with an optional
// "others" alt providing the default for unlisted indices.
type AggregateData struct {
	Others NodeID // AggregateAlt or Value, may be NoNode
	Alts   BList  // of AggregateAlt
}

func (d *AggregateData) ClassID() ClassID { return ClassAggregate }
func (d *AggregateData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Others", Get: func() NodeID { return d.Others }, Set: func(id NodeID) { d.Others = id }}}
}
func (d *AggregateData) Lists() []ListSlot { return []ListSlot{{Name: "Alts", List: &d.Alts}} }

// AggregateAltData is one (indices -> value) pair of an Aggregate.
type AggregateAltData struct {
	Value   NodeID
	Indices BList // of IntValue/Range
}

func (d *AggregateAltData) ClassID() ClassID { return ClassAggregateAlt }
func (d *AggregateAltData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Value", Get: func() NodeID { return d.Value }, Set: func(id NodeID) { d.Value = id }}}
}
func (d *AggregateAltData) Lists() []ListSlot { return []ListSlot{{Name: "Indices", List: &d.Indices}} }

// CastData re-expresses a value under a different Type.
type CastData struct {
	Type  NodeID
	Value NodeID
}

func (d *CastData) ClassID() ClassID { return ClassCast }
func (d *CastData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Type", Get: func() NodeID { return d.Type }, Set: func(id NodeID) { d.Type = id }},
		{Name: "Value", Get: func() NodeID { return d.Value }, Set: func(id NodeID) { d.Value = id }},
	}
}
func (d *CastData) Lists() []ListSlot { return nil }

// ExpressionData is a unary (Op2 == NoNode) or binary expression.
type ExpressionData struct {
	Op  Operator
	Op1 NodeID
	Op2 NodeID
}

func (d *ExpressionData) ClassID() ClassID { return ClassExpression }
func (d *ExpressionData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Op1", Get: func() NodeID { return d.Op1 }, Set: func(id NodeID) { d.Op1 = id }},
		{Name: "Op2", Get: func() NodeID { return d.Op2 }, Set: func(id NodeID) { d.Op2 = id }},
	}
}
func (d *ExpressionData) Lists() []ListSlot { return nil }

// FunctionCallData calls a resolved Function with sorted argument assigns.
type FunctionCallData struct {
	Name             string
	Declaration      NodeID
	ParameterAssigns BList
	TemplateAssigns  BList // value/type template-parameter assigns
}

func (d *FunctionCallData) ClassID() ClassID       { return ClassFunctionCall }
func (d *FunctionCallData) GetName() string        { return d.Name }
func (d *FunctionCallData) SetName(n string)       { d.Name = n }
func (d *FunctionCallData) ResolvesTo() NodeID      { return d.Declaration }
func (d *FunctionCallData) SetResolvesTo(id NodeID) { d.Declaration = id }
func (d *FunctionCallData) Fields() []FieldSlot     { return nil }
func (d *FunctionCallData) Lists() []ListSlot {
	return []ListSlot{{Name: "ParameterAssigns", List: &d.ParameterAssigns}, {Name: "TemplateAssigns", List: &d.TemplateAssigns}}
}

// RecordValueData constructs a Record value field-by-field.
type RecordValueData struct {
	Alts BList // of RecordValueAlt
}

func (d *RecordValueData) ClassID() ClassID { return ClassRecordValue }
func (d *RecordValueData) Fields() []FieldSlot { return nil }
func (d *RecordValueData) Lists() []ListSlot   { return []ListSlot{{Name: "Alts", List: &d.Alts}} }

// RecordValueAltData binds one record field to a value.
type RecordValueAltData struct {
	Name  string
	Value NodeID
}

func (d *RecordValueAltData) ClassID() ClassID { return ClassRecordValueAlt }
func (d *RecordValueAltData) GetName() string  { return d.Name }
func (d *RecordValueAltData) SetName(n string) { d.Name = n }
func (d *RecordValueAltData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Value", Get: func() NodeID { return d.Value }, Set: func(id NodeID) { d.Value = id }}}
}
func (d *RecordValueAltData) Lists() []ListSlot { return nil }

// WhenData is a ternary-like value expression: a list of (condition, value)
// WhenAlts plus a Default, evaluated in order.
type WhenData struct {
	Default NodeID
	Alts    BList // of WhenAlt
	Logic   bool  // true for a "Bit-logic ternary" (Verilog-style) context
}

func (d *WhenData) ClassID() ClassID { return ClassWhen }
func (d *WhenData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Default", Get: func() NodeID { return d.Default }, Set: func(id NodeID) { d.Default = id }}}
}
func (d *WhenData) Lists() []ListSlot { return []ListSlot{{Name: "Alts", List: &d.Alts}} }

// WhenAltData is one (condition -> value) branch of a When.
type WhenAltData struct {
	Condition NodeID
	Value     NodeID
}

func (d *WhenAltData) ClassID() ClassID { return ClassWhenAlt }
func (d *WhenAltData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Condition", Get: func() NodeID { return d.Condition }, Set: func(id NodeID) { d.Condition = id }},
		{Name: "Value", Get: func() NodeID { return d.Value }, Set: func(id NodeID) { d.Value = id }},
	}
}
func (d *WhenAltData) Lists() []ListSlot { return nil }

// WithData is an expression switch: matches Switch's condition against alt
// values and selects the matching alt's value.
type WithData struct {
	Condition NodeID
	Default   NodeID
	Alts      BList // of WithAlt
	Case      CaseSemantics
}

func (d *WithData) ClassID() ClassID { return ClassWith }
func (d *WithData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Condition", Get: func() NodeID { return d.Condition }, Set: func(id NodeID) { d.Condition = id }},
		{Name: "Default", Get: func() NodeID { return d.Default }, Set: func(id NodeID) { d.Default = id }},
	}
}
func (d *WithData) Lists() []ListSlot { return []ListSlot{{Name: "Alts", List: &d.Alts}} }

// WithAltData is one (values -> value) branch of a With.
type WithAltData struct {
	Value      NodeID
	Conditions BList // values compared against the With's Condition
}

func (d *WithAltData) ClassID() ClassID { return ClassWithAlt }
func (d *WithAltData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Value", Get: func() NodeID { return d.Value }, Set: func(id NodeID) { d.Value = id }}}
}
func (d *WithAltData) Lists() []ListSlot { return []ListSlot{{Name: "Conditions", List: &d.Conditions}} }

// RangeData is a bound pair with a direction, used both as a slice span and
// a type span.
type RangeData struct {
	LeftBound  NodeID
	RightBound NodeID
	Dir        Direction
}

func (d *RangeData) ClassID() ClassID { return ClassRange }
func (d *RangeData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "LeftBound", Get: func() NodeID { return d.LeftBound }, Set: func(id NodeID) { d.LeftBound = id }},
		{Name: "RightBound", Get: func() NodeID { return d.RightBound }, Set: func(id NodeID) { d.RightBound = id }},
	}
}
func (d *RangeData) Lists() []ListSlot { return nil }
