package ir

// dataDeclBase is embedded by every DataDeclaration leaf: a name, a declared
// Type, and an optional initial/default Value.
type dataDeclBase struct {
	Name  string
	Type  NodeID
	Value NodeID
}

func (b *dataDeclBase) GetName() string  { return b.Name }
func (b *dataDeclBase) SetName(n string) { b.Name = n }
func (b *dataDeclBase) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Type", Get: func() NodeID { return b.Type }, Set: func(id NodeID) { b.Type = id }},
		{Name: "Value", Get: func() NodeID { return b.Value }, Set: func(id NodeID) { b.Value = id }},
	}
}
func (b *dataDeclBase) Lists() []ListSlot { return nil }

type AliasData struct{ dataDeclBase }

func (d *AliasData) ClassID() ClassID { return ClassAlias }

type ConstData struct {
	dataDeclBase
	Constexpr bool
}

func (d *ConstData) ClassID() ClassID { return ClassConst }

// EnumValueData is one literal of an enclosing TypeEnum.
type EnumValueData struct{ dataDeclBase }

func (d *EnumValueData) ClassID() ClassID { return ClassEnumValue }

// FieldData is a member of an enclosing TypeRecord.
type FieldData struct{ dataDeclBase }

func (d *FieldData) ClassID() ClassID { return ClassField }

// ParameterData is a formal parameter of a SubProgram, optionally directional
// (VHDL-style procedures allow in/out/inout formals; a Function's formals
// are conventionally PortDirIn).
type ParameterData struct {
	dataDeclBase
	Direction PortDirection
}

func (d *ParameterData) ClassID() ClassID { return ClassParameter }

// PortData is an Entity/View port. Direction is never
// PortDirNone on a stored Port; an `in` port owns no default value while
// `out`/`inout` ports do (enforced by the standardization engine's Port
// repair, not by this type itself).
type PortData struct {
	dataDeclBase
	Direction PortDirection
}

func (d *PortData) ClassID() ClassID { return ClassPort }

type SignalData struct{ dataDeclBase }

func (d *SignalData) ClassID() ClassID { return ClassSignal }

// ValueTPData is a template value parameter (generic constant) of a
// DesignUnit/SubProgram/TypeDef.
type ValueTPData struct{ dataDeclBase }

func (d *ValueTPData) ClassID() ClassID { return ClassValueTP }

type VariableData struct{ dataDeclBase }

func (d *VariableData) ClassID() ClassID { return ClassVariable }

// PromoteVariableToSignal turns a local Variable into a Signal in place,
// keeping its NodeID (and therefore every weak reference to it) intact: the
// Process Splitter uses this when a lifted variable ends up written in one
// split process and read in another, since only a Signal carries a stable
// value between processes. Reports false if n does not
// hold a VariableData payload.
func PromoteVariableToSignal(n *Node) bool {
	vd, ok := n.Data.(*VariableData)
	if !ok {
		return false
	}
	n.Data = &SignalData{dataDeclBase: vd.dataDeclBase}
	n.Kind = ClassSignal
	return true
}

// TypeDeclaration family.

// TypeDefData names a Type being defined, e.g. `type byte is array(7 downto 0) of bit;`.
type TypeDefData struct {
	Name           string
	Type           NodeID
	Range_         NodeID // optional constraint range for a constrained subtype
	Opaque         bool   // true if introduced as an opaque forward declaration
	TemplateParams BList  // of TypeTP/ValueTP
}

func (d *TypeDefData) ClassID() ClassID { return ClassTypeDef }
func (d *TypeDefData) GetName() string  { return d.Name }
func (d *TypeDefData) SetName(n string) { d.Name = n }
func (d *TypeDefData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Type", Get: func() NodeID { return d.Type }, Set: func(id NodeID) { d.Type = id }},
		{Name: "Range", Get: func() NodeID { return d.Range_ }, Set: func(id NodeID) { d.Range_ = id }},
	}
}
func (d *TypeDefData) Lists() []ListSlot {
	return []ListSlot{{Name: "TemplateParams", List: &d.TemplateParams}}
}

// TypeTPData is a template type parameter (generic type) with an optional
// default type.
type TypeTPData struct {
	Name    string
	Default NodeID
}

func (d *TypeTPData) ClassID() ClassID { return ClassTypeTP }
func (d *TypeTPData) GetName() string  { return d.Name }
func (d *TypeTPData) SetName(n string) { d.Name = n }
func (d *TypeTPData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Default", Get: func() NodeID { return d.Default }, Set: func(id NodeID) { d.Default = id }}}
}
func (d *TypeTPData) Lists() []ListSlot { return nil }

// Scope family: every scope owns ordered declaration/statement lists. The
// shape below is intentionally uniform across LibraryDef/DesignUnit/.../System
// (a BaseContents), with leaf-specific extras layered on top.

// scopeBase is embedded by every scope kind that directly owns declarations.
type scopeBase struct {
	Name         string
	Declarations BList // of DataDeclaration/TypeDeclaration
}

func (b *scopeBase) GetName() string       { return b.Name }
func (b *scopeBase) SetName(n string)      { b.Name = n }
func (b *scopeBase) Fields() []FieldSlot   { return nil }
func (b *scopeBase) Lists() []ListSlot     { return []ListSlot{{Name: "Declarations", List: &b.Declarations}} }

// LibraryDefData is a library unit; Standard marks a semantics-bundled
// library subject to Symbol Mapper rewriting.
type LibraryDefData struct {
	scopeBase
	Standard   bool
	System_    bool
	Members    BList // of Function/Procedure/TypeDef/Const/... declared at library scope
}

func (d *LibraryDefData) ClassID() ClassID { return ClassLibraryDef }
func (d *LibraryDefData) Lists() []ListSlot {
	return append(d.scopeBase.Lists(), ListSlot{Name: "Members", List: &d.Members})
}

// DesignUnitData groups one or more Views of the same named design (VHDL:
// entity + architectures; SystemC: module + its variants).
type DesignUnitData struct {
	Name  string
	Views BList // of View
}

func (d *DesignUnitData) ClassID() ClassID    { return ClassDesignUnit }
func (d *DesignUnitData) GetName() string     { return d.Name }
func (d *DesignUnitData) SetName(n string)    { d.Name = n }
func (d *DesignUnitData) Fields() []FieldSlot { return nil }
func (d *DesignUnitData) Lists() []ListSlot   { return []ListSlot{{Name: "Views", List: &d.Views}} }

// ViewData is one implementation of a DesignUnit (an architecture, a module
// body): an Entity (port list) plus Contents (body).
type ViewData struct {
	Name     string
	Entity   NodeID
	Contents NodeID
	Language LanguageID
}

func (d *ViewData) ClassID() ClassID { return ClassView }
func (d *ViewData) GetName() string  { return d.Name }
func (d *ViewData) SetName(n string) { d.Name = n }
func (d *ViewData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Entity", Get: func() NodeID { return d.Entity }, Set: func(id NodeID) { d.Entity = id }},
		{Name: "Contents", Get: func() NodeID { return d.Contents }, Set: func(id NodeID) { d.Contents = id }},
	}
}
func (d *ViewData) Lists() []ListSlot { return nil }

// EntityData is a View's port-and-generic interface.
type EntityData struct {
	Name       string
	Ports      BList // of Port
	Parameters BList // of ValueTP/TypeTP (generics)
}

func (d *EntityData) ClassID() ClassID    { return ClassEntity }
func (d *EntityData) GetName() string     { return d.Name }
func (d *EntityData) SetName(n string)    { d.Name = n }
func (d *EntityData) Fields() []FieldSlot { return nil }
func (d *EntityData) Lists() []ListSlot {
	return []ListSlot{{Name: "Ports", List: &d.Ports}, {Name: "Parameters", List: &d.Parameters}}
}

// ContentsData is a View's body: declarations, instances, generates, state
// tables (processes) and top-level global actions (concurrent assigns).
type ContentsData struct {
	scopeBase
	Instances     BList // of Instance
	Generates     BList // of Generate (ForGenerate/IfGenerate)
	StateTables   BList // of StateTable
	GlobalActions BList // of GlobalAction
}

func (d *ContentsData) ClassID() ClassID { return ClassContents }
func (d *ContentsData) Lists() []ListSlot {
	return append(d.scopeBase.Lists(),
		ListSlot{Name: "Instances", List: &d.Instances},
		ListSlot{Name: "Generates", List: &d.Generates},
		ListSlot{Name: "StateTables", List: &d.StateTables},
		ListSlot{Name: "GlobalActions", List: &d.GlobalActions},
	)
}

// BaseContentsData is the shared shape behind Generate-like scopes: a plain
// nested scope without its own port interface.
type BaseContentsData struct {
	scopeBase
	Instances   BList
	StateTables BList
}

func (d *BaseContentsData) ClassID() ClassID { return ClassBaseContents }
func (d *BaseContentsData) Lists() []ListSlot {
	return append(d.scopeBase.Lists(),
		ListSlot{Name: "Instances", List: &d.Instances},
		ListSlot{Name: "StateTables", List: &d.StateTables},
	)
}

// GenerateData is embedded by ForGenerate/IfGenerate.
type GenerateData struct {
	BaseContentsData
}

func (d *GenerateData) ClassID() ClassID { return ClassGenerate }

// ForGenerateData repeats its body once per value of an induction Declaration.
type ForGenerateData struct {
	GenerateData
	Induction NodeID
	Condition NodeID // loop bound test
}

func (d *ForGenerateData) ClassID() ClassID { return ClassForGenerate }
func (d *ForGenerateData) Fields() []FieldSlot {
	return []FieldSlot{
		{Name: "Induction", Get: func() NodeID { return d.Induction }, Set: func(id NodeID) { d.Induction = id }},
		{Name: "Condition", Get: func() NodeID { return d.Condition }, Set: func(id NodeID) { d.Condition = id }},
	}
}

// IfGenerateData conditionally elaborates its body.
type IfGenerateData struct {
	GenerateData
	Condition NodeID
}

func (d *IfGenerateData) ClassID() ClassID { return ClassIfGenerate }
func (d *IfGenerateData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Condition", Get: func() NodeID { return d.Condition }, Set: func(id NodeID) { d.Condition = id }}}
}

// SubProgramData is embedded by Function/Procedure.
type SubProgramData struct {
	Name        string
	Parameters  BList // of Parameter
	TemplateParams BList // of ValueTP/TypeTP
	StateTable  NodeID // the body, a StateTable of flavor method-like
}

func (d *SubProgramData) ClassID() ClassID { return ClassSubProgram }
func (d *SubProgramData) GetName() string  { return d.Name }
func (d *SubProgramData) SetName(n string) { d.Name = n }
func (d *SubProgramData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "StateTable", Get: func() NodeID { return d.StateTable }, Set: func(id NodeID) { d.StateTable = id }}}
}
func (d *SubProgramData) Lists() []ListSlot {
	return []ListSlot{{Name: "Parameters", List: &d.Parameters}, {Name: "TemplateParams", List: &d.TemplateParams}}
}

// FunctionData adds a return Type to SubProgramData.
type FunctionData struct {
	SubProgramData
	ReturnType NodeID
}

func (d *FunctionData) ClassID() ClassID { return ClassFunction }
func (d *FunctionData) Fields() []FieldSlot {
	return append(d.SubProgramData.Fields(),
		FieldSlot{Name: "ReturnType", Get: func() NodeID { return d.ReturnType }, Set: func(id NodeID) { d.ReturnType = id }})
}

// ProcedureData has no return type.
type ProcedureData struct {
	SubProgramData
}

func (d *ProcedureData) ClassID() ClassID { return ClassProcedure }

// StateTableData is a process: a sensitivity list plus at most one State,
// tagged with its Flavor.
type StateTableData struct {
	Name        string
	Flavor      ProcessFlavor
	Sensitivity BList // of Value resolving to Signal/Port (level-sensitive)
	SensitivityPos BList // rising-edge sensitivity
	SensitivityNeg BList // falling-edge sensitivity
	Declarations BList  // local Variables
	States      BList  // of State; at most one for non-initial flavors
	DontInitialize bool
}

func (d *StateTableData) ClassID() ClassID    { return ClassStateTable }
func (d *StateTableData) GetName() string     { return d.Name }
func (d *StateTableData) SetName(n string)    { d.Name = n }
func (d *StateTableData) Fields() []FieldSlot { return nil }
func (d *StateTableData) Lists() []ListSlot {
	return []ListSlot{
		{Name: "Sensitivity", List: &d.Sensitivity},
		{Name: "SensitivityPos", List: &d.SensitivityPos},
		{Name: "SensitivityNeg", List: &d.SensitivityNeg},
		{Name: "Declarations", List: &d.Declarations},
		{Name: "States", List: &d.States},
	}
}

// StateData is the single synthesizable body of a non-initial StateTable
// (at most one State per process).
type StateData struct {
	Name    string
	Actions BList // of Action
}

func (d *StateData) ClassID() ClassID    { return ClassState }
func (d *StateData) GetName() string     { return d.Name }
func (d *StateData) SetName(n string)    { d.Name = n }
func (d *StateData) Fields() []FieldSlot { return nil }
func (d *StateData) Lists() []ListSlot   { return []ListSlot{{Name: "Actions", List: &d.Actions}} }

// SystemData is the tree root: the only node with no parent.
type SystemData struct {
	FormatVersion string // e.g. "4.0"
	Libraries     BList  // of Library includes
	DesignUnits   BList  // of DesignUnit
	Declarations  BList  // of top-level DataDeclaration/TypeDeclaration
}

func (d *SystemData) ClassID() ClassID    { return ClassSystem }
func (d *SystemData) Fields() []FieldSlot { return nil }
func (d *SystemData) Lists() []ListSlot {
	return []ListSlot{
		{Name: "Libraries", List: &d.Libraries},
		{Name: "DesignUnits", List: &d.DesignUnits},
		{Name: "Declarations", List: &d.Declarations},
	}
}

// GlobalActionData is a set of concurrent Assigns evaluated outside any
// process ("for globally-registered (non-process) assignments,
// all reads are treated as sensitivity").
type GlobalActionData struct {
	Actions BList // of Assign
}

func (d *GlobalActionData) ClassID() ClassID    { return ClassGlobalAction }
func (d *GlobalActionData) Fields() []FieldSlot { return nil }
func (d *GlobalActionData) Lists() []ListSlot   { return []ListSlot{{Name: "Actions", List: &d.Actions}} }
