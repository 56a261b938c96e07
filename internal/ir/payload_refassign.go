package ir

// Referenced assigns bind an actual Value/Type to a named formal
// (Parameter/Port/TypeTP/ValueTP) resolved on a Declaration. The sort step
// (the referenced-assign repair) reorders these BLists to match
// the formal order of the resolved declaration before any cast repair runs.

// ParameterAssignData binds an actual Value to a SubProgram's formal Parameter.
type ParameterAssignData struct {
	Name        string // formal name, for named-association sources
	Value       NodeID
	Declaration NodeID // the resolved Parameter
	Direction   PortDirection
}

func (d *ParameterAssignData) ClassID() ClassID       { return ClassParameterAssign }
func (d *ParameterAssignData) GetName() string        { return d.Name }
func (d *ParameterAssignData) SetName(n string)       { d.Name = n }
func (d *ParameterAssignData) ResolvesTo() NodeID      { return d.Declaration }
func (d *ParameterAssignData) SetResolvesTo(id NodeID) { d.Declaration = id }
func (d *ParameterAssignData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Value", Get: func() NodeID { return d.Value }, Set: func(id NodeID) { d.Value = id }}}
}
func (d *ParameterAssignData) Lists() []ListSlot { return nil }

// PortAssignData (PPAssign) binds an actual Value to an Instance's formal Port.
type PortAssignData struct {
	Name        string
	Value       NodeID
	Declaration NodeID // the resolved Port
	Direction   PortDirection
}

func (d *PortAssignData) ClassID() ClassID       { return ClassPortAssign }
func (d *PortAssignData) GetName() string        { return d.Name }
func (d *PortAssignData) SetName(n string)       { d.Name = n }
func (d *PortAssignData) ResolvesTo() NodeID      { return d.Declaration }
func (d *PortAssignData) SetResolvesTo(id NodeID) { d.Declaration = id }
func (d *PortAssignData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Value", Get: func() NodeID { return d.Value }, Set: func(id NodeID) { d.Value = id }}}
}
func (d *PortAssignData) Lists() []ListSlot { return nil }

// TypeTPAssignData binds an actual Type to a template type parameter (TypeTP).
type TypeTPAssignData struct {
	Name        string
	Type        NodeID
	Declaration NodeID
}

func (d *TypeTPAssignData) ClassID() ClassID       { return ClassTypeTPAssign }
func (d *TypeTPAssignData) GetName() string        { return d.Name }
func (d *TypeTPAssignData) SetName(n string)       { d.Name = n }
func (d *TypeTPAssignData) ResolvesTo() NodeID      { return d.Declaration }
func (d *TypeTPAssignData) SetResolvesTo(id NodeID) { d.Declaration = id }
func (d *TypeTPAssignData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Type", Get: func() NodeID { return d.Type }, Set: func(id NodeID) { d.Type = id }}}
}
func (d *TypeTPAssignData) Lists() []ListSlot { return nil }

// ValueTPAssignData (TPAssign) binds an actual Value to a template value
// parameter (ValueTP).
type ValueTPAssignData struct {
	Name        string
	Value       NodeID
	Declaration NodeID
}

func (d *ValueTPAssignData) ClassID() ClassID       { return ClassValueTPAssign }
func (d *ValueTPAssignData) GetName() string        { return d.Name }
func (d *ValueTPAssignData) SetName(n string)       { d.Name = n }
func (d *ValueTPAssignData) ResolvesTo() NodeID      { return d.Declaration }
func (d *ValueTPAssignData) SetResolvesTo(id NodeID) { d.Declaration = id }
func (d *ValueTPAssignData) Fields() []FieldSlot {
	return []FieldSlot{{Name: "Value", Get: func() NodeID { return d.Value }, Set: func(id NodeID) { d.Value = id }}}
}
func (d *ValueTPAssignData) Lists() []ListSlot { return nil }
