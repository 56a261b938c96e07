package ir

// FlatVisitor is the first of the three fixed visitor shapes:
// one method per concrete kind, no implicit recursion. A pass that wants
// total control over traversal (e.g. the Standardization Engine, which
// drives its own depth-first walk) implements this interface, typically by
// embedding NoOpFlatVisitor and overriding only the kinds it cares about.
type FlatVisitor interface {
	VisitBitValue(id NodeID, d *BitValueData) uint32
	VisitBitvectorValue(id NodeID, d *BitvectorValueData) uint32
	VisitBoolValue(id NodeID, d *BoolValueData) uint32
	VisitCharValue(id NodeID, d *CharValueData) uint32
	VisitIntValue(id NodeID, d *IntValueData) uint32
	VisitRealValue(id NodeID, d *RealValueData) uint32
	VisitStringValue(id NodeID, d *StringValueData) uint32
	VisitTimeValue(id NodeID, d *TimeValueData) uint32
	VisitFieldReference(id NodeID, d *FieldReferenceData) uint32
	VisitMember(id NodeID, d *MemberData) uint32
	VisitSlice(id NodeID, d *SliceData) uint32
	VisitIdentifier(id NodeID, d *IdentifierData) uint32
	VisitInstance(id NodeID, d *InstanceData) uint32
	VisitAggregate(id NodeID, d *AggregateData) uint32
	VisitAggregateAlt(id NodeID, d *AggregateAltData) uint32
	VisitCast(id NodeID, d *CastData) uint32
	VisitExpression(id NodeID, d *ExpressionData) uint32
	VisitFunctionCall(id NodeID, d *FunctionCallData) uint32
	VisitRecordValue(id NodeID, d *RecordValueData) uint32
	VisitRecordValueAlt(id NodeID, d *RecordValueAltData) uint32
	VisitWhen(id NodeID, d *WhenData) uint32
	VisitWhenAlt(id NodeID, d *WhenAltData) uint32
	VisitWith(id NodeID, d *WithData) uint32
	VisitWithAlt(id NodeID, d *WithAltData) uint32
	VisitRange(id NodeID, d *RangeData) uint32
	VisitAssign(id NodeID, d *AssignData) uint32
	VisitIf(id NodeID, d *IfData) uint32
	VisitIfAlt(id NodeID, d *IfAltData) uint32
	VisitSwitch(id NodeID, d *SwitchData) uint32
	VisitSwitchAlt(id NodeID, d *SwitchAltData) uint32
	VisitFor(id NodeID, d *ForData) uint32
	VisitWhile(id NodeID, d *WhileData) uint32
	VisitReturn(id NodeID, d *ReturnData) uint32
	VisitBreak(id NodeID, d *BreakData) uint32
	VisitContinue(id NodeID, d *ContinueData) uint32
	VisitNull(id NodeID, d *NullData) uint32
	VisitProcedureCall(id NodeID, d *ProcedureCallData) uint32
	VisitTransition(id NodeID, d *TransitionData) uint32
	VisitWait(id NodeID, d *WaitData) uint32
	VisitValueStatement(id NodeID, d *ValueStatementData) uint32
	VisitTypeBit(id NodeID, d *TypeBitData) uint32
	VisitTypeBool(id NodeID, d *TypeBoolData) uint32
	VisitTypeChar(id NodeID, d *TypeCharData) uint32
	VisitTypeInt(id NodeID, d *TypeIntData) uint32
	VisitTypeReal(id NodeID, d *TypeRealData) uint32
	VisitTypeTime(id NodeID, d *TypeTimeData) uint32
	VisitTypeEvent(id NodeID, d *TypeEventData) uint32
	VisitTypeString(id NodeID, d *TypeStringData) uint32
	VisitTypeSigned(id NodeID, d *TypeSignedData) uint32
	VisitTypeUnsigned(id NodeID, d *TypeUnsignedData) uint32
	VisitTypeBitvector(id NodeID, d *TypeBitvectorData) uint32
	VisitTypeArray(id NodeID, d *TypeArrayData) uint32
	VisitTypeFile(id NodeID, d *TypeFileData) uint32
	VisitTypePointer(id NodeID, d *TypePointerData) uint32
	VisitTypeReference(id NodeID, d *TypeReferenceData) uint32
	VisitTypeEnum(id NodeID, d *TypeEnumData) uint32
	VisitTypeRecord(id NodeID, d *TypeRecordData) uint32
	VisitTypeLibrary(id NodeID, d *TypeLibraryData) uint32
	VisitTypeReferenceDecl(id NodeID, d *TypeReferenceDeclData) uint32
	VisitTypeViewReference(id NodeID, d *TypeViewReferenceData) uint32
	VisitAlias(id NodeID, d *AliasData) uint32
	VisitConst(id NodeID, d *ConstData) uint32
	VisitEnumValue(id NodeID, d *EnumValueData) uint32
	VisitField(id NodeID, d *FieldData) uint32
	VisitParameter(id NodeID, d *ParameterData) uint32
	VisitPort(id NodeID, d *PortData) uint32
	VisitSignal(id NodeID, d *SignalData) uint32
	VisitValueTP(id NodeID, d *ValueTPData) uint32
	VisitVariable(id NodeID, d *VariableData) uint32
	VisitTypeDef(id NodeID, d *TypeDefData) uint32
	VisitTypeTP(id NodeID, d *TypeTPData) uint32
	VisitLibraryDef(id NodeID, d *LibraryDefData) uint32
	VisitDesignUnit(id NodeID, d *DesignUnitData) uint32
	VisitView(id NodeID, d *ViewData) uint32
	VisitEntity(id NodeID, d *EntityData) uint32
	VisitContents(id NodeID, d *ContentsData) uint32
	VisitBaseContents(id NodeID, d *BaseContentsData) uint32
	VisitGenerate(id NodeID, d *GenerateData) uint32
	VisitForGenerate(id NodeID, d *ForGenerateData) uint32
	VisitIfGenerate(id NodeID, d *IfGenerateData) uint32
	VisitSubProgram(id NodeID, d *SubProgramData) uint32
	VisitFunction(id NodeID, d *FunctionData) uint32
	VisitProcedure(id NodeID, d *ProcedureData) uint32
	VisitStateTable(id NodeID, d *StateTableData) uint32
	VisitState(id NodeID, d *StateData) uint32
	VisitSystem(id NodeID, d *SystemData) uint32
	VisitGlobalAction(id NodeID, d *GlobalActionData) uint32
	VisitParameterAssign(id NodeID, d *ParameterAssignData) uint32
	VisitPortAssign(id NodeID, d *PortAssignData) uint32
	VisitTypeTPAssign(id NodeID, d *TypeTPAssignData) uint32
	VisitValueTPAssign(id NodeID, d *ValueTPAssignData) uint32
}

// NoOpFlatVisitor implements FlatVisitor with every method returning 0 and
// not recursing, so concrete visitors can embed it and override only the
// kinds they act on.
type NoOpFlatVisitor struct{}

func (NoOpFlatVisitor) VisitBitValue(NodeID, *BitValueData) uint32                   { return 0 }
func (NoOpFlatVisitor) VisitBitvectorValue(NodeID, *BitvectorValueData) uint32        { return 0 }
func (NoOpFlatVisitor) VisitBoolValue(NodeID, *BoolValueData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitCharValue(NodeID, *CharValueData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitIntValue(NodeID, *IntValueData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitRealValue(NodeID, *RealValueData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitStringValue(NodeID, *StringValueData) uint32              { return 0 }
func (NoOpFlatVisitor) VisitTimeValue(NodeID, *TimeValueData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitFieldReference(NodeID, *FieldReferenceData) uint32        { return 0 }
func (NoOpFlatVisitor) VisitMember(NodeID, *MemberData) uint32                        { return 0 }
func (NoOpFlatVisitor) VisitSlice(NodeID, *SliceData) uint32                          { return 0 }
func (NoOpFlatVisitor) VisitIdentifier(NodeID, *IdentifierData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitInstance(NodeID, *InstanceData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitAggregate(NodeID, *AggregateData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitAggregateAlt(NodeID, *AggregateAltData) uint32            { return 0 }
func (NoOpFlatVisitor) VisitCast(NodeID, *CastData) uint32                            { return 0 }
func (NoOpFlatVisitor) VisitExpression(NodeID, *ExpressionData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitFunctionCall(NodeID, *FunctionCallData) uint32            { return 0 }
func (NoOpFlatVisitor) VisitRecordValue(NodeID, *RecordValueData) uint32              { return 0 }
func (NoOpFlatVisitor) VisitRecordValueAlt(NodeID, *RecordValueAltData) uint32        { return 0 }
func (NoOpFlatVisitor) VisitWhen(NodeID, *WhenData) uint32                            { return 0 }
func (NoOpFlatVisitor) VisitWhenAlt(NodeID, *WhenAltData) uint32                      { return 0 }
func (NoOpFlatVisitor) VisitWith(NodeID, *WithData) uint32                            { return 0 }
func (NoOpFlatVisitor) VisitWithAlt(NodeID, *WithAltData) uint32                      { return 0 }
func (NoOpFlatVisitor) VisitRange(NodeID, *RangeData) uint32                          { return 0 }
func (NoOpFlatVisitor) VisitAssign(NodeID, *AssignData) uint32                        { return 0 }
func (NoOpFlatVisitor) VisitIf(NodeID, *IfData) uint32                                { return 0 }
func (NoOpFlatVisitor) VisitIfAlt(NodeID, *IfAltData) uint32                          { return 0 }
func (NoOpFlatVisitor) VisitSwitch(NodeID, *SwitchData) uint32                        { return 0 }
func (NoOpFlatVisitor) VisitSwitchAlt(NodeID, *SwitchAltData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitFor(NodeID, *ForData) uint32                              { return 0 }
func (NoOpFlatVisitor) VisitWhile(NodeID, *WhileData) uint32                          { return 0 }
func (NoOpFlatVisitor) VisitReturn(NodeID, *ReturnData) uint32                        { return 0 }
func (NoOpFlatVisitor) VisitBreak(NodeID, *BreakData) uint32                          { return 0 }
func (NoOpFlatVisitor) VisitContinue(NodeID, *ContinueData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitNull(NodeID, *NullData) uint32                            { return 0 }
func (NoOpFlatVisitor) VisitProcedureCall(NodeID, *ProcedureCallData) uint32          { return 0 }
func (NoOpFlatVisitor) VisitTransition(NodeID, *TransitionData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitWait(NodeID, *WaitData) uint32                            { return 0 }
func (NoOpFlatVisitor) VisitValueStatement(NodeID, *ValueStatementData) uint32        { return 0 }
func (NoOpFlatVisitor) VisitTypeBit(NodeID, *TypeBitData) uint32                      { return 0 }
func (NoOpFlatVisitor) VisitTypeBool(NodeID, *TypeBoolData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitTypeChar(NodeID, *TypeCharData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitTypeInt(NodeID, *TypeIntData) uint32                      { return 0 }
func (NoOpFlatVisitor) VisitTypeReal(NodeID, *TypeRealData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitTypeTime(NodeID, *TypeTimeData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitTypeEvent(NodeID, *TypeEventData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitTypeString(NodeID, *TypeStringData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitTypeSigned(NodeID, *TypeSignedData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitTypeUnsigned(NodeID, *TypeUnsignedData) uint32            { return 0 }
func (NoOpFlatVisitor) VisitTypeBitvector(NodeID, *TypeBitvectorData) uint32          { return 0 }
func (NoOpFlatVisitor) VisitTypeArray(NodeID, *TypeArrayData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitTypeFile(NodeID, *TypeFileData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitTypePointer(NodeID, *TypePointerData) uint32              { return 0 }
func (NoOpFlatVisitor) VisitTypeReference(NodeID, *TypeReferenceData) uint32          { return 0 }
func (NoOpFlatVisitor) VisitTypeEnum(NodeID, *TypeEnumData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitTypeRecord(NodeID, *TypeRecordData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitTypeLibrary(NodeID, *TypeLibraryData) uint32              { return 0 }
func (NoOpFlatVisitor) VisitTypeReferenceDecl(NodeID, *TypeReferenceDeclData) uint32  { return 0 }
func (NoOpFlatVisitor) VisitTypeViewReference(NodeID, *TypeViewReferenceData) uint32  { return 0 }
func (NoOpFlatVisitor) VisitAlias(NodeID, *AliasData) uint32                         { return 0 }
func (NoOpFlatVisitor) VisitConst(NodeID, *ConstData) uint32                          { return 0 }
func (NoOpFlatVisitor) VisitEnumValue(NodeID, *EnumValueData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitField(NodeID, *FieldData) uint32                          { return 0 }
func (NoOpFlatVisitor) VisitParameter(NodeID, *ParameterData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitPort(NodeID, *PortData) uint32                            { return 0 }
func (NoOpFlatVisitor) VisitSignal(NodeID, *SignalData) uint32                        { return 0 }
func (NoOpFlatVisitor) VisitValueTP(NodeID, *ValueTPData) uint32                      { return 0 }
func (NoOpFlatVisitor) VisitVariable(NodeID, *VariableData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitTypeDef(NodeID, *TypeDefData) uint32                      { return 0 }
func (NoOpFlatVisitor) VisitTypeTP(NodeID, *TypeTPData) uint32                        { return 0 }
func (NoOpFlatVisitor) VisitLibraryDef(NodeID, *LibraryDefData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitDesignUnit(NodeID, *DesignUnitData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitView(NodeID, *ViewData) uint32                            { return 0 }
func (NoOpFlatVisitor) VisitEntity(NodeID, *EntityData) uint32                        { return 0 }
func (NoOpFlatVisitor) VisitContents(NodeID, *ContentsData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitBaseContents(NodeID, *BaseContentsData) uint32            { return 0 }
func (NoOpFlatVisitor) VisitGenerate(NodeID, *GenerateData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitForGenerate(NodeID, *ForGenerateData) uint32              { return 0 }
func (NoOpFlatVisitor) VisitIfGenerate(NodeID, *IfGenerateData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitSubProgram(NodeID, *SubProgramData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitFunction(NodeID, *FunctionData) uint32                    { return 0 }
func (NoOpFlatVisitor) VisitProcedure(NodeID, *ProcedureData) uint32                  { return 0 }
func (NoOpFlatVisitor) VisitStateTable(NodeID, *StateTableData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitState(NodeID, *StateData) uint32                          { return 0 }
func (NoOpFlatVisitor) VisitSystem(NodeID, *SystemData) uint32                        { return 0 }
func (NoOpFlatVisitor) VisitGlobalAction(NodeID, *GlobalActionData) uint32            { return 0 }
func (NoOpFlatVisitor) VisitParameterAssign(NodeID, *ParameterAssignData) uint32      { return 0 }
func (NoOpFlatVisitor) VisitPortAssign(NodeID, *PortAssignData) uint32                { return 0 }
func (NoOpFlatVisitor) VisitTypeTPAssign(NodeID, *TypeTPAssignData) uint32            { return 0 }
func (NoOpFlatVisitor) VisitValueTPAssign(NodeID, *ValueTPAssignData) uint32          { return 0 }

// Accept dispatches id to the FlatVisitor method matching its concrete kind.
// This is the node kernel's accept(visitor) entry point.
func Accept(tree *Tree, id NodeID, v FlatVisitor) uint32 {
	n := tree.Node(id)
	if n == nil {
		return 0
	}
	switch d := n.Data.(type) {
	case *BitValueData:
		return v.VisitBitValue(id, d)
	case *BitvectorValueData:
		return v.VisitBitvectorValue(id, d)
	case *BoolValueData:
		return v.VisitBoolValue(id, d)
	case *CharValueData:
		return v.VisitCharValue(id, d)
	case *IntValueData:
		return v.VisitIntValue(id, d)
	case *RealValueData:
		return v.VisitRealValue(id, d)
	case *StringValueData:
		return v.VisitStringValue(id, d)
	case *TimeValueData:
		return v.VisitTimeValue(id, d)
	case *FieldReferenceData:
		return v.VisitFieldReference(id, d)
	case *MemberData:
		return v.VisitMember(id, d)
	case *SliceData:
		return v.VisitSlice(id, d)
	case *IdentifierData:
		return v.VisitIdentifier(id, d)
	case *InstanceData:
		return v.VisitInstance(id, d)
	case *AggregateData:
		return v.VisitAggregate(id, d)
	case *AggregateAltData:
		return v.VisitAggregateAlt(id, d)
	case *CastData:
		return v.VisitCast(id, d)
	case *ExpressionData:
		return v.VisitExpression(id, d)
	case *FunctionCallData:
		return v.VisitFunctionCall(id, d)
	case *RecordValueData:
		return v.VisitRecordValue(id, d)
	case *RecordValueAltData:
		return v.VisitRecordValueAlt(id, d)
	case *WhenData:
		return v.VisitWhen(id, d)
	case *WhenAltData:
		return v.VisitWhenAlt(id, d)
	case *WithData:
		return v.VisitWith(id, d)
	case *WithAltData:
		return v.VisitWithAlt(id, d)
	case *RangeData:
		return v.VisitRange(id, d)
	case *AssignData:
		return v.VisitAssign(id, d)
	case *IfData:
		return v.VisitIf(id, d)
	case *IfAltData:
		return v.VisitIfAlt(id, d)
	case *SwitchData:
		return v.VisitSwitch(id, d)
	case *SwitchAltData:
		return v.VisitSwitchAlt(id, d)
	case *ForData:
		return v.VisitFor(id, d)
	case *WhileData:
		return v.VisitWhile(id, d)
	case *ReturnData:
		return v.VisitReturn(id, d)
	case *BreakData:
		return v.VisitBreak(id, d)
	case *ContinueData:
		return v.VisitContinue(id, d)
	case *NullData:
		return v.VisitNull(id, d)
	case *ProcedureCallData:
		return v.VisitProcedureCall(id, d)
	case *TransitionData:
		return v.VisitTransition(id, d)
	case *WaitData:
		return v.VisitWait(id, d)
	case *ValueStatementData:
		return v.VisitValueStatement(id, d)
	case *TypeBitData:
		return v.VisitTypeBit(id, d)
	case *TypeBoolData:
		return v.VisitTypeBool(id, d)
	case *TypeCharData:
		return v.VisitTypeChar(id, d)
	case *TypeIntData:
		return v.VisitTypeInt(id, d)
	case *TypeRealData:
		return v.VisitTypeReal(id, d)
	case *TypeTimeData:
		return v.VisitTypeTime(id, d)
	case *TypeEventData:
		return v.VisitTypeEvent(id, d)
	case *TypeStringData:
		return v.VisitTypeString(id, d)
	case *TypeSignedData:
		return v.VisitTypeSigned(id, d)
	case *TypeUnsignedData:
		return v.VisitTypeUnsigned(id, d)
	case *TypeBitvectorData:
		return v.VisitTypeBitvector(id, d)
	case *TypeArrayData:
		return v.VisitTypeArray(id, d)
	case *TypeFileData:
		return v.VisitTypeFile(id, d)
	case *TypePointerData:
		return v.VisitTypePointer(id, d)
	case *TypeReferenceData:
		return v.VisitTypeReference(id, d)
	case *TypeEnumData:
		return v.VisitTypeEnum(id, d)
	case *TypeRecordData:
		return v.VisitTypeRecord(id, d)
	case *TypeLibraryData:
		return v.VisitTypeLibrary(id, d)
	case *TypeReferenceDeclData:
		return v.VisitTypeReferenceDecl(id, d)
	case *TypeViewReferenceData:
		return v.VisitTypeViewReference(id, d)
	case *AliasData:
		return v.VisitAlias(id, d)
	case *ConstData:
		return v.VisitConst(id, d)
	case *EnumValueData:
		return v.VisitEnumValue(id, d)
	case *FieldData:
		return v.VisitField(id, d)
	case *ParameterData:
		return v.VisitParameter(id, d)
	case *PortData:
		return v.VisitPort(id, d)
	case *SignalData:
		return v.VisitSignal(id, d)
	case *ValueTPData:
		return v.VisitValueTP(id, d)
	case *VariableData:
		return v.VisitVariable(id, d)
	case *TypeDefData:
		return v.VisitTypeDef(id, d)
	case *TypeTPData:
		return v.VisitTypeTP(id, d)
	case *LibraryDefData:
		return v.VisitLibraryDef(id, d)
	case *DesignUnitData:
		return v.VisitDesignUnit(id, d)
	case *ViewData:
		return v.VisitView(id, d)
	case *EntityData:
		return v.VisitEntity(id, d)
	case *ContentsData:
		return v.VisitContents(id, d)
	case *BaseContentsData:
		return v.VisitBaseContents(id, d)
	case *GenerateData:
		return v.VisitGenerate(id, d)
	case *ForGenerateData:
		return v.VisitForGenerate(id, d)
	case *IfGenerateData:
		return v.VisitIfGenerate(id, d)
	case *SubProgramData:
		return v.VisitSubProgram(id, d)
	case *FunctionData:
		return v.VisitFunction(id, d)
	case *ProcedureData:
		return v.VisitProcedure(id, d)
	case *StateTableData:
		return v.VisitStateTable(id, d)
	case *StateData:
		return v.VisitState(id, d)
	case *SystemData:
		return v.VisitSystem(id, d)
	case *GlobalActionData:
		return v.VisitGlobalAction(id, d)
	case *ParameterAssignData:
		return v.VisitParameterAssign(id, d)
	case *PortAssignData:
		return v.VisitPortAssign(id, d)
	case *TypeTPAssignData:
		return v.VisitTypeTPAssign(id, d)
	case *ValueTPAssignData:
		return v.VisitValueTPAssign(id, d)
	default:
		// Programming invariant violation: dispatch
		// landed on an unknown kind. Callers that need a graceful path
		// should check n.Data's type before calling Accept; the kernel
		// itself treats this as fatal.
		panic("ir: Accept dispatched to unknown payload kind " + n.Kind.String())
	}
}
