package xmlcodec

import "hif/internal/ir"

// newPayload allocates a zero-valued payload for kind, or reports false for
// a ClassID the codec does not know how to instantiate (ClassInvalid, or
// an abstract family marker that is never stored directly).
func newPayload(kind ir.ClassID) (ir.Payload, bool) {
	switch kind {
	case ir.ClassBitValue:
		return &ir.BitValueData{}, true
	case ir.ClassBitvectorValue:
		return &ir.BitvectorValueData{}, true
	case ir.ClassBoolValue:
		return &ir.BoolValueData{}, true
	case ir.ClassCharValue:
		return &ir.CharValueData{}, true
	case ir.ClassIntValue:
		return &ir.IntValueData{}, true
	case ir.ClassRealValue:
		return &ir.RealValueData{}, true
	case ir.ClassStringValue:
		return &ir.StringValueData{}, true
	case ir.ClassTimeValue:
		return &ir.TimeValueData{}, true

	case ir.ClassFieldReference:
		return &ir.FieldReferenceData{}, true
	case ir.ClassMember:
		return &ir.MemberData{}, true
	case ir.ClassSlice:
		return &ir.SliceData{}, true

	case ir.ClassIdentifier:
		return &ir.IdentifierData{}, true
	case ir.ClassInstance:
		return &ir.InstanceData{}, true
	case ir.ClassAggregate:
		return &ir.AggregateData{}, true
	case ir.ClassAggregateAlt:
		return &ir.AggregateAltData{}, true
	case ir.ClassCast:
		return &ir.CastData{}, true
	case ir.ClassExpression:
		return &ir.ExpressionData{}, true
	case ir.ClassFunctionCall:
		return &ir.FunctionCallData{}, true
	case ir.ClassRecordValue:
		return &ir.RecordValueData{}, true
	case ir.ClassRecordValueAlt:
		return &ir.RecordValueAltData{}, true
	case ir.ClassWhen:
		return &ir.WhenData{}, true
	case ir.ClassWhenAlt:
		return &ir.WhenAltData{}, true
	case ir.ClassWith:
		return &ir.WithData{}, true
	case ir.ClassWithAlt:
		return &ir.WithAltData{}, true
	case ir.ClassRange:
		return &ir.RangeData{}, true

	case ir.ClassAssign:
		return &ir.AssignData{}, true
	case ir.ClassIf:
		return &ir.IfData{}, true
	case ir.ClassIfAlt:
		return &ir.IfAltData{}, true
	case ir.ClassSwitch:
		return &ir.SwitchData{}, true
	case ir.ClassSwitchAlt:
		return &ir.SwitchAltData{}, true
	case ir.ClassFor:
		return &ir.ForData{}, true
	case ir.ClassWhile:
		return &ir.WhileData{}, true
	case ir.ClassReturn:
		return &ir.ReturnData{}, true
	case ir.ClassBreak:
		return &ir.BreakData{}, true
	case ir.ClassContinue:
		return &ir.ContinueData{}, true
	case ir.ClassNull:
		return &ir.NullData{}, true
	case ir.ClassProcedureCall:
		return &ir.ProcedureCallData{}, true
	case ir.ClassTransition:
		return &ir.TransitionData{}, true
	case ir.ClassWait:
		return &ir.WaitData{}, true
	case ir.ClassValueStatement:
		return &ir.ValueStatementData{}, true

	case ir.ClassTypeBit:
		return &ir.TypeBitData{}, true
	case ir.ClassTypeBool:
		return &ir.TypeBoolData{}, true
	case ir.ClassTypeChar:
		return &ir.TypeCharData{}, true
	case ir.ClassTypeInt:
		return &ir.TypeIntData{}, true
	case ir.ClassTypeReal:
		return &ir.TypeRealData{}, true
	case ir.ClassTypeTime:
		return &ir.TypeTimeData{}, true
	case ir.ClassTypeEvent:
		return &ir.TypeEventData{}, true
	case ir.ClassTypeString:
		return &ir.TypeStringData{}, true
	case ir.ClassTypeSigned:
		return &ir.TypeSignedData{}, true
	case ir.ClassTypeUnsigned:
		return &ir.TypeUnsignedData{}, true
	case ir.ClassTypeBitvector:
		return &ir.TypeBitvectorData{}, true

	case ir.ClassTypeArray:
		return &ir.TypeArrayData{}, true
	case ir.ClassTypeFile:
		return &ir.TypeFileData{}, true
	case ir.ClassTypePointer:
		return &ir.TypePointerData{}, true
	case ir.ClassTypeReference:
		return &ir.TypeReferenceData{}, true

	case ir.ClassTypeEnum:
		return &ir.TypeEnumData{}, true
	case ir.ClassTypeRecord:
		return &ir.TypeRecordData{}, true

	case ir.ClassTypeLibrary:
		return &ir.TypeLibraryData{}, true
	case ir.ClassTypeReferenceDecl:
		return &ir.TypeReferenceDeclData{}, true
	case ir.ClassTypeViewReference:
		return &ir.TypeViewReferenceData{}, true

	case ir.ClassAlias:
		return &ir.AliasData{}, true
	case ir.ClassConst:
		return &ir.ConstData{}, true
	case ir.ClassEnumValue:
		return &ir.EnumValueData{}, true
	case ir.ClassField:
		return &ir.FieldData{}, true
	case ir.ClassParameter:
		return &ir.ParameterData{}, true
	case ir.ClassPort:
		return &ir.PortData{}, true
	case ir.ClassSignal:
		return &ir.SignalData{}, true
	case ir.ClassValueTP:
		return &ir.ValueTPData{}, true
	case ir.ClassVariable:
		return &ir.VariableData{}, true

	case ir.ClassTypeDef:
		return &ir.TypeDefData{}, true
	case ir.ClassTypeTP:
		return &ir.TypeTPData{}, true

	case ir.ClassLibraryDef:
		return &ir.LibraryDefData{}, true
	case ir.ClassDesignUnit:
		return &ir.DesignUnitData{}, true
	case ir.ClassView:
		return &ir.ViewData{}, true
	case ir.ClassEntity:
		return &ir.EntityData{}, true
	case ir.ClassContents:
		return &ir.ContentsData{}, true
	case ir.ClassBaseContents:
		return &ir.BaseContentsData{}, true
	case ir.ClassGenerate:
		return &ir.GenerateData{}, true
	case ir.ClassForGenerate:
		return &ir.ForGenerateData{}, true
	case ir.ClassIfGenerate:
		return &ir.IfGenerateData{}, true
	case ir.ClassSubProgram:
		return &ir.SubProgramData{}, true
	case ir.ClassFunction:
		return &ir.FunctionData{}, true
	case ir.ClassProcedure:
		return &ir.ProcedureData{}, true
	case ir.ClassStateTable:
		return &ir.StateTableData{}, true
	case ir.ClassState:
		return &ir.StateData{}, true
	case ir.ClassSystem:
		return &ir.SystemData{}, true

	case ir.ClassGlobalAction:
		return &ir.GlobalActionData{}, true

	case ir.ClassParameterAssign:
		return &ir.ParameterAssignData{}, true
	case ir.ClassPortAssign:
		return &ir.PortAssignData{}, true
	case ir.ClassTypeTPAssign:
		return &ir.TypeTPAssignData{}, true
	case ir.ClassValueTPAssign:
		return &ir.ValueTPAssignData{}, true
	}
	return nil, false
}

// tagToClass is the reverse of ClassID.String(), built at package init from the
// closed taxonomy rather than duplicating the name table (which ir keeps
// unexported).
var tagToClass map[string]ir.ClassID

func init() {
	tagToClass = make(map[string]ir.ClassID, 96)
	// classIDSentinel is not exported, so probe a generous range; every id
	// in the closed taxonomy stringifies to something other than the two
	// fallback strings ir.ClassID.String() returns for gaps.
	for i := 1; i < 256; i++ {
		k := ir.ClassID(i)
		name := k.String()
		if name == "UNKNOWN_CLASS" || name == "INVALID" {
			continue
		}
		if _, ok := newPayload(k); !ok {
			continue
		}
		tagToClass[name] = k
	}
}
