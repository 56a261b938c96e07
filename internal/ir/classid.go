// Package ir implements the HIF node kernel: the closed taxonomy of node
// kinds, their ownership and field structure, and the visitor dispatch every
// pass builds on.
package ir

// ClassID tags every concrete node kind in the closed HIF taxonomy.
type ClassID uint8

const (
	ClassInvalid ClassID = iota

	// Object root and typed-object marker are never instantiated directly;
	// every concrete kind below carries the semantics of one branch of the
	// Object/TypedObject/Value hierarchy described in the node taxonomy.

	// ConstValue family.
	ClassBitValue
	ClassBitvectorValue
	ClassBoolValue
	ClassCharValue
	ClassIntValue
	ClassRealValue
	ClassStringValue
	ClassTimeValue

	// PrefixedReference family.
	ClassFieldReference
	ClassMember
	ClassSlice

	ClassIdentifier
	ClassInstance
	ClassAggregate
	ClassAggregateAlt
	ClassCast
	ClassExpression
	ClassFunctionCall
	ClassRecordValue
	ClassRecordValueAlt
	ClassWhen
	ClassWhenAlt
	ClassWith
	ClassWithAlt
	ClassRange

	// Action family.
	ClassAssign
	ClassIf
	ClassIfAlt
	ClassSwitch
	ClassSwitchAlt
	ClassFor
	ClassWhile
	ClassReturn
	ClassBreak
	ClassContinue
	ClassNull
	ClassProcedureCall
	ClassTransition
	ClassWait
	ClassValueStatement

	// SimpleType family.
	ClassTypeBit
	ClassTypeBool
	ClassTypeChar
	ClassTypeInt
	ClassTypeReal
	ClassTypeTime
	ClassTypeEvent
	ClassTypeString
	ClassTypeSigned
	ClassTypeUnsigned
	ClassTypeBitvector

	// CompositeType family.
	ClassTypeArray
	ClassTypeFile
	ClassTypePointer
	ClassTypeReference

	// ScopedType family.
	ClassTypeEnum
	ClassTypeRecord

	// ReferencedType family.
	ClassTypeLibrary
	ClassTypeReferenceDecl
	ClassTypeViewReference

	// DataDeclaration family.
	ClassAlias
	ClassConst
	ClassEnumValue
	ClassField
	ClassParameter
	ClassPort
	ClassSignal
	ClassValueTP
	ClassVariable

	// TypeDeclaration family.
	ClassTypeDef
	ClassTypeTP

	// Scope family.
	ClassLibraryDef
	ClassDesignUnit
	ClassView
	ClassEntity
	ClassContents
	ClassBaseContents
	ClassGenerate
	ClassForGenerate
	ClassIfGenerate
	ClassSubProgram
	ClassFunction
	ClassProcedure
	ClassStateTable
	ClassState
	ClassSystem

	// Global action container (set of Assigns evaluated outside a process).
	ClassGlobalAction

	// Referenced assigns.
	ClassParameterAssign
	ClassPortAssign
	ClassTypeTPAssign
	ClassValueTPAssign

	classIDSentinel
)

var classNames = [...]string{
	ClassInvalid:            "INVALID",
	ClassBitValue:           "BIT_VALUE",
	ClassBitvectorValue:     "BITVECTOR_VALUE",
	ClassBoolValue:          "BOOL_VALUE",
	ClassCharValue:          "CHAR_VALUE",
	ClassIntValue:           "INT_VALUE",
	ClassRealValue:          "REAL_VALUE",
	ClassStringValue:        "STRING_VALUE",
	ClassTimeValue:          "TIME_VALUE",
	ClassFieldReference:     "FIELD_REFERENCE",
	ClassMember:             "MEMBER",
	ClassSlice:              "SLICE",
	ClassIdentifier:         "IDENTIFIER",
	ClassInstance:           "INSTANCE",
	ClassAggregate:          "AGGREGATE",
	ClassAggregateAlt:       "AGGREGATE_ALT",
	ClassCast:               "CAST",
	ClassExpression:         "EXPRESSION",
	ClassFunctionCall:       "FUNCTION_CALL",
	ClassRecordValue:        "RECORD_VALUE",
	ClassRecordValueAlt:     "RECORD_VALUE_ALT",
	ClassWhen:               "WHEN",
	ClassWhenAlt:            "WHEN_ALT",
	ClassWith:               "WITH",
	ClassWithAlt:            "WITH_ALT",
	ClassRange:              "RANGE",
	ClassAssign:             "ASSIGN",
	ClassIf:                 "IF",
	ClassIfAlt:              "IF_ALT",
	ClassSwitch:             "SWITCH",
	ClassSwitchAlt:          "SWITCH_ALT",
	ClassFor:                "FOR",
	ClassWhile:              "WHILE",
	ClassReturn:             "RETURN",
	ClassBreak:              "BREAK",
	ClassContinue:           "CONTINUE",
	ClassNull:               "NULL",
	ClassProcedureCall:      "PROCEDURE_CALL",
	ClassTransition:         "TRANSITION",
	ClassWait:               "WAIT",
	ClassValueStatement:     "VALUE_STATEMENT",
	ClassTypeBit:            "BIT",
	ClassTypeBool:           "BOOL",
	ClassTypeChar:           "CHAR",
	ClassTypeInt:            "INT",
	ClassTypeReal:           "REAL",
	ClassTypeTime:           "TIME",
	ClassTypeEvent:          "EVENT",
	ClassTypeString:         "STRING",
	ClassTypeSigned:         "SIGNED",
	ClassTypeUnsigned:       "UNSIGNED",
	ClassTypeBitvector:      "BITVECTOR",
	ClassTypeArray:          "ARRAY",
	ClassTypeFile:           "FILE",
	ClassTypePointer:        "POINTER",
	ClassTypeReference:      "REFERENCE",
	ClassTypeEnum:           "ENUM",
	ClassTypeRecord:         "RECORD",
	ClassTypeLibrary:        "LIBRARY",
	ClassTypeReferenceDecl:  "TYPE_REFERENCE",
	ClassTypeViewReference:  "VIEW_REFERENCE",
	ClassAlias:              "ALIAS",
	ClassConst:              "CONST",
	ClassEnumValue:          "ENUM_VALUE",
	ClassField:              "FIELD",
	ClassParameter:          "PARAMETER",
	ClassPort:               "PORT",
	ClassSignal:             "SIGNAL",
	ClassValueTP:            "VALUE_TP",
	ClassVariable:           "VARIABLE",
	ClassTypeDef:            "TYPE_DEF",
	ClassTypeTP:             "TYPE_TP",
	ClassLibraryDef:         "LIBRARY_DEF",
	ClassDesignUnit:         "DESIGN_UNIT",
	ClassView:               "VIEW",
	ClassEntity:             "ENTITY",
	ClassContents:           "CONTENTS",
	ClassBaseContents:       "BASE_CONTENTS",
	ClassGenerate:           "GENERATE",
	ClassForGenerate:        "FOR_GENERATE",
	ClassIfGenerate:         "IF_GENERATE",
	ClassSubProgram:         "SUB_PROGRAM",
	ClassFunction:           "FUNCTION",
	ClassProcedure:          "PROCEDURE",
	ClassStateTable:         "STATE_TABLE",
	ClassState:              "STATE",
	ClassSystem:             "SYSTEM",
	ClassGlobalAction:       "GLOBAL_ACTION",
	ClassParameterAssign:    "PARAMETER_ASSIGN",
	ClassPortAssign:         "PORT_ASSIGN",
	ClassTypeTPAssign:       "TYPE_TP_ASSIGN",
	ClassValueTPAssign:      "VALUE_TP_ASSIGN",
}

// String returns the canonical XML tag name for the class.
func (c ClassID) String() string {
	if int(c) < len(classNames) && classNames[c] != "" {
		return classNames[c]
	}
	return "UNKNOWN_CLASS"
}

// IsConstValue reports whether c is one of the ConstValue leaves.
func (c ClassID) IsConstValue() bool {
	switch c {
	case ClassBitValue, ClassBitvectorValue, ClassBoolValue, ClassCharValue,
		ClassIntValue, ClassRealValue, ClassStringValue, ClassTimeValue:
		return true
	}
	return false
}

// IsValue reports whether c belongs to the Value family: every expression
// kind, the ConstValue leaves and the PrefixedReference leaves included.
func (c ClassID) IsValue() bool {
	if c.IsConstValue() {
		return true
	}
	switch c {
	case ClassFieldReference, ClassMember, ClassSlice,
		ClassIdentifier, ClassInstance, ClassAggregate, ClassCast,
		ClassExpression, ClassFunctionCall, ClassRecordValue,
		ClassWhen, ClassWith, ClassRange:
		return true
	}
	return false
}

// IsTypedObject reports whether c carries a cached semantic type: every
// Value, plus the referenced assigns (an actual binding has the type of the
// formal it binds).
func (c ClassID) IsTypedObject() bool {
	return c.IsValue() || c.IsReferencedAssign()
}

// IsSimpleType reports whether c is one of the SimpleType leaves.
func (c ClassID) IsSimpleType() bool {
	switch c {
	case ClassTypeBit, ClassTypeBool, ClassTypeChar, ClassTypeInt, ClassTypeReal,
		ClassTypeTime, ClassTypeEvent, ClassTypeString, ClassTypeSigned,
		ClassTypeUnsigned, ClassTypeBitvector:
		return true
	}
	return false
}

// IsType reports whether c belongs to the Type family (Simple/Composite/Scoped/Referenced).
func (c ClassID) IsType() bool {
	if c.IsSimpleType() {
		return true
	}
	switch c {
	case ClassTypeArray, ClassTypeFile, ClassTypePointer, ClassTypeReference,
		ClassTypeEnum, ClassTypeRecord,
		ClassTypeLibrary, ClassTypeReferenceDecl, ClassTypeViewReference:
		return true
	}
	return false
}

// IsAction reports whether c belongs to the Action family.
func (c ClassID) IsAction() bool {
	switch c {
	case ClassAssign, ClassIf, ClassSwitch, ClassFor, ClassWhile, ClassReturn,
		ClassBreak, ClassContinue, ClassNull, ClassProcedureCall, ClassTransition,
		ClassWait, ClassValueStatement:
		return true
	}
	return false
}

// IsAlt reports whether c belongs to the Alt family.
func (c ClassID) IsAlt() bool {
	switch c {
	case ClassAggregateAlt, ClassIfAlt, ClassSwitchAlt, ClassWhenAlt, ClassWithAlt, ClassRecordValueAlt:
		return true
	}
	return false
}

// IsReferencedAssign reports whether c is one of ParameterAssign/PortAssign/TypeTPAssign/ValueTPAssign.
func (c ClassID) IsReferencedAssign() bool {
	switch c {
	case ClassParameterAssign, ClassPortAssign, ClassTypeTPAssign, ClassValueTPAssign:
		return true
	}
	return false
}

// IsDataDeclaration reports whether c is a DataDeclaration leaf.
func (c ClassID) IsDataDeclaration() bool {
	switch c {
	case ClassAlias, ClassConst, ClassEnumValue, ClassField, ClassParameter,
		ClassPort, ClassSignal, ClassValueTP, ClassVariable:
		return true
	}
	return false
}
