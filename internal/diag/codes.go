package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Ядро дерева (node kernel)
	KerInfo            Code = 1000
	KerUnknownClass    Code = 1001
	KerBadFieldSlot    Code = 1002
	KerBadListPosition Code = 1003
	KerOrphanNode      Code = 1004
	KerDoubleParent    Code = 1005
	KerDanglingWeakRef Code = 1006
	KerVisitorMismatch Code = 1007
	KerListMembership  Code = 1008
	KerMirrorSlot      Code = 1009

	// XML кодек (резервируем)
	XMLInfo               Code = 2000
	XMLMalformedDocument  Code = 2001
	XMLUnknownElement     Code = 2002
	XMLUnknownFormatVer   Code = 2003
	XMLMissingAttribute   Code = 2004
	XMLMissingChild       Code = 2005
	XMLBadScalar          Code = 2006
	XMLDuplicateChild     Code = 2007
	XMLBadEnumString      Code = 2008
	XMLBadOperator        Code = 2009
	XMLMultipleRoots      Code = 2010
	XMLEmptyStandardLib   Code = 2011
	XMLLegacyBoundElement Code = 2012
	XMLUnexpectedText     Code = 2013

	// Стандартизация (самое большое семейство)
	StdInfo                  Code = 3000
	StdError                 Code = 3001
	StdSourceIllTyped        Code = 3002
	StdUnsupportedConstruct  Code = 3003
	StdMissingMapEntry       Code = 3004
	StdOperatorUnmapped      Code = 3005
	StdSuggestedTypeMissing  Code = 3006
	StdBoundNotAdditive      Code = 3007
	StdConditionRejected     Code = 3008
	StdConstantFoldFailed    Code = 3009
	StdSpanRebaseFailed      Code = 3010
	StdSkeletonCollision     Code = 3011
	StdPortMissingDefault    Code = 3012
	StdPortDirectionNone     Code = 3013
	StdSortMissingFormal     Code = 3014
	StdSortDuplicateActual   Code = 3015
	StdArgumentCountMismatch Code = 3016
	StdReturnOutsideFunction Code = 3017
	StdReturnNotAssignable   Code = 3018
	StdAggregateElementType  Code = 3019
	StdSliceDirectionFlip    Code = 3020
	StdDeclarationUnresolved Code = 3021
	StdSyntacticTypeMissing  Code = 3022
	StdPrecisionUncomparable Code = 3023
	StdCaseAltPrecision      Code = 3024
	StdWhenValueAlignment    Code = 3025
	StdTemplateArgUnbound    Code = 3026

	// Ошибки I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Манифест трансляции (hif.toml)
	JobInfo              Code = 5000
	JobBadManifest       Code = 5001
	JobUnknownSemantics  Code = 5002
	JobSameSemantics     Code = 5003
	JobMissingInput      Code = 5004
	JobMissingOutput     Code = 5005
	JobBadAnalyzeOption  Code = 5006
	JobCacheUnreadable   Code = 5007
	JobCacheHashMismatch Code = 5008

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001

	// Отображение стандартных символов
	SymInfo                Code = 7000
	SymUnsupportedSymbol   Code = 7001
	SymAmbiguousMapEntry   Code = 7002
	SymLibraryNotFound     Code = 7003
	SymSimplifiedMissing   Code = 7004
	SymIncludeUnresolved   Code = 7005
	SymForeignLibraryKept  Code = 7006
	SymPrefixChainTooShort Code = 7007

	// Менеджер кастов
	CastInfo               Code = 8000
	CastNoSuitableCast     Code = 8001
	CastBoolConversionFail Code = 8002
	CastMapMissingEntry    Code = 8003
	CastOnTargetPosition   Code = 8004

	// Анализ и расщепление процессов
	ProcInfo                 Code = 9000
	ProcWaitUnsupported      Code = 9001
	ProcAmbiguousSensitivity Code = 9002
	ProcNoStyleMatch         Code = 9003
	ProcMixedStyleConflict   Code = 9004
	ProcCyclicDependency     Code = 9005
	ProcForeignVariable      Code = 9006
	ProcSensitivityNotSignal Code = 9007
	ProcDerivedClockGuess    Code = 9008
	ProcMultipleStates       Code = 9009
	ProcEmptyBody            Code = 9010
	ProcSplitNotIdempotent   Code = 9011
)

var ( // todo расширить описания и использовать как notes
	codeDescription = map[Code]string{
		UnknownCode: "Unknown error",

		KerInfo:            "Kernel information",
		KerUnknownClass:    "Dispatch reached an unknown class id",
		KerBadFieldSlot:    "Field slot not present on this node kind",
		KerBadListPosition: "Child list position out of range",
		KerOrphanNode:      "Node has no parent but is not the tree root",
		KerDoubleParent:    "Node attached while still owned by another parent",
		KerDanglingWeakRef: "Weak reference resolves outside the tree",
		KerVisitorMismatch: "Visitor table has no method for this class id",
		KerListMembership:  "Node already belongs to another child list",
		KerMirrorSlot:      "Mirrored slot not found in destination parent",

		XMLInfo:               "XML codec information",
		XMLMalformedDocument:  "Document is not well-formed HIF XML",
		XMLUnknownElement:     "Element tag is not a known class id",
		XMLUnknownFormatVer:   "Unrecognized formatVersion on SYSTEM",
		XMLMissingAttribute:   "Required attribute is missing",
		XMLMissingChild:       "Required child element is missing",
		XMLBadScalar:          "Attribute value does not parse as its scalar type",
		XMLDuplicateChild:     "Child field element appears more than once",
		XMLBadEnumString:      "Attribute value is not a canonical enum string",
		XMLBadOperator:        "Operator attribute does not name an operator",
		XMLMultipleRoots:      "More than one SYSTEM root element",
		XMLEmptyStandardLib:   "Standard library body is empty and no bundled copy exists",
		XMLLegacyBoundElement: "Legacy bound element used with formatVersion >= 4",
		XMLUnexpectedText:     "Unexpected character data inside a node element",

		StdInfo:                  "Standardization information",
		StdError:                 "Standardization error",
		StdSourceIllTyped:        "Source expression has no type under the source semantics",
		StdUnsupportedConstruct:  "Construct has no destination-semantics equivalent",
		StdMissingMapEntry:       "No destination mapping for this type or operator",
		StdOperatorUnmapped:      "Operator remap returned no destination operator",
		StdSuggestedTypeMissing:  "Destination semantics suggested no fallback operand type",
		StdBoundNotAdditive:      "Range bounds are not additive under the destination semantics",
		StdConditionRejected:     "Condition type rejected by the destination semantics",
		StdConstantFoldFailed:    "Constant does not fold into the mapped type",
		StdSpanRebaseFailed:      "Span could not be rebased to the destination numbering",
		StdSkeletonCollision:     "Skeleton clone collided with an already-mirrored node",
		StdPortMissingDefault:    "Out or inout port has no default value",
		StdPortDirectionNone:     "Port direction is none",
		StdSortMissingFormal:     "Actual argument names no formal of the declaration",
		StdSortDuplicateActual:   "Two actuals bind the same formal",
		StdArgumentCountMismatch: "Actual argument count differs from the declaration",
		StdReturnOutsideFunction: "Return statement outside a function body",
		StdReturnNotAssignable:   "Return value not assignable to the function result type",
		StdAggregateElementType:  "Aggregate element does not match the mapped element type",
		StdSliceDirectionFlip:    "Slice direction disagrees with the sliced type",
		StdDeclarationUnresolved: "Symbol does not resolve to a declaration",
		StdSyntacticTypeMissing:  "Constant lacks a syntactic type where one is required",
		StdPrecisionUncomparable: "Operand precisions are uncomparable",
		StdCaseAltPrecision:      "Case alternative condition precision differs from the switch",
		StdWhenValueAlignment:    "When alternative value does not align with the result type",
		StdTemplateArgUnbound:    "Template argument binds no template parameter",

		IOLoadFileError:  "I/O load file error",
		IOWriteFileError: "I/O write file error",

		JobInfo:              "Job manifest information",
		JobBadManifest:       "Manifest does not parse as TOML",
		JobUnknownSemantics:  "Semantics id names no registered language",
		JobSameSemantics:     "Source and destination semantics are identical",
		JobMissingInput:      "Manifest names no input tree",
		JobMissingOutput:     "Manifest names no output path",
		JobBadAnalyzeOption:  "Unknown process-analysis option",
		JobCacheUnreadable:   "Analysis cache exists but does not decode",
		JobCacheHashMismatch: "Analysis cache was built from a different tree",

		ObsInfo:    "Observability information",
		ObsTimings: "Pipeline timings",

		SymInfo:                "Symbol mapping information",
		SymUnsupportedSymbol:   "Standard symbol has no mapping in the destination semantics",
		SymAmbiguousMapEntry:   "Symbol map entry matched more than one candidate",
		SymLibraryNotFound:     "Referenced library include does not resolve",
		SymSimplifiedMissing:   "Simplified symbol has no replacement fragment",
		SymIncludeUnresolved:   "Include retarget names no bundled library",
		SymForeignLibraryKept:  "Library is not bundled by the destination; kept opaque",
		SymPrefixChainTooShort: "Prefix chain is shorter than the mapped scope path",

		CastInfo:               "Cast manager information",
		CastNoSuitableCast:     "No explicit cast exists between the operand and required type",
		CastBoolConversionFail: "Condition value has no boolean conversion",
		CastMapMissingEntry:    "Cast has no recorded pre-map source type",
		CastOnTargetPosition:   "Cast found on an assignment target",

		ProcInfo:                 "Process analysis information",
		ProcWaitUnsupported:      "Process contains a wait statement",
		ProcAmbiguousSensitivity: "Sensitivity list does not determine a single working edge",
		ProcNoStyleMatch:         "Process body matches no canonical style",
		ProcMixedStyleConflict:   "Process body mixes incompatible canonical styles",
		ProcCyclicDependency:     "Split produced a cyclic variable dependency graph",
		ProcForeignVariable:      "Mixed process references a variable outside its scope",
		ProcSensitivityNotSignal: "Sensitivity entry resolves to neither a signal nor a port",
		ProcDerivedClockGuess:    "Single unknown sensitivity signal assumed to be a derived clock",
		ProcMultipleStates:       "Process owns more than one state",
		ProcEmptyBody:            "Process body is empty",
		ProcSplitNotIdempotent:   "Re-splitting an already split process changed the tree",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("KER%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("XML%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("STD%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("JOB%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("SYM%04d", ic)
	case ic >= 8000 && ic < 9000:
		return fmt.Sprintf("CAST%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("PROC%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
