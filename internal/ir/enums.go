package ir

// Direction is a Range's index direction.
type Direction uint8

const (
	DirUnknown Direction = iota
	DirUpto
	DirDownto
)

var directionStrings = map[Direction]string{DirUpto: "UPTO", DirDownto: "DOWNTO"}

func (d Direction) String() string { return lookupOr(directionStrings, d, "UNKNOWN") }

// ParseDirection parses a canonical direction string.
func ParseDirection(s string) (Direction, bool) { return parseLookup(directionStrings, s) }

// PortDirection is a Port's direction (never NONE on a stored Port).
type PortDirection uint8

const (
	PortDirNone PortDirection = iota
	PortDirIn
	PortDirOut
	PortDirInout
)

var portDirectionStrings = map[PortDirection]string{
	PortDirNone:  "NONE",
	PortDirIn:    "IN",
	PortDirOut:   "OUT",
	PortDirInout: "INOUT",
}

func (d PortDirection) String() string { return lookupOr(portDirectionStrings, d, "NONE") }

// ParsePortDirection parses a canonical port-direction string.
func ParsePortDirection(s string) (PortDirection, bool) { return parseLookup(portDirectionStrings, s) }

// BitConstant is a 9-valued bit literal.
type BitConstant uint8

const (
	BitU BitConstant = iota
	BitX
	Bit0
	Bit1
	BitZ
	BitW
	BitL
	BitH
	BitDashCare
)

var bitConstantStrings = map[BitConstant]string{
	BitU: "U", BitX: "X", Bit0: "0", Bit1: "1", BitZ: "Z",
	BitW: "W", BitL: "L", BitH: "H", BitDashCare: "-",
}

func (b BitConstant) String() string { return lookupOr(bitConstantStrings, b, "U") }

// ParseBitConstant parses a canonical bit-constant string.
func ParseBitConstant(s string) (BitConstant, bool) { return parseLookup(bitConstantStrings, s) }

// ProcessFlavor tags the flavor of a StateTable.
type ProcessFlavor uint8

const (
	FlavorMethod ProcessFlavor = iota
	FlavorThread
	FlavorHDL
	FlavorInitial
	FlavorAnalog
)

var processFlavorStrings = map[ProcessFlavor]string{
	FlavorMethod:  "METHOD",
	FlavorThread:  "THREAD",
	FlavorHDL:     "HDL",
	FlavorInitial: "INITIAL",
	FlavorAnalog:  "ANALOG",
}

func (f ProcessFlavor) String() string { return lookupOr(processFlavorStrings, f, "HDL") }

// ParseProcessFlavor parses a canonical process-flavor string.
func ParseProcessFlavor(s string) (ProcessFlavor, bool) { return parseLookup(processFlavorStrings, s) }

// LanguageID names the source/destination semantics' language family.
type LanguageID uint8

const (
	LangUnknown LanguageID = iota
	LangRTL               // VHDL / Verilog, pre-elaboration register-transfer level
	LangTLM                // SystemC TLM
	LangCPP
	LangC
	LangPSL
	LangAMS
)

var languageIDStrings = map[LanguageID]string{
	LangRTL: "RTL", LangTLM: "TLM", LangCPP: "CPP", LangC: "C", LangPSL: "PSL", LangAMS: "AMS",
}

func (l LanguageID) String() string { return lookupOr(languageIDStrings, l, "RTL") }

// ParseLanguageID parses a canonical language-id string.
func ParseLanguageID(s string) (LanguageID, bool) { return parseLookup(languageIDStrings, s) }

// CaseSemantics tags how a Switch/Case alt compares its values.
type CaseSemantics uint8

const (
	CaseLiteral CaseSemantics = iota
	CaseX
	CaseZ
)

var caseSemanticsStrings = map[CaseSemantics]string{
	CaseLiteral: "CASE_LITERAL", CaseX: "CASE_X", CaseZ: "CASE_Z",
}

func (c CaseSemantics) String() string { return lookupOr(caseSemanticsStrings, c, "CASE_LITERAL") }

// ParseCaseSemantics parses a canonical case-semantics string.
func ParseCaseSemantics(s string) (CaseSemantics, bool) { return parseLookup(caseSemanticsStrings, s) }

func lookupOr[K comparable](m map[K]string, k K, dflt string) string {
	if s, ok := m[k]; ok {
		return s
	}
	return dflt
}

func parseLookup[K comparable](m map[K]string, s string) (K, bool) {
	for k, v := range m {
		if v == s {
			return k, true
		}
	}
	var zero K
	return zero, false
}
