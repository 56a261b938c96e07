// Package semantics defines the abstract "language semantics" contract
// threaded through the Standardization Engine, Symbol Mapper, Cast Manager,
// Process Analyzer and precision comparator. Pluggable behavior is one Go
// interface implemented once per language rather than a class hierarchy.
package semantics

import "hif/internal/ir"

// ExprContext tags the syntactic position an expression is being typed in,
// since several semantics rules (boolean coercion, bound handling) only
// apply in specific positions (condition contexts, indices and bounds).
type ExprContext uint8

const (
	ContextNone ExprContext = iota
	ContextCondition
	ContextBound
	ContextIndex
	ContextConcat
)

// ExprTypeResult is what ExprType returns: the resulting type plus its
// bit precision (needed to compare against a re-typed destination
// expression without re-deriving precision from scratch).
type ExprTypeResult struct {
	Type      ir.NodeID
	Precision int
	OK        bool
}

// SymbolAction is the action a standard-symbol mapping resolves to.
type SymbolAction uint8

const (
	ActionUnknown SymbolAction = iota
	ActionUnsupported
	ActionSimplified
	ActionMapKeep
	ActionMapDelete
)

func (a SymbolAction) String() string {
	switch a {
	case ActionUnknown:
		return "UNKNOWN"
	case ActionUnsupported:
		return "UNSUPPORTED"
	case ActionSimplified:
		return "SIMPLIFIED"
	case ActionMapKeep:
		return "MAP_KEEP"
	case ActionMapDelete:
		return "MAP_DELETE"
	default:
		return "UNKNOWN"
	}
}

// SymbolKey names a standard-library symbol being looked up: the library
// chain it was declared under plus its bare name, e.g. {"ieee.std_logic_1164", "rising_edge"}.
type SymbolKey struct {
	Library string
	Name    string
}

// SymbolMapping is filled by MapStandardSymbol on a successful (non-UNKNOWN)
// resolution.
type SymbolMapping struct {
	MappedName        string
	LibrariesToInclude []string
	Action            SymbolAction
}

// Language is the contract every supported language semantics implements.
// Each method receives the *ir.Tree it reads/writes from explicitly, so a
// semantics value carries no ambient global state.
type Language interface {
	// Name identifies the semantics for diagnostics and cache keys
	// (hifctx.Context's semantic-type cache is keyed in part by this).
	Name() string

	// RebasesTypes reports whether this semantics treats array/vector
	// indices as starting from the type's declared left bound (false) or
	// rebased to zero (true).
	RebasesTypes() bool
	// RebasesSlices reports whether a slice keeps the original bounds
	// (false) or rebases them (true).
	RebasesSlices() bool

	// TypeForConstant returns the canonical syntactic type of a ConstValue
	// literal under this semantics.
	TypeForConstant(tree *ir.Tree, value ir.NodeID) ir.NodeID
	// MapType canonicalizes t under this semantics (e.g. VHDL's
	// Bitvector(7 downto 0) -> SystemC's std::bitset<8>).
	MapType(tree *ir.Tree, t ir.NodeID) ir.NodeID

	// ExprType is the semantic typing rule for a unary (op2 invalid) or
	// binary expression. Returns a zero-valued, OK=false result when the
	// combination is disallowed by this semantics.
	ExprType(tree *ir.Tree, op1 ir.NodeID, op ir.Operator, op2 ir.NodeID, ctx ExprContext) ExprTypeResult
	// MapOperator retargets a source operator to this semantics' spelling
	// of the same operation (e.g. sll -> <<), given the already-mapped
	// operand types.
	MapOperator(op ir.Operator, op1, op2, mapped1, mapped2 ir.NodeID) ir.Operator
	// SuggestedTypeForOp is the fallback type to cast an operand to when
	// this semantics rejects the operation outright.
	SuggestedTypeForOp(tree *ir.Tree, precision int, op ir.Operator, other ir.NodeID, ctx ExprContext, isOperand1 bool) ir.NodeID

	// CheckCondition reports whether t is legal in conditional position.
	CheckCondition(tree *ir.Tree, t ir.NodeID, ctx ExprContext) bool
	// ExplicitCast re-expresses a cast in this semantics' idiomatic form
	// (may synthesize a call, a constructor, or a plain Cast). source may
	// be NoNode if the pre-cast type was not recorded.
	ExplicitCast(tree *ir.Tree, value, target, source ir.NodeID) ir.NodeID
	// ExplicitBoolConversion coerces value into this semantics' boolean
	// idiom (e.g. `x != 0`).
	ExplicitBoolConversion(tree *ir.Tree, value ir.NodeID) ir.NodeID

	// TypeDefaultValue returns the default-initialized value for typ.
	TypeDefaultValue(tree *ir.Tree, typ ir.NodeID, ctx ExprContext) ir.NodeID
	// IsTypeAllowedAsPort reports whether t (or a substitute) may be used
	// as a Port's type; the returned type is the one to actually use.
	IsTypeAllowedAsPort(tree *ir.Tree, t ir.NodeID) (ir.NodeID, bool)
	// IsTypeAllowedAsBound is the same check for Range bound position.
	IsTypeAllowedAsBound(tree *ir.Tree, t ir.NodeID) (ir.NodeID, bool)

	// StandardLibrary returns the bundled LibraryDef for name, or NoNode if
	// this semantics does not bundle it.
	StandardLibrary(tree *ir.Tree, name string) ir.NodeID
	// MapStandardSymbol resolves a standard-library symbol reference
	// originating from srcSem. On success (non-UNKNOWN) out.Action names
	// which of the four behaviors applies.
	MapStandardSymbol(tree *ir.Tree, decl ir.NodeID, key SymbolKey, srcSem Language) (SymbolMapping, SymbolAction)
	// SimplifiedSymbol returns the replacement IR fragment for a symbol
	// MapStandardSymbol resolved to ActionSimplified.
	SimplifiedSymbol(tree *ir.Tree, key SymbolKey, srcNode ir.NodeID) ir.NodeID
	// MapStandardFilename is the on-disk (or synthetic) filename backing
	// lib, used to label Library includes the mapper retargets.
	MapStandardFilename(lib string) string

	// TypeSize returns the bit width this semantics assigns to a
	// span-bearing type, for the precision comparator.
	TypeSize(tree *ir.Tree, t ir.NodeID) (size int, known bool)
	// TypeSigned reports whether t is this semantics' signed
	// interpretation, again for precision comparison.
	TypeSigned(tree *ir.Tree, t ir.NodeID) bool
}
