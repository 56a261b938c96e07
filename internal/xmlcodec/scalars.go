package xmlcodec

import (
	"encoding/xml"
	"strconv"

	"hif/internal/ir"
)

// typeVariantNames renders ir.TypeVariant, a tag every Type carries but
// whose wire spelling the canonical enum list does not fix; the codec owns
// this mapping rather than the kernel.
var typeVariantNames = map[ir.TypeVariant]string{
	ir.VariantDeclared:   "DECLARED",
	ir.VariantInferred:   "INFERRED",
	ir.VariantBoundProbe: "BOUND_PROBE",
}

func typeVariantString(v ir.TypeVariant) string {
	if s, ok := typeVariantNames[v]; ok {
		return s
	}
	return "DECLARED"
}

func parseTypeVariant(s string) ir.TypeVariant {
	for v, name := range typeVariantNames {
		if name == s {
			return v
		}
	}
	return ir.VariantDeclared
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func findAttr(start xml.StartElement, names ...string) (string, bool) {
	for _, want := range names {
		for _, a := range start.Attr {
			if a.Name.Local == want {
				return a.Value, true
			}
		}
	}
	return "", false
}

func boolAttr(start xml.StartElement, names ...string) bool {
	v, ok := findAttr(start, names...)
	return ok && v == "true"
}

// encodeScalars returns the non-structural (non-Fields/Lists) attributes of
// payload: literal values, enum tags, and flags. Every concrete kind not
// mentioned here carries no scalar attributes of its own.
func encodeScalars(payload ir.Payload) []xml.Attr {
	var out []xml.Attr
	switch d := payload.(type) {
	case *ir.BitValueData:
		out = append(out, attr("value", d.Value.String()))
	case *ir.BitvectorValueData:
		out = append(out, attr("value", d.Value))
	case *ir.BoolValueData:
		out = append(out, attr("value", strconv.FormatBool(d.Value)))
	case *ir.CharValueData:
		out = append(out, attr("value", string(d.Value)))
	case *ir.IntValueData:
		out = append(out, attr("value", strconv.FormatInt(d.Value, 10)))
	case *ir.RealValueData:
		out = append(out, attr("value", strconv.FormatFloat(d.Value, 'g', -1, 64)))
	case *ir.StringValueData:
		out = append(out, attr("value", d.Value), attr("is_plain", strconv.FormatBool(d.IsPlain)))
	case *ir.TimeValueData:
		out = append(out, attr("value", strconv.FormatFloat(d.Value, 'g', -1, 64)), attr("unit", d.Unit))

	case *ir.RangeData:
		out = append(out, attr("direction", d.Dir.String()))
	case *ir.AssignData:
		out = append(out, attr("delta", strconv.FormatBool(d.Delta)))
	case *ir.WhenData:
		out = append(out, attr("logic", strconv.FormatBool(d.Logic)))
	case *ir.WithData:
		out = append(out, attr("case", d.Case.String()))
	case *ir.SwitchData:
		out = append(out, attr("case", d.Case.String()))
	case *ir.ExpressionData:
		out = append(out, attr("op", d.Op.String()))
	case *ir.FunctionCallData, *ir.ProcedureCallData:
		// ResolvesTo is a re-resolved reference-map cache, not wire data
		// (reference lookup caches are an opaque out-of-scope
		// service); only the formal Name travels on the wire.
	case *ir.WhileData:
		out = append(out, attr("do_while", strconv.FormatBool(d.DoWhile)))
	case *ir.TransitionData:
		out = append(out, attr("next_state", d.NextState))

	case *ir.ConstData:
		out = append(out, attr("constexpr", strconv.FormatBool(d.Constexpr)))
	case *ir.ParameterData:
		out = append(out, attr("direction", d.Direction.String()))
	case *ir.PortData:
		out = append(out, attr("direction", d.Direction.String()))
	case *ir.TypeDefData:
		out = append(out, attr("opaque", strconv.FormatBool(d.Opaque)))

	case *ir.TypeArrayData:
		out = append(out, attr("signed", strconv.FormatBool(d.Signed)), attr("constexpr", strconv.FormatBool(d.Constexpr)))
	case *ir.TypeRecordData:
		out = append(out, attr("packed", strconv.FormatBool(d.Packed)))
	case *ir.TypeLibraryData:
		out = append(out, attr("standard", strconv.FormatBool(d.Standard)), attr("system", strconv.FormatBool(d.System_)))
	case *ir.TypeReferenceDeclData:
		out = append(out, attr("library", d.Library))
	case *ir.TypeViewReferenceData:
		out = append(out, attr("design_unit", d.DesignUnit))

	case *ir.LibraryDefData:
		out = append(out, attr("standard", strconv.FormatBool(d.Standard)), attr("system", strconv.FormatBool(d.System_)))
	case *ir.ViewData:
		out = append(out, attr("language", d.Language.String()))
	case *ir.StateTableData:
		out = append(out, attr("flavor", d.Flavor.String()), attr("dont_initialize", strconv.FormatBool(d.DontInitialize)))
	case *ir.SystemData:
		out = append(out, attr("formatVersion", d.FormatVersion))

	case *ir.ParameterAssignData:
		out = append(out, attr("direction", d.Direction.String()))
	case *ir.PortAssignData:
		out = append(out, attr("direction", d.Direction.String()))
	}

	// Every SimpleType leaf shares simpleTypeBase's three scalar fields
	// (Constexpr, Signed, Variant), reached through ir.SimpleTypeScalars
	// instead of a type switch over all eleven leaf types.
	if st, ok := payload.(ir.SimpleTypeScalars); ok {
		out = append(out,
			attr("constexpr", strconv.FormatBool(st.Constexpr())),
			attr("signed", strconv.FormatBool(st.Signed())),
			attr("variant", typeVariantString(st.Variant())),
		)
	}
	return out
}

// decodeScalars fills in payload's non-structural fields from start's
// attributes. Unknown/absent attributes leave the zero value, matching the
// codec's lenient stance on partially-populated documents.
func decodeScalars(payload ir.Payload, start xml.StartElement) {
	switch d := payload.(type) {
	case *ir.BitValueData:
		if v, ok := findAttr(start, "value"); ok {
			d.Value, _ = ir.ParseBitConstant(v)
		}
	case *ir.BitvectorValueData:
		if v, ok := findAttr(start, "value"); ok {
			d.Value = v
		}
	case *ir.BoolValueData:
		d.Value = boolAttr(start, "value")
	case *ir.CharValueData:
		if v, ok := findAttr(start, "value"); ok && len(v) > 0 {
			d.Value = []rune(v)[0]
		}
	case *ir.IntValueData:
		if v, ok := findAttr(start, "value"); ok {
			d.Value, _ = strconv.ParseInt(v, 10, 64)
		}
	case *ir.RealValueData:
		if v, ok := findAttr(start, "value"); ok {
			d.Value, _ = strconv.ParseFloat(v, 64)
		}
	case *ir.StringValueData:
		if v, ok := findAttr(start, "value"); ok {
			d.Value = v
		}
		d.IsPlain = boolAttr(start, "is_plain")
	case *ir.TimeValueData:
		if v, ok := findAttr(start, "value"); ok {
			d.Value, _ = strconv.ParseFloat(v, 64)
		}
		if v, ok := findAttr(start, "unit"); ok {
			d.Unit = v
		}

	case *ir.RangeData:
		// Legacy (<4) documents carry no "direction" attribute on a bare
		// LBOUND/RBOUND pair; the Range then keeps the zero value DirUnknown.
		if v, ok := findAttr(start, "direction"); ok {
			d.Dir, _ = ir.ParseDirection(v)
		}
	case *ir.AssignData:
		d.Delta = boolAttr(start, "delta")
	case *ir.WhenData:
		d.Logic = boolAttr(start, "logic")
	case *ir.WithData:
		if v, ok := findAttr(start, "case"); ok {
			d.Case, _ = ir.ParseCaseSemantics(v)
		}
	case *ir.SwitchData:
		if v, ok := findAttr(start, "case"); ok {
			d.Case, _ = ir.ParseCaseSemantics(v)
		}
	case *ir.ExpressionData:
		// Format <4 spells the attribute "operator" instead of "op".
		if v, ok := findAttr(start, "op", "operator"); ok {
			d.Op, _ = ir.ParseOperator(v)
		}
	case *ir.WhileData:
		d.DoWhile = boolAttr(start, "do_while")
	case *ir.TransitionData:
		if v, ok := findAttr(start, "next_state"); ok {
			d.NextState = v
		}

	case *ir.ConstData:
		d.Constexpr = boolAttr(start, "constexpr")
	case *ir.ParameterData:
		if v, ok := findAttr(start, "direction"); ok {
			d.Direction, _ = ir.ParsePortDirection(v)
		}
	case *ir.PortData:
		if v, ok := findAttr(start, "direction"); ok {
			d.Direction, _ = ir.ParsePortDirection(v)
		}
	case *ir.TypeDefData:
		d.Opaque = boolAttr(start, "opaque")

	case *ir.TypeArrayData:
		d.Signed = boolAttr(start, "signed")
		d.Constexpr = boolAttr(start, "constexpr")
	case *ir.TypeRecordData:
		d.Packed = boolAttr(start, "packed")
	case *ir.TypeLibraryData:
		d.Standard = boolAttr(start, "standard")
		d.System_ = boolAttr(start, "system")
	case *ir.TypeReferenceDeclData:
		if v, ok := findAttr(start, "library"); ok {
			d.Library = v
		}
	case *ir.TypeViewReferenceData:
		if v, ok := findAttr(start, "design_unit"); ok {
			d.DesignUnit = v
		}

	case *ir.LibraryDefData:
		d.Standard = boolAttr(start, "standard")
		d.System_ = boolAttr(start, "system")
	case *ir.ViewData:
		if v, ok := findAttr(start, "language"); ok {
			d.Language, _ = ir.ParseLanguageID(v)
		}
	case *ir.StateTableData:
		if v, ok := findAttr(start, "flavor"); ok {
			d.Flavor, _ = ir.ParseProcessFlavor(v)
		}
		d.DontInitialize = boolAttr(start, "dont_initialize")
	case *ir.SystemData:
		if v, ok := findAttr(start, "formatVersion"); ok {
			d.FormatVersion = v
		}

	case *ir.ParameterAssignData:
		if v, ok := findAttr(start, "direction"); ok {
			d.Direction, _ = ir.ParsePortDirection(v)
		}
	case *ir.PortAssignData:
		if v, ok := findAttr(start, "direction"); ok {
			d.Direction, _ = ir.ParsePortDirection(v)
		}
	}

	if st, ok := payload.(simpleTypeSetter); ok {
		st.SetConstexpr(boolAttr(start, "constexpr"))
		st.SetSigned(boolAttr(start, "signed"))
		if v, ok := findAttr(start, "variant"); ok {
			st.SetVariant(parseTypeVariant(v))
		}
	}
}

// simpleTypeSetter is the setter half of ir.SimpleTypeScalars.
type simpleTypeSetter interface {
	SetConstexpr(bool)
	SetSigned(bool)
	SetVariant(ir.TypeVariant)
}
