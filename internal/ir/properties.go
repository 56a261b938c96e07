package ir

// PropertyID names a well-known property attachable to any node.
type PropertyID uint8

const (
	PropNone PropertyID = iota
	PropConfigurationFlag
	PropTLMForceArrow
	PropRequiredMacro
	PropRequiredMacroHH
	PropRequiredMacroCC
	PropUnsupported
	PropConstexpr
	PropMethodExplicitParameters
	PropTemporaryObject
	PropOriginalBitwidth
	// PropSkipFromSynchCone marks an asynchronous companion process created
	// by the splitter for an output whose synchronous process has an
	// asynchronous reset; not itself enumerated in
	// the wire format, but used the same way as a well-known process property.
	PropSkipFromSynchCone
)

var propertyNames = map[PropertyID]string{
	PropConfigurationFlag:        "CONFIGURATION_FLAG",
	PropTLMForceArrow:            "TLM_FORCEARROW",
	PropRequiredMacro:            "REQUIRED_MACRO",
	PropRequiredMacroHH:          "REQUIRED_MACRO_HH",
	PropRequiredMacroCC:          "REQUIRED_MACRO_CC",
	PropUnsupported:              "UNSUPPORTED",
	PropConstexpr:                "CONSTEXPR",
	PropMethodExplicitParameters: "METHOD_EXPLICIT_PARAMETERS",
	PropTemporaryObject:          "TEMPORARY_OBJECT",
	PropOriginalBitwidth:         "ORIGINAL_BITWIDTH",
	PropSkipFromSynchCone:        "SKIP_FROM_SYNCH_CONE",
}

// String returns the canonical property name.
func (p PropertyID) String() string {
	if s, ok := propertyNames[p]; ok {
		return s
	}
	return "UNKNOWN_PROPERTY"
}

// ParsePropertyID parses a canonical property name back into its id.
func ParsePropertyID(s string) (PropertyID, bool) {
	for id, name := range propertyNames {
		if name == s {
			return id, true
		}
	}
	return PropNone, false
}

// PropertyValue is an optional typed value attached to a property: a
// property may be a bare flag (Present, no Value) or carry a payload.
type PropertyValue struct {
	Present bool
	Value   any
}

// Properties is the name -> optional-typed-value bag every node carries.
type Properties struct {
	entries map[PropertyID]PropertyValue
}

// Set attaches a flag (no value) property.
func (p *Properties) Set(id PropertyID) {
	p.SetValue(id, nil)
}

// SetValue attaches a property with an explicit value.
func (p *Properties) SetValue(id PropertyID, value any) {
	if p.entries == nil {
		p.entries = make(map[PropertyID]PropertyValue)
	}
	p.entries[id] = PropertyValue{Present: true, Value: value}
}

// Has reports whether id is present on this node.
func (p *Properties) Has(id PropertyID) bool {
	if p.entries == nil {
		return false
	}
	v, ok := p.entries[id]
	return ok && v.Present
}

// Get returns the value for id and whether it was present.
func (p *Properties) Get(id PropertyID) (any, bool) {
	if p.entries == nil {
		return nil, false
	}
	v, ok := p.entries[id]
	if !ok {
		return nil, false
	}
	return v.Value, true
}

// Remove deletes a property.
func (p *Properties) Remove(id PropertyID) {
	if p.entries == nil {
		return
	}
	delete(p.entries, id)
}

// Each calls fn once per present property, in unspecified order. Used by
// the XML codec to persist the property bag (the <PROPERTIES>
// envelope child).
func (p Properties) Each(fn func(PropertyID, PropertyValue)) {
	for k, v := range p.entries {
		fn(k, v)
	}
}

// Clone returns a deep-enough copy suitable for a skeleton clone of the
// owning node (property values are copied by reference, matching the
// original's shallow-copy-of-scalars contract).
func (p Properties) Clone() Properties {
	if p.entries == nil {
		return Properties{}
	}
	out := make(map[PropertyID]PropertyValue, len(p.entries))
	for k, v := range p.entries {
		out[k] = v
	}
	return Properties{entries: out}
}
