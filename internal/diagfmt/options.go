package diagfmt

// Format selects which renderer a caller feeds its Bag to.
type Format uint8

const (
	FormatPretty Format = iota
	FormatJSON
	FormatSARIF
)

// ParseFormat maps the CLI's --diag-format spelling onto a Format,
// defaulting to pretty for anything unrecognized.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	case "sarif":
		return FormatSARIF
	default:
		return FormatPretty
	}
}

// PathMode specifies how input-XML paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the stored path when it is relative or shorter than
	// 40 bytes, and otherwise shows only its base name.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color       bool
	Context     int8
	PathMode    PathMode
	Width       uint8 // максимальная ширина строки, 0 - не ограничено
	ShowNotes   bool
	ShowFixes   bool
	ShowPreview bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
	IncludeFixes     bool
	IncludePreviews  bool
	IncludeSemantics bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
