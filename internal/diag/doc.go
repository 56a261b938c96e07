// Package diag defines the diagnostic model shared by every pass of the
// translation pipeline.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the XML codec, the standardization engine, the symbol mapper,
//     the cast manager and the process analyzer/splitter.
//   - Offer light-weight utilities (Reporter, Bag) that let passes emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model fix suggestions as structured edits against the input XML text that
//     the CLI can materialise and optionally apply.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in internal/diagfmt;
// orchestration lives in cmd/hifc.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//     Codes are grouped per producer: KER (node kernel invariants), XML (codec),
//     STD (standardization), JOB (manifest), SYM (symbol mapping), CAST (cast
//     manager), PROC (process analysis and split).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing into the input XML.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional Fix records describing how to address the problem.
//
// Notes should be used sparingly: each note must add new context (e.g. “formal
// declared here”) rather than repeating the diagnostic message.
//
// # Fatal versus warned outcomes
//
// Programming-invariant violations (KER codes) and typing or mapping failures
// (STD, CAST, SYM codes emitted with SevError) abort the pass; the partially
// built destination tree is dropped and the source tree is left untouched.
// Analyzer and splitter mismatches (PROC codes) are warnings: the process is
// kept as is and the caller decides. Producers express this difference purely
// through Severity; the Bag does not interpret codes.
//
// # Emitting diagnostics
//
// Passes should use a diag.Reporter to decouple emission from storage. A pass
// constructs a ReportBuilder via NewReportBuilder (or the helper functions
// ReportError/ReportWarning/ReportInfo) and chains WithNote / WithFixSuggestion
// before calling Emit.
//
// When no additional metadata is needed, passes may call Reporter.Report(...)
// directly. For convenience, diag.BagReporter aggregates diagnostics into a Bag,
// which supports sorting, deduplication, filtering, and transformation.
//
// Keep the data model deterministic: any new fields should honour the package’s
// layering constraints and avoid side effects, so the CLI and future tooling can
// safely serialise diagnostics for caching and testing.
package diag
