// Package diag defines the diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures for findings
//     produced by the lexer, parser and binder.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting layers.
//
// # Scope
//
// Package diag performs no formatting, IO or CLI integration. Rendering
// lives in internal/diagfmt; collection and transport live in the driver.
//
// # Data model
//
// Diagnostic is the central record: Severity (Info, Warning, Error), Code (a
// compact numeric identifier with a stable string form like SEM3001), a
// short human-oriented Message, the Primary source.Span, and optional Notes
// pointing at secondary locations. A note must add new context (e.g.
// "previous declaration here") rather than repeat the message.
//
// # Emitting diagnostics
//
// Phases emit through a diag.Reporter. The binder constructs a
// ReportBuilder via ReportError and chains WithNote before calling Emit;
// simple producers call Reporter.Report directly. BagReporter aggregates
// into a Bag, which supports sorting, deduplication and merging;
// DedupReporter suppresses exact repeats before they reach storage.
//
// Keep the model plain data with no side effects, so the driver can cache
// serialised diagnostics and tests can compare golden renderings.
package diag
