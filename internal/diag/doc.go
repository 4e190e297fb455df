// Package diag defines the diagnostic model shared by the lexer, the
// preprocessor, and the driver.
//
// Diagnostic is the central record: Severity, Code, Message, a primary
// source.Span, and optional Notes. Producers emit through the narrow Reporter
// interface so they stay decoupled from storage; BagReporter collects into a
// Bag, which supports sorting and deduplication for deterministic output.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; collection per file lives in the driver.
package diag
