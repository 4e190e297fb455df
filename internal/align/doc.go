// Package align merges two token views of one file: the raw, comment-keeping
// token list and the macro-expanded stream. It classifies every divergence as
// a deletion (text consumed by macro machinery), an insertion (expansion text
// with no source counterpart), or a pass-through (directives, comments,
// unchanged code), and renders the difference as insert-only edits on a
// rewrite.Buffer.
//
// Both cursors only move forward, so edit offsets come out non-decreasing and
// a single pass suffices. The expansion side is consumed through the narrow
// Source interface, which lets tests drive the aligner with a scripted stream
// instead of a real preprocessor.
package align
