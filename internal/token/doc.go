// Package token defines lexical token kinds for the C frontend of cexpand.
// Invariants:
//   - Token.Text is the exact source spelling for tokens lexed from a file;
//     tokens synthesized by macro expansion ('##' paste, '#' stringize) carry
//     the synthesized spelling instead.
//   - Token.Span matches Text exactly for file-backed tokens (Begin..End).
//   - Comments are real tokens (Kind: Comment), never trivia; the aligner
//     needs them addressable by offset.
//   - Raw lexing leaves keywords as Ident with Sym set; the preprocessor
//     reclassifies them via LookupKeyword. Same() compares by Sym so the two
//     views still match.
package token
