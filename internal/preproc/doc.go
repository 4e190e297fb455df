// Package preproc implements the C preprocessor over the raw token stream:
// object-like and function-like macros, stringize and paste operators,
// conditional compilation, and #include splicing.
//
// Recursive macros terminate through hidesets: every token carries the set of
// macro names it was expanded from, and a macro whose name is in the current
// token's hideset is not expanded again. The scheme follows Dave Prosser's
// algorithm, the basis of the standard's wording.
//
// Every expansion token carries the main-file byte offset it traces back to.
// Tokens produced by macro replacement inherit the offset of the outermost
// invocation site; tokens lexed from included files are marked foreign. The
// aligner consumes the stream through this origin information alone.
package preproc
