// Package monkey implements an interpreter for the Monkey language: a
// small dynamically-typed expression/statement language with integers,
// booleans, strings, arrays, hash maps, and first-class functions with
// closures.
//
// The pipeline is lexer → Pratt parser → tree-walking evaluator. Parsing
// is best-effort and accumulates plain-text errors without aborting, so a
// single pass can report several independent mistakes. Evaluation errors
// are first-class Error values that short-circuit through the result
// channel; the interpreter never signals a script mistake with a Go error
// or a panic.
//
// A handful of built-in functions (len, head, last, tail, init, push,
// prepend) are available to programs; the table is fixed and closed.
package monkey
