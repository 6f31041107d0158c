// Package rewriter replaces randsym markers in a token stream with generated
// identifiers.
//
// Two marker forms are recognized:
//
//	/ ? /           a fresh identifier on every occurrence
//	/ ? @ name /    an identifier shared by every occurrence of name
//
// Bound names live in a Bindings table owned by a single invocation. The
// table is threaded through nested groups, so a name bound inside a group
// resolves to the same identifier in its siblings and in the enclosing
// stream. Separate invocations never share a table.
//
// By default the rewriter is lenient: a malformed marker degrades to the
// tokens it was able to consume and a marker cut short by the end of a
// stream truncates that stream. WithStrict reports both cases as errors
// instead; well-formed input rewrites identically in either mode.
package rewriter
