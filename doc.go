// Package randsym generates unique identifiers for code generators and
// macro-like preprocessing.
//
// Source text is scanned for two markers:
//
//	/?/             replaced with a fresh identifier on every occurrence
//	/?@the_ident/   replaced with an identifier shared by every occurrence
//	                of the_ident within one expansion
//
// Generated identifiers have the form _randsym_<32 hex digits>, derived
// from a random UUID, so they are valid in virtually any language.
//
//	srv := randsym.New()
//	out, _ := srv.Expand(ctx, []byte("fn /?@f/() {}\n/?@f/()"))
//
// Each call to Expand, Rewrite or ExpandURL is a separate invocation with
// its own name table. The token level API lives in the rewriter package.
package randsym
