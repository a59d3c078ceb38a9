// Package regexlib decides whether two regular expressions denote the same
// language.
//
// The supported syntax is deliberately small: literal symbols, concatenation by
// juxtaposition, union (|), Kleene star (*) and parentheses. Every other code
// point is a literal.
//
// Pipeline:
//
//	Parse       regex  -> postfix tokens (shunting-yard)
//	Build       tokens -> Thompson NFA
//	Determinize NFA    -> DFA (subset construction)
//	Minimize    DFA    -> minimal DFA (partition refinement)
//	Equivalent  DFA, DFA -> bool
//
// CompileNFA, Determinize, Minimize and Equivalent are the four entry points a
// front end needs; Compile runs all of them and keeps every stage.
//
// All automata are immutable values owned by the caller. Nothing in the package
// keeps state between calls, so independent pipelines may run concurrently.
//
// Complexity: subset construction can produce a DFA exponentially larger than
// its NFA (for example (a|b)*a(a|b)(a|b)...). This is inherent to
// determinization and is not guarded against.
package regexlib
