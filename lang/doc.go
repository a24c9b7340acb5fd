// Package lang implements the reader, source manager, and namespace model of
// the senere compiler front end: a hand-written recursive-descent parser for
// a small Lisp-family surface syntax, an append-only registry of source
// buffers resolved against a configurable load path, and the namespace type
// that owns parsed forms plus a stack of lexically nested environments.
//
// # Grammar
//
// Informal EBNF for the surface syntax read by [Read]:
//
//	Form      → List | Number | String | Keyword | Symbol
//	List      → '(' Form* ')'
//	Number    → '-'? digit+ ('.' digit+)?
//	String    → '"' ( '\' any | ^'"' )* '"'
//	Keyword   → ':' identChar+
//	Symbol    → identChar+ ('/' identChar+)?
//	identChar → any byte except whitespace, '(', ')', '"', ';', and ASCII
//	            control (below 0x20, or 0x7f)
//	whitespace → ' ' | '\t' | '\n' | '\r' | ','
//
// A Symbol's first '/' splits it into a namespace part and a name part; a
// Symbol without '/' inherits the namespace the reader was invoked with.
//
// # Pipeline
//
// Loading a namespace by dotted name flows: [SourceManager.ReadNamespace]
// resolves the name against the load path, registers the file contents as a
// [SourceBuffer], and invokes [Read] to produce an [Ast]; it returns the
// buffer and the forms and does not construct a [Namespace]. The caller
// builds the [Namespace], whose [Namespace.ExpandTree] absorbs the forms —
// appending them verbatim when the configured [CompilationPhase] is
// [PhaseParse], or additionally invoking the semantic-analysis hook
// otherwise.
package lang
