package lang

// ExprKind discriminates the sealed Expression variants. The set is closed:
// a switch over ExprKind is a complete match, mirroring the
// single-inheritance runtime-type-id discrimination of the original
// implementation reimagined as a tagged union.
type ExprKind int

const (
	// KindSymbol is a namespace-qualified identifier reference.
	KindSymbol ExprKind = iota
	// KindNumber is an integer or floating-point literal.
	KindNumber
	// KindString is a string literal.
	KindString
	// KindKeyword is a ':name' literal.
	KindKeyword
	// KindList is an ordered sequence of child expressions.
	KindList
	// KindError is an in-band error node produced by AST construction
	// helpers (distinct from the out-of-band *Error returned by [Read]).
	KindError
	// KindNamespace is a nested compilation unit: forms plus an owned
	// environment stack.
	KindNamespace
)

// String names the ExprKind for diagnostics.
func (k ExprKind) String() string {
	switch k {
	case KindSymbol:
		return "Symbol"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindKeyword:
		return "Keyword"
	case KindList:
		return "List"
	case KindError:
		return "Error"
	case KindNamespace:
		return "Namespace"
	default:
		return "Unknown"
	}
}

// Expression is the sealed tagged-variant AST node. Exactly the fields
// relevant to Kind are populated; an Expression exclusively owns its
// children (ListItems, NamespaceValue) — there is no sharing.
type Expression struct {
	Kind  ExprKind
	Range LocationRange

	// Symbol fields (KindSymbol).
	SymbolNamespace string
	SymbolName      string

	// Number fields (KindNumber).
	NumberText     string
	NumberNegative bool
	NumberFloat    bool

	// String fields (KindString).
	StringValue string

	// Keyword fields (KindKeyword).
	KeywordName string

	// List fields (KindList).
	ListItems []*Expression

	// Error fields (KindError).
	ErrorTag     string
	ErrorMessage string

	// Namespace fields (KindNamespace).
	NamespaceValue *Namespace
}

// Ast is an ordered, append-only sequence of top-level forms.
type Ast []*Expression

// NewSymbol constructs a KindSymbol expression. A name without a '/' splits
// to (ns, name); a name containing '/' is assumed pre-split by the caller
// (see [SplitSymbol] for the reader's own splitting logic).
func NewSymbol(ns, name string, rng LocationRange) *Expression {
	return &Expression{
		Kind:            KindSymbol,
		Range:           rng,
		SymbolNamespace: ns,
		SymbolName:      name,
	}
}

// NewNumber constructs a KindNumber expression.
func NewNumber(text string, negative, float bool, rng LocationRange) *Expression {
	return &Expression{
		Kind:           KindNumber,
		Range:          rng,
		NumberText:     text,
		NumberNegative: negative,
		NumberFloat:    float,
	}
}

// NewString constructs a KindString expression.
func NewString(value string, rng LocationRange) *Expression {
	return &Expression{Kind: KindString, Range: rng, StringValue: value}
}

// NewKeyword constructs a KindKeyword expression.
func NewKeyword(name string, rng LocationRange) *Expression {
	return &Expression{Kind: KindKeyword, Range: rng, KeywordName: name}
}

// NewList constructs a KindList expression owning items.
func NewList(items []*Expression, rng LocationRange) *Expression {
	return &Expression{Kind: KindList, Range: rng, ListItems: items}
}

// NewErrorNode constructs an in-band KindError expression.
func NewErrorNode(tag, message string, rng LocationRange) *Expression {
	return &Expression{
		Kind:         KindError,
		Range:        rng,
		ErrorTag:     tag,
		ErrorMessage: message,
	}
}

// NewNamespaceExpr wraps ns as a KindNamespace expression, for use where a
// namespace appears as a value (e.g. a nested compilation unit quoted into
// another namespace's forms).
func NewNamespaceExpr(ns *Namespace, rng LocationRange) *Expression {
	return &Expression{Kind: KindNamespace, Range: rng, NamespaceValue: ns}
}

// Text returns a short textual rendering of the expression's own value,
// ignoring children — useful for diagnostics and symbol-table displays.
func (e *Expression) Text() string {
	if e == nil {
		return "(nil)"
	}

	switch e.Kind {
	case KindSymbol:
		if e.SymbolNamespace == "" {
			return e.SymbolName
		}

		return e.SymbolNamespace + "/" + e.SymbolName
	case KindNumber:
		if e.NumberNegative {
			return "-" + e.NumberText
		}

		return e.NumberText
	case KindString:
		return e.StringValue
	case KindKeyword:
		return ":" + e.KeywordName
	case KindList:
		return "(...)"
	case KindError:
		return ":" + e.ErrorTag + " " + e.ErrorMessage
	case KindNamespace:
		if e.NamespaceValue == nil {
			return "(namespace)"
		}

		return e.NamespaceValue.Name()
	default:
		return "(unknown)"
	}
}
