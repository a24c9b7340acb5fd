package lang

// Builder provides a programmatic API for constructing AST nodes without
// parsing source text. This is useful for generating forms for tests or for
// synthesizing trees that never existed as source.
//
// Example:
//
//	b := lang.NewBuilder()
//	forms := b.Forms(
//	    b.List(
//	        b.Symbol("", "define"),
//	        b.Symbol("", "x"),
//	        b.Number("1", false, false),
//	    ),
//	)
type Builder struct{}

// NewBuilder creates a new AST builder. Every node it produces carries an
// unknown [LocationRange], since there is no source text backing it.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) unknownRange() LocationRange {
	return PointRange(UnknownLocation(""))
}

// Symbol creates a symbol expression.
func (b *Builder) Symbol(ns, name string) *Expression {
	return NewSymbol(ns, name, b.unknownRange())
}

// Number creates a number expression.
func (b *Builder) Number(text string, negative, float bool) *Expression {
	return NewNumber(text, negative, float, b.unknownRange())
}

// String creates a string expression.
func (b *Builder) String(value string) *Expression {
	return NewString(value, b.unknownRange())
}

// Keyword creates a keyword expression.
func (b *Builder) Keyword(name string) *Expression {
	return NewKeyword(name, b.unknownRange())
}

// List creates a list expression owning items.
func (b *Builder) List(items ...*Expression) *Expression {
	return NewList(items, b.unknownRange())
}

// Namespace wraps ns as a namespace expression.
func (b *Builder) Namespace(ns *Namespace) *Expression {
	return NewNamespaceExpr(ns, b.unknownRange())
}

// Forms collects expressions into an Ast.
func (b *Builder) Forms(exprs ...*Expression) Ast {
	return Ast(exprs)
}
