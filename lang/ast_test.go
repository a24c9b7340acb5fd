package lang

import "testing"

func TestExpressionTextVariants(t *testing.T) {
	tests := []struct {
		name string
		expr *Expression
		want string
	}{
		{name: "unqualified symbol", expr: NewSymbol("", "x", LocationRange{}), want: "x"},
		{name: "qualified symbol", expr: NewSymbol("core", "map", LocationRange{}), want: "core/map"},
		{name: "positive number", expr: NewNumber("1", false, false, LocationRange{}), want: "1"},
		{name: "negative number", expr: NewNumber("1", true, false, LocationRange{}), want: "-1"},
		{name: "string", expr: NewString("hi", LocationRange{}), want: "hi"},
		{name: "keyword", expr: NewKeyword("foo", LocationRange{}), want: ":foo"},
		{name: "list", expr: NewList(nil, LocationRange{}), want: "(...)"},
		{name: "error node", expr: NewErrorNode("bad", "broken", LocationRange{}), want: ":bad broken"},
		{name: "nil expression", expr: nil, want: "(nil)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpressionTextNamespace(t *testing.T) {
	ns := NewNamespace(NoopHandle{}, "user", "", false)
	expr := NewNamespaceExpr(ns, LocationRange{})

	if got, want := expr.Text(), "user"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	nilNS := NewNamespaceExpr(nil, LocationRange{})
	if got, want := nilNS.Text(), "(namespace)"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestExprKindString(t *testing.T) {
	tests := []struct {
		kind ExprKind
		want string
	}{
		{kind: KindSymbol, want: "Symbol"},
		{kind: KindNumber, want: "Number"},
		{kind: KindString, want: "String"},
		{kind: KindKeyword, want: "Keyword"},
		{kind: KindList, want: "List"},
		{kind: KindError, want: "Error"},
		{kind: KindNamespace, want: "Namespace"},
		{kind: ExprKind(99), want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewListOwnsItems(t *testing.T) {
	items := []*Expression{
		NewSymbol("", "a", LocationRange{}),
		NewNumber("1", false, false, LocationRange{}),
	}

	list := NewList(items, LocationRange{})

	if len(list.ListItems) != 2 {
		t.Fatalf("ListItems has %d entries, want 2", len(list.ListItems))
	}

	if list.Kind != KindList {
		t.Errorf("Kind = %v, want KindList", list.Kind)
	}
}
