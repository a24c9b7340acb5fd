package lang

import (
	"context"
	"testing"
)

// TestReadMinimalList covers scenario 1: a minimal list form parses into a
// single KindList expression with two child forms.
func TestReadMinimalList(t *testing.T) {
	forms, err := Read(context.Background(), []byte("(a 1)"), "user")
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}

	if len(forms) != 1 {
		t.Fatalf("Read() produced %d forms, want 1", len(forms))
	}

	list := forms[0]
	if list.Kind != KindList {
		t.Fatalf("forms[0].Kind = %v, want KindList", list.Kind)
	}

	if len(list.ListItems) != 2 {
		t.Fatalf("list has %d items, want 2", len(list.ListItems))
	}

	sym := list.ListItems[0]
	if sym.Kind != KindSymbol {
		t.Fatalf("list.ListItems[0].Kind = %v, want KindSymbol", sym.Kind)
	}

	if sym.SymbolNamespace != "user" || sym.SymbolName != "a" {
		t.Errorf("symbol = %q/%q, want %q/%q", sym.SymbolNamespace, sym.SymbolName, "user", "a")
	}

	num := list.ListItems[1]
	if num.Kind != KindNumber || num.NumberText != "1" {
		t.Errorf("number = %+v, want text %q", num, "1")
	}
}

// TestReadSymbolNamespaceInheritance covers the namespace-split idempotence
// property: an unqualified symbol inherits the reader's current namespace,
// and re-splitting the resulting "ns/name" lexeme yields the same pair.
func TestReadSymbolNamespaceInheritance(t *testing.T) {
	forms, err := Read(context.Background(), []byte("bare"), "user")
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}

	if len(forms) != 1 || forms[0].Kind != KindSymbol {
		t.Fatalf("Read() = %+v, want single KindSymbol form", forms)
	}

	sym := forms[0]
	if sym.SymbolNamespace != "user" {
		t.Errorf("SymbolNamespace = %q, want %q", sym.SymbolNamespace, "user")
	}

	if sym.SymbolName != "bare" {
		t.Errorf("SymbolName = %q, want %q", sym.SymbolName, "bare")
	}

	ns, name := SplitSymbol(sym.SymbolNamespace + "/" + sym.SymbolName)
	if ns != sym.SymbolNamespace || name != sym.SymbolName {
		t.Errorf("SplitSymbol(%q/%q) round-trip = %q/%q, want idempotent result",
			sym.SymbolNamespace, sym.SymbolName, ns, name)
	}
}

// TestReadQualifiedSymbol covers scenario 4: a pre-qualified symbol keeps its
// own namespace rather than inheriting the reader's.
func TestReadQualifiedSymbol(t *testing.T) {
	forms, err := Read(context.Background(), []byte("core/map"), "user")
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}

	if len(forms) != 1 || forms[0].Kind != KindSymbol {
		t.Fatalf("Read() = %+v, want single KindSymbol form", forms)
	}

	sym := forms[0]
	if sym.SymbolNamespace != "core" || sym.SymbolName != "map" {
		t.Errorf("symbol = %q/%q, want %q/%q", sym.SymbolNamespace, sym.SymbolName, "core", "map")
	}
}

func TestSplitSymbol(t *testing.T) {
	tests := []struct {
		name     string
		lexeme   string
		wantNS   string
		wantName string
	}{
		{name: "unqualified", lexeme: "bare", wantNS: "", wantName: "bare"},
		{name: "qualified", lexeme: "core/map", wantNS: "core", wantName: "map"},
		{name: "division operator", lexeme: "/", wantNS: "", wantName: "/"},
		{name: "qualified division", lexeme: "core//", wantNS: "core", wantName: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, name := SplitSymbol(tt.lexeme)
			if ns != tt.wantNS || name != tt.wantName {
				t.Errorf("SplitSymbol(%q) = %q, %q, want %q, %q", tt.lexeme, ns, name, tt.wantNS, tt.wantName)
			}
		})
	}
}

// TestReadNumberTwoFloatPointsLocation covers scenario 2: a second '.' in a
// number literal reports TwoFloatPoints anchored at the offending dot, not
// at the number's start.
func TestReadNumberTwoFloatPointsLocation(t *testing.T) {
	_, err := Read(context.Background(), []byte("1.2.3"), "user")
	if err == nil {
		t.Fatal("Read() expected error, got nil")
	}

	lerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Read() error type = %T, want *Error", err)
	}

	if lerr.Kind() != KindTwoFloatPoints {
		t.Fatalf("Kind() = %v, want KindTwoFloatPoints", lerr.Kind())
	}

	start := lerr.Range().Start
	if start.Line != 1 || start.Column != 4 {
		t.Errorf("Range().Start = line %d col %d, want line 1 col 4", start.Line, start.Column)
	}
}

func TestReadNumberVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		text     string
		negative bool
		float    bool
	}{
		{name: "integer", input: "42", text: "42", negative: false, float: false},
		{name: "negative integer", input: "-42", text: "42", negative: true, float: false},
		{name: "float", input: "3.14", text: "3.14", negative: false, float: true},
		{name: "negative float", input: "-3.14", text: "3.14", negative: true, float: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forms, err := Read(context.Background(), []byte(tt.input), "user")
			if err != nil {
				t.Fatalf("Read() unexpected error = %v", err)
			}

			if len(forms) != 1 || forms[0].Kind != KindNumber {
				t.Fatalf("Read() = %+v, want single KindNumber form", forms)
			}

			num := forms[0]
			if num.NumberText != tt.text || num.NumberNegative != tt.negative || num.NumberFloat != tt.float {
				t.Errorf("number = %+v, want text %q negative %v float %v",
					num, tt.text, tt.negative, tt.float)
			}
		})
	}
}

// TestReadEOFWhileScanningAList covers scenario 3: an unterminated list
// reports EOFWhileScanningAList anchored at the opening paren.
func TestReadEOFWhileScanningAList(t *testing.T) {
	_, err := Read(context.Background(), []byte("(a"), "user")
	if err == nil {
		t.Fatal("Read() expected error, got nil")
	}

	lerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Read() error type = %T, want *Error", err)
	}

	if lerr.Kind() != KindEOFWhileScanningAList {
		t.Fatalf("Kind() = %v, want KindEOFWhileScanningAList", lerr.Kind())
	}

	start := lerr.Range().Start
	if start.Line != 1 || start.Column != 1 {
		t.Errorf("Range().Start = line %d col %d, want line 1 col 1 (opening paren)", start.Line, start.Column)
	}
}

func TestReadString(t *testing.T) {
	forms, err := Read(context.Background(), []byte(`"hello\nworld"`), "user")
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}

	if len(forms) != 1 || forms[0].Kind != KindString {
		t.Fatalf("Read() = %+v, want single KindString form", forms)
	}

	if want := "hello\nworld"; forms[0].StringValue != want {
		t.Errorf("StringValue = %q, want %q", forms[0].StringValue, want)
	}
}

func TestReadKeyword(t *testing.T) {
	forms, err := Read(context.Background(), []byte(":foo"), "user")
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}

	if len(forms) != 1 || forms[0].Kind != KindKeyword {
		t.Fatalf("Read() = %+v, want single KindKeyword form", forms)
	}

	if forms[0].KeywordName != "foo" {
		t.Errorf("KeywordName = %q, want %q", forms[0].KeywordName, "foo")
	}
}

func TestReadSkipsCommentsAndCommas(t *testing.T) {
	forms, err := Read(context.Background(), []byte("; comment\n(a, 1, 2) ; trailing"), "user")
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}

	if len(forms) != 1 || forms[0].Kind != KindList {
		t.Fatalf("Read() = %+v, want single KindList form", forms)
	}

	if len(forms[0].ListItems) != 3 {
		t.Errorf("list has %d items, want 3", len(forms[0].ListItems))
	}
}

// TestReadPartialAstOnError covers the contract that Read returns every form
// parsed before the first error, alongside that error.
func TestReadPartialAstOnError(t *testing.T) {
	forms, err := Read(context.Background(), []byte("(a 1) (b"), "user")
	if err == nil {
		t.Fatal("Read() expected error, got nil")
	}

	if len(forms) != 1 {
		t.Fatalf("Read() returned %d partial forms, want 1", len(forms))
	}
}

func TestReadContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Read(ctx, []byte("(a 1)"), "user")
	if err == nil {
		t.Fatal("Read() expected context error, got nil")
	}
}
