package lang

import (
	"context"
	"testing"
)

func TestNewNamespaceDefaults(t *testing.T) {
	jit := NoopHandle{}
	ns := NewNamespace(jit, "user", "", false)

	if ns.Name() != "user" {
		t.Errorf("Name() = %q, want %q", ns.Name(), "user")
	}

	filename, hasFile := ns.Filename()
	if filename != "" || hasFile {
		t.Errorf("Filename() = %q, %v, want %q, false", filename, hasFile, "")
	}

	if len(ns.Tree()) != 0 {
		t.Errorf("Tree() = %v, want empty", ns.Tree())
	}

	if ns.RootEnv() == nil {
		t.Fatal("RootEnv() = nil, want a root environment created at construction")
	}

	if ns.RootEnv().Parent() != nil {
		t.Error("RootEnv().Parent() != nil, want nil for the root scope")
	}
}

func TestNamespaceExpandTreeParseOnly(t *testing.T) {
	jit := NoopHandle{OptionsValue: Options{CompilationPhase: PhaseParse}}
	ns := NewNamespace(jit, "user", "", false)

	forms, err := Read(context.Background(), []byte("(a 1)"), "user")
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}

	if err := ns.ExpandTree(context.Background(), forms); err != nil {
		t.Fatalf("ExpandTree() unexpected error = %v", err)
	}

	if len(ns.Tree()) != 1 {
		t.Fatalf("Tree() has %d forms, want 1", len(ns.Tree()))
	}

	// A second call accumulates rather than replacing.
	if err := ns.ExpandTree(context.Background(), forms); err != nil {
		t.Fatalf("ExpandTree() unexpected error = %v", err)
	}

	if len(ns.Tree()) != 2 {
		t.Fatalf("Tree() has %d forms after second ExpandTree, want 2", len(ns.Tree()))
	}
}

func TestNamespaceExpandTreeInvokesAnalyzer(t *testing.T) {
	jit := NoopHandle{OptionsValue: Options{CompilationPhase: PhaseAnalysis}}
	ns := NewNamespace(jit, "user", "", false)

	called := false
	ns.SetAnalyzer(analyzerFunc(func(_ context.Context, gotNS *Namespace, env *Environment[*Expression], forms Ast) error {
		called = true

		if gotNS != ns {
			t.Error("analyzer received a different *Namespace")
		}

		if env != ns.RootEnv() {
			t.Error("analyzer received a different root environment")
		}

		if len(forms) != 1 {
			t.Errorf("analyzer received %d forms, want 1", len(forms))
		}

		return nil
	}))

	forms, err := Read(context.Background(), []byte("(a 1)"), "user")
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}

	if err := ns.ExpandTree(context.Background(), forms); err != nil {
		t.Fatalf("ExpandTree() unexpected error = %v", err)
	}

	if !called {
		t.Error("analyzer was not invoked when CompilationPhase > PhaseParse")
	}
}

// analyzerFunc adapts a function to the Analyzer interface for tests.
type analyzerFunc func(ctx context.Context, ns *Namespace, env *Environment[*Expression], forms Ast) error

func (f analyzerFunc) Analyze(ctx context.Context, ns *Namespace, env *Environment[*Expression], forms Ast) error {
	return f(ctx, ns, env, forms)
}

func TestNamespaceSetAnalyzerNilRestoresPassThrough(t *testing.T) {
	jit := NoopHandle{OptionsValue: Options{CompilationPhase: PhaseAnalysis}}
	ns := NewNamespace(jit, "user", "", false)

	ns.SetAnalyzer(nil)

	if err := ns.ExpandTree(context.Background(), Ast{}); err != nil {
		t.Fatalf("ExpandTree() unexpected error with PassThroughAnalyzer = %v", err)
	}
}

func TestNamespaceDefine(t *testing.T) {
	jit := NoopHandle{}
	ns := NewNamespace(jit, "user", "", false)

	num := NewNumber("1", false, false, LocationRange{})
	ns.Define("x", num)

	got, ok := ns.RootEnv().Lookup("x")
	if !ok || got != num {
		t.Errorf("RootEnv().Lookup(x) = %v, %v, want %v, true", got, ok, num)
	}
}

func TestNamespaceCreateEnv(t *testing.T) {
	jit := NoopHandle{}
	ns := NewNamespace(jit, "user", "", false)

	child := ns.CreateEnv(ns.RootEnv())
	if child.Parent() != ns.RootEnv() {
		t.Error("CreateEnv().Parent() != RootEnv()")
	}
}

func TestNamespaceNilHandleDefaultsToParsePhase(t *testing.T) {
	ns := NewNamespace(nil, "user", "", false)

	if err := ns.ExpandTree(context.Background(), Ast{}); err != nil {
		t.Fatalf("ExpandTree() with nil jit handle unexpected error = %v", err)
	}
}
