package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/senere/lang"
)

// TestResolveNamespaceValidFile tests that resolveNamespace succeeds on a
// well-formed source file treated as a root path rather than a dotted
// namespace name.
func TestResolveNamespaceValidFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "senere-resolve-*.srn")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.WriteString("(a 1 2)"); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	jit := lang.NoopHandle{}

	namespace, err := resolveNamespace(context.Background(), jit, tmpfile.Name(), nil, "test")
	if err != nil {
		t.Fatalf("resolveNamespace() unexpected error = %v", err)
	}

	if got := len(namespace.Tree()); got != 1 {
		t.Errorf("resolveNamespace().Tree() has %d forms, want 1", got)
	}
}

// TestResolveNamespaceParseError tests that a malformed source file surfaces
// a wrapped parse error.
func TestResolveNamespaceParseError(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "senere-resolve-*.srn")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.WriteString("(a 1 2"); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	jit := lang.NoopHandle{}

	if _, err := resolveNamespace(context.Background(), jit, tmpfile.Name(), nil, "test"); err == nil {
		t.Error("resolveNamespace() expected error for malformed source, got nil")
	}
}

// TestResolveNamespaceFromLoadPath tests resolving a dotted namespace name
// against an explicit load path.
func TestResolveNamespaceFromLoadPath(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "senere-resolve-loadpath-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "greet.srn")
	if err := os.WriteFile(path, []byte("(greet 1)"), 0644); err != nil {
		t.Fatal(err)
	}

	jit := lang.NoopHandle{}

	namespace, err := resolveNamespace(context.Background(), jit, "greet", []string{tmpDir}, "test")
	if err != nil {
		t.Fatalf("resolveNamespace() unexpected error = %v", err)
	}

	if namespace.Name() != "greet" {
		t.Errorf("resolveNamespace().Name() = %q, want %q", namespace.Name(), "greet")
	}
}

// TestReplEmptyNamespace tests that the empty in-memory "repl" namespace
// Repl.Run starts from when no file is given has that name and no forms,
// without launching the interactive loop.
func TestReplEmptyNamespace(t *testing.T) {
	jit := lang.NoopHandle{}
	namespace := lang.NewNamespace(jit, "repl", "", false)

	if namespace.Name() != "repl" {
		t.Errorf("NewNamespace().Name() = %q, want %q", namespace.Name(), "repl")
	}

	if got := len(namespace.Tree()); got != 0 {
		t.Errorf("NewNamespace().Tree() has %d forms, want 0", got)
	}
}
