package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
)

// TestNativeFmtValidSyntax tests that valid syntax is formatted correctly.
func TestNativeFmtValidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "simple number",
			input:   "123",
			wantErr: false,
		},
		{
			name:    "list form",
			input:   "(a 1 2)",
			wantErr: false,
		},
		{
			name:    "multiple top-level forms",
			input:   "(a 1) (b 2)",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpfile, err := os.CreateTemp("", "senere-test-*.srn")
			if err != nil {
				t.Fatal(err)
			}
			defer os.Remove(tmpfile.Name())

			if _, err := tmpfile.WriteString(tt.input); err != nil {
				t.Fatal(err)
			}
			if err := tmpfile.Close(); err != nil {
				t.Fatal(err)
			}

			native := &Native{
				Indent: 2,
				Source: tmpfile.Name(),
			}

			err = native.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Native.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestNativeFmtInvalidSyntax tests that invalid syntax produces parse errors.
func TestNativeFmtInvalidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "unclosed list",
			input:   "(a 1 2",
			wantErr: true,
		},
		{
			name:    "unterminated string",
			input:   `(a "unterminated`,
			wantErr: true,
		},
		{
			name:    "two decimal points",
			input:   "1.2.3",
			wantErr: true,
		},
		{
			name:    "empty keyword",
			input:   ":",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpfile, err := os.CreateTemp("", "senere-test-*.srn")
			if err != nil {
				t.Fatal(err)
			}
			defer os.Remove(tmpfile.Name())

			if _, err := tmpfile.WriteString(tt.input); err != nil {
				t.Fatal(err)
			}
			if err := tmpfile.Close(); err != nil {
				t.Fatal(err)
			}

			native := &Native{
				Indent: 2,
				Source: tmpfile.Name(),
			}

			err = native.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Native.Run() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr && err == nil {
				t.Error("Native.Run() expected error but got nil")
			}
		})
	}
}

// TestNativeFmtStdin tests reading from stdin.
func TestNativeFmtStdin(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid from stdin",
			input:   "(a 1 2)",
			wantErr: false,
		},
		{
			name:    "invalid from stdin",
			input:   "(a 1 2",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldStdin := os.Stdin
			defer func() { os.Stdin = oldStdin }()

			r, w, err := os.Pipe()
			if err != nil {
				t.Fatal(err)
			}
			os.Stdin = r

			go func() {
				defer w.Close()
				io.WriteString(w, tt.input)
			}()

			native := &Native{
				Indent: 2,
				Source: "-",
			}

			err = native.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Native.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestJSONFmtInvalidSyntax tests that JSON format also catches parse errors.
func TestJSONFmtInvalidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "unclosed list",
			input:   "(a 1 2",
			wantErr: true,
		},
		{
			name:    "valid syntax",
			input:   "(a 1 2)",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpfile, err := os.CreateTemp("", "senere-test-*.srn")
			if err != nil {
				t.Fatal(err)
			}
			defer os.Remove(tmpfile.Name())

			if _, err := tmpfile.WriteString(tt.input); err != nil {
				t.Fatal(err)
			}
			if err := tmpfile.Close(); err != nil {
				t.Fatal(err)
			}

			json := &JSON{
				Indent: 2,
				Source: tmpfile.Name(),
			}

			err = json.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("JSON.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestYAMLFmtInvalidSyntax tests that YAML format also catches parse errors.
func TestYAMLFmtInvalidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "unclosed list",
			input:   "(a 1 2",
			wantErr: true,
		},
		{
			name:    "valid syntax",
			input:   "(a 1 2)",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpfile, err := os.CreateTemp("", "senere-test-*.srn")
			if err != nil {
				t.Fatal(err)
			}
			defer os.Remove(tmpfile.Name())

			if _, err := tmpfile.WriteString(tt.input); err != nil {
				t.Fatal(err)
			}
			if err := tmpfile.Close(); err != nil {
				t.Fatal(err)
			}

			yaml := &YAML{
				Indent: 2,
				Source: tmpfile.Name(),
			}

			err = yaml.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("YAML.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestASTFmtInvalidSyntax tests that AST format also catches parse errors.
func TestASTFmtInvalidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "unclosed list",
			input:   "(a 1 2",
			wantErr: true,
		},
		{
			name:    "valid syntax",
			input:   "(a 1 2)",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpfile, err := os.CreateTemp("", "senere-test-*.srn")
			if err != nil {
				t.Fatal(err)
			}
			defer os.Remove(tmpfile.Name())

			if _, err := tmpfile.WriteString(tt.input); err != nil {
				t.Fatal(err)
			}
			if err := tmpfile.Close(); err != nil {
				t.Fatal(err)
			}

			ast := &AST{
				Source: tmpfile.Name(),
			}

			err = ast.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("AST.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestFormatNativeOutput tests the Native.Run output content.
func TestFormatNativeOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		indent   int
		contains []string
	}{
		{
			name:   "simple number no indent",
			input:  "123",
			indent: 0,
			contains: []string{
				"123",
			},
		},
		{
			name:   "list with indent",
			input:  "(a 1 2)",
			indent: 2,
			contains: []string{
				"(a",
				"1",
				"2)",
			},
		},
		{
			name:   "multiple forms with indent",
			input:  "(a 1) (b 2)",
			indent: 2,
			contains: []string{
				"(a\n  1)",
				"(b\n  2)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpfile, err := os.CreateTemp("", "senere-test-*.srn")
			if err != nil {
				t.Fatal(err)
			}
			defer os.Remove(tmpfile.Name())

			if _, err := tmpfile.WriteString(tt.input); err != nil {
				t.Fatal(err)
			}
			if err := tmpfile.Close(); err != nil {
				t.Fatal(err)
			}

			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			native := &Native{
				Indent: tt.indent,
				Source: tmpfile.Name(),
			}

			err = native.Run(context.Background())

			w.Close()
			os.Stdout = oldStdout

			if err != nil {
				t.Fatalf("Native.Run() unexpected error = %v", err)
			}

			var buf bytes.Buffer
			io.Copy(&buf, r)
			output := buf.String()

			for _, expected := range tt.contains {
				if !strings.Contains(output, expected) {
					t.Errorf("Native.Run() output = %q, want to contain %q", output, expected)
				}
			}
		})
	}
}
