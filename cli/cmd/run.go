package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/senere/lang"
)

// Run resolves a namespace, drives it through the reader and namespace
// pipeline, and hands the result to a [lang.NoopHandle] carrying the
// compile options. The handle's [lang.ErrNotImplemented] does not fail the
// command, so a namespace that reads and expands cleanly succeeds.
type Run struct {
	File string `arg:"" help:"Namespace name (dotted) or source file path" name:"file"`

	LoadPath []string `env:"SENERE_LOAD_PATH" help:"Additional namespace search directories" short:"I"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context, opts lang.Options) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer func(err *error) { cancel(*err) }(&err)

	jit := lang.NoopHandle{OptionsValue: opts}

	namespace, err := resolveNamespace(ctx, jit, r.File, r.LoadPath, "run")
	if err != nil {
		return err
	}

	if _, err := jit.LoadModule(namespace); err != nil && !errors.Is(err, lang.ErrNotImplemented) {
		return NewError("run").With(slog.String("namespace", namespace.Name())).Wrap(err)
	}

	return nil
}

// looksLikePath reports whether s should be treated as a filesystem path
// rather than a dotted namespace name: it contains a path separator, ends
// in the reader's own source suffix, or names an existing file. A bare
// dotted name like "a.b.c" is NOT treated as a path merely because its
// last segment resembles a file extension.
func looksLikePath(s string) bool {
	if strings.ContainsRune(s, filepath.Separator) {
		return true
	}

	if filepath.Ext(s) == "."+lang.DefaultSuffix {
		return true
	}

	if _, err := os.Stat(s); err == nil {
		return true
	}

	return false
}

// rangeOf extracts the source range carried by err, or a zero range if err
// does not carry one.
func rangeOf(err error) lang.LocationRange {
	if le, ok := err.(*lang.Error); ok {
		return le.Range()
	}

	return lang.LocationRange{}
}
