package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/senere/lang"
	"github.com/ardnew/senere/log"
)

// resolveNamespace resolves file to a namespace (a dotted name searched
// against loadPath, or a source path loaded directly as a root buffer),
// drives it through the Reader, and expands the result into a freshly
// constructed [lang.Namespace] bound to jit. It is shared by the run and
// repl subcommands, which differ only in what they do with the resulting
// namespace.
func resolveNamespace(
	ctx context.Context,
	jit lang.Handle,
	file string,
	loadPath []string,
	errKind string,
) (*lang.Namespace, error) {
	sm := lang.NewSourceManager()
	sm.SetLoadPaths(append(loadPath, ".")...)

	var (
		ns    string
		buf   *lang.SourceBuffer
		forms lang.Ast
		err   error
	)

	if looksLikePath(file) {
		data, readErr := os.ReadFile(file)
		if readErr != nil {
			return nil, NewError(errKind).With(slog.String("file", file)).Wrap(readErr)
		}

		ns = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		buf = sm.AddBuffer(ns, file, true, data)

		forms, err = lang.Read(ctx, data, ns)
	} else {
		ns = file
		buf, forms, err = sm.ReadNamespace(ctx, ns)
	}

	if err != nil {
		if buf != nil {
			log.ErrorContext(
				ctx,
				"parse error",
				slog.String("namespace", ns),
				slog.String("diagnostic", lang.FormatDiagnostic(buf, rangeOf(err), jit.Options())),
			)
		}

		return nil, NewError(errKind).With(slog.String("namespace", ns)).Wrap(err)
	}

	namespace := lang.NewNamespace(jit, ns, file, buf != nil)

	if err := namespace.ExpandTree(ctx, forms); err != nil {
		return nil, NewError(errKind).With(slog.String("namespace", ns)).Wrap(err)
	}

	return namespace, nil
}
