package cmd

import (
	"context"

	"github.com/ardnew/senere/cli/cmd/repl"
	"github.com/ardnew/senere/lang"
	"github.com/ardnew/senere/log"
)

// Repl starts an interactive read loop over the same reader and namespace
// pipeline used by [Run]. Forms accumulate in a single namespace across
// submissions instead of a one-shot parse-and-load.
type Repl struct {
	File string `arg:"" default:"repl" help:"Namespace name (dotted) or source file path to preload" name:"file" optional:""`

	LoadPath []string `env:"SENERE_LOAD_PATH" help:"Additional namespace search directories" short:"I"`
	CacheDir string   `default:"${cache}" help:"Directory for REPL history" hidden:"" name:"cache-dir"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context, opts lang.Options) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer func(err *error) { cancel(*err) }(&err)

	jit := lang.NoopHandle{OptionsValue: opts}

	var namespace *lang.Namespace

	if r.File == "" || r.File == "repl" {
		namespace = lang.NewNamespace(jit, "repl", "", false)
	} else {
		namespace, err = resolveNamespace(ctx, jit, r.File, r.LoadPath, "repl")
		if err != nil {
			return err
		}
	}

	return repl.Run(ctx, namespace, jit, r.CacheDir, log.With())
}
