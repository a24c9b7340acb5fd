package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/exec"

	"github.com/ardnew/senere/log"
)

// CC delegates to an external C compiler front-end, forwarding arguments
// and exit status. No C-compilation logic lives in this package; this is
// strictly a pass-through so a configured external toolchain can be
// driven from the same CLI surface as the native subcommands.
type CC struct {
	Path string   `default:"${ccPath}" env:"CC" help:"Path to the external compiler binary"`
	Args []string `arg:"" help:"Arguments forwarded verbatim to the external compiler" optional:""`
}

// Run executes the cc command.
func (c *CC) Run(ctx context.Context) error {
	path := c.Path
	if path == "" {
		path = "cc"
	}

	bin, err := exec.LookPath(path)
	if err != nil {
		return NewError("cc").With(slog.String("path", path)).Wrap(err)
	}

	log.DebugContext(ctx, "cc exec", slog.String("path", bin), slog.Any("args", c.Args))

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return NewError("cc").With(slog.String("path", bin)).Wrap(err)
	}

	return nil
}
