package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/senere/lang"
)

// Fmt reads a source file, parses it, and formats it in the chosen
// representation.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as native reader syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	AST    AST    `cmd:""                    help:"Dump the parsed tree structure."`
}

func readForms(source string) (lang.Ast, error) {
	var (
		file *os.File
		err  error
	)

	if source == "-" {
		file = os.Stdin
	} else {
		file, err = os.Open(source)
		if err != nil {
			return nil, err
		}
		defer file.Close()
	}

	data, err := io.ReadAll(bufio.NewReader(file))
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	// An empty namespace keeps unqualified symbols unqualified, so they are
	// formatted as written.
	return lang.Read(context.Background(), data, "")
}

// Native formats input as native reader syntax.
type Native struct {
	Indent int `default:"2" help:"Indent width for formatted output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the native fmt command.
func (n *Native) Run(ctx context.Context) error {
	forms, err := readForms(n.Source)
	if err != nil {
		return NewError("format native").With(slog.String("source", n.Source)).Wrap(err)
	}

	return lang.Format(ctx, os.Stdout, forms, n.Indent)
}

// JSON formats input as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json fmt command.
func (j *JSON) Run(_ context.Context) error {
	forms, err := readForms(j.Source)
	if err != nil {
		return NewError("format json").With(slog.String("source", j.Source)).Wrap(err)
	}

	if err := lang.FormatJSON(os.Stdout, forms, j.Indent); err != nil {
		return ErrJSONMarshal.With(slog.Int("indent", j.Indent)).Wrap(err)
	}

	return nil
}

// YAML formats input as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml fmt command.
func (y *YAML) Run(ctx context.Context) error {
	forms, err := readForms(y.Source)
	if err != nil {
		return NewError("format yaml").With(slog.String("source", y.Source)).Wrap(err)
	}

	if err := lang.FormatYAML(ctx, os.Stdout, forms, y.Indent); err != nil {
		return ErrYAMLMarshal.With(slog.Int("indent", y.Indent)).Wrap(err)
	}

	return nil
}

// AST dumps the parsed tree structure for debugging.
type AST struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the ast fmt command.
func (a *AST) Run(_ context.Context) error {
	forms, err := readForms(a.Source)
	if err != nil {
		return NewError("format ast").With(slog.String("source", a.Source)).Wrap(err)
	}

	return lang.FormatTree(os.Stdout, forms)
}
