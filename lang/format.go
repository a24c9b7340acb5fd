package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

// Format writes forms in native reader syntax to w. When indent > 0, each
// top-level form starts on its own line and every list item after the first
// goes on its own line, indented by indent spaces per nesting level; when
// indent == 0, everything is written on one line.
func Format(_ context.Context, w io.Writer, forms Ast, indent int) error {
	for i, f := range forms {
		if i > 0 {
			sep := " "
			if indent > 0 {
				sep = "\n"
			}

			if _, err := fmt.Fprint(w, sep); err != nil {
				return err
			}
		}

		if err := formatExpr(w, f, indent, 0); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}

func formatExpr(w io.Writer, e *Expression, indent, depth int) error {
	if e == nil {
		_, err := fmt.Fprint(w, "nil")

		return err
	}

	switch e.Kind {
	case KindList:
		if _, err := fmt.Fprint(w, "("); err != nil {
			return err
		}

		for i, item := range e.ListItems {
			if i > 0 {
				sep := " "
				if indent > 0 {
					sep = "\n" + strings.Repeat(" ", (depth+1)*indent)
				}

				if _, err := fmt.Fprint(w, sep); err != nil {
					return err
				}
			}

			if err := formatExpr(w, item, indent, depth+1); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, ")")

		return err
	case KindString:
		_, err := fmt.Fprint(w, strconv.Quote(e.StringValue))

		return err
	default:
		_, err := fmt.Fprint(w, e.Text())

		return err
	}
}

// FormatString renders forms in native syntax, returning the result.
func FormatString(forms Ast, indent int) string {
	var buf bytes.Buffer

	_ = Format(context.Background(), &buf, forms, indent)

	return buf.String()
}

// FormatTree writes an indented debug dump of forms, one node per line as
// "<Kind> <text>", with each nesting level indented by two spaces.
func FormatTree(w io.Writer, forms Ast) error {
	for _, f := range forms {
		if err := formatTreeNode(w, f, 0); err != nil {
			return err
		}
	}

	return nil
}

func formatTreeNode(w io.Writer, e *Expression, depth int) error {
	prefix := strings.Repeat("  ", depth)

	if e == nil {
		_, err := fmt.Fprintf(w, "%snil\n", prefix)

		return err
	}

	if e.Kind == KindList {
		if _, err := fmt.Fprintf(w, "%sList\n", prefix); err != nil {
			return err
		}

		for _, item := range e.ListItems {
			if err := formatTreeNode(w, item, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	_, err := fmt.Fprintf(w, "%s%s %s\n", prefix, e.Kind, e.Text())

	return err
}

// astJSON is the JSON-serializable mirror of an Expression, since Expression
// itself carries unexported fields and a Kind with no natural JSON spelling.
type astJSON struct {
	Kind  string    `json:"kind"`
	Value string    `json:"value,omitempty"`
	Items []astJSON `json:"items,omitempty"`
}

func toJSONValue(e *Expression) astJSON {
	if e == nil {
		return astJSON{Kind: "nil"}
	}

	v := astJSON{Kind: e.Kind.String()}

	if e.Kind == KindList {
		v.Items = make([]astJSON, 0, len(e.ListItems))
		for _, item := range e.ListItems {
			v.Items = append(v.Items, toJSONValue(item))
		}

		return v
	}

	v.Value = e.Text()

	return v
}

// FormatJSON writes forms as a JSON array to w.
func FormatJSON(w io.Writer, forms Ast, indent int) error {
	values := make([]astJSON, 0, len(forms))
	for _, f := range forms {
		values = append(values, toJSONValue(f))
	}

	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(values, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(values)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes forms as YAML to w.
func FormatYAML(ctx context.Context, w io.Writer, forms Ast, indent int) error {
	values := make([]astJSON, 0, len(forms))
	for _, f := range forms {
		values = append(values, toJSONValue(f))
	}

	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, values, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// diagnosticStyle holds the lipgloss styles used to colorize a source
// snippet's caret line; zero-value styles render as plain text.
var (
	diagLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	diagCaretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// FormatDiagnostic renders a one-line source snippet with a caret pointing
// at rng's start column, optionally colorized per opts.WithColors.
func FormatDiagnostic(buf *SourceBuffer, rng LocationRange, opts Options) string {
	loc := rng.Start
	if !loc.Known {
		return rng.String()
	}

	data := buf.Bytes()

	lineStart := loc.Offset - int(loc.Column) + 1
	if lineStart < 0 {
		lineStart = 0
	}

	lineEnd := lineStart
	for lineEnd < len(data) && data[lineEnd] != '\n' {
		lineEnd++
	}

	line := string(data[lineStart:lineEnd])
	caret := strings.Repeat(" ", max(0, int(loc.Column)-1)) + "^"

	if opts.WithColors {
		return diagLineStyle.Render(line) + "\n" + diagCaretStyle.Render(caret)
	}

	return line + "\n" + caret
}
