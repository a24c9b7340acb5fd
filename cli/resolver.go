package cli

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that parses a YAML document
// and exposes name's top-level mapping (if present) as flag defaults;
// otherwise the entire document root is used.
//
// Flag names with hyphens (e.g. "log-level") should use underscores in the
// config file (e.g. "log_level") — both spellings are tried on lookup.
//
// Example config file:
//
//	config:
//	  log_level: debug
//	  log_format: json
//	  log_pretty: true
//
// Command-line flags override config file values.
func resolve(ctx context.Context, name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return config{}, nil
		}

		var root map[string]any

		if err := yaml.UnmarshalContext(ctx, data, &root); err != nil {
			// Parse error - return empty config so command-line flags still work.
			return config{}, nil
		}

		if section, ok := root[name].(map[string]any); ok {
			return config(section), nil
		}

		return config(root), nil
	}
}

// config implements [kong.Resolver] for a flat YAML mapping.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	if value, ok := r[name]; ok {
		return normalizeConfigValue(value), nil
	}

	if value, ok := r[underscoreName]; ok {
		return normalizeConfigValue(value), nil
	}

	return nil, nil
}

// normalizeConfigValue converts YAML-decoded numeric types to their string
// form, since Kong's flag parsing expects string-shaped resolver values.
func normalizeConfigValue(v any) any {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return v
	}
}
