// Package cmd implements the senere CLI's subcommands: init (write a
// default configuration file), fmt (format parsed source in several
// representations), run (drive a namespace through the reader and hand
// it to the configured JIT handle), repl (an interactive read loop over
// the same pipeline), and cc (delegate to an external C compiler front
// end).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file; it is also the top-level key of that file's
	// configuration section.
	ConfigIdentifier = "config"
)
