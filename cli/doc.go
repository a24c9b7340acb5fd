// Package cli contains the command line interface for senere.
//
// # Usage
//
// The CLI provides logging, profiling, and compilation configuration:
//
//	senere --log-level=debug --pprof-mode=cpu run hello
//
// # Subcommands
//
//   - init: write a starter YAML configuration file derived from the
//     registered flags.
//   - fmt: read forms with the core reader and re-emit them as native
//     syntax, JSON, YAML, or an indented AST dump.
//   - run: resolve a namespace (dotted name or source path), drive it
//     through the Source Manager, Reader, and Namespace expansion, and
//     hand the result to the configured JIT handle.
//   - repl: an interactive read-eval loop over the same reader and
//     namespace pipeline.
//   - cc: delegate straight through to an external C compiler front end.
//
// # Configuration Loader
//
// The package includes a Kong configuration resolver ([resolve]) that
// reads a YAML configuration file and converts its values into Kong flag
// defaults.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp layout (RFC3339, RFC3339Nano, etc.)
//   - --log-callsite: Include callsite information in log output
//
// # Compile Options
//
//   - --compile-phase: Compilation phase to drive forms to (Parse, Analysis,
//     SLIR, MLIR, LIR, IR, NoOptimization, O1, O2, O3)
//   - --compile-target-triple / --compile-host-triple: JIT target
//     configuration carried in the lang.Options given to the lang.Handle
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//		go build -tags pprof -o senere .
//
//	  - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//	    heap, mem, mutex, thread, trace)
//	  - --pprof-dir: Set profile output directory (default: ~/.cache/senere/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	senere --log-level=debug --pprof-mode=cpu run hello
//
//	# Text format with heap profiling
//	senere --log-format=text --pprof-mode=heap run hello
//
//	# Custom profile directory
//	senere --pprof-mode=allocs --pprof-dir=/tmp/profiles run hello
package cli
