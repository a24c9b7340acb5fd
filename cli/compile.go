package cli

import (
	"github.com/alecthomas/kong"

	"github.com/ardnew/senere/lang"
)

// compileConfig holds the global flags that populate a [lang.Options] value
// shared by the run and repl subcommands.
type compileConfig struct {
	WithColors bool `default:"true" help:"Colorize diagnostics" negatable:""`

	JITObjectCache  bool `help:"Enable the JIT object cache"`
	JITGDBListener  bool `help:"Enable the JIT GDB notification listener"`
	JITPerfListener bool `help:"Enable the JIT perf notification listener"`
	JITLazy         bool `help:"Enable lazy JIT compilation"`

	TargetTriple string `help:"Target triple (defaults to the host triple)"`
	HostTriple   string `help:"Host triple override"`

	Phase string `default:"Parse" enum:"${compilationPhaseEnum}" help:"Compilation phase to drive forms to (${enum})"`
}

func (*compileConfig) vars() kong.Vars {
	return kong.Vars{
		"compilationPhaseEnum": "Parse,Analysis,SLIR,MLIR,LIR,IR,NoOptimization,O1,O2,O3",
	}
}

func (*compileConfig) group() kong.Group {
	var group kong.Group

	group.Key = "compile"
	group.Title = "Compilation options"

	return group
}

// options converts the parsed flags into a [lang.Options] value.
func (c *compileConfig) options() lang.Options {
	phase, ok := lang.ParseCompilationPhase(c.Phase)
	if !ok {
		phase = lang.PhaseParse
	}

	return lang.Options{
		WithColors:                        c.WithColors,
		JITEnableObjectCache:              c.JITObjectCache,
		JITEnableGDBNotificationListener:  c.JITGDBListener,
		JITEnablePerfNotificationListener: c.JITPerfListener,
		JITLazy:                           c.JITLazy,
		TargetTriple:                      c.TargetTriple,
		HostTriple:                        c.HostTriple,
		CompilationPhase:                  phase,
	}
}
