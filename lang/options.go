package lang

// CompilationPhase selects how far a [Namespace.ExpandTree] call should push
// newly parsed forms down the (externally owned) compilation pipeline. The
// values are totally ordered following the pipeline's natural stages.
type CompilationPhase int

const (
	// PhaseParse stops at raw forms: ExpandTree appends them and returns.
	PhaseParse CompilationPhase = iota
	// PhaseAnalysis additionally runs the semantic-analysis hook.
	PhaseAnalysis
	// PhaseSLIR targets the source-level IR lowering stage (external).
	PhaseSLIR
	// PhaseMLIR targets MLIR lowering (external).
	PhaseMLIR
	// PhaseLIR targets a low-level IR lowering stage (external).
	PhaseLIR
	// PhaseIR targets final IR emission (external).
	PhaseIR
	// PhaseNoOptimization requests code generation with optimizations
	// disabled (external).
	PhaseNoOptimization
	// PhaseO1 requests -O1-equivalent optimization (external).
	PhaseO1
	// PhaseO2 requests -O2-equivalent optimization (external).
	PhaseO2
	// PhaseO3 requests -O3-equivalent optimization (external).
	PhaseO3
)

// String names the phase, matching the identifiers used in config files and
// CLI flags.
func (p CompilationPhase) String() string {
	switch p {
	case PhaseParse:
		return "Parse"
	case PhaseAnalysis:
		return "Analysis"
	case PhaseSLIR:
		return "SLIR"
	case PhaseMLIR:
		return "MLIR"
	case PhaseLIR:
		return "LIR"
	case PhaseIR:
		return "IR"
	case PhaseNoOptimization:
		return "NoOptimization"
	case PhaseO1:
		return "O1"
	case PhaseO2:
		return "O2"
	case PhaseO3:
		return "O3"
	default:
		return "Unknown"
	}
}

// phaseByName maps the CLI/config spellings back to a CompilationPhase.
var phaseByName = map[string]CompilationPhase{
	"Parse":          PhaseParse,
	"Analysis":       PhaseAnalysis,
	"SLIR":           PhaseSLIR,
	"MLIR":           PhaseMLIR,
	"LIR":            PhaseLIR,
	"IR":             PhaseIR,
	"NoOptimization": PhaseNoOptimization,
	"O1":             PhaseO1,
	"O2":             PhaseO2,
	"O3":             PhaseO3,
}

// ParseCompilationPhase resolves a phase name, defaulting to PhaseParse on an
// empty string.
func ParseCompilationPhase(name string) (CompilationPhase, bool) {
	if name == "" {
		return PhaseParse, true
	}

	p, ok := phaseByName[name]

	return p, ok
}

// MarshalYAML implements yaml.Marshaler.
func (p CompilationPhase) MarshalYAML() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *CompilationPhase) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	phase, ok := ParseCompilationPhase(name)
	if !ok {
		return NewErrorAt(KindInvalidCharacterForSymbol, LocationRange{}).
			WithMessage("unrecognized compilation phase " + name)
	}

	*p = phase

	return nil
}

// Options is the enumerated recognized configuration gating both the core
// (CompilationPhase) and the downstream JIT engine it hands namespaces to.
// Every field round-trips through YAML so it can be loaded from a config
// file by the CLI.
type Options struct {
	Verbose    bool `yaml:"verbose"`
	WithColors bool `yaml:"with_colors"`

	JITEnableObjectCache              bool `yaml:"jit_enable_object_cache"`
	JITEnableGDBNotificationListener  bool `yaml:"jit_enable_gdb_listener"`
	JITEnablePerfNotificationListener bool `yaml:"jit_enable_perf_listener"`
	JITLazy                           bool `yaml:"jit_lazy"`

	TargetTriple string `yaml:"target_triple"`
	HostTriple   string `yaml:"host_triple"`

	CompilationPhase CompilationPhase `yaml:"compilation_phase"`
}

// DefaultOptions returns the zero-value configuration: no JIT features
// enabled, host/target triples empty (left for the caller to fill from the
// running system), and CompilationPhase == PhaseParse.
func DefaultOptions() Options {
	return Options{}
}

// ModuleID names a module loaded into the downstream JIT engine. It is
// opaque to this package.
type ModuleID uint64

// Handle is the external JIT interface consumed by [Namespace.ExpandTree]
// and by callers driving the compile→execute pipeline. It is implemented
// outside this module (the JIT engine, its object cache, and its
// dynamic-library stack are out of scope here); this package only borrows a
// Handle, never extends its lifetime.
type Handle interface {
	// Options returns the JIT's current configuration, including the
	// CompilationPhase that gates ExpandTree.
	Options() Options
	// LoadModule registers ns's compiled output with the JIT and returns an
	// identifier for later lookup.
	LoadModule(ns *Namespace) (ModuleID, error)
	// Lookup resolves a symbol to an executable address.
	Lookup(symbol string) (uintptr, error)
	// InvokePacked calls fn with the given packed argument addresses.
	InvokePacked(fn uintptr, args []uintptr) (uintptr, error)
}

// ErrNotImplemented is returned by [NoopHandle]'s methods.
var ErrNotImplemented = NewErrorAt(KindFINAL, LocationRange{}).
	WithMessage("JIT engine not wired up")

// NoopHandle is a trivial [Handle] for tests and for driving the core
// pipeline before a real JIT is attached. LoadModule, Lookup, and
// InvokePacked all return [ErrNotImplemented]; Options returns OptionsValue
// verbatim.
type NoopHandle struct {
	OptionsValue Options
}

// Options implements [Handle].
func (h NoopHandle) Options() Options { return h.OptionsValue }

// LoadModule implements [Handle].
func (h NoopHandle) LoadModule(*Namespace) (ModuleID, error) {
	return 0, ErrNotImplemented
}

// Lookup implements [Handle].
func (h NoopHandle) Lookup(string) (uintptr, error) {
	return 0, ErrNotImplemented
}

// InvokePacked implements [Handle].
func (h NoopHandle) InvokePacked(uintptr, []uintptr) (uintptr, error) {
	return 0, ErrNotImplemented
}
