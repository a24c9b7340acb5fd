package lang

import "context"

// Analyzer is the semantic-analysis hook invoked by [Namespace.ExpandTree]
// once the configured [CompilationPhase] passes PhaseParse. Its algorithm is
// deliberately unspecified here — macro expansion is a non-goal of this
// package — so the only shipped implementation is [PassThroughAnalyzer].
type Analyzer interface {
	Analyze(ctx context.Context, ns *Namespace, root *Environment[*Expression], forms Ast) error
}

// PassThroughAnalyzer is the default [Analyzer]: it performs no analysis and
// never errors. It exists so future extensions can return errors from this
// hook without changing ExpandTree's signature.
type PassThroughAnalyzer struct{}

// Analyze implements [Analyzer].
func (PassThroughAnalyzer) Analyze(context.Context, *Namespace, *Environment[*Expression], Ast) error {
	return nil
}

// Namespace is the owning unit of compilation: a name, an optional backing
// filename, the accumulated forms parsed into it so far, and a stack of
// lexically nested environments binding names to AST nodes.
//
// A Namespace is mutable over its lifetime (REPL-style): new forms may
// arrive via repeated ExpandTree calls. Concurrent mutation from multiple
// goroutines is not supported.
type Namespace struct {
	name     string
	filename string
	hasFile  bool
	forms    Ast
	envs     []*Environment[*Expression]
	jit      Handle
	analyzer Analyzer
}

// NewNamespace constructs a Namespace with the given (borrowed) JIT handle,
// name, and optional filename. Construction always creates a root
// environment with parent == nil.
func NewNamespace(jit Handle, name string, filename string, hasFile bool) *Namespace {
	ns := &Namespace{
		name:     name,
		filename: filename,
		hasFile:  hasFile,
		jit:      jit,
		analyzer: PassThroughAnalyzer{},
	}
	ns.envs = []*Environment[*Expression]{NewEnvironment[*Expression](nil)}

	return ns
}

// Name returns the namespace's dotted name.
func (ns *Namespace) Name() string { return ns.name }

// Filename returns the backing file path and whether one is set.
func (ns *Namespace) Filename() (string, bool) { return ns.filename, ns.hasFile }

// SetAnalyzer overrides the semantic-analysis hook. Passing nil restores
// [PassThroughAnalyzer].
func (ns *Namespace) SetAnalyzer(a Analyzer) {
	if a == nil {
		a = PassThroughAnalyzer{}
	}

	ns.analyzer = a
}

// CreateEnv pushes a new environment owned by ns and returns it. The
// returned pointer is stable for the namespace's lifetime.
func (ns *Namespace) CreateEnv(parent *Environment[*Expression]) *Environment[*Expression] {
	env := NewEnvironment[*Expression](parent)
	ns.envs = append(ns.envs, env)

	return env
}

// RootEnv returns the first environment created at construction. It always
// exists.
func (ns *Namespace) RootEnv() *Environment[*Expression] {
	return ns.envs[0]
}

// Define inserts or overwrites name in the root environment.
func (ns *Namespace) Define(name string, node *Expression) {
	ns.RootEnv().Define(name, node)
}

// compilationPhase reads the gate from the borrowed JIT handle's Options,
// defaulting to PhaseParse when no handle is attached.
func (ns *Namespace) compilationPhase() CompilationPhase {
	if ns.jit == nil {
		return PhaseParse
	}

	return ns.jit.Options().CompilationPhase
}

// ExpandTree appends forms to the namespace's accumulated tree. If the
// configured CompilationPhase is PhaseParse, that is the entire effect.
// Otherwise the semantic-analysis hook is also invoked with the root
// environment and the newly appended forms; any error it returns is
// propagated.
func (ns *Namespace) ExpandTree(ctx context.Context, forms Ast) error {
	ns.forms = append(ns.forms, forms...)

	if ns.compilationPhase() == PhaseParse {
		return nil
	}

	return ns.analyzer.Analyze(ctx, ns, ns.RootEnv(), forms)
}

// Tree returns read access to the forms accumulated so far.
func (ns *Namespace) Tree() Ast {
	return ns.forms
}
