package lang

import "testing"

func TestCompilationPhaseStringRoundTrip(t *testing.T) {
	phases := []CompilationPhase{
		PhaseParse, PhaseAnalysis, PhaseSLIR, PhaseMLIR, PhaseLIR,
		PhaseIR, PhaseNoOptimization, PhaseO1, PhaseO2, PhaseO3,
	}

	for _, p := range phases {
		t.Run(p.String(), func(t *testing.T) {
			got, ok := ParseCompilationPhase(p.String())
			if !ok {
				t.Fatalf("ParseCompilationPhase(%q) not found", p.String())
			}

			if got != p {
				t.Errorf("ParseCompilationPhase(%q) = %v, want %v", p.String(), got, p)
			}
		})
	}
}

func TestParseCompilationPhaseEmptyDefaultsToParse(t *testing.T) {
	got, ok := ParseCompilationPhase("")
	if !ok || got != PhaseParse {
		t.Errorf("ParseCompilationPhase(\"\") = %v, %v, want PhaseParse, true", got, ok)
	}
}

func TestParseCompilationPhaseUnknown(t *testing.T) {
	if _, ok := ParseCompilationPhase("bogus"); ok {
		t.Error("ParseCompilationPhase(bogus) ok = true, want false")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.CompilationPhase != PhaseParse {
		t.Errorf("DefaultOptions().CompilationPhase = %v, want PhaseParse", opts.CompilationPhase)
	}

	if opts.Verbose || opts.WithColors || opts.JITLazy {
		t.Errorf("DefaultOptions() = %+v, want all feature flags false", opts)
	}
}

func TestNoopHandle(t *testing.T) {
	opts := Options{Verbose: true}
	h := NoopHandle{OptionsValue: opts}

	if got := h.Options(); got != opts {
		t.Errorf("Options() = %+v, want %+v", got, opts)
	}

	if _, err := h.LoadModule(nil); err != ErrNotImplemented {
		t.Errorf("LoadModule() error = %v, want ErrNotImplemented", err)
	}

	if _, err := h.Lookup("x"); err != ErrNotImplemented {
		t.Errorf("Lookup() error = %v, want ErrNotImplemented", err)
	}

	if _, err := h.InvokePacked(0, nil); err != ErrNotImplemented {
		t.Errorf("InvokePacked() error = %v, want ErrNotImplemented", err)
	}
}
