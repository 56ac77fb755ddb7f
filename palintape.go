package palintape

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/palintape/internal/machine"
	"github.com/aretw0/palintape/pkg/domain"
)

// Engine is the high-level entry point for the palintape library. It wraps
// the internal machine and provides a simplified API for consumers.
type Engine struct {
	machine *machine.Machine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	trace   bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTrace enables buffering of per-step records, retrievable via Trace.
func WithTrace() Option {
	return func(e *Engine) {
		e.trace = true
	}
}

// New initializes a new palintape Engine. The transition table is fixed;
// there is nothing to load.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized so we never hand nil downstream.
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	eng.machine = machine.New(eng.machineOptions()...)
	return eng
}

func (e *Engine) machineOptions() []machine.Option {
	opts := []machine.Option{
		machine.WithLogger(e.logger),
		machine.WithHooks(e.hooks),
	}
	if e.trace {
		opts = append(opts, machine.WithTrace())
	}
	return opts
}

// Initialize validates the input and resets the engine for a new run. On
// failure the prior run is left untouched and a *domain.InvalidInputError
// is returned.
func (e *Engine) Initialize(input string) error {
	return e.machine.Initialize(input)
}

// Step executes a single transition. See machine semantics: stepping a
// halted engine is a no-op returning OutcomeHalted.
func (e *Engine) Step() (domain.StepOutcome, error) {
	return e.machine.Step()
}

// Run steps the engine to completion and returns the decoded tape content
// plus the terminal outcome.
func (e *Engine) Run(ctx context.Context) (string, domain.StepOutcome, error) {
	return e.machine.Run(ctx)
}

// Snapshot returns the current read-only observables for displays.
func (e *Engine) Snapshot() domain.Snapshot {
	return e.machine.Snapshot()
}

// Result summarizes the run in its current state.
func (e *Engine) Result() domain.RunResult {
	return e.machine.Result()
}

// Output returns the decoded tape content (non-blank symbols in order).
func (e *Engine) Output() string {
	return e.machine.Output()
}

// Trace returns the buffered per-step records (requires WithTrace).
func (e *Engine) Trace() []domain.StepRecord {
	return e.machine.Trace()
}

// Bounds exposes the tape extent ever touched by a non-blank symbol.
func (e *Engine) Bounds() (min, max int) {
	return e.machine.Bounds()
}

// Window returns the tape cells in [from, to] for rendering.
func (e *Engine) Window(from, to int) []domain.Cell {
	return e.machine.Window(from, to)
}

// Rules exposes the transition table for introspection tools.
func (e *Engine) Rules() []domain.TableEntry {
	return machine.Rules()
}

// Execute runs input to completion on a fresh machine and returns the
// result together with the full step trace. Unlike the stateful
// Initialize/Step/Run surface, Execute is safe for concurrent use: each
// call owns its machine. Server adapters build on this.
func (e *Engine) Execute(ctx context.Context, input string, onStep func(domain.StepRecord)) (*domain.RunResult, []domain.StepRecord, error) {
	hooks := e.hooks
	if onStep != nil {
		inner := hooks.OnStep
		hooks.OnStep = func(rec domain.StepRecord) {
			if inner != nil {
				inner(rec)
			}
			onStep(rec)
		}
	}

	m := machine.New(
		machine.WithLogger(e.logger),
		machine.WithHooks(hooks),
		machine.WithTrace(),
	)
	if err := m.Initialize(input); err != nil {
		return nil, nil, err
	}

	_, _, err := m.Run(ctx)
	res := m.Result()
	return &res, m.Trace(), err
}
