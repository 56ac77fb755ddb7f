package machine

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/palintape/pkg/domain"
)

// Machine is the execution context of the palindrome decider: the fixed
// transition table plus the dynamic state of one run (tape, head, current
// state, step count). A Machine is reusable across runs via Initialize and
// must not be driven by two callers concurrently; embedders serialize.
type Machine struct {
	tape  *Tape
	head  int
	state domain.State
	steps uint64

	gap *domain.TransitionGapError

	traceEnabled bool
	trace        []domain.StepRecord
	hooks        domain.LifecycleHooks
	logger       *slog.Logger

	input string
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets a structured logger for step-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithTrace enables buffering of per-step records, retrievable via Trace.
func WithTrace() Option {
	return func(m *Machine) {
		m.traceEnabled = true
	}
}

// New creates a Machine in the halted-empty state. Call Initialize before
// stepping.
func New(opts ...Option) *Machine {
	m := &Machine{
		tape:   NewTape(),
		state:  domain.StateHalt,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize validates the input and resets the machine for a new run.
// On failure it returns a *domain.InvalidInputError and leaves the prior
// run untouched; there is no partial mutation.
func (m *Machine) Initialize(input string) error {
	symbols := make([]domain.Symbol, 0, len(input))
	for _, r := range input {
		sym, ok := domain.ParseInputSymbol(r)
		if !ok {
			// Position counts characters, not bytes; they diverge when the
			// offending character is multi-byte.
			return &domain.InvalidInputError{Char: r, Position: len(symbols)}
		}
		symbols = append(symbols, sym)
	}

	m.tape = NewTapeFromInput(symbols)
	m.head = 0
	m.state = domain.StateQ0
	m.steps = 0
	m.gap = nil
	m.trace = nil
	m.input = input

	m.logger.Debug("machine initialized", "input", input, "length", len(input))
	return nil
}

// Step executes one transition.
//
// A halted machine returns OutcomeHalted immediately without mutating
// anything, so polling loops need not track halt status themselves. A
// missing rule transitions to the terminal state and returns OutcomeError
// with a *domain.TransitionGapError naming the offending pair.
func (m *Machine) Step() (domain.StepOutcome, error) {
	if m.state.Terminal() {
		return domain.OutcomeHalted, nil
	}

	read := m.tape.Get(m.head)
	rule, ok := table.Lookup(m.state, read)
	if !ok {
		gap := &domain.TransitionGapError{State: m.state, Symbol: read}
		m.gap = gap
		m.state = domain.StateHalt
		m.logger.Error("transition gap", "err", gap)
		return domain.OutcomeError, gap
	}

	record := domain.StepRecord{
		Step:        m.steps + 1,
		StateBefore: m.state,
		Head:        m.head,
		Read:        read,
		Wrote:       rule.Write,
		Move:        rule.Move,
		StateAfter:  rule.Next,
	}

	m.tape.Set(m.head, rule.Write)
	m.head += int(rule.Move)
	m.state = rule.Next
	m.steps++

	if m.traceEnabled {
		m.trace = append(m.trace, record)
	}
	if m.hooks.OnStep != nil {
		m.hooks.OnStep(record)
	}
	m.logger.Debug("step",
		"step", record.Step,
		"state", record.StateBefore.String(),
		"read", record.Read.String(),
		"wrote", record.Wrote.String(),
		"move", record.Move.String(),
		"next", record.StateAfter.String(),
	)

	if m.state.Terminal() {
		return domain.OutcomeHalted, nil
	}
	return domain.OutcomeContinue, nil
}

// Run steps the machine to completion and returns the decoded tape content
// plus the terminal outcome. It is a pure looping composition over Step;
// ctx is only consulted between steps so embedding loops can cancel.
func (m *Machine) Run(ctx context.Context) (string, domain.StepOutcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return m.Output(), domain.OutcomeError, err
		}
		outcome, err := m.Step()
		if outcome == domain.OutcomeContinue {
			continue
		}
		res := m.Result()
		if m.hooks.OnHalt != nil {
			m.hooks.OnHalt(res)
		}
		m.logger.Debug("run finished", "outcome", string(outcome), "steps", m.steps, "output", res.Output)
		return res.Output, outcome, err
	}
}

// Output returns the decoded tape content: non-blank symbols in position
// order.
func (m *Machine) Output() string {
	return m.tape.String()
}

// Result summarizes the run in its current (normally terminal) state.
func (m *Machine) Result() domain.RunResult {
	output := m.Output()
	outcome := domain.OutcomeContinue
	if m.state.Terminal() {
		outcome = domain.OutcomeHalted
		if m.gap != nil {
			outcome = domain.OutcomeError
		}
	}
	return domain.RunResult{
		Input:   m.input,
		Output:  output,
		Verdict: domain.DecodeVerdict(output),
		Outcome: outcome,
		Steps:   m.steps,
	}
}

// Snapshot returns the read-only observables for display collaborators.
func (m *Machine) Snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		State: m.state,
		Head:  m.head,
		Steps: m.steps,
		Under: m.tape.Get(m.head),
	}
	if !m.state.Terminal() {
		if rule, ok := table.Lookup(m.state, snap.Under); ok {
			r := rule
			snap.Next = &r
		}
	}
	return snap
}

// Trace returns the buffered step records. Empty unless WithTrace was set.
func (m *Machine) Trace() []domain.StepRecord {
	out := make([]domain.StepRecord, len(m.trace))
	copy(out, m.trace)
	return out
}

// State returns the current machine state.
func (m *Machine) State() domain.State { return m.state }

// Head returns the current head position.
func (m *Machine) Head() int { return m.head }

// Steps returns the number of executed steps.
func (m *Machine) Steps() uint64 { return m.steps }

// At returns the symbol at an arbitrary tape position.
func (m *Machine) At(pos int) domain.Symbol { return m.tape.Get(pos) }

// Bounds exposes the tape extent ever touched by a non-blank symbol.
func (m *Machine) Bounds() (min, max int) { return m.tape.Bounds() }

// Window returns the tape cells in [from, to] for rendering.
func (m *Machine) Window(from, to int) []domain.Cell { return m.tape.Window(from, to) }
