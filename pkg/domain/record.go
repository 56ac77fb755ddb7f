package domain

import "time"

// StepRecord is the structured trace entry for one executed step. A log
// collaborator receives one record per step, in order.
type StepRecord struct {
	Step        uint64 `json:"step"`
	StateBefore State  `json:"state_before"`
	Head        int    `json:"head"`
	Read        Symbol `json:"read"`
	Wrote       Symbol `json:"wrote"`
	Move        Move   `json:"move"`
	StateAfter  State  `json:"state_after"`
}

// Snapshot is the read-only view a display collaborator consumes between
// steps. It carries no references into the machine; mutating a snapshot has
// no effect on the run.
type Snapshot struct {
	State State  `json:"state"`
	Head  int    `json:"head"`
	Steps uint64 `json:"steps"`
	// Under is the symbol currently under the head.
	Under Symbol `json:"under"`
	// Next is the rule about to be applied, for "preview next transition"
	// displays. Nil when the machine is halted or the table has no entry.
	Next *Rule `json:"next,omitempty"`
}

// Cell pairs a tape position with its symbol. Renderers receive windows of
// cells around the head and never touch the tape itself.
type Cell struct {
	Pos int    `json:"pos"`
	Sym Symbol `json:"sym"`
}

// RunResult summarizes a completed (or errored) execution.
type RunResult struct {
	Input   string      `json:"input"`
	Output  string      `json:"output"`
	Verdict Verdict     `json:"verdict"`
	Outcome StepOutcome `json:"outcome"`
	Steps   uint64      `json:"steps"`
}

// RunRecord is a persisted execution, as stored by a ports.RunStore.
type RunRecord struct {
	ID        string       `json:"id"`
	Input     string       `json:"input"`
	Output    string       `json:"output"`
	Verdict   Verdict      `json:"verdict"`
	Steps     uint64       `json:"steps"`
	Trace     []StepRecord `json:"trace,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
