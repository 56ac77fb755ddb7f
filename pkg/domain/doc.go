/*
Package domain contains the core domain models for the palintape engine.

It defines the fundamental entities of the Turing machine: the tape alphabet
(Symbol), the machine states, transition rules, step outcomes, and the
per-step records consumed by observers. This package is kept pure and free
of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Symbol: A tape cell value from the closed alphabet {a, b, blank, Y, E, S, N, O}.
  - State: One of the fixed machine states (q0..q5, accept/reject sequences, halt).
  - Rule: A transition (next state, symbol to write, head move).
  - StepRecord: The structured trace entry emitted for every executed step.
  - Snapshot: The read-only observables a display collaborator may consume.
  - RunRecord: A persisted, completed execution (input, output, verdict, trace).
*/
package domain
