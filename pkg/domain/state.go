package domain

import (
	"encoding/json"
	"fmt"
)

// State identifies one of the fixed machine states. The set is closed: the
// transition table is indexed by State and checked exhaustively when it is
// built, so a state outside this enumeration cannot appear at runtime.
type State uint8

const (
	// StateQ0 is the initial state: inspect the leftmost remaining symbol.
	StateQ0 State = iota
	// StateQ1 scans right after consuming an 'a'.
	StateQ1
	// StateQ2 scans right after consuming a 'b'.
	StateQ2
	// StateQ3 expects an 'a' at the right end.
	StateQ3
	// StateQ4 expects a 'b' at the right end.
	StateQ4
	// StateQ5 returns left to restart the outer cycle.
	StateQ5
	// StateAccept sweeps left erasing the residue before writing "YES".
	StateAccept
	StateY1
	StateY2
	StateY3
	// StateReject sweeps left erasing the residue before writing "NO".
	StateReject
	StateN1
	StateN2
	// StateHalt is the unique terminal state.
	StateHalt
)

var stateNames = map[State]string{
	StateQ0:     "q0",
	StateQ1:     "q1",
	StateQ2:     "q2",
	StateQ3:     "q3",
	StateQ4:     "q4",
	StateQ5:     "q5",
	StateAccept: "q_yes",
	StateY1:     "qy1",
	StateY2:     "qy2",
	StateY3:     "qy3",
	StateReject: "q_no",
	StateN1:     "qn1",
	StateN2:     "qn2",
	StateHalt:   "q_halt",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Terminal reports whether the machine performs no further mutation in s.
func (s State) Terminal() bool {
	return s == StateHalt
}

// MarshalJSON encodes the state under its classical name (q0, q_yes, ...).
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *State) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for st, name := range stateNames {
		if raw == name {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", raw)
}
