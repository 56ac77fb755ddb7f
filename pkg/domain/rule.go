package domain

import (
	"encoding/json"
	"fmt"
)

// Move is the head displacement of a transition.
type Move int8

const (
	MoveLeft  Move = -1
	MoveStay  Move = 0
	MoveRight Move = 1
)

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "L"
	case MoveRight:
		return "R"
	case MoveStay:
		return "S"
	default:
		return fmt.Sprintf("move(%d)", int8(m))
	}
}

// MarshalJSON encodes the move as its classical single-letter form.
func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw {
	case "L":
		*m = MoveLeft
	case "R":
		*m = MoveRight
	case "S":
		*m = MoveStay
	default:
		return fmt.Errorf("unknown move %q", raw)
	}
	return nil
}

// Rule is a single transition: the state to enter, the symbol to write at
// the head, and the head move to perform. Rules are construction-time
// constants; they are never mutated at runtime.
type Rule struct {
	Next  State  `json:"next"`
	Write Symbol `json:"write"`
	Move  Move   `json:"move"`
}

// TableEntry is one row of the transition table as exposed to introspection
// collaborators (HTTP, MCP). The engine itself indexes rules by (State, Symbol).
type TableEntry struct {
	State State  `json:"state"`
	Read  Symbol `json:"read"`
	Rule  Rule   `json:"rule"`
}
