package domain

import (
	"encoding/json"
	"fmt"
)

// Symbol is a single tape cell value. It is an enumerated type rather than a
// raw character so that the transition table cannot hold symbols outside the
// machine's alphabet.
type Symbol uint8

const (
	// Blank is the default value of every unwritten tape position.
	Blank Symbol = iota
	SymbolA
	SymbolB

	// Verdict symbols, written only during the accept/reject sequences.
	SymbolY
	SymbolE
	SymbolS
	SymbolN
	SymbolO
)

var symbolRunes = map[Symbol]rune{
	Blank:   'B',
	SymbolA: 'a',
	SymbolB: 'b',
	SymbolY: 'Y',
	SymbolE: 'E',
	SymbolS: 'S',
	SymbolN: 'N',
	SymbolO: 'O',
}

// Rune returns the character representation of the symbol ('B' for blank).
func (s Symbol) Rune() rune {
	if r, ok := symbolRunes[s]; ok {
		return r
	}
	return '?'
}

func (s Symbol) String() string {
	return string(s.Rune())
}

// ParseInputSymbol maps a raw input character to a Symbol. Only 'a' and 'b'
// are valid input; everything else is rejected at initialization time.
func ParseInputSymbol(r rune) (Symbol, bool) {
	switch r {
	case 'a':
		return SymbolA, true
	case 'b':
		return SymbolB, true
	default:
		return Blank, false
	}
}

// MarshalJSON encodes the symbol as its character representation so traces
// stay readable in stores and over the wire.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Symbol) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for sym, r := range symbolRunes {
		if raw == string(r) {
			*s = sym
			return nil
		}
	}
	return fmt.Errorf("unknown symbol %q", raw)
}
