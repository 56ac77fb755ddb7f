package machine

import (
	"fmt"
	"sort"

	"github.com/aretw0/palintape/pkg/domain"
)

type tableKey struct {
	state  domain.State
	symbol domain.Symbol
}

// transitionTable holds the fixed palindrome decision procedure. It is built
// once at package init and never mutated.
type transitionTable map[tableKey]domain.Rule

var table = mustTable()

func buildTable() transitionTable {
	t := transitionTable{}
	add := func(s domain.State, read domain.Symbol, next domain.State, write domain.Symbol, move domain.Move) {
		t[tableKey{s, read}] = domain.Rule{Next: next, Write: write, Move: move}
	}

	// q0: inspect the leftmost remaining symbol. Consuming it records which
	// symbol must match at the far end; blank means the string is exhausted.
	add(domain.StateQ0, domain.SymbolA, domain.StateQ1, domain.Blank, domain.MoveRight)
	add(domain.StateQ0, domain.SymbolB, domain.StateQ2, domain.Blank, domain.MoveRight)
	add(domain.StateQ0, domain.Blank, domain.StateAccept, domain.Blank, domain.MoveLeft)

	// q1/q2: scan right unchanged until the first blank, then step back left
	// onto the last remaining symbol.
	add(domain.StateQ1, domain.SymbolA, domain.StateQ1, domain.SymbolA, domain.MoveRight)
	add(domain.StateQ1, domain.SymbolB, domain.StateQ1, domain.SymbolB, domain.MoveRight)
	add(domain.StateQ1, domain.Blank, domain.StateQ3, domain.Blank, domain.MoveLeft)

	add(domain.StateQ2, domain.SymbolA, domain.StateQ2, domain.SymbolA, domain.MoveRight)
	add(domain.StateQ2, domain.SymbolB, domain.StateQ2, domain.SymbolB, domain.MoveRight)
	add(domain.StateQ2, domain.Blank, domain.StateQ4, domain.Blank, domain.MoveLeft)

	// q3: the consumed left symbol was 'a'. Match and mismatch both erase the
	// end symbol: the reject sweep only clears cells to its left, so a kept
	// symbol would sit past the NO stamp and corrupt the verdict. Blank means
	// one or zero symbols remained.
	add(domain.StateQ3, domain.SymbolA, domain.StateQ5, domain.Blank, domain.MoveLeft)
	add(domain.StateQ3, domain.SymbolB, domain.StateReject, domain.Blank, domain.MoveLeft)
	add(domain.StateQ3, domain.Blank, domain.StateAccept, domain.Blank, domain.MoveLeft)

	// q4: mirror of q3 for 'b'.
	add(domain.StateQ4, domain.SymbolB, domain.StateQ5, domain.Blank, domain.MoveLeft)
	add(domain.StateQ4, domain.SymbolA, domain.StateReject, domain.Blank, domain.MoveLeft)
	add(domain.StateQ4, domain.Blank, domain.StateAccept, domain.Blank, domain.MoveLeft)

	// q5: return left past the left edge, then re-enter q0 one step right.
	add(domain.StateQ5, domain.SymbolA, domain.StateQ5, domain.SymbolA, domain.MoveLeft)
	add(domain.StateQ5, domain.SymbolB, domain.StateQ5, domain.SymbolB, domain.MoveLeft)
	add(domain.StateQ5, domain.Blank, domain.StateQ0, domain.Blank, domain.MoveRight)

	// q_yes: sweep left erasing the residue, then write Y-E-S rightwards.
	add(domain.StateAccept, domain.SymbolA, domain.StateAccept, domain.Blank, domain.MoveLeft)
	add(domain.StateAccept, domain.SymbolB, domain.StateAccept, domain.Blank, domain.MoveLeft)
	add(domain.StateAccept, domain.Blank, domain.StateY1, domain.Blank, domain.MoveRight)
	add(domain.StateY1, domain.Blank, domain.StateY2, domain.SymbolY, domain.MoveRight)
	add(domain.StateY2, domain.Blank, domain.StateY3, domain.SymbolE, domain.MoveRight)
	add(domain.StateY3, domain.Blank, domain.StateHalt, domain.SymbolS, domain.MoveStay)

	// q_no: same sweep, writing N-O.
	add(domain.StateReject, domain.SymbolA, domain.StateReject, domain.Blank, domain.MoveLeft)
	add(domain.StateReject, domain.SymbolB, domain.StateReject, domain.Blank, domain.MoveLeft)
	add(domain.StateReject, domain.Blank, domain.StateN1, domain.Blank, domain.MoveRight)
	add(domain.StateN1, domain.Blank, domain.StateN2, domain.SymbolN, domain.MoveRight)
	add(domain.StateN2, domain.Blank, domain.StateHalt, domain.SymbolO, domain.MoveStay)

	return t
}

// mustTable builds the table and validates it exhaustively: every
// non-terminal state needs at least one rule, every rule must lead to a
// known state, and the terminal state must have none. A violation is a
// programming error, so it panics at init rather than surfacing at runtime.
func mustTable() transitionTable {
	t := buildTable()

	covered := map[domain.State]bool{}
	for key, rule := range t {
		if key.state.Terminal() {
			panic(fmt.Sprintf("transition table: rule defined for terminal state %s", key.state))
		}
		if rule.Next > domain.StateHalt {
			panic(fmt.Sprintf("transition table: rule for (%s, %s) targets unknown state", key.state, key.symbol))
		}
		covered[key.state] = true
	}

	for s := domain.StateQ0; s < domain.StateHalt; s++ {
		if !covered[s] {
			panic(fmt.Sprintf("transition table: state %s has no rules", s))
		}
	}
	return t
}

// Lookup returns the rule for (state, symbol), reporting whether one exists.
func (t transitionTable) Lookup(s domain.State, sym domain.Symbol) (domain.Rule, bool) {
	r, ok := t[tableKey{s, sym}]
	return r, ok
}

// Rules returns every table entry ordered by state then symbol, for
// introspection collaborators.
func Rules() []domain.TableEntry {
	entries := make([]domain.TableEntry, 0, len(table))
	for key, rule := range table {
		entries = append(entries, domain.TableEntry{State: key.state, Read: key.symbol, Rule: rule})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].State != entries[j].State {
			return entries[i].State < entries[j].State
		}
		return entries[i].Read < entries[j].Read
	})
	return entries
}
