package machine

import (
	"testing"

	"github.com/aretw0/palintape/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ValidatesAtInit(t *testing.T) {
	// mustTable ran at package init; re-run it to assert it stays clean.
	require.NotPanics(t, func() { mustTable() })
}

func TestTable_EveryNonTerminalStateCovered(t *testing.T) {
	covered := map[domain.State]bool{}
	for _, e := range Rules() {
		covered[e.State] = true
		assert.False(t, e.State.Terminal(), "terminal state must have no rules")
	}
	for s := domain.StateQ0; s < domain.StateHalt; s++ {
		assert.True(t, covered[s], "state %s has no rules", s)
	}
}

func TestTable_Lookup(t *testing.T) {
	rule, ok := table.Lookup(domain.StateQ0, domain.SymbolA)
	require.True(t, ok)
	assert.Equal(t, domain.Rule{Next: domain.StateQ1, Write: domain.Blank, Move: domain.MoveRight}, rule)

	// q1 reading 'Y' is a genuine gap; only the defensive branch sees it.
	_, ok = table.Lookup(domain.StateQ1, domain.SymbolY)
	assert.False(t, ok)
}

func TestTable_MismatchRulesEraseTheEndSymbol(t *testing.T) {
	// The reject sweep clears only cells left of the mismatch, so the
	// mismatched symbol itself must be erased on the reject transition or
	// it survives past the NO stamp.
	rule, ok := table.Lookup(domain.StateQ3, domain.SymbolB)
	require.True(t, ok)
	assert.Equal(t, domain.Rule{Next: domain.StateReject, Write: domain.Blank, Move: domain.MoveLeft}, rule)

	rule, ok = table.Lookup(domain.StateQ4, domain.SymbolA)
	require.True(t, ok)
	assert.Equal(t, domain.Rule{Next: domain.StateReject, Write: domain.Blank, Move: domain.MoveLeft}, rule)
}

func TestTable_RulesOrdered(t *testing.T) {
	entries := Rules()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		inOrder := prev.State < cur.State ||
			(prev.State == cur.State && prev.Read < cur.Read)
		assert.True(t, inOrder, "entries %d and %d out of order", i-1, i)
	}
}
