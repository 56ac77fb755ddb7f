package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/palintape/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a RunStore
// implementation adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	record := &domain.RunRecord{
		ID:      runID,
		Input:   "abba",
		Output:  "YES",
		Verdict: domain.VerdictYes,
		Steps:   24,
		Trace: []domain.StepRecord{
			{
				Step:        1,
				StateBefore: domain.StateQ0,
				Head:        0,
				Read:        domain.SymbolA,
				Wrote:       domain.Blank,
				Move:        domain.MoveRight,
				StateAfter:  domain.StateQ1,
			},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, record)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.Input, loaded.Input)
		assert.Equal(t, record.Output, loaded.Output)
		assert.Equal(t, record.Verdict, loaded.Verdict)
		assert.Equal(t, record.Steps, loaded.Steps)
		require.Len(t, loaded.Trace, 1)
		assert.Equal(t, domain.StateQ1, loaded.Trace[0].StateAfter)
		assert.Equal(t, domain.MoveRight, loaded.Trace[0].Move)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Loaded record is isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		loaded.Output = "mutated"

		again, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, "YES", again.Output, "store must not leak shared pointers")
	})

	t.Run("List", func(t *testing.T) {
		second := *record
		second.ID = runID + "-second"
		require.NoError(t, store.Save(ctx, &second))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, runID)
		assert.Contains(t, ids, second.ID)

		require.NoError(t, store.Delete(ctx, second.ID))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, runID))

		_, err := store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})
}
