package palintape_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/palintape"
	"github.com/aretw0/palintape/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_RunToCompletion(t *testing.T) {
	eng := palintape.New()
	require.NoError(t, eng.Initialize("abba"))

	output, outcome, err := eng.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeHalted, outcome)
	assert.Equal(t, "YES", output)
	assert.Equal(t, domain.VerdictYes, eng.Result().Verdict)
}

func TestEngine_SingleStepDriving(t *testing.T) {
	eng := palintape.New()
	require.NoError(t, eng.Initialize("ab"))

	var outcome domain.StepOutcome
	var err error
	for {
		outcome, err = eng.Step()
		require.NoError(t, err)
		if outcome != domain.OutcomeContinue {
			break
		}
	}
	assert.Equal(t, domain.OutcomeHalted, outcome)
	assert.Equal(t, "NO", eng.Output())
}

func TestEngine_ExecuteIsStateless(t *testing.T) {
	eng := palintape.New()
	require.NoError(t, eng.Initialize("abba"))

	// Execute must not disturb the stateful machine.
	res, trace, err := eng.Execute(context.Background(), "abab", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictNo, res.Verdict)
	assert.Len(t, trace, int(res.Steps))

	snap := eng.Snapshot()
	assert.Equal(t, domain.StateQ0, snap.State)
	assert.Equal(t, uint64(0), snap.Steps)
}

func TestEngine_ExecuteStreamsSteps(t *testing.T) {
	eng := palintape.New()

	var streamed []domain.StepRecord
	res, trace, err := eng.Execute(context.Background(), "aa", func(rec domain.StepRecord) {
		streamed = append(streamed, rec)
	})
	require.NoError(t, err)
	assert.Equal(t, trace, streamed)
	assert.Equal(t, domain.VerdictYes, res.Verdict)
}

func TestEngine_ExecuteInvalidInput(t *testing.T) {
	eng := palintape.New()

	_, _, err := eng.Execute(context.Background(), "abcba", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngine_Rules(t *testing.T) {
	eng := palintape.New()
	rules := eng.Rules()
	require.NotEmpty(t, rules)
	assert.Equal(t, domain.StateQ0, rules[0].State)
}

func TestVersionEmbedded(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(palintape.Version))
}
