package palintape_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/palintape"
	"github.com/aretw0/palintape/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_RendersEveryStep(t *testing.T) {
	var buf bytes.Buffer
	runner := palintape.NewRunner()
	runner.Output = &buf

	eng := palintape.New()
	res, err := runner.Run(context.Background(), eng, "ab")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictNo, res.Verdict)

	out := buf.String()
	// One frame for initialization plus one per step.
	frames := strings.Count(out, "State: ")
	assert.Equal(t, int(res.Steps)+1, frames)
	assert.Contains(t, out, "State: q0")
	assert.Contains(t, out, "State: q_halt")
	assert.Contains(t, out, "^")
}

func TestRunner_RequiresOutput(t *testing.T) {
	runner := palintape.NewRunner()
	_, err := runner.Run(context.Background(), palintape.New(), "a")
	require.Error(t, err)
}

func TestRunner_InvalidInput(t *testing.T) {
	var buf bytes.Buffer
	runner := palintape.NewRunner()
	runner.Output = &buf

	_, err := runner.Run(context.Background(), palintape.New(), "xyz")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, buf.String(), "no frame before validation passes")
}

func TestRunner_CustomRenderer(t *testing.T) {
	var buf bytes.Buffer
	runner := palintape.NewRunner()
	runner.Output = &buf
	runner.Renderer = func(snap domain.Snapshot, window []domain.Cell) string {
		return "frame:" + snap.State.String()
	}

	_, err := runner.Run(context.Background(), palintape.New(), "a")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "frame:q0")
	assert.Contains(t, buf.String(), "frame:q_halt")
}

func TestRenderPlainFrame(t *testing.T) {
	frame := palintape.RenderPlainFrame(
		domain.Snapshot{State: domain.StateQ1, Head: 1, Steps: 3, Under: domain.SymbolB},
		[]domain.Cell{
			{Pos: 0, Sym: domain.SymbolA},
			{Pos: 1, Sym: domain.SymbolB},
			{Pos: 2, Sym: domain.Blank},
		},
	)
	assert.Contains(t, frame, "State: q1")
	assert.Contains(t, frame, "Step: 3")
	assert.Contains(t, frame, " a  b  B ")
	lines := strings.Split(frame, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "    ^    ", lines[3])
}
