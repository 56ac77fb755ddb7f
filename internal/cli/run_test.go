package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/palintape"
	"github.com/aretw0/palintape/internal/config"
	"github.com/aretw0/palintape/pkg/adapters/memory"
	"github.com/aretw0/palintape/pkg/domain"
)

func TestDumpTrace_WritesOneJSONLinePerStep(t *testing.T) {
	eng := palintape.New(palintape.WithTrace())
	require.NoError(t, eng.Initialize("ab"))
	_, _, err := eng.Run(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "trace.jsonl")
	require.NoError(t, dumpTrace(eng, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec domain.StepRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, int(eng.Result().Steps), lines)
}

func TestDumpTrace_NoPathIsNoop(t *testing.T) {
	eng := palintape.New()
	assert.NoError(t, dumpTrace(eng, ""))
}

func TestDescribeInputError(t *testing.T) {
	eng := palintape.New()
	err := eng.Initialize("abxba")
	require.Error(t, err)

	described := describeInputError(err)
	assert.Contains(t, described.Error(), "rejected")
	assert.Contains(t, described.Error(), "position 2")
}

func TestExecute_RejectsTUIWithJSON(t *testing.T) {
	err := Execute(RunOptions{Input: "abba", TUI: true, JSON: true})
	assert.Error(t, err)
}

func TestBuildStore_DefaultsToMemory(t *testing.T) {
	store, closeStore := buildStore(config.Default())
	defer closeStore()

	assert.IsType(t, &memory.Store{}, store)
	assert.Equal(t, "memory", storeName(config.Default()))
}
