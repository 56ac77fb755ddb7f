package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVerdict(t *testing.T) {
	cases := []struct {
		output  string
		verdict Verdict
	}{
		{"YES", VerdictYes},
		{"NO", VerdictNo},
		// Residual symbols before the stamp still decode by suffix.
		{"abYES", VerdictYes},
		{"aNO", VerdictNo},
		// A run cut short by a gap leaves no canonical suffix.
		{"", VerdictMalformed},
		{"YE", VerdictMalformed},
		{"N", VerdictMalformed},
		{"ab", VerdictMalformed},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.verdict, DecodeVerdict(tc.output), "output %q", tc.output)
	}
}

// Stores and SSE payloads carry StepRecords as JSON; the enum fields must
// survive a round-trip under their readable names, not as raw integers.
func TestStepRecord_JSONRoundTrip(t *testing.T) {
	rec := StepRecord{
		Step:        3,
		StateBefore: StateQ3,
		Head:        2,
		Read:        SymbolB,
		Wrote:       Blank,
		Move:        MoveLeft,
		StateAfter:  StateReject,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"step":3,"state_before":"q3","head":2,"read":"b","wrote":"B","move":"L","state_after":"q_no"}`,
		string(data))

	var got StepRecord
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, rec, got)
}

func TestEnumJSON_RejectsUnknownNames(t *testing.T) {
	var s State
	assert.Error(t, json.Unmarshal([]byte(`"q99"`), &s))

	var sym Symbol
	assert.Error(t, json.Unmarshal([]byte(`"c"`), &sym))

	var m Move
	assert.Error(t, json.Unmarshal([]byte(`"U"`), &m))
}

func TestTypedErrors_UnwrapToSentinels(t *testing.T) {
	invalid := &InvalidInputError{Char: 'c', Position: 2}
	assert.True(t, errors.Is(invalid, ErrInvalidInput))
	assert.Contains(t, invalid.Error(), "position 2")

	gap := &TransitionGapError{State: StateQ1, Symbol: SymbolY}
	assert.True(t, errors.Is(gap, ErrTransitionGap))
	assert.Contains(t, gap.Error(), "q1")
}
