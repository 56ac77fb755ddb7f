package domain

import "strings"

// StepOutcome is the discriminant returned by every step of the machine.
type StepOutcome string

const (
	// OutcomeContinue means the machine transitioned and can step again.
	OutcomeContinue StepOutcome = "continue"
	// OutcomeHalted means the terminal state has been reached. Stepping a
	// halted machine keeps returning OutcomeHalted without mutating anything.
	OutcomeHalted StepOutcome = "halted"
	// OutcomeError means no rule existed for the current (state, symbol)
	// pair. The machine halts deterministically and reports the gap.
	OutcomeError StepOutcome = "error"
)

// Verdict is the decoded accept/reject outcome of a completed run.
type Verdict string

const (
	VerdictYes Verdict = "yes"
	VerdictNo  Verdict = "no"
	// VerdictMalformed means the final tape carries neither canonical
	// suffix, e.g. because a run was cut short by a transition gap.
	VerdictMalformed Verdict = "malformed"
)

// DecodeVerdict derives the verdict from the final decoded tape string.
// On correct termination the residual tape is empty, so the string is
// exactly "YES" or "NO"; suffix inspection keeps the mapping total.
func DecodeVerdict(output string) Verdict {
	switch {
	case strings.HasSuffix(output, "YES"):
		return VerdictYes
	case strings.HasSuffix(output, "NO"):
		return VerdictNo
	default:
		return VerdictMalformed
	}
}
