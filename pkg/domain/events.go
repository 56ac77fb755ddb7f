package domain

// LifecycleHooks defines callbacks for engine observability. Hooks run
// synchronously on the stepping goroutine; keep them cheap or hand off.
type LifecycleHooks struct {
	// OnStep fires after every executed step with its trace record.
	OnStep func(StepRecord)

	// OnHalt fires once when a run terminates (halt or transition gap).
	OnHalt func(RunResult)
}
