/*
Package palintape is a deterministic single-tape Turing machine engine that
decides whether a string over the alphabet {a, b} is a palindrome.

The engine owns a fixed transition table, a sparse bidirectionally unbounded
tape, a head position and a step counter. Callers drive it either to
completion (Run) or one transition at a time (Step), reading the current
state, tape window and step count between calls to render progress. The
engine never initiates I/O itself; all display, delay, persistence and
transport live in collaborators that consume the read-only Snapshot and the
structured per-step trace.

# Usage

	eng := palintape.New()
	if err := eng.Initialize("abba"); err != nil {
		log.Fatal(err)
	}
	output, outcome, err := eng.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(output, outcome, domain.DecodeVerdict(output)) // YES halted yes

Single-step driving, for display loops and GUIs:

	eng.Initialize("abab")
	for {
		outcome, _ := eng.Step()
		render(eng.Snapshot(), eng.Window(-2, 10))
		if outcome != domain.OutcomeContinue {
			break
		}
	}

An Engine instance must not be driven by two callers concurrently; embedding
applications serialize calls to Initialize/Step/Run themselves. The
stateless Execute helper runs each call on a fresh machine and is safe for
concurrent use by server adapters.
*/
package palintape
