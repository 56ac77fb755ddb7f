// Package cli contains the command logic behind cmd/palintape, keeping the
// cobra layer thin.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/palintape"
	"github.com/aretw0/palintape/internal/logging"
	"github.com/aretw0/palintape/internal/presentation/tui"
	"github.com/aretw0/palintape/pkg/domain"
)

// RunOptions contains all the configuration for the 'run' command.
type RunOptions struct {
	Input     string
	TUI       bool
	Verbose   bool
	Style     string
	Delay     time.Duration
	Width     int
	TracePath string
	JSON      bool
	Debug     bool
}

// Execute handles the 'run' command logic, dispatching to batch, verbose
// or TUI mode.
func Execute(opts RunOptions) error {
	if opts.TUI && opts.JSON {
		return fmt.Errorf("--tui and --json cannot be used together")
	}

	level := logging.ParseLevel("info")
	if opts.Debug {
		level = logging.ParseLevel("debug")
	}
	logger := logging.New(level)

	engineOpts := []palintape.Option{palintape.WithLogger(logger)}
	if opts.TracePath != "" || opts.JSON {
		engineOpts = append(engineOpts, palintape.WithTrace())
	}
	eng := palintape.New(engineOpts...)

	if opts.TUI {
		return runTUI(eng, opts)
	}
	return runBatch(eng, opts)
}

func runTUI(eng *palintape.Engine, opts RunOptions) error {
	model, err := tui.NewModel(eng, opts.Input, tui.ParseStyle(opts.Style), opts.Delay, opts.Width)
	if err != nil {
		return describeInputError(err)
	}
	if err := model.Run(); err != nil {
		return err
	}
	return dumpTrace(eng, opts.TracePath)
}

func runBatch(eng *palintape.Engine, opts RunOptions) error {
	ctx := context.Background()

	var result domain.RunResult
	if opts.Verbose {
		tui.PrintBanner(palintape.Version)

		runner := palintape.NewRunner()
		runner.Output = os.Stdout
		runner.Delay = opts.Delay
		runner.Width = opts.Width
		runner.Renderer = tui.Renderer(tui.ParseStyle(opts.Style))

		var err error
		result, err = runner.Run(ctx, eng, opts.Input)
		if err != nil {
			return describeInputError(err)
		}
	} else {
		if err := eng.Initialize(opts.Input); err != nil {
			return describeInputError(err)
		}
		if _, _, err := eng.Run(ctx); err != nil {
			return err
		}
		result = eng.Result()
	}

	if err := dumpTrace(eng, opts.TracePath); err != nil {
		return err
	}

	if opts.JSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			domain.RunResult
			Trace []domain.StepRecord `json:"trace"`
		}{result, eng.Trace()})
	}

	printVerdict(result)
	return nil
}

func printVerdict(result domain.RunResult) {
	switch result.Verdict {
	case domain.VerdictYes:
		fmt.Printf("%q is a palindrome (%s in %d steps)\n", result.Input, result.Output, result.Steps)
	case domain.VerdictNo:
		fmt.Printf("%q is not a palindrome (%s in %d steps)\n", result.Input, result.Output, result.Steps)
	default:
		fmt.Printf("run ended without a verdict: output %q after %d steps\n", result.Output, result.Steps)
	}
}

// describeInputError keeps the rejection message friendly before any
// simulation output appears.
func describeInputError(err error) error {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		return fmt.Errorf("rejected: %w", invalid)
	}
	return err
}

// dumpTrace writes one JSON line per executed step, the structured trace
// a log collaborator consumes. Persistence format is ours, not the core's.
func dumpTrace(eng *palintape.Engine, path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, rec := range eng.Trace() {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
	}
	return nil
}
