package palintape

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/palintape/pkg/domain"
)

// FrameRenderer turns one machine snapshot plus a tape window into a frame
// of text. Injecting it keeps the core package free of terminal styling;
// the presentation layer supplies colored variants.
type FrameRenderer func(snap domain.Snapshot, window []domain.Cell) string

// Runner drives the engine step by step, writing one frame per step to the
// provided writer. This is the display loop of the plain CLI mode; a TUI or
// GUI owns its own timer and calls Step directly instead.
type Runner struct {
	Output io.Writer

	// Delay is the pause between frames. Zero renders as fast as possible.
	Delay time.Duration

	// Width is the number of cells to show around the head (default 40).
	Width int

	// Renderer formats each frame. Defaults to RenderPlainFrame.
	Renderer FrameRenderer
}

// NewRunner creates a Runner with defaults. Output must be set by the
// caller (use os.Stdout).
func NewRunner() *Runner {
	return &Runner{
		Width:    40,
		Renderer: RenderPlainFrame,
	}
}

// Run executes input to completion on eng, rendering a frame after
// initialization and after every step. It returns the final result.
func (r *Runner) Run(ctx context.Context, eng *Engine, input string) (domain.RunResult, error) {
	if r.Output == nil {
		return domain.RunResult{}, fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	renderer := r.Renderer
	if renderer == nil {
		renderer = RenderPlainFrame
	}
	width := r.Width
	if width <= 0 {
		width = 40
	}

	if err := eng.Initialize(input); err != nil {
		return domain.RunResult{}, err
	}

	r.frame(eng, renderer, width)

	for {
		if err := ctx.Err(); err != nil {
			return eng.Result(), err
		}

		outcome, err := eng.Step()
		r.frame(eng, renderer, width)

		if outcome == domain.OutcomeContinue {
			if r.Delay > 0 {
				select {
				case <-ctx.Done():
					return eng.Result(), ctx.Err()
				case <-time.After(r.Delay):
				}
			}
			continue
		}
		return eng.Result(), err
	}
}

func (r *Runner) frame(eng *Engine, renderer FrameRenderer, width int) {
	snap := eng.Snapshot()
	min, max := eng.Bounds()

	// Window the head with some context, never clipping the written extent.
	from := snap.Head - width/2
	if min-2 < from {
		from = min - 2
	}
	to := snap.Head + width/2
	if max+2 > to {
		to = max + 2
	}

	fmt.Fprintln(r.Output, renderer(snap, eng.Window(from, to)))
}

// RenderPlainFrame is the default style: one line of machine status, the
// tape cells, and a caret marking the head.
func RenderPlainFrame(snap domain.Snapshot, window []domain.Cell) string {
	var tape, caret strings.Builder
	for _, cell := range window {
		fmt.Fprintf(&tape, " %c ", cell.Sym.Rune())
		if cell.Pos == snap.Head {
			caret.WriteString(" ^ ")
		} else {
			caret.WriteString("   ")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "State: %-10s Step: %d\n", snap.State, snap.Steps)
	rulerWidth := tape.Len()
	b.WriteString(strings.Repeat("-", rulerWidth))
	b.WriteByte('\n')
	b.WriteString(tape.String())
	b.WriteByte('\n')
	b.WriteString(caret.String())
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", rulerWidth))
	return b.String()
}
