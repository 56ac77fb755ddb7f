package tui

import (
	"fmt"
	"time"

	"github.com/aretw0/palintape"
	"github.com/aretw0/palintape/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tickMsg drives the animation: one machine step per tick.
type tickMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a78bfa")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748b"))

	verdictYesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d399")).
			Bold(true)

	verdictNoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171")).
			Bold(true)
)

// Model is the bubbletea model animating one machine run. The model owns
// the timing loop and calls Step once per tick; the engine performs no
// scheduling of its own.
type Model struct {
	eng   *palintape.Engine
	input string

	style Style
	delay time.Duration
	width int

	paused  bool
	done    bool
	stepErr error
	result  *domain.RunResult
}

// NewModel initializes the engine with input and returns the model ready
// to run. Invalid input surfaces here, before any frame is drawn.
func NewModel(eng *palintape.Engine, input string, style Style, delay time.Duration, width int) (Model, error) {
	if err := eng.Initialize(input); err != nil {
		return Model{}, err
	}
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	if width <= 0 {
		width = 40
	}
	return Model{
		eng:   eng,
		input: input,
		style: style,
		delay: delay,
		width: width,
	}, nil
}

// Run drives the model to completion in the terminal.
func (m Model) Run() error {
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused && !m.done {
				return m, m.tick()
			}
			return m, nil
		case "n":
			// Manual single step while paused.
			if m.paused && !m.done {
				m = m.step()
			}
			return m, nil
		case "+":
			if m.delay > 10*time.Millisecond {
				m.delay /= 2
			}
			return m, nil
		case "-":
			if m.delay < 2*time.Second {
				m.delay *= 2
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		// Three columns per cell in the plain renderer.
		if cells := msg.Width/3 - 4; cells > 10 {
			m.width = cells
		}
		return m, nil

	case tickMsg:
		if m.paused || m.done {
			return m, nil
		}
		m = m.step()
		if m.done {
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) step() Model {
	outcome, err := m.eng.Step()
	if outcome != domain.OutcomeContinue {
		m.done = true
		m.stepErr = err
		res := m.eng.Result()
		m.result = &res
	}
	return m
}

func (m Model) View() string {
	snap := m.eng.Snapshot()
	min, max := m.eng.Bounds()

	from := snap.Head - m.width/2
	if min-2 < from {
		from = min - 2
	}
	to := snap.Head + m.width/2
	if max+2 > to {
		to = max + 2
	}

	frame := Renderer(m.style)(snap, m.eng.Window(from, to))

	header := titleStyle.Render(fmt.Sprintf("palintape · %q", m.input))
	footer := helpStyle.Render("space pause · n step · +/- speed · q quit")

	if m.done {
		switch {
		case m.stepErr != nil:
			footer = verdictNoStyle.Render(fmt.Sprintf("machine error: %v", m.stepErr))
		case m.result != nil && m.result.Verdict == domain.VerdictYes:
			footer = verdictYesStyle.Render(fmt.Sprintf("PALINDROME · %q → %s in %d steps", m.input, m.result.Output, m.result.Steps))
		case m.result != nil:
			footer = verdictNoStyle.Render(fmt.Sprintf("NOT A PALINDROME · %q → %s in %d steps", m.input, m.result.Output, m.result.Steps))
		}
		footer += helpStyle.Render("  (q to quit)")
	} else if m.paused {
		footer = helpStyle.Render("paused · n to step · space to resume · q to quit")
	}

	return "\n" + header + "\n\n" + frame + "\n\n" + footer + "\n"
}
