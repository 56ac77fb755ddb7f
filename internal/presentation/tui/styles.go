package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/palintape"
	"github.com/aretw0/palintape/pkg/domain"
	"github.com/charmbracelet/lipgloss"
)

// Style names one of the built-in tape renderers. The display collaborator
// is a single rendering interface with a style-selection parameter; every
// variant consumes the same read-only snapshot.
type Style string

const (
	StylePlain Style = "plain"
	StyleBoxed Style = "boxed"
	StyleNeon  Style = "neon"
)

// ParseStyle maps a config string to a Style, defaulting to plain.
func ParseStyle(s string) Style {
	switch Style(strings.ToLower(s)) {
	case StyleBoxed:
		return StyleBoxed
	case StyleNeon:
		return StyleNeon
	default:
		return StylePlain
	}
}

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	headCellStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, 1).
			Bold(true)

	neonCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5eead4")).
			Padding(0, 1)

	neonHeadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0f172a")).
			Background(lipgloss.Color("#f472b6")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#38bdf8")).
			Bold(true)
)

// Renderer returns the frame renderer for a style.
func Renderer(style Style) palintape.FrameRenderer {
	switch style {
	case StyleBoxed:
		return renderBoxedFrame
	case StyleNeon:
		return renderNeonFrame
	default:
		return palintape.RenderPlainFrame
	}
}

func statusLine(snap domain.Snapshot) string {
	line := fmt.Sprintf("State: %s   Step: %d   Head: %d",
		stateStyle.Render(snap.State.String()), snap.Steps, snap.Head)
	if snap.Next != nil {
		line += statusStyle.Render(fmt.Sprintf("   next: write %s, move %s, enter %s",
			snap.Next.Write, snap.Next.Move, snap.Next.Next))
	}
	return line
}

func renderBoxedFrame(snap domain.Snapshot, window []domain.Cell) string {
	cells := make([]string, 0, len(window))
	for _, cell := range window {
		style := cellStyle
		if cell.Pos == snap.Head {
			style = headCellStyle
		}
		cells = append(cells, style.Render(string(cell.Sym.Rune())))
	}
	return statusLine(snap) + "\n" + lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func renderNeonFrame(snap domain.Snapshot, window []domain.Cell) string {
	var tape strings.Builder
	for _, cell := range window {
		sym := string(cell.Sym.Rune())
		if cell.Sym == domain.Blank {
			sym = "·"
		}
		if cell.Pos == snap.Head {
			tape.WriteString(neonHeadStyle.Render(sym))
		} else {
			tape.WriteString(neonCellStyle.Render(sym))
		}
	}
	return statusLine(snap) + "\n" + tape.String()
}
