package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the palintape ASCII art banner with the version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient from teal to violet.
	lines := []struct {
		text  string
		color string
	}{
		{`                _ _       _                    `, "#2dd4bf"},
		{`  _ __  __ _ | (_)_ _ | |_ __ _ _ __  ___  `, "#38bdf8"},
		{` | '_ \/ _' || | | ' \|  _/ _' | '_ \/ -_) `, "#818cf8"},
		{` | .__/\__,_||_|_|_||_|\__\__,_| .__/\___| `, "#a78bfa"},
		{` |_|                           |_|         `, "#c084fc"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Printf("  palindrome turing machine · v%s\n\n", strings.TrimSpace(version))
}
