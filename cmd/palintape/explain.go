package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/palintape"
	"github.com/aretw0/palintape/internal/presentation/tui"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Describe the machine and its transition table",
	Long:  `Prints a rendered description of the palindrome machine: how it decides, its states, and the full transition table.`,
	Run: func(cmd *cobra.Command, args []string) {
		raw, _ := cmd.Flags().GetBool("raw")

		md := machineMarkdown()
		if raw {
			fmt.Print(md)
			return
		}

		render := tui.NewMarkdownRenderer()
		out, err := render(md)
		if err != nil {
			fmt.Print(md)
			return
		}
		fmt.Print(out)
	},
}

func machineMarkdown() string {
	var b strings.Builder

	b.WriteString("# The Palindrome Machine\n\n")
	b.WriteString("A deterministic single-tape Turing machine over the alphabet `{a, b}`.\n")
	b.WriteString("It matches the outermost pair of symbols, erases them, and repeats on\n")
	b.WriteString("the shrinking middle. When the middle empties the input was a palindrome;\n")
	b.WriteString("the first mismatch rejects immediately.\n\n")
	b.WriteString("The machine ends by stamping its verdict on the tape: `YES` or `NO`.\n\n")
	b.WriteString("## Transition table\n\n")
	b.WriteString("| State | Read | Write | Move | Next |\n")
	b.WriteString("|-------|------|-------|------|------|\n")

	eng := palintape.New()
	for _, entry := range eng.Rules() {
		fmt.Fprintf(&b, "| %s | `%c` | `%c` | %s | %s |\n",
			entry.State, entry.Read.Rune(), entry.Rule.Write.Rune(), entry.Rule.Move, entry.Rule.Next)
	}

	b.WriteString("\nBlank cells are shown as `B`. Reads with no row halt the machine;\n")
	b.WriteString("validated input never reaches one.\n")
	return b.String()
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().Bool("raw", false, "Print plain markdown without terminal rendering")
}
