package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/palintape/internal/cli"
	"github.com/aretw0/palintape/internal/config"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run INPUT",
	Short: "Decide whether INPUT is a palindrome",
	Long: `Runs the machine on INPUT (a string over 'a' and 'b'; the empty
string counts as a palindrome) and prints the verdict.

Use --verbose to animate the tape frame by frame, or --tui for the
interactive viewer with pause and single-stepping.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		input := ""
		if len(args) > 0 {
			input = args[0]
		}

		opts := cli.RunOptions{
			Input: input,
			Delay: time.Duration(cfg.Display.DelayMS) * time.Millisecond,
			Width: cfg.Display.Width,
			Style: cfg.Display.Style,
		}
		opts.TUI, _ = cmd.Flags().GetBool("tui")
		opts.Verbose, _ = cmd.Flags().GetBool("verbose")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.TracePath, _ = cmd.Flags().GetString("trace")

		if cmd.Flags().Changed("style") {
			opts.Style, _ = cmd.Flags().GetString("style")
		}
		if cmd.Flags().Changed("delay") {
			ms, _ := cmd.Flags().GetInt("delay")
			opts.Delay = time.Duration(ms) * time.Millisecond
		}
		if cmd.Flags().Changed("width") {
			opts.Width, _ = cmd.Flags().GetInt("width")
		} else if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w/3 < opts.Width {
			// Each cell renders three characters wide; fit the terminal.
			opts.Width = w / 3
		}

		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func loadConfig(cmd *cobra.Command) config.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("tui", false, "Run in the interactive terminal viewer")
	runCmd.Flags().BoolP("verbose", "v", false, "Animate the tape frame by frame")
	runCmd.Flags().Bool("json", false, "Print the result and trace as JSON")
	runCmd.Flags().Bool("debug", false, "Enable debug logging")
	runCmd.Flags().String("trace", "", "Write the step trace to FILE as JSON lines")
	runCmd.Flags().String("style", "plain", "Tape style: 'plain', 'boxed' or 'neon'")
	runCmd.Flags().Int("delay", 100, "Milliseconds between animated frames")
	runCmd.Flags().Int("width", 40, "Tape cells to show around the head")
}
