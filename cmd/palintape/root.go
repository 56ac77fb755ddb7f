package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "palintape",
	Short: "Palintape is a Turing machine that decides palindromes",
	Long: `Palintape simulates a single-tape Turing machine deciding whether a
string over the alphabet {a, b} is a palindrome, with step-by-step
tape animation, an HTTP API and an MCP server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "palintape.yaml", "Path to the configuration file")
}
