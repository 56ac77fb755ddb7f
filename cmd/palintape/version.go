package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/palintape"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of palintape",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("palintape version %s\n", strings.TrimSpace(palintape.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
