package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/palintape/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the palintape engine in server mode, exposing a JSON API over
HTTP with Server-Sent Events for live run progress.

Run records are kept in memory unless a Redis address is configured.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		opts := cli.ServeOptions{Cfg: cfg}
		if cmd.Flags().Changed("port") {
			port, _ := cmd.Flags().GetString("port")
			opts.Addr = ":" + port
		}
		if cmd.Flags().Changed("redis") {
			opts.Cfg.Redis.Addr, _ = cmd.Flags().GetString("redis")
		}

		if err := cli.Serve(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for run storage (host:port)")
}
