package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "duplexd",
		Short: "Demo server for the duplex state/effect emitter",
		Long: `duplexd runs a small demo application around a duplex emitter:

  • durable counter state, snapshotted on every change
  • one-shot UI effects pushed to browsers over WebSocket
  • Prometheus metrics for both channels`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("duplexd %s (%s)\n", version, commit)
		},
	}
}
