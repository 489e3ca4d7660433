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
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "navsync",
		Short: "Bidirectional browser-history / navigation-state synchronizer",
		Long: `navsync keeps a hierarchical navigation state and the browser's
URL and session-history stack in sync, in both directions.

Commands:

  • demo   – run a scripted in-memory simulation of the sync protocol
  • serve  – run a demo server driving a real browser over WebSocket
  • version – print build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		demoCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("navsync %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
