// Command tracker runs the tracker API and its maintenance tasks.
package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/tracker/internal/tracker/app"

	"github.com/spf13/cobra"
)

var cfg app.Config

var rootCmd = &cobra.Command{
	Use:           "tracker",
	Short:         "Team task and KPI tracker",
	Long:          `Tracker serves the dashboard API: domain-gated registration, admin approval, emailed two-factor codes, tasks, KPIs and the audit log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = app.LoadConfig()
	},
	// Bare `tracker` serves, matching the container entrypoint.
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, orphansCmd, sweepCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tracker:", err)
		os.Exit(1)
	}
}
