package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aussiebroadwan/tracker/internal/tracker/app"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Migrate(cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

var orphansDryRun bool

var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "Find and delete profiles whose account no longer exists",
	Long: `Scans for profiles with no matching account. With --dry-run the orphans are
only listed; otherwise each one is cascaded like a deleted user.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		report, err := application.ScanOrphans(cmd.Context(), orphansDryRun)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), report)
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete expired two-factor codes, verification links, challenges and refresh tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		return printJSON(cmd.OutOrStdout(), application.Sweep(cmd.Context()))
	},
}

func init() {
	orphansCmd.Flags().BoolVar(&orphansDryRun, "dry-run", false, "report orphans without deleting anything")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
