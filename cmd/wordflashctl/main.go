// Package main provides the wordflashctl admin CLI: backup, restore, and
// maintenance of the study ledger without going through the HTTP API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmei/wordflash/internal/config"
	"github.com/lmei/wordflash/internal/ledger"
	"github.com/lmei/wordflash/internal/logger"
	"github.com/lmei/wordflash/internal/seed"
	"github.com/lmei/wordflash/internal/storage"
)

var (
	dbPath    string
	exportOut string
	wipeYes   bool
	statsDays int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordflashctl",
		Short:         "Admin tool for the wordflash study ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: DB_PATH env or wordflash.db)")

	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newWipeCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newRebuildCmd())
	return rootCmd
}

// withLedger opens the store, runs fn, and closes the store.
func withLedger(fn func(ctx context.Context, l *ledger.Ledger) error) error {
	path := dbPath
	if path == "" {
		path = config.Load().DBPath
	}
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("failed to close db: %v", cerr)
		}
	}()
	return fn(context.Background(), ledger.New(store))
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all study data as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(func(ctx context.Context, l *ledger.Ledger) error {
				payload, err := l.Export(ctx)
				if err != nil {
					return err
				}
				raw, err := json.MarshalIndent(payload, "", "  ")
				if err != nil {
					return err
				}
				if exportOut == "" {
					fmt.Fprintln(cmd.OutOrStdout(), string(raw))
					return nil
				}
				if err := os.WriteFile(exportOut, raw, 0o644); err != nil {
					return fmt.Errorf("failed to write backup: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", exportOut)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore study data from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}
			return withLedger(func(ctx context.Context, l *ledger.Ledger) error {
				if err := l.ImportBackup(ctx, raw); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Backup imported")
				return nil
			})
		},
	}
}

func newWipeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete the library, records, and wrong words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !wipeYes {
				return fmt.Errorf("refusing to wipe without --yes")
			}
			return withLedger(func(ctx context.Context, l *ledger.Ledger) error {
				if err := l.Wipe(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "All study data wiped")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&wipeYes, "yes", false, "confirm the wipe")
	return cmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print study statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(func(ctx context.Context, l *ledger.Ledger) error {
				overview, err := l.Overview(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Today: %d words, %d correct (%d%%)\n",
					overview.Today.TotalWords, overview.Today.CorrectWords, overview.Today.CorrectRate)
				fmt.Fprintf(out, "Streak: %d day(s)\n", overview.ContinuousDays)
				fmt.Fprintf(out, "Total study days: %d\n", overview.TotalStudyDays)
				fmt.Fprintf(out, "Wrong words: %d\n", overview.WrongWordCount)

				calendar, err := l.CalendarData(ctx, statsDays)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Last %d days:\n", statsDays)
				for _, day := range calendar {
					fmt.Fprintf(out, "  %s  %3d words  level %d\n", day.Date, day.Count, day.Level)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&statsDays, "days", 28, "calendar window in days")
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default library if the catalog is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(func(ctx context.Context, l *ledger.Ledger) error {
				seeded, err := l.Initialize(ctx, seed.DefaultLibrary())
				if err != nil {
					return err
				}
				if seeded {
					fmt.Fprintln(cmd.ErrOrStderr(), "Default library seeded")
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), "Library not empty, nothing seeded")
				}
				return nil
			})
		},
	}
}

func newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild-wrongwords",
		Short: "Re-derive the wrong-word index from the record log",
		Long: "Re-derives the wrong-word index from the full record log. " +
			"Entries previously removed with \"mark as mastered\" come back, " +
			"since removal keeps no history.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(func(ctx context.Context, l *ledger.Ledger) error {
				count, err := l.RebuildWrongWords(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Rebuilt wrong-word index: %d entries\n", count)
				return nil
			})
		},
	}
}
