package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/termdrop/internal/app"
	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/infrastructure/cli/helpers"
	"github.com/doeshing/termdrop/internal/infrastructure/history"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect launch history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryLaunchesCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
		newHistoryStatsCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRecentDirectories(cmd.Context(), cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max directories to show (default: history.max_entries)")
	return cmd
}

// newHistoryLaunchesCommand creates the 'history launches' subcommand
func newHistoryLaunchesCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "launches",
		Short: "List recent launch attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listLaunches(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max entries to show")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all launch history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := clearHistory(container); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgHistoryCleared)
			return nil
		},
	}
}

// newHistoryExportCommand creates the 'history export' subcommand
func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export history to JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportHistory(container, args[0])
		},
	}
}

// newHistoryStatsCommand creates the 'history stats' subcommand
func newHistoryStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show success rate and most used terminals and directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistoryStats(cmd.OutOrStdout(), container)
		},
	}
}

// listRecentDirectories prints the recent-directory list
func listRecentDirectories(ctx context.Context, out io.Writer, container *app.Container, limit int) error {
	store := container.HistoryStore
	if store == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}
	if limit <= 0 {
		cfg, err := container.ConfigProvider.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		limit = cfg.HistoryLimit()
	}

	entries, err := store.RecentDirectories(limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve recent directories: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(out, "%s | %3d | %s | %s\n",
			entry.LastUsed.Local().Format(TimestampFormat),
			entry.UsageCount,
			entry.Path,
			helpers.SecondaryStyle.Render(entry.LastCommand))
	}
	return nil
}

// listLaunches prints individual launch records
func listLaunches(out io.Writer, container *app.Container, limit int) error {
	store := container.HistoryStore
	if store == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	records, err := store.Records(limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	for _, rec := range records {
		outcome := helpers.OKStyle.Render(rec.Outcome)
		if rec.Outcome != domain.OutcomeSuccess {
			outcome = helpers.ErrorStyle.Render(rec.Outcome)
		}
		fmt.Fprintf(out, "%s | %s | %s | %s | %s\n",
			rec.Timestamp.Local().Format(TimestampFormat),
			outcome,
			rec.Terminal,
			rec.Directory,
			rec.Command)
		if rec.Detail != "" {
			fmt.Fprintf(out, "    %s\n", helpers.SecondaryStyle.Render(rec.Detail))
		}
	}
	return nil
}

// clearHistory clears the history store
func clearHistory(container *app.Container) error {
	if container.HistoryStore == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	if err := container.HistoryStore.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	return nil
}

// exportHistory exports history to a JSONL file
func exportHistory(container *app.Container, path string) error {
	if container.HistoryStore == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	if err := history.Export(container.HistoryStore, path); err != nil {
		return fmt.Errorf("failed to export history to %s: %w", path, err)
	}

	return nil
}

// historyStatistics holds analyzed history statistics
type historyStatistics struct {
	total         int
	successful    int
	terminalFreq  map[string]int
	directoryFreq map[string]int
}

// showHistoryStats displays success rate and top terminals/directories
func showHistoryStats(out io.Writer, container *app.Container) error {
	store := container.HistoryStore
	if store == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	records, err := store.Records(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve history for analysis: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	displayHistoryStatistics(out, analyzeHistoryRecords(records))
	return nil
}

// analyzeHistoryRecords analyzes history records and computes statistics
func analyzeHistoryRecords(records []domain.LaunchRecord) historyStatistics {
	stats := historyStatistics{
		terminalFreq:  make(map[string]int),
		directoryFreq: make(map[string]int),
	}

	for _, rec := range records {
		stats.total++
		if rec.Outcome == domain.OutcomeSuccess {
			stats.successful++
			stats.terminalFreq[rec.Terminal]++
			stats.directoryFreq[rec.Directory]++
		}
	}

	return stats
}

// displayHistoryStatistics displays formatted history statistics
func displayHistoryStatistics(out io.Writer, stats historyStatistics) {
	fmt.Fprintf(out, "Launches: %d\nSuccess rate: %.1f%%\n",
		stats.total,
		helpers.CalculateSuccessRate(stats.successful, stats.total))

	fmt.Fprintln(out, "Top terminals:")
	for _, stat := range helpers.CalculateTopUsage(stats.terminalFreq, TopUsageLimit) {
		fmt.Fprintf(out, "  %s (%d)\n", stat.Name, stat.Count)
	}

	fmt.Fprintln(out, "Top directories:")
	for _, stat := range helpers.CalculateTopUsage(stats.directoryFreq, TopUsageLimit) {
		fmt.Fprintf(out, "  %s (%d)\n", stat.Name, stat.Count)
	}
}
