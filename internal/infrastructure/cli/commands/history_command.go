package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/healthdesk-go/internal/app"
	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/cli/helpers"
	"github.com/doeshing/healthdesk-go/internal/ports"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past assessments",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistorySearchCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
		newHistoryStatsCommand(container),
		newHistoryRetainCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistoryEntries(cmd, container, limit, "")
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max entries to show")
	return cmd
}

func newHistorySearchCommand(container *app.Container) *cobra.Command {
	var query string
	var searchLimit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search assessments for a keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return errors.New(ErrQueryRequired)
			}
			return showHistoryEntries(cmd, container, searchLimit, query)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search keyword")
	cmd.Flags().IntVar(&searchLimit, "limit", DefaultHistorySearchLimit, "Limit search results")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(container)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !yes {
				reader := bufio.NewReader(cmd.InOrStdin())
				if !helpers.PromptForConfirmation(out, reader, fmt.Sprintf("Delete all history in %s?", store.Path())) {
					fmt.Fprintln(out, MsgClearCancelled)
					return nil
				}
			}
			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(out, MsgHistoryCleared)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export history to JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(container)
			if err != nil {
				return err
			}
			if err := store.ExportJSON(args[0]); err != nil {
				return fmt.Errorf("failed to export history to %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported history to %s\n", args[0])
			return nil
		},
	}
}

func newHistoryStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise assessments by kind and outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistoryStats(cmd.OutOrStdout(), helpers.ResolveFormat(cmd, container), container)
		},
	}
}

func newHistoryRetainCommand(container *app.Container) *cobra.Command {
	var retainDays int

	cmd := &cobra.Command{
		Use:   "retain",
		Short: "Prune history older than N days and update retention policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if retainDays <= 0 {
				return errors.New(ErrInvalidRetainDays)
			}
			return updateHistoryRetention(cmd.Context(), cmd.OutOrStdout(), container, retainDays)
		},
	}

	cmd.Flags().IntVar(&retainDays, "days", DefaultHistoryRetainDays, "Days to retain history")
	return cmd
}

func historyStore(container *app.Container) (ports.HistoryRepository, error) {
	if container.HistoryStore == nil {
		return nil, errors.New(ErrHistoryStoreUnavailable)
	}
	return container.HistoryStore, nil
}

func showHistoryEntries(cmd *cobra.Command, container *app.Container, limit int, query string) error {
	store, err := historyStore(container)
	if err != nil {
		return err
	}

	records, err := store.Records(limit, query)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}

	out := cmd.OutOrStdout()
	if helpers.ResolveFormat(cmd, container) == domain.OutputJSON {
		if records == nil {
			records = []domain.AssessmentRecord{}
		}
		return helpers.WriteJSON(out, records)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}
	writeHistoryTable(out, records)
	return nil
}

func writeHistoryTable(out io.Writer, records []domain.AssessmentRecord) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			humanize.Time(rec.Timestamp),
			rec.Kind,
			rec.Level,
			rec.Input,
			rec.Outcome)
	}
	_ = tw.Flush()
}

func showHistoryStats(out io.Writer, format string, container *app.Container) error {
	store, err := historyStore(container)
	if err != nil {
		return err
	}

	records, err := store.Records(MaxHistoryAnalysisRecords, "")
	if err != nil {
		return fmt.Errorf("failed to retrieve history for analysis: %w", err)
	}

	stats := helpers.AnalyzeHistory(records, 5)
	if format == domain.OutputJSON {
		return helpers.WriteJSON(out, stats)
	}
	if stats.Total == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	fmt.Fprintf(out, "Entries analyzed: %s\n", humanize.Comma(int64(stats.Total)))
	if len(records) > 0 {
		fmt.Fprintf(out, "Oldest: %s\n", humanize.Time(records[len(records)-1].Timestamp))
	}
	printStatistics(out, "By kind", stats.ByKind, stats.Total)
	printStatistics(out, "By outcome", stats.ByLevel, stats.Total)
	printStatistics(out, "Most assessed", stats.TopInput, stats.Total)
	return nil
}

func printStatistics(out io.Writer, heading string, stats []helpers.Statistic, total int) {
	fmt.Fprintf(out, "%s:\n", heading)
	for _, stat := range stats {
		fmt.Fprintf(out, "  %s: %d (%.1f%%)\n", stat.Label, stat.Count, helpers.Percentage(stat.Count, total))
	}
}

func updateHistoryRetention(ctx context.Context, out io.Writer, container *app.Container, days int) error {
	store, err := historyStore(container)
	if err != nil {
		return err
	}

	if err := store.PruneOlderThan(days); err != nil {
		return fmt.Errorf("failed to prune old history: %w", err)
	}

	cfg, err := container.Config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.History.RetentionDays = days
	if err := helpers.SaveConfigWithValidation(container, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "Retained last %d days of history.\n", days)
	return nil
}
