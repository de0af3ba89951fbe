package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/services"
)

func (a *App) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, _ := cmd.Flags().GetString("tab")
			query, _ := cmd.Flags().GetString("query")

			if !models.Tab(tab).Valid() {
				return fmt.Errorf("invalid tab: %s\nValid tabs: all, trades, formulas, notes", tab)
			}

			records, err := a.Records.List(cmd.Context(), services.RecordFilter{Tab: models.Tab(tab), Query: query})
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}
			a.printRecords(records)
			return nil
		},
	}
	cmd.Flags().String("tab", string(models.TabAll), "Tab filter (all, trades, formulas, notes)")
	cmd.Flags().StringP("query", "q", "", "Search title and content")
	return cmd
}

func (a *App) recentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the newest records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("number")

			records, err := a.Records.Recent(cmd.Context(), n)
			if err != nil {
				return fmt.Errorf("failed to load recent records: %w", err)
			}
			a.printRecords(records)
			return nil
		},
	}
	cmd.Flags().IntP("number", "n", 3, "Number of records")
	return cmd
}

func (a *App) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a note, formula or trade",
		Long: `Add a record. Trades (--kind long|short) take a PnL and optional
entry/target/stop prices; an R:R line is added when all three are given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			content, _ := cmd.Flags().GetString("content")
			pnl, _ := cmd.Flags().GetString("pnl")
			entry, _ := cmd.Flags().GetString("entry")
			target, _ := cmd.Flags().GetString("target")
			stop, _ := cmd.Flags().GetString("stop")

			record, err := a.Records.Create(cmd.Context(), services.NewRecordFields{
				Title:   strings.Join(args, " "),
				Content: content,
				Kind:    models.Kind(kind),
				PnL:     pnl,
				Entry:   entry,
				Target:  target,
				Stop:    stop,
			})
			if err != nil {
				return fmt.Errorf("failed to create record: %w", err)
			}

			w := a.out()
			fmt.Fprintf(w, "✓ Created record %s: %s\n", record.ID, record.Title)
			fmt.Fprintf(w, "  Kind: %s\n", colorKind(record.Kind))
			if record.PnL != "" {
				fmt.Fprintf(w, "  PnL: %s\n", colorPnL(record.PnL))
			}
			if record.Content != "" {
				fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(record.Content, "\n", "\n  "))
			}
			return nil
		},
	}
	cmd.Flags().StringP("kind", "k", string(models.KindNote), "Record kind (long, short, formula, note)")
	cmd.Flags().StringP("content", "c", "", "Notes or formula text")
	cmd.Flags().String("pnl", "", "Profit/loss percentage, e.g. 2.5")
	cmd.Flags().String("entry", "", "Entry price")
	cmd.Flags().String("target", "", "Take-profit price")
	cmd.Flags().String("stop", "", "Stop-loss price")
	return cmd
}

func (a *App) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !models.ValidRecordID(id) {
				return fmt.Errorf("invalid record id: %s", id)
			}

			deleted, err := a.Records.Delete(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to delete record %s: %w", id, err)
			}
			if !deleted {
				fmt.Fprintf(a.out(), "No record %s, nothing deleted\n", id)
				return nil
			}
			fmt.Fprintf(a.out(), "✓ Deleted record %s\n", id)
			return nil
		},
	}
}

func (a *App) printRecords(records []models.Record) {
	if len(records) == 0 {
		fmt.Fprintln(a.out(), "No records found")
		return
	}

	w := tabwriter.NewWriter(a.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tKIND\tPNL\tAGE")
	fmt.Fprintln(w, "--\t-----\t----\t---\t---")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, colorKind(r.Kind), colorPnL(r.PnL), r.AgeLabel)
	}
	w.Flush()
}
