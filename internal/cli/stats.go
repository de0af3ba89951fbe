package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/k1ngsterr1/quick-notes/internal/services"
	"github.com/k1ngsterr1/quick-notes/internal/stats"
)

func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show trading statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.Records.List(cmd.Context(), services.RecordFilter{})
			if err != nil {
				return fmt.Errorf("failed to load records: %w", err)
			}
			s := stats.Compute(records)

			w := a.out()
			fmt.Fprintf(w, "Total trades:   %d\n", s.TotalTrades)
			fmt.Fprintf(w, "Win rate:       %.1f%%\n", s.WinRate)
			fmt.Fprintf(w, "Avg profit:     %s\n", colorPnL(fmt.Sprintf("+%.2f%%", s.AvgProfit)))
			fmt.Fprintf(w, "Avg loss:       %s\n", colorPnL(fmt.Sprintf("-%.2f%%", s.AvgLoss)))
			fmt.Fprintf(w, "Profit factor:  %s\n", s.ProfitFactor)
			fmt.Fprintf(w, "Best trade:     %+.2f%%\n", s.BestTrade)
			fmt.Fprintf(w, "Worst trade:    %+.2f%%\n", s.WorstTrade)
			fmt.Fprintf(w, "Long win rate:  %.1f%%\n", s.LongWinRate)
			fmt.Fprintf(w, "Short win rate: %.1f%%\n", s.ShortWinRate)
			return nil
		},
	}
}
