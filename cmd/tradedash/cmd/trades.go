package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"tradedash/dashboard"
	"tradedash/stats"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Show performance statistics for closed trades",
	Long: `Fetch the full transaction ledger, derive closed trades and print
performance statistics with P/L breakdowns for the selected period.

Examples:
  tradedash trades
  tradedash trades -p last-month
  tradedash trades --from 2024-01-01 --to 2024-03-31 -i EUR_USD`,
	RunE: runTrades,
}

var (
	tradesPreset      string
	tradesFrom        string
	tradesTo          string
	tradesInstruments []string
	tradesLimit       int
)

func init() {
	rootCmd.AddCommand(tradesCmd)
	addFilterFlags(tradesCmd, &tradesPreset, &tradesFrom, &tradesTo, &tradesInstruments)
	tradesCmd.Flags().IntVarP(&tradesLimit, "limit", "n", 20, "number of recent trades to list (0 = all)")
}

func runTrades(cmd *cobra.Command, args []string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	summary, snap, err := svc.Refresh(cmd.Context(), refreshToken())
	if err != nil {
		return err
	}

	r, err := resolveRange(tradesPreset, tradesFrom, tradesTo, snap)
	if err != nil {
		return err
	}

	view, err := dashboard.BuildView(snap, r, tradesInstruments)
	if errors.Is(err, dashboard.ErrNoTrades) {
		fmt.Printf("No closed trades with realized P/L for %s.\n", r)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Account %s — %s\n\n", summary.AccountID, r)
	printStats(view.Stats)
	printBreakdowns(view)
	printRecent(view, tradesLimit)
	return nil
}

func printStats(s stats.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total P/L:\t%.2f\n", s.TotalPL)
	fmt.Fprintf(w, "Closed trades:\t%d\n", s.TotalTrades)
	fmt.Fprintf(w, "Win rate:\t%.2f%%\t(%d W / %d L)\n", s.WinRate, s.WinCount, s.LossCount)
	fmt.Fprintf(w, "Profit factor:\t%s\n", stats.FormatRatio(s.ProfitFactor))
	fmt.Fprintf(w, "Win/loss ratio:\t%s\n", stats.FormatRatio(s.WinLossRatio))
	fmt.Fprintf(w, "Avg win / avg loss:\t%.2f / %.2f\n", s.AvgWin, s.AvgLoss)
	fmt.Fprintf(w, "Largest win / loss:\t%.2f / %.2f\n", s.LargestWin, s.LargestLoss)
	fmt.Fprintf(w, "Max drawdown:\t%.2f\t(%.1f%%)\n", s.MaxDrawdown, s.MaxDrawdownPct)
	if s.MostTraded != "" {
		fmt.Fprintf(w, "Most traded:\t%s\n", s.MostTraded)
	}
	w.Flush()
}

func printBreakdowns(view dashboard.View) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "\nP/L by instrument")
	for _, s := range view.ByInstrument {
		fmt.Fprintf(w, "  %s\t%.2f\t%d trades\n", s.Instrument, s.PL, s.Count)
	}

	fmt.Fprintln(w, "\nP/L by year")
	for _, p := range view.ByYear {
		fmt.Fprintf(w, "  %s\t%.2f\n", p.Period, p.PL)
	}

	fmt.Fprintln(w, "\nP/L by month")
	for _, p := range view.ByMonth {
		fmt.Fprintf(w, "  %s\t%.2f\n", p.Period, p.PL)
	}

	fmt.Fprintln(w, "\nP/L by weekday")
	for _, d := range view.ByWeekday {
		fmt.Fprintf(w, "  %s\t%.2f\n", d.Day, d.PL)
	}
	w.Flush()
}

func printRecent(view dashboard.View, limit int) {
	rows := view.Trades
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\nRecent trades (%d of %d)\n", len(rows), len(view.Trades))
	fmt.Fprintln(w, "  date\tinstrument\tside\tamount\tP/L\tbalance")
	for _, t := range rows {
		balance := "-"
		if t.Balance != nil {
			balance = fmt.Sprintf("%.2f", *t.Balance)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.0f\t%.2f\t%s\n",
			t.Time.Format(time.RFC3339), t.Instrument, t.Side, t.Amount, t.ProfitLoss, balance)
	}
	w.Flush()
}
