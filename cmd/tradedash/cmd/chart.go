package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tradedash/chart"
	"tradedash/dashboard"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render cumulative P/L and balance charts as PNG",
	Long: `Render the cumulative P/L curve and the account balance trend for the
selected period to PNG files.

Example:
  tradedash chart -p this-month -d ./charts`,
	RunE: runChart,
}

var (
	chartPreset      string
	chartFrom        string
	chartTo          string
	chartInstruments []string
	chartDir         string
)

func init() {
	rootCmd.AddCommand(chartCmd)
	addFilterFlags(chartCmd, &chartPreset, &chartFrom, &chartTo, &chartInstruments)
	chartCmd.Flags().StringVarP(&chartDir, "dir", "d", ".", "output directory for PNG files")
}

func runChart(cmd *cobra.Command, args []string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	_, snap, err := svc.Refresh(cmd.Context(), refreshToken())
	if err != nil {
		return err
	}

	r, err := resolveRange(chartPreset, chartFrom, chartTo, snap)
	if err != nil {
		return err
	}

	view, err := dashboard.BuildView(snap, r, chartInstruments)
	if errors.Is(err, dashboard.ErrNoTrades) {
		fmt.Printf("No closed trades with realized P/L for %s; nothing to chart.\n", r)
		return nil
	}
	if err != nil {
		return err
	}

	plPath := filepath.Join(chartDir, "cumulative_pl.png")
	if err := chart.CumulativePL(plPath, view.Chronological); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", plPath)

	balancePath := filepath.Join(chartDir, "balance.png")
	if err := chart.BalanceTrend(balancePath, view.Chronological); err != nil {
		// Balance data is optional in the ledger; the P/L chart alone
		// is still a useful result.
		fmt.Printf("Skipped balance chart: %v\n", err)
		return nil
	}
	fmt.Printf("Wrote %s\n", balancePath)
	return nil
}
