package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tradedash/dashboard"
	"tradedash/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered trade table as CSV",
	Long: `Write the closed trades for the selected period to a CSV file, one row
per trade, newest first.

Example:
  tradedash export -p ytd -o trades_ytd.csv`,
	RunE: runExport,
}

var (
	exportPreset      string
	exportFrom        string
	exportTo          string
	exportInstruments []string
	exportOutput      string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	addFilterFlags(exportCmd, &exportPreset, &exportFrom, &exportTo, &exportInstruments)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "trades.csv", "output CSV path")
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	_, snap, err := svc.Refresh(cmd.Context(), refreshToken())
	if err != nil {
		return err
	}

	r, err := resolveRange(exportPreset, exportFrom, exportTo, snap)
	if err != nil {
		return err
	}

	view, err := dashboard.BuildView(snap, r, exportInstruments)
	if errors.Is(err, dashboard.ErrNoTrades) {
		fmt.Printf("No closed trades with realized P/L for %s; nothing to export.\n", r)
		return nil
	}
	if err != nil {
		return err
	}

	if err := export.WriteFile(exportOutput, view.Trades); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	fmt.Printf("Wrote %d trades to %s\n", len(view.Trades), exportOutput)
	return nil
}
