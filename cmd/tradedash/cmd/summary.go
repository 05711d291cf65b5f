package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradedash/config"
	"tradedash/oanda"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the account summary",
	Long: `Fetch and display the current account balance, unrealized P/L, margin
available and the latest transaction id.

Example:
  tradedash summary -c tradedash.yaml`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := oanda.NewClient(cfg.AccessToken, cfg.Practice())
	summary, err := client.AccountSummary(cmd.Context(), cfg.AccountID)
	if err != nil {
		return err
	}

	env := "live"
	if cfg.Practice() {
		env = "practice"
	}

	fmt.Printf("Account %s (%s)\n", summary.AccountID, env)
	fmt.Printf("  Balance:             %12.2f\n", summary.Balance)
	fmt.Printf("  Unrealized P/L:      %12.2f\n", summary.UnrealizedPL)
	fmt.Printf("  Margin available:    %12.2f\n", summary.MarginAvailable)
	fmt.Printf("  Last transaction ID: %12d\n", summary.LastTransactionID)
	return nil
}
