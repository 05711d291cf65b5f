package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tradedash/config"
	"tradedash/dashboard"
	"tradedash/logger"
	"tradedash/oanda"
	"tradedash/trace"
)

var rootCmd = &cobra.Command{
	Use:   "tradedash",
	Short: "Trading performance dashboard for OANDA accounts",
	Long: `Tradedash pulls your full OANDA transaction ledger, derives closed-trade
records and computes performance statistics.

It provides tools for:
  - Account summary (balance, unrealized P/L, margin)
  - Win rate, profit factor and max drawdown over any date range
  - P/L breakdowns by instrument, year, month and weekday
  - CSV export of the filtered trade table
  - PNG charts of cumulative P/L and the balance trend`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init()
		return trace.Init()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return trace.Shutdown(ctx)
	},
}

var cfgPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "tradedash.yaml", "path to credentials file")
}

// newService loads the credentials and builds the pipeline service.
// Config problems surface here, before any fetch is attempted.
func newService() (*dashboard.Service, *config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	client := oanda.NewClient(cfg.AccessToken, cfg.Practice())
	return dashboard.New(client, cfg.AccountID, nil), cfg, nil
}

// refreshToken returns a per-invocation cache token. Each CLI run
// starts cold, so any time-based value works.
func refreshToken() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
