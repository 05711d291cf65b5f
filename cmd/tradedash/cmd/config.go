package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradedash/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate credentials files",
	Long: `Manage the OANDA credentials file.

Subcommands:
  init     - Generate a credentials file skeleton
  validate - Validate an existing credentials file

Examples:
  tradedash config init -o tradedash.yaml
  tradedash config validate -f tradedash.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a credentials file skeleton",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a credentials file",
	RunE:  runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "tradedash.yaml", "output credentials file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to credentials file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created credentials file: %s\n", configInitOutput)
	fmt.Println("\nFill in account_id and access_token, then run:")
	fmt.Printf("  tradedash summary -c %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	env := "live"
	if cfg.Practice() {
		env = "practice"
	}
	fmt.Printf("✓ Valid credentials for account %s (%s)\n", cfg.AccountID, env)
	return nil
}
