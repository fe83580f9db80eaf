package main

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/spf13/cobra"
)

// validateCmd checks the configuration without contacting any service.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Validate the environment configuration without starting the bot.

Exit codes:
  0 - configuration is valid
  1 - configuration is invalid (details printed to stderr)`,
	SilenceUsage: true,
	RunE:         runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, delay, err := preflight()
	if err != nil {
		return err
	}

	vocabulary := homework.NewVocabulary(cfg.Verdicts)
	journal := "disabled"
	if cfg.DatabaseURL != "" {
		journal = "enabled"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Config is valid!")
	fmt.Fprintf(out, "  Endpoint:       %s\n", cfg.PracticumEndpoint)
	fmt.Fprintf(out, "  Chat ID:        %d\n", cfg.TelegramChatID)
	fmt.Fprintf(out, "  Retry schedule: %s\n", delay)
	fmt.Fprintf(out, "  Log file:       %s\n", cfg.LogFile)
	fmt.Fprintf(out, "  Known statuses: %d\n", len(vocabulary.Statuses()))
	fmt.Fprintf(out, "  Journal:        %s\n", journal)
	return nil
}
