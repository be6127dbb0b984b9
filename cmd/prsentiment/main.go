package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacesedan/prsentiment/config"
	"github.com/spacesedan/prsentiment/internal/logging"
)

var settings config.Settings

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "prsentiment",
		Short:         "Sentiment report for non-English pull request review comments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(config.AppEnv())

			s, err := config.LoadSettings()
			if err != nil {
				return err
			}
			settings = s

			// stdout carries the report or JSON, logs go to stderr
			logging.InitLogger(cmd.ErrOrStderr(), settings.LogLevel)
			logging.WithRunID()
			return nil
		},
	}

	cmd.AddCommand(runCmd())
	cmd.AddCommand(textCmd())
	cmd.AddCommand(checkCmd())
	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		logging.NewLogger(os.Stderr, settings.LogLevel).Error("[Main] Command failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
