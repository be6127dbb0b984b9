package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacesedan/prsentiment/config"
	"github.com/spacesedan/prsentiment/internal/clients"
	"github.com/spacesedan/prsentiment/internal/monitoring"
	"github.com/spacesedan/prsentiment/internal/translation"
)

const checkSampleText = "Hola"

var errUnhealthy = errors.New("one or more dependencies are unhealthy")

func buildProbes(s config.Settings) []monitoring.Probe {
	probes := []monitoring.Probe{
		{Name: "github", Check: func(ctx context.Context) error {
			gh, err := clients.NewGitHubClient(ctx, s.GitHubToken, s.GitHubAPIURL)
			if err != nil {
				return err
			}
			return gh.Ping(ctx)
		}},
		{Name: "translator:" + s.Translator, Check: func(ctx context.Context) error {
			backend, err := newTranslationBackend(ctx, s)
			if err != nil {
				return err
			}
			out, err := backend.Translate(ctx, checkSampleText, "es", s.TargetLanguage)
			if err != nil {
				return err
			}
			if out == "" {
				return translation.ErrEmptyTranslation
			}
			return nil
		}},
	}

	if s.ValkeyAddress != "" {
		probes = append(probes, monitoring.Probe{Name: "valkey", Check: func(ctx context.Context) error {
			store, err := translation.NewValkeyStore(ctx, s.ValkeyAddress, s.ValkeyPassword, s.ValkeyTLS)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Ping(ctx)
		}})
	}
	return probes
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that GitHub, the translator and the cache are reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := monitoring.RunProbes(cmd.Context(), buildProbes(settings))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				return fmt.Errorf("writing results: %w", err)
			}

			if !monitoring.Healthy(results) {
				return errUnhealthy
			}
			return nil
		},
	}
}
