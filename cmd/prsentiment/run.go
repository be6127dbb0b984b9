package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/spacesedan/prsentiment/internal/clients"
	"github.com/spacesedan/prsentiment/internal/models"
	"github.com/spacesedan/prsentiment/internal/pipeline"
	"github.com/spacesedan/prsentiment/internal/report"
)

type commentSource interface {
	ListReviewComments(ctx context.Context, repository string, prNumber int) ([]models.Comment, error)
}

type commentSink interface {
	PostIssueComment(ctx context.Context, repository string, prNumber int, body string) (models.GitHubIssueCommentResponse, error)
}

type commentProcessor interface {
	Run(ctx context.Context, comments []models.Comment) pipeline.Summary
}

type reportBuilder interface {
	Build(records []models.AnalysisRecord) (report.Report, error)
}

type analysis struct {
	source    commentSource
	sink      commentSink
	processor commentProcessor
	builder   reportBuilder
	out       io.Writer
	dryRun    bool
}

// errNothingToReport is returned by run when no comment produced a record.
var errNothingToReport = errors.New("no non-English comments found to analyze")

func (a analysis) run(ctx context.Context, repository string, prNumber int) (report.Report, error) {
	slog.Info("[Main] Processing pull request",
		slog.String("repository", repository),
		slog.Int("pr", prNumber))

	comments, err := a.source.ListReviewComments(ctx, repository, prNumber)
	if err != nil {
		return report.Report{}, fmt.Errorf("fetching comments: %w", err)
	}

	summary := a.processor.Run(ctx, comments)

	rep, err := a.builder.Build(summary.Records)
	if err != nil {
		return report.Report{}, fmt.Errorf("building report: %w", err)
	}
	if rep.Empty() {
		return rep, errNothingToReport
	}

	if a.dryRun {
		return rep, rep.WriteMarkdown(a.out)
	}

	if _, err := a.sink.PostIssueComment(ctx, repository, prNumber, rep.Markdown()); err != nil {
		return rep, fmt.Errorf("posting report: %w", err)
	}
	return rep, nil
}

func runCmd() *cobra.Command {
	var (
		repository string
		prNumber   int
		eventPath  string
		dryRun     bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Analyze a pull request's review comments and post the report",
		Long: `Fetches the review comments of a pull request, analyzes the ones written in a
supported language and posts a sentiment table as a PR comment.

Inside GitHub Actions the repository and PR number come from GITHUB_REPOSITORY
and GITHUB_EVENT_PATH.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if repository == "" {
				repository = settings.GitHubRepository
			}
			if eventPath == "" {
				eventPath = settings.GitHubEventPath
			}
			if repository == "" {
				return errors.New("repository is required (--repo or GITHUB_REPOSITORY)")
			}
			if prNumber == 0 {
				if eventPath == "" {
					return errors.New("PR number is required (--pr or GITHUB_EVENT_PATH)")
				}
				n, err := clients.ReadPullRequestNumber(eventPath)
				if err != nil {
					return err
				}
				prNumber = n
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			gh, err := clients.NewGitHubClient(ctx, settings.GitHubToken, settings.GitHubAPIURL)
			if err != nil {
				return err
			}

			comps, err := newComponents(ctx, settings)
			if err != nil {
				return err
			}
			defer comps.close()

			a := analysis{
				source:    gh,
				sink:      gh,
				processor: comps.pipeline,
				builder:   comps.builder,
				out:       cmd.OutOrStdout(),
				dryRun:    dryRun,
			}

			_, err = a.run(ctx, repository, prNumber)
			if errors.Is(err, errNothingToReport) {
				slog.Info("[Main] No non-English comments found to analyze")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&repository, "repo", "", "repository as owner/name")
	cmd.Flags().IntVar(&prNumber, "pr", 0, "pull request number")
	cmd.Flags().StringVar(&eventPath, "event-path", "", "GitHub Actions event file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the report instead of posting it")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "upper bound for the whole run")

	return cmd
}
