package main

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spacesedan/prsentiment/internal/models"
	"github.com/spacesedan/prsentiment/internal/pipeline"
)

type textOutput struct {
	Skipped      pipeline.SkipReason    `json:"skipped,omitempty"`
	Record       *models.AnalysisRecord `json:"record,omitempty"`
	Polarity     string                 `json:"polarity,omitempty"`
	Subjectivity *float64               `json:"subjectivity,omitempty"`
}

func writeTextResult(w io.Writer, res pipeline.Result) error {
	out := textOutput{Skipped: res.Skip}
	if !res.Skipped() {
		out.Record = &res.Record
		out.Polarity = res.Record.Sentiment.Score.FormatPolarity()
		subjectivity := res.Record.Sentiment.Score.RoundedSubjectivity()
		out.Subjectivity = &subjectivity
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

func textCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "text [comment]",
		Short: "Analyze a single comment and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			comps, err := newComponents(ctx, settings)
			if err != nil {
				return err
			}
			defer comps.close()

			res := comps.pipeline.Process(ctx, strings.Join(args, " "))
			return writeTextResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "upper bound for the analysis")
	return cmd
}
