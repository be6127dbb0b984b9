package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spacesedan/prsentiment/internal/models"
)

const (
	DefaultTruncateLength = 50

	heading   = "## Sentiment Analysis Report"
	ellipsis  = "..."
	header    = "| Original | Language | Sentiment | Polarity |"
	separator = "|----------|----------|-----------|----------|"
)

var ErrUnmappedLanguage = errors.New("no display name for language")

// Row is one rendered table line. It holds display strings only.
type Row struct {
	Original  string
	Language  string
	Sentiment string
	Polarity  string
}

type Report struct {
	Rows     []Row
	FellBack int
}

// Empty reports nothing to send.
func (r Report) Empty() bool {
	return len(r.Rows) == 0
}

// Builder turns analysis records into a Report.
type Builder struct {
	names    map[models.LanguageCode]string
	truncate int
}

// NewBuilder fails when a supported language has no display name, so a
// misconfigured allow-list is caught before any comment is processed.
func NewBuilder(names map[models.LanguageCode]string, supported models.LanguageSet, truncate int) (*Builder, error) {
	if truncate <= 0 {
		return nil, fmt.Errorf("truncate length must be positive, got %d", truncate)
	}
	var missing []string
	for _, code := range supported.Codes() {
		if strings.TrimSpace(names[code]) == "" {
			missing = append(missing, string(code))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnmappedLanguage, strings.Join(missing, ", "))
	}

	copied := make(map[models.LanguageCode]string, len(names))
	for k, v := range names {
		copied[k] = v
	}
	return &Builder{names: copied, truncate: truncate}, nil
}

func (b *Builder) Build(records []models.AnalysisRecord) (Report, error) {
	var report Report
	for _, record := range records {
		name, ok := b.names[record.DetectedLanguage]
		if !ok || name == "" {
			return Report{}, fmt.Errorf("%w: %q", ErrUnmappedLanguage, record.DetectedLanguage)
		}

		report.Rows = append(report.Rows, Row{
			Original:  b.originalCell(record.OriginalText),
			Language:  name,
			Sentiment: strings.ToUpper(string(record.Sentiment.Class)),
			Polarity:  record.Sentiment.Score.FormatPolarity(),
		})
		if record.TranslationFellBack {
			report.FellBack++
		}
	}
	return report, nil
}

// Truncate cuts text to limit characters and appends "..." when it was longer.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + ellipsis
}

// originalCell flattens whitespace before truncating and escapes pipes after,
// so a comment cannot break the table layout.
func (b *Builder) originalCell(text string) string {
	flat := strings.Join(strings.Fields(text), " ")
	return strings.ReplaceAll(Truncate(flat, b.truncate), "|", `\|`)
}

func (r Report) WriteMarkdown(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(heading + "\n\n")
	sb.WriteString(header + "\n")
	sb.WriteString(separator + "\n")
	for _, row := range r.Rows {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", row.Original, row.Language, row.Sentiment, row.Polarity))
	}

	if r.FellBack > 0 {
		sb.WriteString(fmt.Sprintf("\n_%d of %d comments could not be translated; their sentiment was scored on the original text._\n",
			r.FellBack, len(r.Rows)))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r Report) Markdown() string {
	var sb strings.Builder
	_ = r.WriteMarkdown(&sb)
	return sb.String()
}
