package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// InitLogger installs the default logger. Pass stderr: stdout is reserved
// for command output.
func InitLogger(w io.Writer, level slog.Level) {
	slog.SetDefault(NewLogger(w, level))
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level <= slog.LevelDebug,
		NoColor:    !isTerminal(w),
	})
	return slog.New(handler)
}

// WithRunID tags every subsequent default-logger record with a fresh run id
// and returns it.
func WithRunID() string {
	runID := uuid.NewString()
	slog.SetDefault(slog.Default().With(slog.String("run_id", runID)))
	return runID
}

// GitHub Actions logs are not a terminal, escape codes only add noise there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
