package monitoring

import (
	"context"
	"log/slog"
	"time"
)

const HEALTHCHECK_TIMEOUT = 15 * time.Second

// Probe reports whether a dependency is reachable.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

type Result struct {
	Name    string        `json:"name"`
	Healthy bool          `json:"healthy"`
	Error   string        `json:"error,omitempty"`
	Elapsed time.Duration `json:"elapsed"`
}

// RunProbes runs every probe once, in order, each under its own timeout.
func RunProbes(ctx context.Context, probes []Probe) []Result {
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		results = append(results, runProbe(ctx, p))
	}
	return results
}

func runProbe(ctx context.Context, p Probe) Result {
	ctx, cancel := context.WithTimeout(ctx, HEALTHCHECK_TIMEOUT)
	defer cancel()

	start := time.Now()
	err := p.Check(ctx)
	res := Result{Name: p.Name, Healthy: err == nil, Elapsed: time.Since(start)}
	if err != nil {
		res.Error = err.Error()
		slog.Warn("[HealthCheck] Dependency is unhealthy",
			slog.String("name", p.Name),
			slog.String("error", err.Error()))
		return res
	}

	slog.Debug("[HealthCheck] Dependency is healthy",
		slog.String("name", p.Name),
		slog.Duration("elapsed", res.Elapsed))
	return res
}

// Healthy is true when no result failed.
func Healthy(results []Result) bool {
	for _, r := range results {
		if !r.Healthy {
			return false
		}
	}
	return true
}
