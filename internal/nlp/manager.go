package nlp

import (
	"context"
	"strings"
)

// noneAnalyzer is the explicit degraded mode: configured, never available.
type noneAnalyzer struct{}

func (noneAnalyzer) Name() string    { return "none" }
func (noneAnalyzer) Available() bool { return false }
func (noneAnalyzer) Analyze(context.Context, string) (Analysis, error) {
	return Analysis{}, nil
}

// ParseAnalyzerList parses a pipe-separated analyzer spec ("prose|mock").
// Unknown names map to the none analyzer so a typo degrades instead of
// crashing the worker.
func ParseAnalyzerList(raw string) []Analyzer {
	parts := strings.Split(raw, "|")
	out := make([]Analyzer, 0, len(parts))
	for _, p := range parts {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "":
			continue
		case "prose":
			out = append(out, NewProseAnalyzer())
		case "mock":
			out = append(out, NewMockAnalyzer())
		default:
			out = append(out, noneAnalyzer{})
		}
	}
	if len(out) == 0 {
		out = append(out, noneAnalyzer{})
	}
	return out
}

// Select returns the first available analyzer, or nil when every configured
// backend is unavailable (pattern-only extraction).
func Select(analyzers []Analyzer) Analyzer {
	for _, a := range analyzers {
		if a.Available() {
			return a
		}
	}
	return nil
}
