package nlp

import "context"

// Analysis is the linguistic view of a single sentence.
type Analysis struct {
	NounPhrases []string `json:"noun_phrases"`
	Entities    []string `json:"entities"`
}

// Analyzer is a capability-checked linguistic backend. When no backend is
// available the candidate generator degrades to pattern-only extraction, so
// Available must be cheap and honest.
type Analyzer interface {
	Name() string
	Available() bool
	Analyze(ctx context.Context, sentence string) (Analysis, error)
}
