package nlp

import (
	"context"
	"strings"
	"unicode"
)

// MockAnalyzer is a deterministic stand-in for tests and offline runs. It
// treats every capitalized word run as a noun phrase, which is wrong for real
// prose but stable.
type MockAnalyzer struct{}

func NewMockAnalyzer() *MockAnalyzer { return &MockAnalyzer{} }

func (m *MockAnalyzer) Name() string    { return "mock" }
func (m *MockAnalyzer) Available() bool { return true }

func (m *MockAnalyzer) Analyze(ctx context.Context, sentence string) (Analysis, error) {
	_ = ctx
	out := Analysis{}
	run := make([]string, 0, 4)
	flush := func() {
		if len(run) > 0 {
			out.NounPhrases = append(out.NounPhrases, strings.Join(run, " "))
			run = run[:0]
		}
	}
	for _, w := range strings.Fields(sentence) {
		w = strings.Trim(w, ".,;:!?()[]")
		r := []rune(w)
		if len(r) > 0 && unicode.IsUpper(r[0]) {
			run = append(run, w)
			continue
		}
		flush()
	}
	flush()
	return out, nil
}
