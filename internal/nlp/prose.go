package nlp

import (
	"context"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

// ProseAnalyzer runs part-of-speech tagging and named-entity recognition via
// the prose library.
type ProseAnalyzer struct {
	probe     sync.Once
	available bool
}

func NewProseAnalyzer() *ProseAnalyzer {
	return &ProseAnalyzer{}
}

func (p *ProseAnalyzer) Name() string { return "prose" }

func (p *ProseAnalyzer) Available() bool {
	p.probe.Do(func() {
		_, err := prose.NewDocument("probe sentence",
			prose.WithSegmentation(false))
		p.available = err == nil
	})
	return p.available
}

func (p *ProseAnalyzer) Analyze(ctx context.Context, sentence string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	doc, err := prose.NewDocument(sentence, prose.WithSegmentation(false))
	if err != nil {
		return Analysis{}, err
	}
	toks := doc.Tokens()
	tagged := make([]taggedToken, 0, len(toks))
	for _, t := range toks {
		tagged = append(tagged, taggedToken{Text: t.Text, Tag: t.Tag})
	}
	out := Analysis{NounPhrases: chunkNounPhrases(tagged)}
	for _, e := range doc.Entities() {
		out.Entities = append(out.Entities, e.Text)
	}
	return out, nil
}

type taggedToken struct {
	Text string
	Tag  string
}

// chunkNounPhrases collects runs of adjectives and nouns that end in a noun.
// Runs longer than four tokens are discarded rather than truncated: those are
// sentence fragments, not terms.
func chunkNounPhrases(tokens []taggedToken) []string {
	phrases := make([]string, 0)
	run := make([]string, 0, 4)
	endsInNoun := false
	flush := func() {
		if endsInNoun && len(run) >= 1 && len(run) <= 4 {
			phrases = append(phrases, strings.Join(run, " "))
		}
		run = run[:0]
		endsInNoun = false
	}
	for _, t := range tokens {
		switch {
		case strings.HasPrefix(t.Tag, "NN"):
			run = append(run, t.Text)
			endsInNoun = true
		case strings.HasPrefix(t.Tag, "JJ"):
			if endsInNoun {
				flush()
			}
			run = append(run, t.Text)
			endsInNoun = false
		default:
			flush()
		}
	}
	flush()
	return phrases
}
