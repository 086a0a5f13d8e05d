package extract

import (
	"context"
	"regexp"
	"strings"

	"termflow/internal/nlp"
)

// Pattern strategy: regexes catching the term shapes technical PDFs carry
// even when no linguistic analyzer is available.
var (
	capitalizedSeq = regexp.MustCompile(`\b[A-ZÄÖÜ][a-zäöüß]+(?:[ ][A-ZÄÖÜ][a-zäöüß]+){1,3}\b`)
	acronym        = regexp.MustCompile(`\b[A-Z]{2,8}\b`)
	hyphenCompound = regexp.MustCompile(`\b\p{L}{2,}(?:-\p{L}{2,})+\b`)
	standardsCode  = regexp.MustCompile(`\b(?:ISO|IEC|DIN|EN|ASTM|IEEE|ANSI)[ ]?\d+(?:[-:]\d+)*\b`)
)

// Generator produces candidates from normalized page text. When the analyzer
// is nil or unavailable it runs in degraded pattern-only mode.
type Generator struct {
	analyzer nlp.Analyzer
	pre      *Preprocessor
}

func NewGenerator(analyzer nlp.Analyzer, pre *Preprocessor) *Generator {
	if analyzer != nil && !analyzer.Available() {
		analyzer = nil
	}
	return &Generator{analyzer: analyzer, pre: pre}
}

// LinguisticMode reports whether the linguistic strategy participates.
func (g *Generator) LinguisticMode() bool {
	return g.analyzer != nil
}

// Generate extracts candidates from one normalized page. Identical raw text
// occurring several times on the page is merged into one candidate with its
// frequency incremented; the order of first occurrence is preserved so output
// is deterministic for a given input.
func (g *Generator) Generate(ctx context.Context, page Page) []Candidate {
	text := strings.TrimSpace(page.Text)
	if text == "" {
		return nil
	}
	acc := newAccumulator(page.Number)
	for _, sentence := range SplitSentences(text) {
		// Both strategies can report the same textual occurrence, sometimes
		// under article variants ("The Stirrer" vs "Stirrer"). One sentence
		// contributes each term at most once, so frequency stays the count
		// of occurrences rather than the count of strategy hits.
		seen := map[string]struct{}{}
		add := func(raw string) {
			key := strings.ToLower(g.pre.Preprocess(raw))
			if key == "" {
				return
			}
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			acc.add(raw, sentence)
		}
		for _, m := range patternMatches(sentence) {
			add(m)
		}
		if g.analyzer == nil {
			continue
		}
		analysis, err := g.analyzer.Analyze(ctx, sentence)
		if err != nil {
			// Linguistic failure degrades to pattern-only for this sentence.
			continue
		}
		for _, np := range analysis.NounPhrases {
			add(np)
		}
		for _, ent := range analysis.Entities {
			add(ent)
		}
	}
	return acc.candidates
}

func patternMatches(sentence string) []string {
	out := make([]string, 0, 8)
	out = append(out, standardsCode.FindAllString(sentence, -1)...)
	out = append(out, capitalizedSeq.FindAllString(sentence, -1)...)
	out = append(out, acronym.FindAllString(sentence, -1)...)
	out = append(out, hyphenCompound.FindAllString(sentence, -1)...)
	return out
}

// accumulator merges repeat occurrences of the same raw text on one page.
type accumulator struct {
	page       int
	index      map[string]int
	candidates []Candidate
}

func newAccumulator(page int) *accumulator {
	return &accumulator{page: page, index: map[string]int{}}
}

func (a *accumulator) add(raw, sentence string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if i, ok := a.index[raw]; ok {
		a.candidates[i].Frequency++
		return
	}
	a.index[raw] = len(a.candidates)
	a.candidates = append(a.candidates, Candidate{
		RawText:   raw,
		Sentence:  sentence,
		Pages:     []int{a.page},
		Frequency: 1,
	})
}
