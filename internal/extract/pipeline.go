// Package extract turns raw page text into validated, defined terminology
// candidates. The stages are pure; page-level work runs in parallel.
package extract

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"termflow/internal/definition"
	"termflow/internal/normalize"
	"termflow/internal/validate"
)

type Pipeline struct {
	gen     *Generator
	pre     *Preprocessor
	chain   *validate.Chain
	workers int
}

func NewPipeline(gen *Generator, pre *Preprocessor, chain *validate.Chain, workers int) *Pipeline {
	if workers <= 0 {
		workers = 4
	}
	return &Pipeline{gen: gen, pre: pre, chain: chain, workers: workers}
}

// ExtractTerms runs the full pipeline over a document's pages. Pages are
// normalized and mined for candidates in parallel; merging, validation and
// definition synthesis run over the combined candidate set. On context
// cancellation the result built so far is returned alongside the error, so a
// document timeout yields partial results instead of corrupt state.
func (p *Pipeline) ExtractTerms(ctx context.Context, pages []Page) (Result, error) {
	res := Result{
		RejectedByReason: map[string]int{},
		LinguisticMode:   p.gen.LinguisticMode(),
	}
	perPage := make([][]Candidate, len(pages))
	done := make([]bool, len(pages))
	submitted := make([]bool, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, page := range pages {
		if strings.TrimSpace(page.Text) == "" {
			res.PagesSkipped++
			continue
		}
		submitted[i] = true
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cleaned := normalize.Normalize(page.Text)
			if cleaned != "" {
				perPage[i] = p.gen.Generate(gctx, Page{Number: page.Number, Text: cleaned})
			}
			done[i] = true
			return nil
		})
	}
	runErr := g.Wait()

	// Pages whose goroutine was cancelled before finishing still have to
	// show up in the accounting.
	for i := range pages {
		if submitted[i] && !done[i] {
			res.PagesSkipped++
		}
	}

	merged := p.mergeCandidates(pages, perPage, done, &res)
	for _, m := range merged {
		verdict := p.chain.Validate(m.term)
		if !verdict.Accepted {
			res.RejectedByReason[verdict.Reason]++
			continue
		}
		def := definition.Synthesize(m.term, m.sentence, m.pages)
		res.Accepted = append(res.Accepted, AcceptedTerm{
			Term:        m.term,
			Definition:  def.Text,
			FromPattern: def.FromPattern,
			Sentence:    m.sentence,
			Pages:       m.pages,
			Frequency:   m.frequency,
		})
	}
	return res, runErr
}

type mergedCandidate struct {
	term      string
	sentence  string
	pages     []int
	frequency int
}

// mergeCandidates folds per-page candidates into one entry per preprocessed,
// case-insensitive term. Pages are walked in order so output is deterministic.
func (p *Pipeline) mergeCandidates(pages []Page, perPage [][]Candidate, done []bool, res *Result) []mergedCandidate {
	index := map[string]int{}
	merged := make([]mergedCandidate, 0, 64)
	for i := range pages {
		if !done[i] {
			continue
		}
		res.PagesProcessed++
		for _, c := range perPage[i] {
			term := p.pre.Preprocess(c.RawText)
			if term == "" {
				continue
			}
			key := strings.ToLower(term)
			if j, ok := index[key]; ok {
				merged[j].frequency += c.Frequency
				merged[j].pages = mergePages(merged[j].pages, c.Pages)
				continue
			}
			index[key] = len(merged)
			merged = append(merged, mergedCandidate{
				term:      term,
				sentence:  c.Sentence,
				pages:     append([]int(nil), c.Pages...),
				frequency: c.Frequency,
			})
		}
	}
	return merged
}

func mergePages(dst, src []int) []int {
	for _, p := range src {
		found := false
		for _, q := range dst {
			if p == q {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, p)
		}
	}
	sort.Ints(dst)
	return dst
}
