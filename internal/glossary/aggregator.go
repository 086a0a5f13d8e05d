// Package glossary merges accepted terminology candidates into the
// multi-document glossary, enforcing the identity and primary-definition
// invariants at the aggregation boundary.
package glossary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"termflow/internal/extract"
	"termflow/internal/models"
	"termflow/internal/util"
)

const maxExcerptLength = 300

// IngestSummary reports what one document ingestion did to the glossary.
type IngestSummary struct {
	Created              int `json:"created"`
	Updated              int `json:"updated"`
	DuplicateDefinitions int `json:"duplicate_definitions"`
}

// Aggregator serializes writes per (term, language) key so concurrent
// ingestion of the same term from several pages or documents cannot violate
// the invariants. Different terms proceed concurrently.
type Aggregator struct {
	store    Store
	language string
	locks    keyedMutex
}

func NewAggregator(store Store, language string) *Aggregator {
	return &Aggregator{store: store, language: language}
}

// IngestTerms merges all accepted terms of one document into the glossary.
func (a *Aggregator) IngestTerms(ctx context.Context, documentID string, terms []extract.AcceptedTerm) (IngestSummary, error) {
	var sum IngestSummary
	for _, t := range terms {
		created, dup, err := a.ingestOne(ctx, documentID, t)
		if err != nil {
			return sum, fmt.Errorf("ingest term %q: %w", t.Term, err)
		}
		if created {
			sum.Created++
		} else {
			sum.Updated++
		}
		if dup {
			sum.DuplicateDefinitions++
		}
	}
	return sum, nil
}

func (a *Aggregator) ingestOne(ctx context.Context, documentID string, t extract.AcceptedTerm) (created, dup bool, err error) {
	unlock := a.locks.lock(a.language + "\x1f" + strings.ToLower(t.Term))
	defer unlock()

	created, dup, err = a.mergeAndStore(ctx, documentID, t)
	if errors.Is(err, util.ErrTermConflict) {
		// One retry after a store-level race; the per-key lock makes this
		// rare (another process writing the same key).
		created, dup, err = a.mergeAndStore(ctx, documentID, t)
	}
	return created, dup, err
}

func (a *Aggregator) mergeAndStore(ctx context.Context, documentID string, t extract.AcceptedTerm) (created, dup bool, err error) {
	existing, err := a.store.GetTerm(ctx, t.Term, a.language)
	if err != nil {
		return false, false, err
	}
	ref := models.DocumentRef{
		DocumentID: documentID,
		Frequency:  t.Frequency,
		Pages:      append([]int(nil), t.Pages...),
		Excerpt:    excerpt(t.Sentence),
	}
	if existing == nil {
		term := &models.GlossaryTerm{
			TermID:   uuid.NewString(),
			Term:     t.Term,
			Language: a.language,
			Definitions: []models.DefinitionEntry{{
				Text:             t.Definition,
				SourceDocumentID: documentID,
				IsPrimary:        true,
				FromPattern:      t.FromPattern,
			}},
			DocumentRefs: []models.DocumentRef{ref},
		}
		return true, false, a.store.UpsertTerm(ctx, term)
	}

	if i := refIndex(existing.DocumentRefs, documentID); i >= 0 {
		// Re-processing the same document: idempotent in-place update, no
		// new definition entry.
		existing.DocumentRefs[i] = ref
		return false, false, a.store.UpsertTerm(ctx, existing)
	}

	existing.DocumentRefs = append(existing.DocumentRefs, ref)
	if hasDefinitionText(existing.Definitions, t.Definition) {
		dup = true
	} else {
		existing.Definitions = append(existing.Definitions, models.DefinitionEntry{
			Text:             t.Definition,
			SourceDocumentID: documentID,
			IsPrimary:        false,
			FromPattern:      t.FromPattern,
		})
	}
	return false, dup, a.store.UpsertTerm(ctx, existing)
}

// SetPrimaryDefinition is the explicit administrative operation that moves
// the primary flag. Aggregation itself never changes which entry is primary.
func (a *Aggregator) SetPrimaryDefinition(ctx context.Context, term string, index int) error {
	unlock := a.locks.lock(a.language + "\x1f" + strings.ToLower(term))
	defer unlock()

	existing, err := a.store.GetTerm(ctx, term, a.language)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("term %q not found", term)
	}
	if index < 0 || index >= len(existing.Definitions) {
		return fmt.Errorf("definition index %d out of range", index)
	}
	for i := range existing.Definitions {
		existing.Definitions[i].IsPrimary = i == index
	}
	return a.store.UpsertTerm(ctx, existing)
}

func refIndex(refs []models.DocumentRef, documentID string) int {
	for i, r := range refs {
		if r.DocumentID == documentID {
			return i
		}
	}
	return -1
}

func hasDefinitionText(defs []models.DefinitionEntry, text string) bool {
	for _, d := range defs {
		if d.Text == text {
			return true
		}
	}
	return false
}

func excerpt(s string) string {
	r := []rune(s)
	if len(r) > maxExcerptLength {
		return string(r[:maxExcerptLength]) + "…"
	}
	return s
}

// keyedMutex hands out one mutex per key, created on demand.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = map[string]*sync.Mutex{}
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
	return m.Unlock
}
