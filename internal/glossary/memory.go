package glossary

import (
	"context"
	"strings"
	"sync"

	"termflow/internal/models"
)

// MemoryStore is an in-process Store for tests and offline runs.
type MemoryStore struct {
	mu    sync.RWMutex
	terms map[string]*models.GlossaryTerm
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{terms: map[string]*models.GlossaryTerm{}}
}

func memoryKey(term, language string) string {
	return language + "\x1f" + strings.ToLower(term)
}

func (s *MemoryStore) GetTerm(ctx context.Context, term, language string) (*models.GlossaryTerm, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.terms[memoryKey(term, language)]
	if !ok {
		return nil, nil
	}
	cp := *t
	cp.Definitions = append([]models.DefinitionEntry(nil), t.Definitions...)
	cp.DocumentRefs = append([]models.DocumentRef(nil), t.DocumentRefs...)
	return &cp, nil
}

func (s *MemoryStore) UpsertTerm(ctx context.Context, t *models.GlossaryTerm) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	cp.Definitions = append([]models.DefinitionEntry(nil), t.Definitions...)
	cp.DocumentRefs = append([]models.DocumentRef(nil), t.DocumentRefs...)
	s.terms[memoryKey(t.Term, t.Language)] = &cp
	return nil
}

// ListTerms returns every stored term for one language, in no fixed order.
func (s *MemoryStore) ListTerms(ctx context.Context, language string) ([]models.GlossaryTerm, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GlossaryTerm, 0, len(s.terms))
	for _, t := range s.terms {
		if t.Language == language {
			out = append(out, *t)
		}
	}
	return out, nil
}
