package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"termflow/internal/models"
)

// TermRepo persists glossary terms. Definitions and document references are
// nested value types stored as JSONB; their invariants are enforced by the
// aggregator before anything reaches this layer.
type TermRepo struct {
	db *DB
}

func NewTermRepo(db *DB) *TermRepo {
	return &TermRepo{db: db}
}

func (r *TermRepo) GetTerm(ctx context.Context, term, language string) (*models.GlossaryTerm, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT term_id, term, language, definitions, document_refs, COALESCE(domain_tags, '{}'), created_at, updated_at
FROM glossary_terms
WHERE language = $1 AND term_key = $2`, language, strings.ToLower(term))
	t, err := scanTerm(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	return t, nil
}

func (r *TermRepo) UpsertTerm(ctx context.Context, t *models.GlossaryTerm) error {
	defs, err := json.Marshal(t.Definitions)
	if err != nil {
		return fmt.Errorf("marshal definitions: %w", err)
	}
	refs, err := json.Marshal(t.DocumentRefs)
	if err != nil {
		return fmt.Errorf("marshal document refs: %w", err)
	}
	_, err = r.db.Pool.Exec(ctx, `
INSERT INTO glossary_terms (term_id, term, term_key, language, definitions, document_refs, domain_tags)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (language, term_key)
DO UPDATE SET
  term = glossary_terms.term,
  definitions = EXCLUDED.definitions,
  document_refs = EXCLUDED.document_refs,
  domain_tags = EXCLUDED.domain_tags,
  updated_at = NOW()`,
		t.TermID, t.Term, strings.ToLower(t.Term), t.Language, defs, refs, t.DomainTags,
	)
	if err != nil {
		return fmt.Errorf("upsert term: %w", err)
	}
	return nil
}

func (r *TermRepo) ListTerms(ctx context.Context, language string, limit int) ([]models.GlossaryTerm, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.db.Pool.Query(ctx, `
SELECT term_id, term, language, definitions, document_refs, COALESCE(domain_tags, '{}'), created_at, updated_at
FROM glossary_terms
WHERE language = $1
ORDER BY term_key ASC
LIMIT $2`, language, limit)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()
	return collectTerms(rows)
}

func (r *TermRepo) SearchTerms(ctx context.Context, language, prefix string, limit int) ([]models.GlossaryTerm, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Pool.Query(ctx, `
SELECT term_id, term, language, definitions, document_refs, COALESCE(domain_tags, '{}'), created_at, updated_at
FROM glossary_terms
WHERE language = $1 AND term_key LIKE $2 || '%'
ORDER BY term_key ASC
LIMIT $3`, language, strings.ToLower(prefix), limit)
	if err != nil {
		return nil, fmt.Errorf("search terms: %w", err)
	}
	defer rows.Close()
	return collectTerms(rows)
}

func collectTerms(rows pgx.Rows) ([]models.GlossaryTerm, error) {
	out := make([]models.GlossaryTerm, 0, 32)
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate terms: %w", err)
	}
	return out, nil
}

func scanTerm(row pgx.Row) (*models.GlossaryTerm, error) {
	var t models.GlossaryTerm
	var defs, refs []byte
	if err := row.Scan(&t.TermID, &t.Term, &t.Language, &defs, &refs, &t.DomainTags, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(defs, &t.Definitions); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}
	if err := json.Unmarshal(refs, &t.DocumentRefs); err != nil {
		return nil, fmt.Errorf("decode document refs: %w", err)
	}
	return &t, nil
}
