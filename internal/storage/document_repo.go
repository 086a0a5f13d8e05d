package storage

import (
	"context"
	"fmt"

	"termflow/internal/models"
)

type DocumentRepo struct {
	db *DB
}

func NewDocumentRepo(db *DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

func (r *DocumentRepo) UpsertDocument(ctx context.Context, d models.Document) error {
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO documents (document_id, filename, language, status, fail_reason, page_count, term_count)
VALUES ($1, $2, $3, $4, NULLIF($5,''), $6, $7)
ON CONFLICT (document_id)
DO UPDATE SET
  filename = EXCLUDED.filename,
  language = EXCLUDED.language,
  status = EXCLUDED.status,
  fail_reason = EXCLUDED.fail_reason,
  page_count = GREATEST(EXCLUDED.page_count, documents.page_count),
  term_count = GREATEST(EXCLUDED.term_count, documents.term_count),
  updated_at = NOW()`,
		d.DocumentID, d.Filename, d.Language, d.Status, d.FailReason, d.PageCount, d.TermCount,
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func (r *DocumentRepo) UpdateDocumentStatus(ctx context.Context, documentID, status, failReason string) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE documents SET status=$2, fail_reason=NULLIF($3,''), updated_at=NOW() WHERE document_id=$1`,
		documentID, status, failReason)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return nil
}

func (r *DocumentRepo) ListDocuments(ctx context.Context) ([]models.Document, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT document_id, filename, language, status, COALESCE(fail_reason,''), page_count, term_count, created_at, updated_at
FROM documents
ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	out := make([]models.Document, 0)
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.DocumentID, &d.Filename, &d.Language, &d.Status, &d.FailReason, &d.PageCount, &d.TermCount, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return out, nil
}

func (r *DocumentRepo) GetDocument(ctx context.Context, documentID string) (models.Document, error) {
	var d models.Document
	err := r.db.Pool.QueryRow(ctx, `
SELECT document_id, filename, language, status, COALESCE(fail_reason,''), page_count, term_count, created_at, updated_at
FROM documents
WHERE document_id=$1`, documentID).
		Scan(&d.DocumentID, &d.Filename, &d.Language, &d.Status, &d.FailReason, &d.PageCount, &d.TermCount, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return models.Document{}, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}
