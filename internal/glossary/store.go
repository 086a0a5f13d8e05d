package glossary

import (
	"context"

	"termflow/internal/models"
)

// Store is the persistence boundary of the aggregator. Lookup is by
// case-insensitive term plus language; GetTerm returns (nil, nil) when the
// term does not exist.
type Store interface {
	GetTerm(ctx context.Context, term, language string) (*models.GlossaryTerm, error)
	UpsertTerm(ctx context.Context, t *models.GlossaryTerm) error
}
