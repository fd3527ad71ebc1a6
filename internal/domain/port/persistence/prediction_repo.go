package persistence

import (
	"context"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
)

// PredictionRepository reads and writes prediction rows.
// Listings are ordered by creation time, most recent first.
// Every store failure surfaces as ErrPersistence.
type PredictionRepository interface {
	// ListAll returns every prediction. It never writes.
	ListAll(ctx context.Context) ([]entity.Prediction, error)

	// ListElite returns only predictions flagged elite
	ListElite(ctx context.Context) ([]entity.Prediction, error)

	// Upsert inserts the prediction or overwrites the row with the same ID
	Upsert(ctx context.Context, prediction *entity.Prediction) error

	// UpsertMany writes all predictions in one transaction, or none of them
	UpsertMany(ctx context.Context, predictions []entity.Prediction) error

	// Count returns the number of stored predictions
	Count(ctx context.Context) (int64, error)
}
