package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/model"
)

// listOrder puts the newest rows first; id breaks ties between rows
// written in the same batch
const listOrder = "created_at desc, id asc"

// PredictionRepository implements the PredictionRepository port using GORM
type PredictionRepository struct {
	manager *database.Manager
	logger  coreport.Logger
}

// NewPredictionRepository creates a new PredictionRepository instance
func NewPredictionRepository(manager *database.Manager, logger coreport.Logger) *PredictionRepository {
	return &PredictionRepository{
		manager: manager,
		logger:  logger,
	}
}

func (r *PredictionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	fields["error"] = err.Error()
	fields["operation"] = operation
	r.logger.Error("Database error on predictions", fields)
	return r.manager.ErrorMapper().MapError(err, database.EntityTypePrediction, operation)
}

// upsertClause overwrites every column but the key when the id exists
func upsertClause() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(model.UpsertColumns),
	}
}

// ListAll returns every prediction, newest first
func (r *PredictionRepository) ListAll(ctx context.Context) ([]entity.Prediction, error) {
	return r.list(ctx, "list_all", func(db *gorm.DB) *gorm.DB { return db })
}

// ListElite returns predictions flagged elite, newest first
func (r *PredictionRepository) ListElite(ctx context.Context) ([]entity.Prediction, error) {
	return r.list(ctx, "list_elite", func(db *gorm.DB) *gorm.DB {
		return db.Where("is_elite = ?", true)
	})
}

func (r *PredictionRepository) list(ctx context.Context, operation string, scope func(*gorm.DB) *gorm.DB) ([]entity.Prediction, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	db, err := r.manager.Conn()
	if err != nil {
		return nil, r.handleDatabaseError(operation, err, map[string]any{})
	}

	var rows []model.Prediction
	if err := db.WithContext(ctx).Scopes(scope).Order(listOrder).Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, map[string]any{})
	}

	predictions := make([]entity.Prediction, 0, len(rows))
	for i := range rows {
		predictions = append(predictions, predictionToEntity(&rows[i]))
	}
	return predictions, nil
}

// Upsert inserts the prediction or overwrites the row with the same ID
func (r *PredictionRepository) Upsert(ctx context.Context, prediction *entity.Prediction) error {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	db, err := r.manager.Conn()
	if err == nil {
		err = db.WithContext(ctx).Clauses(upsertClause()).Create(predictionToModel(prediction)).Error
	}
	if err != nil {
		return r.handleDatabaseError("upsert", err, map[string]any{"prediction_id": prediction.ID})
	}

	r.logger.Debug("Prediction stored", map[string]any{
		"prediction_id": prediction.ID,
		"is_elite":      prediction.IsElite,
	})
	return nil
}

// UpsertMany writes all predictions inside one transaction
func (r *PredictionRepository) UpsertMany(ctx context.Context, predictions []entity.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}

	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	db, err := r.manager.Conn()
	if err == nil {
		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for i := range predictions {
				if err := tx.Clauses(upsertClause()).Create(predictionToModel(&predictions[i])).Error; err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err != nil {
		return r.handleDatabaseError("upsert_many", err, map[string]any{"count": len(predictions)})
	}

	r.logger.Debug("Predictions stored", map[string]any{"count": len(predictions)})
	return nil
}

// Count returns the number of stored predictions
func (r *PredictionRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	db, err := r.manager.Conn()
	if err != nil {
		return 0, r.handleDatabaseError("count", err, map[string]any{})
	}

	var count int64
	if err := db.WithContext(ctx).Model(&model.Prediction{}).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("count", err, map[string]any{})
	}
	return count, nil
}
