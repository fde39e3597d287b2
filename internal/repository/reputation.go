package repository

import (
	"context"
	"errors"
	"time"

	"sangha/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReputationRepository persists running reputation scores and their audit events.
type ReputationRepository interface {
	// Apply adds delta to the author's score in one upsert, creating the row at zero when
	// absent, records the event and returns the new score.
	Apply(ctx context.Context, authorID uint, action models.ReputationAction, delta int64, undo bool) (int64, error)
	Get(ctx context.Context, authorID uint) (*models.Reputation, error)
	Top(ctx context.Context, limit int) ([]models.Reputation, error)
	Events(ctx context.Context, authorID uint, page Page) ([]models.ReputationEvent, error)
}

type reputationRepository struct {
	db *gorm.DB
}

// NewReputationRepository returns a new ReputationRepository implementation.
func NewReputationRepository(db *gorm.DB) ReputationRepository {
	return &reputationRepository{db: db}
}

func (r *reputationRepository) Apply(ctx context.Context, authorID uint, action models.ReputationAction, delta int64, undo bool) (int64, error) {
	db := r.db.WithContext(ctx)

	row := models.Reputation{AuthorID: authorID, Score: delta, Version: 1}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "author_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":      gorm.Expr("reputations.score + ?", delta),
			"version":    gorm.Expr("reputations.version + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}

	event := models.ReputationEvent{AuthorID: authorID, Action: action, Delta: delta, Undo: undo}
	if err := db.Create(&event).Error; err != nil {
		return 0, models.NewInternalError(err)
	}

	var score int64
	if err := db.Model(&models.Reputation{}).Where("author_id = ?", authorID).Pluck("score", &score).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return score, nil
}

// Get returns the author's reputation row, or nil when they have never scored.
func (r *reputationRepository) Get(ctx context.Context, authorID uint) (*models.Reputation, error) {
	var rep models.Reputation
	err := r.db.WithContext(ctx).Where("author_id = ?", authorID).First(&rep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &rep, nil
}

func (r *reputationRepository) Top(ctx context.Context, limit int) ([]models.Reputation, error) {
	page := Page{Limit: limit}.normalize(10, maxPageSize)
	var reps []models.Reputation
	if err := r.db.WithContext(ctx).
		Order("score DESC, author_id ASC").
		Limit(page.Limit).
		Find(&reps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reps, nil
}

func (r *reputationRepository) Events(ctx context.Context, authorID uint, page Page) ([]models.ReputationEvent, error) {
	page = page.normalize(defaultPageSize, maxPageSize)
	var events []models.ReputationEvent
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}
