package repository

import (
	"context"

	"sangha/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnswerRepository defines persistence operations for answers.
type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id uint) (*models.Answer, error)
	GetAuthorID(ctx context.Context, id uint) (uint, error)
	ListByQuestion(ctx context.Context, questionID uint) ([]models.Answer, error)
	Delete(ctx context.Context, id uint) error
	IDsByQuestion(ctx context.Context, questionID uint) ([]uint, error)
	DeleteByQuestion(ctx context.Context, questionID uint) error
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository returns a new AnswerRepository implementation.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(answer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *answerRepository) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := r.db.WithContext(ctx).Preload("Author").First(&answer, id).Error; err != nil {
		return nil, mapError(err, "Answer", id)
	}
	return &answer, nil
}

func (r *answerRepository) GetAuthorID(ctx context.Context, id uint) (uint, error) {
	var answer models.Answer
	if err := r.db.WithContext(ctx).Select("id", "author_id").First(&answer, id).Error; err != nil {
		return 0, mapError(err, "Answer", id)
	}
	return answer.AuthorID, nil
}

func (r *answerRepository) ListByQuestion(ctx context.Context, questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("question_id = ?", questionID).
		Order("created_at ASC, id ASC").
		Find(&answers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return answers, nil
}

func (r *answerRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Answer{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Answer", id)
	}
	return nil
}

func (r *answerRepository) IDsByQuestion(ctx context.Context, questionID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&models.Answer{}).
		Where("question_id = ?", questionID).
		Pluck("id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *answerRepository) DeleteByQuestion(ctx context.Context, questionID uint) error {
	if err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Delete(&models.Answer{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
