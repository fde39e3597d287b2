package repository

import (
	"context"

	"sangha/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionFilter narrows question listings.
type QuestionFilter struct {
	CategorySlug string
	AuthorID     uint
	Page         Page
}

// QuestionRepository defines persistence operations for questions.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question, categoryIDs []uint) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	GetAuthorID(ctx context.Context, id uint) (uint, error)
	List(ctx context.Context, filter QuestionFilter) ([]models.Question, error)
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository returns a new QuestionRepository implementation.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

const answersCountSelect = "questions.*, (SELECT COUNT(*) FROM answers WHERE answers.question_id = questions.id) AS answers_count"

func (r *questionRepository) Create(ctx context.Context, question *models.Question, categoryIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(question).Error; err != nil {
		return models.NewInternalError(err)
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]map[string]interface{}, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		links = append(links, map[string]interface{}{"question_id": question.ID, "category_id": id})
	}
	if err := db.Table("question_categories").Create(links).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := db.Model(question).Association("Categories").Find(&question.Categories); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).
		Select(answersCountSelect).
		Preload("Author").
		Preload("Categories").
		First(&question, id).Error
	if err != nil {
		return nil, mapError(err, "Question", id)
	}
	return &question, nil
}

func (r *questionRepository) GetAuthorID(ctx context.Context, id uint) (uint, error) {
	var question models.Question
	if err := r.db.WithContext(ctx).Select("id", "author_id").First(&question, id).Error; err != nil {
		return 0, mapError(err, "Question", id)
	}
	return question.AuthorID, nil
}

func (r *questionRepository) List(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	page := filter.Page.normalize(defaultPageSize, maxPageSize)
	query := r.db.WithContext(ctx).
		Select(answersCountSelect).
		Preload("Author").
		Preload("Categories")

	if filter.CategorySlug != "" {
		query = query.Where(
			"questions.id IN (SELECT qc.question_id FROM question_categories qc JOIN categories c ON c.id = qc.category_id WHERE c.slug = ?)",
			filter.CategorySlug,
		)
	}
	if filter.AuthorID != 0 {
		query = query.Where("questions.author_id = ?", filter.AuthorID)
	}

	var questions []models.Question
	if err := query.Order("questions.created_at DESC, questions.id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&questions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

// Delete removes the question row and its category links. Dependent rows are removed by
// the caller inside the same unit of work.
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM question_categories WHERE question_id = ?", id).Error; err != nil {
		return models.NewInternalError(err)
	}
	res := db.Delete(&models.Question{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Question", id)
	}
	return nil
}
