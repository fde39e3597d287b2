package repository

import (
	"context"

	"sangha/internal/models"

	"gorm.io/gorm"
)

// NotificationFilter narrows an inbox listing.
type NotificationFilter struct {
	UnreadOnly bool
	Page       Page
}

// NotificationRepository persists fan-out rows and serves recipient inboxes.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []models.Notification, batchSize int) error
	List(ctx context.Context, recipientID uint, filter NotificationFilter) ([]models.Notification, error)
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID uint) error
	MarkAllRead(ctx context.Context, recipientID uint) (int64, error)
	UnreadCount(ctx context.Context, recipientID uint) (int64, error)
	DeleteForQuestions(ctx context.Context, questionIDs []uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new NotificationRepository implementation.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []models.Notification, batchSize int) error {
	if len(notifications) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	if err := r.db.WithContext(ctx).Omit("Sender", "Question", "Category").
		CreateInBatches(notifications, batchSize).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// live drops rows whose question has since been deleted.
func live(db *gorm.DB) *gorm.DB {
	return db.Where("notifications.question_id IS NULL OR EXISTS (SELECT 1 FROM questions WHERE questions.id = notifications.question_id)")
}

func (r *notificationRepository) List(ctx context.Context, recipientID uint, filter NotificationFilter) ([]models.Notification, error) {
	page := filter.Page.normalize(defaultPageSize, maxPageSize)
	query := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Category").
		Preload("Question", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "author_id")
		}).
		Where("recipient_id = ?", recipientID)
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	var notifications []models.Notification
	if err := query.Scopes(live).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&notifications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifications, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, mapError(err, "Notification", id)
	}
	return &n, nil
}

// MarkRead flags a notification read. Notifications addressed to someone else are
// reported as missing.
func (r *notificationRepository) MarkRead(ctx context.Context, id, recipientID uint) error {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Notification", id)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Scopes(live).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *notificationRepository) DeleteForQuestions(ctx context.Context, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("question_id IN ?", questionIDs).
		Delete(&models.Notification{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
