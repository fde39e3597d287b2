package models

import "time"

// NotificationType identifies why a notification was sent.
type NotificationType string

const (
	NotificationNewAnswer         NotificationType = "NEW_ANSWER"
	NotificationUserAskedQuestion NotificationType = "USER_ASKED_QUESTION"
	NotificationTopicNewQuestion  NotificationType = "TOPIC_NEW_QUESTION"
)

// Notification is one fan-out row addressed to a single recipient.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RecipientID uint             `gorm:"not null;index:idx_notifications_inbox,priority:1" json:"recipient"`
	SenderID    uint             `gorm:"not null" json:"-"`
	Sender      *User            `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Type        NotificationType `gorm:"type:varchar(32);not null" json:"type"`
	QuestionID  *uint            `gorm:"index" json:"-"`
	Question    *Question        `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	CategoryID  *uint            `json:"-"`
	Category    *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsRead      bool             `gorm:"not null;default:false;index:idx_notifications_inbox,priority:2" json:"isRead"`
	CreatedAt   time.Time        `gorm:"index:idx_notifications_inbox,priority:3" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// FanoutResult reports how many notification rows a fan-out persisted and how many it
// had to give up on.
type FanoutResult struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

// Add accumulates other into r.
func (r *FanoutResult) Add(other FanoutResult) {
	r.Delivered += other.Delivered
	r.Failed += other.Failed
}

// QuestionRef is the slice of a question embedded in a notification.
type QuestionRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// CategoryRef is the slice of a category embedded in a notification.
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NotificationView is the enriched inbox representation of a notification.
type NotificationView struct {
	ID        uint             `json:"id"`
	Type      NotificationType `json:"type"`
	Sender    UserSummary      `json:"sender"`
	Question  *QuestionRef     `json:"question,omitempty"`
	Category  *CategoryRef     `json:"category,omitempty"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"created_at"`
}

// View flattens n and whatever relations were preloaded on it.
func (n Notification) View() NotificationView {
	v := NotificationView{
		ID:        n.ID,
		Type:      n.Type,
		Sender:    UserSummary{ID: n.SenderID},
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.Sender != nil {
		v.Sender = n.Sender.Summary()
	}
	switch {
	case n.Question != nil:
		v.Question = &QuestionRef{ID: n.Question.ID, Title: n.Question.Title}
	case n.QuestionID != nil:
		v.Question = &QuestionRef{ID: *n.QuestionID}
	}
	switch {
	case n.Category != nil:
		v.Category = &CategoryRef{ID: n.Category.ID, Name: n.Category.Name, Slug: n.Category.Slug}
	case n.CategoryID != nil:
		v.Category = &CategoryRef{ID: *n.CategoryID}
	}
	return v
}
