package models

import "time"

// Question is a community question authored by a user.
type Question struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	AuthorID   uint       `gorm:"not null;index" json:"author_id"`
	Author     User       `gorm:"foreignKey:AuthorID" json:"author"`
	Title      string     `gorm:"not null;size:300" json:"title"`
	Body       string     `gorm:"type:text;not null" json:"body"`
	Categories []Category `gorm:"many2many:question_categories;" json:"categories"`
	// AnswersCount is not persisted; computed at query time
	AnswersCount int          `gorm:"->;-:migration" json:"answers_count"`
	Votes        *VoteSummary `gorm:"-" json:"votes,omitempty"`
	Answers      []Answer     `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Question) TableName() string {
	return "questions"
}

// CategoryIDs returns the IDs of the categories attached to q.
func (q *Question) CategoryIDs() []uint {
	ids := make([]uint, 0, len(q.Categories))
	for _, c := range q.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// Answer is a reply to a question.
type Answer struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	QuestionID uint         `gorm:"not null;index" json:"question_id"`
	AuthorID   uint         `gorm:"not null;index" json:"author_id"`
	Author     User         `gorm:"foreignKey:AuthorID" json:"author"`
	Body       string       `gorm:"type:text;not null" json:"body"`
	Votes      *VoteSummary `gorm:"-" json:"votes,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Answer) TableName() string {
	return "answers"
}
