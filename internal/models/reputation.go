package models

import (
	"fmt"
	"time"
)

// ReputationAction names an event that moves a user's reputation score.
type ReputationAction string

const (
	ActionAskQuestion      ReputationAction = "ASK_QUESTION"
	ActionDeleteQuestion   ReputationAction = "DELETE_QUESTION"
	ActionPostAnswer       ReputationAction = "POST_ANSWER"
	ActionDeleteAnswer     ReputationAction = "DELETE_ANSWER"
	ActionUpvoteQuestion   ReputationAction = "UPVOTE_QUESTION"
	ActionDownvoteQuestion ReputationAction = "DOWNVOTE_QUESTION"
	ActionUpvoteAnswer     ReputationAction = "UPVOTE_ANSWER"
	ActionDownvoteAnswer   ReputationAction = "DOWNVOTE_ANSWER"
)

// VoteAction returns the reputation action credited to the author of a target
// when it receives a vote in the given direction.
func VoteAction(target VoteTargetType, direction VoteDirection) (ReputationAction, error) {
	switch {
	case target == VoteTargetQuestion && direction == VoteUp:
		return ActionUpvoteQuestion, nil
	case target == VoteTargetQuestion && direction == VoteDown:
		return ActionDownvoteQuestion, nil
	case target == VoteTargetAnswer && direction == VoteUp:
		return ActionUpvoteAnswer, nil
	case target == VoteTargetAnswer && direction == VoteDown:
		return ActionDownvoteAnswer, nil
	}
	return "", fmt.Errorf("no reputation action for %s %s", direction, target)
}

// Reputation is the running score of one user. Scores are unbounded in both directions.
type Reputation struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	AuthorID  uint      `gorm:"not null;uniqueIndex" json:"author"`
	Score     int64     `gorm:"not null;default:0" json:"score"`
	Version   int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Reputation) TableName() string {
	return "reputations"
}

// ReputationEvent is one applied delta, kept so scores can be audited and rebuilt.
type ReputationEvent struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	AuthorID  uint             `gorm:"not null;index:idx_reputation_events_author" json:"author"`
	Action    ReputationAction `gorm:"type:varchar(32);not null" json:"action"`
	Delta     int64            `gorm:"not null" json:"delta"`
	Undo      bool             `gorm:"not null;default:false" json:"undo"`
	CreatedAt time.Time        `gorm:"index:idx_reputation_events_author" json:"created_at"`
}

// TableName specifies the table name for GORM
func (ReputationEvent) TableName() string {
	return "reputation_events"
}
