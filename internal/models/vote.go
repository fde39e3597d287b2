package models

import "time"

// VoteTargetType identifies what kind of content a vote ledger row belongs to.
type VoteTargetType string

const (
	// VoteTargetQuestion marks a vote ledger row for a question.
	VoteTargetQuestion VoteTargetType = "question"
	// VoteTargetAnswer marks a vote ledger row for an answer.
	VoteTargetAnswer VoteTargetType = "answer"
)

// Valid reports whether t is a known target type.
func (t VoteTargetType) Valid() bool {
	return t == VoteTargetQuestion || t == VoteTargetAnswer
}

// VoteDirection is the side a voter lands on.
type VoteDirection string

const (
	// VoteUp is an upvote.
	VoteUp VoteDirection = "upvote"
	// VoteDown is a downvote.
	VoteDown VoteDirection = "downvote"
)

// Valid reports whether d is a known direction.
func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}

// Opposite returns the other direction.
func (d VoteDirection) Opposite() VoteDirection {
	if d == VoteUp {
		return VoteDown
	}
	return VoteUp
}

// Vote is the ledger row for one question or answer. The upvoter and downvoter sets
// live in VoteCast rows; the counters mirror their sizes.
type Vote struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	TargetType    VoteTargetType `gorm:"type:varchar(20);not null;uniqueIndex:idx_votes_target" json:"target_type"`
	TargetID      uint           `gorm:"not null;uniqueIndex:idx_votes_target" json:"target_id"`
	UpvoteCount   int64          `gorm:"not null;default:0" json:"upvote_count"`
	DownvoteCount int64          `gorm:"not null;default:0" json:"downvote_count"`
	Version       int64          `gorm:"not null;default:0" json:"version"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Vote) TableName() string {
	return "votes"
}

// VoteCast records that a user is a member of a vote row's upvoter or downvoter set.
// A user can hold at most one cast per vote row.
type VoteCast struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	VoteID    uint          `gorm:"not null;uniqueIndex:idx_vote_casts_voter" json:"vote_id"`
	UserID    uint          `gorm:"not null;uniqueIndex:idx_vote_casts_voter;index" json:"user_id"`
	Direction VoteDirection `gorm:"type:varchar(10);not null" json:"direction"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (VoteCast) TableName() string {
	return "vote_casts"
}

// VoteSummary is the per-viewer view of a vote ledger row.
type VoteSummary struct {
	Upvotes      int64 `json:"upvotes"`
	Downvotes    int64 `json:"downvotes"`
	HasUpvoted   bool  `json:"hasUpvoted"`
	HasDownvoted bool  `json:"hasDownvoted"`
}
