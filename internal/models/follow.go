package models

import "time"

// FollowingType is the kind of entity on the far side of a follow edge.
type FollowingType string

const (
	FollowingUser     FollowingType = "User"
	FollowingCategory FollowingType = "Category"
	FollowingQuestion FollowingType = "Question"
)

// Valid reports whether t is a known following type.
func (t FollowingType) Valid() bool {
	switch t {
	case FollowingUser, FollowingCategory, FollowingQuestion:
		return true
	}
	return false
}

// Follow is a directed edge from a user to a user, category or question.
type Follow struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	FollowerID    uint          `gorm:"not null;uniqueIndex:idx_follows_edge,priority:1" json:"follower"`
	FollowingType FollowingType `gorm:"type:varchar(20);not null;uniqueIndex:idx_follows_edge,priority:2;index:idx_follows_target,priority:1" json:"followingType"`
	FollowingID   uint          `gorm:"not null;uniqueIndex:idx_follows_edge,priority:3;index:idx_follows_target,priority:2" json:"following"`
	CreatedAt     time.Time     `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
