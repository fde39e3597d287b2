package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ReputationKeyPrefix  = "reputation:%d"
	VoteSummaryKeyPrefix = "votes:%s:%d"
	CategoryListKey      = "categories:all"
	LeaderboardKeyPrefix = "reputation:leaderboard:%d"
	leaderboardPattern   = "reputation:leaderboard:*"
)

const (
	ReputationTTL  = 5 * time.Minute
	VoteSummaryTTL = 2 * time.Minute
	CategoryTTL    = 30 * time.Minute
	LeaderboardTTL = time.Minute
)

func ReputationKey(userID uint) string {
	return fmt.Sprintf(ReputationKeyPrefix, userID)
}

// VoteSummaryKey keys the viewer-independent counters of a vote ledger row.
func VoteSummaryKey(targetType string, targetID uint) string {
	return fmt.Sprintf(VoteSummaryKeyPrefix, targetType, targetID)
}

func LeaderboardKey(limit int) string {
	return fmt.Sprintf(LeaderboardKeyPrefix, limit)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

func InvalidateReputation(ctx context.Context, userIDs ...uint) {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, ReputationKey(id))
	}
	Invalidate(ctx, keys...)
}

// InvalidateLeaderboard drops every cached leaderboard page. Pages are keyed by
// limit, so they are found with SCAN rather than listed.
func InvalidateLeaderboard(ctx context.Context) {
	if client == nil {
		return
	}
	var keys []string
	iter := client.Scan(ctx, 0, leaderboardPattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return
	}
	Invalidate(ctx, keys...)
}

func InvalidateVoteSummary(ctx context.Context, targetType string, targetID uint) {
	Invalidate(ctx, VoteSummaryKey(targetType, targetID))
}
