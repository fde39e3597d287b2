// Package service holds the business rules of the Q&A ledgers on top of the repositories.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"sangha/internal/cache"
	"sangha/internal/middleware"
	"sangha/internal/models"
	"sangha/internal/observability"
	"sangha/internal/repository"
)

// PointTable maps each reputation action to the points it is worth.
type PointTable map[models.ReputationAction]int64

// DefaultPointTable returns the stock point values.
func DefaultPointTable() PointTable {
	return PointTable{
		models.ActionAskQuestion:      10,
		models.ActionDeleteQuestion:   -10,
		models.ActionPostAnswer:       10,
		models.ActionDeleteAnswer:     -10,
		models.ActionUpvoteQuestion:   1,
		models.ActionDownvoteQuestion: -1,
		models.ActionUpvoteAnswer:     1,
		models.ActionDownvoteAnswer:   -1,
	}
}

// WithOverrides returns a copy of t with overrides applied. Unknown actions are rejected.
func (t PointTable) WithOverrides(overrides map[string]int64) (PointTable, error) {
	out := make(PointTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	for name, points := range overrides {
		action := models.ReputationAction(name)
		if _, ok := out[action]; !ok {
			return nil, fmt.Errorf("unknown reputation action %q", name)
		}
		out[action] = points
	}
	return out, nil
}

// Delta returns the signed points for action, negated when undo is set.
func (t PointTable) Delta(action models.ReputationAction, undo bool) (int64, error) {
	points, ok := t[action]
	if !ok {
		return 0, models.NewBadRequestError(fmt.Sprintf("unknown reputation action %q", action))
	}
	if undo {
		return -points, nil
	}
	return points, nil
}

// ReputationView is the public score of one author.
type ReputationView struct {
	Author uint  `json:"author"`
	Score  int64 `json:"score"`
}

// LeaderboardEntry is one ranked author.
type LeaderboardEntry struct {
	Rank   int                `json:"rank"`
	Author models.UserSummary `json:"author"`
	Score  int64              `json:"score"`
}

type ReputationService struct {
	reputations repository.ReputationRepository
	users       repository.UserRepository
	points      PointTable
}

func NewReputationService(
	reputations repository.ReputationRepository,
	users repository.UserRepository,
	points PointTable,
) *ReputationService {
	if points == nil {
		points = DefaultPointTable()
	}
	return &ReputationService{reputations: reputations, users: users, points: points}
}

// Points exposes the injected point table.
func (s *ReputationService) Points() PointTable {
	return s.points
}

// UpdateReputation applies action to userID's score and returns the new score.
func (s *ReputationService) UpdateReputation(ctx context.Context, userID uint, action models.ReputationAction, undo bool) (int64, error) {
	score, err := s.apply(ctx, s.reputations, userID, action, undo)
	if err != nil {
		return 0, err
	}
	s.InvalidateCache(ctx, userID)
	return score, nil
}

// UpdateReputationIn applies action using the repositories of an open unit of work. The
// caller invalidates the cached score once the unit of work commits.
func (s *ReputationService) UpdateReputationIn(ctx context.Context, repos *repository.Repositories, userID uint, action models.ReputationAction, undo bool) (int64, error) {
	return s.apply(ctx, repos.Reputations, userID, action, undo)
}

func (s *ReputationService) apply(ctx context.Context, repo repository.ReputationRepository, userID uint, action models.ReputationAction, undo bool) (int64, error) {
	delta, err := s.points.Delta(action, undo)
	if err != nil {
		return 0, err
	}
	score, err := repo.Apply(ctx, userID, action, delta, undo)
	if err != nil {
		return 0, err
	}
	observability.ReputationDeltaTotal.WithLabelValues(string(action), strconv.FormatBool(undo)).Inc()
	middleware.Logger.DebugContext(ctx, "reputation updated",
		slog.Uint64("author_id", uint64(userID)),
		slog.String("action", string(action)),
		slog.Int64("delta", delta),
		slog.Int64("score", score))
	return score, nil
}

// InvalidateCache drops cached scores for userIDs and every leaderboard page,
// since any score change can reorder it.
func (s *ReputationService) InvalidateCache(ctx context.Context, userIDs ...uint) {
	cache.InvalidateReputation(ctx, userIDs...)
	cache.InvalidateLeaderboard(ctx)
}

// GetReputation returns the author's score. Authors who never scored have zero.
func (s *ReputationService) GetReputation(ctx context.Context, userID uint) (*ReputationView, error) {
	var view ReputationView
	err := cache.Aside(ctx, cache.ReputationKey(userID), &view, cache.ReputationTTL, func() error {
		exists, err := s.users.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("User", userID)
		}
		rep, err := s.reputations.Get(ctx, userID)
		if err != nil {
			return err
		}
		view = ReputationView{Author: userID}
		if rep != nil {
			view.Score = rep.Score
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Leaderboard returns the top authors by score.
func (s *ReputationService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var entries []LeaderboardEntry
	err := cache.Aside(ctx, cache.LeaderboardKey(limit), &entries, cache.LeaderboardTTL, func() error {
		top, err := s.reputations.Top(ctx, limit)
		if err != nil {
			return err
		}
		ids := make([]uint, 0, len(top))
		for _, r := range top {
			ids = append(ids, r.AuthorID)
		}
		users, err := s.users.ListByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uint]models.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}
		entries = make([]LeaderboardEntry, 0, len(top))
		for i, r := range top {
			author := models.UserSummary{ID: r.AuthorID}
			if u, ok := byID[r.AuthorID]; ok {
				author = u.Summary()
			}
			entries = append(entries, LeaderboardEntry{Rank: i + 1, Author: author, Score: r.Score})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// History returns the author's reputation events, newest first.
func (s *ReputationService) History(ctx context.Context, userID uint, limit, offset int) ([]models.ReputationEvent, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", userID)
	}
	return s.reputations.Events(ctx, userID, repository.Page{Limit: limit, Offset: offset})
}
