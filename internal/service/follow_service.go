package service

import (
	"context"
	"log/slog"

	"sangha/internal/middleware"
	"sangha/internal/models"
	"sangha/internal/observability"
	"sangha/internal/repository"
)

const defaultFollowerBatch = 500

type FollowService struct {
	follows    repository.FollowRepository
	users      repository.UserRepository
	categories repository.CategoryRepository
	questions  repository.QuestionRepository
}

func NewFollowService(
	follows repository.FollowRepository,
	users repository.UserRepository,
	categories repository.CategoryRepository,
	questions repository.QuestionRepository,
) *FollowService {
	return &FollowService{
		follows:    follows,
		users:      users,
		categories: categories,
		questions:  questions,
	}
}

// Follow adds the edge follower -> (followingType, followingID).
func (s *FollowService) Follow(ctx context.Context, followerID uint, followingType models.FollowingType, followingID uint) (*models.Follow, error) {
	if !followingType.Valid() {
		return nil, models.NewBadRequestError("invalid following type")
	}
	if followingType == models.FollowingUser && followingID == followerID {
		return nil, models.NewBadRequestError("you cannot follow yourself")
	}
	if err := s.ensureTarget(ctx, followingType, followingID); err != nil {
		return nil, err
	}

	exists, err := s.follows.Exists(ctx, followerID, followingType, followingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("already following")
	}

	follow := &models.Follow{FollowerID: followerID, FollowingType: followingType, FollowingID: followingID}
	if err := s.follows.Create(ctx, follow); err != nil {
		return nil, err
	}

	observability.FollowsTotal.WithLabelValues(string(followingType), "follow").Inc()
	middleware.Logger.InfoContext(ctx, "follow created",
		slog.Uint64("follower_id", uint64(followerID)),
		slog.String("following_type", string(followingType)),
		slog.Uint64("following_id", uint64(followingID)))
	return follow, nil
}

// Unfollow removes the edge. Removing an edge that does not exist is a bad request.
func (s *FollowService) Unfollow(ctx context.Context, followerID uint, followingType models.FollowingType, followingID uint) error {
	if !followingType.Valid() {
		return models.NewBadRequestError("invalid following type")
	}
	removed, err := s.follows.Delete(ctx, followerID, followingType, followingID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewBadRequestError("you are not following this " + string(followingType))
	}
	observability.FollowsTotal.WithLabelValues(string(followingType), "unfollow").Inc()
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID uint, followingType models.FollowingType, followingID uint) (bool, error) {
	if !followingType.Valid() {
		return false, models.NewBadRequestError("invalid following type")
	}
	return s.follows.Exists(ctx, followerID, followingType, followingID)
}

// Followers lists the profiles following the target.
func (s *FollowService) Followers(ctx context.Context, followingType models.FollowingType, followingID uint, limit, offset int) ([]models.User, error) {
	if !followingType.Valid() {
		return nil, models.NewBadRequestError("invalid following type")
	}
	if err := s.ensureTarget(ctx, followingType, followingID); err != nil {
		return nil, err
	}
	return s.follows.ListFollowers(ctx, followingType, followingID, repository.Page{Limit: limit, Offset: offset})
}

// FollowerIDs returns one keyset page of follower IDs after afterID.
func (s *FollowService) FollowerIDs(ctx context.Context, followingType models.FollowingType, followingID, afterID uint, limit int) ([]uint, error) {
	return s.follows.FollowerIDs(ctx, followingType, followingID, afterID, limit)
}

// Following lists the user's outgoing edges, optionally restricted to one type.
func (s *FollowService) Following(ctx context.Context, followerID uint, followingType models.FollowingType, limit, offset int) ([]models.Follow, error) {
	if followingType != "" && !followingType.Valid() {
		return nil, models.NewBadRequestError("invalid following type")
	}
	if err := s.ensureTarget(ctx, models.FollowingUser, followerID); err != nil {
		return nil, err
	}
	return s.follows.ListFollowing(ctx, followerID, followingType, repository.Page{Limit: limit, Offset: offset})
}

// EachFollowerBatch walks every follower of the target in ascending ID order, handing fn
// at most batchSize IDs at a time. Iteration stops at the first error from fn.
func (s *FollowService) EachFollowerBatch(ctx context.Context, followingType models.FollowingType, followingID uint, batchSize int, fn func(ids []uint) error) error {
	return eachFollowerBatch(ctx, s.follows, followingType, followingID, batchSize, fn)
}

func eachFollowerBatch(ctx context.Context, follows repository.FollowRepository, followingType models.FollowingType, followingID uint, batchSize int, fn func(ids []uint) error) error {
	if batchSize <= 0 {
		batchSize = defaultFollowerBatch
	}
	var after uint
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ids, err := follows.FollowerIDs(ctx, followingType, followingID, after, batchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := fn(ids); err != nil {
			return err
		}
		if len(ids) < batchSize {
			return nil
		}
		after = ids[len(ids)-1]
	}
}

func (s *FollowService) ensureTarget(ctx context.Context, followingType models.FollowingType, id uint) error {
	switch followingType {
	case models.FollowingUser:
		ok, err := s.users.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return models.NewNotFoundError("User", id)
		}
		return nil
	case models.FollowingCategory:
		_, err := s.categories.GetByID(ctx, id)
		return err
	case models.FollowingQuestion:
		_, err := s.questions.GetAuthorID(ctx, id)
		return err
	}
	return models.NewBadRequestError("invalid following type")
}
