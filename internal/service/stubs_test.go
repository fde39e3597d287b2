package service

import (
	"context"

	"sangha/internal/models"
	"sangha/internal/repository"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByLoginFn func(context.Context, string) (*models.User, error)
	existsFn     func(context.Context, uint) (bool, error)
	createFn     func(context.Context, *models.User) error
	listByIDsFn  func(context.Context, []uint) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.getByLoginFn(ctx, login)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) ListByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.listByIDsFn(ctx, ids)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByLoginFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		existsFn:     func(_ context.Context, _ uint) (bool, error) { return true, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		listByIDsFn:  func(_ context.Context, _ []uint) ([]models.User, error) { return nil, nil },
	}
}

// reputationRepoStub is a stub for repository.ReputationRepository.
type reputationRepoStub struct {
	applyFn  func(context.Context, uint, models.ReputationAction, int64, bool) (int64, error)
	getFn    func(context.Context, uint) (*models.Reputation, error)
	topFn    func(context.Context, int) ([]models.Reputation, error)
	eventsFn func(context.Context, uint, repository.Page) ([]models.ReputationEvent, error)
}

func (s *reputationRepoStub) Apply(ctx context.Context, authorID uint, action models.ReputationAction, delta int64, undo bool) (int64, error) {
	return s.applyFn(ctx, authorID, action, delta, undo)
}
func (s *reputationRepoStub) Get(ctx context.Context, authorID uint) (*models.Reputation, error) {
	return s.getFn(ctx, authorID)
}
func (s *reputationRepoStub) Top(ctx context.Context, limit int) ([]models.Reputation, error) {
	return s.topFn(ctx, limit)
}
func (s *reputationRepoStub) Events(ctx context.Context, authorID uint, page repository.Page) ([]models.ReputationEvent, error) {
	return s.eventsFn(ctx, authorID, page)
}

// memoryReputationRepo keeps scores in a map.
func memoryReputationRepo() *reputationRepoStub {
	scores := map[uint]int64{}
	return &reputationRepoStub{
		applyFn: func(_ context.Context, id uint, _ models.ReputationAction, delta int64, _ bool) (int64, error) {
			scores[id] += delta
			return scores[id], nil
		},
		getFn: func(_ context.Context, id uint) (*models.Reputation, error) {
			score, ok := scores[id]
			if !ok {
				return nil, nil
			}
			return &models.Reputation{AuthorID: id, Score: score}, nil
		},
		topFn:    func(_ context.Context, _ int) ([]models.Reputation, error) { return nil, nil },
		eventsFn: func(_ context.Context, _ uint, _ repository.Page) ([]models.ReputationEvent, error) { return nil, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn          func(context.Context, *models.Follow) error
	deleteFn          func(context.Context, uint, models.FollowingType, uint) (bool, error)
	existsFn          func(context.Context, uint, models.FollowingType, uint) (bool, error)
	followerIDsFn     func(context.Context, models.FollowingType, uint, uint, int) ([]uint, error)
	listFollowersFn   func(context.Context, models.FollowingType, uint, repository.Page) ([]models.User, error)
	listFollowingFn   func(context.Context, uint, models.FollowingType, repository.Page) ([]models.Follow, error)
	countFollowersFn  func(context.Context, models.FollowingType, uint) (int64, error)
	deleteTargetingFn func(context.Context, models.FollowingType, []uint) error
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID uint, ft models.FollowingType, id uint) (bool, error) {
	return s.deleteFn(ctx, followerID, ft, id)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID uint, ft models.FollowingType, id uint) (bool, error) {
	return s.existsFn(ctx, followerID, ft, id)
}
func (s *followRepoStub) FollowerIDs(ctx context.Context, ft models.FollowingType, id, afterID uint, limit int) ([]uint, error) {
	return s.followerIDsFn(ctx, ft, id, afterID, limit)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, ft models.FollowingType, id uint, page repository.Page) ([]models.User, error) {
	return s.listFollowersFn(ctx, ft, id, page)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, followerID uint, ft models.FollowingType, page repository.Page) ([]models.Follow, error) {
	return s.listFollowingFn(ctx, followerID, ft, page)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, ft models.FollowingType, id uint) (int64, error) {
	return s.countFollowersFn(ctx, ft, id)
}
func (s *followRepoStub) DeleteTargeting(ctx context.Context, ft models.FollowingType, ids []uint) error {
	return s.deleteTargetingFn(ctx, ft, ids)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:          func(_ context.Context, _ *models.Follow) error { return nil },
		deleteFn:          func(_ context.Context, _ uint, _ models.FollowingType, _ uint) (bool, error) { return true, nil },
		existsFn:          func(_ context.Context, _ uint, _ models.FollowingType, _ uint) (bool, error) { return false, nil },
		followerIDsFn:     func(_ context.Context, _ models.FollowingType, _, _ uint, _ int) ([]uint, error) { return nil, nil },
		listFollowersFn:   func(_ context.Context, _ models.FollowingType, _ uint, _ repository.Page) ([]models.User, error) { return nil, nil },
		listFollowingFn:   func(_ context.Context, _ uint, _ models.FollowingType, _ repository.Page) ([]models.Follow, error) { return nil, nil },
		countFollowersFn:  func(_ context.Context, _ models.FollowingType, _ uint) (int64, error) { return 0, nil },
		deleteTargetingFn: func(_ context.Context, _ models.FollowingType, _ []uint) error { return nil },
	}
}
