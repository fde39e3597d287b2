package service

import (
	"context"

	"sangha/internal/models"
	"sangha/internal/repository"
)

type UserService struct {
	users      repository.UserRepository
	follows    repository.FollowRepository
	reputation *ReputationService
}

// UserProfile is the public view of a member.
type UserProfile struct {
	models.UserSummary
	Bio        string `json:"bio,omitempty"`
	Reputation int64  `json:"reputation"`
	Followers  int64  `json:"followers"`
}

func NewUserService(users repository.UserRepository, follows repository.FollowRepository, reputation *ReputationService) *UserService {
	return &UserService{users: users, follows: follows, reputation: reputation}
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (*UserProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rep, err := s.reputation.GetReputation(ctx, id)
	if err != nil {
		return nil, err
	}
	followers, err := s.follows.CountFollowers(ctx, models.FollowingUser, id)
	if err != nil {
		return nil, err
	}
	return &UserProfile{
		UserSummary: user.Summary(),
		Bio:         user.Bio,
		Reputation:  rep.Score,
		Followers:   followers,
	}, nil
}
