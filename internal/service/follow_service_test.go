package service

import (
	"context"
	"errors"
	"testing"

	"sangha/internal/models"
	"sangha/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowServiceWithStubs(follows *followRepoStub, users *userRepoStub) *FollowService {
	return NewFollowService(follows, users, nil, nil)
}

func TestFollowService_FollowValidation(t *testing.T) {
	ctx := context.Background()
	users := noopUserRepo()
	users.existsFn = func(_ context.Context, id uint) (bool, error) { return id != 404, nil }

	tests := []struct {
		name     string
		ft       models.FollowingType
		target   uint
		existing bool
		code     string
	}{
		{"invalid type", "Planet", 2, false, models.CodeBadRequest},
		{"self follow", models.FollowingUser, 1, false, models.CodeBadRequest},
		{"missing user", models.FollowingUser, 404, false, models.CodeNotFound},
		{"duplicate", models.FollowingUser, 2, true, models.CodeConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			follows := noopFollowRepo()
			created := false
			follows.existsFn = func(_ context.Context, _ uint, _ models.FollowingType, _ uint) (bool, error) { return tt.existing, nil }
			follows.createFn = func(_ context.Context, _ *models.Follow) error { created = true; return nil }

			_, err := newFollowServiceWithStubs(follows, users).Follow(ctx, 1, tt.ft, tt.target)
			assert.Equal(t, tt.code, models.ErrorCode(err))
			assert.False(t, created, "no row is added")
		})
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	ctx := context.Background()
	follows := noopFollowRepo()
	follows.deleteFn = func(_ context.Context, _ uint, _ models.FollowingType, _ uint) (bool, error) { return false, nil }
	svc := newFollowServiceWithStubs(follows, noopUserRepo())

	err := svc.Unfollow(ctx, 1, models.FollowingUser, 2)
	assert.Equal(t, models.CodeBadRequest, models.ErrorCode(err))

	follows.deleteFn = func(_ context.Context, _ uint, _ models.FollowingType, _ uint) (bool, error) { return true, nil }
	assert.NoError(t, svc.Unfollow(ctx, 1, models.FollowingUser, 2))
}

func TestFollowService_EachFollowerBatch(t *testing.T) {
	ctx := context.Background()
	all := []uint{3, 5, 8, 13, 21}
	follows := noopFollowRepo()
	follows.followerIDsFn = func(_ context.Context, _ models.FollowingType, _ uint, after uint, limit int) ([]uint, error) {
		var page []uint
		for _, id := range all {
			if id > after && len(page) < limit {
				page = append(page, id)
			}
		}
		return page, nil
	}
	svc := newFollowServiceWithStubs(follows, noopUserRepo())

	var batches [][]uint
	err := svc.EachFollowerBatch(ctx, models.FollowingQuestion, 1, 2, func(ids []uint) error {
		batches = append(batches, ids)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, [][]uint{{3, 5}, {8, 13}, {21}}, batches)

	stop := errors.New("stop")
	calls := 0
	err = svc.EachFollowerBatch(ctx, models.FollowingQuestion, 1, 2, func(_ []uint) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestFollowService_Integration(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	x := testutil.CreateUser(t, s.db, "x")
	a := testutil.CreateUser(t, s.db, "a")
	cat := testutil.CreateCategory(t, s.db, "zen")
	q := testutil.CreateQuestion(t, s.db, a, cat)

	_, err := s.follows.Follow(ctx, x.ID, models.FollowingQuestion, q.ID)
	require.NoError(t, err)
	_, err = s.follows.Follow(ctx, x.ID, models.FollowingQuestion, q.ID)
	assert.Equal(t, models.CodeConflict, models.ErrorCode(err))

	_, err = s.follows.Follow(ctx, x.ID, models.FollowingCategory, cat.ID)
	require.NoError(t, err)
	_, err = s.follows.Follow(ctx, x.ID, models.FollowingCategory, 999)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	ok, err := s.follows.IsFollowing(ctx, x.ID, models.FollowingCategory, cat.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	followers, err := s.follows.Followers(ctx, models.FollowingQuestion, q.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, x.ID, followers[0].ID)

	following, err := s.follows.Following(ctx, x.ID, "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, following, 2)

	require.NoError(t, s.follows.Unfollow(ctx, x.ID, models.FollowingQuestion, q.ID))
	err = s.follows.Unfollow(ctx, x.ID, models.FollowingQuestion, q.ID)
	assert.Equal(t, models.CodeBadRequest, models.ErrorCode(err))
}
