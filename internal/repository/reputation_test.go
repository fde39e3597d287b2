package repository

import (
	"context"
	"sync"
	"testing"

	"sangha/internal/models"
	"sangha/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReputationRepository_Apply(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewReputationRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "rep")

	rep, err := repo.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, rep, "row is created lazily")

	score, err := repo.Apply(ctx, u.ID, models.ActionAskQuestion, 10, false)
	require.NoError(t, err)
	assert.Equal(t, int64(10), score)

	score, err = repo.Apply(ctx, u.ID, models.ActionDownvoteQuestion, -1, false)
	require.NoError(t, err)
	assert.Equal(t, int64(9), score)

	score, err = repo.Apply(ctx, u.ID, models.ActionAskQuestion, -10, true)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), score, "scores are not clamped")

	rep, err = repo.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, int64(-1), rep.Score)
	assert.Equal(t, int64(3), rep.Version)

	events, err := repo.Events(ctx, u.ID, Page{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.True(t, events[0].Undo)
}

func TestReputationRepository_ConcurrentApply(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewReputationRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "busy")

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Apply(ctx, u.ID, models.ActionUpvoteAnswer, 1, false)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rep, err := repo.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), rep.Score)
}

func TestReputationRepository_Top(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewReputationRepository(db)
	ctx := context.Background()

	a := testutil.CreateUser(t, db, "a")
	b := testutil.CreateUser(t, db, "b")
	_, err := repo.Apply(ctx, a.ID, models.ActionPostAnswer, 10, false)
	require.NoError(t, err)
	_, err = repo.Apply(ctx, b.ID, models.ActionUpvoteAnswer, 1, false)
	require.NoError(t, err)

	top, err := repo.Top(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, a.ID, top[0].AuthorID)
}
