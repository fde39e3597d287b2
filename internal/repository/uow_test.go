package repository

import (
	"context"
	"errors"
	"testing"

	"sangha/internal/models"
	"sangha/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "txn")

	boom := errors.New("boom")
	err := uow.Do(ctx, func(r *Repositories) error {
		if _, err := r.Reputations.Apply(ctx, u.ID, models.ActionAskQuestion, 10, false); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	rep, err := NewReputationRepository(db).Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, rep)

	err = uow.Do(ctx, func(r *Repositories) error {
		_, err := r.Reputations.Apply(ctx, u.ID, models.ActionAskQuestion, 10, false)
		return err
	})
	require.NoError(t, err)

	rep, err = NewReputationRepository(db).Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, int64(10), rep.Score)
}
