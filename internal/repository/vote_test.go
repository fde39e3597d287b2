package repository

import (
	"context"
	"testing"

	"sangha/internal/models"
	"sangha/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteRepository_AdjustCountsIsOneStatement(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVoteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "votes" SET "downvote_count"=downvote_count \+ \$1,"upvote_count"=upvote_count \+ \$2,"version"=version \+ 1.* WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.AdjustCounts(context.Background(), 9, 1, -1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepository_Ledger(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	voter := testutil.CreateUser(t, db, "voter")
	q := testutil.CreateQuestion(t, db, author)

	t.Run("GetOrCreateForUpdate is idempotent", func(t *testing.T) {
		first, err := repo.GetOrCreateForUpdate(ctx, models.VoteTargetQuestion, q.ID)
		require.NoError(t, err)
		second, err := repo.GetOrCreateForUpdate(ctx, models.VoteTargetQuestion, q.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		var count int64
		db.Model(&models.Vote{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("casts and counters", func(t *testing.T) {
		vote, err := repo.GetOrCreateForUpdate(ctx, models.VoteTargetQuestion, q.ID)
		require.NoError(t, err)

		cast, err := repo.FindCast(ctx, vote.ID, voter.ID)
		require.NoError(t, err)
		assert.Nil(t, cast)

		require.NoError(t, repo.AddCast(ctx, vote.ID, voter.ID, models.VoteUp))
		require.NoError(t, repo.AdjustCounts(ctx, vote.ID, 1, 0))

		summary, err := repo.Summary(ctx, models.VoteTargetQuestion, q.ID, voter.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VoteSummary{Upvotes: 1, HasUpvoted: true}, summary)

		anon, err := repo.Summary(ctx, models.VoteTargetQuestion, q.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, models.VoteSummary{Upvotes: 1}, anon)

		cast, err = repo.FindCast(ctx, vote.ID, voter.ID)
		require.NoError(t, err)
		require.NotNil(t, cast)
		require.NoError(t, repo.SwitchCast(ctx, cast.ID, models.VoteDown))
		require.NoError(t, repo.AdjustCounts(ctx, vote.ID, -1, 1))

		summary, err = repo.Summary(ctx, models.VoteTargetQuestion, q.ID, voter.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VoteSummary{Downvotes: 1, HasDownvoted: true}, summary)

		require.NoError(t, repo.RemoveCast(ctx, cast.ID))
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(repo.RemoveCast(ctx, cast.ID)))
	})

	t.Run("duplicate cast conflicts", func(t *testing.T) {
		vote, err := repo.GetOrCreateForUpdate(ctx, models.VoteTargetQuestion, q.ID)
		require.NoError(t, err)
		require.NoError(t, repo.AddCast(ctx, vote.ID, author.ID, models.VoteUp))
		err = repo.AddCast(ctx, vote.ID, author.ID, models.VoteDown)
		assert.Equal(t, models.CodeConflict, models.ErrorCode(err))
	})

	t.Run("Summaries fills untouched targets", func(t *testing.T) {
		summaries, err := repo.Summaries(ctx, models.VoteTargetAnswer, []uint{7, 8}, voter.ID)
		require.NoError(t, err)
		assert.Len(t, summaries, 2)
		assert.Equal(t, models.VoteSummary{}, summaries[7])
	})

	t.Run("DeleteForTargets removes rows and casts", func(t *testing.T) {
		require.NoError(t, repo.DeleteForTargets(ctx, models.VoteTargetQuestion, []uint{q.ID}))
		var votes, casts int64
		db.Model(&models.Vote{}).Count(&votes)
		db.Model(&models.VoteCast{}).Count(&casts)
		assert.Zero(t, votes)
		assert.Zero(t, casts)
	})
}
