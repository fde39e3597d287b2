package seed

import (
	"context"
	"testing"

	"sangha/internal/models"
	"sangha/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadCatalogue(t *testing.T) {
	entries, err := BuiltInCategories()
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "categories: ["},
		{"missing name", "categories:\n  - slug: calm\n"},
		{"bad slug", "categories:\n  - name: Calm\n    slug: Not A Slug\n"},
		{"reserved slug", "categories:\n  - name: Admin\n    slug: admin\n"},
		{"duplicate slug", "categories:\n  - name: A\n    slug: calm\n  - name: B\n    slug: calm\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalogue([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestCategories_Idempotent(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	first, err := Categories(ctx, db)
	require.NoError(t, err)
	second, err := Categories(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(first)), count)
}

func TestRun(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	opts := Options{
		Users:              6,
		Questions:          4,
		AnswersPerQuestion: 2,
		FollowsPerUser:     2,
		VotesPerQuestion:   2,
		Seed:               42,
		BcryptCost:         bcrypt.MinCost,
	}
	report, err := Run(ctx, db, opts)
	require.NoError(t, err)
	assert.Equal(t, 6, report.Users)
	assert.Equal(t, 4, report.Questions)
	assert.Positive(t, report.Follows)

	// Every question earned its author ten points, so the ledger can't be empty.
	var events int64
	require.NoError(t, db.Model(&models.ReputationEvent{}).Count(&events).Error)
	assert.GreaterOrEqual(t, events, int64(report.Questions+report.Answers))

	var answers int64
	require.NoError(t, db.Model(&models.Answer{}).Count(&answers).Error)
	assert.Equal(t, int64(report.Answers), answers)

	opts.Clean = true
	again, err := Run(ctx, db, opts)
	require.NoError(t, err)
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(again.Users), users)
}
