package service

import (
	"context"
	"strings"
	"testing"

	"sangha/internal/models"
	"sangha/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_CreateValidation(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, s.db, "author")

	tests := []struct {
		name string
		in   CreateQuestionInput
		code string
	}{
		{"missing title", CreateQuestionInput{AuthorID: author.ID, Body: "b"}, models.CodeValidation},
		{"missing body", CreateQuestionInput{AuthorID: author.ID, Title: "t"}, models.CodeValidation},
		{"title too long", CreateQuestionInput{AuthorID: author.ID, Title: strings.Repeat("x", 301), Body: "b"}, models.CodeValidation},
		{"unknown category", CreateQuestionInput{AuthorID: author.ID, Title: "t", Body: "b", CategoryIDs: []uint{42}}, models.CodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.questions.Create(ctx, tt.in)
			assert.Equal(t, tt.code, models.ErrorCode(err))
		})
	}
	assert.Zero(t, s.score(t, author.ID))
}

func TestQuestionService_CreateCreditsAndNotifies(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, s.db, "author")
	fan := testutil.CreateUser(t, s.db, "fan")
	cat := testutil.CreateCategory(t, s.db, "pranayama")
	testutil.CreateFollow(t, s.db, fan, models.FollowingCategory, cat.ID)

	q, err := s.questions.Create(ctx, CreateQuestionInput{
		AuthorID:    author.ID,
		Title:       "  Box breathing?  ",
		Body:        "How long per side?",
		CategoryIDs: []uint{cat.ID, cat.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Box breathing?", q.Title)
	assert.Len(t, q.Categories, 1)
	assert.Equal(t, "author", q.Author.Username)
	assert.Equal(t, int64(10), s.score(t, author.ID))

	inbox := s.inbox(t, fan.ID)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotificationTopicNewQuestion, inbox[0].Type)
}

func TestQuestionService_GetEnrichesVotes(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, s.db, "author")
	voter := testutil.CreateUser(t, s.db, "voter")
	q := testutil.CreateQuestion(t, s.db, author)
	a := testutil.CreateAnswer(t, s.db, q, author)

	_, err := s.votes.HandleVote(ctx, VoteInput{TargetType: models.VoteTargetAnswer, TargetID: a.ID, UserID: voter.ID, Direction: models.VoteUp})
	require.NoError(t, err)

	got, err := s.questions.Get(ctx, q.ID, voter.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Votes)
	assert.Equal(t, models.VoteSummary{}, *got.Votes)
	require.Len(t, got.Answers, 1)
	require.NotNil(t, got.Answers[0].Votes)
	assert.True(t, got.Answers[0].Votes.HasUpvoted)

	list, err := s.questions.List(ctx, ListQuestionsInput{ViewerID: voter.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].AnswersCount)
}

func TestQuestionService_DeleteCascades(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	asker := testutil.CreateUser(t, s.db, "asker")
	helper := testutil.CreateUser(t, s.db, "helper")
	voter := testutil.CreateUser(t, s.db, "voter")

	q, err := s.questions.Create(ctx, CreateQuestionInput{AuthorID: asker.ID, Title: "Q", Body: "B"})
	require.NoError(t, err)
	_, err = s.answers.Create(ctx, CreateAnswerInput{QuestionID: q.ID, AuthorID: helper.ID, Body: "A"})
	require.NoError(t, err)
	_, err = s.votes.HandleVote(ctx, VoteInput{TargetType: models.VoteTargetQuestion, TargetID: q.ID, UserID: voter.ID, Direction: models.VoteUp})
	require.NoError(t, err)
	_, err = s.follows.Follow(ctx, voter.ID, models.FollowingQuestion, q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), s.score(t, asker.ID))
	assert.Equal(t, int64(10), s.score(t, helper.ID))

	err = s.questions.Delete(ctx, helper.ID, q.ID)
	assert.Equal(t, models.CodeForbidden, models.ErrorCode(err))

	require.NoError(t, s.questions.Delete(ctx, asker.ID, q.ID))
	assert.Equal(t, int64(1), s.score(t, asker.ID))
	assert.Equal(t, int64(0), s.score(t, helper.ID))

	for _, model := range []any{&models.Question{}, &models.Answer{}, &models.Vote{}, &models.VoteCast{}, &models.Follow{}, &models.Notification{}} {
		var count int64
		require.NoError(t, s.db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T rows remain", model)
	}

	err = s.questions.Delete(ctx, asker.ID, q.ID)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestAnswerService_CreateAndDelete(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	asker := testutil.CreateUser(t, s.db, "asker")
	helper := testutil.CreateUser(t, s.db, "helper")
	q := testutil.CreateQuestion(t, s.db, asker)
	testutil.CreateFollow(t, s.db, asker, models.FollowingQuestion, q.ID)

	_, err := s.answers.Create(ctx, CreateAnswerInput{QuestionID: 999, AuthorID: helper.ID, Body: "x"})
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	_, err = s.answers.Create(ctx, CreateAnswerInput{QuestionID: q.ID, AuthorID: helper.ID, Body: "   "})
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))

	a, err := s.answers.Create(ctx, CreateAnswerInput{QuestionID: q.ID, AuthorID: helper.ID, Body: "Try it"})
	require.NoError(t, err)
	assert.Equal(t, "helper", a.Author.Username)
	assert.Equal(t, int64(10), s.score(t, helper.ID))

	inbox := s.inbox(t, asker.ID)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotificationNewAnswer, inbox[0].Type)

	err = s.answers.Delete(ctx, asker.ID, a.ID)
	assert.Equal(t, models.CodeForbidden, models.ErrorCode(err))

	require.NoError(t, s.answers.Delete(ctx, helper.ID, a.ID))
	assert.Equal(t, int64(0), s.score(t, helper.ID))
}
