package server

import (
	"fmt"
	"net/http"
	"testing"

	"sangha/internal/config"
	"sangha/internal/models"
	"sangha/internal/service"
	"sangha/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskFlow(t *testing.T) {
	a := newTestApp(t)
	asker := testutil.CreateUser(t, a.db, "asker")
	helper := testutil.CreateUser(t, a.db, "helper")
	fan := testutil.CreateUser(t, a.db, "fan")
	meditation := testutil.CreateCategory(t, a.db, "meditation")

	// Follow graph.
	catFollow := fmt.Sprintf("/api/categories/%d/follow", meditation.ID)
	var edge models.Follow
	require.Equal(t, http.StatusCreated, a.do(t, http.MethodPost, catFollow, fan.ID, nil, &edge))
	assert.Equal(t, models.FollowingCategory, edge.FollowingType)
	assert.Equal(t, http.StatusConflict, a.do(t, http.MethodPost, catFollow, fan.ID, nil, nil))
	require.Equal(t, http.StatusCreated,
		a.do(t, http.MethodPost, fmt.Sprintf("/api/follow/%d/follow", asker.ID), helper.ID, nil, nil))
	assert.Equal(t, http.StatusBadRequest,
		a.do(t, http.MethodPost, fmt.Sprintf("/api/follow/%d/follow", asker.ID), asker.ID, nil, nil))

	// Asking.
	ask := createQuestionRequest{
		Title:       "How long should a beginner sit?",
		Body:        "Ten minutes feels endless.",
		CategoryIDs: []uint{meditation.ID},
	}
	assert.Equal(t, http.StatusUnauthorized, a.do(t, http.MethodPost, "/api/questions", 0, ask, nil))
	assert.Equal(t, http.StatusBadRequest,
		a.do(t, http.MethodPost, "/api/questions", asker.ID, createQuestionRequest{Body: "no title"}, nil))

	var question models.Question
	require.Equal(t, http.StatusCreated, a.do(t, http.MethodPost, "/api/questions", asker.ID, ask, &question))
	require.NotZero(t, question.ID)
	qPath := fmt.Sprintf("/api/questions/%d", question.ID)

	var inbox []models.NotificationView
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/notifications", fan.ID, nil, &inbox))
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotificationTopicNewQuestion, inbox[0].Type)
	require.NotNil(t, inbox[0].Category)
	assert.Equal(t, "meditation", inbox[0].Category.Slug)

	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/notifications", helper.ID, nil, &inbox))
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotificationUserAskedQuestion, inbox[0].Type)
	assert.Equal(t, asker.ID, inbox[0].Sender.ID)

	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/notifications", asker.ID, nil, &inbox))
	assert.Empty(t, inbox)

	// Answering notifies question followers but never the answerer.
	require.Equal(t, http.StatusCreated, a.do(t, http.MethodPost, qPath+"/follow", fan.ID, nil, nil))
	require.Equal(t, http.StatusCreated, a.do(t, http.MethodPost, qPath+"/follow", helper.ID, nil, nil))

	var answer models.Answer
	require.Equal(t, http.StatusCreated,
		a.do(t, http.MethodPost, qPath+"/answers", helper.ID, createAnswerRequest{Body: "Start with five."}, &answer))
	assert.Equal(t, question.ID, answer.QuestionID)

	var unread struct {
		Count int64 `json:"count"`
	}
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/notifications/unread-count", fan.ID, nil, &unread))
	assert.Equal(t, int64(2), unread.Count)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/notifications/unread-count", helper.ID, nil, &unread))
	assert.Equal(t, int64(1), unread.Count)

	// Voting toggles.
	var summary models.VoteSummary
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, qPath+"/upvote", helper.ID, nil, &summary))
	assert.Equal(t, int64(1), summary.Upvotes)
	assert.True(t, summary.HasUpvoted)

	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, qPath+"/downvote", fan.ID, nil, &summary))
	assert.Equal(t, int64(1), summary.Upvotes)
	assert.Equal(t, int64(1), summary.Downvotes)
	assert.True(t, summary.HasDownvoted)
	assert.False(t, summary.HasUpvoted)

	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, qPath+"/downvote", fan.ID, nil, &summary))
	assert.Equal(t, int64(0), summary.Downvotes)
	assert.False(t, summary.HasDownvoted)

	assert.Equal(t, http.StatusForbidden, a.do(t, http.MethodPost, qPath+"/upvote", asker.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodPost, "/api/questions/9999/upvote", fan.ID, nil, nil))

	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, qPath+"/votes", 0, nil, &summary))
	assert.Equal(t, int64(1), summary.Upvotes)
	assert.False(t, summary.HasUpvoted)

	ansPath := fmt.Sprintf("/api/answers/%d", answer.ID)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, ansPath+"/upvote", asker.ID, nil, &summary))
	assert.Equal(t, int64(1), summary.Upvotes)

	// Reputation: ask +10, upvote +1; answer +10, upvote +1.
	var rep service.ReputationView
	require.Equal(t, http.StatusOK,
		a.do(t, http.MethodGet, fmt.Sprintf("/api/reputation/%d", asker.ID), 0, nil, &rep))
	assert.Equal(t, int64(11), rep.Score)
	require.Equal(t, http.StatusOK,
		a.do(t, http.MethodGet, fmt.Sprintf("/api/reputation/%d", helper.ID), 0, nil, &rep))
	assert.Equal(t, int64(11), rep.Score)
	require.Equal(t, http.StatusOK,
		a.do(t, http.MethodGet, fmt.Sprintf("/api/reputation/%d", fan.ID), 0, nil, &rep))
	assert.Equal(t, int64(0), rep.Score)

	var history []models.ReputationEvent
	require.Equal(t, http.StatusOK,
		a.do(t, http.MethodGet, fmt.Sprintf("/api/reputation/%d/history", asker.ID), 0, nil, &history))
	// ask, helper's upvote, fan's downvote and its withdrawal
	assert.Len(t, history, 4)

	// Reads are personalised when a session is present.
	var detail models.Question
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, qPath, helper.ID, nil, &detail))
	require.Len(t, detail.Answers, 1)
	require.NotNil(t, detail.Votes)
	assert.True(t, detail.Votes.HasUpvoted)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, qPath, 0, nil, &detail))
	assert.False(t, detail.Votes.HasUpvoted)

	var listed []models.Question
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/questions?category=meditation", 0, nil, &listed))
	assert.Len(t, listed, 1)

	// Inbox housekeeping.
	var marked struct {
		Updated int64 `json:"updated"`
	}
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPatch, "/api/notifications/read-all", fan.ID, nil, &marked))
	assert.Equal(t, int64(2), marked.Updated)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/notifications/unread-count", fan.ID, nil, &unread))
	assert.Equal(t, int64(0), unread.Count)

	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/notifications?unread=true", helper.ID, nil, &inbox))
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotificationUserAskedQuestion, inbox[0].Type)
	assert.Equal(t, http.StatusNotFound,
		a.do(t, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", inbox[0].ID), fan.ID, nil, nil))
	assert.Equal(t, http.StatusNoContent,
		a.do(t, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", inbox[0].ID), helper.ID, nil, nil))

	// Unfollowing.
	assert.Equal(t, http.StatusNoContent, a.do(t, http.MethodPost, qPath+"/unfollow", fan.ID, nil, nil))
	assert.Equal(t, http.StatusBadRequest, a.do(t, http.MethodPost, qPath+"/unfollow", fan.ID, nil, nil))

	// Deleting.
	assert.Equal(t, http.StatusForbidden, a.do(t, http.MethodDelete, qPath, helper.ID, nil, nil))
	assert.Equal(t, http.StatusNoContent, a.do(t, http.MethodDelete, qPath, asker.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodGet, qPath, 0, nil, nil))
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodDelete, qPath, asker.ID, nil, nil))
}

func TestDeleteAnswer(t *testing.T) {
	a := newTestApp(t)
	asker := testutil.CreateUser(t, a.db, "asker")
	helper := testutil.CreateUser(t, a.db, "helper")
	q := testutil.CreateQuestion(t, a.db, asker)
	qPath := fmt.Sprintf("/api/questions/%d", q.ID)

	var answer models.Answer
	require.Equal(t, http.StatusCreated,
		a.do(t, http.MethodPost, qPath+"/answers", helper.ID, createAnswerRequest{Body: "Breathe out longer than in."}, &answer))
	assert.Equal(t, http.StatusBadRequest,
		a.do(t, http.MethodPost, qPath+"/answers", helper.ID, createAnswerRequest{Body: "   "}, nil))
	assert.Equal(t, http.StatusNotFound,
		a.do(t, http.MethodPost, "/api/questions/9999/answers", helper.ID, createAnswerRequest{Body: "hi"}, nil))

	ansPath := fmt.Sprintf("/api/answers/%d", answer.ID)
	assert.Equal(t, http.StatusForbidden, a.do(t, http.MethodDelete, ansPath, asker.ID, nil, nil))
	assert.Equal(t, http.StatusNoContent, a.do(t, http.MethodDelete, ansPath, helper.ID, nil, nil))

	var rep service.ReputationView
	require.Equal(t, http.StatusOK,
		a.do(t, http.MethodGet, fmt.Sprintf("/api/reputation/%d", helper.ID), 0, nil, &rep))
	assert.Equal(t, int64(0), rep.Score)
}

func TestCategoryHandlers(t *testing.T) {
	a := newTestApp(t)
	member := testutil.CreateUser(t, a.db, "member")
	admin := testutil.CreateUser(t, a.db, "admin")
	require.NoError(t, a.db.Model(admin).Update("is_admin", true).Error)

	req := createCategoryRequest{Name: "Walking Meditation", Description: "Practice in motion"}
	assert.Equal(t, http.StatusForbidden, a.do(t, http.MethodPost, "/api/categories", member.ID, req, nil))

	var created models.Category
	require.Equal(t, http.StatusCreated, a.do(t, http.MethodPost, "/api/categories", admin.ID, req, &created))
	assert.Equal(t, "walking-meditation", created.Slug)
	assert.Equal(t, http.StatusConflict, a.do(t, http.MethodPost, "/api/categories", admin.ID, req, nil))

	var got models.Category
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/categories/walking-meditation", 0, nil, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodGet, "/api/categories/missing", 0, nil, nil))

	var all []models.Category
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/categories", 0, nil, &all))
	assert.Len(t, all, 1)
}

func TestUserHandlers(t *testing.T) {
	a := newTestApp(t)
	alice := testutil.CreateUser(t, a.db, "alice")
	bob := testutil.CreateUser(t, a.db, "bob")
	cat := testutil.CreateCategory(t, a.db, "yoga")
	testutil.CreateFollow(t, a.db, bob, models.FollowingUser, alice.ID)
	testutil.CreateFollow(t, a.db, bob, models.FollowingCategory, cat.ID)

	var profile service.UserProfile
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", alice.ID), 0, nil, &profile))
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, int64(1), profile.Followers)
	assert.Equal(t, int64(0), profile.Reputation)

	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodGet, "/api/users/9999", 0, nil, nil))
	assert.Equal(t, http.StatusBadRequest, a.do(t, http.MethodGet, "/api/users/abc", 0, nil, nil))

	var followers []models.UserSummary
	require.Equal(t, http.StatusOK,
		a.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/followers", alice.ID), 0, nil, &followers))
	require.Len(t, followers, 1)
	assert.Equal(t, bob.ID, followers[0].ID)

	var following []models.Follow
	require.Equal(t, http.StatusOK,
		a.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/following", bob.ID), 0, nil, &following))
	assert.Len(t, following, 2)
	require.Equal(t, http.StatusOK,
		a.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/following?type=Category", bob.ID), 0, nil, &following))
	require.Len(t, following, 1)
	assert.Equal(t, cat.ID, following[0].FollowingID)
}

func TestGetLeaderboard_FeatureFlag(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		a := newTestApp(t)
		asker := testutil.CreateUser(t, a.db, "asker")
		require.Equal(t, http.StatusCreated, a.do(t, http.MethodPost, "/api/questions", asker.ID,
			createQuestionRequest{Title: "Where do I start?", Body: "Total beginner."}, nil))

		var entries []service.LeaderboardEntry
		require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/reputation/leaderboard", 0, nil, &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, asker.ID, entries[0].Author.ID)
		assert.Equal(t, int64(10), entries[0].Score)
	})

	t.Run("disabled", func(t *testing.T) {
		a := newTestApp(t, func(cfg *config.Config) { cfg.FeatureFlags = "" })
		assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodGet, "/api/reputation/leaderboard", 0, nil, nil))
	})
}

func TestGetFeatureFlags(t *testing.T) {
	a := newTestApp(t)

	var body struct {
		Raw       map[string]string `json:"raw"`
		Evaluated map[string]bool   `json:"evaluated"`
	}
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/feature-flags", 0, nil, &body))
	assert.Equal(t, "on", body.Raw["reputation_leaderboard"])
	assert.True(t, body.Evaluated["reputation_leaderboard"])
}
