package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sangha/internal/config"
	"sangha/internal/middleware"
	"sangha/internal/models"
	"sangha/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:5173"

// newLimitedApp runs the per-route Redis limiters for real, which APP_ENV=test bypasses.
func newLimitedApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv("APP_ENV", "production")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{JWTSecret: testSecret, Env: "test", AllowedOrigins: testOrigin, FanoutBatchSize: 100}
	db := testutil.NewSQLiteDB(t)
	srv, err := NewServerWithDeps(cfg, db, rdb)
	require.NoError(t, err)
	return &testApp{srv: srv, app: srv.NewApp(), db: db}
}

func (a *testApp) fromBrowser(t *testing.T, method, path string, userID uint) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Origin", testOrigin)
	if userID != 0 {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionToken(t, userID)})
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestVoteLimiter_RejectsWithCORSHeaders(t *testing.T) {
	a := newLimitedApp(t)
	asker := testutil.CreateUser(t, a.db, "asker")
	voter := testutil.CreateUser(t, a.db, "voter")
	q := testutil.CreateQuestion(t, a.db, asker)
	upvote := fmt.Sprintf("/api/questions/%d/upvote", q.ID)

	// An even number of toggles leaves the voter with no vote.
	for i := 0; i < 60; i++ {
		resp := a.fromBrowser(t, http.MethodPost, upvote, voter.ID)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, "vote %d", i+1)
	}

	resp := a.fromBrowser(t, http.MethodPost, upvote, voter.ID)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, testOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

	var summary models.VoteSummary
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, fmt.Sprintf("/api/questions/%d/votes", q.ID), voter.ID, nil, &summary))
	assert.Zero(t, summary.Upvotes)
	assert.False(t, summary.HasUpvoted)

	// The limiter is per user, so another voter is unaffected.
	other := testutil.CreateUser(t, a.db, "other")
	resp = a.fromBrowser(t, http.MethodPost, upvote, other.ID)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, int64(1), summary.Upvotes)
}

func TestVoteLimiter_PreflightAndFollowBucketUnaffected(t *testing.T) {
	a := newLimitedApp(t)
	asker := testutil.CreateUser(t, a.db, "asker")
	voter := testutil.CreateUser(t, a.db, "voter")
	q := testutil.CreateQuestion(t, a.db, asker)
	upvote := fmt.Sprintf("/api/questions/%d/upvote", q.ID)

	for i := 0; i < 61; i++ {
		resp := a.fromBrowser(t, http.MethodPost, upvote, voter.ID)
		_ = resp.Body.Close()
	}

	preflight := httptest.NewRequest(http.MethodOptions, upvote, nil)
	preflight.Header.Set("Origin", testOrigin)
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	preflight.Header.Set("Access-Control-Request-Headers", "content-type")
	resp, err := a.app.Test(preflight, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, testOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)

	follow := a.fromBrowser(t, http.MethodPost, fmt.Sprintf("/api/questions/%d/follow", q.ID), voter.ID)
	defer func() { _ = follow.Body.Close() }()
	assert.Equal(t, http.StatusCreated, follow.StatusCode)
}
