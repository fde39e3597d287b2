package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sangha/internal/config"
	"sangha/internal/middleware"
	"sangha/internal/models"
	"sangha/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.User), args.Error(1)
}

func newAuthApp(repo *MockUserRepository) *fiber.App {
	cfg := &config.Config{JWTSecret: testSecret}
	middleware.InitMiddleware(cfg)
	s := &Server{config: cfg, authService: service.NewAuthService(repo, testSecret)}

	app := fiber.New()
	app.Post("/signup", s.Signup)
	app.Post("/login", s.Login)
	app.Post("/logout", s.Logout)
	app.Get("/me", middleware.AuthRequired, s.Me)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		mockSetup      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: signupRequest{Username: "quietmind", Email: "Quiet@Example.com", Password: "Breathe-In-2024!"},
			mockSetup: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Username == "quietmind" && u.Email == "quiet@example.com"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*models.User).ID = 7
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate",
			body: signupRequest{Username: "quietmind", Email: "quiet@example.com", Password: "Breathe-In-2024!"},
			mockSetup: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(models.NewConflictError("User already exists"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Weak password",
			body:           signupRequest{Username: "quietmind", Email: "quiet@example.com", Password: "short"},
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed body",
			body:           "not an object",
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.mockSetup(repo)
			app := newAuthApp(repo)

			resp := postJSON(t, app, "/signup", tt.body)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			repo.AssertExpectations(t)

			cookie := sessionCookie(resp)
			if tt.expectedStatus != http.StatusCreated {
				assert.Nil(t, cookie)
				return
			}
			require.NotNil(t, cookie)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

			userID, err := middleware.ParseUserID(testSecret, cookie.Value)
			require.NoError(t, err)
			assert.Equal(t, uint(7), userID)
		})
	}
}

func TestLoginMeLogout(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Breathe-In-2024!"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 3, Username: "quietmind", Email: "quiet@example.com", Password: string(hash)}

	repo := new(MockUserRepository)
	repo.On("GetByLogin", mock.Anything, "quietmind").Return(user, nil)
	repo.On("GetByLogin", mock.Anything, "ghost").Return(nil, nil)
	repo.On("GetByID", mock.Anything, uint(3)).Return(user, nil)
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/login", loginRequest{Login: "quietmind", Password: "wrong-password"})
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app, "/login", loginRequest{Login: "ghost", Password: "Breathe-In-2024!"})
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app, "/login", loginRequest{Email: "quietmind", Password: "Breathe-In-2024!"})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	meReq := httptest.NewRequest(http.MethodGet, "/me", nil)
	meReq.AddCookie(cookie)
	meResp, err := app.Test(meReq, -1)
	require.NoError(t, err)
	defer func() { _ = meResp.Body.Close() }()
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	var me models.User
	require.NoError(t, json.NewDecoder(meResp.Body).Decode(&me))
	assert.Equal(t, "quietmind", me.Username)
	assert.Empty(t, me.Password)

	bearer := httptest.NewRequest(http.MethodGet, "/me", nil)
	bearer.Header.Set("Authorization", "Bearer "+cookie.Value)
	bearerResp, err := app.Test(bearer, -1)
	require.NoError(t, err)
	_ = bearerResp.Body.Close()
	assert.Equal(t, http.StatusOK, bearerResp.StatusCode)

	anon, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil), -1)
	require.NoError(t, err)
	_ = anon.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, anon.StatusCode)

	out := postJSON(t, app, "/logout", nil)
	defer func() { _ = out.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, out.StatusCode)
	cleared := sessionCookie(out)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.HttpOnly)
}
