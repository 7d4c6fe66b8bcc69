package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OngTK/WeWork/config"
	"github.com/OngTK/WeWork/internal/auth/domain"
	"github.com/OngTK/WeWork/internal/auth/dto"
	"github.com/OngTK/WeWork/internal/auth/handler"
	"github.com/OngTK/WeWork/internal/auth/service"
	"github.com/OngTK/WeWork/internal/auth/store"
	"github.com/OngTK/WeWork/internal/mocks"
	"github.com/OngTK/WeWork/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testApp struct {
	app    *fiber.App
	repo   *mocks.MockEmployeeRepository
	mailer *mocks.MockMailer
	store  *store.MemoryStore
	tokens *service.TokenService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockEmployeeRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)
	memStore := store.NewMemoryStore()
	tokens := service.NewTokenService("test-secret", 15, 10080)
	cfg := &config.Config{
		LoginFailWindowMin: 30,
		MaxLoginAttempts:   5,
		OTPTTLMin:          10,
		ResetTokenTTLMin:   10,
	}

	authService := service.NewAuthService(repo, memStore, tokens, cfg, nil)
	adminService := service.NewAdminService(repo, memStore, nil)
	resetService := service.NewPasswordResetService(repo, memStore, mailer, adminService, cfg, nil)
	signUpService := service.NewSignUpService(repo)

	app := fiber.New()
	handler.RegisterRoutes(app,
		handler.NewAuthHandler(authService, signUpService),
		handler.NewPasswordResetHandler(resetService, nil),
		handler.NewAdminHandler(adminService),
		handler.NewMiddleware(authService),
	)

	return &testApp{app: app, repo: repo, mailer: mailer, store: memStore, tokens: tokens}
}

func employeeWithPassword(t *testing.T, position, password string) *domain.Employee {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.Employee{
		EmpID:        42,
		LoginID:      "alice",
		PasswordHash: string(hash),
		Name:         "Alice Kim",
		Email:        "alice@wework.local",
		Position:     position,
		Status:       constant.StatusActive,
	}
}

func postJSON(t *testing.T, path string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return req
}

func refreshCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == constant.RefreshCookieName {
			return c
		}
	}
	return nil
}

func doLogin(t *testing.T, ta *testApp, password string) (*dto.LoginResponse, *http.Cookie) {
	t.Helper()

	req := postJSON(t, "/api/auth/login", dto.LoginInput{LoginID: "alice", Password: password})
	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	cookie := refreshCookie(resp)
	require.NotNil(t, cookie)

	return &body, cookie
}

func TestLogin(t *testing.T) {
	ta := newTestApp(t)
	emp := employeeWithPassword(t, "사원", "p1")

	ta.repo.EXPECT().GetByLoginID(gomock.Any(), "alice").Return(emp, nil).AnyTimes()

	t.Run("success", func(t *testing.T) {
		body, cookie := doLogin(t, ta, "p1")

		assert.NotEmpty(t, body.AccessToken)
		assert.Equal(t, int64(42), body.User.EmpID)
		assert.Equal(t, []string{constant.RoleUser}, body.User.Roles)

		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.NotEmpty(t, cookie.Value)
		assert.Equal(t, int(ta.tokens.GetRefreshTokenExpiry().Seconds()), cookie.MaxAge)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := postJSON(t, "/api/auth/login", dto.LoginInput{LoginID: "alice", Password: "nope"})
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("bad request", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{")))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestReissue(t *testing.T) {
	ta := newTestApp(t)
	emp := employeeWithPassword(t, "사원", "p1")

	ta.repo.EXPECT().GetByLoginID(gomock.Any(), "alice").Return(emp, nil).AnyTimes()

	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/auth/token", nil)
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rotation and reuse rejection", func(t *testing.T) {
		_, cookie := doLogin(t, ta, "p1")

		req := httptest.NewRequest(fiber.MethodPost, "/api/auth/token", nil)
		req.AddCookie(cookie)
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.ReissueResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body.AccessToken)

		rotated := refreshCookie(resp)
		require.NotNil(t, rotated)
		assert.NotEqual(t, cookie.Value, rotated.Value)

		// Replaying the consumed cookie is rejected.
		replay := httptest.NewRequest(fiber.MethodPost, "/api/auth/token", nil)
		replay.AddCookie(cookie)
		resp, err = ta.app.Test(replay)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t)
	emp := employeeWithPassword(t, "사원", "p1")

	ta.repo.EXPECT().GetByLoginID(gomock.Any(), "alice").Return(emp, nil).AnyTimes()

	body, cookie := doLogin(t, ta, "p1")

	req := httptest.NewRequest(fiber.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+body.AccessToken)
	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cleared := refreshCookie(resp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// The blacklisted access token is now rejected on authenticated routes.
	me := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
	me.Header.Set(fiber.HeaderAuthorization, "Bearer "+body.AccessToken)
	resp, err = ta.app.Test(me)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Logout with no credentials at all still answers 200.
	req = httptest.NewRequest(fiber.MethodPost, "/api/auth/logout", nil)
	resp, err = ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMe(t *testing.T) {
	ta := newTestApp(t)
	emp := employeeWithPassword(t, "사원", "p1")

	ta.repo.EXPECT().GetByLoginID(gomock.Any(), "alice").Return(emp, nil).AnyTimes()

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		body, _ := doLogin(t, ta, "p1")

		req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+body.AccessToken)
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var summary dto.UserSummary
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
		assert.Equal(t, "alice", summary.LoginID)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		_, cookie := doLogin(t, ta, "p1")

		req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+cookie.Value)
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestSignUp(t *testing.T) {
	ta := newTestApp(t)

	t.Run("success", func(t *testing.T) {
		ta.repo.EXPECT().GetByLoginID(gomock.Any(), "bob").Return(nil, nil)
		ta.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		req := postJSON(t, "/api/auth/signup", dto.SignUpInput{
			LoginID:  "bob",
			Password: "password123",
			Name:     "Bob Lee",
			Email:    "bob@wework.local",
			Position: "사원",
		})
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("duplicate login id", func(t *testing.T) {
		ta.repo.EXPECT().GetByLoginID(gomock.Any(), "bob").
			Return(&domain.Employee{EmpID: 7, LoginID: "bob"}, nil)

		req := postJSON(t, "/api/auth/signup", dto.SignUpInput{LoginID: "bob", Password: "password123"})
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}
