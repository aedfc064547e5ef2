package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "testertalk/internal/application/user/dto"
	"testertalk/internal/application/user/usecases"
	"testertalk/internal/interfaces/http/handlers/testutil"
	"testertalk/internal/shared/errors"
)

type mockRegisterUC struct {
	result *userdto.UserDTO
	err    error
}

func (m *mockRegisterUC) Execute(_ context.Context, _ usecases.RegisterCommand) (*userdto.UserDTO, error) {
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, _ usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

type mockGetCurrentUserUC struct {
	result *userdto.UserDTO
	err    error
	lastID uint
}

func (m *mockGetCurrentUserUC) Execute(_ context.Context, userID uint) (*userdto.UserDTO, error) {
	m.lastID = userID
	return m.result, m.err
}

type testDeps struct {
	registerUC *mockRegisterUC
	loginUC    *mockLoginUC
	currentUC  *mockGetCurrentUserUC
}

func newTestHandler(deps testDeps) *Handler {
	if deps.registerUC == nil {
		deps.registerUC = &mockRegisterUC{}
	}
	if deps.loginUC == nil {
		deps.loginUC = &mockLoginUC{}
	}
	if deps.currentUC == nil {
		deps.currentUC = &mockGetCurrentUserUC{}
	}
	return NewHandler(deps.registerUC, deps.loginUC, deps.currentUC, testutil.NewMockLogger())
}

func TestHandler_Register_Success(t *testing.T) {
	mockUC := &mockRegisterUC{
		result: &userdto.UserDTO{ID: 1, Username: "kchen", Email: "kchen@example.com", Role: "user"},
	}
	handler := newTestHandler(testDeps{registerUC: mockUC})

	reqBody := RegisterRequest{Username: "kchen", Email: "kchen@example.com", Password: "hunter2hunter2"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestHandler_Register_ShortPassword(t *testing.T) {
	handler := newTestHandler(testDeps{})

	reqBody := RegisterRequest{Username: "kchen", Email: "kchen@example.com", Password: "short"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_DuplicateUsername(t *testing.T) {
	mockUC := &mockRegisterUC{err: errors.NewConflictError("username already taken")}
	handler := newTestHandler(testDeps{registerUC: mockUC})

	reqBody := RegisterRequest{Username: "kchen", Email: "kchen@example.com", Password: "hunter2hunter2"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{
		result: &usecases.LoginResult{
			User:        userdto.UserDTO{ID: 1, Username: "kchen"},
			AccessToken: "token-abc",
			ExpiresIn:   3600,
		},
	}
	handler := newTestHandler(testDeps{loginUC: mockUC})

	reqBody := LoginRequest{Username: "kchen", Password: "hunter2hunter2"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var payload struct {
		AccessToken string `json:"AccessToken"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	assert.Equal(t, "token-abc", payload.AccessToken)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid credentials")}
	handler := newTestHandler(testDeps{loginUC: mockUC})

	reqBody := LoginRequest{Username: "kchen", Password: "wrong"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/logout", nil)
	testutil.SetAuthContext(c, 1, "kchen")

	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Me_Success(t *testing.T) {
	mockUC := &mockGetCurrentUserUC{
		result: &userdto.UserDTO{ID: 9, Username: "kchen"},
	}
	handler := newTestHandler(testDeps{currentUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
	testutil.SetAuthContext(c, 9, "kchen")

	handler.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), mockUC.lastID)
}

func TestHandler_Me_NoAuthContext(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
