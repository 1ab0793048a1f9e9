package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hiring-platform-api/internal/dto"
	apierrors "github.com/yukikurage/hiring-platform-api/internal/errors"
	"github.com/yukikurage/hiring-platform-api/internal/models"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupHandlerTestEnv(t)
	r := env.router()

	payload := map[string]string{
		"email":    "new@example.com",
		"password": "supersecret",
		"role":     "RECRUITER",
	}
	w := performRequest(t, r, http.MethodPost, "/api/auth/register", "", payload)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, w.Header().Get("Set-Cookie"))
	assert.NotContains(t, w.Body.String(), "password")

	response := decode[dto.AuthResponse](t, w)
	require.Equal(t, payload["email"], response.User.Email)
	require.Equal(t, models.RoleRecruiter, response.User.Role)
	require.NotEmpty(t, response.Token)
}

func TestAuthHandler_RegisterErrors(t *testing.T) {
	env := setupHandlerTestEnv(t)
	env.register(t, "taken@example.com", models.RoleCandidate)
	r := env.router()

	tests := []struct {
		name    string
		payload map[string]string
		status  int
		code    string
	}{
		{"duplicate email", map[string]string{"email": "taken@example.com", "password": "supersecret"}, http.StatusConflict, apierrors.ErrCodeConflict},
		{"short password", map[string]string{"email": "a@example.com", "password": "short"}, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
		{"admin self assign", map[string]string{"email": "b@example.com", "password": "supersecret", "role": "ADMIN"}, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
		{"malformed email", map[string]string{"email": "nope", "password": "supersecret"}, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(t, r, http.MethodPost, "/api/auth/register", "", tc.payload)
			require.Equal(t, tc.status, w.Code)
			require.Equal(t, tc.code, decode[apierrors.APIError](t, w).Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupHandlerTestEnv(t)
	env.register(t, "existing@example.com", models.RoleCandidate)
	r := env.router()

	w := performRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "existing@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	response := decode[dto.AuthResponse](t, w)
	require.Equal(t, "existing@example.com", response.User.Email)
	require.NotEmpty(t, response.Token)

	w = performRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "existing@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "missing@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	env := setupHandlerTestEnv(t)
	res := env.register(t, "me@example.com", models.RoleCandidate)
	r := env.router()

	w := performRequest(t, r, http.MethodGet, "/api/auth/me", res.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, res.User.ID, decode[dto.UserDTO](t, w).ID)

	w = performRequest(t, r, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(t, r, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_SessionCookie(t *testing.T) {
	env := setupHandlerTestEnv(t)
	env.register(t, "cookie@example.com", models.RoleCandidate)
	r := env.router()

	w := performRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "cookie@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := newRequestWithCookies(http.MethodGet, "/api/auth/me", cookies)
	me := serve(r, req)
	require.Equal(t, http.StatusOK, me.Code)

	req = newRequestWithCookies(http.MethodPost, "/api/auth/logout", cookies)
	logout := serve(r, req)
	require.Equal(t, http.StatusOK, logout.Code)

	req = newRequestWithCookies(http.MethodGet, "/api/auth/me", logout.Result().Cookies())
	require.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
}

func TestAuthHandler_BindingErrorsListFields(t *testing.T) {
	env := setupHandlerTestEnv(t)
	r := env.router()

	w := performRequest(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Code    string                 `json:"code"`
		Details []apierrors.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apierrors.ErrCodeInvalidInput, body.Code)
	assert.ElementsMatch(t, []apierrors.FieldError{
		{Field: "email", Rule: "email"},
		{Field: "password", Rule: "required"},
	}, body.Details)

	w = serve(r, newJSONRequest(http.MethodPost, "/api/auth/login", "{not json"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "details")
}

func TestAuthHandler_GoogleSignIn(t *testing.T) {
	env := setupHandlerTestEnv(t)
	r := env.router()

	w := performRequest(t, r, http.MethodPost, "/api/auth/google", "", map[string]string{"credential": validGoogleToken})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("Set-Cookie"))

	response := decode[dto.AuthResponse](t, w)
	assert.Equal(t, "g@example.com", response.User.Email)
	assert.Equal(t, models.RoleRecruiter, response.User.Role)
	assert.True(t, response.User.Verified)
	assert.NotEmpty(t, response.Token)

	me := performRequest(t, r, http.MethodGet, "/api/auth/me", response.Token, nil)
	require.Equal(t, http.StatusOK, me.Code)

	w = performRequest(t, r, http.MethodPost, "/api/auth/google", "", map[string]string{"credential": "forged"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(t, r, http.MethodPost, "/api/auth/google", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"credential"`)
}
