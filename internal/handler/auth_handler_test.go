package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	svc := &MockAuthService{RegisterFunc: func(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
		assert.Equal(t, "ada@example.com", req.Email)
		if req.Firstname == "" {
			return nil, domain.NewInvalidInputError("All fields are required")
		}
		return &dto.AuthResponse{
			Message: "Registration successful",
			User:    dto.UserOutput{ID: "u1", Email: req.Email, Roles: []string{domain.RoleUser}},
		}, nil
	}}
	app := newTestApp()
	app.Post("/api/register", handler.NewAuthHandler(svc).Register)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/register",
		`{"email":"ada@example.com","password":"pw","firstname":"Ada","lastname":"L","role":"ROLE_ADMIN"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.AuthResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "Registration successful", out.Message)
	assert.Equal(t, []string{domain.RoleUser}, out.User.Roles)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/register", `{"email":"ada@example.com","password":"pw"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "All fields are required", body["error"])
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	app := newTestApp()
	app.Post("/api/register", handler.NewAuthHandler(&MockAuthService{}).Register)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/register", `{"email":"not-an-email","password":"pw","firstname":"A","lastname":"B"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &MockAuthService{LoginFunc: func(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
		if req.Password != "pw" {
			return nil, domain.NewUnauthorizedError("Invalid credentials")
		}
		return &dto.AuthResponse{Message: "Login successful", AccessToken: "token", ExpiresIn: 3600}, nil
	}}
	app := newTestApp()
	app.Post("/api/login", handler.NewAuthHandler(svc).Login)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/login", `{"email":"ada@example.com","password":"pw"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.AuthResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "token", out.AccessToken)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/login", `{"email":"ada@example.com","password":"bad"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid credentials", body["error"])
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }
func (f fakePinger) Ping(ctx context.Context) error        { return f.err }

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name   string
		db     fakePinger
		cache  handler.CachePinger
		status int
		want   handler.HealthResponse
	}{
		{"healthy", fakePinger{}, fakePinger{}, http.StatusOK, handler.HealthResponse{Status: "ok", Database: "ok", Cache: "ok"}},
		{"database down", fakePinger{err: errors.New("ORA-12541")}, fakePinger{}, http.StatusServiceUnavailable, handler.HealthResponse{Status: "degraded", Database: "unavailable", Cache: "ok"}},
		{"cache down", fakePinger{}, fakePinger{err: errors.New("refused")}, http.StatusServiceUnavailable, handler.HealthResponse{Status: "degraded", Database: "ok", Cache: "unavailable"}},
		{"cache disabled", fakePinger{}, nil, http.StatusOK, handler.HealthResponse{Status: "ok", Database: "ok", Cache: "disabled"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/health", handler.NewHealthHandler(tt.db, tt.cache).Check)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var out handler.HealthResponse
			decodeBody(t, resp, &out)
			assert.Equal(t, tt.want, out)
		})
	}
}
