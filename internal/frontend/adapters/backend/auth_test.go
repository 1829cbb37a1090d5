package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
)

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login/", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "student@example.com", req["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"message": "Login successful.",
			"warning": "Your account is scheduled for deletion.",
			"access_token": "access-1",
			"refresh_token": "refresh-1",
			"user": {"id": "u1", "email": "student@example.com", "full_name": "Student One", "role": "student"}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.Login(context.Background(), backendPort.LoginParams{
		Email:    "student@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.False(t, result.Requires2FA)
	assert.Equal(t, "Login successful.", result.Message)
	assert.Equal(t, "Your account is scheduled for deletion.", result.Warning)
	assert.Equal(t, "access-1", result.Pair.AccessToken)
	assert.Equal(t, "refresh-1", result.Pair.RefreshToken)
	require.NotNil(t, result.User)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, "student", result.User.Role)
}

func TestLogin_Requires2FAChallenge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Two-factor code required.", "requires_2fa": true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.Login(context.Background(), backendPort.LoginParams{
		Email:    "student@example.com",
		Password: "secret",
	})

	// Вызов 2FA не является ошибкой, но токены не выдаются.
	require.NoError(t, err)
	assert.True(t, result.Requires2FA)
	assert.Equal(t, "Two-factor code required.", result.Message)
	assert.True(t, result.Pair.Empty())
	assert.Nil(t, result.User)
}

func TestLogin_LockedAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusLocked)
		_, _ = w.Write([]byte(`{"detail": "Account locked. Try again in 15 minutes."}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Login(context.Background(), backendPort.LoginParams{
		Email:    "student@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindLocked, apiErr.Kind)
	assert.Equal(t, "Account locked. Try again in 15 minutes.", apiErr.Message)
}

func TestLogin_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors": {"email": ["Enter a valid email address."]}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Login(context.Background(), backendPort.LoginParams{
		Email:    "not-an-email",
		Password: "secret",
	})

	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, apiErr.Kind)
	assert.Equal(t, []string{"Enter a valid email address."}, apiErr.FieldErrors["email"])
}

func TestLogout_NoCredentialsIsNoop(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{})

	err := client.Logout(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestLogout_SendsRefreshToken(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/logout/", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotToken = req["refresh_token"]

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access-1", RefreshToken: "refresh-1"})

	err := client.Logout(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, "refresh-1", gotToken)
}

func TestRegister_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message": "Registration successful. Please log in.", "user": {"id": "u2", "email": "new@example.com", "role": "student"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.Register(context.Background(), backendPort.RegisterParams{
		Email:           "new@example.com",
		FullName:        "New Student",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Registration successful. Please log in.", result.Message)
	require.NotNil(t, result.User)
	assert.Equal(t, "u2", result.User.ID)
}
