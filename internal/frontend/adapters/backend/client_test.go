package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nclexfront/internal/frontend/adapters/backend"
	"nclexfront/internal/frontend/adapters/cache"
	credentialsAdapter "nclexfront/internal/frontend/adapters/credentials"
	"nclexfront/internal/frontend/config"
	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
)

func newTestClient(t *testing.T, backendURL string) *backend.Client {
	t.Helper()

	return backend.NewClient(&config.BackendConfig{
		BaseURL:        backendURL,
		RequestTimeout: 5 * time.Second,
	})
}

func newTestStore(t *testing.T, pair domain.CredentialPair) credentials.Store {
	t.Helper()

	provider := credentialsAdapter.NewCacheProvider(cache.NewMemoryCache(), time.Hour)
	store := provider.ForSession("test-session")
	if !pair.Empty() {
		require.NoError(t, store.Save(context.Background(), pair))
	}
	return store
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access-1", RefreshToken: "refresh-1"})

	resp, err := client.Do(context.Background(), store, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/courses/",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success())
	assert.Equal(t, "Bearer access-1", gotAuth)
}

func TestDo_WithoutCredentialsSendsNoAuthHeader(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasAuth = r.Header.Get("Authorization") != ""
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{})

	_, err := client.Do(context.Background(), store, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/courses/",
	})

	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestDo_RefreshesAndRetriesOnceOn401(t *testing.T) {
	var refreshCalls, resourceCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh/":
			atomic.AddInt32(&refreshCalls, 1)

			// Бекенд разбирает тело только при явном application/json.
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh-old", req["refresh_token"])

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token":  "access-new",
				"refresh_token": "refresh-new",
			})
		case "/api/users/me/":
			atomic.AddInt32(&resourceCalls, 1)
			if r.Header.Get("Authorization") != "Bearer access-new" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access-old", RefreshToken: "refresh-old"})

	resp, err := client.Do(context.Background(), store, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/users/me/",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&resourceCalls))

	// Бекенд ротирует оба токена, пара заменяется целиком.
	pair, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-new", pair.AccessToken)
	assert.Equal(t, "refresh-new", pair.RefreshToken)
}

func TestDo_RetryResponseReturnedVerbatim(t *testing.T) {
	var resourceCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh/":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token":  "access-new",
				"refresh_token": "refresh-new",
			})
		default:
			// Повторный запрос тоже проваливается: ответ уходит как есть,
			// третьей попытки нет.
			atomic.AddInt32(&resourceCalls, 1)
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access-old", RefreshToken: "refresh-old"})

	// Первый ответ 403 не трогает механизм обновления.
	resp, err := client.Do(context.Background(), store, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/users/me/",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&resourceCalls))
}

func TestDo_SecondUnauthorizedReturnedWithoutThirdAttempt(t *testing.T) {
	var resourceCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh/":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token":  "access-new",
				"refresh_token": "refresh-new",
			})
		default:
			atomic.AddInt32(&resourceCalls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access-old", RefreshToken: "refresh-old"})

	resp, err := client.Do(context.Background(), store, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/users/me/",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&resourceCalls))
}

func TestDo_RefreshFailureClearsStoreAndSkipsRetry(t *testing.T) {
	var resourceCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh/":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			atomic.AddInt32(&resourceCalls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access-old", RefreshToken: "refresh-old"})

	_, err := client.Do(context.Background(), store, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/users/me/",
	})

	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindAuthExpired, apiErr.Kind)
	assert.Equal(t, domain.SessionExpiredMsg, apiErr.Message)

	// Повтора исходного запроса не было.
	assert.Equal(t, int32(1), atomic.LoadInt32(&resourceCalls))

	// Учетные данные очищены.
	_, err = store.Read(context.Background())
	assert.ErrorIs(t, err, credentials.ErrNoCredentials)
}

func TestDo_NoRefreshTokenSkipsNetworkCall(t *testing.T) {
	var refreshCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh/" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access-only"})

	_, err := client.Do(context.Background(), store, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/users/me/",
	})

	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindAuthExpired, apiErr.Kind)
	assert.Equal(t, int32(0), atomic.LoadInt32(&refreshCalls))
}

func TestDo_ConcurrentRefreshesCollapseIntoOne(t *testing.T) {
	var refreshCalls int32
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh/":
			atomic.AddInt32(&refreshCalls, 1)
			<-block
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token":  "access-new",
				"refresh_token": "refresh-new",
			})
		default:
			if r.Header.Get("Authorization") == "Bearer access-new" {
				w.WriteHeader(http.StatusOK)
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access-old", RefreshToken: "refresh-old"})

	const workers = 5
	var wg sync.WaitGroup
	results := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Do(context.Background(), store, backend.Request{
				Method: http.MethodGet,
				Path:   "/api/users/me/",
			})
			if err == nil && !resp.Success() {
				err = backend.Classify(resp.StatusCode, resp.Body)
			}
			results[i] = err
		}(i)
	}

	// Даем воркерам упереться в заблокированное обновление.
	time.Sleep(100 * time.Millisecond)
	close(block)
	wg.Wait()

	for i, err := range results {
		assert.NoError(t, err, "worker %d", i)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
}

func TestDo_NetworkErrorIsGeneric(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1")
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access", RefreshToken: "refresh"})

	_, err := client.Do(context.Background(), store, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/courses/",
	})

	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindGeneric, apiErr.Kind)
	assert.Equal(t, domain.NetworkErrorMessage, apiErr.Message)
}

func TestDoPublic_NeverRefreshes(t *testing.T) {
	var refreshCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh/" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.DoPublic(context.Background(), backend.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/login/",
		JSON:   map[string]string{"email": "a@b.c"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(0), atomic.LoadInt32(&refreshCalls))
}
