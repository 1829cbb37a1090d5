package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nclexfront/internal/frontend/adapters/cache"
	credentialsAdapter "nclexfront/internal/frontend/adapters/credentials"
	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/app/services"
	"nclexfront/internal/frontend/app/session"
	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
)

type fakeAuthAPI struct {
	loginResult *backendPort.LoginResult
	loginErr    error
	logoutErr   error
	logoutCalls int
}

func (f *fakeAuthAPI) Register(_ context.Context, params backendPort.RegisterParams) (*backendPort.RegisterResult, error) {
	return &backendPort.RegisterResult{
		Message: "Registration successful. Please log in.",
		User:    &domain.User{Email: params.Email, Role: domain.RoleStudent},
	}, nil
}

func (f *fakeAuthAPI) Login(_ context.Context, _ backendPort.LoginParams) (*backendPort.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthAPI) Logout(_ context.Context, _ credentials.Store) error {
	f.logoutCalls++
	return f.logoutErr
}

type fakeUsersAPI struct {
	user *domain.User
	err  error
}

func (f *fakeUsersAPI) Profile(_ context.Context, _ credentials.Store) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUsersAPI) UpdateProfile(_ context.Context, _ credentials.Store, _ map[string]any) (*domain.User, error) {
	return f.user, f.err
}

func newAuthService(auth *fakeAuthAPI, users *fakeUsersAPI) (*services.AuthServiceImpl, credentials.Store) {
	memory := cache.NewMemoryCache()
	provider := credentialsAdapter.NewCacheProvider(memory, time.Hour)
	sessions := session.NewManager(users, memory, time.Minute)
	return services.NewAuthService(auth, users, sessions), provider.ForSession("s1")
}

func TestAuthService_LoginStoresTokenPair(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuthAPI{
		loginResult: &backendPort.LoginResult{
			Message: "Login successful.",
			Pair:    domain.CredentialPair{AccessToken: "a1", RefreshToken: "r1"},
			User:    &domain.User{ID: "u1", Email: "s@example.com", Role: domain.RoleStudent},
		},
	}
	svc, store := newAuthService(auth, &fakeUsersAPI{})

	resp, err := svc.Login(ctx, "s1", store, &dto.LoginRequest{Email: "s@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.False(t, resp.Requires2FA)
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)

	pair, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", pair.AccessToken)
	assert.Equal(t, "r1", pair.RefreshToken)
}

func TestAuthService_Login2FAChallengeStoresNothing(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuthAPI{
		loginResult: &backendPort.LoginResult{
			Requires2FA: true,
			Message:     "Two-factor code required.",
		},
	}
	svc, store := newAuthService(auth, &fakeUsersAPI{})

	resp, err := svc.Login(ctx, "s1", store, &dto.LoginRequest{Email: "s@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.True(t, resp.Requires2FA)
	assert.Nil(t, resp.User)

	_, err = store.Read(ctx)
	assert.ErrorIs(t, err, credentials.ErrNoCredentials)
}

func TestAuthService_LoginPassesWarningThrough(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuthAPI{
		loginResult: &backendPort.LoginResult{
			Message: "Login successful.",
			Warning: "Your account is scheduled for deletion.",
			Pair:    domain.CredentialPair{AccessToken: "a1", RefreshToken: "r1"},
			User:    &domain.User{ID: "u1", IsDeletionPending: true},
		},
	}
	svc, store := newAuthService(auth, &fakeUsersAPI{})

	resp, err := svc.Login(ctx, "s1", store, &dto.LoginRequest{Email: "s@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "Your account is scheduled for deletion.", resp.Warning)
}

func TestAuthService_LoginErrorIsClassified(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuthAPI{
		loginErr: &domain.APIError{Kind: domain.KindLocked, Message: "Account locked."},
	}
	svc, store := newAuthService(auth, &fakeUsersAPI{})

	_, err := svc.Login(ctx, "s1", store, &dto.LoginRequest{Email: "s@example.com", Password: "wrong"})

	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindLocked, apiErr.Kind)
}

func TestAuthService_LogoutClearsCredentialsEvenWhenBackendFails(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuthAPI{logoutErr: domain.NewNetworkError()}
	svc, store := newAuthService(auth, &fakeUsersAPI{})

	require.NoError(t, store.Save(ctx, domain.CredentialPair{AccessToken: "a", RefreshToken: "r"}))

	err := svc.Logout(ctx, "s1", store)

	// Отзыв на бекенде best-effort, локальная очистка обязательна.
	require.NoError(t, err)
	assert.Equal(t, 1, auth.logoutCalls)

	_, err = store.Read(ctx)
	assert.ErrorIs(t, err, credentials.ErrNoCredentials)
}

func TestAuthService_SessionReturnsCurrentUser(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsersAPI{user: &domain.User{ID: "u1", Email: "s@example.com", Role: domain.RoleStudent}}
	svc, store := newAuthService(&fakeAuthAPI{}, users)

	require.NoError(t, store.Save(ctx, domain.CredentialPair{AccessToken: "a", RefreshToken: "r"}))

	resp, err := svc.Session(ctx, "s1", store)

	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)
	// Access-токен не является JWT, момент истечения недоступен.
	assert.Nil(t, resp.ExpiresAt)
}

func TestAuthService_SessionWithoutCredentials(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsersAPI{err: domain.NewAuthExpiredError()}
	svc, store := newAuthService(&fakeAuthAPI{}, users)

	_, err := svc.Session(ctx, "s1", store)

	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindAuthExpired, apiErr.Kind)
}

func TestAuthService_UpdateProfileRefreshesSessionCache(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsersAPI{user: &domain.User{ID: "u1", FullName: "Renamed Student"}}
	svc, store := newAuthService(&fakeAuthAPI{}, users)

	require.NoError(t, store.Save(ctx, domain.CredentialPair{AccessToken: "a", RefreshToken: "r"}))

	resp, err := svc.UpdateProfile(ctx, "s1", store, dto.UpdateProfileRequest{"full_name": "Renamed Student"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Student", resp.User.FullName)

	// Следующий запрос сессии видит обновленного пользователя без похода на бекенд.
	users.err = domain.NewAuthExpiredError()
	sessionResp, err := svc.Session(ctx, "s1", store)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Student", sessionResp.User.FullName)
}
