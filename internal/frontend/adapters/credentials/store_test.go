package credentials_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nclexfront/internal/frontend/adapters/cache"
	credentialsAdapter "nclexfront/internal/frontend/adapters/credentials"
	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
)

func TestCacheStore_SaveAndRead(t *testing.T) {
	ctx := context.Background()
	provider := credentialsAdapter.NewCacheProvider(cache.NewMemoryCache(), time.Hour)
	store := provider.ForSession("s1")

	pair := domain.CredentialPair{AccessToken: "access-1", RefreshToken: "refresh-1"}
	require.NoError(t, store.Save(ctx, pair))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair, got)
}

func TestCacheStore_ReadWithoutSave(t *testing.T) {
	provider := credentialsAdapter.NewCacheProvider(cache.NewMemoryCache(), time.Hour)
	store := provider.ForSession("s1")

	_, err := store.Read(context.Background())
	assert.ErrorIs(t, err, credentials.ErrNoCredentials)
}

func TestCacheStore_SaveReplacesPairAtomically(t *testing.T) {
	ctx := context.Background()
	provider := credentialsAdapter.NewCacheProvider(cache.NewMemoryCache(), time.Hour)
	store := provider.ForSession("s1")

	require.NoError(t, store.Save(ctx, domain.CredentialPair{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, store.Save(ctx, domain.CredentialPair{AccessToken: "a2", RefreshToken: "r2"}))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.AccessToken)
	assert.Equal(t, "r2", got.RefreshToken)
}

func TestCacheStore_Clear(t *testing.T) {
	ctx := context.Background()
	provider := credentialsAdapter.NewCacheProvider(cache.NewMemoryCache(), time.Hour)
	store := provider.ForSession("s1")

	require.NoError(t, store.Save(ctx, domain.CredentialPair{AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Read(ctx)
	assert.ErrorIs(t, err, credentials.ErrNoCredentials)
}

func TestCacheStore_ClearWithoutSaveIsNoop(t *testing.T) {
	provider := credentialsAdapter.NewCacheProvider(cache.NewMemoryCache(), time.Hour)
	store := provider.ForSession("s1")

	assert.NoError(t, store.Clear(context.Background()))
}

func TestCacheStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	provider := credentialsAdapter.NewCacheProvider(cache.NewMemoryCache(), time.Hour)

	first := provider.ForSession("s1")
	second := provider.ForSession("s2")

	require.NoError(t, first.Save(ctx, domain.CredentialPair{AccessToken: "a1", RefreshToken: "r1"}))

	_, err := second.Read(ctx)
	assert.ErrorIs(t, err, credentials.ErrNoCredentials)

	require.NoError(t, second.Save(ctx, domain.CredentialPair{AccessToken: "a2", RefreshToken: "r2"}))
	require.NoError(t, first.Clear(ctx))

	got, err := second.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.AccessToken)
}

func TestCacheStore_CorruptEntryReadsAsMissing(t *testing.T) {
	ctx := context.Background()
	memory := cache.NewMemoryCache()
	provider := credentialsAdapter.NewCacheProvider(memory, time.Hour)
	store := provider.ForSession("s1")

	require.NoError(t, memory.Set(ctx, "credentials:s1", "{not json", time.Hour))

	_, err := store.Read(ctx)
	assert.ErrorIs(t, err, credentials.ErrNoCredentials)
}
