package session

import (
	"context"
	"testing"
	"time"

	"github.com/raizapp/raizapp-backend/pkg/config"
	redisclient "github.com/raizapp/raizapp-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	values map[string]string
	ttls   map[string]time.Duration
	setErr error
}

func newStubStore() *stubStore {
	return &stubStore{
		values: map[string]string{},
		ttls:   map[string]time.Duration{},
	}
}

func (s *stubStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value.(string)
	s.ttls[key] = ttl
	return nil
}

func (s *stubStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (s *stubStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.values, k)
		delete(s.ttls, k)
	}
	return nil
}

type stubKeyer struct{}

func (stubKeyer) AccessSessionKey(accessID string) string {
	return "raiz:session:" + accessID
}

func newTestManager(store *stubStore) *Manager {
	return &Manager{
		store: store,
		keyer: stubKeyer{},
		ttl:   time.Hour,
	}
}

func TestNewManagerValidation(t *testing.T) {
	_, err := NewManager(nil, config.JWTConfig{ExpirationMinutes: 15, RefreshTokenTTLMinutes: 30 * 24 * 60})
	assert.Error(t, err)

	client := &redisclient.Client{}
	_, err = NewManager(client, config.JWTConfig{ExpirationMinutes: 15, RefreshTokenTTLMinutes: 0})
	assert.Error(t, err)

	_, err = NewManager(client, config.JWTConfig{ExpirationMinutes: 60 * 24 * 40, RefreshTokenTTLMinutes: 30 * 24 * 60})
	assert.Error(t, err)

	m, err := NewManager(client, config.JWTConfig{ExpirationMinutes: 15, RefreshTokenTTLMinutes: 30 * 24 * 60})
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, m.ttl)
}

func TestGenerateStoresToken(t *testing.T) {
	store := newStubStore()
	m := newTestManager(store)

	token, err := m.Generate(context.Background(), "access-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, token, store.values["raiz:session:access-1"])
	assert.Equal(t, time.Hour, store.ttls["raiz:session:access-1"])

	_, err = m.Generate(context.Background(), "  ")
	assert.Error(t, err)
}

func TestRotateIssuesNewPairAndInvalidatesOld(t *testing.T) {
	store := newStubStore()
	m := newTestManager(store)

	token, err := m.Generate(context.Background(), "access-1")
	require.NoError(t, err)

	newAccessID, newToken, err := m.Rotate(context.Background(), "access-1", token)
	require.NoError(t, err)
	assert.NotEmpty(t, newAccessID)
	assert.NotEqual(t, "access-1", newAccessID)
	assert.NotEqual(t, token, newToken)

	_, ok := store.values["raiz:session:access-1"]
	assert.False(t, ok, "old session should be deleted")
	assert.Equal(t, newToken, store.values["raiz:session:"+newAccessID])
}

func TestRotateRejectsBadInput(t *testing.T) {
	store := newStubStore()
	m := newTestManager(store)

	_, _, err := m.Rotate(context.Background(), "", "tok")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, _, err = m.Rotate(context.Background(), "unknown", "tok")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	token, err := m.Generate(context.Background(), "access-2")
	require.NoError(t, err)

	_, _, err = m.Rotate(context.Background(), "access-2", token+"x")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// Mismatch must not consume the session.
	ok, err := m.HasSession(context.Background(), "access-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRevokeAndHasSession(t *testing.T) {
	store := newStubStore()
	m := newTestManager(store)

	_, err := m.Generate(context.Background(), "access-3")
	require.NoError(t, err)

	ok, err := m.HasSession(context.Background(), "access-3")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.Revoke(context.Background(), "access-3"))

	ok, err = m.HasSession(context.Background(), "access-3")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.HasSession(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}
