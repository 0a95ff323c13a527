package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/testcase-service/internal/auth"
)

// memoryStore stands in for the cookie slot in resolver tests.
type memoryStore struct {
	token   string
	expires time.Time
}

func (s *memoryStore) Read() string { return s.token }

func (s *memoryStore) Write(token string, expires time.Time) {
	s.token = token
	s.expires = expires
}

func (s *memoryStore) Clear() {
	s.token = ""
	s.expires = time.Unix(0, 0)
}

func TestResolverCurrent(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	resolver := auth.NewResolver(codec)
	store := &memoryStore{}

	require.Nil(t, resolver.Current(store), "empty store resolves to no session")

	token, expiresAt, err := codec.Issue(testIdentity())
	require.NoError(t, err)
	store.Write(token, expiresAt)

	identity := resolver.Current(store)
	require.NotNil(t, identity)
	require.Equal(t, testIdentity(), *identity)
}

func TestLogoutThenResolveReturnsNoSession(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	resolver := auth.NewResolver(codec)
	store := &memoryStore{}

	token, expiresAt, err := codec.Issue(testIdentity())
	require.NoError(t, err)
	store.Write(token, expiresAt)
	require.NotNil(t, resolver.Current(store))

	store.Clear()
	require.Nil(t, resolver.Current(store))
	require.False(t, store.expires.After(time.Now()), "cleared slot must already be expired")
}
