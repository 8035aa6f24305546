package paypal

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

// AccessToken is a bearer token together with its reported lifetime.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresIn int64
	CreatedAt time.Time
}

// IsExpired reports whether the token's reported lifetime has elapsed.
func (t *AccessToken) IsExpired() bool {
	return time.Now().After(t.CreatedAt.Add(time.Duration(t.ExpiresIn) * time.Second))
}

// TokenStore caches access tokens across requests. Implementations must be
// safe for concurrent use; concurrent refreshes for the same key may race and
// last-writer-wins is acceptable.
type TokenStore interface {
	Get(key string) (*AccessToken, bool)
	Set(key string, token *AccessToken, ttl time.Duration)
}

// tokenCacheKey composes the process-wide cache key from a purpose tag, the
// environment class and a fingerprint of the credentials, so gateways with
// different credentials or environments never share a token.
func tokenCacheKey(env Environment) string {
	fingerprint := sha256.Sum256([]byte(env.AuthorizationString()))
	return fmt.Sprintf("paypal-auth.%T.%x", env, fingerprint[:8])
}

// MemoryTokenStore is the in-process TokenStore used by default.
type MemoryTokenStore struct {
	mu      sync.RWMutex
	entries map[string]memoryTokenEntry
}

type memoryTokenEntry struct {
	token     *AccessToken
	expiresAt time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{entries: map[string]memoryTokenEntry{}}
}

func (s *MemoryTokenStore) Get(key string) (*AccessToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.token, true
}

func (s *MemoryTokenStore) Set(key string, token *AccessToken, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryTokenEntry{
		token:     token,
		expiresAt: time.Now().Add(ttl),
	}
}
