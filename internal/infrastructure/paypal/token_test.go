package paypal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenIsExpired(t *testing.T) {
	fresh := &AccessToken{Token: "a", ExpiresIn: 3600, CreatedAt: time.Now()}
	assert.False(t, fresh.IsExpired())

	stale := &AccessToken{Token: "a", ExpiresIn: 60, CreatedAt: time.Now().Add(-2 * time.Minute)}
	assert.True(t, stale.IsExpired())
}

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	token := &AccessToken{Token: "A21AAFs", ExpiresIn: 3600, CreatedAt: time.Now()}
	store.Set("key", token, time.Hour)

	got, ok := store.Get("key")
	assert.True(t, ok)
	assert.Equal(t, token, got)
}

func TestMemoryTokenStoreTTLExpiry(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Set("key", &AccessToken{Token: "A21AAFs"}, -time.Second)

	_, ok := store.Get("key")
	assert.False(t, ok)
}

func TestTokenCacheKey(t *testing.T) {
	sandbox := NewSandboxEnvironment("client-a", "secret")
	sandboxOther := NewSandboxEnvironment("client-b", "secret")
	production := NewProductionEnvironment("client-a", "secret")

	// Same credentials share a key; different credentials or environment
	// classes never do.
	assert.Equal(t, tokenCacheKey(sandbox), tokenCacheKey(NewSandboxEnvironment("client-a", "secret")))
	assert.NotEqual(t, tokenCacheKey(sandbox), tokenCacheKey(sandboxOther))
	assert.NotEqual(t, tokenCacheKey(sandbox), tokenCacheKey(production))
}
