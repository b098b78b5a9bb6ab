package modelrunner

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPool_Get(t *testing.T) {
	pool, err := NewClientPool(2, http.DefaultClient)
	require.NoError(t, err)

	a := pool.Get("https://api.one.example", "key-a")
	assert.Equal(t, "https://api.one.example", a.baseURL)
	assert.Equal(t, "key-a", a.apiKey)

	pool.Get("https://api.one.example/", "key-a")
	assert.Equal(t, 1, pool.Len(), "trailing slash maps to the same client")

	pool.Get("https://api.one.example", "key-b")
	assert.Equal(t, 2, pool.Len(), "different keys get different clients")

	pool.Get("https://api.two.example", "key-a")
	assert.Equal(t, 2, pool.Len(), "the pool is bounded")
}

func TestNewClientPool_InvalidSize(t *testing.T) {
	_, err := NewClientPool(0, http.DefaultClient)
	assert.Error(t, err)
}

func TestPoolKey(t *testing.T) {
	key := poolKey("https://api.example", "sk-secret")
	assert.NotContains(t, key, "sk-secret")
	assert.NotEqual(t, key, poolKey("https://api.example", "sk-other"))
	assert.Equal(t, key, poolKey("https://api.example/", "sk-secret"))
}
