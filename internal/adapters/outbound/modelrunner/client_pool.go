package modelrunner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ClientPool hands out one CompletionsClient per provider credential pair and keeps
// only the most recently used ones.
type ClientPool struct {
	httpClient *http.Client
	clients    *lru.Cache[string, CompletionsClient]
}

// NewClientPool creates a pool holding at most size clients.
func NewClientPool(size int, httpClient *http.Client) (*ClientPool, error) {
	clients, err := lru.New[string, CompletionsClient](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create client pool: %w", err)
	}
	return &ClientPool{
		httpClient: httpClient,
		clients:    clients,
	}, nil
}

// Get returns the client for baseURL and apiKey, creating it on first use.
func (p *ClientPool) Get(baseURL, apiKey string) CompletionsClient {
	key := poolKey(baseURL, apiKey)
	if client, ok := p.clients.Get(key); ok {
		return client
	}
	client := NewCompletionsClient(baseURL, apiKey, p.httpClient)
	p.clients.Add(key, client)
	return client
}

// Len returns the number of pooled clients.
func (p *ClientPool) Len() int {
	return p.clients.Len()
}

// poolKey never embeds the raw API key.
func poolKey(baseURL, apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return strings.TrimRight(baseURL, "/") + "#" + hex.EncodeToString(sum[:])
}
