package http

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolChatServer_Handler_Routes(t *testing.T) {
	tests := map[string]struct {
		method         string
		path           string
		ownerID        string
		expectedStatus int
	}{
		"healthz": {
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		"mcp-requires-owner": {
			method:         http.MethodPost,
			path:           "/mcp",
			expectedStatus: http.StatusUnauthorized,
		},
		"tools-requires-owner": {
			method:         http.MethodGet,
			path:           "/api/v1/tools",
			expectedStatus: http.StatusUnauthorized,
		},
		"unknown-route": {
			method:         http.MethodGet,
			path:           "/api/v1/unknown",
			ownerID:        "owner-1",
			expectedStatus: http.StatusNotFound,
		},
		"method-not-allowed": {
			method:         http.MethodPut,
			path:           "/api/v1/tools/sum",
			ownerID:        "owner-1",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := newTestServer(t, usecases.NewMockRunChatTurn(t), usecases.NewMockToolRegistry(t))

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			if tt.ownerID != "" {
				req.Header.Set(UserIDHeader, tt.ownerID)
			}
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestToolChatServer_Handler_CORSPreflight(t *testing.T) {
	server := newTestServer(t, usecases.NewMockRunChatTurn(t), usecases.NewMockToolRegistry(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat/turns", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close() //nolint:errcheck
	return l.Addr().(*net.TCPAddr).Port
}

func TestToolChatServer_Run(t *testing.T) {
	server := newTestServer(t, usecases.NewMockRunChatTurn(t), usecases.NewMockToolRegistry(t))
	server.Port = freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return server.IsReady(context.Background()) == nil
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(6 * time.Second):
		t.Fatal("server did not stop")
	}
}
