package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
	"github.com/rs/cors"
)

var _ gen.ServerInterface = (*ToolChatServer)(nil)

// ToolChatServer is the REST and MCP HTTP server of the application.
type ToolChatServer struct {
	Port               int                   `config:"HTTP_PORT" default:"8080"`
	AdminToken         string                `config:"ADMIN_TOKEN" default:"-"`
	Logger             *log.Logger           `resolve:""`
	RunChatTurnUseCase usecases.RunChatTurn  `resolve:""`
	ToolRegistry       usecases.ToolRegistry `resolve:""`
	MCPServer          mcp.ToolServer        `resolve:""`
}

// Handler builds the routed handler with telemetry and CORS applied.
func (api ToolChatServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/mcp", requireOwner(api.MCPServer.Handler(ownerFromRequest)))

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Create the OpenAPI handler with owner authentication
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter:       mux,
		Middlewares:      []gen.MiddlewareFunc{ownerAuth},
		ErrorHandlerFunc: respondParamError,
	})
	h = telemetry.Middleware("toolchat-api")(h)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server and stops it gracefully when ctx is canceled.
func (api ToolChatServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("ToolChatServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("ToolChatServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("ToolChatServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the ToolChatServer is ready by performing a health check.
func (api ToolChatServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
