package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/browser"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/jsruntime"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/memstore"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/shell"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
)

// NewToolChatApp creates and returns a new instance of the ToolChat application.
func NewToolChatApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitCustomToolRepository{},
			&memstore.InitCustomToolRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&jsruntime.InitScriptExecutor{},
			&shell.InitCommandRunner{},
			&browser.InitNetworkInspector{},
			&modelrunner.InitAssistantClient{},

			&usecases.InitToolRegistry{},
			&usecases.InitToolUsageQueue{},
			&usecases.InitToolCatalogBuilder{},
			&usecases.InitToolDispatcher{},
			&usecases.InitRunChatTurn{},
			&usecases.InitInvokeTool{},
			&mcp.InitToolServer{},
		).
		Host(
			&http.ToolChatServer{},
			&workers.ToolUsageRecorder{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
