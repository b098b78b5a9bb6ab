package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// ToolDispatcher executes one tool call and always produces a result that can be
// fed back to the assistant.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, ownerID string, req domain.ToolInvocationRequest, catalog domain.ToolCatalog) domain.ToolExecutionResult
}

// ToolDispatcherImpl is the implementation of ToolDispatcher.
type ToolDispatcherImpl struct {
	registry     ToolRegistry
	commands     domain.CommandRunner
	inspector    domain.NetworkInspector
	scripts      domain.ScriptExecutor
	usageQueue   ToolUsageQueue
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewToolDispatcherImpl creates a new instance of ToolDispatcherImpl.
func NewToolDispatcherImpl(
	registry ToolRegistry,
	commands domain.CommandRunner,
	inspector domain.NetworkInspector,
	scripts domain.ScriptExecutor,
	usageQueue ToolUsageQueue,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) ToolDispatcherImpl {
	return ToolDispatcherImpl{
		registry:     registry,
		commands:     commands,
		inspector:    inspector,
		scripts:      scripts,
		usageQueue:   usageQueue,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Dispatch routes the call to a management, native or custom handler.
func (d ToolDispatcherImpl) Dispatch(ctx context.Context, ownerID string, req domain.ToolInvocationRequest, catalog domain.ToolCatalog) domain.ToolExecutionResult {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(ownerID))
	defer span.End()

	start := time.Now()
	route := domain.ResolveToolRoute(req.Name, catalog)

	var res domain.ToolExecutionResult
	switch route.Kind {
	case domain.ToolRoute_CreateTool:
		res = d.createTool(spanCtx, ownerID, req)
	case domain.ToolRoute_DeleteTool:
		res = d.deleteTool(spanCtx, ownerID, req)
	case domain.ToolRoute_RunCommand:
		res = d.runCommand(spanCtx, req)
	case domain.ToolRoute_InspectNetwork:
		res = d.inspectNetwork(spanCtx, req)
	case domain.ToolRoute_Custom:
		res = d.runCustomTool(spanCtx, ownerID, req, *route.Tool)
	default:
		err := domain.NewToolNotFoundErr(fmt.Sprintf("Tool '%s' not found.", req.Name))
		res = domain.ToolExecutionResult{Content: err.Error(), IsError: true}
	}

	res.Handler = route.Handler()
	res.Elapsed = time.Since(start)

	span.SetAttributes(
		attribute.String("tool.name", req.Name),
		attribute.String("tool.route", route.Kind.String()),
		attribute.Bool("tool.error", res.IsError),
	)
	telemetry.RecordErrorAndStatus(span, nil)
	RecordToolExecution(spanCtx, res.Handler, res.IsError, res.Elapsed)

	return res
}

func (d ToolDispatcherImpl) createTool(ctx context.Context, ownerID string, req domain.ToolInvocationRequest) domain.ToolExecutionResult {
	name, _ := req.StringArg("name")
	description, _ := req.StringArg("description")
	code, _ := req.StringArg("code")

	tool, err := d.registry.Create(ctx, ownerID, name, description, code)
	if err != nil {
		var dupErr *domain.DuplicateNameErr
		reason := "invalid definition"
		if errors.As(err, &dupErr) {
			reason = "tool already exists"
		}
		return errorResult(fmt.Sprintf("Tool creation failed: %s (%s).", reason, err.Error()))
	}

	return domain.ToolExecutionResult{
		Content: fmt.Sprintf("Tool '%s' created successfully and is now available for use.", tool.Name),
	}
}

func (d ToolDispatcherImpl) deleteTool(ctx context.Context, ownerID string, req domain.ToolInvocationRequest) domain.ToolExecutionResult {
	name, ok := req.StringArg("name")
	if !ok {
		return errorResult("Tool deletion failed: the 'name' argument is required.")
	}

	deleted, err := d.registry.Delete(ctx, ownerID, name)
	if err != nil {
		return errorResult(fmt.Sprintf("Tool deletion failed: %s.", err.Error()))
	}

	normalized := domain.NormalizeToolName(name)
	if !deleted {
		return domain.ToolExecutionResult{Content: fmt.Sprintf("Tool '%s' not found.", normalized)}
	}
	return domain.ToolExecutionResult{Content: fmt.Sprintf("Tool '%s' deleted.", normalized)}
}

func (d ToolDispatcherImpl) runCommand(ctx context.Context, req domain.ToolInvocationRequest) domain.ToolExecutionResult {
	command, ok := req.StringArg("command")
	if !ok {
		return errorResult("Command failed: the 'command' argument is required.")
	}
	out := d.commands.Run(ctx, command)
	return domain.ToolExecutionResult{Content: out.Content, IsError: out.Failed}
}

func (d ToolDispatcherImpl) inspectNetwork(ctx context.Context, req domain.ToolInvocationRequest) domain.ToolExecutionResult {
	url, ok := req.StringArg("url")
	if !ok {
		return errorResult("Network inspection failed: the 'url' argument is required.")
	}
	out := d.inspector.Inspect(ctx, url)
	return domain.ToolExecutionResult{Content: out.Content, IsError: out.Failed}
}

func (d ToolDispatcherImpl) runCustomTool(ctx context.Context, ownerID string, req domain.ToolInvocationRequest, tool domain.CustomTool) domain.ToolExecutionResult {
	out, err := d.scripts.Run(ctx, tool.Code, scriptArgs(req.Args))

	// Failed runs count as invocations too.
	d.usageQueue.Enqueue(ctx, ToolUsage{
		OwnerID:    ownerID,
		ToolName:   tool.Name,
		ExecutedAt: d.timeProvider.Now(),
	})

	if err != nil {
		d.logger.Printf("ToolDispatcher: custom tool %s of owner %s failed: %v", tool.Name, ownerID, err)
		return errorResult("Custom tool execution failed: " + err.Error())
	}
	return domain.ToolExecutionResult{Content: out}
}

// scriptArgs unwraps the generic "args" parameter advertised for custom tools.
// Calls that pass the arguments at the top level are forwarded as they are.
func scriptArgs(args map[string]any) map[string]any {
	if len(args) == 1 {
		if inner, ok := args[CustomToolArgsField].(map[string]any); ok {
			return inner
		}
	}
	if args == nil {
		return map[string]any{}
	}
	return args
}

func errorResult(content string) domain.ToolExecutionResult {
	return domain.ToolExecutionResult{Content: content, IsError: true}
}

// InitToolDispatcher initializes the ToolDispatcher use case.
type InitToolDispatcher struct {
	Registry     ToolRegistry               `resolve:""`
	Commands     domain.CommandRunner       `resolve:""`
	Inspector    domain.NetworkInspector    `resolve:""`
	Scripts      domain.ScriptExecutor      `resolve:""`
	UsageQueue   ToolUsageQueue             `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the ToolDispatcher use case in the dependency container.
func (i InitToolDispatcher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ToolDispatcher](NewToolDispatcherImpl(
		i.Registry,
		i.Commands,
		i.Inspector,
		i.Scripts,
		i.UsageQueue,
		i.TimeProvider,
		i.Logger,
	))
	return ctx, nil
}
