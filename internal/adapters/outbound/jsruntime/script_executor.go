package jsruntime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/dop251/goja"
)

// MaxOutputBytes caps the text returned by a custom tool.
const MaxOutputBytes = 10000

// globals removed from every runtime before the tool code runs.
var blockedGlobals = []string{"XMLHttpRequest", "fetch", "require", "process", "__dirname", "__filename"}

// GojaScriptExecutor runs custom tool code in a fresh goja runtime per call.
//
// Runs are bounded in time and call stack depth but not in memory: goja has no heap
// limit, so code that allocates in a tight loop can grow the process heap until the
// time budget interrupts it. Keep SCRIPT_TIMEOUT short on hosts shared with other work.
type GojaScriptExecutor struct {
	timeout      time.Duration
	maxCallStack int
}

// NewGojaScriptExecutor creates a new GojaScriptExecutor.
func NewGojaScriptExecutor(timeout time.Duration, maxCallStack int) GojaScriptExecutor {
	return GojaScriptExecutor{
		timeout:      timeout,
		maxCallStack: maxCallStack,
	}
}

// Run wraps code in `(function(args) { ... })`, calls it with args and returns the
// result as text. The runtime is interrupted once the time budget is spent.
func (e GojaScriptExecutor) Run(ctx context.Context, code string, args map[string]any) (result string, err error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	execCtx, cancel := context.WithTimeout(spanCtx, e.timeout)
	defer cancel()

	vm := goja.New()
	if e.maxCallStack > 0 {
		vm.SetMaxCallStackSize(e.maxCallStack)
	}
	go func() {
		<-execCtx.Done()
		vm.Interrupt(execCtx.Err())
	}()

	defer func() {
		if r := recover(); r != nil {
			result, err = "", domain.NewScriptRuntimeErr(fmt.Sprintf("%v", r))
		}
		telemetry.RecordErrorAndStatus(span, err)
	}()

	for _, blocked := range blockedGlobals {
		if setErr := vm.Set(blocked, goja.Undefined()); setErr != nil {
			return "", domain.NewScriptRuntimeErr(setErr.Error())
		}
	}

	fnVal, err := vm.RunString(wrapCode(code))
	if err != nil {
		return "", e.toDomainErr(execCtx, err)
	}
	fn, ok := goja.AssertFunction(fnVal)
	if !ok {
		return "", domain.NewScriptRuntimeErr("tool code is not a function body")
	}

	if args == nil {
		args = map[string]any{}
	}
	val, err := fn(goja.Undefined(), vm.ToValue(args))
	if err != nil {
		return "", e.toDomainErr(execCtx, err)
	}

	return truncate(stringify(val), MaxOutputBytes), nil
}

func (e GojaScriptExecutor) toDomainErr(ctx context.Context, err error) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) || ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return domain.NewExecutionTimeoutErr("execution was canceled")
		}
		return domain.NewExecutionTimeoutErr(fmt.Sprintf("execution exceeded the %s time budget", e.timeout))
	}

	var exception *goja.Exception
	if errors.As(err, &exception) && exception.Value() != nil {
		return domain.NewScriptRuntimeErr(exception.Value().String())
	}
	return domain.NewScriptRuntimeErr(err.Error())
}

func wrapCode(code string) string {
	return "(function(args) {\n" + code + "\n})"
}

// stringify flattens a JS value to text. Objects and arrays become JSON.
func stringify(val goja.Value) string {
	if val == nil || goja.IsUndefined(val) {
		return "undefined"
	}
	if goja.IsNull(val) {
		return "null"
	}
	if obj, ok := val.(*goja.Object); ok {
		if _, isFunc := goja.AssertFunction(obj); !isFunc {
			if b, err := json.Marshal(obj); err == nil {
				return string(b)
			}
		}
	}
	return val.String()
}

// truncate caps s at max bytes, backing off to the previous rune boundary.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n...(truncated)"
}

// InitScriptExecutor registers the goja executor as the domain.ScriptExecutor.
type InitScriptExecutor struct {
	Timeout      time.Duration `config:"SCRIPT_TIMEOUT" default:"1s"`
	MaxCallStack int           `config:"SCRIPT_MAX_CALL_STACK" default:"1024"`
}

// Initialize registers the executor in the dependency container.
func (i InitScriptExecutor) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ScriptExecutor](NewGojaScriptExecutor(i.Timeout, i.MaxCallStack))
	return ctx, nil
}
