package jsruntime

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGojaScriptExecutor_Run(t *testing.T) {
	tests := map[string]struct {
		code string
		args map[string]any
		want string
	}{
		"sum-of-args": {
			code: "return args.a + args.b;",
			args: map[string]any{"a": 2.0, "b": 3.0},
			want: "5",
		},
		"decimal-result": {
			code: "return args.a / 2;",
			args: map[string]any{"a": 5.0},
			want: "2.5",
		},
		"string-result": {
			code: "return 'hello ' + args.name;",
			args: map[string]any{"name": "ana"},
			want: "hello ana",
		},
		"boolean-result": {
			code: "return args.a > 1;",
			args: map[string]any{"a": 2.0},
			want: "true",
		},
		"object-result-as-json": {
			code: "return {sum: args.a + args.b, ok: true};",
			args: map[string]any{"a": 1.0, "b": 1.0},
			want: `{"sum":2,"ok":true}`,
		},
		"array-result-as-json": {
			code: "return [1, 'two', null];",
			want: `[1,"two",null]`,
		},
		"no-return-is-undefined": {
			code: "var x = 1;",
			want: "undefined",
		},
		"null-result": {
			code: "return null;",
			want: "null",
		},
		"nil-args-are-empty-object": {
			code: "return Object.keys(args).length;",
			args: nil,
			want: "0",
		},
		"multi-statement-body": {
			code: "var total = 0;\nfor (var i = 0; i < args.items.length; i++) { total += args.items[i]; }\nreturn total;",
			args: map[string]any{"items": []any{1.0, 2.0, 3.0}},
			want: "6",
		},
		"fetch-is-blocked": {
			code: "return typeof fetch;",
			want: "undefined",
		},
		"require-is-blocked": {
			code: "return typeof require;",
			want: "undefined",
		},
		"process-is-blocked": {
			code: "return typeof process;",
			want: "undefined",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			executor := NewGojaScriptExecutor(time.Second, 1024)
			got, err := executor.Run(context.Background(), tt.code, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGojaScriptExecutor_Run_Errors(t *testing.T) {
	tests := map[string]struct {
		code        string
		wantMessage string
	}{
		"thrown-error": {
			code:        "throw new Error('boom');",
			wantMessage: "Error: boom",
		},
		"reference-error": {
			code:        "return missingVariable + 1;",
			wantMessage: "ReferenceError",
		},
		"syntax-error": {
			code:        "return (1 + ;",
			wantMessage: "SyntaxError",
		},
		"thrown-string": {
			code:        "throw 'plain failure';",
			wantMessage: "plain failure",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			executor := NewGojaScriptExecutor(time.Second, 1024)
			_, err := executor.Run(context.Background(), tt.code, map[string]any{})

			var runtimeErr *domain.ScriptRuntimeErr
			require.ErrorAs(t, err, &runtimeErr)
			assert.Contains(t, err.Error(), tt.wantMessage)
			assert.NotContains(t, err.Error(), "\n", "no stack trace is exposed")
		})
	}
}

func TestGojaScriptExecutor_Run_InfiniteLoopTimesOut(t *testing.T) {
	executor := NewGojaScriptExecutor(time.Second, 1024)

	start := time.Now()
	_, err := executor.Run(context.Background(), "while (true) {}", map[string]any{})
	elapsed := time.Since(start)

	var timeoutErr *domain.ExecutionTimeoutErr
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, "execution exceeded the 1s time budget", err.Error())
	assert.LessOrEqual(t, elapsed, 1500*time.Millisecond)
}

func TestGojaScriptExecutor_Run_CanceledContext(t *testing.T) {
	executor := NewGojaScriptExecutor(5*time.Second, 1024)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := executor.Run(ctx, "while (true) {}", map[string]any{})

	var timeoutErr *domain.ExecutionTimeoutErr
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, "execution was canceled", err.Error())
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestGojaScriptExecutor_Run_DeepRecursionFails(t *testing.T) {
	executor := NewGojaScriptExecutor(time.Second, 128)
	_, err := executor.Run(context.Background(), "function f(n) { return f(n + 1); }\nreturn f(0);", map[string]any{})

	var runtimeErr *domain.ScriptRuntimeErr
	assert.ErrorAs(t, err, &runtimeErr)
}

func TestGojaScriptExecutor_Run_IsolatedRuntimes(t *testing.T) {
	executor := NewGojaScriptExecutor(time.Second, 1024)

	_, err := executor.Run(context.Background(), "globalThis.leaked = 42; return 1;", nil)
	require.NoError(t, err)

	got, err := executor.Run(context.Background(), "return typeof globalThis.leaked;", nil)
	require.NoError(t, err)
	assert.Equal(t, "undefined", got)
}

func TestGojaScriptExecutor_Run_TruncatesOutput(t *testing.T) {
	executor := NewGojaScriptExecutor(time.Second, 1024)
	got, err := executor.Run(context.Background(), "return 'x'.repeat(20000);", nil)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
	assert.Equal(t, MaxOutputBytes+len("\n...(truncated)"), len(got))
}

func TestGojaScriptExecutor_Run_TruncatesOnRuneBoundary(t *testing.T) {
	executor := NewGojaScriptExecutor(time.Second, 1024)
	got, err := executor.Run(context.Background(), "return 'x'.repeat(9999) + 'é'.repeat(10);", nil)
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("x", 9999)+"\n...(truncated)", got)
}

func TestInitScriptExecutor_Initialize(t *testing.T) {
	i := InitScriptExecutor{Timeout: time.Second, MaxCallStack: 1024}
	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	executor, err := depend.Resolve[domain.ScriptExecutor]()
	require.NoError(t, err)
	assert.IsType(t, GojaScriptExecutor{}, executor)
}
