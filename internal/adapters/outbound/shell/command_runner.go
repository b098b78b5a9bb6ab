package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/shlex"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MaxOutputBytes caps the text returned by a command.
const MaxOutputBytes = 10000

// AllowedCommands lists the read-only informational programs run_command may start.
var AllowedCommands = []string{
	"ls", "pwd", "cat", "grep", "whoami", "date", "echo", "ping", "curl",
	"ps", "node", "npm", "python3", "go", "git", "uptime", "free",
}

// argPolicy reports whether an allowed program may run with args.
type argPolicy func(args []string) bool

// commandArgPolicies narrows programs that can execute code or write files to their
// informational uses. Programs not listed accept any arguments.
var commandArgPolicies = map[string]argPolicy{
	"node":    onlyOneOf("--version", "-v"),
	"npm":     onlyOneOf("--version", "-v", "version"),
	"python3": onlyOneOf("--version", "-V"),
	"go":      onlyOneOf("version"),
	"git":     gitReadOnly,
	"curl": refuseOptions("oODcKT",
		"output", "remote-name", "remote-name-all", "output-dir", "dump-header", "cookie-jar",
		"trace", "trace-ascii", "stderr", "libcurl", "config", "upload-file", "etag-save",
		"hsts", "alt-svc",
	),
	"date": refuseOptions("s", "set"),
}

func onlyOneOf(allowed ...string) argPolicy {
	return func(args []string) bool {
		return len(args) == 1 && slices.Contains(allowed, args[0])
	}
}

// refuseOptions blocks the given long options (with or without =value) and any short
// option cluster containing one of the short letters.
func refuseOptions(short string, long ...string) argPolicy {
	return func(args []string) bool {
		for _, arg := range args {
			if name, ok := strings.CutPrefix(arg, "--"); ok {
				name, _, _ = strings.Cut(name, "=")
				if slices.Contains(long, name) {
					return false
				}
				continue
			}
			if strings.HasPrefix(arg, "-") && short != "" && strings.ContainsAny(arg[1:], short) {
				return false
			}
		}
		return true
	}
}

// gitReadOnly allows status, log, diff and --version. Global options such as -C or -c
// cannot precede the subcommand.
func gitReadOnly(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "--version":
		return len(args) == 1
	case "status", "log", "diff":
		return refuseOptions("", "output", "ext-diff")(args[1:])
	default:
		return false
	}
}

// execFunc runs a program with its arguments and returns stdout, stderr and the run error.
type execFunc func(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)

// RestrictedCommandRunner runs allow-listed commands without a shell.
type RestrictedCommandRunner struct {
	timeout time.Duration
	allowed map[string]struct{}
	exec    execFunc
}

// NewRestrictedCommandRunner creates a new RestrictedCommandRunner.
func NewRestrictedCommandRunner(timeout time.Duration) RestrictedCommandRunner {
	allowed := make(map[string]struct{}, len(AllowedCommands))
	for _, c := range AllowedCommands {
		allowed[c] = struct{}{}
	}
	return RestrictedCommandRunner{
		timeout: timeout,
		allowed: allowed,
		exec:    runProcess,
	}
}

// Run executes command if it passes the allow-list policy. It never fails: blocked,
// failing and timed out commands are reported through ToolOutput.
func (r RestrictedCommandRunner) Run(ctx context.Context, command string) domain.ToolOutput {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	argv, ok := r.parse(command)
	if !ok {
		span.SetAttributes(attribute.Bool("command.blocked", true))
		return domain.ToolOutput{Content: domain.CommandBlockedMessage, Failed: true}
	}
	span.SetAttributes(
		attribute.String("command.name", argv[0]),
		attribute.Bool("command.blocked", false),
	)

	execCtx, cancel := context.WithTimeout(spanCtx, r.timeout)
	defer cancel()

	stdout, stderr, err := r.exec(execCtx, argv[0], argv[1:]...)
	if err != nil {
		return r.failure(execCtx, span, stderr, err)
	}

	out := truncate(string(stdout))
	if strings.TrimSpace(out) == "" {
		out = "(no output)"
	}
	return domain.ToolOutput{Content: out}
}

// parse tokenizes command and applies the policy. It returns false when the command is blocked.
func (r RestrictedCommandRunner) parse(command string) ([]string, bool) {
	if strings.ContainsAny(command, ">|") {
		return nil, false
	}
	argv, err := shlex.Split(command)
	if err != nil || len(argv) == 0 {
		return nil, false
	}
	if _, ok := r.allowed[argv[0]]; !ok {
		return nil, false
	}
	if policy, ok := commandArgPolicies[argv[0]]; ok && !policy(argv[1:]) {
		return nil, false
	}
	if argv[0] == "ping" && !slices.Contains(argv[1:], "-c") {
		argv = append(argv, "-c", "4")
	}
	return argv, true
}

func (r RestrictedCommandRunner) failure(ctx context.Context, span trace.Span, stderr []byte, err error) domain.ToolOutput {
	telemetry.RecordErrorAndStatus(span, err)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.ToolOutput{
			Content: fmt.Sprintf("command timed out after %s", r.timeout),
			Failed:  true,
		}
	}
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		msg = err.Error()
	}
	return domain.ToolOutput{Content: truncate(msg), Failed: true}
}

func runProcess(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// truncate caps s at MaxOutputBytes without splitting a UTF-8 sequence.
func truncate(s string) string {
	if len(s) <= MaxOutputBytes {
		return s
	}
	cut := MaxOutputBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n...(truncated)"
}

// InitCommandRunner registers the RestrictedCommandRunner as the domain.CommandRunner.
type InitCommandRunner struct {
	Timeout time.Duration `config:"SHELL_COMMAND_TIMEOUT" default:"5s"`
}

// Initialize registers the runner in the dependency container.
func (i InitCommandRunner) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CommandRunner](NewRestrictedCommandRunner(i.Timeout))
	return ctx, nil
}
