package selftest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

// maxOutputBytes bounds how much of a failing tool's output is kept.
const maxOutputBytes = 4096

type ExecutionResult struct {
	ExitCode int
	Output   string
	Duration time.Duration
}

type Executor interface {
	Execute(ctx context.Context, check Check) (*ExecutionResult, error)
}

// CommandExecutor runs checks as child processes on the host.
type CommandExecutor struct {
	DefaultTimeout time.Duration
}

func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{DefaultTimeout: DefaultTimeout}
}

// Execute returns a result whenever the process ran, even with a non-zero
// exit code. The error is set when it could not be started or timed out.
func (e *CommandExecutor) Execute(ctx context.Context, check Check) (*ExecutionResult, error) {
	timeout := check.Timeout
	if timeout <= 0 {
		timeout = e.DefaultTimeout
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(execCtx, check.Command, check.Args...)
	cmd.Dir = check.Dir
	cmd.WaitDelay = time.Second

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	started := time.Now()
	err := cmd.Run()
	result := &ExecutionResult{
		ExitCode: -1,
		Output:   tail(output.String(), maxOutputBytes),
		Duration: time.Since(started),
	}

	if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
		return result, fmt.Errorf("%s timed out after %s", check.Command, timeout)
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, fmt.Errorf("run %s: %w", check.Command, err)
	}

	return result, nil
}

// tail keeps at most the last n bytes of s, starting on a rune boundary.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}

	cut := len(s) - n
	for cut < len(s) && !utf8.RuneStart(s[cut]) {
		cut++
	}
	return "..." + s[cut:]
}
