package selftest

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestCommandExecutor_ExitCodes(t *testing.T) {
	sh := requireShell(t)
	e := NewCommandExecutor()

	res, err := e.Execute(context.Background(), Check{Command: sh, Args: []string{"-c", "echo fine"}})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "fine", res.Output)

	res, err = e.Execute(context.Background(), Check{Command: sh, Args: []string{"-c", "echo broken >&2; exit 3"}})
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "broken", res.Output)
}

func TestCommandExecutor_MissingBinary(t *testing.T) {
	_, err := NewCommandExecutor().Execute(context.Background(), Check{Command: "definitely-not-a-real-tool-xyz"})
	require.Error(t, err)
}

func TestCommandExecutor_Timeout(t *testing.T) {
	sh := requireShell(t)

	res, err := NewCommandExecutor().Execute(context.Background(), Check{
		Command: sh,
		Args:    []string{"-c", "exec sleep 5"},
		Timeout: 50 * time.Millisecond,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Equal(t, -1, res.ExitCode)
}

func TestTail(t *testing.T) {
	assert.Equal(t, "abc", tail("  abc \n", 10))

	long := strings.Repeat("x", 20) + "END"
	assert.Equal(t, "...xxEND", tail(long, 5))

	// each Hebrew letter is two bytes; a cut inside one moves to the next letter
	hebrew := "aשלום"
	out := tail(hebrew, 7)
	assert.Equal(t, "...לום", out)
	assert.True(t, utf8.ValidString(out))
}
