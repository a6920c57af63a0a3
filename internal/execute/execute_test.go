package execute

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests shell out to sh")
	}
}

func TestCmdRunnerCapturesCombinedOutput(t *testing.T) {
	skipWithoutShell(t)
	t.Parallel()

	out, err := CmdRunner{}.Run(context.Background(), "sh", []string{"-c", "echo out; echo err 1>&2"}, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "out")
	assert.Contains(t, string(out), "err")
}

func TestCmdRunnerAppendsEnv(t *testing.T) {
	skipWithoutShell(t)
	t.Parallel()

	out, err := CmdRunner{}.Run(context.Background(), "sh", []string{"-c", `printf %s "$SETUP_PROBE"`}, Options{
		Env: []string{"SETUP_PROBE=present"},
	})
	require.NoError(t, err)
	assert.Equal(t, "present", string(out))
}

func TestCmdRunnerHonorsContextDeadline(t *testing.T) {
	skipWithoutShell(t)
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := CmdRunner{}.Run(ctx, "sh", []string{"-c", "sleep 5"}, Options{})
	assert.Error(t, err)
}

func TestCommandLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "apt-get install -y shfmt", CommandLine("apt-get", []string{"install", "-y", "shfmt"}))
}
