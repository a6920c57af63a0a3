package installer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
)

func TestModuleVersion(t *testing.T) {
	tests := []struct{ in, want string }{
		{"latest", "latest"},
		{"v3.12.0", "v3.12.0"},
		{"3.12.0", "v3.12.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, moduleVersion(tt.in))
	}
}

func TestGoInstallAvailability(t *testing.T) {
	s := NewGoInstall(&fakeRunner{}, t.TempDir(), time.Second)
	tool := config.Tool{Name: "shfmt", GoPackage: "mvdan.cc/sh/v3/cmd/shfmt"}

	fakeCommands(t, "go")
	assert.True(t, s.Available(tool, linuxAMD64))
	assert.False(t, s.Available(config.Tool{Name: "shellcheck"}, linuxAMD64), "no module path, nothing to build")

	fakeCommands(t) // empty PATH directory
	assert.False(t, s.Available(tool, linuxAMD64), "needs a go toolchain on PATH")
}

func TestGoInstallCommandAndGOBIN(t *testing.T) {
	binDir := t.TempDir()
	runner := &fakeRunner{}
	s := NewGoInstall(runner, binDir, time.Second)
	tool := config.Tool{Name: "shfmt", Version: "3.12.0", GoPackage: "mvdan.cc/sh/v3/cmd/shfmt"}

	require.NoError(t, s.Install(context.Background(), tool, linuxAMD64))
	require.Len(t, runner.calls, 1)

	call := runner.calls[0]
	assert.Equal(t, "go", call.name)
	assert.Equal(t, []string{"install", "mvdan.cc/sh/v3/cmd/shfmt@v3.12.0"}, call.args)
	assert.Contains(t, call.opts.Env, "GOBIN="+binDir)
}
