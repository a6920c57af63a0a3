package installer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
	"github.com/jfheinrich-eu/vscode-template/internal/platform"
)

// fakeCommands points PATH at a directory holding only the named stub
// executables, so availability checks see exactly these commands.
func fakeCommands(t *testing.T, names ...string) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755))
	}
	t.Setenv("PATH", dir)
}

func TestPackageManagerAvailability(t *testing.T) {
	fakeCommands(t, "brew", "apt-get")

	runner := &fakeRunner{}
	brew := NewHomebrew(runner, time.Second)
	apt := NewApt(runner, time.Second)
	dnf := NewDnf(runner, time.Second)

	tool := config.Tool{Name: "shfmt", BrewFormula: "shfmt", AptPackage: "shfmt", DnfPackage: "shfmt"}
	darwinARM := platform.Platform{OS: "darwin", Arch: "arm64"}

	assert.True(t, brew.Available(tool, linuxAMD64))
	assert.True(t, brew.Available(tool, darwinARM))
	assert.True(t, apt.Available(tool, linuxAMD64))
	assert.False(t, apt.Available(tool, darwinARM), "apt never serves darwin")
	assert.False(t, dnf.Available(tool, linuxAMD64), "dnf binary is not on PATH")
	assert.False(t, brew.Available(config.Tool{Name: "unmapped"}, darwinARM), "no formula means nothing to install")
}

func TestAptInstallCommandLine(t *testing.T) {
	fakeCommands(t, "apt-get", "sudo")

	runner := &fakeRunner{}
	apt := NewApt(runner, time.Second)
	tool := config.Tool{Name: "shellcheck", AptPackage: "shellcheck"}

	require.NoError(t, apt.Install(context.Background(), tool, linuxAMD64))
	require.Len(t, runner.calls, 1)

	wantName := "apt-get"
	wantArgs := []string{"install", "-y", "shellcheck"}
	if os.Geteuid() != 0 {
		wantName = "sudo"
		wantArgs = append([]string{"apt-get"}, wantArgs...)
	}
	assert.Equal(t, wantName, runner.calls[0].name)
	assert.Equal(t, wantArgs, runner.calls[0].args)
}

func TestBrewInstallNeverEscalates(t *testing.T) {
	fakeCommands(t, "brew")

	runner := &fakeRunner{}
	brew := NewHomebrew(runner, time.Second)
	tool := config.Tool{Name: "shfmt", BrewFormula: "shfmt"}

	require.NoError(t, brew.Install(context.Background(), tool, platform.Platform{OS: "darwin", Arch: "arm64"}))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "brew", runner.calls[0].name)
	assert.Equal(t, []string{"install", "shfmt"}, runner.calls[0].args)
}

func TestPackageManagerInstallWrapsOutput(t *testing.T) {
	fakeCommands(t, "dnf", "sudo")

	runner := &fakeRunner{out: []byte("No match for argument: ShellCheck"), err: errors.New("exit status 1")}
	dnf := NewDnf(runner, time.Second)
	tool := config.Tool{Name: "shellcheck", DnfPackage: "ShellCheck"}

	err := dnf.Install(context.Background(), tool, linuxAMD64)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ShellCheck")
	assert.Contains(t, err.Error(), "No match for argument")
}
