package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfheinrich-eu/vscode-template/internal/execute"
)

type gitResponse struct {
	out []byte
	err error
}

// scriptedRunner replays canned responses in order and records every
// command it saw.
type scriptedRunner struct {
	t      *testing.T
	calls  [][]string
	script []gitResponse
}

func (s *scriptedRunner) Run(_ context.Context, name string, args []string, _ execute.Options) ([]byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if len(s.script) == 0 {
		s.t.Fatalf("unexpected command: %s %v", name, args)
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next.out, next.err
}

// fakeGit puts a stub git executable on PATH.
func fakeGit(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "git"), []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)
}

func TestConfigureCommitTemplateSkipsWithoutGit(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	runner := &scriptedRunner{t: t}

	err := ConfigureCommitTemplate(context.Background(), runner, ".", ".gitmessage", time.Second)

	require.NoError(t, err)
	assert.Empty(t, runner.calls)
}

func TestConfigureCommitTemplateSkipsOutsideRepo(t *testing.T) {
	fakeGit(t)
	runner := &scriptedRunner{t: t, script: []gitResponse{
		{err: errors.New("exit status 128")}, // rev-parse
	}}

	err := ConfigureCommitTemplate(context.Background(), runner, "/tmp/plain-dir", ".gitmessage", time.Second)

	require.NoError(t, err)
	assert.Len(t, runner.calls, 1)
}

func TestConfigureCommitTemplateKeepsExisting(t *testing.T) {
	fakeGit(t)
	runner := &scriptedRunner{t: t, script: []gitResponse{
		{out: []byte("true\n")},             // rev-parse
		{out: []byte(".github/template\n")}, // config --get
	}}

	err := ConfigureCommitTemplate(context.Background(), runner, ".", ".gitmessage", time.Second)

	require.NoError(t, err)
	assert.Len(t, runner.calls, 2, "an existing template must not be overwritten")
}

func TestConfigureCommitTemplateSetsWhenUnset(t *testing.T) {
	fakeGit(t)
	runner := &scriptedRunner{t: t, script: []gitResponse{
		{out: []byte("true\n")},            // rev-parse
		{err: errors.New("exit status 1")}, // config --get, unset
		{},                                 // config set
	}}

	err := ConfigureCommitTemplate(context.Background(), runner, "/repo", ".gitmessage", time.Second)

	require.NoError(t, err)
	require.Len(t, runner.calls, 3)
	assert.Equal(t,
		[]string{"git", "-C", "/repo", "config", "--local", "commit.template", ".gitmessage"},
		runner.calls[2])
}

func TestConfigureCommitTemplateSurfacesWriteFailure(t *testing.T) {
	fakeGit(t)
	runner := &scriptedRunner{t: t, script: []gitResponse{
		{out: []byte("true\n")},
		{err: errors.New("exit status 1")},
		{out: []byte("error: could not lock config file"), err: errors.New("exit status 255")},
	}}

	err := ConfigureCommitTemplate(context.Background(), runner, "/repo", ".gitmessage", time.Second)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "set commit.template")
	assert.Contains(t, err.Error(), "could not lock config file")
}
