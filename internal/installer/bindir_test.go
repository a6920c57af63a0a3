package installer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBinDirExplicit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom", "bin")

	got, err := ResolveBinDir(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.DirExists(t, dir)
}

func TestResolveBinDirPicksCandidateOnPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	userBin := filepath.Join(home, "bin")
	t.Setenv("PATH", "/somewhere/else:"+userBin)

	got, err := ResolveBinDir("")

	require.NoError(t, err)
	assert.Equal(t, userBin, got)
	assert.DirExists(t, userBin)
}

func TestResolveBinDirFallsBackWhenNothingOnPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PATH", "/usr/sbin")

	got, err := ResolveBinDir("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "bin"), got)
	assert.DirExists(t, got)
}

func TestDirWritable(t *testing.T) {
	assert.True(t, DirWritable(t.TempDir()))
	assert.False(t, DirWritable(filepath.Join(t.TempDir(), "missing")))
}
