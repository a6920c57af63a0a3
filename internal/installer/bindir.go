package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jfheinrich-eu/vscode-template/internal/logger"
)

// ResolveBinDir picks the directory downloaded and go-installed
// binaries land in. An explicit configured directory wins. Otherwise
// the first conventional user bin directory already on PATH is used;
// when none qualifies, fall back to ~/.local/bin and warn that the
// shell will not see it until PATH includes it.
func ResolveBinDir(configured string) (string, error) {
	if configured != "" {
		if err := os.MkdirAll(configured, 0o755); err != nil {
			return "", fmt.Errorf("create bin directory %s: %w", configured, err)
		}
		return configured, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	candidates := []string{
		filepath.Join(home, ".local", "bin"),
		filepath.Join(home, "bin"),
		"/usr/local/bin",
	}
	onPath := pathDirs()

	for _, dir := range candidates {
		if !onPath[filepath.Clean(dir)] {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Debug("skipping bin candidate %s: %v", dir, err)
			continue
		}
		return dir, nil
	}

	fallback := candidates[0]
	if err := os.MkdirAll(fallback, 0o755); err != nil {
		return "", fmt.Errorf("create bin directory %s: %w", fallback, err)
	}
	logger.Warn("%s is not on PATH; installed tools will not resolve until it is", fallback)
	return fallback, nil
}

func pathDirs() map[string]bool {
	dirs := make(map[string]bool)
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir != "" {
			dirs[filepath.Clean(dir)] = true
		}
	}
	return dirs
}

// DirWritable probes whether the current user can create files in dir.
// The probe creates and removes a real file: permission bits alone lie
// on systems with ACLs or read-only mounts.
func DirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".setup-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
