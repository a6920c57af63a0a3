// Package bootstrap seeds a repository with starter files and wires
// the git commit template. Every operation is create-if-absent:
// whatever already exists is left byte-for-byte untouched.
package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
)

// EnsureFile creates the starter file under root when nothing exists at
// its path yet and reports whether it did. An existing file is never
// rewritten, not even an empty one or one with different content.
func EnsureFile(root string, f config.StarterFile) (bool, error) {
	path := filepath.Join(root, f.Path)

	// Lstat so an existing symlink counts as present even when its
	// target is gone.
	if _, err := os.Lstat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create parent directory for %s: %w", path, err)
	}
	if err := writeFileAtomic(path, []byte(f.Content), f.FileMode()); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// writeFileAtomic lands data at path through a temp file in the same
// directory and a rename, so a crash can never leave a half-written
// starter file behind.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
