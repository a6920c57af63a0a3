package platform

import "os/exec"

// CommandAvailable reports whether name resolves to an executable
// through the process's command lookup. Absence is a normal result,
// never an error: callers branch on it, they do not fail on it.
func CommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
