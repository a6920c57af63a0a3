// Package installer provisions command-line tools. Each way of getting
// a tool onto the host (a package manager, the Go toolchain, a direct
// release download) is a Strategy; the Installer walks an ordered chain
// of them and stops at the first success. The chain is data, not
// control flow, so tests can reorder it or swap members out.
package installer

import (
	"context"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
	"github.com/jfheinrich-eu/vscode-template/internal/execute"
	"github.com/jfheinrich-eu/vscode-template/internal/platform"
)

// Strategy is one concrete method of installing a tool.
type Strategy interface {
	// Name identifies the strategy in log lines and error chains.
	Name() string

	// Available reports whether the strategy can run for this tool on
	// this platform: the descriptor carries the data it needs and the
	// binary it shells out to resolves on PATH. Unavailable strategies
	// are skipped silently, not treated as failures.
	Available(tool config.Tool, plat platform.Platform) bool

	// Install performs the installation. A nil return means the tool's
	// executable is expected to resolve on PATH afterwards.
	Install(ctx context.Context, tool config.Tool, plat platform.Platform) error
}

// DefaultChain assembles the fixed priority order: host package
// managers first (homebrew, then apt, then dnf), the language-ecosystem
// manager next, direct release download last.
func DefaultChain(runner execute.Runner, binDir string, timeouts config.Timeouts) []Strategy {
	return []Strategy{
		NewHomebrew(runner, timeouts.Command.Std()),
		NewApt(runner, timeouts.Command.Std()),
		NewDnf(runner, timeouts.Command.Std()),
		NewGoInstall(runner, binDir, timeouts.Command.Std()),
		NewDownload(runner, binDir, timeouts),
	}
}
