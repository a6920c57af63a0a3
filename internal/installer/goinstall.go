package installer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
	"github.com/jfheinrich-eu/vscode-template/internal/execute"
	"github.com/jfheinrich-eu/vscode-template/internal/logger"
	"github.com/jfheinrich-eu/vscode-template/internal/platform"
)

// goInstall is the language-ecosystem strategy: `go install pkg@version`
// with GOBIN pointed at the resolved bin directory, so the binary lands
// next to everything else this tool installs.
type goInstall struct {
	runner  execute.Runner
	binDir  string
	timeout time.Duration
}

// NewGoInstall builds the Go toolchain strategy.
func NewGoInstall(runner execute.Runner, binDir string, timeout time.Duration) Strategy {
	return &goInstall{runner: runner, binDir: binDir, timeout: timeout}
}

func (s *goInstall) Name() string { return "go-install" }

func (s *goInstall) Available(tool config.Tool, _ platform.Platform) bool {
	return tool.GoPackage != "" && platform.CommandAvailable("go")
}

func (s *goInstall) Install(ctx context.Context, tool config.Tool, _ platform.Platform) error {
	ref := tool.GoPackage + "@" + moduleVersion(tool.Version)

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	logger.Debug("running go install %s (GOBIN=%s)", ref, s.binDir)
	out, err := s.runner.Run(runCtx, "go", []string{"install", ref}, execute.Options{
		Env: []string{"GOBIN=" + s.binDir},
	})
	if err != nil {
		return fmt.Errorf("go install %s: %w\noutput: %s", ref, err, out)
	}
	return nil
}

// moduleVersion turns a manifest version into a module query: "latest"
// passes through, anything else gets the "v" prefix go expects.
func moduleVersion(version string) string {
	if version == "latest" || strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
