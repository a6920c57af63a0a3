package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jfheinrich-eu/vscode-template/internal/execute"
	"github.com/jfheinrich-eu/vscode-template/internal/logger"
	"github.com/jfheinrich-eu/vscode-template/internal/platform"
)

// ConfigureCommitTemplate points the repository's local commit.template
// at the starter message file. A host without git, a root that is not a
// git repository, or a template that is already configured all leave
// the setting alone without an error; only a failed write surfaces one.
func ConfigureCommitTemplate(ctx context.Context, runner execute.Runner, root, template string, timeout time.Duration) error {
	if !platform.CommandAvailable("git") {
		logger.Debug("git not on PATH, leaving commit.template alone")
		return nil
	}

	if _, err := git(ctx, runner, timeout, root, "rev-parse", "--is-inside-work-tree"); err != nil {
		logger.Debug("%s is not a git repository, leaving commit.template alone", root)
		return nil
	}

	if out, err := git(ctx, runner, timeout, root, "config", "--local", "--get", "commit.template"); err == nil {
		logger.Debug("commit.template already set to %s", strings.TrimSpace(string(out)))
		return nil
	}

	if out, err := git(ctx, runner, timeout, root, "config", "--local", "commit.template", template); err != nil {
		return fmt.Errorf("set commit.template: %w\noutput: %s", err, out)
	}
	logger.Info("Configured git commit.template -> %s", template)
	return nil
}

func git(ctx context.Context, runner execute.Runner, timeout time.Duration, root string, args ...string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return runner.Run(runCtx, "git", append([]string{"-C", root}, args...), execute.Options{})
}
