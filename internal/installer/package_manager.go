package installer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
	"github.com/jfheinrich-eu/vscode-template/internal/execute"
	"github.com/jfheinrich-eu/vscode-template/internal/logger"
	"github.com/jfheinrich-eu/vscode-template/internal/platform"
)

// packageManager is the shared shape of the host package-manager
// strategies. Each instance knows its manager binary, which platforms
// it serves, how to read its package name off a tool descriptor, and
// whether installs need root.
type packageManager struct {
	binary      string
	oses        []string
	needsRoot   bool
	runner      execute.Runner
	timeout     time.Duration
	packageName func(config.Tool) string
	installArgs func(pkg string) []string
}

// NewHomebrew installs through brew. Homebrew runs unprivileged and
// serves both macOS and Linux.
func NewHomebrew(runner execute.Runner, timeout time.Duration) Strategy {
	return &packageManager{
		binary:      "brew",
		oses:        []string{"darwin", "linux"},
		needsRoot:   false,
		runner:      runner,
		timeout:     timeout,
		packageName: func(t config.Tool) string { return t.BrewFormula },
		installArgs: func(pkg string) []string { return []string{"install", pkg} },
	}
}

// NewApt installs through apt-get on Debian-family hosts.
func NewApt(runner execute.Runner, timeout time.Duration) Strategy {
	return &packageManager{
		binary:      "apt-get",
		oses:        []string{"linux"},
		needsRoot:   true,
		runner:      runner,
		timeout:     timeout,
		packageName: func(t config.Tool) string { return t.AptPackage },
		installArgs: func(pkg string) []string { return []string{"install", "-y", pkg} },
	}
}

// NewDnf installs through dnf on RHEL-family hosts.
func NewDnf(runner execute.Runner, timeout time.Duration) Strategy {
	return &packageManager{
		binary:      "dnf",
		oses:        []string{"linux"},
		needsRoot:   true,
		runner:      runner,
		timeout:     timeout,
		packageName: func(t config.Tool) string { return t.DnfPackage },
		installArgs: func(pkg string) []string { return []string{"install", "-y", pkg} },
	}
}

func (s *packageManager) Name() string { return s.binary }

func (s *packageManager) Available(tool config.Tool, plat platform.Platform) bool {
	if s.packageName(tool) == "" {
		return false
	}
	for _, osName := range s.oses {
		if osName == plat.OS {
			return platform.CommandAvailable(s.binary)
		}
	}
	return false
}

func (s *packageManager) Install(ctx context.Context, tool config.Tool, plat platform.Platform) error {
	pkg := s.packageName(tool)
	name := s.binary
	args := s.installArgs(pkg)

	// Escalate only when the manager needs root and the process is not
	// already running as root.
	if s.needsRoot && os.Geteuid() != 0 {
		if !platform.CommandAvailable("sudo") {
			return fmt.Errorf("%s requires root and sudo is not available", s.binary)
		}
		args = append([]string{name}, args...)
		name = "sudo"
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	logger.Debug("running %s", execute.CommandLine(name, args))
	out, err := s.runner.Run(runCtx, name, args, execute.Options{})
	if err != nil {
		return fmt.Errorf("%s install %s: %w\noutput: %s", s.binary, pkg, err, out)
	}
	return nil
}
