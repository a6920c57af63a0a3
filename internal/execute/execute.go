// Package execute runs external commands on behalf of install
// strategies and the bootstrapper. Every invocation is bounded by the
// caller's context, and output is captured as one combined stream,
// which is how package-manager output is best reported back to the
// user on failure.
package execute

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Options adjusts a single invocation.
type Options struct {
	Dir string   // working directory; empty inherits the parent's
	Env []string // KEY=VALUE pairs appended to the parent environment
}

// Runner abstracts external process execution so install strategies can
// be exercised in tests without touching the host.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) ([]byte, error)
}

// CmdRunner is the real Runner backed by os/exec.
type CmdRunner struct{}

// Run executes name with args and returns combined stdout/stderr.
func (CmdRunner) Run(ctx context.Context, name string, args []string, opts Options) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}
	return cmd.CombinedOutput()
}

var _ Runner = CmdRunner{}

// CommandLine renders an invocation for log lines.
func CommandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
