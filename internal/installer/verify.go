package installer

import (
	"context"
	"regexp"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
	"github.com/jfheinrich-eu/vscode-template/internal/execute"
	"github.com/jfheinrich-eu/vscode-template/internal/logger"
)

// VersionStatus is the outcome of comparing an installed tool's
// reported version against the pinned one.
type VersionStatus int

const (
	// VersionUnknown means the probe could not run or its output held
	// nothing that parses as a version.
	VersionUnknown VersionStatus = iota
	VersionMatch
	VersionMismatch
)

var versionToken = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)*`)

// ProbeVersion runs the tool's version command and compares the first
// version-looking token of its output against the pinned version. The
// result is advisory: a mismatch or an unprobeable binary is worth a
// warning, never a failed run.
func ProbeVersion(ctx context.Context, runner execute.Runner, tool config.Tool, timeout time.Duration) (VersionStatus, string) {
	args := tool.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := runner.Run(runCtx, tool.BinName(), args, execute.Options{})
	if err != nil {
		logger.Debug("version probe for %s failed: %v", tool.BinName(), err)
		return VersionUnknown, ""
	}

	observed := versionToken.FindString(string(out))
	if observed == "" {
		logger.Debug("no version token in %s output: %q", tool.BinName(), out)
		return VersionUnknown, ""
	}
	if tool.Version == "latest" {
		return VersionMatch, observed
	}

	want, err := goversion.NewVersion(tool.Version)
	if err != nil {
		return VersionUnknown, observed
	}
	got, err := goversion.NewVersion(observed)
	if err != nil {
		return VersionUnknown, observed
	}
	if got.Equal(want) {
		return VersionMatch, observed
	}
	return VersionMismatch, observed
}
