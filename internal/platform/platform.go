// Package platform identifies the host operating system and CPU
// architecture and answers whether a command is resolvable on PATH.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is the normalized host descriptor consumed by install
// strategies and download URL templates.
type Platform struct {
	OS   string // "darwin" or "linux"
	Arch string // "amd64" or "arm64"
}

// Detect returns the normalized platform of the running host. The
// orchestrator computes this once per run; everything downstream treats
// the result as read-only.
func Detect() (Platform, error) {
	return Normalize(runtime.GOOS, runtime.GOARCH)
}

// Normalize collapses vendor spellings of OS and architecture names
// into the canonical tokens used everywhere else. It accepts both Go's
// runtime values and uname output, e.g. "Darwin" and "x86_64".
// An unrecognized value is a terminal error: there is no fallback
// strategy for unknown hardware.
func Normalize(osName, arch string) (Platform, error) {
	var p Platform

	switch strings.ToLower(osName) {
	case "darwin", "macos":
		p.OS = "darwin"
	case "linux":
		p.OS = "linux"
	default:
		return Platform{}, fmt.Errorf("unsupported operating system %q: only darwin and linux hosts are supported", osName)
	}

	switch strings.ToLower(arch) {
	case "amd64", "x86_64":
		p.Arch = "amd64"
	case "arm64", "aarch64":
		p.Arch = "arm64"
	default:
		return Platform{}, fmt.Errorf("unsupported architecture %q: install the tools for this machine manually", arch)
	}

	return p, nil
}

// UnameArch returns the `uname -m` spelling of the architecture.
// Several upstream projects (shellcheck among them) name their release
// assets with these tokens instead of Go's.
func (p Platform) UnameArch() string {
	switch p.Arch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	}
	return p.Arch
}

// String renders the platform as "os/arch" for log lines.
func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}
