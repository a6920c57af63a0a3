package main

import (
	"github.com/jfheinrich-eu/vscode-template/cmd"
)

// main delegates to cmd.Execute(), which parses the command line and
// runs the requested subcommand.
//
// repo-setup prepares a repository checkout and the shell tooling it
// expects:
//   - Detects the host platform (darwin/linux on amd64/arm64) and stops
//     on anything else rather than guessing
//   - Reads an optional YAML manifest naming pinned tools and starter
//     files; built-in defaults cover shfmt, shellcheck and the usual
//     repository seed files
//   - Installs only the tools whose binaries are not already on PATH,
//     trying package managers first (brew, apt-get, dnf), then `go
//     install`, then a direct release download
//   - Creates starter files only where nothing exists yet; a file the
//     user already has is never touched, whatever its content
//   - Prints a per-step summary at the end instead of stopping at the
//     first problem, so one broken tool cannot block the rest
//
// Error handling strategy:
//   - Unsupported platforms and invalid manifests are fatal and exit
//     non-zero before any step runs
//   - Per-step failures are collected and reported; they flip the exit
//     code only when --strict asks for it
//   - Version drift between a pinned and an installed tool is advisory
//     and only ever produces a warning
func main() {
	cmd.Execute()
}
