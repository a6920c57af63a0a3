package config

import "time"

// Pinned tool versions. Bump deliberately: the download URLs below are
// versioned, and the post-install probe compares what the host reports
// against these.
const (
	ShfmtVersion      = "v3.12.0"
	ShellcheckVersion = "v0.10.0"
)

// Timeout bounds applied when the manifest does not set its own.
const (
	DefaultCommandTimeout  = 90 * time.Second
	DefaultDownloadTimeout = 5 * time.Minute
)

const defaultReadme = `# New Project

This repository was bootstrapped from the project template. Replace this
file with documentation for your project:

- what the project does and who it is for
- how to build, test, and run it
- how to contribute
`

const defaultGitignore = `# OS artifacts
.DS_Store
Thumbs.db

# Editor state
*.swp
*.swo
*~
.idea/

# Logs and scratch space
*.log
tmp/
`

const defaultGitmessage = `# <type>(<scope>): <summary, imperative mood, max 50 chars>
#
# Body: what changed and why, wrapped at 72 characters.
#
# Types: feat, fix, docs, style, refactor, test, chore
# Footer: issue references, e.g. "Closes #123".
`

// Default returns the built-in run manifest: the shell tooling the
// template's projects lint and format with, and the starter files a
// fresh repository needs. Callers get a fresh value each time; nothing
// here is shared or mutated.
func Default() Manifest {
	return Manifest{
		Tools: []Tool{
			{
				Name:        "shfmt",
				Version:     ShfmtVersion,
				BrewFormula: "shfmt",
				AptPackage:  "shfmt",
				DnfPackage:  "shfmt",
				GoPackage:   "mvdan.cc/sh/v3/cmd/shfmt",
				DownloadURL: "https://github.com/mvdan/sh/releases/download/{version}/shfmt_{version}_{os}_{arch}",
				VersionArgs: []string{"--version"},
			},
			{
				Name:        "shellcheck",
				Version:     ShellcheckVersion,
				BrewFormula: "shellcheck",
				AptPackage:  "shellcheck",
				// Fedora packages it under its project capitalization.
				DnfPackage:  "ShellCheck",
				DownloadURL: "https://github.com/koalaman/shellcheck/releases/download/{version}/shellcheck-{version}.{os}.{unamearch}.tar.xz",
				VersionArgs: []string{"--version"},
			},
		},
		Files: []StarterFile{
			{Path: "README.md", Content: defaultReadme},
			{Path: ".gitignore", Content: defaultGitignore},
			{Path: ".gitmessage", Content: defaultGitmessage},
		},
		Timeouts: Timeouts{
			Command:  Duration(DefaultCommandTimeout),
			Download: Duration(DefaultDownloadTimeout),
		},
	}
}
