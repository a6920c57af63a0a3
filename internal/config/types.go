// Package config defines the run manifest for repo-setup: which tools
// to provision, which starter files to create, where binaries land, and
// how long external commands may run. The manifest is built once (from
// the built-in defaults, optionally overridden by a YAML file), then
// passed read-only into the orchestrator.
package config

import (
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"
)

// Tool describes one command-line tool to provision. Name and Version
// identify it; the remaining fields carry per-strategy installation
// data. A strategy applies to the tool only when its field is set, so
// an empty GoPackage simply means "no language-ecosystem install for
// this one".
type Tool struct {
	// Name is the logical tool name used in log lines and summaries.
	Name string `yaml:"name" validate:"required"`

	// Version is the pinned release, e.g. "v3.12.0". Package-manager
	// strategies install whatever the manager carries and treat the pin
	// as advisory; the download strategy substitutes it into the URL.
	Version string `yaml:"version" validate:"required"`

	// Bin is the executable name to resolve on PATH when it differs
	// from Name. Empty means Name.
	Bin string `yaml:"bin,omitempty"`

	// Package names per host package manager. Empty disables the
	// corresponding strategy for this tool.
	BrewFormula string `yaml:"brew,omitempty"`
	AptPackage  string `yaml:"apt,omitempty"`
	DnfPackage  string `yaml:"dnf,omitempty"`

	// GoPackage is the `go install` path, e.g. "mvdan.cc/sh/v3/cmd/shfmt".
	GoPackage string `yaml:"go,omitempty"`

	// DownloadURL is an HTTPS release URL template. Recognized
	// placeholders: {version}, {os}, {arch}, {unamearch}. A template
	// ending in a known archive suffix is extracted; anything else is
	// treated as a bare executable.
	DownloadURL string `yaml:"download_url,omitempty" validate:"omitempty,startswith=https://"`

	// VersionArgs invoke the installed tool for its version string.
	// Empty means ["--version"].
	VersionArgs []string `yaml:"version_args,omitempty"`
}

// BinName returns the executable name the presence check resolves.
func (t Tool) BinName() string {
	if t.Bin != "" {
		return t.Bin
	}
	return t.Name
}

// StarterFile is one create-if-absent project file: path relative to
// the repository root plus its literal default content. Existing files
// are never touched.
type StarterFile struct {
	Path    string      `yaml:"path" validate:"required"`
	Content string      `yaml:"content"`
	Mode    fs.FileMode `yaml:"mode,omitempty"`
}

// FileMode returns the creation mode, defaulting to 0644.
func (f StarterFile) FileMode() fs.FileMode {
	if f.Mode == 0 {
		return 0o644
	}
	return f.Mode
}

// Duration wraps time.Duration so YAML manifests can spell timeouts as
// "90s" or "5m".
type Duration time.Duration

// UnmarshalYAML decodes a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Timeouts bounds external work so a hung package manager or a stalled
// download cannot block the run forever.
type Timeouts struct {
	// Command limits a single external invocation (package manager,
	// go install, git, version probe).
	Command Duration `yaml:"command,omitempty"`

	// Download limits one HTTPS release download.
	Download Duration `yaml:"download,omitempty"`
}

// Manifest is the immutable configuration for one setup run.
type Manifest struct {
	Tools    []Tool        `yaml:"tools" validate:"dive"`
	Files    []StarterFile `yaml:"files" validate:"dive"`
	BinDir   string        `yaml:"bin_dir,omitempty"`
	Timeouts Timeouts      `yaml:"timeouts,omitempty"`
}
