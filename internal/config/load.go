package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Load builds the manifest for a run. With an empty path it returns the
// built-in defaults; otherwise the YAML file at path overrides them
// section by section (a provided tools list replaces the default list
// wholesale, and likewise for files). Load never panics: a broken
// manifest is an error for the caller to surface.
func Load(path string) (Manifest, error) {
	m := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Manifest{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return Manifest{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	m.applyDefaults()

	if err := m.Validate(); err != nil {
		if path != "" {
			return Manifest{}, fmt.Errorf("config %s: %w", path, err)
		}
		return Manifest{}, err
	}
	return m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Timeouts.Command <= 0 {
		m.Timeouts.Command = Duration(DefaultCommandTimeout)
	}
	if m.Timeouts.Download <= 0 {
		m.Timeouts.Download = Duration(DefaultDownloadTimeout)
	}
}

// Validate checks the struct-tag rules plus the cross-field rules tags
// cannot express: every tool needs at least one install source, and
// starter file paths must stay inside the repository.
func (m Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	for _, t := range m.Tools {
		if t.BrewFormula == "" && t.AptPackage == "" && t.DnfPackage == "" &&
			t.GoPackage == "" && t.DownloadURL == "" {
			return fmt.Errorf("tool %q has no install source: set one of brew, apt, dnf, go, download_url", t.Name)
		}
	}

	for _, f := range m.Files {
		clean := filepath.Clean(f.Path)
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return fmt.Errorf("starter file path %q must stay inside the repository root", f.Path)
		}
	}
	return nil
}
