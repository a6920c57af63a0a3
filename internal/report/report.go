// Package report collects per-step outcomes of a run and renders the
// closing summary. Nothing here persists between runs: every run
// decides what to do from the host as it is, not from a record of
// earlier runs.
package report

import (
	"fmt"

	"github.com/jfheinrich-eu/vscode-template/internal/logger"
)

// ToolStatus is the terminal state of one tool step.
type ToolStatus string

const (
	ToolInstalled      ToolStatus = "installed"
	ToolAlreadyPresent ToolStatus = "already present"
	ToolFailed         ToolStatus = "failed"
)

// FileStatus is the terminal state of one starter-file step.
type FileStatus string

const (
	FileCreated       FileStatus = "created"
	FileAlreadyExists FileStatus = "already exists"
	FileFailed        FileStatus = "failed"
)

// ToolOutcome records how one tool step ended. Strategy names the
// winning install strategy and Version the observed version, when
// either is known.
type ToolOutcome struct {
	Name     string
	Status   ToolStatus
	Strategy string
	Version  string
	Err      error
}

// FileOutcome records how one starter-file step ended.
type FileOutcome struct {
	Path   string
	Status FileStatus
	Err    error
}

// Report accumulates outcomes in the order steps ran.
type Report struct {
	Platform string
	Tools    []ToolOutcome
	Files    []FileOutcome
	Notes    []string
}

func New(platform string) *Report {
	return &Report{Platform: platform}
}

func (r *Report) AddTool(o ToolOutcome) { r.Tools = append(r.Tools, o) }
func (r *Report) AddFile(o FileOutcome) { r.Files = append(r.Files, o) }

// AddNote records an advisory worth repeating in the summary, like a
// version mismatch. Notes never fail a run.
func (r *Report) AddNote(format string, a ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, a...))
}

// Failures lists the steps that ended in failure, tools first.
func (r *Report) Failures() []string {
	var failed []string
	for _, tool := range r.Tools {
		if tool.Status == ToolFailed {
			failed = append(failed, "tool "+tool.Name)
		}
	}
	for _, f := range r.Files {
		if f.Status == FileFailed {
			failed = append(failed, "file "+f.Path)
		}
	}
	return failed
}

func (r *Report) HasFailures() bool { return len(r.Failures()) > 0 }

// Print renders the closing summary through the leveled logger, one
// line per step.
func (r *Report) Print() {
	logger.Info("Setup summary for %s", r.Platform)

	for _, tool := range r.Tools {
		switch tool.Status {
		case ToolInstalled:
			if tool.Version != "" {
				logger.Info("  tool %s: installed via %s (%s)", tool.Name, tool.Strategy, tool.Version)
			} else {
				logger.Info("  tool %s: installed via %s", tool.Name, tool.Strategy)
			}
		case ToolAlreadyPresent:
			if tool.Version != "" {
				logger.Info("  tool %s: already present (%s)", tool.Name, tool.Version)
			} else {
				logger.Info("  tool %s: already present", tool.Name)
			}
		case ToolFailed:
			logger.Error("  tool %s: failed: %v", tool.Name, tool.Err)
		}
	}

	for _, f := range r.Files {
		switch f.Status {
		case FileCreated:
			logger.Info("  file %s: created", f.Path)
		case FileAlreadyExists:
			logger.Info("  file %s: already exists", f.Path)
		case FileFailed:
			logger.Error("  file %s: failed: %v", f.Path, f.Err)
		}
	}

	for _, note := range r.Notes {
		logger.Warn("  %s", note)
	}

	if failed := r.Failures(); len(failed) > 0 {
		logger.Error("%d of %d steps failed", len(failed), len(r.Tools)+len(r.Files))
	} else {
		logger.Info("All steps succeeded")
	}
}
