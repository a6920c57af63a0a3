// Package setup runs a bootstrap end to end: decide what is missing,
// install missing tools, seed missing starter files, and collect a
// per-step report. Steps run in manifest order and a failed step never
// stops the ones after it.
package setup

import (
	"context"
	"path/filepath"

	"github.com/jfheinrich-eu/vscode-template/internal/bootstrap"
	"github.com/jfheinrich-eu/vscode-template/internal/config"
	"github.com/jfheinrich-eu/vscode-template/internal/execute"
	"github.com/jfheinrich-eu/vscode-template/internal/installer"
	"github.com/jfheinrich-eu/vscode-template/internal/logger"
	"github.com/jfheinrich-eu/vscode-template/internal/platform"
	"github.com/jfheinrich-eu/vscode-template/internal/report"
)

// ToolInstaller installs one tool and names the strategy that worked.
// *installer.Installer is the production implementation.
type ToolInstaller interface {
	Install(ctx context.Context, tool config.Tool, plat platform.Platform) (string, error)
}

// Setup holds everything one run needs. The caller resolves the
// platform and builds the installer chain before constructing it.
type Setup struct {
	Manifest  config.Manifest
	Platform  platform.Platform
	Runner    execute.Runner
	Installer ToolInstaller
	Root      string
}

// Run executes the full bootstrap: tools first, then starter files.
func (s *Setup) Run(ctx context.Context) *report.Report {
	rep := report.New(s.Platform.String())
	s.runTools(ctx, rep)
	s.runFiles(ctx, rep)
	return rep
}

// RunTools executes only the tool steps.
func (s *Setup) RunTools(ctx context.Context) *report.Report {
	rep := report.New(s.Platform.String())
	s.runTools(ctx, rep)
	return rep
}

// RunFiles executes only the starter-file steps.
func (s *Setup) RunFiles(ctx context.Context) *report.Report {
	rep := report.New(s.Platform.String())
	s.runFiles(ctx, rep)
	return rep
}

func (s *Setup) runTools(ctx context.Context, rep *report.Report) {
	for _, tool := range s.Manifest.Tools {
		bin := tool.BinName()

		if platform.CommandAvailable(bin) {
			logger.Info("%s already present, leaving it alone", bin)
			outcome := report.ToolOutcome{Name: tool.Name, Status: report.ToolAlreadyPresent}
			s.noteVersion(ctx, tool, &outcome, rep)
			rep.AddTool(outcome)
			continue
		}

		strategy, err := s.Installer.Install(ctx, tool, s.Platform)
		if err != nil {
			logger.Error("%s: %v", tool.Name, err)
			rep.AddTool(report.ToolOutcome{Name: tool.Name, Status: report.ToolFailed, Err: err})
			continue
		}

		outcome := report.ToolOutcome{Name: tool.Name, Status: report.ToolInstalled, Strategy: strategy}
		if platform.CommandAvailable(bin) {
			s.noteVersion(ctx, tool, &outcome, rep)
		} else {
			// Usually means the bin directory is not on PATH yet; the
			// binary is installed, the shell just cannot see it.
			logger.Warn("%s installed but does not resolve on PATH yet", bin)
			rep.AddNote("%s installed but does not resolve on PATH yet", bin)
		}
		rep.AddTool(outcome)
	}
}

// noteVersion probes what the binary reports and records it on the
// outcome. A mismatch with the pinned version becomes a summary note,
// never a failure.
func (s *Setup) noteVersion(ctx context.Context, tool config.Tool, outcome *report.ToolOutcome, rep *report.Report) {
	status, observed := installer.ProbeVersion(ctx, s.Runner, tool, s.Manifest.Timeouts.Command.Std())
	outcome.Version = observed
	if status == installer.VersionMismatch {
		logger.Warn("%s reports %s, manifest pins %s", tool.BinName(), observed, tool.Version)
		rep.AddNote("%s reports %s, manifest pins %s", tool.BinName(), observed, tool.Version)
	}
}

func (s *Setup) runFiles(ctx context.Context, rep *report.Report) {
	var gitmessage string

	for _, f := range s.Manifest.Files {
		created, err := bootstrap.EnsureFile(s.Root, f)
		switch {
		case err != nil:
			logger.Error("%s: %v", f.Path, err)
			rep.AddFile(report.FileOutcome{Path: f.Path, Status: report.FileFailed, Err: err})
			continue
		case created:
			logger.Info("Created %s", f.Path)
			rep.AddFile(report.FileOutcome{Path: f.Path, Status: report.FileCreated})
		default:
			logger.Info("%s already exists, leaving it alone", f.Path)
			rep.AddFile(report.FileOutcome{Path: f.Path, Status: report.FileAlreadyExists})
		}

		if filepath.Base(f.Path) == ".gitmessage" {
			gitmessage = f.Path
		}
	}

	if gitmessage != "" {
		err := bootstrap.ConfigureCommitTemplate(ctx, s.Runner, s.Root, gitmessage, s.Manifest.Timeouts.Command.Std())
		if err != nil {
			logger.Warn("commit template: %v", err)
			rep.AddNote("commit template not configured: %v", err)
		}
	}
}
