package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
	"github.com/jfheinrich-eu/vscode-template/internal/execute"
	"github.com/jfheinrich-eu/vscode-template/internal/installer"
	"github.com/jfheinrich-eu/vscode-template/internal/platform"
	"github.com/jfheinrich-eu/vscode-template/internal/report"
	"github.com/jfheinrich-eu/vscode-template/internal/setup"
)

// Flags shared by bootstrap and its subcommands.
var (
	configPath string
	binDir     string
	targetDir  string
	strict     bool
)

// bootstrapCmd runs the whole thing: missing tools first, then the
// starter files.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Install missing tools and seed starter files",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSetup()
		if err != nil {
			return err
		}
		return finish(s.Run(cmd.Context()))
	},
}

// bootstrapToolsCmd installs only the missing tools.
var bootstrapToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Install only the missing tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSetup()
		if err != nil {
			return err
		}
		return finish(s.RunTools(cmd.Context()))
	},
}

// bootstrapFilesCmd seeds only the starter files.
var bootstrapFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "Seed only the starter files",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSetup()
		if err != nil {
			return err
		}
		return finish(s.RunFiles(cmd.Context()))
	},
}

// newSetup resolves everything a run needs up front. Failures here are
// fatal: an unsupported host or an unreadable manifest stops the run
// before any step executes.
func newSetup() (*setup.Setup, error) {
	plat, err := platform.Detect()
	if err != nil {
		return nil, err
	}

	manifest, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if binDir != "" {
		manifest.BinDir = binDir
	}

	dir, err := installer.ResolveBinDir(manifest.BinDir)
	if err != nil {
		return nil, err
	}

	runner := execute.CmdRunner{}
	return &setup.Setup{
		Manifest:  manifest,
		Platform:  plat,
		Runner:    runner,
		Installer: installer.New(installer.DefaultChain(runner, dir, manifest.Timeouts)),
		Root:      targetDir,
	}, nil
}

// finish prints the summary and maps per-step failures onto the exit
// policy: they fail the process only under --strict.
func finish(rep *report.Report) error {
	rep.Print()
	if strict && rep.HasFailures() {
		return fmt.Errorf("%d step(s) failed", len(rep.Failures()))
	}
	return nil
}

// init wires flags and registers the command tree.
func init() {
	bootstrapCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the manifest file (built-in defaults when empty)")
	bootstrapCmd.PersistentFlags().StringVar(&binDir, "bin-dir", "", "Directory for downloaded binaries (overrides the manifest)")
	bootstrapCmd.PersistentFlags().StringVar(&targetDir, "target", ".", "Repository root that receives starter files")
	bootstrapCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Exit non-zero when any step fails")

	bootstrapCmd.AddCommand(bootstrapToolsCmd)
	bootstrapCmd.AddCommand(bootstrapFilesCmd)
	rootCmd.AddCommand(bootstrapCmd)
}
