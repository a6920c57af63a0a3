package installer

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
	"github.com/jfheinrich-eu/vscode-template/internal/logger"
	"github.com/jfheinrich-eu/vscode-template/internal/platform"
)

// Installer tries strategies in chain order until one succeeds.
type Installer struct {
	strategies []Strategy
}

// New builds an Installer over the given chain. Order is priority.
func New(strategies []Strategy) *Installer {
	return &Installer{strategies: strategies}
}

// Install walks the chain for one tool and stops at the first strategy
// that succeeds, returning its name. A strategy that does not apply to
// this tool and platform is skipped silently; one that applies and
// fails is recorded and the walk moves on. When every applicable
// strategy has failed the error aggregates each attempt, and when none
// applied at all the error says so directly.
func (i *Installer) Install(ctx context.Context, tool config.Tool, plat platform.Platform) (string, error) {
	var errs *multierror.Error
	tried := 0

	for _, s := range i.strategies {
		if !s.Available(tool, plat) {
			logger.Debug("strategy %s does not apply to %s", s.Name(), tool.Name)
			continue
		}
		tried++
		logger.Info("Installing %s %s via %s", tool.Name, tool.Version, s.Name())
		if err := s.Install(ctx, tool, plat); err != nil {
			logger.Warn("%s via %s failed: %v", tool.Name, s.Name(), err)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		return s.Name(), nil
	}

	if tried == 0 {
		return "", fmt.Errorf("no install strategy available for %s on %s", tool.Name, plat)
	}
	return "", fmt.Errorf("all strategies failed for %s: %w", tool.Name, errs.ErrorOrNil())
}
