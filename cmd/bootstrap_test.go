package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jfheinrich-eu/vscode-template/internal/report"
)

func TestFinishExitPolicy(t *testing.T) {
	failed := report.New("linux/amd64")
	failed.AddTool(report.ToolOutcome{Name: "shfmt", Status: report.ToolFailed, Err: errors.New("all strategies failed")})

	clean := report.New("linux/amd64")
	clean.AddTool(report.ToolOutcome{Name: "shfmt", Status: report.ToolAlreadyPresent})

	t.Cleanup(func() { strict = false })

	strict = false
	assert.NoError(t, finish(failed), "per-step failures exit non-zero only under --strict")
	assert.NoError(t, finish(clean))

	strict = true
	assert.Error(t, finish(failed))
	assert.NoError(t, finish(clean))
}
