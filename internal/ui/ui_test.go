package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/lazycommit/cli/internal/filter"
)

func newTestConsole(quiet bool) (*Console, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	var out, errOut bytes.Buffer
	return NewConsole(&out, &errOut, quiet, false), &out, &errOut
}

func TestConsoleStreams(t *testing.T) {
	c, out, errOut := newTestConsole(false)

	c.Infof("staging %d files", 2)
	c.Successf("✅ committed")
	c.Warnf("push failed")
	c.Errorf("boom")

	assert.Contains(t, out.String(), "staging 2 files\n")
	assert.Contains(t, out.String(), "✅ committed\n")
	assert.Contains(t, errOut.String(), "push failed\n")
	assert.Contains(t, errOut.String(), "boom\n")
}

func TestQuietKeepsWarningsAndErrors(t *testing.T) {
	c, out, errOut := newTestConsole(true)

	c.Infof("chatter")
	c.Successf("done")
	c.Warnf("careful")
	c.Errorf("broken")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "careful\n")
	assert.Contains(t, errOut.String(), "broken\n")
}

func TestPlanReport(t *testing.T) {
	c, out, _ := newTestConsole(false)

	plan := filter.Plan([]string{
		"src/main.go",
		".env",
		"node_modules/a.js",
		"app.pyc",
	}, filter.Overrides{})
	c.PlanReport(plan)

	got := out.String()
	assert.Contains(t, got, "Excluded from this commit")
	assert.Contains(t, got, "security: .env")
	assert.Contains(t, got, "dependency folder: node_modules/a.js")
	assert.Contains(t, got, "build artifact: app.pyc")
	assert.Contains(t, got, "--allow-env, --allow-deps, --allow-artifacts")
	assert.NotContains(t, got, "src/main.go")
}

func TestPlanReportNothingExcluded(t *testing.T) {
	c, out, _ := newTestConsole(false)

	c.PlanReport(filter.Plan([]string{"src/main.go"}, filter.Overrides{}))

	assert.Empty(t, out.String())
}

func TestProposedMessageIgnoresQuiet(t *testing.T) {
	c, out, _ := newTestConsole(true)

	c.ProposedMessage("Add things\n\nBody.")

	got := out.String()
	assert.Contains(t, got, "Add things\n\nBody.")
	assert.Contains(t, got, rule)
}

func TestSpinnerWithoutAnimation(t *testing.T) {
	c, out, _ := newTestConsole(false)

	stop := c.Spinner("Generating commit message...")
	stop()

	assert.Equal(t, "Generating commit message...\n", out.String())
}
