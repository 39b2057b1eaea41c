// Package ui owns every user-facing line the tool prints. Logging is
// separate: zap carries diagnostics, ui carries the conversation.
package ui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/lazycommit/cli/internal/filter"
)

// rule separates the proposed commit message from surrounding chatter.
const rule = "------------------------------"

// A few of the friendlier charsets, picked at random per spinner.
var spinnerCharsets = []int{9, 11, 14, 26, 28, 35, 43}

// Console writes user-facing output. Informational lines go to out,
// warnings and errors to errOut. quiet keeps warnings and errors only.
type Console struct {
	out     io.Writer
	errOut  io.Writer
	quiet   bool
	animate bool
}

// NewConsole builds a Console. animate enables spinner animations and only
// makes sense when out is an interactive terminal.
func NewConsole(out, errOut io.Writer, quiet, animate bool) *Console {
	return &Console{out: out, errOut: errOut, quiet: quiet, animate: animate}
}

// Interactive reports whether w is attached to a terminal.
func Interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Infof prints an informational line.
func (c *Console) Infof(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Successf prints a green line.
func (c *Console) Successf(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(c.out, format+"\n", args...)
}

// Warnf prints a yellow line to the error stream. Warnings survive quiet
// mode.
func (c *Console) Warnf(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(c.errOut, format+"\n", args...)
}

// Errorf prints a red line to the error stream.
func (c *Console) Errorf(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(c.errOut, format+"\n", args...)
}

// PlanReport prints the staging plan: which paths are excluded, grouped by
// classification, and how to override each group.
func (c *Console) PlanReport(plan filter.StagingPlan) {
	if c.quiet {
		return
	}

	groups := plan.Exclusions.Groups()
	if len(groups) == 0 {
		return
	}

	color.New(color.FgYellow).Fprintf(c.out, "⚠️  Excluded from this commit:\n")
	var hints []string
	for _, g := range groups {
		fmt.Fprintf(c.out, "   %s: %s\n", g.Class, strings.Join(g.Paths, ", "))
		switch g.Class {
		case filter.Security:
			hints = append(hints, "--allow-env")
		case filter.DependencyFolder:
			hints = append(hints, "--allow-deps")
		case filter.BuildArtifact:
			hints = append(hints, "--allow-artifacts")
		}
	}
	fmt.Fprintf(c.out, "   include them with %s\n", strings.Join(hints, ", "))
}

// ProposedMessage prints the commit message between rules. It ignores
// quiet: the message is the product of the run, not chatter.
func (c *Console) ProposedMessage(message string) {
	fmt.Fprintf(c.out, "%s\n%s\n%s\n", rule, message, rule)
}

// Spinner shows an animated status line and returns a stop function. With
// animations off the message prints once and the stop function is a no-op.
func (c *Console) Spinner(message string) func() {
	if !c.animate || c.quiet {
		c.Infof("%s", message)
		return func() {}
	}

	cs := spinner.CharSets[spinnerCharsets[rand.Intn(len(spinnerCharsets))]]
	s := spinner.New(cs, 100*time.Millisecond, spinner.WithWriter(c.out))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
