// Package workflow sequences one commit: plan staging, collect the diff,
// generate a message, confirm, commit, push. Policy lives in the leaf
// packages; this is the thin machine on top.
package workflow

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/lazycommit/cli/internal/diff"
	"github.com/lazycommit/cli/internal/errs"
	"github.com/lazycommit/cli/internal/filter"
	"github.com/lazycommit/cli/internal/message"
	"github.com/lazycommit/cli/internal/ui"
)

// footer is appended to commit messages unless Options.NoFooter is set.
const footer = "Committed with lazycommit (github.com/lazycommit/cli)"

// GitService is the slice of the git layer the workflow drives.
type GitService interface {
	IsRepo(ctx context.Context) bool
	ListChangedPaths(ctx context.Context) ([]string, error)
	StagedPaths(ctx context.Context) ([]string, error)
	Stage(ctx context.Context, paths ...string) error
	Unstage(ctx context.Context, paths ...string) error
	Diff(ctx context.Context, staged bool) (string, error)
	Commit(ctx context.Context, message string) (string, error)
	Push(ctx context.Context) (string, error)
}

// Generator produces a commit message for a request.
type Generator interface {
	Generate(ctx context.Context, req message.Request) (message.Message, error)
}

// Prompter asks the user for decisions and edits.
type Prompter interface {
	Confirm(question string, defaultYes bool) (bool, error)
	EditText(initial string) (string, error)
}

// Options carry the per-invocation flags.
type Options struct {
	DryRun   bool
	Force    bool
	Review   bool
	NoPush   bool
	NoFooter bool

	AllowEnv       bool
	AllowDeps      bool
	AllowArtifacts bool

	MaxInputChars int
	Model         string
	MaxTokens     int
	Language      message.Language
}

// Workflow runs the stage-generate-commit-push sequence.
type Workflow struct {
	git       GitService
	generator Generator
	prompter  Prompter
	console   *ui.Console
	log       *zap.Logger
}

// New wires a Workflow. A nil log is replaced with a no-op logger.
func New(git GitService, generator Generator, prompter Prompter, console *ui.Console, log *zap.Logger) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workflow{
		git:       git,
		generator: generator,
		prompter:  prompter,
		console:   console,
		log:       log,
	}
}

// Run executes one commit workflow. It returns nil on a successful commit
// and on the successful no-ops (dry run, nothing to commit, push failure
// after a durable commit).
func (w *Workflow) Run(ctx context.Context, opts Options) error {
	if !w.git.IsRepo(ctx) {
		return errs.Repository(errors.WithHint(
			errors.New("not a git repository"),
			"Run lazycommit inside a git work tree."))
	}

	paths, err := w.git.ListChangedPaths(ctx)
	if err != nil {
		return errs.Repository(err)
	}

	plan := filter.Plan(paths, filter.Overrides{
		AllowEnv:               opts.AllowEnv,
		AllowDependencyFolders: opts.AllowDeps,
		AllowBuildArtifacts:    opts.AllowArtifacts,
	})
	w.transition("classified",
		zap.Int("changed", len(paths)),
		zap.Int("to_stage", len(plan.ToStage())),
		zap.Int("excluded", len(plan.Excluded())))
	w.console.PlanReport(plan)

	if opts.DryRun {
		w.console.Infof("🔍 Dry run: would stage %d of %d changed paths. Nothing was touched.",
			len(plan.ToStage()), len(paths))
		return nil
	}

	if err := w.stage(ctx, plan); err != nil {
		return err
	}
	w.transition("staged")

	diffText, err := w.git.Diff(ctx, true)
	if err != nil {
		return errs.Repository(err)
	}
	if strings.TrimSpace(diffText) == "" {
		w.console.Infof("Nothing to commit. The index matches HEAD.")
		return nil
	}
	stats := diff.ParseStats(diffText)
	w.transition("diff_collected",
		zap.Int("diff_chars", len(diffText)),
		zap.Int("files_changed", stats.FilesChanged))
	w.console.Infof("Staged diff: %s", stats)

	budget := diff.Budget{MaxChars: opts.MaxInputChars}
	promptDiff := diff.Summarize(diffText, budget)
	if diff.Truncated(diffText, budget) {
		w.console.Infof("✂️  Trimming git diff: %s staged, sending the first %s to the model.",
			humanize.Bytes(uint64(len(diffText))), humanize.Bytes(uint64(opts.MaxInputChars)))
		w.log.Debug("diff truncated for prompting",
			zap.Int("chars", len(diffText)),
			zap.Int("budget", opts.MaxInputChars))
	}

	stop := w.console.Spinner("Generating commit message...")
	msg, err := w.generator.Generate(ctx, message.Request{
		Diff:      promptDiff,
		Model:     opts.Model,
		MaxTokens: opts.MaxTokens,
		Language:  opts.Language,
	})
	stop()
	if err != nil {
		return err
	}
	w.transition("message_generated", zap.String("summary", msg.Summary))

	w.console.ProposedMessage(msg.String())

	if !opts.Force {
		ok, err := w.prompter.Confirm("Do you want to continue?", true)
		if err != nil {
			return errors.Wrap(err, "reading confirmation")
		}
		if !ok {
			return errs.Aborted("commit declined, nothing was committed")
		}
	}

	final := msg.String()
	if opts.Review {
		edited, err := w.prompter.EditText(final)
		if err != nil {
			return errors.Wrap(err, "editing message")
		}
		if strings.TrimSpace(edited) != "" {
			final = edited
		}
		w.transition("reviewed")
	}

	if !opts.NoFooter {
		final = final + "\n\n" + footer
	}

	commitOut, err := w.git.Commit(ctx, final)
	if err != nil {
		return errs.Repository(err)
	}
	w.transition("committed")
	w.console.Successf("✅ Committed.")
	if commitOut != "" {
		w.console.Infof("%s", commitOut)
	}

	if opts.NoPush {
		w.console.Infof("Skipping push.")
		return nil
	}

	pushOut, err := w.git.Push(ctx)
	if err != nil {
		// The commit is durable; a failed push never unwinds it.
		w.console.Warnf("⚠️  Push failed: %v", err)
		w.console.Warnf("Your commit is safe locally. Try 'git pull' and push again.")
		return nil
	}
	w.transition("pushed")
	w.console.Successf("🚀 Pushed.")
	if pushOut != "" {
		w.console.Infof("%s", pushOut)
	}
	return nil
}

// stage adds the plan's Normal paths and evicts any excluded path that was
// already sitting in the index. Eviction failure is fatal: proceeding could
// commit a path the plan refused.
func (w *Workflow) stage(ctx context.Context, plan filter.StagingPlan) error {
	if err := w.git.Stage(ctx, plan.ToStage()...); err != nil {
		return errs.Repository(err)
	}

	excluded := plan.Excluded()
	if len(excluded) == 0 {
		return nil
	}

	staged, err := w.git.StagedPaths(ctx)
	if err != nil {
		return errs.Repository(err)
	}
	inIndex := make(map[string]struct{}, len(staged))
	for _, p := range staged {
		inIndex[p] = struct{}{}
	}

	var evict []string
	for _, p := range excluded {
		if _, ok := inIndex[p]; ok {
			evict = append(evict, p)
		}
	}
	if len(evict) == 0 {
		return nil
	}

	w.log.Debug("unstaging excluded paths", zap.Strings("paths", evict))
	if err := w.git.Unstage(ctx, evict...); err != nil {
		return errs.Repository(errors.Wrap(err, "unstaging excluded paths"))
	}
	return nil
}

func (w *Workflow) transition(state string, fields ...zap.Field) {
	w.log.Debug("workflow state", append([]zap.Field{zap.String("state", state)}, fields...)...)
}
