package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lazycommit/cli/internal/client"
	"github.com/lazycommit/cli/internal/diff"
	"github.com/lazycommit/cli/internal/errs"
	"github.com/lazycommit/cli/internal/git"
	"github.com/lazycommit/cli/internal/logging"
	"github.com/lazycommit/cli/internal/message"
	"github.com/lazycommit/cli/internal/prompt"
	"github.com/lazycommit/cli/internal/ui"
	"github.com/lazycommit/cli/internal/update"
	"github.com/lazycommit/cli/internal/workflow"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
)

var (
	flagDryRun         bool
	flagReview         bool
	flagForce          bool
	flagAllowEnv       bool
	flagAllowDeps      bool
	flagAllowArtifacts bool
	flagNoPush         bool
	flagNoFooter       bool
	flagMaxTokens      int
	flagMaxInputChars  int
	flagModel          string
	flagLang           string
	flagSetupAlias     bool
	flagUpdate         bool
	flagVerbose        bool
	flagQuiet          bool
)

var rootCmd = &cobra.Command{
	Use:   "lazycommit",
	Short: "Stage, generate a commit message, commit, and push in one step",
	Long: `lazycommit turns your working tree into a pushed commit in one step.

It stages your changes while keeping secrets, dependency folders, and build
artifacts out of the index, asks an OpenAI-compatible model for a commit
message based on the staged diff, then commits and pushes the result.

Get started:
  1. Set your API key: export OPENAI_API_KEY="sk-..."
  2. Run 'lazycommit' inside a repository
  3. Optional: 'lazycommit --setup-alias' installs the 'lc' shell alias`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		// A project-local .env may carry OPENAI_API_KEY.
		_ = godotenv.Load()
	},
	RunE: runRoot,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(statusCmd)

	fl := rootCmd.Flags()
	fl.BoolVarP(&flagDryRun, "dry-run", "d", false, "Show the staging plan and stop before touching anything")
	fl.BoolVarP(&flagReview, "review", "r", false, "Open the generated message in your editor before committing")
	fl.BoolVarP(&flagForce, "force", "f", false, "Skip the confirmation prompt")
	fl.BoolVarP(&flagAllowEnv, "allow-env", "e", false, "Stage .env and other secret-looking files")
	fl.BoolVar(&flagAllowDeps, "allow-deps", false, "Stage dependency folders like node_modules")
	fl.BoolVar(&flagAllowArtifacts, "allow-artifacts", false, "Stage build artifacts like *.pyc and .DS_Store")
	fl.BoolVarP(&flagNoPush, "no-push", "p", false, "Commit but do not push")
	fl.IntVarP(&flagMaxTokens, "max-tokens", "t", client.DefaultMaxTokens, "Maximum tokens the model may spend on the message")
	fl.IntVarP(&flagMaxInputChars, "max-input-chars", "i", client.DefaultMaxInputChars, "Maximum characters of git diff to send to the model (0 = unlimited)")
	fl.StringVarP(&flagModel, "model", "m", client.DefaultModel, "Model used to generate the message")
	fl.StringVar(&flagLang, "lang", "en", "Commit message language (en, pt-br)")
	fl.BoolVar(&flagNoFooter, "no-footer", false, "Leave the lazycommit footer out of the message")
	fl.BoolVarP(&flagSetupAlias, "setup-alias", "s", false, "Install the 'lc' shell alias and exit")
	fl.BoolVarP(&flagUpdate, "update", "u", false, "Check for a newer release and exit")
	fl.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	fl.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := logging.New(flagVerbose).With(zap.String("run_id", uuid.NewString()))
	defer logger.Sync()

	animate := ui.Interactive(os.Stdout) && !flagQuiet && !flagVerbose
	console := ui.NewConsole(os.Stdout, os.Stderr, flagQuiet, animate)

	if flagSetupAlias {
		return runAliasSetup(console)
	}
	if flagUpdate {
		return runUpdateCheck(cmd.Context(), console, logger)
	}

	cfg := client.LoadConfig()
	if !cfg.IsConfigured() {
		return errs.Configuration(errors.WithHint(
			errors.New("OPENAI_API_KEY is not set"),
			"Create a key at https://platform.openai.com/api-keys, then export OPENAI_API_KEY or run 'lazycommit config set --api-key=...'."))
	}

	opts, err := resolveOptions(cmd, cfg)
	if err != nil {
		return err
	}

	logger.Debug("starting workflow",
		zap.String("model", opts.Model),
		zap.Bool("dry_run", opts.DryRun),
		zap.Bool("force", opts.Force),
		zap.Bool("review", opts.Review))

	gitSvc := git.NewService("", logger)
	generator := message.NewService(client.NewClient(cfg, Version, logger), logger)
	prompter := prompt.NewTerminalPrompter(os.Stdin, os.Stdout)

	if err := workflow.New(gitSvc, generator, prompter, console, logger).Run(cmd.Context(), opts); err != nil {
		return err
	}

	if hint := update.PostRunHint(cmd.Context(), Version, logger); hint != "" {
		console.Infof("%s", hint)
	}
	return nil
}

// resolveOptions merges flags over the loaded configuration. A flag wins
// only when it was set on the command line, so config file values are not
// shadowed by flag defaults.
func resolveOptions(cmd *cobra.Command, cfg *client.Config) (workflow.Options, error) {
	opts := workflow.Options{
		DryRun:         flagDryRun,
		Force:          flagForce,
		Review:         flagReview,
		NoPush:         flagNoPush,
		NoFooter:       flagNoFooter,
		AllowEnv:       flagAllowEnv,
		AllowDeps:      flagAllowDeps,
		AllowArtifacts: flagAllowArtifacts,
		Model:          cfg.Model,
		MaxTokens:      cfg.MaxTokens,
		MaxInputChars:  cfg.MaxInputChars,
	}

	if cmd.Flags().Changed("model") {
		opts.Model = flagModel
	}
	if cmd.Flags().Changed("max-tokens") {
		opts.MaxTokens = flagMaxTokens
	}
	if cmd.Flags().Changed("max-input-chars") {
		opts.MaxInputChars = flagMaxInputChars
	}

	if opts.MaxTokens <= 0 {
		return opts, errs.Configuration(errors.New("--max-tokens must be positive"))
	}
	if opts.MaxInputChars != 0 && opts.MaxInputChars < diff.MinBudget {
		return opts, errs.Configuration(errors.Newf(
			"--max-input-chars must be 0 (unlimited) or at least %d", diff.MinBudget))
	}

	langName := cfg.Language
	if cmd.Flags().Changed("lang") {
		langName = flagLang
	}
	lang, err := message.ParseLanguage(langName)
	if err != nil {
		return opts, errs.Configuration(err)
	}
	opts.Language = lang

	return opts, nil
}

func printError(err error) {
	if errs.IsAborted(err) {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hints)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("lazycommit %s\n", Version)
	},
}
