package cmd

import (
	"os"

	"github.com/lazycommit/cli/internal/errs"
	"github.com/lazycommit/cli/internal/shell"
	"github.com/lazycommit/cli/internal/ui"
)

// runAliasSetup installs the lc alias into the detected shell's startup
// file. An unsupported shell is not an error: the user gets the line to add
// by hand.
func runAliasSetup(console *ui.Console) error {
	console.Infof("Setting up the 'lc' alias for lazycommit...")

	sh := shell.Detect()
	if sh == nil {
		console.Warnf("⚠️  Unknown shell %q. Add %q to your shell config by hand.",
			os.Getenv("SHELL"), shell.AliasLine)
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return errs.Configuration(err)
	}

	res, err := shell.Install(sh, home)
	if err != nil {
		return errs.Configuration(err)
	}

	if res.Already {
		console.Infof("An 'lc' alias already exists in %s. Nothing to do.", res.Path)
		return nil
	}

	console.Successf("✅ Added %q to %s.", shell.AliasLine, res.Path)
	console.Infof("Restart your shell or run 'source %s' to start using it.", res.Path)
	return nil
}
