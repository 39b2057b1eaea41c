package cmd

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/lazycommit/cli/internal/ui"
	"github.com/lazycommit/cli/internal/update"
)

// runUpdateCheck reports whether a newer release exists. It never replaces
// the binary; installing stays in the user's hands.
func runUpdateCheck(ctx context.Context, console *ui.Console, log *zap.Logger) error {
	stop := console.Spinner("Checking for a newer release...")
	res, err := update.NewChecker(Version, log).Check(ctx)
	stop()
	if err != nil {
		return errors.Wrap(err, "release check failed")
	}

	// Remember the answer so the post-run hint stays off the network.
	if sm, err := update.NewStateManager(); err == nil {
		sm.RecordCheck(res.Latest)
		if err := sm.Save(); err != nil {
			log.Debug("saving release check state failed", zap.Error(err))
		}
	}

	switch {
	case res.Outdated:
		console.Warnf("⚠️  lazycommit %s is out of date; %s is available.", res.Current, res.Latest)
		console.Infof("Get it at https://github.com/lazycommit/cli/releases")
	case res.Current == "dev":
		console.Infof("Running a dev build; the newest release is %s.", res.Latest)
	default:
		console.Successf("✅ lazycommit %s is up to date.", res.Current)
	}
	return nil
}
