package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-version"
	"go.uber.org/zap"
)

const (
	// ReleaseURL is the GitHub API endpoint describing the newest release.
	ReleaseURL = "https://api.github.com/repos/lazycommit/cli/releases/latest"

	// HintInterval is how often the post-run release check may hit the
	// network.
	HintInterval = 24 * time.Hour

	// devVersion marks builds that never came from a release.
	devVersion = "dev"

	checkTimeout = 10 * time.Second
)

// Result describes the outcome of a release check.
type Result struct {
	Current string
	Latest  string
	// Outdated is true when the running build is older than Latest. It
	// stays false when the running build's version cannot be parsed,
	// such as a dev build.
	Outdated bool
}

// Checker queries the release endpoint and compares versions.
type Checker struct {
	current    string
	releaseURL string
	httpClient *http.Client
	log        *zap.Logger
}

// NewChecker returns a Checker for the running build's version string.
func NewChecker(current string, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{
		current:    current,
		releaseURL: ReleaseURL,
		httpClient: &http.Client{Timeout: checkTimeout},
		log:        log,
	}
}

// Check fetches the newest release and compares it with the running build.
func (c *Checker) Check(ctx context.Context) (Result, error) {
	res := Result{Current: c.current}

	latest, err := c.fetchLatest(ctx)
	if err != nil {
		return res, err
	}
	res.Latest = latest

	cur, err := version.NewVersion(strings.TrimPrefix(c.current, "v"))
	if err != nil {
		c.log.Debug("running build has no comparable version", zap.String("version", c.current))
		return res, nil
	}
	lat, err := version.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return res, errors.Wrapf(err, "parsing release version %q", latest)
	}

	res.Outdated = cur.LessThan(lat)
	return res, nil
}

func (c *Checker) fetchLatest(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releaseURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "creating release request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "querying release endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("release endpoint returned HTTP %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", errors.Wrap(err, "decoding release response")
	}
	if release.TagName == "" {
		return "", errors.New("release response carried no tag")
	}
	return release.TagName, nil
}

// PostRunHint returns a one-line upgrade hint when a newer release exists,
// checking the network at most once per HintInterval. Every failure is
// swallowed: a broken release check must never disturb a commit flow.
func PostRunHint(ctx context.Context, current string, log *zap.Logger) string {
	if log == nil {
		log = zap.NewNop()
	}
	if current == devVersion {
		return ""
	}

	sm, err := NewStateManager()
	if err != nil {
		return ""
	}

	latest := sm.Latest()
	if !sm.CheckedWithin(HintInterval) {
		res, err := NewChecker(current, log).Check(ctx)
		if err != nil {
			log.Debug("release check failed", zap.Error(err))
			return ""
		}
		latest = res.Latest
		sm.RecordCheck(latest)
		if err := sm.Save(); err != nil {
			log.Debug("saving release check state failed", zap.Error(err))
		}
	}

	cur, err := version.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return ""
	}
	lat, err := version.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return ""
	}
	if !cur.LessThan(lat) {
		return ""
	}

	return fmt.Sprintf("A newer lazycommit is available: %s (you have %s). Get it at https://github.com/lazycommit/cli/releases", latest, current)
}
