package git

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	// localTimeout bounds commands that never touch the network.
	localTimeout = 30 * time.Second
	// pushTimeout allows for slow remotes.
	pushTimeout = 2 * time.Minute
)

// Service runs git subprocesses in a working directory.
type Service struct {
	dir string
	log *zap.Logger
}

// NewService returns a Service operating on dir. An empty dir means the
// current working directory.
func NewService(dir string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{dir: dir, log: log}
}

// IsRepo reports whether the working directory is inside a git work tree.
func (s *Service) IsRepo(ctx context.Context) bool {
	out, err := s.run(ctx, localTimeout, "", "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// ListChangedPaths returns every path git considers changed: staged,
// unstaged, and untracked alike. Paths are repo-relative.
func (s *Service) ListChangedPaths(ctx context.Context) ([]string, error) {
	out, err := s.run(ctx, localTimeout, "", "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(out), nil
}

// StagedPaths returns the paths currently sitting in the index.
func (s *Service) StagedPaths(ctx context.Context) ([]string, error) {
	out, err := s.run(ctx, localTimeout, "", "diff", "--cached", "--name-only", "--diff-filter=ACMR")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// Stage adds the given paths to the index.
func (s *Service) Stage(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	_, err := s.run(ctx, localTimeout, "", args...)
	return err
}

// Unstage removes the given paths from the index, leaving the work tree
// untouched.
func (s *Service) Unstage(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"reset", "-q", "HEAD", "--"}, paths...)
	_, err := s.run(ctx, localTimeout, "", args...)
	return err
}

// Diff returns the textual diff. When staged is true it covers the index,
// otherwise the work tree.
func (s *Service) Diff(ctx context.Context, staged bool) (string, error) {
	args := []string{"diff", "--no-color"}
	if staged {
		args = []string{"diff", "--staged", "--no-color"}
	}
	return s.run(ctx, localTimeout, "", args...)
}

// Commit records the index with the given message and returns git's output.
// The message travels over stdin so multi-line bodies survive intact.
func (s *Service) Commit(ctx context.Context, message string) (string, error) {
	out, err := s.run(ctx, localTimeout, message, "commit", "-F", "-")
	return strings.TrimSpace(out), err
}

// Push publishes the current branch to its upstream.
func (s *Service) Push(ctx context.Context) (string, error) {
	out, err := s.run(ctx, pushTimeout, "", "push")
	return strings.TrimSpace(out), err
}

func (s *Service) run(ctx context.Context, timeout time.Duration, stdin string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	if s.dir != "" {
		cmd.Dir = s.dir
	}
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	s.log.Debug("git command finished",
		zap.Strings("args", args),
		zap.Duration("duration", time.Since(start)),
		zap.Bool("ok", err == nil))

	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		if detail == "" {
			detail = err.Error()
		}
		return "", errors.Newf("git %s: %s", args[0], detail)
	}
	return stdout.String(), nil
}

// parsePorcelain extracts one path per `git status --porcelain` line. Rename
// lines keep the destination side of the arrow, and paths git quoted (spaces,
// unicode escapes) are unquoted. The old side of a rename may itself be
// quoted and carry a literal arrow, so the rename arrow is located after any
// leading quoted string.
func parsePorcelain(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		if dest, ok := renameTarget(path); ok {
			path = dest
		}
		if strings.HasPrefix(path, `"`) {
			if unquoted, err := strconv.Unquote(path); err == nil {
				path = unquoted
			}
		}
		paths = append(paths, path)
	}
	return paths
}

// renameTarget returns the destination side of an "old -> new" status entry,
// skipping over a quoted old name before searching for the arrow.
func renameTarget(path string) (string, bool) {
	search := path
	offset := 0
	if n := quotedLength(path); n > 0 {
		search = path[n:]
		offset = n
	}
	i := strings.Index(search, " -> ")
	if i == -1 {
		return "", false
	}
	return path[offset+i+len(" -> "):], true
}

// quotedLength returns the byte length of the C-quoted string at the start
// of s, both quotes included, or 0 when s does not begin with a complete
// quoted string.
func quotedLength(s string) int {
	if len(s) < 2 || s[0] != '"' {
		return 0
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return 0
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
