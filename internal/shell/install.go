package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// AliasName is the short command written into shell configs.
	AliasName = "lc"
	// AliasLine is the exact alias definition that gets appended.
	AliasLine = "alias lc='lazycommit'"

	marker = "# Added by lazycommit"
)

// InstallResult reports what Install did.
type InstallResult struct {
	// Path is the shell config file that was inspected or modified.
	Path string
	// Already is true when the config already carried the alias and was
	// left untouched.
	Already bool
}

// Installed reports whether the shell's config already carries the alias.
func Installed(sh Shell, home string) (bool, error) {
	content, err := os.ReadFile(sh.ConfigPath(home))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "reading %s", sh.ConfigPath(home))
	}
	return containsAlias(string(content)), nil
}

// Install appends the lc alias to the shell's startup file, creating the
// file and its directory if needed. A config that already mentions the
// alias is left untouched.
func Install(sh Shell, home string) (InstallResult, error) {
	path := sh.ConfigPath(home)
	res := InstallResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return res, errors.Wrapf(err, "reading %s", path)
	}
	if containsAlias(string(content)) {
		res.Already = true
		return res, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return res, errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return res, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + marker + "\n" + AliasLine + "\n"); err != nil {
		return res, errors.Wrapf(err, "writing %s", path)
	}
	return res, nil
}

func containsAlias(content string) bool {
	return strings.Contains(content, "alias "+AliasName) ||
		strings.Contains(content, AliasName+"='lazycommit'")
}
