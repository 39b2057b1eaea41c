package shell

import (
	"os"
	"path/filepath"
	"sort"
)

// registry holds all supported shells
var registry = map[string]func() Shell{
	"bash": NewBashShell,
	"zsh":  NewZshShell,
	"fish": NewFishShell,
}

// Get returns the shell with the given name, or nil if it is unsupported.
func Get(name string) Shell {
	if factory, ok := registry[name]; ok {
		return factory()
	}
	return nil
}

// Detect resolves the user's login shell from $SHELL. It returns nil when
// the variable is unset or names an unsupported shell.
func Detect() Shell {
	return Get(filepath.Base(os.Getenv("SHELL")))
}

// Supported returns the supported shell names, sorted.
func Supported() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSupported reports whether the named shell is supported.
func IsSupported(name string) bool {
	_, ok := registry[name]
	return ok
}
