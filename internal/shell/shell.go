package shell

import "path/filepath"

// Shell describes one supported login shell and where its startup
// configuration lives.
type Shell interface {
	Name() string

	// ConfigPath returns the startup file the alias is written to,
	// resolved against the user's home directory.
	ConfigPath(home string) string
}

// BaseShell provides common functionality for all shells.
type BaseShell struct {
	name      string
	configRel string
}

// Name returns the canonical shell name.
func (b *BaseShell) Name() string {
	return b.name
}

// ConfigPath resolves the shell's startup file against home.
func (b *BaseShell) ConfigPath(home string) string {
	return filepath.Join(home, filepath.FromSlash(b.configRel))
}
