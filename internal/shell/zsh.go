package shell

// ZshShell targets ~/.zshrc.
type ZshShell struct {
	BaseShell
}

// NewZshShell returns the zsh shell definition.
func NewZshShell() Shell {
	return &ZshShell{BaseShell{name: "zsh", configRel: ".zshrc"}}
}
