package shell

// BashShell targets ~/.bashrc.
type BashShell struct {
	BaseShell
}

// NewBashShell returns the bash shell definition.
func NewBashShell() Shell {
	return &BashShell{BaseShell{name: "bash", configRel: ".bashrc"}}
}
