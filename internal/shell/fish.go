package shell

// FishShell targets ~/.config/fish/config.fish. Unlike bash and zsh the
// config directory may not exist yet; Install creates it.
type FishShell struct {
	BaseShell
}

// NewFishShell returns the fish shell definition.
func NewFishShell() Shell {
	return &FishShell{BaseShell{name: "fish", configRel: ".config/fish/config.fish"}}
}
