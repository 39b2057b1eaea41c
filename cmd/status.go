package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lazycommit/cli/internal/client"
	"github.com/lazycommit/cli/internal/shell"
	"github.com/lazycommit/cli/internal/update"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show lazycommit setup status",
	Long:  `Display the API configuration and shell alias installation status.`,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Printf("lazycommit %s\n\n", Version)

	// Check API key configuration
	cfg := client.LoadConfig()
	if cfg.IsConfigured() {
		fmt.Printf("API Key:  %s (configured)\n", client.MaskAPIKey(cfg.APIKey))
	} else {
		fmt.Println("API Key:  Not configured")
		fmt.Println("  Set with: lazycommit config set --api-key=\"sk-...\"")
	}

	fmt.Printf("Base URL: %s\n", cfg.BaseURL)
	fmt.Printf("Model:    %s\n", cfg.Model)
	fmt.Println()

	// Check alias installations
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	detected := ""
	if sh := shell.Detect(); sh != nil {
		detected = sh.Name()
	}

	fmt.Printf("Shell alias (%s):\n", shell.AliasLine)
	for _, name := range shell.Supported() {
		sh := shell.Get(name)
		state := "Not installed"
		if installed, err := shell.Installed(sh, home); err == nil && installed {
			state = "Installed"
		}
		current := ""
		if name == detected {
			current = " (current shell)"
		}
		fmt.Printf("  %-6s %s%s\n", name+":", state, current)
	}

	if sm, err := update.NewStateManager(); err == nil && sm.Latest() != "" {
		fmt.Printf("\nLatest known release: %s\n", sm.Latest())
	}

	return nil
}
