package cmd

import (
	"fmt"

	"github.com/lazycommit/cli/internal/client"
	"github.com/lazycommit/cli/internal/message"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lazycommit configuration",
	Long: `Manage lazycommit configuration stored in ~/.lazycommit/config.json.

The config file holds the defaults for every run; flags override it per
invocation.

Quick start:
  lazycommit config set --api-key=sk-xxx

Priority order: command-line flags > environment variables > config file > defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := client.LoadConfig()

		cmd.Printf("API Key:         %s\n", client.MaskAPIKey(cfg.APIKey))
		cmd.Printf("Base URL:        %s\n", cfg.BaseURL)
		cmd.Printf("Model:           %s\n", cfg.Model)
		cmd.Printf("Max tokens:      %d\n", cfg.MaxTokens)
		cmd.Printf("Max input chars: %d\n", cfg.MaxInputChars)
		cmd.Printf("Language:        %s\n", cfg.Language)
		cmd.Println()
		cmd.Printf("Config:  %s\n", client.ConfigPath())

		return nil
	},
}

var (
	setAPIKey        string
	setBaseURL       string
	setModel         string
	setMaxTokens     int
	setMaxInputChars int
	setLanguage      string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long: `Set configuration values in ~/.lazycommit/config.json.

Examples:
  # Basic setup (most users)
  lazycommit config set --api-key=sk-xxx

  # Pick a different model and budget
  lazycommit config set --model=gpt-4o --max-tokens=1000

  # Point at a compatible endpoint
  lazycommit config set --base-url=http://localhost:11434/v1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := client.LoadFileConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if fc == nil {
			fc = &client.FileConfig{}
		}

		changed := false
		if setAPIKey != "" {
			fc.APIKey = setAPIKey
			changed = true
		}
		if cmd.Flags().Changed("base-url") {
			fc.BaseURL = setBaseURL
			changed = true
		}
		if cmd.Flags().Changed("model") {
			fc.Model = setModel
			changed = true
		}
		if cmd.Flags().Changed("max-tokens") {
			fc.MaxTokens = setMaxTokens
			changed = true
		}
		if cmd.Flags().Changed("max-input-chars") {
			fc.MaxInputChars = setMaxInputChars
			changed = true
		}
		if cmd.Flags().Changed("language") {
			lang, err := message.ParseLanguage(setLanguage)
			if err != nil {
				return err
			}
			fc.Language = string(lang)
			changed = true
		}

		if !changed {
			return fmt.Errorf("no values provided. Use --api-key, --base-url, --model, --max-tokens, --max-input-chars, or --language")
		}

		if err := client.SaveFileConfig(fc); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		cmd.Println("Configuration saved")
		if fc.APIKey != "" {
			cmd.Printf("  API Key:         %s\n", client.MaskAPIKey(fc.APIKey))
		}
		if fc.BaseURL != "" {
			cmd.Printf("  Base URL:        %s\n", fc.BaseURL)
		}
		if fc.Model != "" {
			cmd.Printf("  Model:           %s\n", fc.Model)
		}
		if fc.MaxTokens != 0 {
			cmd.Printf("  Max tokens:      %d\n", fc.MaxTokens)
		}
		if fc.MaxInputChars != 0 {
			cmd.Printf("  Max input chars: %d\n", fc.MaxInputChars)
		}
		if fc.Language != "" {
			cmd.Printf("  Language:        %s\n", fc.Language)
		}

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(client.ConfigPath())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	configSetCmd.Flags().StringVar(&setAPIKey, "api-key", "", "API key")
	configSetCmd.Flags().StringVar(&setBaseURL, "base-url", "", "OpenAI-compatible endpoint (default: "+client.DefaultBaseURL+")")
	configSetCmd.Flags().StringVar(&setModel, "model", "", "Default model")
	configSetCmd.Flags().IntVar(&setMaxTokens, "max-tokens", 0, "Default output token budget")
	configSetCmd.Flags().IntVar(&setMaxInputChars, "max-input-chars", 0, "Default diff character budget")
	configSetCmd.Flags().StringVar(&setLanguage, "language", "", "Default message language (en, pt-br)")
}
