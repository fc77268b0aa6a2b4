package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oh-my-opencode/portal/internal/opencode"
)

var rootCmd = &cobra.Command{
	Use:           "portal",
	Short:         "Switch oh-my-opencode agents between model providers",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Portal rewrites the model of every agent in oh-my-opencode.json so they
all point at a single provider, and leaves everything else in the file
untouched.

Getting started:
- See where your agents point today: portal status
- Move every agent to GitHub Copilot: portal switch copilot
- Preview a switch without writing: portal switch openrouter --dry-run
- Undo the last switch: portal revert

Providers:
- copilot: GitHub Copilot (github-copilot/model)
- openrouter: OpenRouter (openrouter/provider/model)
- custom: any <name>.json dropped into the portal config directory,
  mapping agent names to full model identifiers

A backup of the config is written before the first change, and on every
change when --backup is set. Backups live next to the config file.

Portal assumes it is the only writer of the config file while a command
runs; there is no cross-process locking.`,
}

// GlobalOptions holds global configuration flags for testing and path overrides
type GlobalOptions struct {
	ConfigPath string // Override for the oh-my-opencode.json location
	DryRun     bool   // Preview changes without writing anything
	Backup     bool   // Force a backup even when one already exists
}

// GlobalOpts holds the parsed global flags (exported for testing)
var GlobalOpts GlobalOptions

// ResolveConfigPath returns the config document location, respecting --config
func ResolveConfigPath() (string, error) {
	if GlobalOpts.ConfigPath != "" {
		return GlobalOpts.ConfigPath, nil
	}
	return opencode.DefaultConfigPath()
}

// NewStoreForCommand creates a Store with configuration from global flags
func NewStoreForCommand() (*opencode.Store, error) {
	path, err := ResolveConfigPath()
	if err != nil {
		return nil, err
	}
	return opencode.NewStore(path), nil
}

// LoadDocumentForCommand opens the store and loads the config document.
// A missing file is reported with the setup hint users see from every
// command that needs an existing config.
func LoadDocumentForCommand() (*opencode.Config, *opencode.Store, error) {
	store, err := NewStoreForCommand()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := store.Load()
	if err != nil {
		if errors.Is(err, opencode.ErrNotFound) {
			return nil, nil, fmt.Errorf("Config file not found: %s\n\nMake sure oh-my-opencode is configured.", store.Path())
		}
		return nil, nil, err
	}

	return cfg, store, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add persistent global flags for testing and path overrides
	rootCmd.PersistentFlags().StringVarP(&GlobalOpts.ConfigPath, "config", "c", "", "Override the oh-my-opencode.json location")
	rootCmd.PersistentFlags().BoolVar(&GlobalOpts.DryRun, "dry-run", false, "Show what would change without writing")
	rootCmd.PersistentFlags().BoolVar(&GlobalOpts.Backup, "backup", false, "Create a backup even when one already exists")

	// Add commands
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(revertCmd)
}
