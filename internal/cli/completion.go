package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oh-my-opencode/portal/internal/opencode"
	"github.com/oh-my-opencode/portal/internal/provider"
)

// CompleteProviders provides completion suggestions for provider names.
// Includes the built-in providers and any custom provider files found in
// the portal config directory.
func CompleteProviders(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	candidates := []string{
		provider.ProviderCopilot + "\tGitHub Copilot (built-in)",
		provider.ProviderOpenRouter + "\tOpenRouter (built-in)",
	}

	// Custom providers are optional; completion still works without them
	if portalDir, err := opencode.PortalDir(); err == nil {
		custom, err := provider.CustomProviders(portalDir)
		if err == nil {
			for _, name := range custom {
				candidates = append(candidates, name+"\tcustom provider")
			}
		}
	}

	// Filter by prefix
	var completions []string
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, toComplete) {
			completions = append(completions, candidate)
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// CompleteBackups provides completion for backup file paths of the
// current config document, newest first.
func CompleteBackups(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	store, err := NewStoreForCommand()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	backups, err := store.ListBackups()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	// ListBackups sorts oldest first; completions read better newest first
	var completions []string
	for i := len(backups) - 1; i >= 0; i-- {
		if strings.HasPrefix(backups[i], toComplete) {
			completions = append(completions, backups[i])
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
