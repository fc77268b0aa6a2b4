package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oh-my-opencode/portal/internal/opencode"
	"github.com/oh-my-opencode/portal/internal/provider"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available providers",
	Long: `List shows the built-in providers and any custom providers found in
the portal config directory.

A custom provider is a <name>.json file mapping agent names to full
model identifiers:

  {
    "agents": {
      "architect": { "model": "myproxy/claude-opus-4.5" }
    }
  }

Examples:
  portal list`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	fmt.Println("Built-in providers:")
	fmt.Println("  copilot     - GitHub Copilot (github-copilot/model)")
	fmt.Println("  openrouter  - OpenRouter (openrouter/provider/model)")
	fmt.Println()

	portalDir, err := opencode.PortalDir()
	if err != nil {
		return err
	}
	custom, err := provider.CustomProviders(portalDir)
	if err != nil {
		return err
	}
	if len(custom) > 0 {
		fmt.Printf("Custom providers (from %s):\n", portalDir)
		for _, name := range custom {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
	}

	fmt.Println("Usage: portal switch <provider>")
	return nil
}
