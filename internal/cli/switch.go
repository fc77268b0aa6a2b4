package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oh-my-opencode/portal/internal/diff"
	"github.com/oh-my-opencode/portal/internal/opencode"
	"github.com/oh-my-opencode/portal/internal/provider"
	"github.com/oh-my-opencode/portal/internal/tui"
)

// diffContextLines is how many unchanged lines are kept around each change
// when rendering --diff output.
const diffContextLines = 3

var (
	switchDiff bool
)

var switchCmd = &cobra.Command{
	Use:   "switch [provider]",
	Short: "Point every agent at a provider",
	Long: `Switch rewrites the model of every agent in oh-my-opencode.json to the
given provider. Models are matched through a mapping table of known base
models, so claude-opus-4.5 becomes github-copilot/claude-opus-4.5 under
copilot and openrouter/anthropic/claude-opus-4.5 under openrouter.

Agents with no known mapping keep their current model and a warning is
printed for each one. A custom provider file (<name>.json in the portal
config directory) can pin exact models per agent and always wins over
the mapping table.

Without a provider argument, an interactive picker lists the built-in
and custom providers.

Examples:
  portal switch copilot
  portal switch openrouter --dry-run
  portal switch copilot --diff
  portal switch mycompany --backup
  portal switch`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: CompleteProviders,
	RunE:              runSwitch,
}

func init() {
	switchCmd.Flags().BoolVar(&switchDiff, "diff", false, "Show a line diff of the resulting changes")
}

func runSwitch(cmd *cobra.Command, args []string) error {
	cfg, store, err := LoadDocumentForCommand()
	if err != nil {
		return err
	}

	var providerName string
	if len(args) > 0 {
		providerName = args[0]
	} else {
		providerName, err = pickProvider(cfg)
		if err != nil {
			return err
		}
		if providerName == "" {
			fmt.Println("Switch cancelled.")
			return nil
		}
	}

	overridePath, err := opencode.OverridePath(providerName)
	if err != nil {
		return err
	}
	overrides, err := provider.LoadOverrides(overridePath)
	if err != nil {
		return err
	}

	// Capture the document as it would be written now, for diffing later
	var before []byte
	if switchDiff {
		before, err = cfg.Encode()
		if err != nil {
			return err
		}
	}

	switcher := provider.NewSwitcher(providerName, overrides)
	switcher.Apply(cfg)

	if switchDiff {
		after, err := cfg.Encode()
		if err != nil {
			return err
		}
		renderDiff(string(before), string(after))
		fmt.Println()
	}

	if GlobalOpts.DryRun {
		fmt.Printf("Dry run - would switch to '%s':\n", providerName)
		fmt.Println()
		for _, name := range cfg.AgentNames() {
			fmt.Printf("  %s: %s\n", name, cfg.Agents[name].Model)
		}
		return nil
	}

	backupPath, err := store.Save(cfg, GlobalOpts.Backup)
	if err != nil {
		return err
	}
	// Backup notice goes to stderr so stdout stays scriptable
	if backupPath != "" {
		fmt.Fprintf(os.Stderr, "Backup created: %s\n", backupPath)
	}

	fmt.Printf("%s Switched to '%s' provider.\n", StyleSuccess.Render("✓"), providerName)
	return nil
}

// pickProvider runs the interactive provider picker and returns the chosen
// provider name, or "" when the user cancels.
func pickProvider(cfg *opencode.Config) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("provider name required (stdin is not a terminal)")
	}

	current := provider.DetectProvider(cfg)

	var choices []tui.Provider
	for _, name := range provider.BuiltinProviders {
		cur := current == name
		if name == provider.ProviderCopilot {
			cur = current == provider.ProviderGitHubCopilot
		}
		choices = append(choices, tui.Provider{Name: name, Source: "built-in", Current: cur})
	}

	portalDir, err := opencode.PortalDir()
	if err != nil {
		return "", err
	}
	custom, err := provider.CustomProviders(portalDir)
	if err != nil {
		return "", err
	}
	for _, name := range custom {
		choices = append(choices, tui.Provider{Name: name, Source: "custom", Current: name == current})
	}

	p := tea.NewProgram(tui.NewProviderPickerModel(choices), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run provider picker: %w", err)
	}

	picker, ok := finalModel.(tui.ProviderPickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected picker model type")
	}
	return picker.Choice(), nil
}

// renderDiff prints a collapsed line diff between two document renderings
func renderDiff(before, after string) {
	lines := diff.Lines(before, after)
	if !diff.Changed(lines) {
		fmt.Println("No changes.")
		return
	}

	for _, line := range diff.Collapse(lines, diffContextLines) {
		switch line.Type {
		case diff.LineAdded:
			fmt.Println(StyleDiffAdded.Render("+ " + line.Text))
		case diff.LineRemoved:
			fmt.Println(StyleDiffRemoved.Render("- " + line.Text))
		case diff.LineGap:
			fmt.Println(StyleDim.Render(fmt.Sprintf("  ⋮ %d unchanged lines", line.Count)))
		default:
			fmt.Println("  " + line.Text)
		}
	}
}
