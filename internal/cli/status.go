package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oh-my-opencode/portal/internal/opencode"
	"github.com/oh-my-opencode/portal/internal/provider"
	"github.com/oh-my-opencode/portal/internal/watcher"
)

var (
	statusFormat string
	statusOutput string
	statusWatch  bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current provider and each agent's model",
	Long: `Status shows which config file is in use, the provider the agents
currently point at, and the full model identifier of every agent.

The provider is read from the agents themselves (the prefix of their
model identifiers), so it reflects whatever last touched the file, not
just portal. When the config has no agents the provider is Unknown.

Examples:
  portal status
  portal status --format json
  portal status --format yaml --output status.yaml
  portal status --watch`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "text", "Output format: text, json, or yaml")
	statusCmd.Flags().StringVar(&statusOutput, "output", "", "Output file path (default: stdout)")
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "Re-render whenever the config file changes")
}

func runStatus(cmd *cobra.Command, args []string) error {
	// Validate format
	if statusFormat != "text" && statusFormat != "json" && statusFormat != "yaml" {
		return fmt.Errorf("invalid format: %s (must be text, json, or yaml)", statusFormat)
	}

	if statusWatch {
		if statusOutput != "" {
			return fmt.Errorf("--watch cannot be combined with --output")
		}
		if statusFormat != "text" {
			return fmt.Errorf("--watch supports the text format only")
		}
		return watchStatus()
	}

	// Write to file or stdout
	if statusOutput != "" {
		output, err := renderStatus(false)
		if err != nil {
			return err
		}
		if err := os.WriteFile(statusOutput, output, 0644); err != nil {
			return fmt.Errorf("failed to write to file: %w", err)
		}
		fmt.Printf("%s Wrote status to %s\n", StyleSuccess.Render("✓"), statusOutput)
		return nil
	}

	output, err := renderStatus(true)
	if err != nil {
		return err
	}
	fmt.Print(string(output))

	return nil
}

// statusReport is the machine-readable shape of the status command
type statusReport struct {
	Config   string            `json:"config" yaml:"config"`
	Provider string            `json:"provider" yaml:"provider"`
	Agents   map[string]string `json:"agents" yaml:"agents"`
	Backups  []string          `json:"backups" yaml:"backups"`
}

// renderStatus loads the document and renders it in the requested format.
// Styling is applied only when the output goes straight to the terminal;
// file output stays plain.
func renderStatus(styled bool) ([]byte, error) {
	cfg, store, err := LoadDocumentForCommand()
	if err != nil {
		return nil, err
	}

	current := provider.DetectProvider(cfg)
	if current == "" {
		current = "Unknown"
	}

	backups, err := store.ListBackups()
	if err != nil {
		return nil, err
	}

	switch statusFormat {
	case "json":
		report := statusReport{Config: store.Path(), Provider: current, Agents: agentModels(cfg.Agents), Backups: backups}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to render status: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		report := statusReport{Config: store.Path(), Provider: current, Agents: agentModels(cfg.Agents), Backups: backups}
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to render status: %w", err)
		}
		return data, nil
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "Config: %s\n", store.Path())
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Provider: %s\n", current)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Agents:")
	for _, name := range cfg.AgentNames() {
		fmt.Fprintf(&buf, "  %s: %s\n", name, cfg.Agents[name].Model)
	}
	if len(backups) > 0 {
		latest := "Latest backup: " + backups[len(backups)-1]
		if styled {
			latest = StyleDim.Render(latest)
		}
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, latest)
	}
	return []byte(buf.String()), nil
}

func agentModels(agents map[string]*opencode.AgentConfig) map[string]string {
	models := make(map[string]string, len(agents))
	for name, agent := range agents {
		models[name] = agent.Model
	}
	return models
}

// watchStatus re-renders the status every time the config document changes.
// Runs until interrupted.
func watchStatus() error {
	store, err := NewStoreForCommand()
	if err != nil {
		return err
	}

	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.WatchConfig(store.Path()); err != nil {
		return err
	}
	w.Start()

	printStatusScreen()

	for {
		select {
		case event := <-w.Events:
			switch event.Type {
			case watcher.ConfigChanged:
				printStatusScreen()
			case watcher.BackupCreated:
				fmt.Println(StyleDim.Render("backup created: " + event.Path))
			}
		case err := <-w.Errors:
			fmt.Fprintf(os.Stderr, "%s watch error: %v\n", StyleWarning.Render("⚠ Warning:"), err)
		}
	}
}

func printStatusScreen() {
	// Clear the screen and home the cursor before each render
	fmt.Print("\033[2J\033[H")

	output, err := renderStatus(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Print(string(output))
	}

	fmt.Println(StyleDim.Render("\nWatching for changes. Press Ctrl+C to stop."))
}
