package provider

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Overrides is a per-provider override file: explicit agent-to-model bindings
// that bypass the mapping table entirely. The file lives at
// <config-root>/portal/<provider>.json and looks like
//
//	{"agents": {"sisyphus": {"model": "github-copilot/claude-opus-4.5"}}}
type Overrides struct {
	Agents map[string]AgentOverride `json:"agents"`
}

// AgentOverride pins one agent to an exact model identifier.
type AgentOverride struct {
	Model string `json:"model"`
}

// LoadOverrides reads the override file at path. A missing file is not an
// error: overrides are optional, and a nil *Overrides means "none".
func LoadOverrides(path string) (*Overrides, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider config %s: %w", path, err)
	}

	var overrides Overrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse provider config %s: %w", path, err)
	}
	return &overrides, nil
}

// Lookup returns the override model for an agent, if one is present.
// Safe on a nil receiver.
func (o *Overrides) Lookup(agentName string) (string, bool) {
	if o == nil {
		return "", false
	}
	entry, ok := o.Agents[agentName]
	return entry.Model, ok
}

// CustomProviders returns the provider names that have override files under
// dir: the stems of its *.json entries, sorted. A missing directory simply
// means no custom providers are defined.
func CustomProviders(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read provider directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".json") {
			names = append(names, strings.TrimSuffix(name, ".json"))
		}
	}
	sort.Strings(names)
	return names, nil
}
