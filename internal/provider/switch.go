package provider

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oh-my-opencode/portal/internal/opencode"
)

// Switcher rewrites every agent's model identifier to point at one target
// provider. Each agent is resolved through an ordered chain of strategies:
// an explicit override wins outright, then the mapping table, then a
// best-effort heuristic for custom providers. An agent no strategy can serve
// keeps its current identifier and gets a warning.
type Switcher struct {
	Provider  string
	Overrides *Overrides

	// Warnings receives the per-agent "no mapping" notes. NewSwitcher
	// defaults it to stderr.
	Warnings io.Writer
}

func NewSwitcher(providerName string, overrides *Overrides) *Switcher {
	return &Switcher{
		Provider:  providerName,
		Overrides: overrides,
		Warnings:  os.Stderr,
	}
}

// resolveFn tries one strategy for re-homing an agent onto the target
// provider. ok is false when the strategy doesn't apply.
type resolveFn func(agentName, baseModel string) (string, bool)

// Apply rewrites cfg's agents in place, visiting them in name order so
// warnings come out deterministically. Per-agent misses degrade to keeping
// the current model; Apply itself never fails.
func (s *Switcher) Apply(cfg *opencode.Config) {
	strategies := []resolveFn{s.fromOverride, s.fromTable, s.fromHeuristic}

	for _, name := range cfg.AgentNames() {
		agent := cfg.Agents[name]
		base := Canonicalize(ExtractBaseModel(agent.Model))

		resolved := false
		for _, strategy := range strategies {
			if model, ok := strategy(name, base); ok {
				agent.Model = model
				resolved = true
				break
			}
		}
		if !resolved {
			fmt.Fprintf(s.Warnings, "Warning: No mapping for agent '%s' with provider '%s', keeping current model\n", name, s.Provider)
		}
	}
}

// fromOverride consults the per-provider override file. An explicit entry
// always wins, even for models the table knows.
func (s *Switcher) fromOverride(agentName, _ string) (string, bool) {
	return s.Overrides.Lookup(agentName)
}

// fromTable composes the identifier from the mapping table.
func (s *Switcher) fromTable(_, baseModel string) (string, bool) {
	return ComposeBuiltin(baseModel, s.Provider)
}

// fromHeuristic handles providers with no table support: names containing
// "openrouter" get an inferred openrouter identifier, names containing
// "copilot" get the github-copilot form with the base model as-is.
func (s *Switcher) fromHeuristic(_, baseModel string) (string, bool) {
	switch {
	case strings.Contains(s.Provider, "openrouter"):
		return InferOpenRouterModel(baseModel), true
	case strings.Contains(s.Provider, "copilot"):
		return ProviderGitHubCopilot + "/" + baseModel, true
	default:
		return "", false
	}
}
