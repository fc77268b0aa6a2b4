package provider

import (
	"strings"

	"github.com/oh-my-opencode/portal/internal/opencode"
)

// Built-in provider names understood by ComposeBuiltin. "copilot" is accepted
// as shorthand for "github-copilot".
const (
	ProviderCopilot       = "copilot"
	ProviderGitHubCopilot = "github-copilot"
	ProviderOpenRouter    = "openrouter"
)

// BuiltinProviders lists the providers the mapping table can compose
// identifiers for directly.
var BuiltinProviders = []string{ProviderCopilot, ProviderOpenRouter}

// ExtractBaseModel pulls the provider-agnostic model name out of a fully
// qualified identifier. Two-segment identifiers are provider/model;
// longer ones carry an intermediate routing segment, so everything after
// the second slash is the model (which may itself contain slashes).
// Identifiers with no slash come back unchanged.
func ExtractBaseModel(identifier string) string {
	parts := strings.Split(identifier, "/")
	switch {
	case len(parts) == 2:
		return parts[1]
	case len(parts) == 3:
		return parts[2]
	case len(parts) >= 4:
		return strings.Join(parts[2:], "/")
	default:
		return identifier
	}
}

// ComposeBuiltin builds the fully qualified identifier for baseModel under a
// built-in provider. ok is false when the model has no table row or the
// provider isn't built in; it never guesses.
func ComposeBuiltin(baseModel, providerName string) (string, bool) {
	m := FindMapping(baseModel)
	if m == nil {
		return "", false
	}
	switch providerName {
	case ProviderCopilot, ProviderGitHubCopilot:
		return ProviderGitHubCopilot + "/" + m.Copilot, true
	case ProviderOpenRouter:
		return ProviderOpenRouter + "/" + m.OpenRouterProvider + "/" + m.OpenRouterModel, true
	default:
		return "", false
	}
}

// InferOpenRouterModel guesses an openrouter identifier for a model the
// table doesn't know, keyed off well-known model name prefixes. Unrecognized
// names get the literal "unknown" provider segment so the result is at least
// well formed.
func InferOpenRouterModel(baseModel string) string {
	var vendor string
	switch {
	case strings.HasPrefix(baseModel, "claude"):
		vendor = "anthropic"
	case strings.HasPrefix(baseModel, "gpt"),
		strings.HasPrefix(baseModel, "o1"),
		strings.HasPrefix(baseModel, "o3"),
		strings.HasPrefix(baseModel, "o4"):
		vendor = "openai"
	case strings.HasPrefix(baseModel, "gemini"):
		vendor = "google"
	default:
		vendor = "unknown"
	}
	return ProviderOpenRouter + "/" + vendor + "/" + baseModel
}

// DetectProvider reports which provider the document currently points at:
// the first segment of the lexically-first agent's model identifier. Empty
// when the document has no agents.
func DetectProvider(cfg *opencode.Config) string {
	names := cfg.AgentNames()
	if len(names) == 0 {
		return ""
	}
	model := cfg.Agents[names[0]].Model
	return strings.Split(model, "/")[0]
}
