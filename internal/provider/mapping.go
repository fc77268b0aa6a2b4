package provider

// ModelMapping relates one canonical base model name to its identifier forms
// under the built-in providers.
type ModelMapping struct {
	Base               string
	Copilot            string
	OpenRouterProvider string
	OpenRouterModel    string
}

// modelMappings is the fixed set of models the tool knows how to re-home.
// Pure data; never mutated at runtime.
var modelMappings = []ModelMapping{
	{
		Base:               "claude-opus-4.5",
		Copilot:            "claude-opus-4.5",
		OpenRouterProvider: "anthropic",
		OpenRouterModel:    "claude-opus-4.5",
	},
	{
		Base:               "claude-sonnet-4.5",
		Copilot:            "claude-sonnet-4.5",
		OpenRouterProvider: "anthropic",
		OpenRouterModel:    "claude-sonnet-4.5",
	},
	{
		Base:               "claude-sonnet-4",
		Copilot:            "claude-sonnet-4",
		OpenRouterProvider: "anthropic",
		OpenRouterModel:    "claude-sonnet-4",
	},
	{
		Base:               "gpt-5.2",
		Copilot:            "gpt-5.2",
		OpenRouterProvider: "openai",
		OpenRouterModel:    "gpt-5.2",
	},
	{
		Base:               "gpt-4.1",
		Copilot:            "gpt-4.1",
		OpenRouterProvider: "openai",
		OpenRouterModel:    "gpt-4.1",
	},
	{
		Base:               "o3",
		Copilot:            "o3",
		OpenRouterProvider: "openai",
		OpenRouterModel:    "o3",
	},
	{
		Base:               "o4-mini",
		Copilot:            "o4-mini",
		OpenRouterProvider: "openai",
		OpenRouterModel:    "o4-mini",
	},
	{
		Base:               "gemini-3-flash",
		Copilot:            "gemini-3-flash",
		OpenRouterProvider: "google",
		OpenRouterModel:    "gemini-3-flash-preview",
	},
	{
		Base:               "gemini-3-pro",
		Copilot:            "gemini-3-pro",
		OpenRouterProvider: "google",
		OpenRouterModel:    "gemini-3-pro-preview",
	},
}

// FindMapping returns the table row whose canonical name, copilot identifier,
// or openrouter model segment equals base. Exact matches only; nil when the
// table doesn't know the model.
func FindMapping(base string) *ModelMapping {
	for i := range modelMappings {
		m := &modelMappings[i]
		if m.Base == base || m.Copilot == base || m.OpenRouterModel == base {
			return m
		}
	}
	return nil
}

// Canonicalize maps any known identifier form to the table's canonical base
// name, or returns base unchanged when the table doesn't know it.
func Canonicalize(base string) string {
	if m := FindMapping(base); m != nil {
		return m.Base
	}
	return base
}
