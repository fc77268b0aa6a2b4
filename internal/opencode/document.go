package opencode

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Config is the oh-my-opencode.json document: a set of named agents bound to
// model identifiers, plus whatever else the wider toolchain has stored there.
// Fields this tool doesn't recognize are captured in UnknownFields and
// written back verbatim, so a switch never destroys configuration it doesn't
// understand.
type Config struct {
	Schema     string                  `json:"$schema,omitempty"`
	GoogleAuth *bool                   `json:"google_auth,omitempty"`
	Subagents  map[string]interface{}  `json:"subagents,omitempty"`
	Agents     map[string]*AgentConfig `json:"agents"`

	// UnknownFields stores any top-level fields from the document that
	// aren't recognized. These are preserved when saving to avoid data loss.
	UnknownFields map[string]interface{} `json:"-"`
}

// AgentConfig is one agent's configuration. Only the model identifier is
// understood here; sibling fields (temperature, prompts, anything the agent
// runner defines) ride along untouched.
type AgentConfig struct {
	Model string `json:"model"`

	// UnknownFields stores unrecognized per-agent fields, preserved on save.
	UnknownFields map[string]interface{} `json:"-"`
}

// knownConfigFields lists the top-level field names we recognize
var knownConfigFields = map[string]bool{
	"$schema":     true,
	"google_auth": true,
	"subagents":   true,
	"agents":      true,
}

// knownAgentFields lists the per-agent field names we recognize
var knownAgentFields = map[string]bool{
	"model": true,
}

// UnmarshalJSON implements custom JSON unmarshaling to capture unknown fields
func (c *Config) UnmarshalJSON(data []byte) error {
	// First, unmarshal into a map to capture all fields
	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawMap); err != nil {
		return err
	}

	if _, ok := rawMap["agents"]; !ok {
		return fmt.Errorf("missing required field %q", "agents")
	}

	// Unmarshal known fields using a type alias to avoid recursion
	type configAlias Config
	var alias configAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	c.Schema = alias.Schema
	c.GoogleAuth = alias.GoogleAuth
	c.Subagents = alias.Subagents
	c.Agents = alias.Agents

	// Extract unknown fields
	c.UnknownFields = make(map[string]interface{})
	for key, raw := range rawMap {
		if knownConfigFields[key] {
			continue
		}
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		c.UnknownFields[key] = value
	}

	return nil
}

// MarshalJSON implements custom JSON marshaling to preserve unknown fields
func (c *Config) MarshalJSON() ([]byte, error) {
	// Start with unknown fields
	result := make(map[string]interface{})
	for key, value := range c.UnknownFields {
		result[key] = value
	}

	// Known fields take precedence over unknown fields with the same name
	if c.Schema != "" {
		result["$schema"] = c.Schema
	}
	if c.GoogleAuth != nil {
		result["google_auth"] = *c.GoogleAuth
	}
	if c.Subagents != nil {
		result["subagents"] = c.Subagents
	}

	// The agents map is required in the document, even when empty
	agents := c.Agents
	if agents == nil {
		agents = make(map[string]*AgentConfig)
	}
	result["agents"] = agents

	return json.Marshal(result)
}

// UnmarshalJSON implements custom JSON unmarshaling to capture unknown fields
func (a *AgentConfig) UnmarshalJSON(data []byte) error {
	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawMap); err != nil {
		return err
	}

	if _, ok := rawMap["model"]; !ok {
		return fmt.Errorf("agent entry missing required field %q", "model")
	}

	type agentAlias AgentConfig
	var alias agentAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	a.Model = alias.Model

	a.UnknownFields = make(map[string]interface{})
	for key, raw := range rawMap {
		if knownAgentFields[key] {
			continue
		}
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		a.UnknownFields[key] = value
	}

	return nil
}

// MarshalJSON implements custom JSON marshaling to preserve unknown fields
func (a *AgentConfig) MarshalJSON() ([]byte, error) {
	result := make(map[string]interface{})
	for key, value := range a.UnknownFields {
		result[key] = value
	}

	result["model"] = a.Model

	return json.Marshal(result)
}

// AgentNames returns the agent names in sorted order, for deterministic
// rendering and provider detection.
func (c *Config) AgentNames() []string {
	names := make([]string, 0, len(c.Agents))
	for name := range c.Agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode serializes the document the way it is stored on disk: two-space
// indented JSON with a single trailing newline.
func (c *Config) Encode() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	// Add trailing newline
	jsonBytes = append(jsonBytes, '\n')

	return jsonBytes, nil
}
