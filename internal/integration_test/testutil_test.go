package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oh-my-opencode/portal/internal/cli"
	"github.com/oh-my-opencode/portal/internal/opencode"
)

// testDocument is the config document every test starts from: three agents on
// github-copilot plus fields portal does not understand and must not lose.
const testDocument = `{
  "$schema": "https://opencode.ai/config.json",
  "google_auth": false,
  "theme": "kanagawa",
  "experimental": {"preview_features": ["tasklist"]},
  "agents": {
    "architect": {
      "model": "github-copilot/claude-opus-4.5",
      "temperature": 0.2,
      "prompt_style": "detailed"
    },
    "coder": {
      "model": "github-copilot/claude-sonnet-4.5"
    },
    "scout": {
      "model": "github-copilot/gemini-3-flash"
    }
  }
}`

// TestEnv holds the test environment setup
type TestEnv struct {
	TempDir       string
	ConfigPath    string
	PortalDir     string
	OriginalFlags cli.GlobalOptions
	originalXDG   string
	hadXDG        bool
}

// SetupTestEnv creates an isolated config tree under a temporary directory
// and points both XDG_CONFIG_HOME and the global flags at it
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "portal-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	opencodeDir := filepath.Join(tempDir, "opencode")
	portalDir := filepath.Join(tempDir, "portal")
	if err := os.MkdirAll(opencodeDir, 0755); err != nil {
		t.Fatalf("Failed to create opencode dir: %v", err)
	}
	if err := os.MkdirAll(portalDir, 0755); err != nil {
		t.Fatalf("Failed to create portal dir: %v", err)
	}

	configPath := filepath.Join(opencodeDir, "oh-my-opencode.json")
	if err := os.WriteFile(configPath, []byte(testDocument), 0644); err != nil {
		t.Fatalf("Failed to write config document: %v", err)
	}

	env := &TestEnv{
		TempDir:       tempDir,
		ConfigPath:    configPath,
		PortalDir:     portalDir,
		OriginalFlags: cli.GlobalOpts,
	}

	env.originalXDG, env.hadXDG = os.LookupEnv("XDG_CONFIG_HOME")
	if err := os.Setenv("XDG_CONFIG_HOME", tempDir); err != nil {
		t.Fatalf("Failed to set XDG_CONFIG_HOME: %v", err)
	}

	// Set global options for the test
	cli.GlobalOpts = cli.GlobalOptions{ConfigPath: configPath}

	return env
}

// CleanupTestEnv removes the test environment and restores original settings
func CleanupTestEnv(t *testing.T, env *TestEnv) {
	t.Helper()

	cli.GlobalOpts = env.OriginalFlags

	if env.hadXDG {
		os.Setenv("XDG_CONFIG_HOME", env.originalXDG)
	} else {
		os.Unsetenv("XDG_CONFIG_HOME")
	}

	if err := os.RemoveAll(env.TempDir); err != nil {
		t.Logf("Warning: Failed to remove temp dir %s: %v", env.TempDir, err)
	}
}

// GetStore returns a store configured for the test environment
func (env *TestEnv) GetStore(t *testing.T) *opencode.Store {
	t.Helper()

	store, err := cli.NewStoreForCommand()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	return store
}

// LoadDocument reads the config document fresh from disk
func (env *TestEnv) LoadDocument(t *testing.T) *opencode.Config {
	t.Helper()

	cfg, err := env.GetStore(t).Load()
	if err != nil {
		t.Fatalf("Failed to load document: %v", err)
	}

	return cfg
}

// WriteCustomProvider drops an override file for the named provider into the
// portal directory
func (env *TestEnv) WriteCustomProvider(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(env.PortalDir, name+".json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write custom provider %s: %v", name, err)
	}

	return path
}

// AssertAgentModel checks an agent's model identifier as stored on disk
func (env *TestEnv) AssertAgentModel(t *testing.T, agentName, expectedModel string) {
	t.Helper()

	cfg := env.LoadDocument(t)
	agent, ok := cfg.Agents[agentName]
	if !ok {
		t.Fatalf("Expected agent %s to exist in the document", agentName)
	}
	if agent.Model != expectedModel {
		t.Fatalf("Expected agent %s to have model %s, but got %s", agentName, expectedModel, agent.Model)
	}
}

// AssertBackupCount checks how many backups sit next to the document
func (env *TestEnv) AssertBackupCount(t *testing.T, expected int) {
	t.Helper()

	backups, err := env.GetStore(t).ListBackups()
	if err != nil {
		t.Fatalf("Failed to list backups: %v", err)
	}
	if len(backups) != expected {
		t.Fatalf("Expected %d backups, but found %d: %v", expected, len(backups), backups)
	}
}
