package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunList(t *testing.T) {
	setupTestConfig(t, testDocument)

	if err := runList(listCmd, nil); err != nil {
		t.Errorf("expected no error listing providers, got: %v", err)
	}
}

func TestRunList_WithCustomProviders(t *testing.T) {
	configPath := setupTestConfig(t, testDocument)

	portalDir := filepath.Join(filepath.Dir(configPath), "portal")
	if err := os.MkdirAll(portalDir, 0755); err != nil {
		t.Fatalf("failed to create portal dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(portalDir, "myrouter.json"), []byte(`{"agents":{}}`), 0644); err != nil {
		t.Fatalf("failed to write custom provider: %v", err)
	}

	if err := runList(listCmd, nil); err != nil {
		t.Errorf("expected no error listing providers, got: %v", err)
	}
}
