package integration_test

import (
	"strings"
	"testing"
	"time"

	"github.com/oh-my-opencode/portal/internal/provider"
	"github.com/oh-my-opencode/portal/internal/watcher"
)

// TestWatcherSeesSaves drives a real save through the store and checks that
// the watcher reports both the backup and the rewritten document.
func TestWatcherSeesSaves(t *testing.T) {
	env := SetupTestEnv(t)
	defer CleanupTestEnv(t, env)

	w, err := watcher.New()
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()

	if err := w.WatchConfig(env.ConfigPath); err != nil {
		t.Fatalf("Failed to watch config: %v", err)
	}
	w.Start()

	// Give the event loop a moment to come up
	time.Sleep(50 * time.Millisecond)

	cfg := env.LoadDocument(t)
	provider.NewSwitcher("openrouter", nil).Apply(cfg)
	store := env.GetStore(t)
	if _, err := store.Save(cfg, false); err != nil {
		t.Fatalf("Failed to save document: %v", err)
	}

	seen := make(map[watcher.EventType]bool)
	timeout := time.After(2 * time.Second)
	for len(seen) < 2 {
		select {
		case event := <-w.Events:
			seen[event.Type] = true
			if event.Type == watcher.BackupCreated && !strings.Contains(event.Path, ".bak.") {
				t.Errorf("Backup event with unexpected path: %s", event.Path)
			}
		case err := <-w.Errors:
			t.Fatalf("Watcher error: %v", err)
		case <-timeout:
			t.Fatalf("Timed out waiting for events, saw %v", seen)
		}
	}

	if !seen[watcher.ConfigChanged] {
		t.Error("Expected a ConfigChanged event")
	}
	if !seen[watcher.BackupCreated] {
		t.Error("Expected a BackupCreated event")
	}
}
