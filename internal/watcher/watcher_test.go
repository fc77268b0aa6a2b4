package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWatcher(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()

	if w.Events == nil {
		t.Error("Events channel should not be nil")
	}
	if w.Errors == nil {
		t.Error("Errors channel should not be nil")
	}
}

func TestWatchConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "oh-my-opencode.json")
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	w, err := New()
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()

	if err := w.WatchConfig(configPath); err != nil {
		t.Fatalf("Failed to watch config: %v", err)
	}
}

func TestWatchConfig_NoDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "missing", "oh-my-opencode.json")

	w, err := New()
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()

	err = w.WatchConfig(configPath)
	if err == nil {
		t.Error("Expected error for missing config directory")
	}
}

func TestClassifyEvent_ConfigChanged(t *testing.T) {
	w, _ := New()
	defer w.Close()
	w.configName = "oh-my-opencode.json"

	event := w.classifyEvent("/home/user/.config/opencode/oh-my-opencode.json")
	if event == nil {
		t.Fatal("Expected event, got nil")
	}
	if event.Type != ConfigChanged {
		t.Errorf("Expected ConfigChanged, got %v", event.Type)
	}
}

func TestClassifyEvent_BackupCreated(t *testing.T) {
	w, _ := New()
	defer w.Close()
	w.configName = "oh-my-opencode.json"

	event := w.classifyEvent("/home/user/.config/opencode/oh-my-opencode.json.bak.2026-01-02T15-04-05-123Z")
	if event == nil {
		t.Fatal("Expected event, got nil")
	}
	if event.Type != BackupCreated {
		t.Errorf("Expected BackupCreated, got %v", event.Type)
	}
}

func TestClassifyEvent_Unknown(t *testing.T) {
	w, _ := New()
	defer w.Close()
	w.configName = "oh-my-opencode.json"

	event := w.classifyEvent("/home/user/.config/opencode/themes.json")
	if event != nil {
		t.Error("Expected nil for unrelated file")
	}

	// Same suffix, different document.
	event = w.classifyEvent("/home/user/.config/opencode/other.json.bak.2026-01-02T15-04-05-123Z")
	if event != nil {
		t.Error("Expected nil for another document's backup")
	}
}

func TestWatcherConfigFileChange(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "oh-my-opencode.json")
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	w, err := New()
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()

	if err := w.WatchConfig(configPath); err != nil {
		t.Fatalf("Failed to watch config: %v", err)
	}

	w.Start()

	// Give the watcher time to start
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(configPath, []byte(`{"agents": {}}`), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	select {
	case event := <-w.Events:
		if event.Type != ConfigChanged {
			t.Errorf("Expected ConfigChanged event, got %v", event.Type)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timed out waiting for event")
	}
}

func TestWatcherBackupFileAppears(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "oh-my-opencode.json")
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	w, err := New()
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()

	if err := w.WatchConfig(configPath); err != nil {
		t.Fatalf("Failed to watch config: %v", err)
	}

	w.Start()

	// Give the watcher time to start
	time.Sleep(50 * time.Millisecond)

	backupPath := configPath + ".bak.2026-01-02T15-04-05-123Z"
	if err := os.WriteFile(backupPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to write backup file: %v", err)
	}

	select {
	case event := <-w.Events:
		if event.Type != BackupCreated {
			t.Errorf("Expected BackupCreated event, got %v", event.Type)
		}
		if event.Path != backupPath {
			t.Errorf("Expected path %s, got %s", backupPath, event.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timed out waiting for event")
	}
}

func TestWatcherStop(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}

	w.Start()

	if err := w.Stop(); err != nil {
		t.Errorf("Failed to stop watcher: %v", err)
	}

	// Stop should be idempotent
	if err := w.Stop(); err != nil {
		t.Errorf("Second stop should not error: %v", err)
	}
}
