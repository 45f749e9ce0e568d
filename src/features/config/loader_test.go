package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	content := `collectionPath: /music/collection.xml
snapshotPath: ` + filepath.Join(dir, "snapshots") + `
logger:
  enabled: true
  level: debug
  format: json
server:
  port: 8080
watcher:
  enabled: true
`
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg := manager.Get()
	if cfg.CollectionPath != "/music/collection.xml" {
		t.Errorf("unexpected collection path: %q", cfg.CollectionPath)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Format != "json" {
		t.Errorf("unexpected logger config: %+v", cfg.Logger)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("unexpected port: %d", cfg.Server.Port)
	}
	if _, err := os.Stat(filepath.Join(dir, "snapshots")); err != nil {
		t.Errorf("expected snapshot directory to be created: %v", err)
	}
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	manager, err := Load("config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg := manager.Get()
	if cfg.CollectionPath != "./collection.xml" {
		t.Errorf("unexpected default collection path: %q", cfg.CollectionPath)
	}
	if cfg.Server.Port != 3636 {
		t.Errorf("unexpected default port: %d", cfg.Server.Port)
	}
	if !cfg.Watcher.Enabled {
		t.Error("expected watcher enabled by default")
	}
	if _, err := os.Stat("config.yaml"); err != nil {
		t.Errorf("expected default config file to be written: %v", err)
	}
}

func TestLoadRejectsIncompleteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logger:\n  enabled: true\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for missing required paths")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `collectionPath: /music/collection.xml
snapshotPath: ` + filepath.Join(dir, "snapshots") + `
`
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	t.Setenv("CUEBOX_COLLECTION", "/other/collection.xml")
	t.Setenv("CUEBOX_TIMELINE", "/other/timeline.json")

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg := manager.Get()
	if cfg.CollectionPath != "/other/collection.xml" {
		t.Errorf("expected env override of collection path, got %q", cfg.CollectionPath)
	}
	if cfg.Timeline.Path != "/other/timeline.json" || !cfg.Timeline.Enabled {
		t.Errorf("expected env override to enable the timeline, got %+v", cfg.Timeline)
	}
}
