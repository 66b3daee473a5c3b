package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"whatscript/internal/config"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, found, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("found a config in an empty temp dir")
	}
	if cfg.Output.Format != "pretty" || cfg.Output.Color != "auto" || cfg.Shards() != 0 {
		t.Errorf("defaults changed: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[detect]\nshards = 4\n\n[output]\nformat = \"json\"\ncolor = \"off\"\n")

	cfg, found, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("config not found")
	}
	if cfg.Shards() != 4 {
		t.Errorf("Shards = %d, want 4", cfg.Shards())
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "off" {
		t.Errorf("output = %+v", cfg.Output)
	}
}

func TestLoadFromParentDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output]\nformat = \"msgpack\"\n")
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, found, err := config.Load(sub)
	if err != nil {
		t.Fatal(err)
	}
	if !found || cfg.Output.Format != "msgpack" {
		t.Errorf("found=%v cfg=%+v", found, cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []string{
		"[output]\nformat = \"xml\"\n",
		"[output]\ncolor = \"sometimes\"\n",
		"[detect]\nshards = -2\n",
	}
	for _, content := range cases {
		dir := t.TempDir()
		writeConfig(t, dir, content)
		if _, _, err := config.Load(dir); err == nil {
			t.Errorf("no error for %q", content)
		}
	}
}
