package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"payoff-grid/internal/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Grid.Size != 10 || c.Grid.MaxSize != DefaultMaxGridSize || c.Grid.OutputMode() != render.ModeText || !c.Grid.Color {
		t.Fatalf("grid=%+v", c.Grid)
	}
	if c.Server.Port != "8080" || c.Server.Production() || c.Server.CacheMaxEntries != 1000 {
		t.Fatalf("server=%+v", c.Server)
	}
	ttl, err := c.Server.CacheDuration()
	if err != nil || ttl != 10*time.Minute {
		t.Fatalf("ttl=%v err=%v", ttl, err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
grid:
  size: 6
  output: json
  color: false
server:
  port: "9090"
  env: production
  cache_ttl: 0s
log:
  level: debug
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Grid.Size != 6 || c.Grid.OutputMode() != render.ModeJSON || c.Grid.Color {
		t.Fatalf("grid=%+v", c.Grid)
	}
	if c.Server.Port != "9090" || !c.Server.Production() || c.Log.Level != "debug" {
		t.Fatalf("cfg=%+v", c)
	}
	if ttl, _ := c.Server.CacheDuration(); ttl != 0 {
		t.Fatalf("ttl=%v want 0", ttl)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "grid:\n  size: 4\n")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Grid.Size != 4 || c.Server.Port != "8080" || c.Log.Level != "info" {
		t.Fatalf("cfg=%+v", c)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BETGRID_GRID_SIZE", "12")
	t.Setenv("BETGRID_SERVER_PORT", "7000")
	t.Setenv("BETGRID_GRID_COLOR", "false")
	t.Setenv("BETGRID_GRID_MAX_SIZE", "40")
	c, err := Load(writeConfig(t, "grid:\n  size: 4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Grid.Size != 12 || c.Grid.MaxSize != 40 || c.Server.Port != "7000" || c.Grid.Color {
		t.Fatalf("cfg=%+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "grid: [")); err == nil {
		t.Fatalf("expected parse error")
	}
	bad := []string{
		"grid:\n  size: -1\n",
		"grid:\n  output: xml\n",
		"grid:\n  max_size: 0\n",
		"grid:\n  size: 20\n  max_size: 10\n",
		"server:\n  cache_max_entries: 0\n",
		"server:\n  port: \"\"\n",
		"server:\n  cache_ttl: soon\n",
		"server:\n  cache_ttl: -1m\n",
	}
	for _, body := range bad {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Fatalf("expected validation error for %q", body)
		}
	}
}
