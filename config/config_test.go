package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithEnv_DecodesLogBlock(t *testing.T) {
	dir := t.TempDir()
	yaml := `
env:
  env: test
  serviceName: ketalog-admin
  debug: true
  log:
    pretty: true
    level: debug
upstream:
  baseUrl: http://localhost:5000
  timeout: 15s
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv failed: %v", err)
	}

	if !cfg.Env.Log.Pretty {
		t.Error("Env.Log.Pretty = false, want true")
	}
	if cfg.Env.Log.Level != "debug" {
		t.Errorf("Env.Log.Level = %q, want %q", cfg.Env.Log.Level, "debug")
	}
	if cfg.Upstream.BaseURL != "http://localhost:5000" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
}
