package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", `
subscription_id: sub-1
azd_env_name: dev
regions: [eastus, swedencentral]
aca_environment_name: cae-svo-dev
aca_resource_group: rg-svo-dev
serve:
  addr: ":9999"
  scan_interval_sec: 60
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SubscriptionID != "sub-1" || cfg.AzdEnvName != "dev" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.Regions) != 2 || cfg.Regions[1] != "swedencentral" {
		t.Fatalf("unexpected regions: %v", cfg.Regions)
	}
	if cfg.Serve.Addr != ":9999" || cfg.Serve.ScanIntervalSec != 60 {
		t.Fatalf("unexpected serve cfg: %+v", cfg.Serve)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"regions":["eastus"],"selection":{"region":"eastus","chat_model":"OpenAI.Standard.gpt-4o","chat_capacity":10,"embed_model":"OpenAI.Standard.text-embedding-3-small","embed_capacity":5}}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Selection == nil || cfg.Selection.ChatCapacity != 10 || cfg.Selection.EmbedModel != "OpenAI.Standard.text-embedding-3-small" {
		t.Fatalf("unexpected selection: %+v", cfg.Selection)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "regions=[\"uksouth\"]\nsubscription_id=\"sub-2\"\n\n[endpoints]\nrecordability=\"https://ca-svo-recordability-dev.example.io\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SubscriptionID != "sub-2" || len(cfg.Regions) != 1 || cfg.Regions[0] != "uksouth" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.Endpoints.Recordability == "" {
		t.Fatalf("endpoints not decoded: %+v", cfg.Endpoints)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}

func TestLoadOrDefault_Defaults(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if len(cfg.Regions) == 0 || len(cfg.Catalog) == 0 {
		t.Fatalf("defaults missing: %+v", cfg)
	}
	if cfg.Serve.Addr != ":8080" || cfg.Serve.ScanIntervalSec != 300 {
		t.Fatalf("unexpected serve defaults: %+v", cfg.Serve)
	}
}

func TestLoadOrDefault_NormalizesPartialFile(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "subscription_id: sub-3\n")
	cfg, err := LoadOrDefault(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Regions) == 0 || len(cfg.Catalog) == 0 {
		t.Fatalf("expected normalized defaults, got %+v", cfg)
	}
}
