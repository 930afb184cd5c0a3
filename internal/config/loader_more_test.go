package config

import (
	"testing"
)

func TestLoad_NonexistentFile(t *testing.T) {
	if _, err := Load("/definitely/not/a/real/file-12345.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.yaml", "regions: [eastus]\n: broken\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected YAML unmarshal error")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.json", `{ "regions": }`)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected JSON unmarshal error")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.toml", "regions=eastus\nsubscription_id\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected TOML unmarshal error")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("QUOTACTL_SUBSCRIPTION_ID", "sub-env")
	t.Setenv("QUOTACTL_SCAN_INTERVAL_SEC", "42")
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.SubscriptionID != "sub-env" {
		t.Fatalf("subscription override not applied: %q", cfg.SubscriptionID)
	}
	if cfg.Serve.ScanIntervalSec != 42 {
		t.Fatalf("scan interval override not applied: %d", cfg.Serve.ScanIntervalSec)
	}
}
