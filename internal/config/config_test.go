package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("got %+v, want defaults %+v", cfg, Default())
	}

	path := filepath.Join(dir, "bj21", "config.toml")
	if GetConfigFilePath() != path {
		t.Fatalf("config path = %s, want %s", GetConfigFilePath(), path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file was not written: %v", err)
	}

	again, err := LoadConfig()
	if err != nil {
		t.Fatalf("reloading default config: %v", err)
	}
	if *again != *cfg {
		t.Fatalf("reloaded %+v, want %+v", again, cfg)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	writeConfig(t, dir, "color = false\n[entropy]\nsource = \"file\"\ndevice = \"/dev/urandom\"\n")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color {
		t.Fatalf("color should be disabled")
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log_level = %q, want default warn", cfg.LogLevel)
	}
	if cfg.Entropy.Source != SourceFile || cfg.Entropy.Device != "/dev/urandom" {
		t.Fatalf("unexpected entropy section: %+v", cfg.Entropy)
	}
	if cfg.Entropy.Baud != 115200 {
		t.Fatalf("baud = %d, want default", cfg.Entropy.Baud)
	}
}

func TestLoadConfig_RejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown source":    "[entropy]\nsource = \"dice\"\n",
		"file without path": "[entropy]\nsource = \"file\"\n",
		"serial bad baud":   "[entropy]\nsource = \"serial\"\ndevice = \"/dev/ttyACM0\"\nbaud = 0\n",
		"unknown log level": "log_level = \"loud\"\n",
		"malformed toml":    "color = \n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", dir)
			writeConfig(t, dir, body)

			if _, err := LoadConfig(); err == nil {
				t.Fatalf("expected error for %q", body)
			}
		})
	}
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	path := filepath.Join(dir, "bj21", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}
