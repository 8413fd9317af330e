package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Point at a file that does not exist so only defaults apply.
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Years.Previous != DefaultPreviousYear || cfg.Years.Current != DefaultCurrentYear {
		t.Errorf("years = %+v, want defaults %d/%d", cfg.Years, DefaultPreviousYear, DefaultCurrentYear)
	}
	if cfg.CacheTTLSeconds != DefaultCacheTTLSeconds {
		t.Errorf("cache ttl = %d, want %d", cfg.CacheTTLSeconds, DefaultCacheTTLSeconds)
	}
	if len(cfg.Files) != len(DefaultFiles) {
		t.Errorf("files = %d entries, want %d", len(cfg.Files), len(DefaultFiles))
	}
	if cfg.Files["monthly"] != DefaultFiles["monthly"] {
		t.Errorf("monthly file = %q, want %q", cfg.Files["monthly"], DefaultFiles["monthly"])
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := `data_dir: /srv/reports
years:
  previous: 2023
  current: 2024
files:
  monthly: custom_monthly.csv
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "/srv/reports" {
		t.Errorf("data_dir = %q, want /srv/reports", cfg.DataDir)
	}
	if cfg.Years.Previous != 2023 || cfg.Years.Current != 2024 {
		t.Errorf("years = %+v, want 2023/2024", cfg.Years)
	}

	// The overridden name wins; unmentioned datasets keep their defaults.
	if cfg.Files["monthly"] != "custom_monthly.csv" {
		t.Errorf("monthly file = %q, want custom_monthly.csv", cfg.Files["monthly"])
	}
	if cfg.Files["resolution"] != DefaultFiles["resolution"] {
		t.Errorf("resolution file = %q, want default %q", cfg.Files["resolution"], DefaultFiles["resolution"])
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := expandPath("~/data")
	want := filepath.Join(home, "data")
	if got != want {
		t.Errorf("expandPath(~/data) = %q, want %q", got, want)
	}

	if got := expandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
