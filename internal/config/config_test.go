package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Server.Port != 18030 {
		t.Fatalf("Port=%d, want 18030", cfg.Server.Port)
	}
	if cfg.Data.DataDir != "data" {
		t.Fatalf("DataDir=%q, want data", cfg.Data.DataDir)
	}
	if cfg.Excel.Dir != "excel_files" {
		t.Fatalf("Excel.Dir=%q, want excel_files", cfg.Excel.Dir)
	}
}

func TestIsPortSpecifiedInToml(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		toml string
		want bool
	}{
		{"with port", "[server]\nport = 9000\n", true},
		{"without port", "[server]\ndev_mode = true\n", false},
		{"no server section", "[data]\ndata_dir = \"data\"\n", false},
		{"invalid toml", "not toml at all ===", false},
	}

	for _, tc := range cases {
		if got := isPortSpecifiedInToml([]byte(tc.toml)); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SPXSCAN_EXCEL_DIR", "/tmp/sheets")
	t.Setenv("SPXSCAN_DATA_DIR", "/tmp/spxdata")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Excel.Dir != "/tmp/sheets" {
		t.Fatalf("Excel.Dir=%q", cfg.Excel.Dir)
	}
	if cfg.Data.DataDir != "/tmp/spxdata" {
		t.Fatalf("DataDir=%q", cfg.Data.DataDir)
	}
}
