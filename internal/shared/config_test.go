package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./Recording.db" {
			t.Errorf("expected database path ./Recording.db, got %s", config.Database.Path)
		}

		if config.Database.BusyTimeoutMS != 5000 {
			t.Errorf("expected busy timeout 5000, got %d", config.Database.BusyTimeoutMS)
		}

		if config.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Log.Level)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should be valid: %v", err)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Fatalf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		testConfig := `[database]
path = "/custom/Recording.db"
max_open_conns = 8
max_idle_conns = 4
busy_timeout_ms = 250

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/Recording.db" {
			t.Errorf("expected database path /custom/Recording.db, got %s", config.Database.Path)
		}
		if config.Database.MaxOpenConns != 8 {
			t.Errorf("expected max_open_conns 8, got %d", config.Database.MaxOpenConns)
		}
		if config.Database.BusyTimeoutMS != 250 {
			t.Errorf("expected busy timeout 250, got %d", config.Database.BusyTimeoutMS)
		}
		if config.Log.Level != "debug" {
			t.Errorf("expected log level debug, got %s", config.Log.Level)
		}
	})

	t.Run("LoadConfig rejects invalid values", func(t *testing.T) {
		tc := map[string]string{
			"missing path":   "[database]\npath = \"\"\n",
			"negative conns": "[database]\npath = \"x.db\"\nmax_open_conns = -1\n",
			"bad level":      "[database]\npath = \"x.db\"\n[log]\nlevel = \"verbose\"\n",
		}

		for name, body := range tc {
			t.Run(name, func(t *testing.T) {
				configPath := filepath.Join(t.TempDir(), "config.toml")
				if err := os.WriteFile(configPath, []byte(body), 0644); err != nil {
					t.Fatalf("failed to write test config: %v", err)
				}

				_, err := LoadConfig(configPath)
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})
}
