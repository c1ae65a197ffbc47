package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	ctlHome := filepath.Join(home, ".yggdrasilctl")
	logsDir := filepath.Join(ctlHome, "logs")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Home", paths.Home, ctlHome},
		{"Config", paths.Config, filepath.Join(ctlHome, "config.yaml")},
		{"Logs", paths.Logs, logsDir},
		{"DebugLog", paths.DebugLog, filepath.Join(logsDir, "debug.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestGetPaths_AllUnderHome(t *testing.T) {
	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}

	if !strings.Contains(paths.Home, ".yggdrasilctl") {
		t.Errorf("Home should contain .yggdrasilctl: %q", paths.Home)
	}
	if !strings.HasPrefix(paths.Config, paths.Home) {
		t.Errorf("Config should be under Home: %q", paths.Config)
	}
	if !strings.HasPrefix(paths.Logs, paths.Home) {
		t.Errorf("Logs should be under Home: %q", paths.Logs)
	}
	if !strings.HasPrefix(paths.DebugLog, paths.Home) {
		t.Errorf("DebugLog should be under Home: %q", paths.DebugLog)
	}
}

func TestPaths_EnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	ctlHome := filepath.Join(tmpDir, ".yggdrasilctl")
	paths := &Paths{
		Home: ctlHome,
		Logs: filepath.Join(ctlHome, "logs"),
	}

	if _, err := os.Stat(paths.Home); !os.IsNotExist(err) {
		t.Fatal("Home directory should not exist before EnsureDirectories")
	}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	for _, dir := range []string{paths.Home, paths.Logs} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("Directory %q should exist: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%q should be a directory", dir)
		}
	}

	// Calling again should not error (idempotent)
	if err := paths.EnsureDirectories(); err != nil {
		t.Errorf("EnsureDirectories() second call error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))

		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Endpoint != "" || cfg.Timeout != "" || cfg.Debug || cfg.LogFile != "" {
			t.Errorf("Load() = %+v, want zero config", cfg)
		}
	})

	t.Run("reads all fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "endpoint: tcp://10.0.0.1:9001\ntimeout: 5s\ndebug: true\nlog_file: /var/log/yggdrasilctl.log\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := Load(path)

		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Endpoint != "tcp://10.0.0.1:9001" {
			t.Errorf("Endpoint = %q", cfg.Endpoint)
		}
		if cfg.Timeout != "5s" {
			t.Errorf("Timeout = %q", cfg.Timeout)
		}
		if !cfg.Debug {
			t.Error("Debug = false, want true")
		}
		if cfg.LogFile != "/var/log/yggdrasilctl.log" {
			t.Errorf("LogFile = %q", cfg.LogFile)
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("endpoint: [unclosed"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for invalid yaml")
		}
	})
}

func TestResolve(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "")

		s, err := Resolve(&Config{}, "", "", 0, false)

		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Endpoint != DefaultEndpoint {
			t.Errorf("Endpoint = %q, want %q", s.Endpoint, DefaultEndpoint)
		}
		if s.Timeout != 0 {
			t.Errorf("Timeout = %v, want 0", s.Timeout)
		}
		if s.Debug {
			t.Error("Debug = true, want false")
		}
	})

	t.Run("file endpoint beats default", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "")

		s, err := Resolve(&Config{Endpoint: "tcp://router:9001"}, "", "", 0, false)

		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Endpoint != "tcp://router:9001" {
			t.Errorf("Endpoint = %q, want file value", s.Endpoint)
		}
	})

	t.Run("environment beats file", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "tcp://env:9001")

		s, err := Resolve(&Config{Endpoint: "tcp://router:9001"}, "", "", 0, false)

		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Endpoint != "tcp://env:9001" {
			t.Errorf("Endpoint = %q, want env value", s.Endpoint)
		}
	})

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "tcp://env:9001")

		s, err := Resolve(&Config{Endpoint: "tcp://router:9001"}, "", "tcp://flag:9001", 0, false)

		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Endpoint != "tcp://flag:9001" {
			t.Errorf("Endpoint = %q, want flag value", s.Endpoint)
		}
	})

	t.Run("timeout from file", func(t *testing.T) {
		s, err := Resolve(&Config{Timeout: "750ms"}, "", "", 0, false)

		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Timeout != 750*time.Millisecond {
			t.Errorf("Timeout = %v, want 750ms", s.Timeout)
		}
	})

	t.Run("flag timeout beats file", func(t *testing.T) {
		s, err := Resolve(&Config{Timeout: "750ms"}, "", "", 2*time.Second, false)

		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Timeout != 2*time.Second {
			t.Errorf("Timeout = %v, want 2s", s.Timeout)
		}
	})

	t.Run("bad file timeout is an error", func(t *testing.T) {
		if _, err := Resolve(&Config{Timeout: "soon"}, "", "", 0, false); err == nil {
			t.Error("Resolve() expected error for unparseable timeout")
		}
	})

	t.Run("debug from either source", func(t *testing.T) {
		s, err := Resolve(&Config{Debug: true}, "", "", 0, false)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !s.Debug {
			t.Error("Debug from file not honored")
		}

		s, err = Resolve(&Config{}, "", "", 0, true)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !s.Debug {
			t.Error("Debug from flag not honored")
		}
	})

	t.Run("log file tilde expanded", func(t *testing.T) {
		s, err := Resolve(&Config{LogFile: "~/trace.log"}, "", "", 0, false)

		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		home, _ := os.UserHomeDir()
		if s.LogFile != filepath.Join(home, "trace.log") {
			t.Errorf("LogFile = %q, want under home", s.LogFile)
		}
	})

	t.Run("relative log file resolves against base dir", func(t *testing.T) {
		s, err := Resolve(&Config{LogFile: "trace.log"}, "/etc/yggdrasilctl", "", 0, false)

		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.LogFile != "/etc/yggdrasilctl/trace.log" {
			t.Errorf("LogFile = %q, want /etc/yggdrasilctl/trace.log", s.LogFile)
		}
	})

	t.Run("nil config behaves like zero config", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "")

		s, err := Resolve(nil, "", "", 0, false)

		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Endpoint != DefaultEndpoint {
			t.Errorf("Endpoint = %q, want %q", s.Endpoint, DefaultEndpoint)
		}
	})
}
