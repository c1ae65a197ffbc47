// Package config handles yggdrasilctl path and settings configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/13werwolf13/Yggdrasil-ng/internal/pathutil"
)

// DefaultEndpoint is the admin socket address used when neither the command
// line, the environment, nor the config file names one.
const DefaultEndpoint = "tcp://localhost:9001"

// EndpointEnvVar overrides the config file endpoint when set.
const EndpointEnvVar = "YGGDRASILCTL_ENDPOINT"

// Paths holds common paths used by yggdrasilctl.
type Paths struct {
	Home     string
	Config   string
	Logs     string
	DebugLog string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	ctlHome := filepath.Join(home, ".yggdrasilctl")
	logsDir := filepath.Join(ctlHome, "logs")
	return &Paths{
		Home:     ctlHome,
		Config:   filepath.Join(ctlHome, "config.yaml"),
		Logs:     logsDir,
		DebugLog: filepath.Join(logsDir, "debug.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.Home, p.Logs}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Config mirrors the optional ~/.yggdrasilctl/config.yaml file.
type Config struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
	Debug    bool   `yaml:"debug"`
	LogFile  string `yaml:"log_file"`
}

// Load reads the config file at path. A missing file is not an error and
// yields a zero config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// Settings is the effective configuration after merging all sources.
type Settings struct {
	Endpoint string
	Timeout  time.Duration
	Debug    bool
	LogFile  string
}

// Resolve merges the command line, the environment, and the config file into
// effective settings. Precedence for the endpoint: flag, then
// YGGDRASILCTL_ENDPOINT, then the file, then DefaultEndpoint. A relative
// log_file resolves against baseDir.
func Resolve(cfg *Config, baseDir string, flagEndpoint string, flagTimeout time.Duration, flagDebug bool) (*Settings, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	s := &Settings{
		Endpoint: DefaultEndpoint,
		Debug:    cfg.Debug || flagDebug,
	}

	if cfg.Endpoint != "" {
		s.Endpoint = cfg.Endpoint
	}
	if env := os.Getenv(EndpointEnvVar); env != "" {
		s.Endpoint = env
	}
	if flagEndpoint != "" {
		s.Endpoint = flagEndpoint
	}

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse timeout: %w", err)
		}
		s.Timeout = d
	}
	if flagTimeout > 0 {
		s.Timeout = flagTimeout
	}

	if cfg.LogFile != "" {
		resolved, err := pathutil.ResolvePath(cfg.LogFile, baseDir)
		if err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
		s.LogFile = resolved
	}

	return s, nil
}
