package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional TOML config file. Pointer fields
// distinguish an absent key from an explicit false.
type fileConfig struct {
	Gateway gatewaySection `toml:"gateway"`
	UI      uiSection      `toml:"ui"`
	Logging loggingSection `toml:"logging"`
}

type gatewaySection struct {
	BaseURL        string   `toml:"base_url"`
	APIToken       string   `toml:"api_token"`
	ProjectToken   string   `toml:"project_token"`
	RequestTimeout Duration `toml:"request_timeout"`
}

type uiSection struct {
	AutoLogin   *bool `toml:"auto_login"`
	RefreshSecs int   `toml:"refresh_secs"`
}

type loggingSection struct {
	File  string `toml:"file"`
	Trace *bool  `toml:"trace"`
}

// loadFile reads the first config file found. Search order:
//  1. the -config flag
//  2. $TASKSGODZILLA_TUI_CONFIG
//  3. $XDG_CONFIG_HOME/godzilla-tui/config.toml
//  4. ~/.config/godzilla-tui/config.toml
//
// A missing file is not an error; a malformed one is.
func loadFile(env map[string]string, override string) (fileConfig, error) {
	var cfg fileConfig
	for _, path := range fileSearchPaths(env, override) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return fileConfig{}, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

func fileSearchPaths(env map[string]string, override string) []string {
	paths := make([]string, 0, 4)
	if override != "" {
		paths = append(paths, override)
	}
	if p := env[envConfigFile]; p != "" {
		paths = append(paths, p)
	}
	if x := env["XDG_CONFIG_HOME"]; x != "" {
		paths = append(paths, filepath.Join(x, "godzilla-tui", "config.toml"))
	}
	if home := env["HOME"]; home != "" {
		paths = append(paths, filepath.Join(home, ".config", "godzilla-tui", "config.toml"))
	}
	return paths
}

func (f fileConfig) baseURL(fallback string) string {
	if f.Gateway.BaseURL != "" {
		return f.Gateway.BaseURL
	}
	return fallback
}

func (f fileConfig) autoLogin(fallback bool) bool {
	if f.UI.AutoLogin != nil {
		return *f.UI.AutoLogin
	}
	return fallback
}

func (f fileConfig) refreshSecs(fallback int) int {
	if f.UI.RefreshSecs > 0 {
		return f.UI.RefreshSecs
	}
	return fallback
}

func (f fileConfig) requestTimeout(fallback time.Duration) time.Duration {
	if f.Gateway.RequestTimeout.Duration > 0 {
		return f.Gateway.RequestTimeout.Duration
	}
	return fallback
}

func (f fileConfig) trace(fallback bool) bool {
	if f.Logging.Trace != nil {
		return *f.Logging.Trace
	}
	return fallback
}
