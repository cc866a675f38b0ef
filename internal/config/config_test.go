package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.BaseURL != "http://localhost:8011" {
		t.Fatalf("BaseURL = %q", cfg.App.BaseURL)
	}
	if !cfg.App.AutoLogin {
		t.Fatalf("expected autologin enabled by default")
	}
	if cfg.App.RefreshInterval != 4*time.Second {
		t.Fatalf("RefreshInterval = %s", cfg.App.RefreshInterval)
	}
	if cfg.App.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %s", cfg.App.RequestTimeout)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected tracing disabled by default")
	}
	if cfg.App.APIToken != "" || cfg.App.ProjectToken != "" {
		t.Fatalf("expected empty tokens, got %q %q", cfg.App.APIToken, cfg.App.ProjectToken)
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	environ := []string{
		"TASKSGODZILLA_API_BASE=http://godzilla:9000",
		"TASKSGODZILLA_API_TOKEN=tok",
		"TASKSGODZILLA_PROJECT_TOKEN=ptok",
		"TASKSGODZILLA_TUI_REFRESH_SECS=9",
		"TASKSGODZILLA_TUI_TRACE=true",
		"TASKSGODZILLA_TUI_REQUEST_TIMEOUT=3s",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.BaseURL != "http://godzilla:9000" {
		t.Fatalf("BaseURL = %q", cfg.App.BaseURL)
	}
	if cfg.App.APIToken != "tok" || cfg.App.ProjectToken != "ptok" {
		t.Fatalf("tokens = %q %q", cfg.App.APIToken, cfg.App.ProjectToken)
	}
	if cfg.App.RefreshInterval != 9*time.Second {
		t.Fatalf("RefreshInterval = %s", cfg.App.RefreshInterval)
	}
	if cfg.App.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout = %s", cfg.App.RequestTimeout)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected tracing enabled")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{"TASKSGODZILLA_API_BASE=http://from-env"}
	cfg, err := LoadArgs([]string{"-api-base", "http://from-flag", "-refresh-secs", "2"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.BaseURL != "http://from-flag" {
		t.Fatalf("BaseURL = %q, want flag value", cfg.App.BaseURL)
	}
	if cfg.App.RefreshInterval != 2*time.Second {
		t.Fatalf("RefreshInterval = %s", cfg.App.RefreshInterval)
	}
}

func TestAutoLoginRule(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"0", false},
		{"false", false},
		{"FALSE", false},
		{"False", false},
		{"1", true},
		{"yes", true},
		{"no", true},
		{"", true},
	}
	for _, tc := range cases {
		cfg, err := LoadArgs(nil, []string{"TASKSGODZILLA_TUI_AUTOLOGIN=" + tc.value})
		if err != nil {
			t.Fatalf("LoadArgs(%q): %v", tc.value, err)
		}
		if cfg.App.AutoLogin != tc.want {
			t.Fatalf("autologin %q = %v, want %v", tc.value, cfg.App.AutoLogin, tc.want)
		}
	}
}

func TestConfigFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[gateway]
base_url = "http://from-file"
api_token = "file-token"
request_timeout = "7s"

[ui]
auto_login = false
refresh_secs = 11

[logging]
trace = true
file = "/tmp/g.log"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	environ := []string{"TASKSGODZILLA_TUI_CONFIG=" + path}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.BaseURL != "http://from-file" {
		t.Fatalf("BaseURL = %q", cfg.App.BaseURL)
	}
	if cfg.App.APIToken != "file-token" {
		t.Fatalf("APIToken = %q", cfg.App.APIToken)
	}
	if cfg.App.AutoLogin {
		t.Fatalf("expected file to disable autologin")
	}
	if cfg.App.RefreshInterval != 11*time.Second {
		t.Fatalf("RefreshInterval = %s", cfg.App.RefreshInterval)
	}
	if cfg.App.RequestTimeout != 7*time.Second {
		t.Fatalf("RequestTimeout = %s", cfg.App.RequestTimeout)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/g.log" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}

	environ = append(environ, "TASKSGODZILLA_API_BASE=http://from-env")
	cfg, err = LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.BaseURL != "http://from-env" {
		t.Fatalf("env should beat file, got %q", cfg.App.BaseURL)
	}

	cfg, err = LoadArgs([]string{"-api-base", "http://from-flag"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.BaseURL != "http://from-flag" {
		t.Fatalf("flag should beat env, got %q", cfg.App.BaseURL)
	}
}

func TestVersionFlag(t *testing.T) {
	cfg, err := LoadArgs([]string{"-version"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if !cfg.ShowVersion {
		t.Fatalf("expected ShowVersion set")
	}

	cfg, err = LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.ShowVersion {
		t.Fatalf("ShowVersion should default to false")
	}
}

func TestConfigFlagBeatsEnvPath(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.toml")
	envPath := filepath.Join(dir, "env.toml")
	if err := os.WriteFile(flagPath, []byte("[gateway]\nbase_url = \"http://from-flag-file\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(envPath, []byte("[gateway]\nbase_url = \"http://from-env-file\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	environ := []string{"TASKSGODZILLA_TUI_CONFIG=" + envPath}
	for _, args := range [][]string{
		{"-config", flagPath},
		{"-config=" + flagPath},
		{"--config", flagPath},
	} {
		cfg, err := LoadArgs(args, environ)
		if err != nil {
			t.Fatalf("LoadArgs(%v): %v", args, err)
		}
		if cfg.App.BaseURL != "http://from-flag-file" {
			t.Fatalf("args %v: BaseURL = %q, want flag file value", args, cfg.App.BaseURL)
		}
	}
}

func TestConfigFileXDGLookup(t *testing.T) {
	dir := t.TempDir()
	appDir := filepath.Join(dir, "godzilla-tui")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	contents := "[gateway]\nbase_url = \"http://from-xdg\"\n"
	if err := os.WriteFile(filepath.Join(appDir, "config.toml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + dir})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.BaseURL != "http://from-xdg" {
		t.Fatalf("BaseURL = %q", cfg.App.BaseURL)
	}
}

func TestMalformedConfigFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[gateway\nbroken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadArgs(nil, []string{"TASKSGODZILLA_TUI_CONFIG=" + path})
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "config file") {
		t.Fatalf("err = %v", err)
	}
}

func TestRefreshSecsValidation(t *testing.T) {
	if _, err := LoadArgs([]string{"-refresh-secs", "0"}, nil); err == nil {
		t.Fatalf("expected error for refresh-secs 0")
	}
	if _, err := LoadArgs(nil, []string{"TASKSGODZILLA_TUI_REFRESH_SECS=-2"}); err == nil {
		t.Fatalf("expected error for negative env refresh")
	}
}

func TestInvalidEnvNumbersFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"TASKSGODZILLA_TUI_REFRESH_SECS=abc",
		"TASKSGODZILLA_TUI_REQUEST_TIMEOUT=fast",
	})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.RefreshInterval != 4*time.Second {
		t.Fatalf("RefreshInterval = %s, want default", cfg.App.RefreshInterval)
	}
	if cfg.App.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %s, want default", cfg.App.RequestTimeout)
	}
}
