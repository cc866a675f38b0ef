package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tasksgodzilla/godzilla-tui/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App         app.Config
	Logging     Logging
	ShowVersion bool
	Args        []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envAPIBase        = "TASKSGODZILLA_API_BASE"
	envAPIToken       = "TASKSGODZILLA_API_TOKEN"
	envProjectToken   = "TASKSGODZILLA_PROJECT_TOKEN"
	envAutoLogin      = "TASKSGODZILLA_TUI_AUTOLOGIN"
	envRefreshSecs    = "TASKSGODZILLA_TUI_REFRESH_SECS"
	envRequestTimeout = "TASKSGODZILLA_TUI_REQUEST_TIMEOUT"
	envLogFile        = "TASKSGODZILLA_TUI_LOG_FILE"
	envTrace          = "TASKSGODZILLA_TUI_TRACE"
	envConfigFile     = "TASKSGODZILLA_TUI_CONFIG"
)

const (
	defaultBaseURL        = "http://localhost:8011"
	defaultRefreshSecs    = 4
	defaultRequestTimeout = 10 * time.Second
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// config file, then environment, then flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	file, err := loadFile(env, configPathFromArgs(args))
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("godzilla-tui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	// The value is consumed by the pre-scan above; registering it keeps
	// Parse from rejecting the flag.
	fs.String("config", "", "path to the TOML config file")

	apiBase := fs.String("api-base", envOrDefault(env, envAPIBase, file.baseURL(defaultBaseURL)), "orchestrator base URL")
	apiToken := fs.String("api-token", envOrDefault(env, envAPIToken, file.Gateway.APIToken), "bearer token for the orchestrator API")
	projectToken := fs.String("project-token", envOrDefault(env, envProjectToken, file.Gateway.ProjectToken), "project-scoped token")
	autoLogin := fs.Bool("autologin", autoLoginFromEnv(env, file.autoLogin(true)), "connect on startup instead of showing the login screen")
	refreshSecs := fs.Int("refresh-secs", envOrInt(env, envRefreshSecs, file.refreshSecs(defaultRefreshSecs)), "seconds between periodic dashboard refreshes")
	requestTimeout := fs.Duration("request-timeout", envOrDuration(env, envRequestTimeout, file.requestTimeout(defaultRequestTimeout)), "HTTP timeout for gateway calls")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.trace(false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.Logging.File), "path to the log file")
	showVersion := fs.Bool("version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *refreshSecs < 1 {
		return Config{}, fmt.Errorf("refresh-secs must be >= 1 (got %d)", *refreshSecs)
	}
	if *requestTimeout <= 0 {
		return Config{}, fmt.Errorf("request-timeout must be positive (got %s)", *requestTimeout)
	}

	cfg := Config{
		App: app.Config{
			BaseURL:         *apiBase,
			APIToken:        *apiToken,
			ProjectToken:    *projectToken,
			AutoLogin:       *autoLogin,
			RefreshInterval: time.Duration(*refreshSecs) * time.Second,
			RequestTimeout:  *requestTimeout,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		ShowVersion: *showVersion,
		Args:        append([]string(nil), args...),
	}

	return cfg, nil
}

// configPathFromArgs pre-scans for -config so the file layer can seed the
// flag defaults before the flag set parses.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name != "config" || !strings.HasPrefix(arg, "-") {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// autoLoginFromEnv keeps the historical toggle rule: any set value other
// than "0" or a case-insensitive "false" counts as enabled.
func autoLoginFromEnv(env map[string]string, fallback bool) bool {
	v, ok := env[envAutoLogin]
	if !ok {
		return fallback
	}
	return v != "0" && strings.ToLower(v) != "false"
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.RefreshInterval < time.Second {
		return fmt.Errorf("refresh interval must be at least 1s (got %s)", cfg.App.RefreshInterval)
	}
	if cfg.App.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive (got %s)", cfg.App.RequestTimeout)
	}
	return nil
}
