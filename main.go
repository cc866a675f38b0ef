package main

import (
	"fmt"
	"os"

	"github.com/tasksgodzilla/godzilla-tui/internal/app"
	"github.com/tasksgodzilla/godzilla-tui/internal/config"
	"github.com/tasksgodzilla/godzilla-tui/internal/logging"
	"github.com/tasksgodzilla/godzilla-tui/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if runtimeCfg.ShowVersion {
		fmt.Printf("godzilla-tui v%s\n", app.Version)
		return
	}
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	events.App.Stop("quit")
}

// startupTracePayload records the effective session configuration. Token
// values are reduced to set/unset so credentials never reach the log.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv": cfg.Args,
		"gateway": map[string]interface{}{
			"base":            cfg.App.BaseURL,
			"tokenSet":        cfg.App.APIToken != "",
			"projectTokenSet": cfg.App.ProjectToken != "",
			"requestTimeout":  cfg.App.RequestTimeout.String(),
		},
		"ui": map[string]interface{}{
			"autologin":   cfg.App.AutoLogin,
			"refreshSecs": int(cfg.App.RefreshInterval.Seconds()),
		},
		"logging": map[string]interface{}{
			"file":  cfg.Logging.FilePath,
			"trace": cfg.Logging.Trace,
		},
		"tty": probeTTY(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type ttyInfo struct {
	Stdin  bool `json:"stdin"`
	Stdout bool `json:"stdout"`
	Stderr bool `json:"stderr"`
	Width  int  `json:"width,omitempty"`
	Height int  `json:"height,omitempty"`
}

// probeTTY reports which standard descriptors are terminals and the size of
// the first one that answers.
func probeTTY() ttyInfo {
	info := ttyInfo{
		Stdin:  term.IsTerminal(int(os.Stdin.Fd())),
		Stdout: term.IsTerminal(int(os.Stdout.Fd())),
		Stderr: term.IsTerminal(int(os.Stderr.Fd())),
	}
	for _, fd := range []int{int(os.Stdout.Fd()), int(os.Stdin.Fd()), int(os.Stderr.Fd())} {
		if !term.IsTerminal(fd) {
			continue
		}
		if width, height, err := term.GetSize(fd); err == nil {
			info.Width = width
			info.Height = height
			break
		}
	}
	return info
}
