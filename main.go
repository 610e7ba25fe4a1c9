package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/toolbar-commands/internal/app"
	"github.com/atomicstack/toolbar-commands/internal/config"
	"github.com/atomicstack/toolbar-commands/internal/logging"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if runtimeCfg.List {
		if err := app.List(os.Stdout, runtimeCfg.App); err != nil {
			logging.Error(err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	events.App.Start(startupTracePayload(cfg, probeTerminal()))
}

// startupTracePayload bundles the resolved toolbar settings, the commands a
// first pass would show and the terminal the program starts in.
func startupTracePayload(cfg config.Config, terminal terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	toolbar := map[string]interface{}{
		"locale":    cfg.App.Locale,
		"placement": cfg.App.Placement.String(),
		"title":     cfg.App.Title,
		"list":      cfg.List,
	}
	if counts, err := app.Summary(cfg.App); err == nil {
		toolbar["commands"] = counts
	} else {
		toolbar["commandsError"] = err.Error()
	}

	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"toolbar":  toolbar,
		"terminal": terminal,
		"viewport": resolveViewport(cfg.App, terminal),
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	return payload
}

type terminalInfo struct {
	Size        *terminalSize     `json:"size,omitempty"`
	Descriptors []descriptorState `json:"descriptors"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptorState struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Error    string `json:"error,omitempty"`
}

// viewport is the size the toolbar will draw at and where it came from.
type viewport struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Source string `json:"source"`
}

var (
	isTerminal = term.IsTerminal
	termSize   = term.GetSize
)

// probeTerminal records which standard descriptors are terminals; the first
// one that reports a size wins.
func probeTerminal() terminalInfo {
	descriptors := []struct {
		name string
		fd   int
	}{
		{"stdin", int(os.Stdin.Fd())},
		{"stdout", int(os.Stdout.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
	info := terminalInfo{Descriptors: make([]descriptorState, 0, len(descriptors))}
	for _, d := range descriptors {
		state := descriptorState{Name: d.name, Terminal: d.fd >= 0 && isTerminal(d.fd)}
		if state.Terminal && info.Size == nil {
			if width, height, err := termSize(d.fd); err == nil {
				info.Size = &terminalSize{Source: d.name, Width: width, Height: height}
			} else {
				state.Error = err.Error()
			}
		}
		info.Descriptors = append(info.Descriptors, state)
	}
	return info
}

// resolveViewport applies configured dimensions over the detected terminal
// size, one axis at a time.
func resolveViewport(cfg app.Config, terminal terminalInfo) viewport {
	v := viewport{Width: cfg.Width, Height: cfg.Height, Source: "config"}
	if terminal.Size == nil {
		if v.Width == 0 && v.Height == 0 {
			v.Source = "unknown"
		}
		return v
	}
	switch {
	case v.Width == 0 && v.Height == 0:
		v.Source = "terminal:" + terminal.Size.Source
	case v.Width == 0 || v.Height == 0:
		v.Source = "config+terminal:" + terminal.Size.Source
	}
	if v.Width == 0 {
		v.Width = terminal.Size.Width
	}
	if v.Height == 0 {
		v.Height = terminal.Size.Height
	}
	return v
}
