package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/toolbar-commands/internal/app"
	"github.com/atomicstack/toolbar-commands/internal/i18n"
	"github.com/atomicstack/toolbar-commands/internal/render"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	List    bool
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the optional TOML configuration file. Every key is
// optional; values set in the environment or on the command line win.
type fileConfig struct {
	Locale    string `toml:"locale"`
	Title     string `toml:"title"`
	Placement string `toml:"placement"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Footer    bool   `toml:"footer"`
	Trace     bool   `toml:"trace"`
	LogFile   string `toml:"log_file"`
}

const (
	envConfigFile = "TOOLBAR_COMMANDS_CONFIG"
	envLocale     = "TOOLBAR_COMMANDS_LOCALE"
	envTitle      = "TOOLBAR_COMMANDS_TITLE"
	envPlacement  = "TOOLBAR_COMMANDS_PLACEMENT"
	envWidth      = "TOOLBAR_COMMANDS_WIDTH"
	envHeight     = "TOOLBAR_COMMANDS_HEIGHT"
	envShowFooter = "TOOLBAR_COMMANDS_FOOTER"
	envTrace      = "TOOLBAR_COMMANDS_TRACE"
	envLogFile    = "TOOLBAR_COMMANDS_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values are
// layered: built-in defaults, then the TOML file, then the environment, then
// flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := configPath(args, env)
	defaults := fileConfig{Locale: i18n.BaseLocale, Placement: render.PlacementToolbar.String()}
	if path != "" {
		if err := decodeFile(path, &defaults); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("toolbar-commands", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to an optional TOML configuration file")
	locale := fs.String("locale", envOrDefault(env, envLocale, defaults.Locale), "locale used for labels and tooltips")
	title := fs.String("title", envOrDefault(env, envTitle, defaults.Title), "title shown in the header breadcrumb")
	placement := fs.String("placement", envOrDefault(env, envPlacement, defaults.Placement), "placement hint for the root commands (toolbar or menu)")
	width := fs.Int("width", envOrInt(env, envWidth, defaults.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, defaults.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, defaults.Footer), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, defaults.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, defaults.LogFile), "path to the log file")
	list := fs.Bool("list", false, "print the command tree and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	where, err := render.ParsePlacement(strings.TrimSpace(*placement))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Locale:     strings.TrimSpace(*locale),
			Title:      *title,
			Placement:  where,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		List: *list,
		File: path,
		Flags: map[string]string{
			"config":    path,
			"locale":    *locale,
			"title":     *title,
			"placement": where.String(),
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
			"list":      strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPath finds the -config flag ahead of the full parse so the file can
// supply defaults for the remaining flags.
func configPath(args []string, env map[string]string) string {
	path := envOrDefault(env, envConfigFile, "")
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		switch {
		case name == "config" && i+1 < len(args):
			path = args[i+1]
			i++
		case strings.HasPrefix(name, "config="):
			path = strings.TrimPrefix(name, "config=")
		}
	}
	return strings.TrimSpace(path)
}

func decodeFile(path string, into *fileConfig) error {
	md, err := toml.DecodeFile(path, into)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fmt.Errorf("read config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects configurations the application cannot start with.
func Validate(cfg Config) error {
	if !i18n.Default().HasLocale(cfg.App.Locale) {
		return fmt.Errorf("unsupported locale %q (available: %s)", cfg.App.Locale, strings.Join(i18n.Default().Locales(), ", "))
	}
	if cfg.App.Placement.String() == "unknown" {
		return fmt.Errorf("unknown placement %d", cfg.App.Placement)
	}
	return nil
}
