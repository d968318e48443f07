package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fluxtab/tabaction/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envEndpoint   = "TABACTION_ENDPOINT"
	envInterval   = "TABACTION_INTERVAL"
	envWidth      = "TABACTION_WIDTH"
	envHeight     = "TABACTION_HEIGHT"
	envShowFooter = "TABACTION_FOOTER"
	envVerbose    = "TABACTION_VERBOSE"
	envTrace      = "TABACTION_TRACE"
	envLogFile    = "TABACTION_LOG_FILE"
	envConfigFile = "TABACTION_CONFIG"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence, low
// to high: built-in defaults, config file, environment, flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	filePath := peekConfigPath(args, env)
	file, err := loadFile(filePath)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("tabaction", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	endpoint := fs.String("endpoint", envOrDefault(env, envEndpoint, file.Endpoint), "browser debug endpoint URL")
	interval := fs.Duration("interval", envOrDuration(env, envInterval, file.interval()), "host poll interval (0 uses the default)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show info messages for issued commands")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	fs.String("config", filePath, "path to the TOML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *interval < 0 {
		return Config{}, fmt.Errorf("interval must be >= 0 (got %s)", *interval)
	}

	cfg := Config{
		App: app.Config{
			Endpoint:   *endpoint,
			Interval:   *interval,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			DarkThemes: file.DarkThemes,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"endpoint": *endpoint,
			"interval": interval.String(),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"verbose":  strconv.FormatBool(*verbose),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
			"config":   filePath,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
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
	if strings.TrimSpace(cfg.App.Endpoint) != "" &&
		!strings.HasPrefix(cfg.App.Endpoint, "http://") &&
		!strings.HasPrefix(cfg.App.Endpoint, "https://") {
		return fmt.Errorf("endpoint must be an http(s) URL (got %q)", cfg.App.Endpoint)
	}
	return nil
}

// peekConfigPath resolves the -config flag ahead of full flag parsing so the
// file's values can seed flag defaults.
func peekConfigPath(args []string, env map[string]string) string {
	path := envOrDefault(env, envConfigFile, "")
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				path = args[i+1]
			}
		case strings.HasPrefix(arg, "-config="):
			path = strings.TrimPrefix(arg, "-config=")
		case strings.HasPrefix(arg, "--config="):
			path = strings.TrimPrefix(arg, "--config=")
		}
	}
	return path
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
