//go:build !js
// +build !js

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
)

// configRelPath is the server config file relative to the XDG config home.
const configRelPath = "ninja-slice/server.conf"

// Config holds the server settings. Precedence, lowest first: defaults,
// config file, environment, command line flags.
type Config struct {
	Port      int
	StaticDir string
	RedisURL  string
	LogLevel  string
	LogFile   string // Empty means stdout
}

func defaultConfig() *Config {
	return &Config{
		Port:      8080,
		StaticDir: ".",
		RedisURL:  "redis://localhost:6379/0",
		LogLevel:  "info",
	}
}

// parseConfigFile reads key=value lines into cfg. Blank lines and lines
// starting with # are ignored, as are unknown keys and malformed values.
func parseConfigFile(r io.Reader, cfg *Config) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "port":
			if port, err := strconv.Atoi(value); err == nil && port > 0 {
				cfg.Port = port
			}
		case "static_dir":
			cfg.StaticDir = value
		case "redis_url":
			cfg.RedisURL = value
		case "log_level":
			cfg.LogLevel = value
		case "log_file":
			cfg.LogFile = value
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// loadConfigFile applies the file at path to cfg. A missing file is not an error.
func loadConfigFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return parseConfigFile(file, cfg)
}

// defaultConfigPath locates the config file in the XDG config home.
func defaultConfigPath() (string, error) {
	path, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return "", fmt.Errorf("could not get config path: %w", err)
	}
	return path, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if url := getenv("REDIS_URL"); url != "" {
		cfg.RedisURL = url
	}
	if port, err := strconv.Atoi(getenv("PORT")); err == nil && port > 0 {
		cfg.Port = port
	}
}

// parseConfig builds the configuration from args and the environment.
func parseConfig(args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet("ninja-slice-server", flag.ContinueOnError)
	port := fs.Int("port", 8080, "HTTP server port")
	staticDir := fs.String("static", ".", "Directory to serve static files from")
	redisURL := fs.String("redis", "", "Redis URL (redis://host:port/db)")
	configPath := fs.String("config", "", "Config file path (defaults to the XDG config home)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	logFile := fs.String("log-file", "", "Log file path (defaults to stdout)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	path := *configPath
	if path == "" {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return nil, err
		}
	}
	if err := loadConfigFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg, getenv)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "static":
			cfg.StaticDir = *staticDir
		case "redis":
			cfg.RedisURL = *redisURL
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		}
	})
	return cfg, nil
}
