package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	corroadmin "github.com/joeblew999/corrosion"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig.
const EnvPrefix = "CORRO_ADMIN_"

// Defaults applied before any file, environment or flag source.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "info"
	DefaultOutput   = "json"
)

// configFileNames are looked up in the working directory when no
// explicit config file is given.
var configFileNames = []string{"corrosion-admin.yaml", "corrosion-admin.yml"}

// Config is the resolved CLI configuration.
type Config struct {
	// AdminPath is the admin socket path, or any endpoint string accepted
	// by corroadmin.ParseEndpoint.
	AdminPath string `koanf:"admin_path"`

	// AdminPort selects a loopback TCP endpoint. Takes precedence over AdminPath.
	AdminPort int `koanf:"admin_port"`

	// Timeout bounds each command. Zero disables the deadline.
	Timeout time.Duration `koanf:"timeout"`

	LogLevel string `koanf:"log_level"`
	Output   string `koanf:"output"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// findConfigFile returns the explicit path, or the first default config
// file present in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// envKey maps CORRO_ADMIN_PATH to admin_path and CORRO_ADMIN_PORT to
// admin_port. Other suffixes are lowercased.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

	switch key {
	case "path", "port":
		return "admin_" + key
	default:
		return key
	}
}

// LoadConfig loads configuration from defaults, file, environment
// variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"admin_path": "",
		"admin_port": 0,
		"timeout":    DefaultTimeout,
		"log_level":  DefaultLogLevel,
		"output":     DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those set explicitly
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if used != "" {
		if abs, err := filepath.Abs(used); err == nil {
			used = abs
		}
	}

	cfg.File = used

	return &cfg, nil
}

// Endpoint resolves the admin endpoint: AdminPort first, then AdminPath,
// then the platform default.
func (c *Config) Endpoint() (corroadmin.Endpoint, error) {
	switch {
	case c.AdminPort != 0:
		if c.AdminPort < 1 || c.AdminPort > 65535 {
			return nil, fmt.Errorf("admin port %d out of range", c.AdminPort)
		}

		return corroadmin.LoopbackTCP{Port: uint16(c.AdminPort)}, nil
	case c.AdminPath != "":
		return corroadmin.ParseEndpoint(c.AdminPath)
	default:
		return corroadmin.DefaultEndpoint(), nil
	}
}
