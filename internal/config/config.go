// ABOUTME: Configuration for the htp CLI and MCP server, loaded with viper
// ABOUTME: Merges defaults, an optional JSON file, HTP_* environment and bound flags

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores htp configuration.
type Config struct {
	// Timezone is an IANA zone name, "Local" or "UTC". Reference times are
	// taken in this zone.
	Timezone string `mapstructure:"timezone" json:"timezone"`

	// RollForward moves a bare time of day that already passed today to tomorrow.
	RollForward bool `mapstructure:"roll_forward" json:"roll_forward"`

	// Format is a layout name (see Layouts), "unix", or a Go time layout.
	Format string `mapstructure:"format" json:"format"`

	// Source is the config file the values were read from, empty if none.
	Source string `mapstructure:"-" json:"-"`
}

// Layouts maps the named output formats accepted in Format.
var Layouts = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"rfc1123":     time.RFC1123,
	"rfc822":      time.RFC822,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"date":        time.DateOnly,
	"long":        DateFormatLong,
}

// GetConfigPath returns the default config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, AppName, "config.json")
}

// New returns a viper instance with htp defaults and environment bindings.
// Callers may bind command flags to it before calling LoadFrom.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("timezone", DefaultTimezone)
	v.SetDefault("roll_forward", false)
	v.SetDefault("format", DefaultFormat)
	return v
}

// LoadFrom reads configuration into v from path, or the default path when
// empty. A missing default file is not an error; a missing explicit one is.
func LoadFrom(v *viper.Viper, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = GetConfigPath()
	}
	v.SetConfigFile(path)

	source := path
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing || explicit {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		source = ""
	}

	cfg, err := Decode(v)
	if err != nil {
		return nil, err
	}
	cfg.Source = source
	return cfg, nil
}

// Decode builds a Config from whatever v holds, without reading a file.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves Timezone, treating an empty value as Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// GetFormat returns the Go layout for Format, defaulting to RFC3339.
// It returns "" for "unix", which FormatTime renders as epoch seconds.
func (c *Config) GetFormat() string {
	name := strings.ToLower(c.Format)
	if name == "" {
		return time.RFC3339
	}
	if name == FormatUnix {
		return ""
	}
	if layout, ok := Layouts[name]; ok {
		return layout
	}
	return c.Format
}

// FormatTime renders t using the configured format.
func (c *Config) FormatTime(t time.Time) string {
	layout := c.GetFormat()
	if layout == "" {
		return strconv.FormatInt(t.Unix(), 10)
	}
	return t.Format(layout)
}

// Save writes the configuration as JSON to path, creating parent directories.
// It refuses to overwrite an existing file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerms); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("timezone", c.Timezone)
	v.Set("roll_forward", c.RollForward)
	v.Set("format", c.Format)
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
