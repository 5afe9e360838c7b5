package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/balkashynov/zentime/internal/models"
	"github.com/balkashynov/zentime/internal/tips"
)

const (
	appName        = "zentime"
	configFileName = "config.yaml"
	localFileName  = "zentime.yaml"

	DefaultTheme       = "mocha"
	DefaultTipsModel   = tips.DefaultModel
	DefaultTipsTimeout = tips.DefaultTimeout
)

// Themes lists the accepted palette flavors
var Themes = []string{"latte", "frappe", "macchiato", "mocha"}

// Config is the effective startup configuration
type Config struct {
	Timer       models.Settings `yaml:"timer"`
	Muted       bool            `yaml:"muted"`
	Theme       string          `yaml:"theme"`
	Tips        TipsConfig      `yaml:"tips"`
	LogFile     string          `yaml:"log_file,omitempty"`
	MetricsAddr string          `yaml:"metrics_addr,omitempty"`

	// Path is the file the config was read from, empty when defaults are used
	Path string `yaml:"-"`
}

// TipsConfig controls the AI tip provider
type TipsConfig struct {
	Enabled bool          `yaml:"enabled"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
	APIKey  string        `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Timer: models.DefaultSettings(),
		Theme: DefaultTheme,
		Tips: TipsConfig{
			Enabled: true,
			Model:   DefaultTipsModel,
			Timeout: DefaultTipsTimeout,
		},
	}
}

// Load reads the config at path. An empty path searches the default
// locations; a missing file yields defaults, a missing explicit path is an error.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
		cfg.Path = path
	}

	cfg.Tips.APIKey = APIKeyFromEnv()
	cfg.normalize()
	return cfg, nil
}

// APIKeyFromEnv returns GEMINI_API_KEY, falling back to API_KEY
func APIKeyFromEnv() string {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv("API_KEY"))
}

// TipsAvailable reports whether the model provider can be used
func (c *Config) TipsAvailable() bool {
	return c.Tips.Enabled && c.Tips.APIKey != ""
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config yaml: %w", err)
	}
	return out, nil
}

// ValidTheme reports whether name is a known flavor
func ValidTheme(name string) bool {
	for _, theme := range Themes {
		if theme == name {
			return true
		}
	}
	return false
}

func (c *Config) normalize() {
	c.Timer = c.Timer.Clamped()
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if !ValidTheme(c.Theme) {
		c.Theme = DefaultTheme
	}
	if c.Tips.Model == "" {
		c.Tips.Model = DefaultTipsModel
	}
	if c.Tips.Timeout <= 0 {
		c.Tips.Timeout = DefaultTipsTimeout
	}
}

// candidatePaths returns the default search order
func candidatePaths() []string {
	paths := []string{localFileName}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appName, configFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, configFileName))
	}
	return paths
}

func findConfigFile() string {
	for _, path := range candidatePaths() {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
