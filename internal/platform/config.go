package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// GraphEnv names the environment variable that overrides the configured graph.
const GraphEnv = "LOGSEQ_GRAPH_PATH"

// DefaultWatchPattern is the glob watched when none is configured.
const DefaultWatchPattern = "pages/**/*.md"

// Config is the persistent CLI configuration.
type Config struct {
	Graph              string `yaml:"graph"`
	RemoveEmptyBullets bool   `yaml:"remove_empty_bullets"`
	CreateDirs         bool   `yaml:"create_dirs"`
	WatchPattern       string `yaml:"watch_pattern"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{WatchPattern: DefaultWatchPattern}
}

// ConfigPath returns the path of the config file.
// Can be overridden for testing.
var ConfigPath = func() string {
	return filepath.Join(xdg.ConfigHome, "lsd", "config.yaml")
}

// LoadConfig reads the config file, falling back to DefaultConfig when it
// does not exist.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(ConfigPath())
}

// LoadConfigFile reads the config at path.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.WatchPattern == "" {
		cfg.WatchPattern = DefaultWatchPattern
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.Graph, err = ExpandPath(cfg.Graph)
	if err != nil {
		return nil, fmt.Errorf("failed to expand graph: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !doublestar.ValidatePattern(c.WatchPattern) {
		return fmt.Errorf("invalid watch_pattern %q", c.WatchPattern)
	}
	return nil
}

// Options converts the config into service options.
func (c *Config) Options() []Option {
	return []Option{
		WithRemoveEmptyBullets(c.RemoveEmptyBullets),
		WithCreateDirs(c.CreateDirs),
	}
}

// ResolveGraph picks the graph root: flag, then $LOGSEQ_GRAPH_PATH, then the
// config file, then upward discovery from cwd.
func ResolveGraph(flag string, cfg *Config, cwd string) (string, error) {
	for _, candidate := range []string{flag, os.Getenv(GraphEnv), cfg.Graph} {
		if candidate != "" {
			return ExpandPath(candidate)
		}
	}
	return FindRoot(cwd)
}

// ExpandPath expands a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return filepath.Abs(path)
}
