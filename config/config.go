package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/fssim/internal/util"
	"gopkg.in/yaml.v3"
)

// Verbosity levels as accepted on the command line and in config files.
// 1 is the quietest, 5 the most verbose.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// TreeStyle selects how the `tree` command renders the directory structure
type TreeStyle string

const (
	// TreeStyleIndent prints "Folder: x" / "File: y" lines indented by depth
	TreeStyleIndent TreeStyle = "indent"
	// TreeStyleGtree prints a box-drawing tree
	TreeStyleGtree TreeStyle = "gtree"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// Warn keeps routine debug chatter out of the interactive session
	DefaultLogLvl = util.WarnLevel

	DefaultRootName    = "Root"
	DefaultPrompt      = "$ "
	DefaultTreeStyle   = TreeStyleIndent
	DefaultIndentWidth = 3
	DefaultBanner      = true
)

// Config contains runtime configuration values for the simulator shell.
type Config struct {
	LogLvl      util.LogLevel // Internal log level (Default warn)
	RootName    string        // Name of the root folder (Default "Root")
	Prompt      string        // Suffix printed after the current path (Default "$ ")
	TreeStyle   TreeStyle     // Renderer used by the tree command (Default indent)
	IndentWidth int           // Spaces per depth level for the indent tree style (Default 3)
	Banner      bool          // Print the banner and command help on startup (Default true)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
//
// LogLvl is a verbosity between [ErrorVerbose] and [TraceVerbose], not a [util.LogLevel].
type ConfigOverride struct {
	LogLvl      *int       `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	RootName    *string    `yaml:"root_name,omitempty" json:"root_name,omitempty"`
	Prompt      *string    `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	TreeStyle   *TreeStyle `yaml:"tree_style,omitempty" json:"tree_style,omitempty"`
	IndentWidth *int       `yaml:"indent_width,omitempty" json:"indent_width,omitempty"`
	Banner      *bool      `yaml:"banner,omitempty" json:"banner,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:      DefaultLogLvl,
		RootName:    DefaultRootName,
		Prompt:      DefaultPrompt,
		TreeStyle:   DefaultTreeStyle,
		IndentWidth: DefaultIndentWidth,
		Banner:      DefaultBanner,
	}
}

// NewConfig creates a Config from defaults with any non-nil override values applied.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.RootName != nil {
		c.RootName = *override.RootName
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.TreeStyle != nil {
		c.TreeStyle = *override.TreeStyle
	}
	if override.IndentWidth != nil {
		c.IndentWidth = *override.IndentWidth
	}
	if override.Banner != nil {
		c.Banner = *override.Banner
	}
}

// Validate reports the first field that cannot be used as is.
func (c *Config) Validate() error {
	if c.RootName == "" || strings.ContainsAny(c.RootName, `/\`) {
		return fmt.Errorf("invalid root_name %q: must be non-empty without path separators", c.RootName)
	}
	switch c.TreeStyle {
	case TreeStyleIndent, TreeStyleGtree:
	default:
		return fmt.Errorf("unknown tree_style %q", c.TreeStyle)
	}
	if c.IndentWidth < 0 {
		return fmt.Errorf("indent_width must not be negative: %d", c.IndentWidth)
	}
	return nil
}

// VerboseToLogLevel maps a verbosity between 1 (error) and 5 (trace) to a
// [util.LogLevel]. Out of range values are clamped.
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = max(ErrorVerbose, min(verbose, TraceVerbose))
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
