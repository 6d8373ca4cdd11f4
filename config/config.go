package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/osforge/calago/core/modulesystem"
)

// Settings is the application-level configuration: where module trees and
// their configuration files live, and how the process behaves.
type Settings struct {
	// ModulesDir holds one subdirectory per module, each carrying a
	// module.desc file.
	ModulesDir string `json:"modules_dir"`
	// AppDataDir is the installed application data root.
	AppDataDir string `json:"app_data_dir"`
	// OverrideAppDataDir replaces AppDataDir entirely when set and becomes
	// the only location consulted for module configuration files.
	OverrideAppDataDir string `json:"override_app_data_dir"`
	// SystemConfigDir is the administrator override directory for module
	// configuration.
	SystemConfigDir string `json:"system_config_dir"`
	// Debug adds the source-checkout configuration search path.
	Debug bool `json:"debug"`

	Logging LoggingConfig `json:"logging"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
}

// Load reads the settings file at path, if any, applies CALAGO_-prefixed
// environment overrides and fills in defaults. An empty path means defaults
// plus environment only.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider("CALAGO_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "calago_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Settings
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EffectiveAppDataDir is the application data root after applying the
// override.
func (c *Settings) EffectiveAppDataDir() string {
	if c.OverrideAppDataDir != "" {
		return c.OverrideAppDataDir
	}
	return c.AppDataDir
}

// SetDefaults applies sane defaults.
func (c *Settings) SetDefaults() {
	if c.AppDataDir == "" {
		c.AppDataDir = "/usr/share/calago"
	}
	if c.SystemConfigDir == "" {
		c.SystemConfigDir = modulesystem.DefaultSystemConfigDir
	}
	if c.ModulesDir == "" {
		c.ModulesDir = filepath.Join(c.EffectiveAppDataDir(), "modules")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c Settings) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %s", c.Logging.Level)
	}
	if c.ModulesDir == "" {
		return fmt.Errorf("modules_dir is required")
	}
	return nil
}
