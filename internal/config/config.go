package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mj1618/rx2uitest/internal/convert"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no config file is given.
const DefaultFile = "rx2uitest.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RX2UITEST_"

// Config holds conversion settings. Layers are applied in order: defaults,
// YAML file, .env and environment, command-line flags.
type Config struct {
	Output          string `yaml:"output"`
	Log             string `yaml:"log"`
	LogLevel        string `yaml:"log_level"`
	Namespace       string `yaml:"namespace"`
	BaseFixture     string `yaml:"base_fixture"`
	Platform        string `yaml:"platform"`
	AppPath         string `yaml:"app_path"`
	TargetFramework string `yaml:"target_framework"`
	NUnitVersion    string `yaml:"nunit_version"`
	UITestVersion   string `yaml:"uitest_version"`
	Scaffold        bool   `yaml:"scaffold"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:          "XamarinTests",
		LogLevel:        "info",
		Namespace:       convert.DefaultNamespace,
		BaseFixture:     convert.DefaultBaseFixture,
		Platform:        convert.PlatformAndroid,
		TargetFramework: convert.DefaultTargetFramework,
		NUnitVersion:    convert.DefaultNUnitVersion,
		UITestVersion:   convert.DefaultUITestVersion,
		Scaffold:        true,
	}
}

// LogPath returns the conversion log location: the configured path, or
// conversion_log.txt inside the output directory.
func (c Config) LogPath() string {
	if c.Log != "" {
		return c.Log
	}
	return filepath.Join(c.Output, "conversion_log.txt")
}

// ConvertOptions returns the class-level options for generated tests.
func (c Config) ConvertOptions() convert.Options {
	return convert.Options{Namespace: c.Namespace, BaseFixture: c.BaseFixture}
}

// ScaffoldOptions returns the options for the base fixture and project file.
func (c Config) ScaffoldOptions() convert.ScaffoldOptions {
	return convert.ScaffoldOptions{
		Namespace:       c.Namespace,
		BaseFixture:     c.BaseFixture,
		Platform:        c.Platform,
		AppPath:         c.AppPath,
		TargetFramework: c.TargetFramework,
		NUnitVersion:    c.NUnitVersion,
		UITestVersion:   c.UITestVersion,
	}
}

// LoadFile applies the YAML file at path over the defaults. Keys missing
// from the file keep their default values.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load builds the configuration from defaults, the YAML file (path, or
// DefaultFile when path is empty and the file exists), a .env file in the
// working directory, and RX2UITEST_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return cfg, err
		}
	}

	// A missing .env is normal; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from RX2UITEST_* variables looked up via getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	strs := map[string]*string{
		"OUTPUT":           &c.Output,
		"LOG":              &c.Log,
		"LOG_LEVEL":        &c.LogLevel,
		"NAMESPACE":        &c.Namespace,
		"BASE_FIXTURE":     &c.BaseFixture,
		"PLATFORM":         &c.Platform,
		"APP_PATH":         &c.AppPath,
		"TARGET_FRAMEWORK": &c.TargetFramework,
		"NUNIT_VERSION":    &c.NUnitVersion,
		"UITEST_VERSION":   &c.UITestVersion,
	}
	for key, field := range strs {
		if v := getenv(EnvPrefix + key); v != "" {
			*field = v
		}
	}
	if v := getenv(EnvPrefix + "SCAFFOLD"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSCAFFOLD: %w", EnvPrefix, err)
		}
		c.Scaffold = b
	}
	return nil
}
