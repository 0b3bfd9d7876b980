package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/netbeansifier/netbeansify/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Dir returns the path to the settings directory (~/.netbeansify/).
// NETBEANSIFY_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the settings file (~/.netbeansify/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the settings file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a settings value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a settings key-value pair and saves the settings file.
// Only option names known to the generator are accepted.
func Set(key, value string) error {
	if !IsOption(key) {
		return fmt.Errorf("unknown option %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// UserLayer returns the layer built from user settings. Load must be called
// first. Only keys that are actually set (in the file or the environment)
// are included, so unset settings never shadow built-in defaults.
func UserLayer() Layer {
	layer := newLayer("user settings")
	for _, opt := range valueOptions {
		if !viper.IsSet(opt.name) {
			continue
		}
		layer.set(opt, viper.GetString(opt.name))
	}
	for _, f := range flagOptions {
		if viper.IsSet(string(f.flag)) && viper.GetBool(string(f.flag)) {
			layer.Flags[f.flag] = true
		}
	}
	return layer
}
