package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyUsername is the LeetCode username; env LEETCODE_USERNAME.
	KeyUsername = "username"
	// KeyReadme is the path to the README to rewrite; env LEETCODE_README.
	KeyReadme = "readme"
)

// DefaultReadme is used when neither the config file nor the environment
// names a target file.
const DefaultReadme = "README.md"

// Dir returns the path to the config directory (~/.leetstats/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.leetstats/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Username returns the configured LeetCode username, or "" when unset.
func Username() string {
	return Get(KeyUsername)
}

// ReadmePath returns the configured README path, falling back to DefaultReadme.
func ReadmePath() string {
	if p := Get(KeyReadme); p != "" {
		return p
	}
	return DefaultReadme
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
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
