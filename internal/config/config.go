package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mintapp-labs/mintapp/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyNPMBin selects the package-manager executable used to fetch the
	// delegate package. Defaults to "npm".
	KeyNPMBin = "npm.bin"

	// KeyVerbose sets the default for the --verbose flag.
	KeyVerbose = "verbose"
)

// Dir returns the path to the launcher config directory (~/.mintapp/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.mintapp/config.yaml).
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
// A ~/.mintapp/.env file, when present, is overlaid into the process
// environment first. Registry auth tokens for npm typically live there,
// and the npm child process inherits them.
func Load() {
	// Existing environment wins over .env values.
	_ = godotenv.Load(filepath.Join(Dir(), ".env"))

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyNPMBin, "npm")
	viper.SetDefault(KeyVerbose, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// NPMBin returns the configured package-manager executable.
func NPMBin() string {
	return viper.GetString(KeyNPMBin)
}

// VerboseDefault returns the configured default for the --verbose flag.
func VerboseDefault() bool {
	return viper.GetBool(KeyVerbose)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
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
