// Package config loads application settings from ~/.wellness/config.yaml.
// A missing config file is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigDir is the directory holding both the config file and,
	// by default, the data file.
	DefaultConfigDir = ".wellness"
	// DefaultDataFileName is the CSV backing file created on first write.
	DefaultDataFileName = "entries.csv"
	// DefaultExportFormat is used when `export --format` is not given.
	DefaultExportFormat = "md"

	// EnvDataFile overrides the data file location, mainly for scripting.
	EnvDataFile = "WELLNESS_DATA_FILE"
)

// Config is the root configuration.
type Config struct {
	// DataFile is the path of the CSV backing file.
	DataFile string `mapstructure:"data_file"`
	Export   Export `mapstructure:"export"`
}

// Export holds output defaults for the export command.
type Export struct {
	// Format is one of "json", "yaml", "md".
	Format string `mapstructure:"format"`
}

// Load reads ~/.wellness/config.yaml, falling back to defaults when the file
// does not exist. The WELLNESS_DATA_FILE environment variable takes
// precedence over both.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return LoadFromDir(filepath.Join(home, DefaultConfigDir))
}

// LoadFromDir reads config.yaml from the given directory.
func LoadFromDir(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("data_file", filepath.Join(dir, DefaultDataFileName))
	v.SetDefault("export.format", DefaultExportFormat)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config in %s: %w", dir, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config in %s: %w", dir, err)
	}

	// Fill zero-value fields so callers always get a usable Config even if
	// the user only partially fills in the file.
	if cfg.DataFile == "" {
		cfg.DataFile = filepath.Join(dir, DefaultDataFileName)
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = DefaultExportFormat
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		cfg.DataFile = env
	}
	return cfg, nil
}
