package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level deskwatch configuration.
type Config struct {
	DataDir         string            `mapstructure:"data_dir"`
	Years           Years             `mapstructure:"years"`
	CacheTTLSeconds int               `mapstructure:"cache_ttl_seconds"`
	Files           map[string]string `mapstructure:"files"`
	Output          Output            `mapstructure:"output"`
}

// Years selects the reporting year pair for year-over-year views.
type Years struct {
	Previous int `mapstructure:"previous"`
	Current  int `mapstructure:"current"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("years.previous", DefaultPreviousYear)
	v.SetDefault("years.current", DefaultCurrentYear)
	v.SetDefault("cache_ttl_seconds", DefaultCacheTTLSeconds)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Configured files override defaults per logical name; datasets not
	// mentioned in the config keep their default file names.
	files := make(map[string]string, len(DefaultFiles))
	for name, file := range DefaultFiles {
		files[name] = file
	}
	for name, file := range cfg.Files {
		files[name] = file
	}
	cfg.Files = files

	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
