package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/exa-atow/ontogen/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the ontogen configuration using Viper.
//
// The result is cached; call Reset to force a re-read (tests).
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &cfg
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path, bypassing the
// working-directory lookup and the cache.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &cfg, nil
}

// GetViper returns the shared Viper instance for advanced access.
func GetViper() *viper.Viper {
	return initViper()
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("default_lang", DefaultLang)
	v.SetDefault("base_uri", DefaultBaseURI)
	v.SetDefault("files_dir", DefaultFiles)
	v.SetDefault("format", DefaultFormat)
}

// initViper initializes Viper with configuration sources and defaults.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("ONTOGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// The config file is optional; defaults carry the tool without one.
	if _, err := os.Stat(ConfigFileName); err == nil {
		v.SetConfigFile(ConfigFileName)
		v.SetConfigType("yaml")
		_ = v.ReadInConfig()
	}

	viperInstance = v
	return v
}
