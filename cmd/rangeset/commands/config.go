package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".rangeset"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for rangeset settings.
const envPrefix = "RANGESET"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

const (
	defaultWindowLower = 0
	defaultWindowUpper = 100
	defaultListenAddr  = ":9110"
)

// Config holds the CLI's own defaults, loaded once per invocation. It has
// nothing to do with the ranges a command builds or queries; it only
// supplies fallbacks for flags the user left unset.
type Config struct {
	DefaultWindow WindowConfig `mapstructure:"default_window"`
	Serve         ServeConfig  `mapstructure:"serve"`
}

// WindowConfig is the fallback window used by query --span: each bound
// applies when its own --window-lower/--window-upper flag is not given.
type WindowConfig struct {
	Lower float64 `mapstructure:"lower"`
	Upper float64 `mapstructure:"upper"`
}

// ServeConfig configures the serve command's HTTP listener.
type ServeConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// LoadConfig loads the CLI config from file, environment variables, and
// defaults. If configPath is non-empty, it is used as the explicit config
// file path. Otherwise the config file is searched in CWD and $HOME. A
// missing config file is not an error; defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	if unmarshalErr := viperCfg.Unmarshal(&cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("default_window.lower", defaultWindowLower)
	viperCfg.SetDefault("default_window.upper", defaultWindowUpper)
	viperCfg.SetDefault("serve.listen_addr", defaultListenAddr)
}
