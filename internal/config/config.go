package config

import (
	"os"

	"highcard/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the high card game
type Config struct {
	loaded bool
	// Rounds is the number of rounds to play
	Rounds int `yaml:"rounds" envconfig:"rounds"`
	// Quiet suppresses the per-draw and per-round messages
	Quiet bool `yaml:"quiet" envconfig:"quiet"`
	Log   struct {
		Level string `yaml:"level" envconfig:"log_level"`
	} `yaml:"log"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// The config file is optional: if it does not exist, defaults plus HC_*
// environment variables are used.
func Load() error {
	config = Config{
		Rounds: 1,
	}

	configFile := util.Getenv("HC_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("hc", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
