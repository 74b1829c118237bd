package config

import (
	"os"

	"chatpoker-holdem/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hold'em tables
type Config struct {
	loaded bool
	Holdem struct {
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		StartingStack int `yaml:"startingStack" envconfig:"starting_stack"`
	}
	TurnTimeoutSeconds int `yaml:"turnTimeoutSeconds" envconfig:"turn_timeout_seconds"`
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

// Load will load the configuration
// Missing config files are not an error; the defaults and the environment
// still apply.
func Load() error {
	config = defaultConfig()

	configFile := util.Getenv("CP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cp", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaultConfig() Config {
	var c Config
	c.Holdem.SmallBlind = 100
	c.Holdem.StartingStack = 10000
	c.TurnTimeoutSeconds = 60

	return c
}
