// Package config loads rcube settings from defaults, an optional YAML
// config file, RCUBE_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "RCUBE"

	dbFileName    = "rcube.db"
	stateFileName = "state.json"

	// Config keys.
	KeyDBPath    = "db_path"
	KeyStatePath = "state_path"
	KeyVerbose   = "verbose"
)

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"db":      KeyDBPath,
	"verbose": KeyVerbose,
}

// Config holds resolved settings. Paths default to files in DefaultDir;
// they are empty only when no home directory can be found.
type Config struct {
	DBPath    string
	StatePath string
	Verbose   bool
	// File is the config file that was read, empty if none.
	File string
}

// DefaultDir returns the directory searched for config.yaml.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".rcube"), nil
}

// Load resolves the configuration. An explicit configFile must exist;
// otherwise config.yaml is looked up in dirs and a missing file is not
// an error. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet, dirs ...string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyStatePath, "")
	if dir, err := DefaultDir(); err == nil {
		v.SetDefault(KeyDBPath, filepath.Join(dir, dbFileName))
		v.SetDefault(KeyStatePath, filepath.Join(dir, stateFileName))
	}
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return &Config{
		DBPath:    v.GetString(KeyDBPath),
		StatePath: v.GetString(KeyStatePath),
		Verbose:   v.GetBool(KeyVerbose),
		File:      v.ConfigFileUsed(),
	}, nil
}
