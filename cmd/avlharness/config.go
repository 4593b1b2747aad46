package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".avlharness"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for harness settings.
const envPrefix = "AVLHARNESS"

// Defaults.
const (
	DefaultSeed        = 1
	DefaultStressOps   = 100000
	DefaultStressRange = 10000
	DefaultCheckEvery  = 1
	DefaultBuckets     = 15
	DefaultStrings     = 100000
	DefaultStringLen   = 25
)

// Config of the harness. Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Seed    int64         `mapstructure:"seed"`
	Verbose bool          `mapstructure:"verbose"`
	Stress  StressConfig  `mapstructure:"stress"`
	HashSet HashSetConfig `mapstructure:"hashset"`
}

// StressConfig drives the random insert/remove run.
type StressConfig struct {
	Ops        int `mapstructure:"ops"`
	KeyRange   int `mapstructure:"key_range"`
	CheckEvery int `mapstructure:"check_every"`
}

// HashSetConfig drives the hash set population run.
type HashSetConfig struct {
	Buckets   uint `mapstructure:"buckets"`
	Strings   int  `mapstructure:"strings"`
	StringLen int  `mapstructure:"string_len"`
}

// Sentinel validation errors.
var (
	ErrNonPositiveOps   = errors.New("stress.ops must be positive")
	ErrNonPositiveRange = errors.New("stress.key_range must be positive")
	ErrNegativeCheck    = errors.New("stress.check_every must not be negative")
	ErrZeroBuckets      = errors.New("hashset.buckets must be positive")
	ErrNonPositiveLen   = errors.New("hashset.string_len must be positive")
)

// Validate the values that can't be used as they are.
func (c *Config) Validate() error {
	switch {
	case c.Stress.Ops <= 0:
		return ErrNonPositiveOps
	case c.Stress.KeyRange <= 0:
		return ErrNonPositiveRange
	case c.Stress.CheckEvery < 0:
		return ErrNegativeCheck
	case c.HashSet.Buckets == 0:
		return ErrZeroBuckets
	case c.HashSet.StringLen <= 0:
		return ErrNonPositiveLen
	}
	return nil
}

// LoadConfig loads configuration from defaults, file, env vars and the flags bound to v.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := v.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("verbose", false)

	v.SetDefault("stress.ops", DefaultStressOps)
	v.SetDefault("stress.key_range", DefaultStressRange)
	v.SetDefault("stress.check_every", DefaultCheckEvery)

	v.SetDefault("hashset.buckets", DefaultBuckets)
	v.SetDefault("hashset.strings", DefaultStrings)
	v.SetDefault("hashset.string_len", DefaultStringLen)
}
