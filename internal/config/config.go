// Package config loads application settings from an optional TOML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Submit SubmitConfig
	UI     UIConfig
}

// SubmitConfig tunes the simulated signup endpoint.
type SubmitConfig struct {
	DelayMS        int    `mapstructure:"delay_ms"`
	Seed           int64  `mapstructure:"seed"` // 0 = time-seeded
	FailureMessage string `mapstructure:"failure_message"`
}

// Delay returns the simulated round-trip time.
func (c SubmitConfig) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DebugLog string `mapstructure:"debug_log"` // empty = no debug log
}

// Load reads configuration from file and env. Env var overrides use
// prefix SIGNUPFORM_. The config file is optional; defaults stand alone.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("submit.delay_ms", 1500)
	v.SetDefault("submit.seed", 0)
	v.SetDefault("submit.failure_message", "Submission failed. Please try again.")
	v.SetDefault("ui.debug_log", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SIGNUPFORM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "signupform"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIGNUPFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Submit.DelayMS < 0 {
		return Config{}, fmt.Errorf("submit.delay_ms must be >= 0, got %d", c.Submit.DelayMS)
	}
	if strings.TrimSpace(c.Submit.FailureMessage) == "" {
		return Config{}, fmt.Errorf("submit.failure_message must not be empty")
	}
	return c, nil
}
