package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the bot needs at startup
type Config struct {
	// DiscordToken is the bot token, required
	DiscordToken string `mapstructure:"discord_token"`

	// ApplicationID is the Discord application ID for command registration
	ApplicationID string `mapstructure:"application_id"`

	// GuildID restricts command registration to one guild during development
	GuildID string `mapstructure:"guild_id"`

	// LogLevel is a zerolog level name (debug, info, warn, error)
	LogLevel string `mapstructure:"log_level"`

	// RandSeed pins the randomness source, 0 means seed from the clock
	RandSeed int64 `mapstructure:"rand_seed"`
}

// Load reads configuration from EXPOSED_-prefixed environment variables
// with sensible defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EXPOSED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("discord_token", "")
	v.SetDefault("application_id", "")
	v.SetDefault("guild_id", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("rand_seed", 0)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("EXPOSED_DISCORD_TOKEN is required")
	}

	return &cfg, nil
}
