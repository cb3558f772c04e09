package repository

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func NewConfigRepository(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetDefault("database_path", "sirt.db")

	viper.SetEnvPrefix("sirt")
	viper.AutomaticEnv()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The config file is optional; defaults and env cover a bare setup.
	if _, err := os.Stat(path); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	var c Config
	err := viper.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config error: %w", err)
	}
	valid := validator.New()
	if err = valid.Struct(c); err != nil {
		return nil, fmt.Errorf("validate config error: %w", err)
	}

	return &c, nil
}

type Config struct {
	DatabasePath            string      `mapstructure:"database_path" validate:"required"`
	AnnouncementChannelList []string    `mapstructure:"announcement_channels"`
	Slack                   SlackConfig `mapstructure:"slack"`
}

type SlackConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func (c *Config) AnnouncementChannels(_ context.Context) []string {
	return c.AnnouncementChannelList
}
