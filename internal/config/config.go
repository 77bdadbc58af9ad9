package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Discord  *DiscordConfig  `mapstructure:"discord"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	Port               string `mapstructure:"port"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

type DiscordConfig struct {
	Token             string `mapstructure:"token"`
	CommandPrefix     string `mapstructure:"command_prefix"`
	AmmunitionChannel string `mapstructure:"ammunition_channel"`
	MedicalChannel    string `mapstructure:"medical_channel"`
	RadioChannel      string `mapstructure:"radio_channel"`
	PromptTimeoutSecs int    `mapstructure:"prompt_timeout_seconds"`
}

// Load reads the yaml config at the given path. Environment variables
// override file values, e.g. DISCORD_TOKEN overrides discord.token.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	if token := viper.GetString("DISCORD_TOKEN"); token != "" {
		conf.Discord.Token = token
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	viper.WatchConfig()

	return conf, nil
}
