package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Game   GameConfig   `mapstructure:"game"`
	Debug  bool         `mapstructure:"debug"`
}

type ServerConfig struct {
	HTTPAddress string `mapstructure:"http_address"`
	MetricsPath string `mapstructure:"metrics_path"`
	Namespace   string `mapstructure:"namespace"`
}

type GameConfig struct {
	Player1    string `mapstructure:"player1"`
	Player2    string `mapstructure:"player2"`
	MaxVessels int    `mapstructure:"max_vessels"`
}

//LoadConfig reads config.yaml from path. A missing file is not an error, the defaults
//are used instead. Every key can be overridden from the environment with the PLANES
//prefix, e.g. PLANES_GAME_MAX_VESSELS.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.http_address", ":8080")
	v.SetDefault("server.metrics_path", "/metrics")
	v.SetDefault("server.namespace", "planes")
	v.SetDefault("game.player1", "Player1")
	v.SetDefault("game.player2", "Player2")
	v.SetDefault("game.max_vessels", 3)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("planes")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.Game.MaxVessels <= 0 {
		return nil, errors.New("game.max_vessels must be positive")
	}
	return &config, nil
}
