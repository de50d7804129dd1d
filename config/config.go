package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/they4kman/gosweep/game"
)

const envPrefix = "GOSWEEP"

type Config struct {
	Addr     string `mapstructure:"addr"`
	MaxCells int    `mapstructure:"max-cells"`

	Difficulty string `mapstructure:"difficulty"`
	Rows       int    `mapstructure:"rows"`
	Cols       int    `mapstructure:"cols"`
	Mines      int    `mapstructure:"mines"`
	Seed       int64  `mapstructure:"seed"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// New returns a viper instance with defaults set, reading GOSWEEP_* env vars
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("max-cells", 10000)
	v.SetDefault("difficulty", game.Medium.String())
	v.SetDefault("rows", 0)
	v.SetDefault("cols", 0)
	v.SetDefault("mines", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional YAML file at path on top of v's flags, env and defaults
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}

func (cfg *Config) GameConfig(logger logrus.FieldLogger) (game.GameConfig, error) {
	difficulty, err := game.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return game.GameConfig{}, err
	}

	gameConfig := game.NewGameConfig()
	gameConfig.Difficulty = difficulty
	gameConfig.Rows = cfg.Rows
	gameConfig.Cols = cfg.Cols
	gameConfig.NumMines = cfg.Mines
	gameConfig.Seed = cfg.Seed
	gameConfig.Logger = logger
	return gameConfig, nil
}

func (cfg *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log-level")
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, errors.Errorf("unknown log-format %q", cfg.LogFormat)
	}
	return logger, nil
}
