package config

import (
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"hermannm.dev/wrap"
)

type Config struct {
	BaseConfig
	Elasticsearch Elasticsearch
}

type BaseConfig struct {
	IsProduction bool `env:"PRODUCTION"`
}

type Elasticsearch struct {
	Address  string `env:"ELASTICSEARCH_ADDRESS"`
	Username string `env:"ELASTICSEARCH_USERNAME"`
	Password string `env:"ELASTICSEARCH_PASSWORD"`
	Debug    bool   `env:"ELASTICSEARCH_DEBUG_ENABLED"`
}

func ReadFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil {
		return Config{}, wrap.Error(err, "failed to load .env file")
	}

	parseOptions := env.Options{RequiredIfNoDef: true}

	var config Config

	if err := env.ParseWithOptions(&config.BaseConfig, parseOptions); err != nil {
		return Config{}, err
	}

	if err := env.ParseWithOptions(&config.Elasticsearch, parseOptions); err != nil {
		return Config{}, err
	}

	return config, nil
}
