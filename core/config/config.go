package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Cache struct {
		Capacity int `envconfig:"LRU_CAPACITY" default:"2"`
	}
	Store struct {
		Path string `envconfig:"LRU_STORE_PATH" default:"./lru-sessions"`
	}
	Log struct {
		Level string `envconfig:"LRU_LOG_LEVEL" default:"info"`
	}
}

func GetConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
