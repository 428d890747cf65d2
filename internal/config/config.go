package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Search struct {
		DefaultLocation string `yaml:"default_location"`
	} `yaml:"search"`

	JSearch struct {
		Endpoint          string  `yaml:"endpoint"`
		Host              string  `yaml:"host"`
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"jsearch"`

	Cache struct {
		TTLMinutes   int `yaml:"ttl_minutes"`
		PruneMinutes int `yaml:"prune_minutes"`
	} `yaml:"cache"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) JSearchTimeout() time.Duration {
	if c.JSearch.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.JSearch.TimeoutSeconds) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	if c.Cache.TTLMinutes <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}
