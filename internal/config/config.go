package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address       string        `env:"RUN_ADDRESS"          envDefault:"localhost:8080"`
	DataDir       string        `env:"DATA_DIR"             envDefault:"./data"`
	LogLvl        string        `env:"LOG_LVL"              envDefault:"info"`
	LapseInterval time.Duration `env:"LAPSE_CHECK_INTERVAL" envDefault:"1m"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the flat-file tables")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.DurationVar(&cfg.LapseInterval, "i", cfg.LapseInterval, "policy lapse check interval")
	flag.Parse()

	return cfg
}
