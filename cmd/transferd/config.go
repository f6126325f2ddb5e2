package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/mongotxn/mongodb"
	"github.com/nikmy/mongotxn/pkg/environment"
	"github.com/nikmy/mongotxn/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	Listen      string          `yaml:"Listen"`
	Mongo       mongodb.Config  `yaml:"Mongo"`
}

func loadConfig() (*Config, error) {
	configPath := flag.String("config", "config.yaml", "path to config file")
	rawEnv := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()

	path, err := filepath.Abs(*configPath)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read config file")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if *rawEnv != "" {
		cfg.Environment = environment.FromString(*rawEnv)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}

	return &cfg, nil
}
