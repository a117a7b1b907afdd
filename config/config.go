package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	OutputJSON = "json"
	OutputText = "text"
)

type Config struct {
	Output  string `json:"output"  yaml:"output"`
	Workers int    `json:"workers" yaml:"workers"`
}

func (cfg *Config) validate() error {
	if cfg.Output != OutputJSON && cfg.Output != OutputText {
		return fmt.Errorf("output must be %q or %q, got %q", OutputJSON, OutputText, cfg.Output)
	}

	if cfg.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	return nil
}

func Default() *Config {
	return &Config{
		Output:  OutputText,
		Workers: 4,
	}
}

func FromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if nil != err {
		return nil, fmt.Errorf("failed to read config file %q: %v", filePath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); nil != err {
		return nil, fmt.Errorf("failed to unmarshal config file %q: %v", filePath, err)
	}

	if err := cfg.validate(); nil != err {
		return nil, fmt.Errorf("validation failed: %v", err)
	}

	return &cfg, nil
}

func FromString(data string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(data), &cfg); nil != err {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := cfg.validate(); nil != err {
		return nil, fmt.Errorf("validation failed: %v", err)
	}

	return &cfg, nil
}
