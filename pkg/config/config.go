// Package config reads the paginate configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/sgaunet/paginator/pkg/paginator"
)

const (
	defaultPerPage          = 50
	defaultMaxPerPage       = 200
	defaultWindow           = 5
	defaultPerPageParameter = "per_page"
	defaultLogLevel         = "info"
)

// Config is the struct for the configuration
type Config struct {
	LogLevel   string     `yaml:"loglevel" validate:"oneof=debug info warn error"`
	Pagination Pagination `yaml:"pagination"`
}

// Pagination holds the request-parsing defaults used to build a Paginator.
type Pagination struct {
	PageParameter    string `yaml:"pageparameter" validate:"required"`
	PerPageParameter string `yaml:"perpageparameter" validate:"required,nefield=PageParameter"`
	DefaultPerPage   int    `yaml:"defaultperpage" validate:"min=1"`
	MaxPerPage       int    `yaml:"maxperpage" validate:"gtefield=DefaultPerPage"`
	Window           int    `yaml:"window" validate:"min=1"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	cfg.setDefaults()
	return cfg
}

// ReadYamlCnxFile reads a yaml file and returns a validated Config struct
func ReadYamlCnxFile(filename string) (Config, error) {
	var config Config

	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("error reading YAML file: %w", err)
	}

	err = yaml.Unmarshal(yamlFile, &config)
	if err != nil {
		return config, fmt.Errorf("error parsing YAML file: %w", err)
	}

	config.setDefaults()
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Pagination.PageParameter == "" {
		c.Pagination.PageParameter = paginator.DefaultPageParameter
	}
	if c.Pagination.PerPageParameter == "" {
		c.Pagination.PerPageParameter = defaultPerPageParameter
	}
	if c.Pagination.DefaultPerPage == 0 {
		c.Pagination.DefaultPerPage = defaultPerPage
	}
	if c.Pagination.MaxPerPage == 0 {
		c.Pagination.MaxPerPage = max(defaultMaxPerPage, c.Pagination.DefaultPerPage)
	}
	if c.Pagination.Window == 0 {
		c.Pagination.Window = defaultWindow
	}
}
