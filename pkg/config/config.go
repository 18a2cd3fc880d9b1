// Package config provides the configuration of the streaming demo scenarios.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultRegion is the region the demo functions are deployed to.
	DefaultRegion = "us-east-1"
	// DefaultPrefix is the name prefix the SAM template gives every demo function.
	DefaultPrefix = "lambda-streaming-sdk-sam-"
	// DefaultPageSize is the number of functions requested per ListFunctions page.
	DefaultPageSize = 50
	// MaxPageSize is the largest page Lambda accepts for ListFunctions.
	MaxPageSize = 50
)

// Scenario is one demo run: a function name suffix and the title printed before it.
type Scenario struct {
	// Name is appended to the prefix to find the function, eg: `HappyPath`.
	Name string `yaml:"name"`
	// Title is printed before the scenario runs.
	Title string `yaml:"title"`
	// Payload is the optional json event the function is invoked with.
	Payload string `yaml:"payload"`
}

// Config represents a streaming demo config.
type Config struct {
	// Region is the AWS region of the demo functions.
	Region string `yaml:"region"`
	// Profile is the optional shared config profile.
	Profile string `yaml:"profile"`
	// Prefix is the function name prefix every scenario name is appended to.
	Prefix string `yaml:"prefix"`
	// PageSize is the ListFunctions page size.
	PageSize int `yaml:"page_size"`
	// Scenarios run in order.
	Scenarios []Scenario `yaml:"scenarios"`
}

// Default returns the config of the three demo functions of the SAM template.
func Default() Config {
	return Config{
		Region:   DefaultRegion,
		Prefix:   DefaultPrefix,
		PageSize: DefaultPageSize,
		Scenarios: []Scenario{
			{Name: "HappyPath", Title: "Happy path streaming example"},
			{Name: "MidstreamError", Title: "Midstream error example"},
			{Name: "Timeout", Title: "Timeout example"},
		},
	}
}

// ErrConfigExt represents the extension of config file is incorrect.
var ErrConfigExt = errors.New(`lambda-stream: the extension of config is incorrect, it should be ".yaml|.yml"`)

// ParseConfigFile parses the config from configPath,
// fields left empty in the file take the values of Default.
func ParseConfigFile(configPath string) (Config, error) {
	if ext := filepath.Ext(configPath); ext != ".yaml" && ext != ".yml" {
		return Config{}, ErrConfigExt
	}

	buf, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, err
	}

	return Parse(buf)
}

// Parse parses a yaml document into a validated Config.
func Parse(buf []byte) (Config, error) {
	conf := Default()
	conf.Scenarios = nil

	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return conf, fmt.Errorf("config: %w", err)
	}
	if len(conf.Scenarios) == 0 {
		conf.Scenarios = Default().Scenarios
	}

	if err := Validate(&conf); err != nil {
		return conf, err
	}

	return conf, nil
}

// Validate checks conf and fills the titles of scenarios without one.
func Validate(conf *Config) error {
	if conf.Region == "" {
		return errors.New("config: the region is required")
	}
	if conf.Prefix == "" {
		return errors.New("config: the prefix is required")
	}
	if conf.PageSize <= 0 || conf.PageSize > MaxPageSize {
		return fmt.Errorf("config: the page_size must be between 1 and %d", MaxPageSize)
	}
	if len(conf.Scenarios) == 0 {
		return errors.New("config: the scenarios cannot be an empty")
	}

	seen := make(map[string]struct{}, len(conf.Scenarios))
	for i, s := range conf.Scenarios {
		if s.Name == "" {
			return errors.New("config: the scenarios must have the name field")
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("config: duplicate scenario name: %s", s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.Title == "" {
			conf.Scenarios[i].Title = s.Name + " example"
		}
	}

	return nil
}

// Select returns the scenarios named by names, in the order of names.
// Names without a configured scenario get an untitled one.
func (c Config) Select(names ...string) []Scenario {
	if len(names) == 0 {
		return c.Scenarios
	}

	result := make([]Scenario, 0, len(names))
	for _, name := range names {
		s := Scenario{Name: name, Title: name + " example"}
		for _, cs := range c.Scenarios {
			if cs.Name == name {
				s = cs
				break
			}
		}
		result = append(result, s)
	}
	return result
}
