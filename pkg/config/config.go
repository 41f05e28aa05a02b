package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory, its parents and $HOME.
const FileName = ".dumphals.yaml"

// Config represents the configuration for dumphals
type Config struct {
	// Locations of the external tools
	Tools struct {
		HidlGen       string `yaml:"hidlGen"`
		AnalyzeMatrix string `yaml:"analyzeMatrix"`
	} `yaml:"tools"`

	// Package roots passed to hidl-gen, e.g. android.hardware:hardware/interfaces
	PackageRoots []string `yaml:"packageRoots"`

	// Compatibility matrices to read when none are given on the command line
	CompatibilityMatrices []string `yaml:"compatibilityMatrices"`

	// Output configuration
	Output struct {
		Format string `yaml:"format"` // json, text
		Pretty bool   `yaml:"pretty"`
	} `yaml:"output"`

	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Output.Format = "json"
	return config
}

// LoadConfig loads the configuration from the specified file path.
// If no path is provided, it searches from dir upwards and then in the home directory.
func LoadConfig(configPath, dir string) (*Config, error) {
	if configPath != "" {
		path, err := homedir.Expand(configPath)
		if err != nil {
			return nil, fmt.Errorf("error resolving config path: %w", err)
		}
		return readConfig(path)
	}
	return FindAndLoadConfig(dir)
}

// FindAndLoadConfig searches for a config file in dir and its parents,
// falling back to the home directory.
func FindAndLoadConfig(dir string) (*Config, error) {
	currentDir := dir
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return readConfig(configPath)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	home, err := homedir.Dir()
	if err != nil {
		// No home directory, nothing else to look at
		return DefaultConfig(), nil
	}
	configPath := filepath.Join(home, FileName)
	if _, err := os.Stat(configPath); err == nil {
		return readConfig(configPath)
	}

	return DefaultConfig(), nil
}

func readConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Validate checks values that cannot be checked by the YAML decoder.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want json or text)", c.Output.Format)
	}
}

// ExpandPath resolves a leading ~ in path to the home directory.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}
