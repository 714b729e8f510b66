package config

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"district_cooling_calc/internal/logger"
)

const (
	defaultLogLevel    = "info"
	defaultRegion      = "ch"
	defaultDatabaseDir = "data"
)

// Config is the plant-level configuration of the calculation.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Region      string `yaml:"region"`
	DatabaseDir string `yaml:"database_dir"`
	Technology  string `yaml:"technology"`
	DemandFile  string `yaml:"demand_file"`
}

func defConfig() *Config {
	return &Config{
		LogLevel:    defaultLogLevel,
		Region:      defaultRegion,
		DatabaseDir: defaultDatabaseDir,
	}
}

func (cfg *Config) FillDefaults() {
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	if cfg.DatabaseDir == "" {
		cfg.DatabaseDir = defaultDatabaseDir
	}
}

/*
Get the configuration, optionally overridden by a YAML file.

There is deliberately no default for Technology: the cost database may list
its technology codes in any order, so the code has to be stated explicitly
in the config file or on the command line.
*/
func Get(configFile string) (*Config, error) {
	cfg := defConfig()

	if configFile != "" {
		if err := readFile(cfg, configFile); err != nil {
			return nil, err
		}
		logger.L().Infof("Using config file `%v`", configFile)
	}

	cfg.FillDefaults()

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("wrong log level `%v`: %w", cfg.LogLevel, err)
	}
	logger.SetLogLevel(level)

	return cfg, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

func readFile(cfg *Config, configFileName string) error {
	if !fileExists(configFileName) {
		return fmt.Errorf("config file `%s` does not exist", configFileName)
	}

	f, err := os.Open(configFileName)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	return nil
}
