package config

import (
    "errors"
    "fmt"
    "strings"

    "github.com/spf13/viper"

    "irisapi/internal/classifier"
)

// AppConfig is the configuration of the framework deployment. The serverless
// deployment reads environment variables instead.
type AppConfig struct {
    Logger LoggerConfig `mapstructure:"logger"`
    Server ServerConfig `mapstructure:"server"`
    Model  ModelConfig  `mapstructure:"model"`
}

type LoggerConfig struct {
    // Level — log level: debug, info, warn, warning, error.
    Level string `mapstructure:"level"`
    // File — optional log file; when set, output is rotated and teed with stdout.
    File string `mapstructure:"file"`
}

type ServerConfig struct {
    // Address — address and port the server listens on (e.g. ":8080").
    Address string `mapstructure:"address"`
}

type ModelConfig struct {
    // Path — path to the gob model artifact, relative to the deployment root.
    Path string `mapstructure:"path"`
    // Algo — artifact kind: dt, rf, bagging.
    Algo string `mapstructure:"algo"`
}

func (c *AppConfig) Validate() error {
    if err := c.Logger.Validate(); err != nil {
        return err
    }
    if err := c.Server.Validate(); err != nil {
        return err
    }
    return c.Model.Validate()
}

func (l *LoggerConfig) Validate() error {
    if l.Level == "" {
        return nil
    }
    valid := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
    if !valid[strings.ToLower(l.Level)] {
        return fmt.Errorf("logger.level: unsupported level '%s'", l.Level)
    }
    return nil
}

func (s *ServerConfig) Validate() error {
    if s.Address == "" {
        return errors.New("server.address: must be specified")
    }
    return nil
}

func (m *ModelConfig) Validate() error {
    if m.Path == "" {
        return errors.New("model.path: must be specified")
    }
    switch m.Algo {
    case classifier.AlgoDecisionTree, classifier.AlgoRandomForest, classifier.AlgoBagging:
        return nil
    default:
        return fmt.Errorf("model.algo: unsupported algo '%s'", m.Algo)
    }
}

// Load reads the YAML configuration at configPath. Environment variables
// override file values.
func Load(configPath string) (*AppConfig, error) {
    v := viper.New()
    v.SetConfigFile(configPath)
    v.SetConfigType("yaml")
    v.AutomaticEnv()

    v.SetDefault("server.address", ":8080")
    v.SetDefault("model.path", "models/iris_dt.gob")
    v.SetDefault("model.algo", classifier.AlgoDecisionTree)
    v.SetDefault("logger.level", "info")

    if err := v.ReadInConfig(); err != nil {
        return nil, fmt.Errorf("error reading config file: %w", err)
    }

    var config AppConfig
    if err := v.Unmarshal(&config); err != nil {
        return nil, fmt.Errorf("error unmarshaling config: %w", err)
    }
    if err := config.Validate(); err != nil {
        return nil, fmt.Errorf("invalid config: %w", err)
    }
    return &config, nil
}
