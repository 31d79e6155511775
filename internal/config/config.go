package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ietsi/tablero/internal/domain/status"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server     ServerConfig    `yaml:"server"`
	Transport  TransportConfig `yaml:"transport"`
	Data       DataConfig      `yaml:"data"`
	Log        LogConfig       `yaml:"log"`
	Classifier status.RuleSet  `yaml:"classifier"`
	Kanban     KanbanConfig    `yaml:"kanban"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// TransportConfig selects how the MCP surface is exposed: "http" mounts it
// on the dashboard server, "stdio" runs it over stdin/stdout.
type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// DataConfig locates the export and names its field layout. The layout is
// versioned configuration because different export generations shifted the
// columns (see project.LayoutByVersion).
type DataConfig struct {
	Path   string `yaml:"path"`
	Layout string `yaml:"layout"`
}

// KanbanConfig selects the board grouping strategy and color rules.
type KanbanConfig struct {
	Strategy string             `yaml:"strategy"`
	Colors   []status.ColorRule `yaml:"colors"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Data: DataConfig{
			Path:   "data.txt",
			Layout: "v1",
		},
		Log: LogConfig{
			Level: "info",
		},
		Classifier: status.DefaultRuleSet(),
		Kanban: KanbanConfig{
			Strategy: string(status.StrategyExact),
			Colors:   status.DefaultColorRules(),
		},
	}

	if path := os.Getenv("TABLERO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("TABLERO_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("TABLERO_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TABLERO_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("TABLERO_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if dataPath := os.Getenv("TABLERO_DATA_PATH"); dataPath != "" {
		cfg.Data.Path = dataPath
	}
	if layout := os.Getenv("TABLERO_DATA_LAYOUT"); layout != "" {
		cfg.Data.Layout = layout
	}
	if strategy := os.Getenv("TABLERO_KANBAN_STRATEGY"); strategy != "" {
		cfg.Kanban.Strategy = strategy
	}
	if level := os.Getenv("TABLERO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
