package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.

type Config struct {
	World    WorldConfig    `yaml:"world"`
	Physics  PhysicsConfig  `yaml:"physics"`
	EventBus EventBusConfig `yaml:"eventbus"`
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
}

type WorldConfig struct {
	Seed     int64  `yaml:"seed"`
	DataPath string `yaml:"data_path"`
}

type PhysicsConfig struct {
	// FallingBlocksEnabled — глобальный выключатель подсистемы падающих
	// блоков. Значение по умолчанию true задается в Defaults.
	FallingBlocksEnabled *bool  `yaml:"falling_blocks_enabled"`
	BlockDefsPath        string `yaml:"block_defs_path"`
}

type EventBusConfig struct {
	URL       string `yaml:"url"`
	Stream    string `yaml:"stream"`
	Retention int    `yaml:"retention_hours"`
}

type StorageConfig struct {
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

type ServerConfig struct {
	RESTPort    int `yaml:"rest_port"`
	MetricsPort int `yaml:"metrics_port"`
}

// FallingEnabled возвращает флаг падающих блоков с умолчанием true
func (p *PhysicsConfig) FallingEnabled() bool {
	if p.FallingBlocksEnabled == nil {
		return true
	}
	return *p.FallingBlocksEnabled
}

// DefsPath возвращает путь к определениям блоков с умолчанием assets/blocks
func (p *PhysicsConfig) DefsPath() string {
	if p.BlockDefsPath == "" {
		return "assets/blocks"
	}
	return p.BlockDefsPath
}

// GetSeed возвращает сид мира с умолчанием
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	return 12345
}

// GetDataPath возвращает путь к данным мира с умолчанием
func (w *WorldConfig) GetDataPath() string {
	if w.DataPath == "" {
		return "data"
	}
	return w.DataPath
}

// GetRESTPort возвращает REST API порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "GAME_REST_PORT", 8088)
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "GAME_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV GAME_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
