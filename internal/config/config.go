package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database" validate:"required"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	API      APIConfig      `yaml:"api" validate:"required"`
	Extract  ExtractConfig  `yaml:"extract"`
	LogLevel string         `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required,min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname" validate:"required"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	Enabled    bool   `yaml:"enabled"`
	URL        string `yaml:"url" validate:"required_if=Enabled true"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type APIConfig struct {
	BaseURL  string        `yaml:"base_url" validate:"required,url"`
	PageSize int           `yaml:"page_size" validate:"omitempty,min=1"`
	Timeout  time.Duration `yaml:"timeout"`
	Retry    RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts" validate:"omitempty,min=1"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type ExtractConfig struct {
	// MaxPages caps pages per run; 0 means run until the API reports no
	// more pages.
	MaxPages int           `yaml:"max_pages" validate:"omitempty,min=0"`
	Interval time.Duration `yaml:"interval"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "mercado_fetcher"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "changes"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "dashboard_changes"
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = 50
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.API.Retry.MaxAttempts == 0 {
		c.API.Retry.MaxAttempts = 3
	}
	if c.API.Retry.InitialBackoff == 0 {
		c.API.Retry.InitialBackoff = 1 * time.Second
	}
	if c.API.Retry.MaxBackoff == 0 {
		c.API.Retry.MaxBackoff = 30 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
