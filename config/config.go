package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		Port     string `yaml:"port"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	LLM struct {
		APIKey         string `yaml:"api_key"`
		BaseURL        string `yaml:"base_url"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"llm"`
	Auth struct {
		Secret  string `yaml:"secret"`
		ExpHour int    `yaml:"exp_hour"`
	} `yaml:"auth"`
	Cache struct {
		Path string `yaml:"path"`
	} `yaml:"cache"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

// DSN generates the PostgreSQL DSN from database config
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.Port,
		c.Database.SSLMode,
	)
}

// LLMTimeout returns the gateway deadline, defaulting to 30s when unset.
func (c *Config) LLMTimeout() time.Duration {
	if c.LLM.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.LLM.TimeoutSeconds) * time.Second
}

// LoadConfig reads and parses the YAML configuration file
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	required := []struct {
		value string
		name  string
	}{
		{c.Database.Host, "database.host"},
		{c.Database.User, "database.user"},
		{c.Database.Password, "database.password"},
		{c.Database.DBName, "database.dbname"},
		{c.Database.Port, "database.port"},
		{c.Database.SSLMode, "database.sslmode"},
		{c.LLM.APIKey, "llm.api_key"},
		{c.LLM.BaseURL, "llm.base_url"},
		{c.LLM.Model, "llm.model"},
		{c.Auth.Secret, "auth.secret"},
		{c.Cache.Path, "cache.path"},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required in config", r.name)
		}
	}
	if c.Auth.ExpHour <= 0 {
		return fmt.Errorf("auth.exp_hour must be positive")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	return nil
}
