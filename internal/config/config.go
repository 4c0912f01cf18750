package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Logger  LoggerConfig
	Server  ServerConfig
	DB      DBConfig
	LLM     LLMConfig
	Scraper ScraperConfig
	Redis   RedisConfig
}

type LoggerConfig struct {
	Env   string
	Level string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  string
}

// DBConfig holds the storage connection string. An empty DSN means the
// embedded SQLite file store.
type DBConfig struct {
	DSN         string
	AutoMigrate bool
}

type LLMConfig struct {
	Provider      string
	APIKey        string
	Model         string
	ServerURL     string
	Temperature   float64
	JSONMode      bool
	StrictAnswers bool
	Timeout       time.Duration
}

type ScraperConfig struct {
	UserAgent string
	Timeout   time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	TTL      time.Duration
}

const (
	DefaultSQLiteDSN   = "file:quiz_history.db"
	DefaultUserAgent   = "WikiQuiz/1.0"
	DefaultTemperature = 0.5
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", "0s")
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.cors_origins", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("db.dsn", "")
	v.SetDefault("db.auto_migrate", true)

	v.SetDefault("llm.provider", "googleai")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.server_url", "")
	v.SetDefault("llm.temperature", DefaultTemperature)
	v.SetDefault("llm.json_mode", true)
	v.SetDefault("llm.strict_answers", true)
	v.SetDefault("llm.timeout", "0s")

	v.SetDefault("scraper.user_agent", DefaultUserAgent)
	v.SetDefault("scraper.timeout", "0s")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "24h")
}

// LoadConfig reads config.yaml when present and overlays APP_* environment
// variables (APP_DB_DSN, APP_LLM_API_KEY, ...). GEMINI_API_KEY, OPENAI_API_KEY
// and DATABASE_URL are honoured as fallbacks.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)

	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		default:
			cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			CORSOrigins:  v.GetString("server.cors_origins"),
		},
		DB: DBConfig{
			DSN:         v.GetString("db.dsn"),
			AutoMigrate: v.GetBool("db.auto_migrate"),
		},
		LLM: LLMConfig{
			Provider:      strings.ToLower(v.GetString("llm.provider")),
			APIKey:        v.GetString("llm.api_key"),
			Model:         v.GetString("llm.model"),
			ServerURL:     v.GetString("llm.server_url"),
			Temperature:   v.GetFloat64("llm.temperature"),
			JSONMode:      v.GetBool("llm.json_mode"),
			StrictAnswers: v.GetBool("llm.strict_answers"),
			Timeout:       v.GetDuration("llm.timeout"),
		},
		Scraper: ScraperConfig{
			UserAgent: v.GetString("scraper.user_agent"),
			Timeout:   v.GetDuration("scraper.timeout"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl"),
		},
	}
}

// Validate checks the settings the API server cannot run without. The migrate
// command only needs the storage settings and skips it.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "googleai", "openai":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for provider %q (set APP_LLM_API_KEY or GEMINI_API_KEY)", c.LLM.Provider)
		}
	case "ollama":
		if c.LLM.ServerURL == "" {
			return fmt.Errorf("llm.server_url is required for provider ollama")
		}
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	if c.LLM.Temperature <= 0 || c.LLM.Temperature >= 1 {
		return fmt.Errorf("llm.temperature must be strictly between 0 and 1, got %v", c.LLM.Temperature)
	}
	return nil
}

// GetDSN returns the storage connection string, falling back to the local
// SQLite file.
func (c *Config) GetDSN() string {
	if c.DB.DSN == "" {
		return DefaultSQLiteDSN
	}
	return c.DB.DSN
}

// RedisEnabled reports whether the detail cache should be wired.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Address != ""
}
