package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendLocal = "local"
	BackendGRPC  = "grpc"
)

type Config struct {
	Port             string        `yaml:"port"`
	GinMode          string        `yaml:"gin_mode"`
	ModelPath        string        `yaml:"model_path"`
	ModelWatch       bool          `yaml:"model_watch"`
	PredictorBackend string        `yaml:"predictor_backend"`
	GRPCHost         string        `yaml:"grpc_host"`
	GRPCListenAddr   string        `yaml:"grpc_listen_addr"`
	PredictTimeout   time.Duration `yaml:"predict_timeout"`
	CurrencySymbol   string        `yaml:"currency_symbol"`

	Database DatabaseConfig `yaml:"database"`

	JWTSecret          string   `yaml:"jwt_secret"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	RateLimitRPS       float64  `yaml:"rate_limit_rps"`
	RateLimitBurst     int      `yaml:"rate_limit_burst"`

	LogLevel       string `yaml:"log_level"`
	TracingEnabled bool   `yaml:"tracing_enabled"`
}

type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func Default() *Config {
	return &Config{
		Port:             "8081",
		GinMode:          "release",
		ModelPath:        "artifacts/house_price_rf_pipeline.json",
		PredictorBackend: BackendLocal,
		GRPCHost:         "localhost:50051",
		PredictTimeout:   10 * time.Second,
		CurrencySymbol:   "₹",
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "root",
			Name:     "house_prices",
			SSLMode:  "disable",
		},
		CORSAllowedOrigins: []string{"*"},
		RateLimitRPS:       20,
		RateLimitBurst:     40,
		LogLevel:           "info",
	}
}

// Load builds the configuration from defaults, then the optional YAML file
// at path, then the environment (including a .env file if present).
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.ModelPath = getEnv("MODEL_PATH", c.ModelPath)
	c.ModelWatch = getEnvBool("MODEL_WATCH", c.ModelWatch)
	c.PredictorBackend = getEnv("PREDICTOR_BACKEND", c.PredictorBackend)
	c.GRPCHost = getEnv("GRPC_HOST", c.GRPCHost)
	c.GRPCListenAddr = getEnv("GRPC_LISTEN_ADDR", c.GRPCListenAddr)
	c.PredictTimeout = getEnvDuration("PREDICT_TIMEOUT", c.PredictTimeout)
	c.CurrencySymbol = getEnv("CURRENCY_SYMBOL", c.CurrencySymbol)

	c.Database.Enabled = getEnvBool("DB_ENABLED", c.Database.Enabled)
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnvInt("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSL_MODE", c.Database.SSLMode)

	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.CORSAllowedOrigins = splitList(origins)
	}
	c.RateLimitRPS = getEnvFloat("RATE_LIMIT_RPS", c.RateLimitRPS)
	c.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", c.RateLimitBurst)

	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.TracingEnabled = getEnvBool("TRACING_ENABLED", c.TracingEnabled)
}

func (c *Config) Validate() error {
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unknown GIN_MODE %q", c.GinMode)
	}

	switch c.PredictorBackend {
	case BackendLocal:
		if c.ModelPath == "" {
			return errors.New("MODEL_PATH is required for the local predictor")
		}
	case BackendGRPC:
		if c.GRPCHost == "" {
			return errors.New("GRPC_HOST is required for the grpc predictor")
		}
	default:
		return fmt.Errorf("unknown predictor backend %q", c.PredictorBackend)
	}
	if c.PredictTimeout <= 0 {
		return errors.New("PREDICT_TIMEOUT must be positive")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return errors.New("rate limit settings must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
