package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Backend BackendConfig
	Listing ListingConfig
	Logger  LoggerConfig
}

// BackendConfig 商品后台服务配置（后端不归本系统管理）
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ListingConfig 商品列表页配置
type ListingConfig struct {
	DefaultPage int
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// Load 加载配置（.env 可选，环境变量优先）
func Load() *Config {
	// .env 不存在时静默忽略，线上直接读环境变量
	_ = godotenv.Load()

	return &Config{
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "https://raw-node-js.onrender.com"),
			Timeout: getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		},
		Listing: ListingConfig{
			DefaultPage: getEnvInt("LISTING_DEFAULT_PAGE", 1),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
