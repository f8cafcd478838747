package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Config struct {
	DatabaseURL  string
	DatabaseName string

	JWTSecret string
	JWTTTL    time.Duration

	Environment string
	Version     string
	ServerPort  string
	LogLevel    string
	CORSOrigins []string

	RedisURL string
	CacheTTL time.Duration

	CheckEmailDomain bool
	ExposeErrors     bool
}

func Load() *Config {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file, using environment")
	}

	env := getEnv("APP_ENV", EnvDevelopment)

	return &Config{
		DatabaseURL:  getEnv("MONGODB_URI", getEnv("DATABASE_URL", "mongodb://localhost:27017/ubereats")),
		DatabaseName: getEnv("MONGODB_DATABASE", ""),

		JWTSecret: getEnv("JWT_SECRET", "your_jwt_secret_key"),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 7*24)) * time.Hour,

		Environment: env,
		Version:     getEnv("APP_VERSION", "1.0.0"),
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnvList("CORS_ORIGINS"),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,

		CheckEmailDomain: getEnvBool("CHECK_EMAIL_DOMAIN", false),
		ExposeErrors:     getEnvBool("EXPOSE_ERRORS", env != EnvProduction),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
