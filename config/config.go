package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	MSSQL    MSSQLConfig
	Cache    CacheConfig
	Redis    RedisConfig
	WorkTech WorkTechConfig
}

type ServerConfig struct {
	AppEnv string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type MSSQLConfig struct {
	Host            string
	Port            string
	Instance        string
	User            string
	Password        string
	Database        string
	Encrypt         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type CacheConfig struct {
	Backend    string // memory or redis
	TTLSeconds int
	Size       int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type WorkTechConfig struct {
	// UserID is recorded on stock transaction batches when no user is supplied.
	UserID string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		MSSQL: MSSQLConfig{
			Host:            getEnv("MSSQL_HOST", "localhost"),
			Port:            getEnv("MSSQL_PORT", "1433"),
			Instance:        getEnv("MSSQL_INSTANCE", ""),
			User:            getEnv("MSSQL_USER", "worktech"),
			Password:        getEnv("MSSQL_PASSWORD", ""),
			Database:        getEnv("MSSQL_DATABASE", "WorkTech"),
			Encrypt:         getEnv("MSSQL_ENCRYPT", "disable"),
			MaxOpenConns:    getEnvInt("MSSQL_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("MSSQL_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("MSSQL_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("MSSQL_CONN_MAX_IDLE_TIME", 60),
		},
		Cache: CacheConfig{
			Backend:    getEnv("CACHE_BACKEND", "memory"),
			TTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 10),
			Size:       getEnvInt("CACHE_SIZE", 1000),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		WorkTech: WorkTechConfig{
			UserID: getEnv("WORKTECH_USER_ID", "worktech-api"),
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
