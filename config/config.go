package config

import (
	"errors"
	"io/fs"
	"net"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	Log          LogConfig
	Storage      StorageConfig
	DB           DBConfig
	Redis        RedisConfig
	DoctorSource DoctorSourceConfig
	Slot         SlotConfig
}

type AppConfig struct {
	Port string
	Env  string
	// AllowedOrigin is sent as Access-Control-Allow-Origin
	AllowedOrigin string
}

type LogConfig struct {
	Level string
}

// StorageConfig selects the appointment store. Driver is one of
// "redis", "postgres" or "memory".
type StorageConfig struct {
	Driver string
	Key    string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type DoctorSourceConfig struct {
	URL     string
	Timeout time.Duration
}

type SlotConfig struct {
	Duration  time.Duration
	CacheSize int
}

const (
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_DRIVER", StorageDriverRedis)
	v.SetDefault("STORAGE_KEY", "appointments")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DOCTOR_SOURCE_URL", "https://raw.githubusercontent.com/suyogshiftcare/jsontest/main/available.json")
	v.SetDefault("DOCTOR_SOURCE_TIMEOUT", "10s")
	v.SetDefault("SLOT_DURATION", "30m")
	v.SetDefault("SLOT_CACHE_SIZE", 256)
}

// LoadConfig reads .env from the working directory when present and lets
// environment variables override it.
func LoadConfig() (*Config, error) {
	return loadFrom(".env")
}

func loadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing .env is fine, env vars and defaults still apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	sourceTimeout, err := time.ParseDuration(v.GetString("DOCTOR_SOURCE_TIMEOUT"))
	if err != nil {
		sourceTimeout = 10 * time.Second
	}

	slotDuration, err := time.ParseDuration(v.GetString("SLOT_DURATION"))
	if err != nil || slotDuration <= 0 {
		slotDuration = 30 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Storage: StorageConfig{
			Driver: v.GetString("STORAGE_DRIVER"),
			Key:    v.GetString("STORAGE_KEY"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		DoctorSource: DoctorSourceConfig{
			URL:     v.GetString("DOCTOR_SOURCE_URL"),
			Timeout: sourceTimeout,
		},
		Slot: SlotConfig{
			Duration:  slotDuration,
			CacheSize: v.GetInt("SLOT_CACHE_SIZE"),
		},
	}

	return config, nil
}
