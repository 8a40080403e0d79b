package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Backends soportados para el store clave-valor del dispositivo.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendFirebase = "firebase"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Firebase FirebaseConfig `mapstructure:"firebase"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StoreConfig struct {
	Backend string        `mapstructure:"backend"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// FirebaseConfig apunta a la API REST de la base en tiempo real del dispositivo.
type FirebaseConfig struct {
	DatabaseURL string `mapstructure:"database_url"`
	AuthToken   string `mapstructure:"auth_token"`
}

// PostgresConfig es opcional: si DSN viene, perfiles/comidas/meta viven en Postgres.
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// ListenAddr devuelve ":port" para el http.Server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

// Validate revisa combinaciones inválidas antes de arrancar.
func (c Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http.port: %d", c.HTTP.Port)
	}
	if c.Store.Timeout <= 0 {
		return errors.New("store.timeout must be positive")
	}

	switch strings.ToLower(strings.TrimSpace(c.Store.Backend)) {
	case BackendMemory:
	case BackendRedis:
		if strings.TrimSpace(c.Redis.Address) == "" {
			return errors.New("redis.address is required for redis backend")
		}
	case BackendFirebase:
		if strings.TrimSpace(c.Firebase.DatabaseURL) == "" {
			return errors.New("firebase.database_url is required for firebase backend")
		}
	default:
		return fmt.Errorf("unknown store.backend: %q", c.Store.Backend)
	}
	return nil
}
