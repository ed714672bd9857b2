// file: config/config.go

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port         string        `mapstructure:"port" validate:"required,numeric"`
		ReadTimeout  time.Duration `mapstructure:"read_timeout"`
		WriteTimeout time.Duration `mapstructure:"write_timeout"`
	} `mapstructure:"server"`
	Auth struct {
		Salt       string `mapstructure:"salt" validate:"required"`
		AdminLogin string `mapstructure:"admin_login" validate:"required"`
		AdminSalt  string `mapstructure:"admin_salt" validate:"required"`
	} `mapstructure:"auth"`
	Log struct {
		Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
		Format string `mapstructure:"format" validate:"oneof=json text"`
	} `mapstructure:"log"`
	Store struct {
		Backend string        `mapstructure:"backend" validate:"oneof=redis postgres"`
		Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
		Retries int           `mapstructure:"retries" validate:"gte=0,lte=10"`
		Backoff time.Duration `mapstructure:"backoff" validate:"gte=0"`
	} `mapstructure:"store"`
	Redis struct {
		Host     string `mapstructure:"host" validate:"required"`
		Port     string `mapstructure:"port" validate:"required"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db" validate:"gte=0"`
	} `mapstructure:"redis"`
	Database struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("auth.salt", "Otus")
	v.SetDefault("auth.admin_login", "admin")
	v.SetDefault("auth.admin_salt", "42")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.backend", "redis")
	v.SetDefault("store.timeout", 3*time.Second)
	v.SetDefault("store.retries", 3)
	v.SetDefault("store.backoff", 100*time.Millisecond)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
}

// Load reads config.yml from path into v, applies SCORING_* environment
// overrides and validates the result. A missing file is not an error.
// Every key needs a default, otherwise Unmarshal does not see its
// environment variable.
func Load(v *viper.Viper, path string) (Config, error) {
	var cfg Config

	setDefaults(v)
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("scoring")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if cfg.Store.Backend == "postgres" {
		if err := validate.Var(cfg.Database.Name, "required"); err != nil {
			return cfg, fmt.Errorf("database.name is required for the postgres store: %w", err)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
