package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	AppURL                 string   `validate:"required"`
	DatabaseDriver         string   `validate:"required,oneof=sqlite postgres"`
	DatabaseDSN            string   `validate:"required"`
	DBLogLevel             string   `validate:"required,oneof=silent error warn info"`
	RateLimit              int      `validate:"gt=0"`
	RedisAddr              string   `validate:"omitempty,hostname_port"`
	RedisRateLimitPrefix   string   `validate:"required"`
	DueSoonDays            int      `validate:"gt=0"`
	ShutdownTimeoutSeconds int      `validate:"gt=0"`
	CORSOrigins            []string `validate:"min=1"`
}

// NewViper returns a viper instance reading the process environment with
// the service defaults applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_HOST", "127.0.0.1")
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "tasks.db")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 100)
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_RATE_LIMIT_PREFIX", "rate_limit")
	v.SetDefault("DUE_SOON_DAYS", 7)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 20)
	v.SetDefault("CORS_ORIGINS", "*")

	return v
}

func Load(v *viper.Viper) (Config, error) {
	var redisAddr string
	if host := v.GetString("REDIS_HOST"); host != "" {
		redisAddr = fmt.Sprintf("%s:%s", host, v.GetString("REDIS_PORT"))
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", v.GetString("APP_HOST"), v.GetString("APP_PORT")),
		DatabaseDriver:         strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:            v.GetString("DATABASE_DSN"),
		DBLogLevel:             strings.ToLower(v.GetString("DB_LOG_LEVEL")),
		RateLimit:              v.GetInt("RATE_LIMIT_PER_MINUTE"),
		RedisAddr:              redisAddr,
		RedisRateLimitPrefix:   v.GetString("REDIS_RATE_LIMIT_PREFIX"),
		DueSoonDays:            v.GetInt("DUE_SOON_DAYS"),
		ShutdownTimeoutSeconds: v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
		CORSOrigins:            splitList(v.GetString("CORS_ORIGINS")),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
