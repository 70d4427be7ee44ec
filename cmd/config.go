package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"logistics/internal/pkg/errs"
)

type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	JWTSecret    string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	RedisChannel string
	LogLevel     string
}

// LoadConfig reads the configuration through getenv, applying defaults for
// optional settings. Redis is disabled when REDIS_ADDR is empty.
func LoadConfig(getenv func(string) string) (Config, error) {
	value := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:     value("HTTP_PORT", "8080"),
		DBHost:       value("DB_HOST", "localhost"),
		DBPort:       value("DB_PORT", "5432"),
		DBUser:       value("DB_USER", "postgres"),
		DBPassword:   getenv("DB_PASSWORD"),
		DBName:       value("DB_NAME", "transit"),
		DBSslMode:    value("DB_SSLMODE", "disable"),
		JWTSecret:    getenv("JWT_SECRET"),
		RedisAddr:    value("REDIS_ADDR", ""),
		RedisPass:    getenv("REDIS_PASSWORD"),
		RedisChannel: value("REDIS_CHANNEL", ""),
		LogLevel:     value("LOG_LEVEL", "info"),
	}

	redisDB, dbErr := strconv.Atoi(value("REDIS_DB", "0"))
	if dbErr != nil {
		dbErr = errs.NewValueIsInvalidErrorWithCause("REDIS_DB", dbErr)
	}
	config.RedisDB = redisDB

	if err := errors.Join(dbErr, config.Validate()); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var secretErr, portErr, levelErr error
	if strings.TrimSpace(c.JWTSecret) == "" {
		secretErr = errs.NewValueIsRequiredError("JWT_SECRET")
	}
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		portErr = errs.NewValueIsOutOfRangeError("HTTP_PORT", c.HTTPPort, 1, 65535)
	}
	if _, err := c.SlogLevel(); err != nil {
		levelErr = err
	}
	return errors.Join(secretErr, portErr, levelErr)
}

// DSN is the connection string for the configured database.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// MaintenanceDSN points at the postgres maintenance database, used to create DBName.
func (c Config) MaintenanceDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(dbName string) string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSslMode)
}

// RedisEnabled reports whether transit events should be published.
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
