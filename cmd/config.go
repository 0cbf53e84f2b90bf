package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"cafe/internal/adapters/out/sqlstore"
)

const (
	DefaultCustomerAddr          = "0.0.0.0:5555"
	DefaultStaffAddr             = "127.0.0.1:6000"
	DefaultDBPath                = "cafe_cursor.db"
	DefaultBacklogReportSchedule = "@every 1m"
)

type Config struct {
	CustomerAddr          string
	StaffAddr             string
	HTTPPort              string
	DBDriver              string
	DBPath                string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	MenuSeedFile          string
	BacklogReportSchedule string
	LogLevel              string
}

// Getenv looks up one configuration key.
type Getenv func(key string) (string, bool)

// LoadConfig reads every key through getenv and applies defaults.
// BACKLOG_REPORT_SCHEDULE set to an empty value disables the report.
func LoadConfig(getenv Getenv) Config {
	value := func(key, fallback string) string {
		if v, ok := getenv(key); ok && v != "" {
			return v
		}
		return fallback
	}

	schedule := DefaultBacklogReportSchedule
	if v, ok := getenv("BACKLOG_REPORT_SCHEDULE"); ok {
		schedule = strings.TrimSpace(v)
	}

	return Config{
		CustomerAddr:          value("CUSTOMER_ADDR", DefaultCustomerAddr),
		StaffAddr:             value("STAFF_ADDR", DefaultStaffAddr),
		HTTPPort:              value("HTTP_PORT", ""),
		DBDriver:              value("DB_DRIVER", sqlstore.DriverSQLite),
		DBPath:                value("DB_PATH", DefaultDBPath),
		DBHost:                value("DB_HOST", "localhost"),
		DBPort:                value("DB_PORT", "5432"),
		DBUser:                value("DB_USER", ""),
		DBPassword:            value("DB_PASSWORD", ""),
		DBName:                value("DB_NAME", ""),
		DBSslMode:             value("DB_SSLMODE", "disable"),
		MenuSeedFile:          value("MENU_SEED_FILE", ""),
		BacklogReportSchedule: schedule,
		LogLevel:              value("LOG_LEVEL", "info"),
	}
}

// DSN returns the data source for DBDriver: the file path for sqlite, a
// key/value connection string for postgres.
func (c Config) DSN() string {
	if c.DBDriver == sqlstore.DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
		)
	}
	return c.DBPath
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
