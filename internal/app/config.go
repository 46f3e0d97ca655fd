package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full runtime configuration, sourced from the environment.
type Config struct {
	Env       string `envconfig:"ENV" default:"dev"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// Port is the HTTP listen port.
	Port int `envconfig:"PORT" default:"8080"`

	// DatabaseFile is the path to the SQLite database. The file and its
	// schema are created on first start.
	DatabaseFile string `envconfig:"CRM_DATABASE_FILE" default:"crm.db"`

	// MaxBodyBytes caps POST/PATCH request bodies. Overflow is a 413.
	MaxBodyBytes int64 `envconfig:"CRM_MAX_BODY_BYTES" default:"1048576"`

	// ShutdownGracePeriod bounds how long outstanding requests get to
	// finish once a shutdown signal arrives.
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
