// Package config loads server configuration from the environment with an
// optional YAML file underneath. Environment variables win over the file so
// deployments can override a checked-in config.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string `yaml:"addr"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	JWTSigningKey string `yaml:"jwt_signing_key"`
}

// Load builds a Server config. When MEDCALC_CONFIG names a YAML file it is
// read first, then environment variables override individual fields.
func Load() (Server, error) {
	cfg := Server{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "json",
	}

	if path := os.Getenv("MEDCALC_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Server{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Server{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	overrideFromEnv(&cfg.Addr, "MEDCALC_ADDR")
	overrideFromEnv(&cfg.LogLevel, "MEDCALC_LOG_LEVEL")
	overrideFromEnv(&cfg.LogFormat, "MEDCALC_LOG_FORMAT")
	overrideFromEnv(&cfg.JWTSigningKey, "MEDCALC_JWT_SIGNING_KEY")

	return cfg, nil
}

// AuthEnabled reports whether bearer token authentication should be enforced.
// An empty signing key runs the service open, the usual mode for internal
// deployments behind a gateway.
func (s Server) AuthEnabled() bool { return s.JWTSigningKey != "" }

func overrideFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
