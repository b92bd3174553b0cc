// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds lazyserver's runtime configuration. The core lazy engine
// itself takes no configuration — only this demo server does, the way
// kbukum-gokit's config loader scopes configuration to the service
// binary, not the libraries it imports.
type Config struct {
	Port         string `mapstructure:"port"`
	LogLevel     string `mapstructure:"log_level"`
	JWTSecret    string `mapstructure:"jwt_secret"`
	OTelEndpoint string `mapstructure:"otel_endpoint"`
	OTelInsecure bool   `mapstructure:"otel_insecure"`
	ServiceName  string `mapstructure:"service_name"`
}

func defaultConfig() Config {
	return Config{
		Port:         "8080",
		LogLevel:     "info",
		JWTSecret:    "development-only-secret",
		OTelEndpoint: "localhost:4318",
		OTelInsecure: true,
		ServiceName:  "lazyserver",
	}
}

// loadConfig reads a .env file if present, then layers environment
// variables over the defaults via viper — the same .env-then-env-then-
// defaults precedence kbukum-gokit's loader uses, scaled down to a single
// flat struct since lazyserver has no per-component config tree.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return cfg, fmt.Errorf("lazyserver: loading .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("LAZYSERVER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", cfg.Port)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("jwt_secret", cfg.JWTSecret)
	v.SetDefault("otel_endpoint", cfg.OTelEndpoint)
	v.SetDefault("otel_insecure", cfg.OTelInsecure)
	v.SetDefault("service_name", cfg.ServiceName)

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("lazyserver: unmarshaling config: %w", err)
	}
	return cfg, nil
}
