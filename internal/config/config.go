package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
)

const (
	OutputLog  = "log"
	OutputJSON = "json"
)

// Config stores runtime configuration for the depth chart binary.
type Config struct {
	AppEnv       string `validate:"required,oneof=dev stage prod"`
	ServiceName  string `validate:"required,max=64"`
	TeamName     string `validate:"required,max=100"`
	LogFormat    string `validate:"required,oneof=json console"`
	OutputFormat string `validate:"required,oneof=log json"`
	LogLevel     logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormatDefault := logging.FormatJSON
	if appEnv == EnvDev {
		logFormatDefault = logging.FormatConsole
	}

	cfg := Config{
		AppEnv:       appEnv,
		ServiceName:  strings.TrimSpace(getEnv("SERVICE_NAME", "depth-chart")),
		TeamName:     strings.TrimSpace(getEnv("TEAM_NAME", "Tampa Bay Buccaneers")),
		LogFormat:    strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", logFormatDefault))),
		OutputFormat: strings.ToLower(strings.TrimSpace(getEnv("OUTPUT_FORMAT", OutputLog))),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
