package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every configuration failure. It is fatal before the watcher starts.
var ErrInvalidConfig = errors.New("invalid configuration")

const DefaultPracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// AppConfig holds all configuration for the application.
// It is built once at startup and not modified afterwards.
type AppConfig struct {
	PracticumToken    string        `env:"PRACTICUM_TOKEN,required,notEmpty"`
	TelegramToken     string        `env:"TELEGRAM_TOKEN,required,notEmpty"`
	TelegramChatID    int64         `env:"TELEGRAM_CHAT_ID,required,notEmpty"`
	PracticumEndpoint string        `env:"PRACTICUM_ENDPOINT"`
	RetrySchedule     string        `env:"RETRY_SCHEDULE" envDefault:"@every 10m"` // fixed delay between cycles
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	Environment       string        `env:"ENVIRONMENT" envDefault:"development"`
	LogFile           string        `env:"LOG_FILE" envDefault:"program.log"`
	VerdictsFile      string        `env:"STATUS_VERDICTS_FILE"`
	DatabaseURL       string        `env:"DATABASE_URL"` // optional, enables the status-event journal
	CommandsEnabled   bool          `env:"TELEGRAM_COMMANDS_ENABLED" envDefault:"false"`

	// Verdicts holds the overrides read from VerdictsFile, if any.
	Verdicts map[string]string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist; existing variables are not overridden.
	_ = godotenv.Load()

	return FromEnvironment(environMap(os.Environ()))
}

// FromEnvironment builds the configuration from the given variables.
func FromEnvironment(environment map[string]string) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = DefaultPracticumEndpoint
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)
	if cfg.LogFile == "-" {
		cfg.LogFile = "" // stdout only
	}

	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("%w: HTTP_TIMEOUT must be positive, got %s", ErrInvalidConfig, cfg.HTTPTimeout)
	}

	if cfg.VerdictsFile != "" {
		verdicts, err := LoadVerdicts(cfg.VerdictsFile)
		if err != nil {
			return nil, fmt.Errorf("%w: STATUS_VERDICTS_FILE: %v", ErrInvalidConfig, err)
		}
		cfg.Verdicts = verdicts
	}

	return cfg, nil
}

func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
