package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func requiredEnv() map[string]string {
	return map[string]string{
		"PRACTICUM_TOKEN":  "practicum",
		"TELEGRAM_TOKEN":   "telegram",
		"TELEGRAM_CHAT_ID": "-100123",
	}
}

func TestFromEnvironment_Defaults(t *testing.T) {
	cfg, err := FromEnvironment(requiredEnv())
	if err != nil {
		t.Fatalf("FromEnvironment() error = %v", err)
	}

	if cfg.PracticumToken != "practicum" || cfg.TelegramToken != "telegram" || cfg.TelegramChatID != -100123 {
		t.Errorf("required values = %+v", cfg)
	}
	if cfg.PracticumEndpoint != DefaultPracticumEndpoint {
		t.Errorf("PracticumEndpoint = %q, want default", cfg.PracticumEndpoint)
	}
	if cfg.RetrySchedule != "@every 10m" {
		t.Errorf("RetrySchedule = %q, want @every 10m", cfg.RetrySchedule)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %s, want 30s", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" || cfg.LogFile != "program.log" {
		t.Errorf("logging defaults = %q %q %q", cfg.LogLevel, cfg.Environment, cfg.LogFile)
	}
	if cfg.DatabaseURL != "" || cfg.CommandsEnabled || cfg.Verdicts != nil {
		t.Errorf("optional features should be off: %+v", cfg)
	}
}

func TestFromEnvironment_EmptyEndpointUsesDefault(t *testing.T) {
	env := requiredEnv()
	env["PRACTICUM_ENDPOINT"] = ""

	cfg, err := FromEnvironment(env)
	if err != nil {
		t.Fatalf("FromEnvironment() error = %v", err)
	}
	if cfg.PracticumEndpoint != DefaultPracticumEndpoint {
		t.Errorf("PracticumEndpoint = %q, want default", cfg.PracticumEndpoint)
	}
}

func TestFromEnvironment_Overrides(t *testing.T) {
	env := requiredEnv()
	env["PRACTICUM_ENDPOINT"] = "http://localhost:8080/statuses/"
	env["RETRY_SCHEDULE"] = "@every 1m"
	env["HTTP_TIMEOUT"] = "5s"
	env["LOG_LEVEL"] = "DEBUG"
	env["ENVIRONMENT"] = "Production"
	env["LOG_FILE"] = "-"
	env["DATABASE_URL"] = "postgres://localhost/homework?sslmode=disable"
	env["TELEGRAM_COMMANDS_ENABLED"] = "true"

	cfg, err := FromEnvironment(env)
	if err != nil {
		t.Fatalf("FromEnvironment() error = %v", err)
	}
	if cfg.PracticumEndpoint != "http://localhost:8080/statuses/" || cfg.RetrySchedule != "@every 1m" || cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("polling settings = %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.Environment != "production" {
		t.Errorf("LogLevel/Environment not normalized: %q %q", cfg.LogLevel, cfg.Environment)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty for \"-\"", cfg.LogFile)
	}
	if !cfg.CommandsEnabled || cfg.DatabaseURL == "" {
		t.Errorf("optional features = %+v", cfg)
	}
}

func TestFromEnvironment_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		drop    []string
		empty   []string
		missing []string
	}{
		{name: "practicum token", drop: []string{"PRACTICUM_TOKEN"}, missing: []string{"PRACTICUM_TOKEN"}},
		{name: "telegram token empty", empty: []string{"TELEGRAM_TOKEN"}, missing: []string{"TELEGRAM_TOKEN"}},
		{name: "chat id", drop: []string{"TELEGRAM_CHAT_ID"}, missing: []string{"TELEGRAM_CHAT_ID"}},
		{
			name:    "all",
			drop:    []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"},
			missing: []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := requiredEnv()
			for _, k := range tt.drop {
				delete(env, k)
			}
			for _, k := range tt.empty {
				env[k] = ""
			}

			cfg, err := FromEnvironment(env)
			if cfg != nil {
				t.Errorf("cfg = %+v, want nil", cfg)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error = %v, want ErrInvalidConfig", err)
			}
			for _, name := range tt.missing {
				if !strings.Contains(err.Error(), name) {
					t.Errorf("error %q does not name %s", err, name)
				}
			}
		})
	}
}

func TestFromEnvironment_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TELEGRAM_CHAT_ID", "not-a-number"},
		{"HTTP_TIMEOUT", "soon"},
		{"HTTP_TIMEOUT", "0s"},
		{"TELEGRAM_COMMANDS_ENABLED", "maybe"},
		{"STATUS_VERDICTS_FILE", filepath.Join(os.TempDir(), "does-not-exist-verdicts.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			env := requiredEnv()
			env[tt.key] = tt.value
			if _, err := FromEnvironment(env); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestFromEnvironment_VerdictsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verdicts.yaml")
	content := `verdicts:
  approved: "Работа проверена: ревьюеру всё понравилось. Ура!"
  pending: "Waiting for a reviewer."
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write verdicts file: %v", err)
	}

	env := requiredEnv()
	env["STATUS_VERDICTS_FILE"] = path
	cfg, err := FromEnvironment(env)
	if err != nil {
		t.Fatalf("FromEnvironment() error = %v", err)
	}
	if len(cfg.Verdicts) != 2 || cfg.Verdicts["pending"] != "Waiting for a reviewer." {
		t.Errorf("Verdicts = %v", cfg.Verdicts)
	}
}

func TestLoadVerdicts_Invalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"empty.yaml":     "verdicts: {}\n",
		"malformed.yaml": "verdicts: [approved\n",
		"wrong.yaml":     "statuses:\n  approved: ok\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}
			if _, err := LoadVerdicts(path); err == nil {
				t.Error("LoadVerdicts() error = nil, want error")
			}
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	{
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd: %v", err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatalf("Chdir: %v", err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
	} // no .env file here
	t.Setenv("PRACTICUM_TOKEN", "p")
	t.Setenv("TELEGRAM_TOKEN", "t")
	t.Setenv("TELEGRAM_CHAT_ID", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TelegramChatID != 7 {
		t.Errorf("TelegramChatID = %d, want 7", cfg.TelegramChatID)
	}
}
