// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FEEDBACK_API_URL", "PORT", "DATABASE_URL", "DATABASE_TYPE",
		"VOTE_ERRORS", "LOG_LEVEL", "FEEDBACK_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"list"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected base URL %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" || cfg.VoteErrors != "report" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if len(cfg.Args) != 1 || cfg.Args[0] != "list" {
		t.Errorf("expected args [list], got %v", cfg.Args)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("FEEDBACK_API_URL", "https://feedback.example.com/api")
	t.Setenv("PORT", "9000")
	t.Setenv("VOTE_ERRORS", "log")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BaseURL != "https://feedback.example.com/api" {
		t.Errorf("expected env base URL, got %s", cfg.BaseURL)
	}
	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.VoteErrors != "log" {
		t.Errorf("expected vote errors log, got %s", cfg.VoteErrors)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("FEEDBACK_API_URL", "http://env.example.com/api")

	cfg, err := ParseFlags([]string{"-p", "8080", "-u", "http://cli.example.com/api", "get", "3"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.BaseURL != "http://cli.example.com/api" {
		t.Errorf("CLI should override env: got %s", cfg.BaseURL)
	}
	if len(cfg.Args) != 2 || cfg.Args[1] != "3" {
		t.Errorf("expected args [get 3], got %v", cfg.Args)
	}
}

func TestParseFlags_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "feedback.yaml")
	content := `
api:
  base_url: http://file.example.com/api
  vote_errors: log
server:
  port: 7000
database:
  type: postgres
  url: postgres://localhost/feedback
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	// Env beats the file
	t.Setenv("PORT", "7100")

	cfg, err := ParseFlags([]string{"-c", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BaseURL != "http://file.example.com/api" {
		t.Errorf("expected file base URL, got %s", cfg.BaseURL)
	}
	if cfg.Port != 7100 {
		t.Errorf("expected env port 7100, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://localhost/feedback" {
		t.Errorf("expected postgres settings from file, got %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"relative base URL", []string{"-u", "/api"}, nil},
		{"unknown scheme", []string{"-u", "ftp://example.com"}, nil},
		{"bad database type", []string{"-t", "mysql"}, nil},
		{"bad vote policy", []string{"-vote-errors", "ignore"}, nil},
		{"bad log level", []string{"-log-level", "loud"}, nil},
		{"bad port env", nil, map[string]string{"PORT": "abc"}},
		{"port out of range", []string{"-p", "70000"}, nil},
		{"missing config file", []string{"-c", "/nonexistent/feedback.yaml"}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("FEEDBACK_API_URL=http://dotenv.example.com/api\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// t.Setenv above registered a restore for the key, so Unsetenv is safe here
	os.Unsetenv("FEEDBACK_API_URL")

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://dotenv.example.com/api" {
		t.Errorf("expected base URL from .env, got %s", cfg.BaseURL)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should not be an error, got %v", err)
	}
}
