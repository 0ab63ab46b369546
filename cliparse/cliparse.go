package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultBaseURL      = "http://localhost:41990/api"
	DefaultPort         = 41990
	DefaultDatabaseURL  = "file:feedback.db"
	DefaultDatabaseType = "sqlite"
	DefaultVoteErrors   = "report"
	DefaultLogLevel     = "info"
)

type Config struct {
	BaseURL      string
	Port         int
	DatabaseURL  string
	DatabaseType string
	VoteErrors   string
	LogLevel     string
	ConfigFile   string

	// Args holds the positional arguments left after the flags
	Args []string
}

// fileConfig is the layout of the optional YAML config file
type fileConfig struct {
	API struct {
		BaseURL    string `yaml:"base_url"`
		VoteErrors string `yaml:"vote_errors"`
	} `yaml:"api"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL  string `yaml:"url"`
		Type string `yaml:"type"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadDotEnv loads variables from path into the environment.
// A missing file is not an error, and existing variables are kept.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ParseFlags validates flags and fills the rest from the environment,
// the config file, and defaults, in that order
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("feedback", flag.ContinueOnError)

	flags.StringVar(&cfg.BaseURL, "u", "", "API base URL")
	flags.IntVar(&cfg.Port, "p", 0, "Server port (serve)")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (serve)")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type, sqlite or postgres (serve)")
	flags.StringVar(&cfg.VoteErrors, "vote-errors", "", "Failed vote handling, report or log")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level, debug, info, warn or error")
	flags.StringVar(&cfg.ConfigFile, "c", "", "YAML config file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = flags.Args()

	if cfg.ConfigFile == "" {
		cfg.ConfigFile = os.Getenv("FEEDBACK_CONFIG")
	}

	var file fileConfig
	if cfg.ConfigFile != "" {
		data, err := os.ReadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.BaseURL = firstNonEmpty(cfg.BaseURL, os.Getenv("FEEDBACK_API_URL"), file.API.BaseURL, DefaultBaseURL)
	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"), file.Database.URL, DefaultDatabaseURL)
	cfg.DatabaseType = firstNonEmpty(cfg.DatabaseType, os.Getenv("DATABASE_TYPE"), file.Database.Type, DefaultDatabaseType)
	cfg.VoteErrors = firstNonEmpty(cfg.VoteErrors, os.Getenv("VOTE_ERRORS"), file.API.VoteErrors, DefaultVoteErrors)
	cfg.LogLevel = firstNonEmpty(cfg.LogLevel, os.Getenv("LOG_LEVEL"), file.Log.Level, DefaultLogLevel)

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else if file.Server.Port != 0 {
			cfg.Port = file.Server.Port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API base URL %q (want http(s)://host/path)", cfg.BaseURL)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}

	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return fmt.Errorf("invalid database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.VoteErrors != "report" && cfg.VoteErrors != "log" {
		return fmt.Errorf("invalid vote error handling %q (want report or log)", cfg.VoteErrors)
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}

	return nil
}

// SlogLevel returns the configured log level
func (cfg Config) SlogLevel() slog.Level {
	level, _ := parseLevel(cfg.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
