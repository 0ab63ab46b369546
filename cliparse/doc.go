// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Positional arguments after the flags (the subcommand and its arguments) are
returned in cfg.Args.

# Config Fields

  - BaseURL: API root used by the client (default: http://localhost:41990/api)
  - Port: Reference server listen port (default: 41990)
  - DatabaseURL: Reference server database (default: file:feedback.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - VoteErrors: report or log (default: report)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-u            API base URL
	-p            Server port
	-d            Database URL
	-t            Database type
	-vote-errors  Failed vote handling
	-log-level    Log level
	-c            YAML config file

# Environment Variables

Flags fall back to environment variables:

	FEEDBACK_API_URL → -u
	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	VOTE_ERRORS      → -vote-errors
	LOG_LEVEL        → -log-level
	FEEDBACK_CONFIG  → -c

LoadDotEnv reads a .env file into the environment first; variables that are
already set win.

# Config File

Anything still unset is read from the YAML file, if one is given:

	api:
	  base_url: https://feedback.example.com/api
	  vote_errors: log
	server:
	  port: 8080
	database:
	  type: postgres
	  url: postgres://...
	log:
	  level: debug

CLI flags take precedence over environment variables, which take precedence
over the config file.

# Validation

ParseFlags returns an error if:

  - the base URL is not an absolute http or https URL
  - the port is outside 1-65535
  - the database type, vote error handling or log level is unknown
*/
package cliparse
