package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/course-feedback/api"
	"github.com/danielhkuo/course-feedback/cliparse"
	"github.com/danielhkuo/course-feedback/client"
	"github.com/danielhkuo/course-feedback/db"
	"github.com/danielhkuo/course-feedback/feedback"
	"github.com/danielhkuo/course-feedback/middleware"
	"github.com/danielhkuo/course-feedback/router"
)

func main() {
	// Only load .env in development
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	if len(cfg.Args) == 0 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	if cfg.Args[0] == "serve" {
		if err := serve(cfg); err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	policy, err := feedback.ParseVoteErrorPolicy(cfg.VoteErrors)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feedbackAPI := api.NewFeedbackAPI(client.New(cfg.BaseURL), api.WithVoteErrors(policy))

	err = runCommand(ctx, feedbackAPI, cfg.Args, os.Stdout)
	if errors.Is(err, errUsage) {
		printUsage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		printErrors(os.Stderr, err)
		os.Exit(1)
	}
}

// serve runs the reference API server until interrupted
func serve(cfg cliparse.Config) error {
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		return err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	server := http.Server{
		Handler: middleware.CORS(router.NewRouter(dbConn)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port, "api", router.APIPrefix)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server closed: %w", err)
	}
	slog.Info("Server closed")
	return nil
}
