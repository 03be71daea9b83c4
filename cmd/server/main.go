package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/futebol-bot-service/internal/config"
	"github.com/preston-bernstein/futebol-bot-service/internal/logging"
	"github.com/preston-bernstein/futebol-bot-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "futebol-bot-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	envErr := loadDotEnv(".env")

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})
	if envErr != nil {
		logger.Warn("could not read .env file", slog.Any(logging.FieldError, envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger, appVersion)
	srv.Run(ctx, stop)
}

// loadDotEnv populates unset variables from path. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
