// Command cleanup-otps deletes expired one-time codes. It is intended to be
// invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/stride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stride-backend/internal/adapter/postgres/otp"
	"github.com/heartmarshall/stride-backend/internal/app"
	"github.com/heartmarshall/stride-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := otp.New(pool).DeleteExpired(ctx, time.Now())
	if err != nil {
		logger.Error("cleanup otps", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expired otps deleted", slog.Int("deleted", deleted))
}
