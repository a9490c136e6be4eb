package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ekinsoyer/theatre-reservation-system/internal/app"
	"github.com/ekinsoyer/theatre-reservation-system/internal/vcs"
)

var version = vcs.Version()

func main() {
	var cfg app.Config

	flag.IntVar(&cfg.Port, "port", 3000, "Server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.IntVar(&cfg.DefaultPageSize, "page-size", 20, "Default page size for paginated listings")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL (empty disables telemetry)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("THEATRE_DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max connection idle time")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "localhost:6379", "Redis address")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 15*time.Minute, "Redis max connection idle time")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "localhost", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 1025, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "Theatre Reservation <no-reply@theatre-reservation.example>", "SMTP sender")

	flag.StringVar(&cfg.Upload.Dir, "upload-dir", "./uploads", "Directory for uploaded play images")
	flag.Int64Var(&cfg.Upload.MaxBytes, "upload-max-bytes", 5_242_880, "Maximum upload size in bytes")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	shutdownTelemetry, err := application.InitTelemetry()
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer shutdownTelemetry(context.Background())

	err = application.Serve()
	if err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
