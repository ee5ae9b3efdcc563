package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/preston-bernstein/league-ranker/internal/config"
	"github.com/preston-bernstein/league-ranker/internal/console"
	"github.com/preston-bernstein/league-ranker/internal/league"
	"github.com/preston-bernstein/league-ranker/internal/logging"
	"github.com/preston-bernstein/league-ranker/internal/metrics"
)

const (
	appVersion      = "dev"
	serviceName     = "league-ranker"
	shutdownTimeout = 5 * time.Second
)

var metricsSetup = metrics.Setup

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one ranking pass and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
		Version: appVersion,
		Output:  stderr,
	})
	out := console.New(stdout, stderr, cfg.Color)

	if len(args) == 0 {
		out.Error("Please supply a file path.")
		return 1
	}
	path := args[0]

	file, err := os.Open(path)
	if err != nil {
		out.Error(fmt.Sprintf("Problem reading file: \n%v", err))
		return 1
	}
	defer file.Close()

	rec, shutdown, err := metricsSetup(ctx, cfg.Metrics.Telemetry())
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		rec, shutdown = metrics.NewRecorder(), nil
	}
	defer flushMetrics(logger, shutdown)

	lg := league.New(out,
		league.WithLogger(logger.With(logging.FieldFile, path)),
		league.WithMetrics(rec),
		league.WithMaxLineBytes(cfg.MaxLineBytes),
	)
	if err := lg.Run(ctx, file); err != nil {
		if _, ok := league.AsFormatError(err); ok {
			// Already reported on the sink.
			logging.Debug(logger, "league run aborted", "error", err)
			return 1
		}
		out.Error(err.Error())
		logging.Error(logger, "league run failed", err)
		return 1
	}
	return 0
}

func flushMetrics(logger *slog.Logger, shutdown func(context.Context) error) {
	if shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logging.Warn(logger, "metrics shutdown failed", "error", err)
	}
}
