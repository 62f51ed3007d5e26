package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	twicmdhttp "github.com/twipi/twipi/twicmd/http"
	"github.com/twipi/tttminimax/config"
	"github.com/twipi/tttminimax/service"
	"golang.org/x/sync/errgroup"
	"libdb.so/hserve"
)

var (
	configPath = ""
	listenAddr = ""
	logLevel   = ""
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to the YAML config file")
	pflag.StringVarP(&listenAddr, "listen-addr", "l", listenAddr, "address to listen on, overrides the config")
	pflag.StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error), overrides the config")
	pflag.Parse()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error(
			"failed to load config",
			"path", configPath,
			"err", err)
		os.Exit(1)
	}

	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := cfg.Level()
	if err != nil {
		slog.Error(
			"invalid log level",
			"err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	os.Exit(start(ctx, logger, cfg))
}

func start(ctx context.Context, logger *slog.Logger, cfg config.Config) int {
	errg, ctx := errgroup.WithContext(ctx)

	svc := service.NewService(logger.With("component", "service"), cfg)
	errg.Go(func() error { return svc.Start(ctx) })

	handler := twicmdhttp.NewHandler(svc, logger.With("component", "http"))
	errg.Go(func() error {
		<-ctx.Done()
		if err := handler.Close(); err != nil {
			logger.Error(
				"failed to close http service handler",
				"err", err)
		}
		return ctx.Err()
	})

	errg.Go(func() error {
		r := http.NewServeMux()
		r.Handle("GET /health", http.HandlerFunc(healthCheck))
		r.Handle("/", handler)

		logger.Info(
			"listening via HTTP",
			"addr", cfg.ListenAddr)

		if err := hserve.ListenAndServe(ctx, cfg.ListenAddr, r); err != nil {
			logger.Error(
				"failed to listen and serve",
				"err", err)
			return err
		}

		return ctx.Err()
	})

	if err := errg.Wait(); err != nil {
		logger.Error(
			"service error",
			"err", err)
		return 1
	}

	return 0
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
