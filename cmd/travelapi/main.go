package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/tripstack/travelapi/internal/app"
)

func main() {
	// .env is a local-development convenience; absence is not an error.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "travelapi",
		Usage: "REST API over the travel-sample document dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":8080",
				Sources: cli.EnvVars("TRAVELAPI_ADDR"),
				Usage:   "HTTP listen address",
			},
			&cli.StringFlag{
				Name:    "store-uri",
				Value:   "mongodb://localhost:27017",
				Sources: cli.EnvVars("TRAVELAPI_STORE_URI"),
				Usage:   "Document store connection string",
			},
			&cli.StringFlag{
				Name:    "store-username",
				Sources: cli.EnvVars("TRAVELAPI_STORE_USERNAME"),
				Usage:   "Document store username",
			},
			&cli.StringFlag{
				Name:    "store-password",
				Sources: cli.EnvVars("TRAVELAPI_STORE_PASSWORD"),
				Usage:   "Document store password",
			},
			&cli.StringFlag{
				Name:    "store-database",
				Value:   "travel",
				Sources: cli.EnvVars("TRAVELAPI_STORE_DATABASE"),
				Usage:   "Database holding the travel collections",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Sources: cli.EnvVars("TRAVELAPI_DEBUG"),
				Usage:   "Verbose development logging",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	logger, err := newLogger(c.Bool("debug"))
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	cfg := app.Config{
		Addr:     c.String("addr"),
		StoreURI: c.String("store-uri"),
		Username: c.String("store-username"),
		Password: c.String("store-password"),
		Database: c.String("store-database"),
	}

	server, closer, err := app.NewServer(ctx, cfg, sugar)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	defer func() {
		if closeErr := closer.Close(); closeErr != nil {
			sugar.Errorw("close resources", "error", closeErr)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("listening", "addr", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		return shutdown(server)
	case sig := <-sigCh:
		sugar.Infow("received signal", "signal", sig.String())
		return shutdown(server)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
