package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := cmd.OpenStore(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	customerListener := app.CreateCustomerListener()
	if err = customerListener.Start(ctx); err != nil {
		log.Fatalf("Failed to start customer listener: %v", err)
	}

	staffListener := app.CreateStaffListener()
	if err = staffListener.Start(ctx); err != nil {
		log.Fatalf("Failed to start staff listener: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	var e *echo.Echo
	if configs.HTTPPort != "" {
		e = startWebServer(app, configs.HTTPPort)
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if e != nil {
		if err = e.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", "error", err)
		}
	}
	for _, listener := range []interface{ Stop(context.Context) error }{customerListener, staffListener} {
		if err = listener.Stop(shutdownCtx); err != nil {
			logger.Error("Listener shutdown failed", "error", err)
		}
	}
	jobManager.StopAll()

	if sqlDB, dbErr := db.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

func getConfigs() cmd.Config {
	loadDotEnv()
	return cmd.LoadConfig(os.LookupEnv)
}

// loadDotEnv reads .env into the environment when present.
// Variables already set take precedence.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	return e
}
