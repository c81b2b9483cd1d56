package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/nukleohub/commercial/internal/config"
	"github.com/nukleohub/commercial/internal/infra"
)

// @title       Commercial CRM API
// @version     1.0
// @description REST API for companies, contacts and the opportunity pipeline
// @BasePath    /
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatalf("failed to build configuration - %s", err)
	}

	level, err := logrus.ParseLevel(cfg.LogCfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	app, err := infra.Router()
	if err != nil {
		logrus.Fatalf("failed to build application - %s", err)
	}

	start(app, cfg.HTTPCfg)
}

func start(app *echo.Echo, httpCfg config.HTTPCfg) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", httpCfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
