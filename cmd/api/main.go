package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/justcarpets/mcc-reporting-api/infrastructure/integrator/googleads"
	"github.com/justcarpets/mcc-reporting-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/justcarpets/mcc-reporting-api/internal/api"
	"github.com/justcarpets/mcc-reporting-api/internal/config"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/registry"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	config.ReportSecurityStatus()

	// Missing credentials halt the application before any request is
	// served. The error names every absent variable at once.
	if err := cfg.ValidateCredentials(); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adsClient, err := gadsclient.NewProvider(cfg).Client()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to build Google Ads client")
	}

	adsIntegrator := googleads.New(cfg, adsClient)

	// The probe is informational. An unreachable API at startup is
	// reported but does not stop the server.
	if !adsIntegrator.TestConnection() {
		logrus.Warn("Google Ads API connection could not be verified at startup")
	}

	accountRegistry, err := registry.New()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to build account registry")
	}

	reportingService := reporting.NewService(cfg, accountRegistry, adsIntegrator)

	server, err := api.New(cfg, reportingService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
