package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mobilefood.datasf.org/internal/app"
	"mobilefood.datasf.org/internal/logging"
	"mobilefood.datasf.org/internal/metrics"
	"mobilefood.datasf.org/internal/permits"
	"mobilefood.datasf.org/internal/restapi"
)

func main() {
	var cfg app.Config

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.DatasetPath, "dataset", "Mobile_Food_Facility_Permit.csv", "Path to the permit dataset (.csv or .xlsx)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per client (negative disables limiting)")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	// A dataset that fails to load is fatal: the service must not start
	// serving with a partial or absent dataset.
	manager, err := permits.InitManager(permits.Config{DatasetPath: cfg.DatasetPath})
	if err != nil {
		logger.Error("failed to load permit dataset", "dataset", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}

	appMetrics := metrics.NewMetrics(prometheus.DefaultRegisterer)
	appMetrics.DatasetRows.WithLabelValues("all").Set(float64(len(manager.AllRows())))
	appMetrics.DatasetRows.WithLabelValues("with_coordinates").Set(float64(len(manager.CoordRows())))

	logger.Info("permit dataset loaded",
		"dataset", cfg.DatasetPath,
		"rows", len(manager.AllRows()),
		"rows_with_coordinates", len(manager.CoordRows()))

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Permits: manager,
		Metrics: appMetrics,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
