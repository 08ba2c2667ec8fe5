package app

import (
	"log/slog"

	"mobilefood.datasf.org/internal/metrics"
	"mobilefood.datasf.org/internal/permits"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: configuration, a logger, the loaded permit dataset, and
// the Prometheus collectors.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Permits *permits.Manager
	Metrics *metrics.Metrics
}

// Config holds all the configuration settings for our Application: the
// network port to listen on, the name of the current operating environment
// (development, staging, production, etc.), the dataset location, and the
// per-client request rate limit. These are read from command-line flags when
// the Application starts.
type Config struct {
	Port        int
	Env         string
	DatasetPath string
	RateLimit   int
}
