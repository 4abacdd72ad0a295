package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-ioc/framework/config"
	"github.com/km-arc/go-ioc/framework/container"
	"github.com/km-arc/go-ioc/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Registered services:
//   - "config" → *config.Config (singleton)
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func() any { return config.Load(envFiles...) })
}

// ── LoggerServiceProvider ─────────────────────────────────────────────────────

// LoggerServiceProvider builds the application's zap logger: production
// settings outside local/testing environments, development settings
// (console-encoded, human-readable) inside them.
//
// Registered services:
//   - "logger" → *zap.Logger (singleton, depends on "config")
type LoggerServiceProvider struct {
	container.BaseProvider
}

func (p *LoggerServiceProvider) Register(app *container.Container) {
	app.Singleton("logger", newLogger, "config")
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.App.Env == "local" || cfg.App.Env == "testing" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Registered services:
//   - "router" → *routing.Router (singleton, depends on "logger")
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", routing.New, "logger")
}
