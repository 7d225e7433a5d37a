// Package app wires configuration, logging, and the protocol layer
// into a single container the CLI hands to the session.
package app

import (
	"log/slog"

	"github.com/artpar/lazycurl/internal/interfaces"
	"github.com/artpar/lazycurl/internal/logging"
	httpclient "github.com/artpar/lazycurl/internal/protocol/http"
)

// App is the application container with dependency injection.
type App struct {
	config   Config
	logger   *slog.Logger
	executor interfaces.Executor
}

// Option is a function that configures the App.
type Option func(*App)

// New creates an App with the given options. Anything not injected is
// built from the configuration: the default executor wraps an HTTP
// client carrying the configured timeout and redirect policy.
func New(opts ...Option) *App {
	app := &App{
		config: DefaultConfig(),
		logger: logging.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.executor == nil {
		app.executor = httpclient.NewExecutor(app.buildClient())
	}

	return app
}

// WithConfig sets the application configuration.
func WithConfig(cfg Config) Option {
	return func(a *App) {
		a.config = cfg
	}
}

// WithLogger sets the application logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithExecutor injects a custom request executor.
func WithExecutor(executor interfaces.Executor) Option {
	return func(a *App) {
		a.executor = executor
	}
}

// Config returns the application configuration.
func (a *App) Config() Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Executor returns the request executor.
func (a *App) Executor() interfaces.Executor {
	return a.executor
}

func (a *App) buildClient() *httpclient.Client {
	opts := []httpclient.Option{httpclient.WithTimeout(a.config.Timeout)}
	if !a.config.FollowRedirects {
		opts = append(opts, httpclient.WithNoRedirects())
	}
	return httpclient.NewClient(opts...)
}
