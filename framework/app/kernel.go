package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-ioc/framework/config"
	"github.com/km-arc/go-ioc/framework/container"
	gohttp "github.com/km-arc/go-ioc/framework/http"
	"github.com/km-arc/go-ioc/framework/providers"
	"github.com/km-arc/go-ioc/framework/routing"
)

// Application is the top-level application container. It embeds the IoC
// Container and ProviderRegistry so user code can call app.Bind(),
// app.Singleton(), app.Register() directly — exactly like $app in Laravel's
// bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates and bootstraps the application, wiring the framework's own
// core providers in dependency order: config before logger, logger before
// router.
func New(envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LoggerServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers, then installs the
// per-request scope middleware and the container-inspection endpoint.
func (a *Application) Boot() {
	a.Providers.Boot()
	router := a.Router()
	router.Middleware(a.scopeMiddleware)
	router.Get("/_container/inspect", a.inspectHandler)
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	cfg, ok := container.Resolve[*config.Config](a.Container, "config")
	if !ok {
		panic("app: \"config\" did not resolve to *config.Config")
	}
	return cfg
}

// Logger resolves *zap.Logger from the container.
func (a *Application) Logger() *zap.Logger {
	logger, ok := container.Resolve[*zap.Logger](a.Container, "logger")
	if !ok {
		return zap.NewNop()
	}
	return logger
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	router, ok := container.Resolve[*routing.Router](a.Container, "router")
	if !ok {
		panic("app: \"router\" did not resolve to *routing.Router")
	}
	return router
}

// ── Per-request scope ─────────────────────────────────────────────────────────

type scopeContextKey struct{}

func withScope(ctx context.Context, scope *container.Container) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, scope)
}

func scopeFrom(ctx context.Context) (*container.Container, bool) {
	scope, ok := ctx.Value(scopeContextKey{}).(*container.Container)
	return scope, ok
}

// scopeMiddleware opens a child container per inbound request and disposes
// it when the handler returns, the documented way a concurrent host
// serializes access to a container that carries no locking of its own: one
// scope per request, never shared across goroutines.
func (a *Application) scopeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := a.Container.Create()
		defer func() {
			if err := scope.Dispose(); err != nil {
				a.Logger().Warn("request scope disposed with errors", zap.Error(err))
			}
		}()
		ctx := r.Context()
		next.ServeHTTP(w, r.WithContext(withScope(ctx, scope)))
	})
}

// Scope resolves the per-request child container a handler is running
// under, falling back to the application's root container outside of a
// request (e.g. in a CLI command or a test).
func (a *Application) Scope(r *http.Request) *container.Container {
	if scope, ok := scopeFrom(r.Context()); ok {
		return scope
	}
	return a.Container
}

// ── Container inspection ──────────────────────────────────────────────────────

// inspectHandler lists the names registered directly on the request's
// scope, giving the resolver a real HTTP-facing consumer.
func (a *Application) inspectHandler(w http.ResponseWriter, r *http.Request) {
	scope := a.Scope(r)
	res := gohttp.NewResponse(w)
	res.Success(map[string]any{
		"containerId": scope.ID().String(),
		"bindings":    scope.Names(),
	})
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	router := a.Router()
	addr := ":" + cfg.App.Port
	a.Logger().Info("application starting",
		zap.String("name", cfg.App.Name),
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env),
	)
	if err := http.ListenAndServe(addr, router); err != nil {
		a.Logger().Fatal("server error", zap.Error(err))
	}
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool        { return a.Environment() == "local" }
func (a *Application) IsProduction() bool   { return a.Environment() == "production" }
func (a *Application) IsTesting() bool      { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool        { return a.Config().App.Debug }
func (a *Application) Version() string      { return "0.1.0" }
