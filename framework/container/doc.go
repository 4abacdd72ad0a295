// Package container provides a dependency-injection container built around
// three lifecycles rather than Laravel's plain transient/singleton split:
// perRequest (cached for one top-level resolution, then discarded),
// unique (never cached, rebuilt on every reference), and singleton (cached
// for the life of the registering container).
//
// # Overview
//
// Services are registered by name with a constructor-like value — any Go
// function, invoked through reflection with its declared dependencies
// resolved positionally — or a plain pre-built value. A dependency name
// carries optional suffixes: "?" marks it optional (resolves to nil instead
// of erroring when unregistered), "!" or a trailing "Factory" wraps it in a
// Factory proxy instead of resolving it eagerly. Suffixes compose in any
// order: "db?", "logger!", "workerFactory?".
//
//	c := container.New()
//	c.Singleton("config", loadConfig)
//	c.Bind("db", openDB, "config")
//	c.Bind("repo", newUserRepo, "db", "logger?")
//
//	repo, err := c.Get("repo")
//
// # Factories
//
// Declaring "db!" (or "dbFactory") instead of "db" in a dependency list
// hands the constructor a *Factory instead of a *sql.DB. Suffixes are only
// parsed from dependency lists; Get looks a name up exactly as written.
// Factory.Get constructs a fresh instance on demand;
// Factory.Use installs a one-call override for a named dependency before
// the next Get; Factory.Dispose releases one manufactured instance without
// waiting for the whole container to tear down.
//
//	c.Bind("dispatcher", newDispatcher, "worker!")
//
//	func newDispatcher(workers *container.Factory) *Dispatcher {
//	    w1, _ := workers.Get()
//	    w2, _ := workers.Use("queue", testQueue).Get()
//	    ...
//	}
//
// # Scopes
//
// Create opens a child container — its own registry, its own singleton
// cache and tracking roots, but it falls through to its parent for any name
// it hasn't registered itself. Disposing a container disposes every
// instance it tracks, post-order, then cascades into its live children.
//
//	scope := c.Create()
//	defer scope.Dispose()
//	handler, _ := scope.Get("requestHandler")
//
// # Service Providers
//
// Providers group related registrations and defer expensive ones until
// first use:
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Singleton("mailer", newSMTPMailer, "config")
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
package container
