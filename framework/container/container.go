package container

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Container is the user-facing façade over the registry, resolver, and
// tracking graph: register, get, dispose, create. It mirrors the shape of
// Laravel's Illuminate\Container\Container the way the original bindings
// table did, generalized from transient/singleton bindings to the full
// perRequest/unique/singleton lifecycle model with per-call dependency
// overrides and cascading disposal.
type Container struct {
	id uuid.UUID

	parent   *Container
	children []*Container

	registry   *registry
	singletons map[string]any
	roots      []*trackedNode

	onDispose func(instance any, serviceName string)
	logger    *zap.Logger

	disposed bool
}

// New creates a root container. Call Create on an existing container to
// open a nested scope instead — scopes inherit their parent's disposal
// hook and logger but start with an empty registry of their own.
func New(opts ...Option) *Container {
	c := &Container{
		id:         uuid.New(),
		registry:   newRegistry(),
		singletons: make(map[string]any),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// ID returns the container's identity, stable for its lifetime.
func (c *Container) ID() uuid.UUID { return c.id }

// ── Registration ──────────────────────────────────────────────────────────────

// Register declares a service by name, its backing value (a constructor-like
// or an already-built value), its lifecycle, and the dependency names its
// constructor expects positionally. Re-registering a name replaces it;
// in-flight resolutions of the old registration are unaffected.
func (c *Container) Register(name string, value any, lifecycle Lifecycle, deps ...string) error {
	if c.disposed {
		return &DisposedError{Op: "register"}
	}
	if lifecycle == "" {
		lifecycle = PerRequest
	}
	if !lifecycle.valid() {
		return &BadLifecycleError{Name: name, Lifecycle: lifecycle}
	}

	specs := make([]DepSpec, 0, len(deps))
	for _, d := range deps {
		specs = append(specs, parseDep(d))
	}

	c.registry.set(&registration{
		name:      name,
		value:     value,
		callable:  isCallable(value),
		lifecycle: lifecycle,
		deps:      specs,
	})

	c.logger.Debug("container: registered",
		zap.String("name", name),
		zap.String("lifecycle", lifecycle.String()),
	)
	return nil
}

// Bind registers a perRequest service: rebuilt once per top-level Get call,
// then reused for every dependency inside that same call that asks for it.
func (c *Container) Bind(name string, value any, deps ...string) error {
	return c.Register(name, value, PerRequest, deps...)
}

// Singleton registers a service cached for the lifetime of this container.
func (c *Container) Singleton(name string, value any, deps ...string) error {
	return c.Register(name, value, Singleton, deps...)
}

// Unique registers a service rebuilt on every single reference to it, even
// within the same resolution.
func (c *Container) Unique(name string, value any, deps ...string) error {
	return c.Register(name, value, Unique, deps...)
}

// Bound reports whether name is registered on this container or an
// ancestor.
func (c *Container) Bound(name string) bool {
	_, _, found := c.find(name)
	return found
}

// Names lists the service names registered directly on this container,
// excluding anything inherited from a parent.
func (c *Container) Names() []string {
	return c.registry.names()
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves name as a top-level call: its own resolutionContext, its own
// perRequest cache, extras appended as trailing constructor arguments only
// at this top level.
func (c *Container) Get(name string, extras ...any) (any, error) {
	if c.disposed {
		return nil, &DisposedError{Op: "get"}
	}
	ctx := newResolutionContext(c)
	instance, _, err := resolveDep(ctx, DepSpec{Name: name}, extras, true)
	if err != nil {
		c.logger.Warn("container: resolve failed", zap.String("name", name), zap.Error(err))
	}
	return instance, err
}

// ── Child containers ─────────────────────────────────────────────────────────

// Create opens a nested scope: its own registry (names it doesn't define
// shadow nothing, they simply fall through to the parent via find), its own
// singleton cache, its own tracking roots — but the parent's onDispose hook
// and logger. Disposing the parent cascades into every live child.
func (c *Container) Create() *Container {
	child := &Container{
		id:         uuid.New(),
		parent:     c,
		registry:   newRegistry(),
		singletons: make(map[string]any),
		onDispose:  c.onDispose,
		logger:     c.logger,
	}
	c.children = append(c.children, child)
	return child
}

// ── Disposal ──────────────────────────────────────────────────────────────────

// Dispose tears down every tracked instance this container owns, in
// post-order, then recurses into its still-live children in reverse
// creation order. It is idempotent: a second call is a no-op. Errors from
// onDispose (panics and, once aggregated, the children's own errors) are
// joined and returned rather than stopping the traversal partway.
func (c *Container) Dispose() error {
	if c.disposed {
		return nil
	}
	c.disposed = true

	var errs []error
	for i := len(c.roots) - 1; i >= 0; i-- {
		if err := disposeNode(c.roots[i], c.onDispose); err != nil {
			errs = append(errs, err)
		}
	}
	for i := len(c.children) - 1; i >= 0; i-- {
		child := c.children[i]
		if child.disposed {
			continue
		}
		if err := child.Dispose(); err != nil {
			errs = append(errs, err)
		}
	}

	c.registry = newRegistry()
	c.singletons = make(map[string]any)
	c.roots = nil

	joined := errors.Join(errs...)
	if joined != nil {
		c.logger.Warn("container: dispose completed with errors", zap.String("id", c.id.String()), zap.Error(joined))
	} else {
		c.logger.Debug("container: disposed", zap.String("id", c.id.String()))
	}
	return joined
}
