package container

import "go.uber.org/zap"

// Option configures a Container at creation time. Only top-level New
// accepts options — Create always produces a child with an empty registry
// that inherits its parent's disposal hook and logger.
type Option func(*Container)

// WithOnDispose installs the hook invoked once per instance during
// disposal. Panics from the hook are recovered, aggregated, and returned
// from Dispose as one joined error after the whole tracking subtree has
// been visited.
func WithOnDispose(hook func(instance any, serviceName string)) Option {
	return func(c *Container) { c.onDispose = hook }
}

// WithLogger installs a zap logger for registration/resolution/disposal
// diagnostics. Defaults to zap.NewNop() — the container stays silent
// unless a host opts in.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) { c.logger = logger }
}
