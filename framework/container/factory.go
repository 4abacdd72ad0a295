package container

// Factory is the proxy manufactured for a dependency name carrying the
// factory suffix. It re-enters the resolver on demand and owns every
// transient it produces, so disposing the consumer that holds the factory
// cascades to disposing its manufactured instances too.
type Factory struct {
	serviceName   string
	container     *Container
	parentTracked *trackedNode
	overrides     map[string]any
}

func newFactoryNode(name string, owner *Container) *trackedNode {
	node := &trackedNode{serviceName: name + "!", lifecycle: Unique, container: owner}
	node.instance = &Factory{serviceName: name, container: owner, parentTracked: node}
	return node
}

// Get resolves the factory's bound service, with any accumulated Use
// overrides installed for this call only, then clears them.
func (f *Factory) Get(extraArgs ...any) (any, error) {
	ctx := newResolutionContext(f.container)
	ctx.callRoot = f.parentTracked
	ctx.overrides = f.overrides
	f.overrides = nil

	instance, _, err := resolveDep(ctx, DepSpec{Name: f.serviceName}, extraArgs, true)
	return instance, err
}

// Use pushes a per-call override for the named dependency and returns the
// same proxy so calls chain: f.Use("a", 1).Use("b", 2).Get(). Overrides
// accumulate until the next Get consumes and clears them.
func (f *Factory) Use(name string, value any) *Factory {
	if f.overrides == nil {
		f.overrides = make(map[string]any)
	}
	f.overrides[name] = value
	return f
}

// Dispose releases one instance this factory previously produced. The
// instance must be a direct transient of this factory — nested
// dependencies it pulled in are disposed along with it, not separately.
func (f *Factory) Dispose(instance any) error {
	node := f.parentTracked.findByInstance(instance)
	if node == nil {
		return &NotTrackedError{ServiceName: f.serviceName}
	}
	f.parentTracked.detach(node)
	return disposeNode(node, f.container.onDispose)
}
