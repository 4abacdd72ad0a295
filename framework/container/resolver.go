package container

const containerServiceName = "container"

// resolveDep is the resolver entry point re-entered for every name in a
// dependency graph: override check, the "container" sentinel, lookup,
// factory short-circuit, cycle check, cache probe, build, then cache and
// track by lifecycle.
func resolveDep(ctx *resolutionContext, spec DepSpec, extraArgs []any, topLevel bool) (any, *trackedNode, error) {
	name := spec.Name

	// 1. Overrides beat everything, including the "container" sentinel.
	if src, ok := ctx.overrides[name]; ok {
		return resolveOverride(ctx, name, src, extraArgs, topLevel)
	}

	// 2/3. "container" is implicitly registered everywhere and always
	// resolves to the container the top-level call started from.
	if name == containerServiceName {
		return ctx.owningContainer, nil, nil
	}

	reg, owner, found := ctx.owningContainer.find(name)
	if !found {
		if spec.Optional {
			return nil, nil, nil
		}
		return nil, nil, &UnregisteredServiceError{Name: name, Path: append(append([]string{}, ctx.stack...), name)}
	}

	// 4. Factory-suffixed dependencies short-circuit everything else: no
	// cycle check, no cache probe, always a fresh proxy.
	if spec.Factory {
		node := newFactoryNode(name, owner)
		ctx.attach(node)
		return node.instance, node, nil
	}

	// 5. Cycle check.
	if ctx.onStack(name) {
		return nil, nil, &CyclicDependencyError{Path: append(append([]string{}, ctx.stack...), name)}
	}

	// 6. Cache probe by lifecycle.
	switch reg.lifecycle {
	case Singleton:
		if inst, ok := owner.singletons[name]; ok {
			return inst, nil, nil
		}
	case PerRequest:
		if inst, ok := ctx.perRequest[name]; ok {
			return inst, nil, nil
		}
	}

	// 7/8. Build (construct, or take the eager value as-is).
	instance, node, err := build(ctx, name, reg, owner, extraArgs, topLevel)
	if err != nil {
		return nil, nil, err
	}

	// 9. Cache and track per lifecycle.
	switch reg.lifecycle {
	case Singleton:
		owner.singletons[name] = instance
		owner.roots = append(owner.roots, node)
	case PerRequest:
		ctx.perRequest[name] = instance
		ctx.attach(node)
	case Unique:
		ctx.attach(node)
	}

	return instance, node, nil
}

// build constructs (or takes as-is) the instance for reg, resolving its
// declared dependencies in order and appending extraArgs only when this is
// the top-level resolve of the call.
func build(ctx *resolutionContext, name string, reg *registration, owner *Container, extraArgs []any, topLevel bool) (any, *trackedNode, error) {
	node := &trackedNode{serviceName: name, lifecycle: reg.lifecycle, container: owner}

	if !reg.callable {
		node.instance = reg.value
		return reg.value, node, nil
	}

	ctx.pushStack(name)
	ctx.pushNode(node)

	args := make([]any, 0, len(reg.deps))
	for _, dep := range reg.deps {
		v, _, err := resolveDep(ctx, dep, nil, false)
		if err != nil {
			ctx.popNode()
			ctx.popStack()
			return nil, nil, err
		}
		args = append(args, v)
	}
	if topLevel {
		args = append(args, extraArgs...)
	}

	instance, err := invoke(reg.value, args)

	ctx.popNode()
	ctx.popStack()

	if err != nil {
		return nil, nil, &ConstructionError{Name: name, Cause: err}
	}

	node.instance = instance
	return instance, node, nil
}

// resolveOverride builds a one-off registration from a factory's Use(name,
// value) override. Overrides never cache (lifecycle Unique) and, when the
// override value is itself callable, it's invoked with no declared
// dependencies: the override supplies the finished value (or the thing that
// produces it), not a new entry in the dependency graph.
func resolveOverride(ctx *resolutionContext, name string, src any, extraArgs []any, topLevel bool) (any, *trackedNode, error) {
	reg := &registration{name: name, value: src, callable: isCallable(src), lifecycle: Unique}
	instance, node, err := build(ctx, name, reg, ctx.owningContainer, extraArgs, topLevel)
	if err != nil {
		return nil, nil, err
	}
	ctx.attach(node)
	return instance, node, nil
}

// find searches c, then its parent chain, for a registration of name,
// returning the container that actually owns it (where a singleton for
// that name would be cached).
func (c *Container) find(name string) (*registration, *Container, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if reg, ok := cur.registry.get(name); ok {
			return reg, cur, true
		}
	}
	return nil, nil, false
}
