package container

// resolutionContext is the transient bookkeeping object created per
// top-level Get call: it holds the perRequest cache, the stack of
// currently-resolving names (cycle detection), the parallel tracked-node
// stack (disposal parenting), and any per-call overrides pushed by a
// factory invocation.
type resolutionContext struct {
	owningContainer *Container
	perRequest      map[string]any
	overrides       map[string]any

	stack     []string
	nodeStack []*trackedNode

	// callRoot, when set, is where a resolution with an empty nodeStack
	// attaches its top-level tracked node. Factory.Get sets this to the
	// factory's own tracked node (itself a child of the consumer that holds
	// the factory), so everything it produces hangs off that node instead
	// of the owning container's root list.
	callRoot *trackedNode
}

func newResolutionContext(owner *Container) *resolutionContext {
	return &resolutionContext{
		owningContainer: owner,
		perRequest:      make(map[string]any),
	}
}

func (ctx *resolutionContext) onStack(name string) bool {
	for _, n := range ctx.stack {
		if n == name {
			return true
		}
	}
	return false
}

func (ctx *resolutionContext) pushStack(name string) { ctx.stack = append(ctx.stack, name) }

func (ctx *resolutionContext) popStack() { ctx.stack = ctx.stack[:len(ctx.stack)-1] }

func (ctx *resolutionContext) pushNode(n *trackedNode) { ctx.nodeStack = append(ctx.nodeStack, n) }

func (ctx *resolutionContext) popNode() { ctx.nodeStack = ctx.nodeStack[:len(ctx.nodeStack)-1] }

// attach gives node its single tracking parent: the nearest non-singleton
// ancestor under construction, the factory's tracked node when resolving
// inside a Factory.Get call, or the owning container's root list when neither
// applies. A singleton ancestor is skipped rather than used as the parent —
// its lifetime outlives any one call, so a perRequest or unique child
// parented under it would never get disposed on the call's own schedule.
func (ctx *resolutionContext) attach(node *trackedNode) {
	for i := len(ctx.nodeStack) - 1; i >= 0; i-- {
		if ctx.nodeStack[i].lifecycle != Singleton {
			ctx.nodeStack[i].addChild(node)
			return
		}
	}
	if ctx.callRoot != nil {
		ctx.callRoot.addChild(node)
		return
	}
	ctx.owningContainer.roots = append(ctx.owningContainer.roots, node)
}
