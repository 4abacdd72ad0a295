package container

import (
	"errors"
	"fmt"
)

// trackedNode is one entry in the tracking graph that parallels the
// returned instance graph: every non-singleton instance has exactly one
// tracking parent, either another non-singleton instance from the same
// call or the call's root.
type trackedNode struct {
	instance    any
	serviceName string
	lifecycle   Lifecycle
	container   *Container // registering container; not read during disposal
	children    []*trackedNode
}

func (n *trackedNode) addChild(child *trackedNode) {
	n.children = append(n.children, child)
}

// detach removes child from n's children, returning whether it was found.
func (n *trackedNode) detach(child *trackedNode) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// findByInstance looks for a direct child tracking the given instance —
// used by Factory.Dispose, which only ever detaches instances it itself
// handed out.
func (n *trackedNode) findByInstance(instance any) *trackedNode {
	for _, c := range n.children {
		if c.instance == instance {
			return c
		}
	}
	return nil
}

// disposeNode walks the subtree post-order (children in reverse insertion
// order, then the node itself) and calls hook for every node that
// represents a real service instance. Factory proxies are tracked nodes
// but are never themselves handed to the hook — they're the access
// mechanism, not a disposable resource.
//
// A panicking hook is recovered so the traversal always completes; every
// failure (panic or returned error — the hook here has no return value, so
// only panics apply) is aggregated with errors.Join and raised once the
// whole subtree has been visited, rather than aborting disposal partway
// through.
func disposeNode(node *trackedNode, hook func(instance any, serviceName string)) error {
	var errs []error

	for i := len(node.children) - 1; i >= 0; i-- {
		if err := disposeNode(node.children[i], hook); err != nil {
			errs = append(errs, err)
		}
	}
	node.children = nil

	if hook == nil {
		return errors.Join(errs...)
	}
	if _, isFactory := node.instance.(*Factory); isFactory {
		return errors.Join(errs...)
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				errs = append(errs, fmt.Errorf("container: onDispose panicked for %q: %v", node.serviceName, r))
			}
		}()
		hook(node.instance, node.serviceName)
	}()

	return errors.Join(errs...)
}
