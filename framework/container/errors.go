package container

import (
	"fmt"
	"strings"
)

// UnregisteredServiceError is returned when a required dependency has no
// registration anywhere in the container chain and wasn't marked optional.
type UnregisteredServiceError struct {
	Name string
	Path []string
}

func (e *UnregisteredServiceError) Error() string {
	return fmt.Sprintf("container: %q is not registered (resolution path: %s)",
		e.Name, strings.Join(e.Path, " -> "))
}

// CyclicDependencyError is returned when a name reappears on the
// resolution stack while it is still being built.
type CyclicDependencyError struct {
	Path []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("container: cyclic dependency: %s", strings.Join(e.Path, " -> "))
}

// BadLifecycleError is returned by Register when the lifecycle token isn't
// one of PerRequest, Unique, or Singleton.
type BadLifecycleError struct {
	Name      string
	Lifecycle Lifecycle
}

func (e *BadLifecycleError) Error() string {
	return fmt.Sprintf("container: %q: unknown lifecycle %q (want perRequest, unique, or singleton)",
		e.Name, string(e.Lifecycle))
}

// DisposedError is returned by Register and Get on a container that has
// already been disposed. Create does not check for disposal and returns a
// child even from a disposed container.
type DisposedError struct {
	Op string
}

func (e *DisposedError) Error() string {
	return fmt.Sprintf("container: cannot %s on a disposed container", e.Op)
}

// NotTrackedError is returned by Factory.Dispose when the given instance
// isn't a tracked transient of that factory.
type NotTrackedError struct {
	ServiceName string
}

func (e *NotTrackedError) Error() string {
	return fmt.Sprintf("container: instance is not a tracked transient of %q's factory", e.ServiceName)
}

// ConstructionError wraps a panic or error raised while invoking a
// constructor-like value, attributing it to the service being built.
type ConstructionError struct {
	Name  string
	Cause error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("container: %q: %v", e.Name, e.Cause)
}

func (e *ConstructionError) Unwrap() error { return e.Cause }
