package container

import "reflect"

// registration is a stored binding: either an eager value used as-is, or a
// constructor-like invoked with its resolved dependencies.
type registration struct {
	name      string
	value     any
	callable  bool
	lifecycle Lifecycle
	deps      []DepSpec
}

// registry is the name → registration map owned by a single Container.
// Re-registering a name overwrites the previous record — last write wins.
type registry struct {
	entries map[string]*registration
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]*registration)}
}

func (r *registry) set(reg *registration) {
	r.entries[reg.name] = reg
}

func (r *registry) get(name string) (*registration, bool) {
	reg, ok := r.entries[name]
	return reg, ok
}

func (r *registry) names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

// isCallable decides, at registration time, whether value should be treated
// as a constructor-like (invoked to produce an instance) or an eager value
// (used as-is). Duck-typed: anything whose reflect.Kind is Func qualifies.
func isCallable(value any) bool {
	if value == nil {
		return false
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}
