package container

// Resolve is a generic helper that calls Get and type-asserts the result,
// reporting failure as a bool instead of panicking.
//
//	cfg, ok := container.Resolve[*Config](c, "config")
func Resolve[T any](c *Container, name string, extras ...any) (T, bool) {
	instance, err := c.Get(name, extras...)
	if err != nil {
		var zero T
		return zero, false
	}
	typed, ok := instance.(T)
	return typed, ok
}

// MustResolve is like Resolve but panics if resolution failed or the
// result is the wrong type.
//
//	// Instead of: db, _ := c.Get("db"); typed := db.(*sql.DB)
//	// Write:      db := container.MustResolve[*sql.DB](c, "db")
func MustResolve[T any](c *Container, name string, extras ...any) T {
	instance, err := c.Get(name, extras...)
	if err != nil {
		panic("container: MustResolve[" + name + "]: " + err.Error())
	}
	typed, ok := instance.(T)
	if !ok {
		panic("container: MustResolve[" + name + "]: resolved value has the wrong type")
	}
	return typed
}
