package container

import (
	"fmt"
	"reflect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// invoke applies a constructor-like value to a positional argument list,
// matching arguments to parameters by position. A nil argument (an
// unresolved optional dependency) becomes the zero value of its parameter
// type rather than a typed nil interface, so `logger Logger` params still
// receive something assignable instead of panicking on a missing concrete
// type.
//
// A constructor may return just the instance, or (instance, error); a
// non-nil error return aborts construction and is surfaced to the caller.
func invoke(ctor any, args []any) (any, error) {
	fn := reflect.ValueOf(ctor)
	t := fn.Type()
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("container: value is not callable: %T", ctor)
	}

	numIn := t.NumIn()
	variadic := t.IsVariadic()
	in := make([]reflect.Value, 0, len(args))

	for i, a := range args {
		var paramType reflect.Type
		switch {
		case variadic && i >= numIn-1:
			paramType = t.In(numIn - 1).Elem()
		case i < numIn:
			paramType = t.In(i)
		default:
			// More resolved args than the constructor declared params for;
			// the extra ones are dropped.
			continue
		}
		in = append(in, coerce(a, paramType))
	}

	for len(in) < numIn && !(variadic && len(in) >= numIn-1) {
		in = append(in, reflect.Zero(t.In(len(in))))
	}

	out := fn.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		last := out[len(out)-1]
		if last.Type().Implements(errType) && !last.IsNil() {
			return nil, last.Interface().(error)
		}
		return out[0].Interface(), nil
	}
}

func coerce(a any, paramType reflect.Type) reflect.Value {
	if a == nil {
		return reflect.Zero(paramType)
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(paramType) {
		return v
	}
	if v.Type().ConvertibleTo(paramType) {
		return v.Convert(paramType)
	}
	return reflect.Zero(paramType)
}
