package union

import (
	"reflect"
)

// Args positional arguments of an arm constructor call bound to the union and arm names for error reporting
type Args struct {
	union  string
	arm    string
	values []interface{}
}

// ArgsOf binds arguments to the arm
func ArgsOf(union, arm string, values []interface{}) Args {
	return Args{
		union:  union,
		arm:    arm,
		values: values,
	}
}

// Len returns amount of arguments
func (a Args) Len() int {
	return len(a.values)
}

// Expect checks there are exactly n arguments
func (a Args) Expect(n int) error {
	if len(a.values) != n {
		return &ArityError{
			Union: a.union,
			Arm:   a.arm,
			Want:  n,
			Got:   len(a.values),
		}
	}
	return nil
}

// Arg returns i-th argument as T. Untyped nil is accepted for pointers, interfaces, maps, slices, channels and functions.
func Arg[T any](a Args, i int) (T, error) {
	var res T
	if i < 0 || i >= len(a.values) {
		return res, &ArityError{
			Union: a.union,
			Arm:   a.arm,
			Want:  i + 1,
			Got:   len(a.values),
		}
	}

	value := a.values[i]
	if v, ok := value.(T); ok {
		return v, nil
	}

	typ := reflect.TypeOf(&res).Elem()
	if value == nil && nilable(typ) {
		return res, nil
	}

	return res, &ArgumentError{
		Union: a.union,
		Arm:   a.arm,
		Index: i,
		Want:  typ.String(),
		Got:   value,
	}
}

func nilable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}
