package union

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Value tagged value of some union: union name, arm name and the payload produced by the arm constructor
type Value struct {
	union   string
	arm     string
	payload interface{}
}

// Union returns name of the union the value belongs to
func (v Value) Union() string {
	return v.union
}

// Arm returns name of the arm the value was constructed with
func (v Value) Arm() string {
	return v.arm
}

// Payload returns whatever the arm constructor has produced
func (v Value) Payload() interface{} {
	return v.payload
}

// Tag returns discriminant pair of the value
func (v Value) Tag() (string, string) {
	return v.union, v.arm
}

// Is checks if the value is of the given union and arm
func (v Value) Is(union, arm string) bool {
	return v.union == union && v.arm == arm
}

// IsZero checks if all three components are empty. A payload-less arm with empty name of an unnamed union gives such a value too
func (v Value) IsZero() bool {
	return v.union == "" && v.arm == "" && v.payload == nil
}

// Equal structural equality. Payloads are compared with their own Equal method when they have one,
// unexported fields are compared as well.
func (v Value) Equal(other Value) bool {
	if v.union != other.union || v.arm != other.arm {
		return false
	}
	return cmp.Equal(v.payload, other.payload, exportAll)
}

// String implementation of fmt.Stringer
func (v Value) String() string {
	return fmt.Sprintf("%s.%s(%v)", v.union, v.arm, v.payload)
}

// MarshalJSON encodes the value as a triple [union, arm, payload]
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]interface{}{v.union, v.arm, v.payload})
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })
