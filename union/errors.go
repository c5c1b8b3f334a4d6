package union

import (
	"fmt"
)

// UnknownArmError an attempt to construct a value with an arm the union doesn't have
type UnknownArmError struct {
	Union string
	Arm   string
}

func (e *UnknownArmError) Error() string {
	return fmt.Sprintf("union %s has no arm %s", e.Union, e.Arm)
}

// DuplicateArmError arm registered more than once. It is informational for Render and fatal for RenderStrict
type DuplicateArmError struct {
	Union string
	Arm   string
}

func (e *DuplicateArmError) Error() string {
	return fmt.Sprintf("union %s: arm %s registered more than once, the last registration wins", e.Union, e.Arm)
}

// ArityError arm constructor got unexpected amount of arguments
type ArityError struct {
	Union string
	Arm   string
	Want  int
	Got   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s.%s: expected %d arguments, got %d", e.Union, e.Arm, e.Want, e.Got)
}

// ArgumentError arm constructor argument has unexpected type
type ArgumentError struct {
	Union string
	Arm   string
	Index int
	Want  string
	Got   interface{}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s.%s: argument %d must be %s, got %T", e.Union, e.Arm, e.Index, e.Want, e.Got)
}
