package match

import (
	"fmt"
	"strings"

	"github.com/sirkon/go-union/union"
)

// NoMatchError no case for the value arm and no default
type NoMatchError struct {
	Union string
	Arm   string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no case for %s.%s", e.Union, e.Arm)
}

// ForeignValueError value of another union
type ForeignValueError struct {
	Union string
	Value union.Value
}

func (e *ForeignValueError) Error() string {
	return fmt.Sprintf("matching %s against %s value %s", e.Union, e.Value.Union(), e.Value)
}

// UnknownCaseError case for an arm the union doesn't have
type UnknownCaseError struct {
	Union string
	Arm   string
}

func (e *UnknownCaseError) Error() string {
	return fmt.Sprintf("case %s is not an arm of %s", e.Arm, e.Union)
}

// NonExhaustiveError some arms of the union have no case
type NonExhaustiveError struct {
	Union   string
	Missing []string
}

func (e *NonExhaustiveError) Error() string {
	return fmt.Sprintf("non-exhaustive match on %s, missing %s", e.Union, strings.Join(e.Missing, ", "))
}
