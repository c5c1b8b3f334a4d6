// Package match branches on tagged union values.
//
//	res, err := match.On[string](v).
//		Of(ClientType).
//		Case("Success", func(p interface{}) string { return "ok" }).
//		Case("Failure", func(p interface{}) string { return "failed" }).
//		Result()
//
// Bound to a constructor with Of the matcher also checks that the value belongs
// to that union and that every arm of it has a case.
package match

import (
	"github.com/sirkon/go-union/union"
	"go.uber.org/multierr"
)

// Matcher collects arm handlers for a single value
type Matcher[R any] struct {
	value    union.Value
	of       *union.Constructor
	order    []string
	cases    map[string]func(payload interface{}) R
	fallback func(v union.Value) R
}

// On starts matching of the value
func On[R any](v union.Value) *Matcher[R] {
	return &Matcher[R]{
		value: v,
		cases: map[string]func(payload interface{}) R{},
	}
}

// Of binds matching to the union rendered into c
func (m *Matcher[R]) Of(c *union.Constructor) *Matcher[R] {
	m.of = c
	return m
}

// Case sets a handler for the arm. A repeated case replaces the previous one.
func (m *Matcher[R]) Case(arm string, handler func(payload interface{}) R) *Matcher[R] {
	if _, ok := m.cases[arm]; !ok {
		m.order = append(m.order, arm)
	}
	m.cases[arm] = handler
	return m
}

// Default sets a handler for values no case matched
func (m *Matcher[R]) Default(handler func(v union.Value) R) *Matcher[R] {
	m.fallback = handler
	return m
}

// Result runs the handler of the value's arm
func (m *Matcher[R]) Result() (R, error) {
	var res R
	if err := m.check(); err != nil {
		return res, err
	}

	if handler, ok := m.cases[m.value.Arm()]; ok {
		return handler(m.value.Payload()), nil
	}
	if m.fallback != nil {
		return m.fallback(m.value), nil
	}

	return res, &NoMatchError{
		Union: m.value.Union(),
		Arm:   m.value.Arm(),
	}
}

func (m *Matcher[R]) check() error {
	if m.of == nil {
		return nil
	}

	if m.value.Union() != m.of.Name() {
		return &ForeignValueError{
			Union: m.of.Name(),
			Value: m.value,
		}
	}

	var err error
	for _, arm := range m.order {
		if !m.of.Has(arm) {
			err = multierr.Append(err, &UnknownCaseError{
				Union: m.of.Name(),
				Arm:   arm,
			})
		}
	}
	if err != nil {
		return err
	}

	if m.fallback != nil {
		return nil
	}
	var missing []string
	for _, arm := range m.of.Arms() {
		if _, ok := m.cases[arm]; !ok {
			missing = append(missing, arm)
		}
	}
	if len(missing) > 0 {
		return &NonExhaustiveError{
			Union:   m.of.Name(),
			Missing: missing,
		}
	}

	return nil
}
