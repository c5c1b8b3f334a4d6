package union

import (
	"go.uber.org/multierr"
)

// ArmConstructor builds a payload of an arm out of positional arguments. It is free to validate
// its arguments and the error it returns is passed to the caller as is.
type ArmConstructor func(args ...interface{}) (interface{}, error)

// Definition union definition builder: a name and an ordered set of arms. Zero value is an unnamed union without arms
type Definition struct {
	name       string
	order      []string
	arms       map[string]ArmConstructor
	overwrites error
}

// Create starts definition of union with the given name
func Create(name string) *Definition {
	return &Definition{
		name: name,
		arms: map[string]ArmConstructor{},
	}
}

// Of registers arm with the given constructor. Registering the same arm again replaces its
// constructor, the arm keeps its original position. A nil constructor defines an arm without payload.
func (d *Definition) Of(arm string, constructor ArmConstructor) *Definition {
	if d.arms == nil {
		d.arms = map[string]ArmConstructor{}
	}
	if _, ok := d.arms[arm]; ok {
		d.overwrites = multierr.Append(d.overwrites, &DuplicateArmError{
			Union: d.name,
			Arm:   arm,
		})
	} else {
		d.order = append(d.order, arm)
	}
	d.arms[arm] = constructor
	return d
}

// Name returns union name
func (d *Definition) Name() string {
	return d.name
}

// Arms returns arm names in registration order
func (d *Definition) Arms() []string {
	return append([]string(nil), d.order...)
}

// Overwrites returns *DuplicateArmError for every repeated registration, nil if there were none.
// Use multierr.Errors to split them.
func (d *Definition) Overwrites() error {
	return d.overwrites
}

// Render turns the definition into a constructor. The constructor owns its own copy of arms,
// further registrations in the definition don't affect it.
func (d *Definition) Render() *Constructor {
	arms := make(map[string]ArmConstructor, len(d.arms))
	for name, constructor := range d.arms {
		arms[name] = constructor
	}
	return &Constructor{
		name:  d.name,
		order: d.Arms(),
		arms:  arms,
	}
}

// RenderStrict same as Render but fails if any arm was registered more than once
func (d *Definition) RenderStrict() (*Constructor, error) {
	if d.overwrites != nil {
		return nil, d.overwrites
	}
	return d.Render(), nil
}
