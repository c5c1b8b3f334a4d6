package union

// Constructor dispatches arm names to their constructors and tags produced payloads
type Constructor struct {
	name  string
	order []string
	arms  map[string]ArmConstructor
}

// Name returns union name
func (c *Constructor) Name() string {
	return c.name
}

// Arms returns arm names in registration order
func (c *Constructor) Arms() []string {
	return append([]string(nil), c.order...)
}

// Has checks if union has the arm
func (c *Constructor) Has(arm string) bool {
	_, ok := c.arms[arm]
	return ok
}

// Invoke constructs a value of the given arm out of args
func (c *Constructor) Invoke(arm string, args ...interface{}) (Value, error) {
	constructor, ok := c.arms[arm]
	if !ok {
		return Value{}, &UnknownArmError{
			Union: c.name,
			Arm:   arm,
		}
	}

	var payload interface{}
	if constructor != nil {
		var err error
		payload, err = constructor(args...)
		if err != nil {
			return Value{}, err
		}
	}

	return Value{
		union:   c.name,
		arm:     arm,
		payload: payload,
	}, nil
}

// Arm returns constructor of a single arm
func (c *Constructor) Arm(arm string) (func(args ...interface{}) (Value, error), error) {
	if !c.Has(arm) {
		return nil, &UnknownArmError{
			Union: c.name,
			Arm:   arm,
		}
	}
	return func(args ...interface{}) (Value, error) {
		return c.Invoke(arm, args...)
	}, nil
}

// Must panics on error, returns the value otherwise
func Must(v Value, err error) Value {
	if err != nil {
		panic(err)
	}
	return v
}
