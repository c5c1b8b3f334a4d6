// Package union emulates discriminated union values at runtime.
//
// A union is defined by a name and a set of named arms, each arm with its own
// payload constructor:
//
//	ClientType := union.Create("ClientType").
//		Of("Success", func(args ...interface{}) (interface{}, error) {
//			return map[string]interface{}{"id": args[0]}, nil
//		}).
//		Of("Failure", func(args ...interface{}) (interface{}, error) {
//			return map[string]interface{}{"error": args[0]}, nil
//		}).
//		Render()
//
//	v, err := ClientType.Invoke("Success", 42)
//
// Every constructed Value carries the union name and the arm name next to the
// payload, so the consumer can branch on them. Named per-arm methods are
// produced by the go-union generator on top of this package.
package union
